package follwit

import (
	"fmt"
	"strconv"
	"strings"
)

// MovieIdentification selects which identifier scheme a movie id belongs to.
type MovieIdentification int

const (
	MovieIDFollwIt MovieIdentification = iota
	MovieIDIMDb
	MovieIDTMDb
)

var movieIdentificationTokens = newTokenTable("movie identification", map[MovieIdentification]string{
	MovieIDFollwIt: "movie_id",
	MovieIDIMDb:    "imdb_id",
	MovieIDTMDb:    "tmdb_id",
})

func (m MovieIdentification) String() string { return movieIdentificationTokens.format(m) }

func ParseMovieIdentification(s string) (MovieIdentification, error) {
	return movieIdentificationTokens.parse(s)
}

// ShowIdentification selects which identifier scheme a show or episode id belongs to.
type ShowIdentification int

const (
	ShowIDFollwIt ShowIdentification = iota
	ShowIDIMDb
	ShowIDTVDb
)

var showIdentificationTokens = newTokenTable("show identification", map[ShowIdentification]string{
	ShowIDFollwIt: "show_id",
	ShowIDIMDb:    "imdb_id",
	ShowIDTVDb:    "tvdb_id",
})

func (s ShowIdentification) String() string { return showIdentificationTokens.format(s) }

func ParseShowIdentification(s string) (ShowIdentification, error) {
	return showIdentificationTokens.parse(s)
}

// MovieRef is the movie reference fragment of a request body. Exactly one field is set.
type MovieRef struct {
	MovieID *int   `json:"movie_id,omitempty"`
	IMDbID  string `json:"imdb_id,omitempty"`
	TMDbID  *int   `json:"tmdb_id,omitempty"`
}

// ShowRef is the show reference fragment of a request body.
type ShowRef struct {
	ShowID *int `json:"show_id,omitempty"`
	TVDbID *int `json:"tvdb_series_id,omitempty"`
}

// EpisodeRef is the episode reference fragment of a request body. It carries either an
// episode id or a natural key (TVDb series id or series name plus season and episode).
type EpisodeRef struct {
	EpisodeID     *int   `json:"episode_id,omitempty"`
	TVDbEpisodeID *int   `json:"tvdb_episode_id,omitempty"`
	SeriesName    string `json:"series_name,omitempty"`
	SeasonNumber  *int   `json:"season_number,omitempty"`
	EpisodeNumber *int   `json:"episode_number,omitempty"`
	EpisodeName   string `json:"episode_name,omitempty"`
}

func (r EpisodeRef) empty() bool {
	return r.EpisodeID == nil && r.TVDbEpisodeID == nil && r.SeriesName == ""
}

// ResolveMovie maps an (id, kind) pair onto the movie reference fragment.
func ResolveMovie(kind MovieIdentification, id string) (MovieRef, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return MovieRef{}, argumentError("movieId", "cannot be empty")
	}

	switch kind {
	case MovieIDFollwIt:
		n, err := parseNumericID("movieId", id)
		if err != nil {
			return MovieRef{}, err
		}
		return MovieRef{MovieID: &n}, nil
	case MovieIDIMDb:
		return MovieRef{IMDbID: id}, nil
	case MovieIDTMDb:
		n, err := parseNumericID("movieId", id)
		if err != nil {
			return MovieRef{}, err
		}
		return MovieRef{TMDbID: &n}, nil
	default:
		return MovieRef{}, argumentError("identificationType", fmt.Sprintf("unknown movie identification %d", int(kind)))
	}
}

// ResolveShow maps an (id, kind) pair onto the show reference fragment. Shows cannot be
// addressed by IMDb id.
func ResolveShow(kind ShowIdentification, id int) (ShowRef, error) {
	switch kind {
	case ShowIDFollwIt:
		return ShowRef{ShowID: &id}, nil
	case ShowIDTVDb:
		return ShowRef{TVDbID: &id}, nil
	case ShowIDIMDb:
		return ShowRef{}, unsupported(kind, "shows")
	default:
		return ShowRef{}, argumentError("identificationType", fmt.Sprintf("unknown show identification %d", int(kind)))
	}
}

// ResolveEpisode maps an (id, kind) pair onto the episode reference fragment.
func ResolveEpisode(kind ShowIdentification, id int) (EpisodeRef, error) {
	switch kind {
	case ShowIDFollwIt:
		return EpisodeRef{EpisodeID: &id}, nil
	case ShowIDTVDb:
		return EpisodeRef{TVDbEpisodeID: &id}, nil
	case ShowIDIMDb:
		return EpisodeRef{}, unsupported(kind, "episodes")
	default:
		return EpisodeRef{}, argumentError("identificationType", fmt.Sprintf("unknown show identification %d", int(kind)))
	}
}

// EpisodeByTVDb references an episode by TVDb id plus its season and episode number.
func EpisodeByTVDb(tvdbID, season, episode int) EpisodeRef {
	return EpisodeRef{TVDbEpisodeID: &tvdbID, SeasonNumber: &season, EpisodeNumber: &episode}
}

// EpisodeByName references an episode by series name, season, episode number and title.
func EpisodeByName(seriesName string, season, episode int, episodeName string) (EpisodeRef, error) {
	if seriesName == "" {
		return EpisodeRef{}, argumentError("seriesName", "cannot be empty")
	}
	if episodeName == "" {
		return EpisodeRef{}, argumentError("episodeName", "cannot be empty")
	}
	return EpisodeRef{
		SeriesName:    seriesName,
		SeasonNumber:  &season,
		EpisodeNumber: &episode,
		EpisodeName:   episodeName,
	}, nil
}

// IdentifyMovie picks the identifier an operation should use for m, preferring the
// follw.it id, then IMDb, then TMDb.
func IdentifyMovie(m *Movie) (MovieIdentification, string, error) {
	if m == nil {
		return 0, "", argumentError("movie", "cannot be nil")
	}
	switch {
	case m.ID != "":
		return MovieIDFollwIt, string(m.ID), nil
	case m.IMDbID != "":
		return MovieIDIMDb, m.IMDbID, nil
	case m.TMDbID != "":
		return MovieIDTMDb, string(m.TMDbID), nil
	}
	return 0, "", fmt.Errorf("%w: movie %q", ErrNoUsableIdentifier, m.Title)
}

// IdentifyShow picks the follw.it series id, falling back to the TVDb series id.
func IdentifyShow(s *Show) (ShowIdentification, int, error) {
	if s == nil {
		return 0, 0, argumentError("show", "cannot be nil")
	}
	switch {
	case s.FollwItSeriesID != 0:
		return ShowIDFollwIt, s.FollwItSeriesID, nil
	case s.TVDbSeriesID != 0:
		return ShowIDTVDb, s.TVDbSeriesID, nil
	}
	return 0, 0, fmt.Errorf("%w: show %q", ErrNoUsableIdentifier, s.SeriesName)
}

// IdentifyEpisode picks the follw.it episode id, falling back to the TVDb episode id.
func IdentifyEpisode(e *Episode) (ShowIdentification, int, error) {
	if e == nil {
		return 0, 0, argumentError("episode", "cannot be nil")
	}
	switch {
	case e.FollwItEpisodeID != 0:
		return ShowIDFollwIt, e.FollwItEpisodeID, nil
	case e.TVDbEpisodeID != 0:
		return ShowIDTVDb, e.TVDbEpisodeID, nil
	}
	return 0, 0, fmt.Errorf("%w: episode %q", ErrNoUsableIdentifier, e.EpisodeName)
}

func parseNumericID(name, id string) (int, error) {
	n, err := strconv.Atoi(id)
	if err != nil {
		return 0, argumentError(name, fmt.Sprintf("%q is not numeric", id))
	}
	return n, nil
}
