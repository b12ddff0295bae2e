package follwit

import (
	"bytes"
	"encoding/json"
	"strings"
)

// FlexString holds identifier and number fields the service sends either as JSON
// numbers or as strings.
type FlexString string

func (f FlexString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(f))
}

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*f = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*f = FlexString(n.String())
		return nil
	}
}

func (f FlexString) String() string { return string(f) }

// Status is the outcome envelope the service attaches to mutations and, on failure,
// to data responses.
type Status struct {
	Response string `json:"response,omitempty"`
	Message  string `json:"message,omitempty"`
}

// Succeeded reports whether the response token contains "success", ignoring case.
func (s Status) Succeeded() bool {
	return isSuccess(s.Response)
}

// Failed reports whether the service set a response token that is not a success.
func (s Status) Failed() bool {
	return s.Response != "" && !isSuccess(s.Response)
}

func isSuccess(response string) bool {
	return strings.Contains(strings.ToLower(response), "success")
}

// Person is an actor, director or writer credit.
type Person struct {
	FollwItPersonID int    `json:"follwit_person_id,omitempty"`
	Name            string `json:"name,omitempty"`
	URL             string `json:"url,omitempty"`
}

// Actor is a cast credit.
type Actor = Person

type Trailer struct {
	Title string `json:"title,omitempty"`
	URL   string `json:"url,omitempty"`
	Embed string `json:"embed,omitempty"`
}

// Movie is a follw.it movie record.
type Movie struct {
	Status
	ID              FlexString `json:"follwit_movie_id,omitempty"`
	IMDbID          string     `json:"imdb_id,omitempty"`
	TMDbID          FlexString `json:"moviedb_id,omitempty"`
	Title           string     `json:"title,omitempty"`
	OriginalTitle   string     `json:"original_title,omitempty"`
	TranslatedTitle string     `json:"translated_title,omitempty"`
	Tagline         string     `json:"tagline,omitempty"`
	Year            FlexString `json:"year,omitempty"`
	Certification   string     `json:"certification,omitempty"`
	Runtime         FlexString `json:"runtime,omitempty"`
	Summary         string     `json:"summary,omitempty"`
	URL             string     `json:"url,omitempty"`
	Cover           string     `json:"cover,omitempty"`
	AverageRating   FlexString `json:"average_rating,omitempty"`
	RatingCount     FlexString `json:"rating_count,omitempty"`
	Genres          string     `json:"genres,omitempty"`
	Trailers        []Trailer  `json:"trailers,omitempty"`
	Directors       []Person   `json:"directors,omitempty"`
	Writers         []Person   `json:"writers,omitempty"`
	Actors          []Actor    `json:"actors,omitempty"`
}

// GenreList splits the genre field on the separators the service uses.
func (m Movie) GenreList() []string {
	return splitGenres(m.Genres)
}

// Show is a follw.it series record.
type Show struct {
	Status
	FollwItSeriesID   int        `json:"follwit_series_id,omitempty"`
	TVDbSeriesID      int        `json:"thetvdb_series_id,omitempty"`
	SeriesName        string     `json:"series_name,omitempty"`
	Overview          string     `json:"overview,omitempty"`
	AverageRating     FlexString `json:"average_rating,omitempty"`
	RatingCount       FlexString `json:"rating_count,omitempty"`
	Runtime           FlexString `json:"runtime,omitempty"`
	FirstAired        string     `json:"first_aired,omitempty"`
	AirDay            string     `json:"air_day,omitempty"`
	AirTime           string     `json:"air_time,omitempty"`
	Network           string     `json:"network,omitempty"`
	SeriesURL         string     `json:"series_url,omitempty"`
	SeriesPoster      string     `json:"series_poster,omitempty"`
	SeriesPosterMed   string     `json:"series_poster_med,omitempty"`
	SeriesPosterSmall string     `json:"series_poster_small,omitempty"`
	Genres            string     `json:"genres,omitempty"`
	Actors            []Actor    `json:"actors,omitempty"`
	Episodes          []Episode  `json:"episodes,omitempty"`
}

func (s Show) GenreList() []string {
	return splitGenres(s.Genres)
}

// Episode is a follw.it episode record.
type Episode struct {
	Status
	FollwItSeriesID  int    `json:"follwit_series_id,omitempty"`
	TVDbSeriesID     int    `json:"thetvdb_series_id,omitempty"`
	SeriesName       string `json:"series_name,omitempty"`
	SeriesURL        string `json:"series_url,omitempty"`
	SeriesPoster     string `json:"series_poster,omitempty"`
	FollwItEpisodeID int    `json:"follwit_episode_id,omitempty"`
	TVDbEpisodeID    int    `json:"thetvdb_episode_id,omitempty"`
	SeasonNumber     int    `json:"season_number,omitempty"`
	EpisodeNumber    int    `json:"episode_number,omitempty"`
	EpisodeName      string `json:"episode_name,omitempty"`
	EpisodeURL       string `json:"episode_url,omitempty"`
	EpisodeImage     string `json:"episode_image,omitempty"`
	FirstAired       string `json:"first_aired,omitempty"`
	AirTime          string `json:"air_time,omitempty"`
	Series           *Show  `json:"series,omitempty"`
}

// List is a user curated list.
type List struct {
	Status
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Identifier  FlexString  `json:"identifier"`
	URL         string      `json:"url,omitempty"`
	Entries     []ListEntry `json:"list_entries,omitempty"`
}

// ListEntry is a single list item. Which fields are set depends on ItemType.
type ListEntry struct {
	DateAdded        string     `json:"date_added,omitempty"`
	ItemType         ListType   `json:"item_type"`
	FollwItMovieID   FlexString `json:"follwit_movie_id,omitempty"`
	IMDbID           string     `json:"imdb_id,omitempty"`
	MovieDBID        FlexString `json:"moviedb_id,omitempty"`
	Title            string     `json:"title,omitempty"`
	Year             FlexString `json:"year,omitempty"`
	URL              string     `json:"url,omitempty"`
	Cover            string     `json:"cover,omitempty"`
	FollwItSeriesID  FlexString `json:"follwit_series_id,omitempty"`
	TVDbSeriesID     FlexString `json:"thetvdb_series_id,omitempty"`
	SeriesName       string     `json:"series_name,omitempty"`
	SeriesURL        string     `json:"series_url,omitempty"`
	SeriesPoster     string     `json:"series_poster,omitempty"`
	SeasonNumber     FlexString `json:"season_number,omitempty"`
	FollwItEpisodeID FlexString `json:"follwit_episode_id,omitempty"`
	TVDbEpisodeID    FlexString `json:"thetvdb_episode_id,omitempty"`
	EpisodeNumber    FlexString `json:"episode_number,omitempty"`
	EpisodeName      string     `json:"episode_name,omitempty"`
	EpisodeURL       string     `json:"episode_url,omitempty"`
	EpisodeImage     string     `json:"episode_image,omitempty"`
}

type Friend struct {
	Username string `json:"username"`
	RealName string `json:"real_name,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

type Achievement struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	AwardDate   string `json:"award_date,omitempty"`
}

// User is a public profile.
type User struct {
	Status
	Username         string        `json:"username"`
	RealName         string        `json:"real_name,omitempty"`
	LastSeen         string        `json:"last_seen,omitempty"`
	Avatar           string        `json:"avatar,omitempty"`
	Friends          []Friend      `json:"friends,omitempty"`
	Achievements     []Achievement `json:"achievements,omitempty"`
	WatchingMovies   []Movie       `json:"watching_movie,omitempty"`
	WatchedMovie     *Movie        `json:"watched_movie,omitempty"`
	WatchingEpisodes []Episode     `json:"watching_episode,omitempty"`
	WatchedEpisode   *Episode      `json:"watched_episode,omitempty"`
}

// FullProfile is the authenticated view of a profile, including account settings.
type FullProfile struct {
	User
	Email          string `json:"email,omitempty"`
	Locale         string `json:"locale,omitempty"`
	PrivateProfile bool   `json:"private_profile"`
}

// UserStats is a user's relationship with a movie.
type UserStats struct {
	Status
	Rating        FlexString `json:"rating,omitempty"`
	QuickThoughts string     `json:"quick_thoughts,omitempty"`
	Review        string     `json:"review,omitempty"`
	InCollection  bool       `json:"in_collection"`
	Watched       bool       `json:"watched"`
	WantIt        bool       `json:"want_it"`
	NotInterested bool       `json:"not_interested"`
}

// EpisodeSummary is a user's relationship with one episode of a show.
type EpisodeSummary struct {
	EpisodeID     FlexString `json:"episode_id,omitempty"`
	TVDbEpisodeID FlexString `json:"tvdb_episode_id,omitempty"`
	SeasonNumber  FlexString `json:"season_number,omitempty"`
	EpisodeNumber FlexString `json:"episode_number,omitempty"`
	Rating        FlexString `json:"rating,omitempty"`
	InCollection  bool       `json:"in_collection"`
	Watched       bool       `json:"watched"`
}

// ShowUserStats is a user's relationship with a show.
type ShowUserStats struct {
	Status
	Rating        FlexString       `json:"rating,omitempty"`
	QuickThoughts string           `json:"quick_thoughts,omitempty"`
	Review        string           `json:"review,omitempty"`
	WantIt        bool             `json:"want_it"`
	NotInterested bool             `json:"not_interested"`
	Following     bool             `json:"follwing"`
	Episodes      []EpisodeSummary `json:"episodes,omitempty"`
}

// StreamItem is one activity in a user's stream.
type StreamItem struct {
	StreamID         FlexString   `json:"stream_id,omitempty"`
	Action           StreamAction `json:"action"`
	Date             string       `json:"date,omitempty"`
	Username         string       `json:"username,omitempty"`
	ItemType         string       `json:"item_type,omitempty"`
	FollwItMovieID   FlexString   `json:"follwit_movie_id,omitempty"`
	IMDbID           string       `json:"imdb_id,omitempty"`
	MovieDBID        FlexString   `json:"moviedb_id,omitempty"`
	Title            string       `json:"title,omitempty"`
	Year             FlexString   `json:"year,omitempty"`
	URL              string       `json:"url,omitempty"`
	Cover            string       `json:"cover,omitempty"`
	Rating           FlexString   `json:"rating,omitempty"`
	QuickThoughts    string       `json:"quick_thoughts,omitempty"`
	FollwItSeriesID  FlexString   `json:"follwit_series_id,omitempty"`
	TVDbSeriesID     FlexString   `json:"thetvdb_series_id,omitempty"`
	SeriesName       string       `json:"series_name,omitempty"`
	FollwItEpisodeID FlexString   `json:"follwit_episode_id,omitempty"`
	TVDbEpisodeID    FlexString   `json:"thetvdb_episode_id,omitempty"`
	SeasonNumber     FlexString   `json:"season_number,omitempty"`
	EpisodeNumber    FlexString   `json:"episode_number,omitempty"`
	EpisodeName      string       `json:"episode_name,omitempty"`
	AchievementName  string       `json:"achievement_name,omitempty"`
	FriendUsername   string       `json:"friend_username,omitempty"`
}

// OnlineChange is one entry of the changes feed used by clients to catch up with
// edits made elsewhere.
type OnlineChange struct {
	Type      ChangeType `json:"change_type"`
	Date      string     `json:"date,omitempty"`
	MovieID   FlexString `json:"movie_id,omitempty"`
	IMDbID    string     `json:"imdb_id,omitempty"`
	SeriesID  FlexString `json:"series_id,omitempty"`
	EpisodeID FlexString `json:"episode_id,omitempty"`
	Value     FlexString `json:"value,omitempty"`
}

// BulkEpisodeResult is the per-episode outcome of a bulk change.
type BulkEpisodeResult struct {
	ClientID  FlexString `json:"client_id,omitempty"`
	EpisodeID FlexString `json:"episode_id,omitempty"`
	Rating    FlexString `json:"rating,omitempty"`
	Watched   bool       `json:"watched"`
	Status    string     `json:"status,omitempty"`
}

// BulkMovieResult is the per-movie outcome of a bulk change.
type BulkMovieResult struct {
	ClientID     FlexString `json:"client_id,omitempty"`
	MovieID      FlexString `json:"movie_id,omitempty"`
	InCollection bool       `json:"in_collection"`
	Rating       FlexString `json:"rating,omitempty"`
	Watched      bool       `json:"watched"`
	Status       string     `json:"status,omitempty"`
}

type accountResponse struct {
	Status
	Username string `json:"username,omitempty"`
}

type availabilityResponse struct {
	Status
	Available bool `json:"available"`
}

func splitGenres(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ',' })
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, strings.ToLower(f))
		}
	}
	return out
}
