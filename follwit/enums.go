package follwit

import (
	"fmt"
	"strings"
)

// tokenTable is a bidirectional mapping between an enumeration and its wire tokens.
// Parsing is case-insensitive; formatting always yields the canonical token.
type tokenTable[T comparable] struct {
	name    string
	tokens  map[T]string
	members map[string]T
}

func newTokenTable[T comparable](name string, tokens map[T]string) tokenTable[T] {
	members := make(map[string]T, len(tokens))
	for member, token := range tokens {
		members[strings.ToLower(token)] = member
	}
	return tokenTable[T]{name: name, tokens: tokens, members: members}
}

func (t tokenTable[T]) format(v T) string {
	if token, ok := t.tokens[v]; ok {
		return token
	}
	return fmt.Sprintf("%s(%v)", t.name, v)
}

func (t tokenTable[T]) marshal(v T) ([]byte, error) {
	token, ok := t.tokens[v]
	if !ok {
		return nil, argumentError(t.name, fmt.Sprintf("unknown value %v", v))
	}
	return []byte(token), nil
}

func (t tokenTable[T]) lookup(s string) (T, bool) {
	v, ok := t.members[strings.ToLower(strings.TrimSpace(s))]
	return v, ok
}

func (t tokenTable[T]) parse(s string) (T, error) {
	if v, ok := t.lookup(s); ok {
		return v, nil
	}
	var zero T
	return zero, argumentError(t.name, fmt.Sprintf("unknown token %q", s))
}

// Genre is a follw.it genre used for recommendations.
type Genre int

const (
	GenreAction Genre = iota
	GenreAdult
	GenreAdventure
	GenreAnimation
	GenreBiography
	GenreComedy
	GenreCrime
	GenreDisaster
	GenreDocumentary
	GenreDrama
	GenreEastern
	GenreFamily
	GenreFantasy
	GenreFilmNoir
	GenreGameShow
	GenreHistory
	GenreHoliday
	GenreHorror
	GenreMusic
	GenreMusical
	GenreMystery
	GenreRealityTV
	GenreRoadMovie
	GenreRomance
	GenreScienceFiction
	GenreSport
	GenreSuspense
	GenreTalkShow
	GenreThriller
	GenreWar
	GenreWestern
)

var genreTokens = newTokenTable("genre", map[Genre]string{
	GenreAction:         "action",
	GenreAdult:          "adult",
	GenreAdventure:      "adventure",
	GenreAnimation:      "animation",
	GenreBiography:      "biography",
	GenreComedy:         "comedy",
	GenreCrime:          "crime",
	GenreDisaster:       "disaster",
	GenreDocumentary:    "documentary",
	GenreDrama:          "drama",
	GenreEastern:        "eastern",
	GenreFamily:         "family",
	GenreFantasy:        "fantasy",
	GenreFilmNoir:       "film-noir",
	GenreGameShow:       "game-show",
	GenreHistory:        "history",
	GenreHoliday:        "holiday",
	GenreHorror:         "horror",
	GenreMusic:          "music",
	GenreMusical:        "musical",
	GenreMystery:        "mystery",
	GenreRealityTV:      "reality-tv",
	GenreRoadMovie:      "road-movie",
	GenreRomance:        "romance",
	GenreScienceFiction: "science-fiction",
	GenreSport:          "sport",
	GenreSuspense:       "suspense",
	GenreTalkShow:       "talk-show",
	GenreThriller:       "thriller",
	GenreWar:            "war",
	GenreWestern:        "western",
})

// Genres returns every genre in declaration order.
func Genres() []Genre {
	out := make([]Genre, 0, len(genreTokens.tokens))
	for g := GenreAction; g <= GenreWestern; g++ {
		out = append(out, g)
	}
	return out
}

func (g Genre) String() string                   { return genreTokens.format(g) }
func (g Genre) MarshalText() ([]byte, error)     { return genreTokens.marshal(g) }
func (g *Genre) UnmarshalText(text []byte) error { return unmarshalToken(genreTokens, g, text) }

// ParseGenre parses a genre token such as "film-noir".
func ParseGenre(s string) (Genre, error) { return genreTokens.parse(s) }

// joinGenres renders genres as the pipe separated list the recommendation endpoints expect.
func joinGenres(genres []Genre) string {
	tokens := make([]string, 0, len(genres))
	for _, g := range genres {
		tokens = append(tokens, g.String())
	}
	return strings.Join(tokens, "|")
}

// ListType is the kind of item stored in a list entry.
type ListType int

const (
	ListTypeTVShow ListType = iota
	ListTypeTVSeason
	ListTypeTVEpisode
	ListTypeMovie
	// ListTypeUnknown is decoded for item types this package does not know.
	ListTypeUnknown
)

var listTypeTokens = newTokenTable("list type", map[ListType]string{
	ListTypeTVShow:    "tv show",
	ListTypeTVSeason:  "tv season",
	ListTypeTVEpisode: "tv episode",
	ListTypeMovie:     "movie",
})

func (l ListType) String() string {
	if l == ListTypeUnknown {
		return "unknown"
	}
	return listTypeTokens.format(l)
}

func (l ListType) MarshalText() ([]byte, error) { return listTypeTokens.marshal(l) }

// UnmarshalText never fails: one entry of a new kind must not discard the whole list.
func (l *ListType) UnmarshalText(text []byte) error {
	v, ok := listTypeTokens.lookup(string(text))
	if !ok {
		v = ListTypeUnknown
	}
	*l = v
	return nil
}

func ParseListType(s string) (ListType, error) { return listTypeTokens.parse(s) }

// TimeInterval selects the window of the trending endpoints.
type TimeInterval int

const (
	TimeIntervalDay TimeInterval = iota
	TimeIntervalWeek
	TimeIntervalMonth
	// TimeIntervalNewShows is only meaningful for trending shows.
	TimeIntervalNewShows
)

var timeIntervalTokens = newTokenTable("time interval", map[TimeInterval]string{
	TimeIntervalDay:      "day",
	TimeIntervalWeek:     "week",
	TimeIntervalMonth:    "month",
	TimeIntervalNewShows: "newshows",
})

func (t TimeInterval) String() string               { return timeIntervalTokens.format(t) }
func (t TimeInterval) MarshalText() ([]byte, error) { return timeIntervalTokens.marshal(t) }
func (t *TimeInterval) UnmarshalText(text []byte) error {
	return unmarshalToken(timeIntervalTokens, t, text)
}

func ParseTimeInterval(s string) (TimeInterval, error) { return timeIntervalTokens.parse(s) }

// ChangeType identifies an entry of the online changes feed.
type ChangeType int

const (
	ChangeServerTime ChangeType = iota
	ChangeNewMovieRating
	ChangeNewMovieWatchedStatus
	ChangeCoverRequest
	ChangeUpdatedMovieID
	ChangeNewSeriesRating
	ChangeNewEpisodeRating
	ChangeNewEpisodeWatchedStatus
)

var changeTypeTokens = newTokenTable("change type", map[ChangeType]string{
	ChangeServerTime:              "server_time",
	ChangeNewMovieRating:          "new_movie_rating",
	ChangeNewMovieWatchedStatus:   "new_movie_watched_status",
	ChangeCoverRequest:            "cover_request",
	ChangeUpdatedMovieID:          "updated_movie_id",
	ChangeNewSeriesRating:         "new_series_rating",
	ChangeNewEpisodeRating:        "new_episode_rating",
	ChangeNewEpisodeWatchedStatus: "new_episode_watched_status",
})

func (c ChangeType) String() string               { return changeTypeTokens.format(c) }
func (c ChangeType) MarshalText() ([]byte, error) { return changeTypeTokens.marshal(c) }
func (c *ChangeType) UnmarshalText(text []byte) error {
	return unmarshalToken(changeTypeTokens, c, text)
}

func ParseChangeType(s string) (ChangeType, error) { return changeTypeTokens.parse(s) }

// StreamAction is the activity recorded by a user stream item.
type StreamAction int

const (
	StreamAchievementAwarded StreamAction = iota
	StreamFriendshipFormed
	StreamMovieWatched
	StreamMovieAdded
	StreamMovieRated
	StreamMovieReviewed
	StreamMovieShowcaseChanged
	StreamTVEpisodeWatched
	StreamTVSeriesRated
	StreamTVSeriesReviewed
	StreamTVEpisodeRated
	StreamTVEpisodeReviewed
)

var streamActionTokens = newTokenTable("stream action", map[StreamAction]string{
	StreamAchievementAwarded:   "AchievementAwarded",
	StreamFriendshipFormed:     "FriendshipFormed",
	StreamMovieWatched:         "MovieWatched",
	StreamMovieAdded:           "MovieAdded",
	StreamMovieRated:           "MovieRated",
	StreamMovieReviewed:        "MovieReviewed",
	StreamMovieShowcaseChanged: "MovieShowcaseChanged",
	StreamTVEpisodeWatched:     "TVEpisodeWatched",
	StreamTVSeriesRated:        "TVSeriesRated",
	StreamTVSeriesReviewed:     "TVSeriesReviewed",
	StreamTVEpisodeRated:       "TVEpisodeRated",
	StreamTVEpisodeReviewed:    "TVEpisodeReviewed",
})

func (s StreamAction) String() string               { return streamActionTokens.format(s) }
func (s StreamAction) MarshalText() ([]byte, error) { return streamActionTokens.marshal(s) }
func (s *StreamAction) UnmarshalText(text []byte) error {
	return unmarshalToken(streamActionTokens, s, text)
}

func ParseStreamAction(s string) (StreamAction, error) { return streamActionTokens.parse(s) }

// unmarshalToken decodes a token received from the service. Its error does not match
// ErrInvalidArgument: a bad token in a response is a decode failure, not a caller mistake.
func unmarshalToken[T comparable](table tokenTable[T], dst *T, text []byte) error {
	v, ok := table.lookup(string(text))
	if !ok {
		return fmt.Errorf("unknown %s %q", table.name, text)
	}
	*dst = v
	return nil
}
