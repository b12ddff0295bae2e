package follwit

import (
	"strings"
	"time"
)

// DateLayout is the date format used in request bodies and positional parameters.
const DateLayout = "2006-01-02"

// Request bodies are composed from fragments: every body carries the session
// credentials, most carry one reference fragment, and the rest is operation specific.
// encoding/json flattens the embedded structs into a single object.

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type wireDate time.Time

func (d wireDate) MarshalText() ([]byte, error) {
	return []byte(time.Time(d).Format(DateLayout)), nil
}

type authenticationRequest struct {
	credentials
}

type createUserRequest struct {
	credentials
	Email          string `json:"email"`
	Locale         string `json:"locale,omitempty"`
	PrivateProfile bool   `json:"private_profile"`
}

type updateUserRequest struct {
	credentials
	Email          string `json:"email,omitempty"`
	Locale         string `json:"locale,omitempty"`
	PrivateProfile *bool  `json:"private_profile,omitempty"`
}

type queryUserRequest struct {
	credentials
	QueryUsername string `json:"query_username"`
}

type queryUserListRequest struct {
	credentials
	QueryUsername string `json:"query_username"`
	ListID        string `json:"list_id"`
}

type onlineChangesRequest struct {
	credentials
	StartDate wireDate `json:"start_date"`
}

type calendarRequest struct {
	credentials
	StartDate wireDate `json:"start_date"`
	EndDate   wireDate `json:"end_date"`
	Locale    string   `json:"locale"`
}

type recommendationRequest struct {
	credentials
	Genres string `json:"genres,omitempty"`
}

type movieRequest struct {
	credentials
	MovieRef
}

type movieCollectionRequest struct {
	credentials
	MovieRef
	InsertInStream bool `json:"insert_in_stream"`
}

type movieListRequest struct {
	credentials
	MovieRef
	ListID string `json:"list_id"`
}

type movieRatingRequest struct {
	credentials
	MovieRef
	Rating int `json:"rating"`
}

type movieWatchedRequest struct {
	credentials
	MovieRef
	InsertInStream bool `json:"insert_in_stream"`
}

type movieUserStatsRequest struct {
	credentials
	MovieRef
	QueryUsername string `json:"query_username"`
}

type showListRequest struct {
	credentials
	ShowRef
	ListID string `json:"list_id"`
}

type showRatingRequest struct {
	credentials
	ShowRef
	Rating int `json:"rating"`
}

type showUserStatsRequest struct {
	credentials
	ShowRef
	QueryUsername   string `json:"query_username"`
	IncludeEpisodes bool   `json:"include_episodes"`
}

type episodeRequest struct {
	credentials
	EpisodeRef
}

type episodeListRequest struct {
	credentials
	EpisodeRef
	ListID string `json:"list_id"`
}

type episodeRatingRequest struct {
	credentials
	EpisodeRef
	Rating int `json:"rating"`
}

type episodeWatchedRequest struct {
	credentials
	EpisodeRef
	InsertInStream bool `json:"insert_in_stream"`
}

// BulkChange is the state applied to every item of a bulk request. A nil field
// leaves that attribute untouched on the service.
type BulkChange struct {
	InCollection *bool `json:"in_collection"`
	Watched      *bool `json:"watched"`
	Rating       *int  `json:"rating"`
}

type bulkEpisodeRequest struct {
	credentials
	BulkChange
	Episodes []Episode `json:"episodes"`
}

type bulkMovieRequest struct {
	credentials
	BulkChange
	Movies []bulkMovie `json:"movies"`
}

// bulkMovie is the wire projection of a movie in a bulk request. It is built from a
// copy so the caller's movies are never modified.
type bulkMovie struct {
	Movie
	Resources string `json:"resources"`
}

func toBulkMovies(movies []Movie) []bulkMovie {
	out := make([]bulkMovie, 0, len(movies))
	for _, m := range movies {
		out = append(out, bulkMovie{Movie: m, Resources: movieResources(m)})
	}
	return out
}

// movieResources lists the known identifiers of m, IMDb first.
func movieResources(m Movie) string {
	var parts []string
	if m.IMDbID != "" {
		parts = append(parts, "imdb.com="+m.IMDbID)
	}
	if m.TMDbID != "" {
		parts = append(parts, "themoviedb.org="+string(m.TMDbID))
	}
	if m.ID != "" {
		parts = append(parts, "movie_id="+string(m.ID))
	}
	return strings.Join(parts, "|")
}
