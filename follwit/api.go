package follwit

import (
	"context"
	"time"
)

// SessionAPI manages the credentials stamped on every request.
type SessionAPI interface {
	Credentials() Credentials
	Username() string
	SetCredentials(creds Credentials)
	SetUsername(username string)
	SetPassword(password string)
}

// UserAPI covers accounts, profiles, lists and collections.
type UserAPI interface {
	Authenticate(ctx context.Context, username, password string) (bool, error)
	CreateUser(ctx context.Context, user NewUser) (bool, error)
	UpdateUser(ctx context.Context, update UserUpdate) (bool, error)
	UsernameAvailable(ctx context.Context, username string) (bool, error)
	PublicProfile(ctx context.Context, username string) (*User, error)
	FullProfile(ctx context.Context, username string) (*FullProfile, error)
	UserStream(ctx context.Context, username string) ([]StreamItem, error)
	OnlineChanges(ctx context.Context, since time.Time) ([]OnlineChange, error)
	UserLists(ctx context.Context, username string) ([]List, error)
	UserList(ctx context.Context, listID, username string) (*List, error)
	QueryUserLists(ctx context.Context, username string) ([]List, error)
	QueryUserList(ctx context.Context, listID, username string) (*List, error)
	UserMovieCollection(ctx context.Context, username string) ([]Movie, error)
	UserTvCollection(ctx context.Context, username string, includeEpisodes bool) ([]Show, error)
}

// CalendarAPI covers the airing calendars.
type CalendarAPI interface {
	PopularEpisodes(ctx context.Context, start, end time.Time, locale string) ([]Episode, error)
	FollowingCalendar(ctx context.Context, start, end time.Time, locale string) ([]Episode, error)
}

// MovieAPI covers movie lookups and mutations.
type MovieAPI interface {
	MovieDetails(ctx context.Context, kind MovieIdentification, movieID, locale string) (*Movie, error)
	SimilarMovies(ctx context.Context, kind MovieIdentification, movieID, locale string) ([]Movie, error)
	TrendingMovies(ctx context.Context, interval TimeInterval, locale string, limit int) ([]Movie, error)
	RecommendedMovies(ctx context.Context, genres ...Genre) ([]Movie, error)

	AddMovieToCollection(ctx context.Context, movie *Movie, insertInStream bool) (bool, error)
	AddMovieToCollectionByID(ctx context.Context, kind MovieIdentification, movieID string, insertInStream bool) (bool, error)
	RemoveMovieFromCollection(ctx context.Context, movie *Movie) (bool, error)
	RemoveMovieFromCollectionByID(ctx context.Context, kind MovieIdentification, movieID string) (bool, error)
	AddMovieToList(ctx context.Context, movie *Movie, listID string) (bool, error)
	AddMovieToListByID(ctx context.Context, kind MovieIdentification, movieID, listID string) (bool, error)
	RemoveMovieFromList(ctx context.Context, movie *Movie, listID string) (bool, error)
	RemoveMovieFromListByID(ctx context.Context, kind MovieIdentification, movieID, listID string) (bool, error)
	RateMovie(ctx context.Context, movie *Movie, rating int) (bool, error)
	RateMovieByID(ctx context.Context, kind MovieIdentification, movieID string, rating int) (bool, error)
	MarkMovieWatched(ctx context.Context, movie *Movie, insertInStream bool) (bool, error)
	MarkMovieWatchedByID(ctx context.Context, kind MovieIdentification, movieID string, insertInStream bool) (bool, error)
	MarkMovieUnwatched(ctx context.Context, movie *Movie) (bool, error)
	MarkMovieUnwatchedByID(ctx context.Context, kind MovieIdentification, movieID string) (bool, error)
	MarkMovieWatching(ctx context.Context, movie *Movie) (bool, error)
	MarkMovieWatchingByID(ctx context.Context, kind MovieIdentification, movieID string) (bool, error)
	MarkMovieNotWatching(ctx context.Context, movie *Movie) (bool, error)
	MarkMovieNotWatchingByID(ctx context.Context, kind MovieIdentification, movieID string) (bool, error)
	MovieUserStats(ctx context.Context, movie *Movie, username string) (*UserStats, error)
	MovieUserStatsByID(ctx context.Context, kind MovieIdentification, movieID, username string) (*UserStats, error)
	BulkChangeMovies(ctx context.Context, movies []Movie, change BulkChange) ([]BulkMovieResult, error)
}

// ShowAPI covers show lookups and mutations.
type ShowAPI interface {
	ShowDetails(ctx context.Context, kind ShowIdentification, showID string, includeEpisodes bool) (*Show, error)
	TrendingShows(ctx context.Context, interval TimeInterval, locale string, limit int) ([]Show, error)
	RecommendedShows(ctx context.Context, genres ...Genre) ([]Show, error)

	AddShowToList(ctx context.Context, show *Show, listID string) (bool, error)
	AddShowToListByID(ctx context.Context, kind ShowIdentification, showID int, listID string) (bool, error)
	RemoveShowFromList(ctx context.Context, show *Show, listID string) (bool, error)
	RemoveShowFromListByID(ctx context.Context, kind ShowIdentification, showID int, listID string) (bool, error)
	RateShow(ctx context.Context, show *Show, rating int) (bool, error)
	RateShowByID(ctx context.Context, kind ShowIdentification, showID, rating int) (bool, error)
	ShowUserStats(ctx context.Context, show *Show, username string, includeEpisodes bool) (*ShowUserStats, error)
	ShowUserStatsByID(ctx context.Context, kind ShowIdentification, showID int, username string, includeEpisodes bool) (*ShowUserStats, error)
}

// EpisodeAPI covers episode lookups and mutations.
type EpisodeAPI interface {
	EpisodeDetails(ctx context.Context, episode *Episode) (*Episode, error)
	EpisodeDetailsByID(ctx context.Context, kind ShowIdentification, episodeID int) (*Episode, error)
	EpisodeDetailsByRef(ctx context.Context, ref EpisodeRef) (*Episode, error)

	AddEpisodeToCollection(ctx context.Context, episode *Episode) (bool, error)
	AddEpisodeToCollectionByID(ctx context.Context, kind ShowIdentification, episodeID int) (bool, error)
	AddEpisodeToCollectionByRef(ctx context.Context, ref EpisodeRef) (bool, error)
	RemoveEpisodeFromCollection(ctx context.Context, episode *Episode) (bool, error)
	RemoveEpisodeFromCollectionByID(ctx context.Context, kind ShowIdentification, episodeID int) (bool, error)
	RemoveEpisodeFromCollectionByRef(ctx context.Context, ref EpisodeRef) (bool, error)
	AddEpisodeToList(ctx context.Context, episode *Episode, listID string) (bool, error)
	AddEpisodeToListByID(ctx context.Context, kind ShowIdentification, episodeID int, listID string) (bool, error)
	AddEpisodeToListByRef(ctx context.Context, ref EpisodeRef, listID string) (bool, error)
	RemoveEpisodeFromList(ctx context.Context, episode *Episode, listID string) (bool, error)
	RemoveEpisodeFromListByID(ctx context.Context, kind ShowIdentification, episodeID int, listID string) (bool, error)
	RemoveEpisodeFromListByRef(ctx context.Context, ref EpisodeRef, listID string) (bool, error)
	RateEpisode(ctx context.Context, episode *Episode, rating int) (bool, error)
	RateEpisodeByID(ctx context.Context, kind ShowIdentification, episodeID, rating int) (bool, error)
	RateEpisodeByRef(ctx context.Context, ref EpisodeRef, rating int) (bool, error)
	MarkEpisodeWatched(ctx context.Context, episode *Episode, insertInStream bool) (bool, error)
	MarkEpisodeWatchedByID(ctx context.Context, kind ShowIdentification, episodeID int, insertInStream bool) (bool, error)
	MarkEpisodeWatchedByRef(ctx context.Context, ref EpisodeRef, insertInStream bool) (bool, error)
	MarkEpisodeUnwatched(ctx context.Context, episode *Episode) (bool, error)
	MarkEpisodeUnwatchedByID(ctx context.Context, kind ShowIdentification, episodeID int) (bool, error)
	MarkEpisodeUnwatchedByRef(ctx context.Context, ref EpisodeRef) (bool, error)
	MarkEpisodeWatching(ctx context.Context, episode *Episode) (bool, error)
	MarkEpisodeWatchingByID(ctx context.Context, kind ShowIdentification, episodeID int) (bool, error)
	MarkEpisodeWatchingByRef(ctx context.Context, ref EpisodeRef) (bool, error)
	MarkEpisodeNotWatching(ctx context.Context, episode *Episode) (bool, error)
	MarkEpisodeNotWatchingByID(ctx context.Context, kind ShowIdentification, episodeID int) (bool, error)
	MarkEpisodeNotWatchingByRef(ctx context.Context, ref EpisodeRef) (bool, error)
	BulkChangeEpisodes(ctx context.Context, episodes []Episode, change BulkChange) ([]BulkEpisodeResult, error)
}

// API is the full operation catalogue, for consumers that want to substitute the client.
type API interface {
	SessionAPI
	UserAPI
	CalendarAPI
	MovieAPI
	ShowAPI
	EpisodeAPI
}

var _ API = (*Client)(nil)
