package follwit

import (
	"context"
	"strconv"
	"strings"
)

// Every movie mutation comes in two forms: the ByID form takes an (identification, id)
// pair and builds the request; the entity form resolves the pair with IdentifyMovie
// and calls the ByID form.

// MovieDetails returns the full record of a movie.
func (c *Client) MovieDetails(ctx context.Context, kind MovieIdentification, movieID, locale string) (*Movie, error) {
	movieID = strings.TrimSpace(movieID)
	if _, err := ResolveMovie(kind, movieID); err != nil {
		return nil, err
	}
	params := []string{kind.String(), movieID, localeOrDefault(locale)}
	return getObject[Movie](ctx, c, getMovieSummary, params)
}

// SimilarMovies returns movies similar to the given one.
func (c *Client) SimilarMovies(ctx context.Context, kind MovieIdentification, movieID, locale string) ([]Movie, error) {
	movieID = strings.TrimSpace(movieID)
	if _, err := ResolveMovie(kind, movieID); err != nil {
		return nil, err
	}
	params := []string{kind.String(), movieID, localeOrDefault(locale)}
	return getList[Movie](ctx, c, getMovieSimilar, params)
}

// TrendingMovies returns the movies trending over interval. TimeIntervalNewShows is
// rejected. A non-positive limit means 20.
func (c *Client) TrendingMovies(ctx context.Context, interval TimeInterval, locale string, limit int) ([]Movie, error) {
	if interval == TimeIntervalNewShows {
		return nil, unsupported(interval, "movies")
	}
	if _, ok := timeIntervalTokens.tokens[interval]; !ok {
		return nil, argumentError("interval", "unknown time interval")
	}
	params := []string{interval.String(), localeOrDefault(locale), strconv.Itoa(limitOrDefault(limit))}
	return getList[Movie](ctx, c, getMovieTrending, params)
}

// RecommendedMovies returns recommendations for the session user, optionally narrowed
// to genres.
func (c *Client) RecommendedMovies(ctx context.Context, genres ...Genre) ([]Movie, error) {
	req := recommendationRequest{credentials: c.stamp(), Genres: joinGenres(genres)}
	return postList[Movie](ctx, c, postMovieRecommendations, req)
}

func (c *Client) AddMovieToCollection(ctx context.Context, movie *Movie, insertInStream bool) (bool, error) {
	kind, id, err := IdentifyMovie(movie)
	if err != nil {
		return false, err
	}
	return c.AddMovieToCollectionByID(ctx, kind, id, insertInStream)
}

func (c *Client) AddMovieToCollectionByID(ctx context.Context, kind MovieIdentification, movieID string, insertInStream bool) (bool, error) {
	ref, err := ResolveMovie(kind, movieID)
	if err != nil {
		return false, err
	}
	return c.postStatus(ctx, postMovieCollection, movieCollectionRequest{credentials: c.stamp(), MovieRef: ref, InsertInStream: insertInStream})
}

func (c *Client) RemoveMovieFromCollection(ctx context.Context, movie *Movie) (bool, error) {
	kind, id, err := IdentifyMovie(movie)
	if err != nil {
		return false, err
	}
	return c.RemoveMovieFromCollectionByID(ctx, kind, id)
}

func (c *Client) RemoveMovieFromCollectionByID(ctx context.Context, kind MovieIdentification, movieID string) (bool, error) {
	return c.postMovie(ctx, postMovieUncollection, kind, movieID)
}

func (c *Client) AddMovieToList(ctx context.Context, movie *Movie, listID string) (bool, error) {
	if listID == "" {
		return false, argumentError("listId", "cannot be empty")
	}
	kind, id, err := IdentifyMovie(movie)
	if err != nil {
		return false, err
	}
	return c.AddMovieToListByID(ctx, kind, id, listID)
}

func (c *Client) AddMovieToListByID(ctx context.Context, kind MovieIdentification, movieID, listID string) (bool, error) {
	return c.postMovieList(ctx, postMovieList, kind, movieID, listID)
}

func (c *Client) RemoveMovieFromList(ctx context.Context, movie *Movie, listID string) (bool, error) {
	if listID == "" {
		return false, argumentError("listId", "cannot be empty")
	}
	kind, id, err := IdentifyMovie(movie)
	if err != nil {
		return false, err
	}
	return c.RemoveMovieFromListByID(ctx, kind, id, listID)
}

func (c *Client) RemoveMovieFromListByID(ctx context.Context, kind MovieIdentification, movieID, listID string) (bool, error) {
	return c.postMovieList(ctx, postMovieUnlist, kind, movieID, listID)
}

func (c *Client) RateMovie(ctx context.Context, movie *Movie, rating int) (bool, error) {
	kind, id, err := IdentifyMovie(movie)
	if err != nil {
		return false, err
	}
	return c.RateMovieByID(ctx, kind, id, rating)
}

func (c *Client) RateMovieByID(ctx context.Context, kind MovieIdentification, movieID string, rating int) (bool, error) {
	ref, err := ResolveMovie(kind, movieID)
	if err != nil {
		return false, err
	}
	return c.postStatus(ctx, postMovieRate, movieRatingRequest{credentials: c.stamp(), MovieRef: ref, Rating: rating})
}

func (c *Client) MarkMovieWatched(ctx context.Context, movie *Movie, insertInStream bool) (bool, error) {
	kind, id, err := IdentifyMovie(movie)
	if err != nil {
		return false, err
	}
	return c.MarkMovieWatchedByID(ctx, kind, id, insertInStream)
}

func (c *Client) MarkMovieWatchedByID(ctx context.Context, kind MovieIdentification, movieID string, insertInStream bool) (bool, error) {
	ref, err := ResolveMovie(kind, movieID)
	if err != nil {
		return false, err
	}
	return c.postStatus(ctx, postMovieWatched, movieWatchedRequest{credentials: c.stamp(), MovieRef: ref, InsertInStream: insertInStream})
}

func (c *Client) MarkMovieUnwatched(ctx context.Context, movie *Movie) (bool, error) {
	kind, id, err := IdentifyMovie(movie)
	if err != nil {
		return false, err
	}
	return c.MarkMovieUnwatchedByID(ctx, kind, id)
}

func (c *Client) MarkMovieUnwatchedByID(ctx context.Context, kind MovieIdentification, movieID string) (bool, error) {
	return c.postMovie(ctx, postMovieUnwatched, kind, movieID)
}

func (c *Client) MarkMovieWatching(ctx context.Context, movie *Movie) (bool, error) {
	kind, id, err := IdentifyMovie(movie)
	if err != nil {
		return false, err
	}
	return c.MarkMovieWatchingByID(ctx, kind, id)
}

func (c *Client) MarkMovieWatchingByID(ctx context.Context, kind MovieIdentification, movieID string) (bool, error) {
	return c.postMovie(ctx, postMovieWatching, kind, movieID)
}

func (c *Client) MarkMovieNotWatching(ctx context.Context, movie *Movie) (bool, error) {
	kind, id, err := IdentifyMovie(movie)
	if err != nil {
		return false, err
	}
	return c.MarkMovieNotWatchingByID(ctx, kind, id)
}

func (c *Client) MarkMovieNotWatchingByID(ctx context.Context, kind MovieIdentification, movieID string) (bool, error) {
	return c.postMovie(ctx, postMovieUnwatching, kind, movieID)
}

// MovieUserStats returns how username (the session user when empty) relates to movie.
func (c *Client) MovieUserStats(ctx context.Context, movie *Movie, username string) (*UserStats, error) {
	kind, id, err := IdentifyMovie(movie)
	if err != nil {
		return nil, err
	}
	return c.MovieUserStatsByID(ctx, kind, id, username)
}

func (c *Client) MovieUserStatsByID(ctx context.Context, kind MovieIdentification, movieID, username string) (*UserStats, error) {
	ref, err := ResolveMovie(kind, movieID)
	if err != nil {
		return nil, err
	}
	req := movieUserStatsRequest{credentials: c.stamp(), MovieRef: ref, QueryUsername: c.queryUsername(username)}
	return postObject[UserStats](ctx, c, postMovieUserStats, req)
}

// BulkChangeMovies applies change to every movie in one request. The movies are not
// modified. An empty slice returns without calling the service.
func (c *Client) BulkChangeMovies(ctx context.Context, movies []Movie, change BulkChange) ([]BulkMovieResult, error) {
	if len(movies) == 0 {
		return []BulkMovieResult{}, nil
	}
	req := bulkMovieRequest{credentials: c.stamp(), BulkChange: change, Movies: toBulkMovies(movies)}
	return postList[BulkMovieResult](ctx, c, postMovieBulkAction, req)
}

func (c *Client) postMovie(ctx context.Context, endpoint string, kind MovieIdentification, movieID string) (bool, error) {
	ref, err := ResolveMovie(kind, movieID)
	if err != nil {
		return false, err
	}
	return c.postStatus(ctx, endpoint, movieRequest{credentials: c.stamp(), MovieRef: ref})
}

func (c *Client) postMovieList(ctx context.Context, endpoint string, kind MovieIdentification, movieID, listID string) (bool, error) {
	if listID == "" {
		return false, argumentError("listId", "cannot be empty")
	}
	ref, err := ResolveMovie(kind, movieID)
	if err != nil {
		return false, err
	}
	return c.postStatus(ctx, endpoint, movieListRequest{credentials: c.stamp(), MovieRef: ref, ListID: listID})
}
