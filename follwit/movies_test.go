package follwit

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var movieIDKeys = []string{"movie_id", "imdb_id", "tmdb_id"}

// movieMutations lists every movie operation in its ByID form.
func movieMutations() map[string]func(c *Client, kind MovieIdentification, id string) error {
	ctx := context.Background()
	return map[string]func(c *Client, kind MovieIdentification, id string) error{
		postMovieCollection: func(c *Client, k MovieIdentification, id string) error {
			_, err := c.AddMovieToCollectionByID(ctx, k, id, true)
			return err
		},
		postMovieUncollection: func(c *Client, k MovieIdentification, id string) error {
			_, err := c.RemoveMovieFromCollectionByID(ctx, k, id)
			return err
		},
		postMovieList: func(c *Client, k MovieIdentification, id string) error {
			_, err := c.AddMovieToListByID(ctx, k, id, "list-1")
			return err
		},
		postMovieUnlist: func(c *Client, k MovieIdentification, id string) error {
			_, err := c.RemoveMovieFromListByID(ctx, k, id, "list-1")
			return err
		},
		postMovieRate: func(c *Client, k MovieIdentification, id string) error {
			_, err := c.RateMovieByID(ctx, k, id, 7)
			return err
		},
		postMovieWatched: func(c *Client, k MovieIdentification, id string) error {
			_, err := c.MarkMovieWatchedByID(ctx, k, id, false)
			return err
		},
		postMovieUnwatched: func(c *Client, k MovieIdentification, id string) error {
			_, err := c.MarkMovieUnwatchedByID(ctx, k, id)
			return err
		},
		postMovieWatching: func(c *Client, k MovieIdentification, id string) error {
			_, err := c.MarkMovieWatchingByID(ctx, k, id)
			return err
		},
		postMovieUnwatching: func(c *Client, k MovieIdentification, id string) error {
			_, err := c.MarkMovieNotWatchingByID(ctx, k, id)
			return err
		},
		postMovieUserStats: func(c *Client, k MovieIdentification, id string) error {
			_, err := c.MovieUserStatsByID(ctx, k, id, "")
			return err
		},
	}
}

func TestMovieOperationsSetExactlyOneIdentifier(t *testing.T) {
	kinds := []struct {
		kind MovieIdentification
		id   string
		key  string
	}{
		{MovieIDFollwIt, "42", "movie_id"},
		{MovieIDIMDb, "tt0133093", "imdb_id"},
		{MovieIDTMDb, "603", "tmdb_id"},
	}

	for endpoint, call := range movieMutations() {
		for _, k := range kinds {
			t.Run(endpoint+"/"+k.key, func(t *testing.T) {
				client, rec := newTestClient(t, http.StatusOK, `{"response": "success"}`)
				require.NoError(t, call(client, k.kind, k.id))

				req := rec.last(t)
				assert.Equal(t, "/api/3/test-key/"+endpoint+"/", req.Path)
				fields := req.Fields(t)
				assert.Equal(t, []string{k.key}, idFields(fields, movieIDKeys...))
				assert.Equal(t, testUsername, fields["username"])
				assert.Equal(t, testPasswordHash, fields["password"])
			})
		}
	}
}

func TestMovieEntityFormMatchesByIDForm(t *testing.T) {
	ctx := context.Background()
	movies := []struct {
		name  string
		movie Movie
		kind  MovieIdentification
		id    string
	}{
		{"follwit", Movie{ID: "42", IMDbID: "tt0133093", TMDbID: "603"}, MovieIDFollwIt, "42"},
		{"imdb", Movie{IMDbID: "tt0133093", TMDbID: "603"}, MovieIDIMDb, "tt0133093"},
		{"tmdb", Movie{TMDbID: "603"}, MovieIDTMDb, "603"},
	}

	pairs := []struct {
		name   string
		entity func(c *Client, m *Movie) error
		byID   func(c *Client, k MovieIdentification, id string) error
	}{
		{
			name:   "collection",
			entity: func(c *Client, m *Movie) error { _, err := c.AddMovieToCollection(ctx, m, true); return err },
			byID: func(c *Client, k MovieIdentification, id string) error {
				_, err := c.AddMovieToCollectionByID(ctx, k, id, true)
				return err
			},
		},
		{
			name:   "unlist",
			entity: func(c *Client, m *Movie) error { _, err := c.RemoveMovieFromList(ctx, m, "9"); return err },
			byID: func(c *Client, k MovieIdentification, id string) error {
				_, err := c.RemoveMovieFromListByID(ctx, k, id, "9")
				return err
			},
		},
		{
			name:   "rate",
			entity: func(c *Client, m *Movie) error { _, err := c.RateMovie(ctx, m, 10); return err },
			byID: func(c *Client, k MovieIdentification, id string) error {
				_, err := c.RateMovieByID(ctx, k, id, 10)
				return err
			},
		},
		{
			name:   "watched",
			entity: func(c *Client, m *Movie) error { _, err := c.MarkMovieWatched(ctx, m, false); return err },
			byID: func(c *Client, k MovieIdentification, id string) error {
				_, err := c.MarkMovieWatchedByID(ctx, k, id, false)
				return err
			},
		},
		{
			name:   "user stats",
			entity: func(c *Client, m *Movie) error { _, err := c.MovieUserStats(ctx, m, "bob"); return err },
			byID: func(c *Client, k MovieIdentification, id string) error {
				_, err := c.MovieUserStatsByID(ctx, k, id, "bob")
				return err
			},
		},
	}

	for _, p := range pairs {
		for _, m := range movies {
			t.Run(p.name+"/"+m.name, func(t *testing.T) {
				client, rec := newTestClient(t, http.StatusOK, `{"response": "success"}`)
				movie := m.movie
				require.NoError(t, p.entity(client, &movie))
				require.NoError(t, p.byID(client, m.kind, m.id))

				all := rec.all()
				require.Len(t, all, 2)
				assert.Equal(t, all[1].Path, all[0].Path)
				assert.Equal(t, string(all[1].Raw), string(all[0].Raw))
			})
		}
	}
}

func TestMovieValidationNeverReachesServer(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name    string
		call    func(c *Client) error
		wantErr error
	}{
		{
			name: "empty id",
			call: func(c *Client) error {
				_, err := c.MarkMovieWatchedByID(ctx, MovieIDIMDb, "", false)
				return err
			},
			wantErr: ErrInvalidArgument,
		},
		{
			name: "empty list id",
			call: func(c *Client) error {
				_, err := c.AddMovieToList(ctx, &Movie{ID: "1"}, "")
				return err
			},
			wantErr: ErrInvalidArgument,
		},
		{
			name: "nil movie",
			call: func(c *Client) error {
				_, err := c.RateMovie(ctx, nil, 5)
				return err
			},
			wantErr: ErrInvalidArgument,
		},
		{
			name: "movie without ids",
			call: func(c *Client) error {
				_, err := c.MarkMovieUnwatched(ctx, &Movie{Title: "Nameless"})
				return err
			},
			wantErr: ErrNoUsableIdentifier,
		},
		{
			name: "trending new shows",
			call: func(c *Client) error {
				_, err := c.TrendingMovies(ctx, TimeIntervalNewShows, "", 0)
				return err
			},
			wantErr: ErrUnsupportedOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, rec := newTestClient(t, http.StatusOK, `{"response": "success"}`)
			err := tt.call(client)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, rec.all())
		})
	}
}

func TestMovieLookups(t *testing.T) {
	ctx := context.Background()

	t.Run("details", func(t *testing.T) {
		client, rec := newTestClient(t, http.StatusOK, `{"follwit_movie_id": 42, "imdb_id": "tt0133093", "moviedb_id": "603", "title": "The Matrix", "year": 1999, "genres": "Action|Science-Fiction"}`)
		movie, err := client.MovieDetails(ctx, MovieIDIMDb, "tt0133093", "")
		require.NoError(t, err)
		assert.Equal(t, "/api/3/test-key/movie.summary/imdb_id/tt0133093/en", rec.last(t).Path)
		assert.Equal(t, FlexString("42"), movie.ID)
		assert.Equal(t, FlexString("603"), movie.TMDbID)
		assert.Equal(t, FlexString("1999"), movie.Year)
		assert.Equal(t, []string{"action", "science-fiction"}, movie.GenreList())
	})

	t.Run("similar", func(t *testing.T) {
		client, rec := newTestClient(t, http.StatusOK, `[{"title": "Dark City"}]`)
		movies, err := client.SimilarMovies(ctx, MovieIDTMDb, "603", "de")
		require.NoError(t, err)
		require.Len(t, movies, 1)
		assert.Equal(t, "/api/3/test-key/movie.similar_movies/tmdb_id/603/de", rec.last(t).Path)
	})

	t.Run("ids are trimmed", func(t *testing.T) {
		client, rec := newTestClient(t, http.StatusOK, `{"title": "x"}`)
		_, err := client.MovieDetails(ctx, MovieIDFollwIt, " 42 ", "")
		require.NoError(t, err)
		assert.Equal(t, "/api/3/test-key/movie.summary/movie_id/42/en", rec.last(t).Path)

		client, rec = newTestClient(t, http.StatusOK, `[]`)
		_, err = client.SimilarMovies(ctx, MovieIDIMDb, "tt0133093\n", "")
		require.NoError(t, err)
		assert.Equal(t, "/api/3/test-key/movie.similar_movies/imdb_id/tt0133093/en", rec.last(t).Path)
	})

	t.Run("trending defaults", func(t *testing.T) {
		client, rec := newTestClient(t, http.StatusOK, `[]`)
		_, err := client.TrendingMovies(ctx, TimeIntervalWeek, "", 0)
		require.NoError(t, err)
		assert.Equal(t, "/api/3/test-key/movie.trending/week/en/20", rec.last(t).Path)
	})

	t.Run("recommendations", func(t *testing.T) {
		client, rec := newTestClient(t, http.StatusOK, `[]`)
		_, err := client.RecommendedMovies(ctx, GenreFilmNoir, GenreThriller)
		require.NoError(t, err)
		fields := rec.last(t).Fields(t)
		assert.Equal(t, "film-noir|thriller", fields["genres"])
	})
}

func TestBulkChangeMovies(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `[{"client_id": 1, "movie_id": 42, "watched": true, "in_collection": true}]`)

	movies := []Movie{
		{IMDbID: "tt0133093"},
		{ID: "42", IMDbID: "tt0234215", TMDbID: "604"},
		{TMDbID: "605", ID: "43"},
	}
	before := append([]Movie(nil), movies...)

	watched := true
	results, err := client.BulkChangeMovies(context.Background(), movies, BulkChange{Watched: &watched})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Watched)
	assert.Equal(t, FlexString("42"), results[0].MovieID)

	assert.Equal(t, before, movies, "input movies are not modified")

	fields := rec.last(t).Fields(t)
	assert.Equal(t, true, fields["watched"])
	assert.Nil(t, fields["in_collection"])
	assert.Nil(t, fields["rating"])
	assert.Contains(t, fields, "rating", "unset overrides are sent as null")

	sent := fields["movies"].([]any)
	require.Len(t, sent, 3)
	assert.Equal(t, "imdb.com=tt0133093", sent[0].(map[string]any)["resources"])
	assert.Equal(t, "imdb.com=tt0234215|themoviedb.org=604|movie_id=42", sent[1].(map[string]any)["resources"])
	assert.Equal(t, "themoviedb.org=605|movie_id=43", sent[2].(map[string]any)["resources"])
}

func TestBulkChangeMoviesEmpty(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `[]`)

	results, err := client.BulkChangeMovies(context.Background(), nil, BulkChange{})
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Empty(t, rec.all())
}

func TestMovieResources(t *testing.T) {
	tests := []struct {
		name  string
		movie Movie
		want  string
	}{
		{"imdb only", Movie{IMDbID: "tt1"}, "imdb.com=tt1"},
		{"all ids", Movie{ID: "3", IMDbID: "tt1", TMDbID: "2"}, "imdb.com=tt1|themoviedb.org=2|movie_id=3"},
		{"native only", Movie{ID: "3"}, "movie_id=3"},
		{"none", Movie{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, movieResources(tt.movie))
		})
	}
}
