package follwit

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetURLShape(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `[]`)

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)
	_, err := client.PopularEpisodes(context.Background(), start, end, "en-GB")
	require.NoError(t, err)

	req := rec.last(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/api/3/test-key/calendar.popular/2024-03-01/2024-03-08/en-GB", req.Path)
	assert.Empty(t, req.Raw, "GET requests carry no body")
}

func TestGetEscapesSegments(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{"username": "a b/c"}`)

	_, err := client.PublicProfile(context.Background(), "a b/c")
	require.NoError(t, err)
	assert.Equal(t, "/api/3/test-key/user.public_profile/a%20b%2Fc", rec.last(t).Path)
}

func TestPostURLShape(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{"response": "success"}`)

	_, err := client.RateMovieByID(context.Background(), MovieIDFollwIt, "42", 8)
	require.NoError(t, err)

	req := rec.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/api/3/test-key/movie.rate/", req.Path)
	assert.Equal(t, "application/json", req.ContentType)
	assert.JSONEq(t, `{"username":"alice","password":"`+testPasswordHash+`","movie_id":42,"rating":8}`, string(req.Raw))
}

func TestEmptySessionIsStillStamped(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{"response": "failure"}`)
	client.SetCredentials(Credentials{})

	ok, err := client.MarkMovieWatchingByID(context.Background(), MovieIDFollwIt, "1")
	require.NoError(t, err)
	assert.False(t, ok)

	fields := rec.last(t).Fields(t)
	assert.Equal(t, "", fields["username"])
	assert.Equal(t, "", fields["password"])
}

func TestTransportErrors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		call     func(c *Client) error
		wantErr  error
		wantKind ErrorKind
		check    func(t *testing.T, err error)
	}{
		{
			name:   "non 2xx",
			status: http.StatusInternalServerError,
			body:   `oops`,
			call: func(c *Client) error {
				_, err := c.MarkMovieWatchedByID(context.Background(), MovieIDIMDb, "tt1", false)
				return err
			},
			wantErr:  ErrTransport,
			wantKind: KindTransport,
			check: func(t *testing.T, err error) {
				var apiErr *APIError
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
				assert.Equal(t, "oops", apiErr.Body)
				assert.Contains(t, err.Error(), "movie.watched")
				assert.Contains(t, err.Error(), "500")
			},
		},
		{
			name:   "unauthorized",
			status: http.StatusUnauthorized,
			call: func(c *Client) error {
				_, err := c.UserLists(context.Background(), "")
				return err
			},
			wantErr:  ErrTransport,
			wantKind: KindTransport,
			check: func(t *testing.T, err error) {
				var apiErr *APIError
				require.ErrorAs(t, err, &apiErr)
				assert.True(t, apiErr.IsUnauthorized())
				assert.False(t, apiErr.IsNotFound())
			},
		},
		{
			name:   "malformed body",
			status: http.StatusOK,
			body:   `<html>maintenance</html>`,
			call: func(c *Client) error {
				_, err := c.MovieDetails(context.Background(), MovieIDFollwIt, "1", "")
				return err
			},
			wantErr:  ErrDecode,
			wantKind: KindDecode,
			check: func(t *testing.T, err error) {
				var decodeErr *DecodeError
				require.ErrorAs(t, err, &decodeErr)
				assert.Equal(t, "<html>maintenance</html>", decodeErr.Body)
				assert.Equal(t, getMovieSummary, decodeErr.Endpoint)
			},
		},
		{
			name:   "status object from a list endpoint",
			status: http.StatusOK,
			body:   `{"response": "error", "message": "invalid username or password"}`,
			call: func(c *Client) error {
				_, err := c.UserStream(context.Background(), "")
				return err
			},
			wantErr:  ErrService,
			wantKind: KindService,
			check: func(t *testing.T, err error) {
				var svcErr *ServiceError
				require.ErrorAs(t, err, &svcErr)
				assert.Equal(t, "invalid username or password", svcErr.Message)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, tt.status, tt.body)
			err := tt.call(client)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantKind, KindOf(err))
			if tt.check != nil {
				tt.check(t, err)
			}
		})
	}
}

func TestDataFailureIsReturnedAsPayload(t *testing.T) {
	client, _ := newTestClient(t, http.StatusOK, `{"response": "error", "message": "movie not found"}`)

	movie, err := client.MovieDetails(context.Background(), MovieIDFollwIt, "999999", "")
	require.NoError(t, err)
	assert.True(t, movie.Failed())
	assert.Equal(t, "movie not found", movie.Message)
}

func TestStringResultIsRaw(t *testing.T) {
	client, _ := newTestClient(t, http.StatusOK, `not json at all`)

	var raw string
	require.NoError(t, client.get(context.Background(), getUserLists, []string{"alice"}, &raw))
	assert.Equal(t, "not json at all", raw)
}

func TestNullListBecomesEmpty(t *testing.T) {
	client, _ := newTestClient(t, http.StatusOK, `null`)

	lists, err := client.UserLists(context.Background(), "bob")
	require.NoError(t, err)
	assert.NotNil(t, lists)
	assert.Empty(t, lists)
}

func TestCancellation(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client, err := NewClient(testAPIKey, zerolog.Nop(), WithBaseURL(server.URL))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	_, err = client.MarkMovieWatchedByID(ctx, MovieIDIMDb, "tt0133093", false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.False(t, errors.Is(err, ErrTransport), "cancellation is not a transport failure")
	assert.Equal(t, KindCanceled, KindOf(err))
}

func TestCanceledBeforeSend(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{"response": "success"}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.AddMovieToCollectionByID(ctx, MovieIDFollwIt, "1", false)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, rec.all())
}

func TestLogsRedactSecrets(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"response": "success"}`))
	}))
	defer server.Close()

	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	client, err := NewClient("super-secret-key", logger, WithBaseURL(server.URL), WithCredentials(testUsername, testPassword))
	require.NoError(t, err)

	_, err = client.MarkMovieWatchedByID(context.Background(), MovieIDIMDb, "tt0133093", true)
	require.NoError(t, err)

	logs := buf.String()
	assert.Contains(t, logs, "movie.watched")
	assert.Contains(t, logs, "request_id")
	assert.Contains(t, logs, `"status":200`)
	assert.Contains(t, logs, "/***/")
	assert.NotContains(t, logs, "super-secret-key")
	assert.NotContains(t, logs, testPasswordHash)
	assert.NotContains(t, logs, "tt0133093", "request bodies are not logged")
}

func TestBooleanNormalisation(t *testing.T) {
	tests := []struct {
		response string
		want     bool
	}{
		{"success", true},
		{"SUCCESS", true},
		{"Success: movie added", true},
		{"partial_success", true},
		{"failure", false},
		{"error", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.response, func(t *testing.T) {
			client, _ := newTestClient(t, http.StatusOK, `{"response": "`+tt.response+`"}`)
			ok, err := client.MarkMovieUnwatchedByID(context.Background(), MovieIDFollwIt, "1")
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestErrorBodyIsBounded(t *testing.T) {
	page := strings.Repeat("x", maxErrorBody+1024)
	client, _ := newTestClient(t, http.StatusBadGateway, page)

	_, err := client.UserLists(context.Background(), "")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Len(t, apiErr.Body, maxErrorBody)
	assert.Equal(t, KindTransport, KindOf(err))
}
