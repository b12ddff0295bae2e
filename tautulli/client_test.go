package tautulli

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/follwit/syncer"
)

func historyPage(total int, records ...HistoryRecord) HistoryResponse {
	return HistoryResponse{Response: Response{
		Result: "success",
		Data:   HistoryData{RecordsFiltered: total, RecordsTotal: total, Data: records},
	}}
}

func TestTestConnection(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "success", status: http.StatusOK, body: `{"response":{"result":"success","message":null,"data":{}}}`},
		{name: "bad key", status: http.StatusOK, body: `{"response":{"result":"error","message":"Invalid apikey","data":{}}}`, wantErr: ErrAPIFailure},
		{name: "server error", status: http.StatusInternalServerError, body: `oops`, wantErr: ErrInvalidResponse},
		{name: "not json", status: http.StatusOK, body: `<html>`, wantErr: ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/v2", r.URL.Path)
				assert.Equal(t, "get_server_info", r.URL.Query().Get("cmd"))
				assert.Equal(t, "secret", r.URL.Query().Get("apikey"))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(server.URL+"/", "secret", zerolog.Nop())
			err := client.TestConnection(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestHistoryPaging(t *testing.T) {
	all := []HistoryRecord{
		{Title: "A", PercentComplete: 100},
		{Title: "B", PercentComplete: 100},
		{Title: "C", PercentComplete: 100},
		{Title: "D", PercentComplete: 100},
		{Title: "E", PercentComplete: 100},
	}

	var starts []int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "get_history", q.Get("cmd"))
		assert.Equal(t, "movie", q.Get("media_type"))
		assert.Equal(t, "alice", q.Get("user"))

		start, _ := strconv.Atoi(q.Get("start"))
		length, _ := strconv.Atoi(q.Get("length"))
		starts = append(starts, start)

		end := min(start+length, len(all))
		_ = json.NewEncoder(w).Encode(historyPage(len(all), all[start:end]...))
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret", zerolog.Nop(), WithUser("alice"))
	client.pageSize = 2

	records, err := client.History(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 5)
	assert.Equal(t, []int{0, 2, 4}, starts)
}

func TestHistoryFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"response":{"result":"error","message":"Database locked","data":{}}}`))
	}))
	defer server.Close()

	_, err := NewClient(server.URL, "secret", zerolog.Nop()).Items(context.Background())
	assert.ErrorIs(t, err, ErrAPIFailure)

	var resultErr *ResultError
	require.ErrorAs(t, err, &resultErr)
	assert.Equal(t, "get_history", resultErr.Cmd)
	assert.Equal(t, "Database locked", resultErr.Message)
}

func TestWatchedMovies(t *testing.T) {
	jan := time.Date(2024, 1, 10, 20, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 3, 21, 0, 0, 0, time.UTC)

	records := []HistoryRecord{
		{Title: "The Matrix", Year: 1999, IMDbID: "tt0133093", TMDbID: "603", PercentComplete: 95, Date: jan.Unix()},
		{Title: "The Matrix", Year: 1999, GUID: "com.plexapp.agents.imdb://tt0133093?lang=en", PercentComplete: 100, Date: feb.Unix()},
		{Title: "Dune", Year: 2021, TMDbID: "438631", PercentComplete: 40, Date: feb.Unix()},
		{Title: "Heat", Year: 1995, WatchedStatus: 1, Date: jan.Unix()},
		{Title: "Heat", Year: 1995, PercentComplete: 90, Date: feb.Unix()},
	}

	got := WatchedMovies(records, 85)
	want := []syncer.Item{
		{Title: "The Matrix", Year: 1999, IMDbID: "tt0133093", TMDbID: 603, WatchedAt: feb},
		{Title: "Heat", Year: 1995, WatchedAt: feb},
	}
	assert.Equal(t, want, got)

	assert.Empty(t, WatchedMovies(nil, 85))
	assert.Len(t, WatchedMovies(records, 30), 3, "a lower threshold counts Dune as watched")
}

func TestItemsUsesMinWatchPercent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(historyPage(1, HistoryRecord{Title: "Dune", IMDbID: "tt1160419", PercentComplete: 70}))
	}))
	defer server.Close()

	items, err := NewClient(server.URL, "secret", zerolog.Nop()).Items(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)

	items, err = NewClient(server.URL, "secret", zerolog.Nop(), WithMinWatchPercent(60)).Items(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "tt1160419", items[0].IMDbID)
}

func TestConnectionErrorHidesAPIKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	err := NewClient(server.URL, "super-secret-key", zerolog.Nop()).TestConnection(context.Background())
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "super-secret-key")
	assert.Contains(t, err.Error(), "apikey=REDACTED")
	assert.Contains(t, err.Error(), "get_server_info")
}
