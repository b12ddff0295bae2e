package follwit

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveMovie(t *testing.T) {
	tests := []struct {
		name     string
		kind     MovieIdentification
		id       string
		wantJSON string
		wantErr  error
	}{
		{
			name:     "follwit id",
			kind:     MovieIDFollwIt,
			id:       "1234",
			wantJSON: `{"movie_id":1234}`,
		},
		{
			name:     "imdb id kept as string",
			kind:     MovieIDIMDb,
			id:       "tt0133093",
			wantJSON: `{"imdb_id":"tt0133093"}`,
		},
		{
			name:     "tmdb id",
			kind:     MovieIDTMDb,
			id:       "603",
			wantJSON: `{"tmdb_id":603}`,
		},
		{
			name:    "empty id",
			kind:    MovieIDIMDb,
			id:      "",
			wantErr: ErrInvalidArgument,
		},
		{
			name:    "non numeric follwit id",
			kind:    MovieIDFollwIt,
			id:      "tt0133093",
			wantErr: ErrInvalidArgument,
		},
		{
			name:    "unknown kind",
			kind:    MovieIdentification(9),
			id:      "1",
			wantErr: ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := ResolveMovie(tt.kind, tt.id)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			data, err := json.Marshal(ref)
			require.NoError(t, err)
			assert.JSONEq(t, tt.wantJSON, string(data))
		})
	}
}

func TestResolveShowAndEpisode(t *testing.T) {
	show, err := ResolveShow(ShowIDFollwIt, 7)
	require.NoError(t, err)
	data, _ := json.Marshal(show)
	assert.JSONEq(t, `{"show_id":7}`, string(data))

	show, err = ResolveShow(ShowIDTVDb, 80379)
	require.NoError(t, err)
	data, _ = json.Marshal(show)
	assert.JSONEq(t, `{"tvdb_series_id":80379}`, string(data))

	ep, err := ResolveEpisode(ShowIDFollwIt, 11)
	require.NoError(t, err)
	data, _ = json.Marshal(ep)
	assert.JSONEq(t, `{"episode_id":11}`, string(data))

	ep, err = ResolveEpisode(ShowIDTVDb, 349232)
	require.NoError(t, err)
	data, _ = json.Marshal(ep)
	assert.JSONEq(t, `{"tvdb_episode_id":349232}`, string(data))

	_, err = ResolveShow(ShowIDIMDb, 1)
	assert.ErrorIs(t, err, ErrUnsupportedOperation)
	assert.Equal(t, KindUnsupportedOperation, KindOf(err))

	_, err = ResolveEpisode(ShowIDIMDb, 1)
	assert.ErrorIs(t, err, ErrUnsupportedOperation)
}

func TestNaturalEpisodeKeys(t *testing.T) {
	data, err := json.Marshal(EpisodeByTVDb(80379, 2, 5))
	require.NoError(t, err)
	assert.JSONEq(t, `{"tvdb_episode_id":80379,"season_number":2,"episode_number":5}`, string(data))

	ref, err := EpisodeByName("The Big Bang Theory", 0, 1, "Unaired Pilot")
	require.NoError(t, err)
	data, err = json.Marshal(ref)
	require.NoError(t, err)
	assert.JSONEq(t, `{"series_name":"The Big Bang Theory","season_number":0,"episode_number":1,"episode_name":"Unaired Pilot"}`, string(data))

	_, err = EpisodeByName("", 1, 1, "Pilot")
	var argErr *ArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "seriesName", argErr.Name)

	_, err = EpisodeByName("Show", 1, 1, "")
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "episodeName", argErr.Name)
}

func TestIdentifyMovie(t *testing.T) {
	tests := []struct {
		name     string
		movie    *Movie
		wantKind MovieIdentification
		wantID   string
		wantErr  error
	}{
		{
			name:     "follwit id wins",
			movie:    &Movie{ID: "42", IMDbID: "tt0133093", TMDbID: "603"},
			wantKind: MovieIDFollwIt,
			wantID:   "42",
		},
		{
			name:     "imdb before tmdb",
			movie:    &Movie{IMDbID: "tt0133093", TMDbID: "603"},
			wantKind: MovieIDIMDb,
			wantID:   "tt0133093",
		},
		{
			name:     "tmdb only",
			movie:    &Movie{TMDbID: "603"},
			wantKind: MovieIDTMDb,
			wantID:   "603",
		},
		{
			name:    "no identifiers",
			movie:   &Movie{Title: "Unknown"},
			wantErr: ErrNoUsableIdentifier,
		},
		{
			name:    "nil movie",
			movie:   nil,
			wantErr: ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, id, err := IdentifyMovie(tt.movie)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, kind)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestIdentifyShowAndEpisode(t *testing.T) {
	kind, id, err := IdentifyShow(&Show{FollwItSeriesID: 5, TVDbSeriesID: 80379})
	require.NoError(t, err)
	assert.Equal(t, ShowIDFollwIt, kind)
	assert.Equal(t, 5, id)

	kind, id, err = IdentifyShow(&Show{TVDbSeriesID: 80379})
	require.NoError(t, err)
	assert.Equal(t, ShowIDTVDb, kind)
	assert.Equal(t, 80379, id)

	_, _, err = IdentifyShow(&Show{SeriesName: "Nothing"})
	assert.ErrorIs(t, err, ErrNoUsableIdentifier)
	assert.Equal(t, KindNoUsableIdentifier, KindOf(err))

	kind, id, err = IdentifyEpisode(&Episode{TVDbEpisodeID: 349232})
	require.NoError(t, err)
	assert.Equal(t, ShowIDTVDb, kind)
	assert.Equal(t, 349232, id)

	_, _, err = IdentifyEpisode(nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestIdentificationTokens(t *testing.T) {
	assert.Equal(t, "movie_id", MovieIDFollwIt.String())
	assert.Equal(t, "imdb_id", MovieIDIMDb.String())
	assert.Equal(t, "tmdb_id", MovieIDTMDb.String())
	assert.Equal(t, "show_id", ShowIDFollwIt.String())
	assert.Equal(t, "tvdb_id", ShowIDTVDb.String())

	kind, err := ParseMovieIdentification("TMDB_ID")
	require.NoError(t, err)
	assert.Equal(t, MovieIDTMDb, kind)

	_, err = ParseShowIdentification("tmdb_id")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
