package follwit

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const (
	testAPIKey   = "test-key"
	testUsername = "alice"
	testPassword = "secret"
	// lowercase hex SHA-1 of testPassword
	testPasswordHash = "e5e9fa1ba31ecd1ae84f75caaa474f3a663f05f4"
)

type recordedRequest struct {
	Method      string
	Path        string
	ContentType string
	Raw         []byte
}

// Fields decodes the recorded JSON body.
func (r recordedRequest) Fields(t *testing.T) map[string]any {
	t.Helper()
	fields := map[string]any{}
	require.NoError(t, json.Unmarshal(r.Raw, &fields))
	return fields
}

type recorder struct {
	mu       sync.Mutex
	requests []recordedRequest
}

func (r *recorder) add(req recordedRequest) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, req)
}

func (r *recorder) all() []recordedRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]recordedRequest(nil), r.requests...)
}

func (r *recorder) last(t *testing.T) recordedRequest {
	t.Helper()
	all := r.all()
	require.NotEmpty(t, all, "no request reached the server")
	return all[len(all)-1]
}

// newTestClient starts a server that records every request and answers with body.
func newTestClient(t *testing.T, status int, body string, opts ...Option) (*Client, *recorder) {
	t.Helper()
	rec := &recorder{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		rec.add(recordedRequest{
			Method:      r.Method,
			Path:        r.URL.EscapedPath(),
			ContentType: r.Header.Get("Content-Type"),
			Raw:         raw,
		})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)

	options := append([]Option{
		WithBaseURL(server.URL + "/api/3"),
		WithCredentials(testUsername, testPassword),
	}, opts...)
	client, err := NewClient(testAPIKey, zerolog.Nop(), options...)
	require.NoError(t, err)
	return client, rec
}

// idFields returns the identification keys present in a request body.
func idFields(fields map[string]any, keys ...string) []string {
	var present []string
	for _, k := range keys {
		if _, ok := fields[k]; ok {
			present = append(present, k)
		}
	}
	return present
}

func jsonString(v any) (string, error) {
	data, err := json.Marshal(v)
	return string(data), err
}

// bodyWithoutCredentials strips the session fields so tests can compare the rest.
func bodyWithoutCredentials(t *testing.T, req recordedRequest) string {
	t.Helper()
	fields := req.Fields(t)
	delete(fields, "username")
	delete(fields, "password")
	s, err := jsonString(fields)
	require.NoError(t, err)
	return s
}
