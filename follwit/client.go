package follwit

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the root of the follw.it v3 API.
const DefaultBaseURL = "http://follw.it/api/3"

// Client represents a follw.it API client. It is safe for concurrent use; the session
// credentials are swapped atomically and every request reads them once.
type Client struct {
	baseURL      string
	apiKey       string
	httpClient   *http.Client
	userAgent    string
	hashPassword PasswordHasher
	logger       zerolog.Logger
	session      atomic.Pointer[Credentials]
	now          func() time.Time
}

// NewClient creates a new follw.it client for the given application API key.
func NewClient(apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("%w: API key is required", ErrInvalidConfig)
	}

	options := clientOptions{
		baseURL: DefaultBaseURL,
		hasher:  SHA1Hasher,
	}
	for _, opt := range opts {
		opt(&options)
	}

	baseURL := strings.TrimRight(strings.TrimSpace(options.baseURL), "/")
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("%w: invalid base URL %q", ErrInvalidConfig, options.baseURL)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if options.timeout > 0 {
		// copy so a caller supplied client is left untouched
		hc := *httpClient
		hc.Timeout = options.timeout
		httpClient = &hc
	}

	client := &Client{
		baseURL:      baseURL,
		apiKey:       apiKey,
		httpClient:   httpClient,
		userAgent:    options.userAgent,
		hashPassword: options.hasher,
		logger:       logger.With().Str("component", "follwit").Logger(),
		now:          time.Now,
	}

	creds := Credentials{Username: options.username}
	if options.password != "" {
		creds.PasswordHash = client.hashPassword(options.password)
	}
	client.session.Store(&creds)

	return client, nil
}
