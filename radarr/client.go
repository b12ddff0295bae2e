// Package radarr reads a Radarr movie library as a sync source.
package radarr

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golift.io/starr"
	"golift.io/starr/radarr"

	"github.com/s0up4200/follwit/syncer"
)

// ErrTagNotFound is returned when a tag filter names a tag Radarr does not have.
var ErrTagNotFound = errors.New("tag not found")

// Client wraps the starr Radarr client and exposes the library as syncer items
type Client struct {
	api    Library
	opts   clientOptions
	logger zerolog.Logger
}

var _ syncer.Source = (*Client)(nil)

// NewClient creates a new Radarr client and checks that the server answers.
func NewClient(url, apiKey string, timeout time.Duration, logger zerolog.Logger, opts ...Option) (*Client, error) {
	config := starr.New(apiKey, url, timeout)
	radarrClient := radarr.New(config)

	// Test the connection
	if err := radarrClient.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to Radarr: %w", err)
	}

	return NewClientWithAPI(radarrClient, logger, opts...), nil
}

// NewClientWithAPI creates a client around an existing API implementation.
func NewClientWithAPI(api Library, logger zerolog.Logger, opts ...Option) *Client {
	c := &Client{
		api:    api,
		logger: logger.With().Str("component", "radarr").Logger(),
	}
	for _, opt := range opts {
		opt(&c.opts)
	}
	return c
}

func (c *Client) Name() string { return "radarr" }

// Items lists the library movies that pass the client's options.
func (c *Client) Items(ctx context.Context) ([]syncer.Item, error) {
	movies, err := c.GetAllMovies(ctx)
	if err != nil {
		return nil, err
	}

	tagID := -1
	if c.opts.tag != "" {
		tag, err := c.GetTagByName(ctx, c.opts.tag)
		if err != nil {
			return nil, err
		}
		tagID = tag.ID
	}

	items := make([]syncer.Item, 0, len(movies))
	for _, movie := range movies {
		if !c.include(movie, tagID) {
			continue
		}
		items = append(items, ToItem(movie))
	}

	c.logger.Debug().Int("total", len(movies)).Int("selected", len(items)).Msg("Selected movies from Radarr")
	return items, nil
}

func (c *Client) include(movie *radarr.Movie, tagID int) bool {
	if c.opts.downloadedOnly && !movie.HasFile {
		return false
	}
	if c.opts.monitoredOnly && !movie.Monitored {
		return false
	}
	if tagID < 0 {
		return true
	}
	for _, id := range movie.Tags {
		if id == tagID {
			return true
		}
	}
	return false
}

// GetAllMovies retrieves all movies from Radarr
func (c *Client) GetAllMovies(ctx context.Context) ([]*radarr.Movie, error) {
	movies, err := c.api.GetMovieContext(ctx, &radarr.GetMovie{})
	if err != nil {
		return nil, fmt.Errorf("failed to get movies: %w", err)
	}

	c.logger.Debug().Msgf("Retrieved %d movies from Radarr", len(movies))
	return movies, nil
}

// GetTagByName finds a tag by its label
func (c *Client) GetTagByName(ctx context.Context, label string) (*starr.Tag, error) {
	tags, err := c.api.GetTagsContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get tags: %w", err)
	}

	for _, tag := range tags {
		if tag.Label == label {
			return tag, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrTagNotFound, label)
}

// ToItem converts a Radarr movie to a sync item.
func ToItem(movie *radarr.Movie) syncer.Item {
	return syncer.Item{
		Title:  movie.Title,
		Year:   movie.Year,
		IMDbID: movie.ImdbID,
		TMDbID: int(movie.TmdbID),
	}
}
