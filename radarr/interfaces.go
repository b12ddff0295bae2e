package radarr

import (
	"context"

	"golift.io/starr"
	"golift.io/starr/radarr"
)

// Library is the read-only slice of the starr client that Items needs.
type Library interface {
	GetMovieContext(ctx context.Context, params *radarr.GetMovie) ([]*radarr.Movie, error)
	GetTagsContext(ctx context.Context) ([]*starr.Tag, error)
	Ping() error
}

var _ Library = (*radarr.Radarr)(nil)
