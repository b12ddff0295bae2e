package syncer

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/s0up4200/follwit/follwit"
)

// Action is the follw.it mutation applied to every synced item.
type Action string

const (
	ActionCollect   Action = "collect"
	ActionUncollect Action = "uncollect"
	ActionWatched   Action = "watched"
	ActionUnwatched Action = "unwatched"
)

// ParseAction parses a sync action name, ignoring case.
func ParseAction(s string) (Action, error) {
	switch a := Action(strings.ToLower(strings.TrimSpace(s))); a {
	case ActionCollect, ActionUncollect, ActionWatched, ActionUnwatched:
		return a, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
}

const (
	DefaultConcurrency = 4
	MaxConcurrency     = 20
)

// MovieWriter is the part of follwit.MovieAPI the syncer drives.
type MovieWriter interface {
	AddMovieToCollection(ctx context.Context, movie *follwit.Movie, insertInStream bool) (bool, error)
	RemoveMovieFromCollection(ctx context.Context, movie *follwit.Movie) (bool, error)
	MarkMovieWatched(ctx context.Context, movie *follwit.Movie, insertInStream bool) (bool, error)
	MarkMovieUnwatched(ctx context.Context, movie *follwit.Movie) (bool, error)
	BulkChangeMovies(ctx context.Context, movies []follwit.Movie, change follwit.BulkChange) ([]follwit.BulkMovieResult, error)
}

var _ MovieWriter = (follwit.MovieAPI)(nil)

// Options controls a sync run.
type Options struct {
	Action         Action
	Concurrency    int
	RateLimit      float64 // requests per second, <= 0 means unlimited
	InsertInStream bool
	DryRun         bool
}

// Syncer applies one action to many movies with bounded concurrency and a rate limit.
type Syncer struct {
	api     MovieWriter
	opts    Options
	limiter *rate.Limiter
	logger  zerolog.Logger
}

// New creates a Syncer.
func New(api MovieWriter, logger zerolog.Logger, opts Options) (*Syncer, error) {
	if api == nil {
		return nil, fmt.Errorf("syncer: movie API is required")
	}
	if _, err := ParseAction(string(opts.Action)); err != nil {
		return nil, err
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	opts.Concurrency = min(opts.Concurrency, MaxConcurrency)

	limit := rate.Inf
	if opts.RateLimit > 0 {
		limit = rate.Limit(opts.RateLimit)
	}

	return &Syncer{
		api:     api,
		opts:    opts,
		limiter: rate.NewLimiter(limit, 1),
		logger:  logger.With().Str("component", "syncer").Str("action", string(opts.Action)).Logger(),
	}, nil
}

// Run applies the action to every item. Failures of single items are collected in
// the result and never stop the batch. Canceling ctx stops scheduling new items; the
// result then covers what was done and the context error is returned.
func (s *Syncer) Run(ctx context.Context, items []Item) (Result, error) {
	result := Result{Requested: len(items)}
	if len(items) == 0 {
		return result, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Concurrency)

	var mu sync.Mutex
	record := func(fn func(r *Result)) {
		mu.Lock()
		fn(&result)
		mu.Unlock()
	}

	var scheduleErr error
	for _, item := range items {
		movie := item.Movie()
		if _, _, err := follwit.IdentifyMovie(&movie); err != nil {
			s.logger.Warn().Str("movie", item.String()).Msg("Skipping movie without a usable identifier")
			record(func(r *Result) { r.Skipped = append(r.Skipped, item) })
			continue
		}

		if s.opts.DryRun {
			s.logger.Info().Str("movie", item.String()).Msg("[DRY RUN] Would sync movie")
			record(func(r *Result) { r.Succeeded = append(r.Succeeded, item) })
			continue
		}

		if err := s.limiter.Wait(gctx); err != nil {
			scheduleErr = err
			break
		}

		g.Go(func() error {
			ok, err := s.apply(gctx, &movie)
			switch {
			case err != nil:
				s.logger.Warn().Err(err).Str("movie", item.String()).Msg("Failed to sync movie")
				record(func(r *Result) { r.Failed = append(r.Failed, ItemError{Item: item, Err: err}) })
			case !ok:
				s.logger.Warn().Str("movie", item.String()).Msg("follw.it rejected movie")
				record(func(r *Result) { r.Rejected = append(r.Rejected, item) })
			default:
				s.logger.Debug().Str("movie", item.String()).Msg("Synced movie")
				record(func(r *Result) { r.Succeeded = append(r.Succeeded, item) })
			}
			// Don't stop on individual errors
			return nil
		})
	}

	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return result, err
	}
	if scheduleErr != nil {
		// the limiter gives up early when the deadline cannot be met
		return result, fmt.Errorf("sync stopped: %w", scheduleErr)
	}

	s.logger.Info().
		Int("requested", result.Requested).
		Int("succeeded", len(result.Succeeded)).
		Int("rejected", len(result.Rejected)).
		Int("failed", len(result.Failed)).
		Int("skipped", len(result.Skipped)).
		Msg("Sync finished")

	return result, nil
}

// RunBulk sends every identifiable item in a single bulk request.
func (s *Syncer) RunBulk(ctx context.Context, items []Item) ([]follwit.BulkMovieResult, error) {
	movies := make([]follwit.Movie, 0, len(items))
	for _, item := range items {
		m := item.Movie()
		if _, _, err := follwit.IdentifyMovie(&m); err != nil {
			s.logger.Warn().Str("movie", item.String()).Msg("Skipping movie without a usable identifier")
			continue
		}
		movies = append(movies, m)
	}

	if s.opts.DryRun {
		s.logger.Info().Int("movies", len(movies)).Msg("[DRY RUN] Would send bulk change")
		return []follwit.BulkMovieResult{}, nil
	}

	return s.api.BulkChangeMovies(ctx, movies, bulkChange(s.opts.Action))
}

func (s *Syncer) apply(ctx context.Context, movie *follwit.Movie) (bool, error) {
	switch s.opts.Action {
	case ActionCollect:
		return s.api.AddMovieToCollection(ctx, movie, s.opts.InsertInStream)
	case ActionUncollect:
		return s.api.RemoveMovieFromCollection(ctx, movie)
	case ActionWatched:
		return s.api.MarkMovieWatched(ctx, movie, s.opts.InsertInStream)
	case ActionUnwatched:
		return s.api.MarkMovieUnwatched(ctx, movie)
	}
	return false, fmt.Errorf("%w: %q", ErrUnknownAction, s.opts.Action)
}

func bulkChange(action Action) follwit.BulkChange {
	yes, no := true, false
	switch action {
	case ActionCollect:
		return follwit.BulkChange{InCollection: &yes}
	case ActionUncollect:
		return follwit.BulkChange{InCollection: &no}
	case ActionWatched:
		return follwit.BulkChange{Watched: &yes}
	default:
		return follwit.BulkChange{Watched: &no}
	}
}
