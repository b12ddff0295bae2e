package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/s0up4200/follwit/filter"
	"github.com/s0up4200/follwit/follwit"
)

var errNoTarget = errors.New("exactly one identifier flag is required")

// movieFlags identify the movie a command works on.
type movieFlags struct {
	id   string
	imdb string
	tmdb string
}

func (f movieFlags) target() (follwit.MovieIdentification, string, error) {
	var (
		kind follwit.MovieIdentification
		id   string
		set  int
	)
	if f.id != "" {
		kind, id, set = follwit.MovieIDFollwIt, f.id, set+1
	}
	if f.imdb != "" {
		kind, id, set = follwit.MovieIDIMDb, f.imdb, set+1
	}
	if f.tmdb != "" {
		kind, id, set = follwit.MovieIDTMDb, f.tmdb, set+1
	}
	if set != 1 {
		return 0, "", fmt.Errorf("%w: use one of --id, --imdb or --tmdb", errNoTarget)
	}
	return kind, id, nil
}

// showFlags identify a show. IMDb ids only work for lookups.
type showFlags struct {
	id   int
	imdb string
	tvdb int
}

func (f showFlags) target() (follwit.ShowIdentification, string, error) {
	var (
		kind follwit.ShowIdentification
		id   string
		set  int
	)
	if f.id > 0 {
		kind, id, set = follwit.ShowIDFollwIt, strconv.Itoa(f.id), set+1
	}
	if f.imdb != "" {
		kind, id, set = follwit.ShowIDIMDb, f.imdb, set+1
	}
	if f.tvdb > 0 {
		kind, id, set = follwit.ShowIDTVDb, strconv.Itoa(f.tvdb), set+1
	}
	if set != 1 {
		return 0, "", fmt.Errorf("%w: use one of --id, --imdb or --tvdb", errNoTarget)
	}
	return kind, id, nil
}

func (f showFlags) numericTarget() (follwit.ShowIdentification, int, error) {
	kind, id, err := f.target()
	if err != nil {
		return 0, 0, err
	}
	if kind == follwit.ShowIDIMDb {
		return 0, 0, fmt.Errorf("%w: %s cannot address shows here", follwit.ErrUnsupportedOperation, kind)
	}
	n, _ := strconv.Atoi(id)
	return kind, n, nil
}

// episodeFlags identify an episode by id or by natural key.
type episodeFlags struct {
	id       int
	tvdb     int
	series   string
	season   int
	number   int
	name     string
	numbered bool // season and number were given
}

func (f episodeFlags) ref() (follwit.EpisodeRef, error) {
	switch {
	case f.id > 0 && f.tvdb == 0 && f.series == "":
		return follwit.ResolveEpisode(follwit.ShowIDFollwIt, f.id)
	case f.tvdb > 0 && f.id == 0 && f.series == "":
		if f.numbered {
			return follwit.EpisodeByTVDb(f.tvdb, f.season, f.number), nil
		}
		return follwit.ResolveEpisode(follwit.ShowIDTVDb, f.tvdb)
	case f.series != "" && f.id == 0 && f.tvdb == 0:
		if !f.numbered {
			return follwit.EpisodeRef{}, errors.New("--series needs --season and --number")
		}
		return follwit.EpisodeByName(f.series, f.season, f.number, f.name)
	}
	return follwit.EpisodeRef{}, fmt.Errorf("%w: use --id, --tvdb or --series", errNoTarget)
}

// parseDay parses an optional YYYY-MM-DD flag value.
func parseDay(flagName, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(follwit.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s %q: expected YYYY-MM-DD", flagName, value)
	}
	return t, nil
}

func parseGenres(values []string) ([]follwit.Genre, error) {
	genres := make([]follwit.Genre, 0, len(values))
	for _, v := range values {
		g, err := follwit.ParseGenre(v)
		if err != nil {
			return nil, err
		}
		genres = append(genres, g)
	}
	return genres, nil
}

// filterFlags select a subset of a returned movie or show list.
type filterFlags struct {
	expression string
	preset     string
}

func (f filterFlags) resolve(m *filter.Manager) (filter.Filter, error) {
	compiled, err := m.Resolve(f.expression, f.preset)
	if err != nil {
		return nil, err
	}
	if compiled == nil {
		return nil, nil
	}
	logger.Debug().Str("filter", compiled.Expression()).Msg("Applying filter")
	return compiled, nil
}

func (f filterFlags) movies(m *filter.Manager, movies []follwit.Movie) ([]follwit.Movie, error) {
	flt, err := f.resolve(m)
	if err != nil || flt == nil {
		return movies, err
	}
	return filter.SelectMovies(flt, movies), nil
}

func (f filterFlags) shows(m *filter.Manager, shows []follwit.Show) ([]follwit.Show, error) {
	flt, err := f.resolve(m)
	if err != nil || flt == nil {
		return shows, err
	}
	return filter.SelectShows(flt, shows), nil
}
