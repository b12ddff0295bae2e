package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/follwit/follwit"
)

var (
	movieTarget   movieFlags
	movieFilter   filterFlags
	movieLocale   string
	movieInterval string
	movieLimit    int
	movieGenres   []string
	movieRating   int
	movieListID   string
	movieNoStream bool
	movieUser     string
)

var movieCmd = &cobra.Command{
	Use:   "movie",
	Short: "Look up and manage movies",
}

var movieInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show movie details",
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, id, err := movieTarget.target()
		if err != nil {
			return err
		}
		movie, err := client.MovieDetails(cmd.Context(), kind, id, movieLocale)
		if err != nil {
			return fmt.Errorf("failed to get movie: %w", err)
		}
		fmt.Print(formatMovieDetails(movie))
		return nil
	},
}

var movieSimilarCmd = &cobra.Command{
	Use:   "similar",
	Short: "List movies similar to a movie",
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, id, err := movieTarget.target()
		if err != nil {
			return err
		}
		movies, err := client.SimilarMovies(cmd.Context(), kind, id, movieLocale)
		if err != nil {
			return fmt.Errorf("failed to get similar movies: %w", err)
		}
		return printMovies(movies)
	},
}

var movieTrendingCmd = &cobra.Command{
	Use:   "trending",
	Short: "List trending movies",
	RunE: func(cmd *cobra.Command, args []string) error {
		interval, err := follwit.ParseTimeInterval(movieInterval)
		if err != nil {
			return err
		}
		movies, err := client.TrendingMovies(cmd.Context(), interval, movieLocale, movieLimit)
		if err != nil {
			return fmt.Errorf("failed to get trending movies: %w", err)
		}
		return printMovies(movies)
	},
}

var movieRecommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "List movie recommendations for the session user",
	RunE: func(cmd *cobra.Command, args []string) error {
		genres, err := parseGenres(movieGenres)
		if err != nil {
			return err
		}
		movies, err := client.RecommendedMovies(cmd.Context(), genres...)
		if err != nil {
			return fmt.Errorf("failed to get recommendations: %w", err)
		}
		return printMovies(movies)
	},
}

var movieStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show a user's rating and watch state of a movie",
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, id, err := movieTarget.target()
		if err != nil {
			return err
		}
		stats, err := client.MovieUserStatsByID(cmd.Context(), kind, id, movieUser)
		if err != nil {
			return fmt.Errorf("failed to get movie stats: %w", err)
		}
		fmt.Print(formatUserStats(kind.String()+" "+id, stats))
		return nil
	},
}

// movieMutation is a subcommand that changes the session user's state for one movie.
type movieMutation struct {
	use   string
	short string
	verb  string
	call  func(c *follwit.Client, ctx context.Context, kind follwit.MovieIdentification, id string) (bool, error)
}

var movieMutations = []movieMutation{
	{"collect", "Add a movie to your collection", "add movie %s to the collection",
		func(c *follwit.Client, ctx context.Context, kind follwit.MovieIdentification, id string) (bool, error) {
			return c.AddMovieToCollectionByID(ctx, kind, id, !movieNoStream)
		}},
	{"uncollect", "Remove a movie from your collection", "remove movie %s from the collection",
		(*follwit.Client).RemoveMovieFromCollectionByID},
	{"watched", "Mark a movie as watched", "mark movie %s watched",
		func(c *follwit.Client, ctx context.Context, kind follwit.MovieIdentification, id string) (bool, error) {
			return c.MarkMovieWatchedByID(ctx, kind, id, !movieNoStream)
		}},
	{"unwatched", "Mark a movie as not watched", "mark movie %s unwatched",
		(*follwit.Client).MarkMovieUnwatchedByID},
	{"watching", "Mark a movie as currently watching", "mark movie %s as watching",
		(*follwit.Client).MarkMovieWatchingByID},
	{"unwatching", "Stop watching a movie", "mark movie %s as not watching",
		(*follwit.Client).MarkMovieNotWatchingByID},
	{"rate", "Rate a movie (--rating)", "rate movie %s",
		func(c *follwit.Client, ctx context.Context, kind follwit.MovieIdentification, id string) (bool, error) {
			return c.RateMovieByID(ctx, kind, id, movieRating)
		}},
	{"list-add", "Add a movie to one of your lists (--list)", "add movie %s to the list",
		func(c *follwit.Client, ctx context.Context, kind follwit.MovieIdentification, id string) (bool, error) {
			return c.AddMovieToListByID(ctx, kind, id, movieListID)
		}},
	{"list-remove", "Remove a movie from one of your lists (--list)", "remove movie %s from the list",
		func(c *follwit.Client, ctx context.Context, kind follwit.MovieIdentification, id string) (bool, error) {
			return c.RemoveMovieFromListByID(ctx, kind, id, movieListID)
		}},
}

func init() {
	pf := movieCmd.PersistentFlags()
	pf.StringVar(&movieTarget.id, "id", "", "follw.it movie id")
	pf.StringVar(&movieTarget.imdb, "imdb", "", "IMDb id (tt...)")
	pf.StringVar(&movieTarget.tmdb, "tmdb", "", "TMDb id")
	pf.StringVar(&movieLocale, "locale", "", "locale for titles (default en)")

	for _, c := range []*cobra.Command{movieSimilarCmd, movieTrendingCmd, movieRecommendCmd} {
		c.Flags().StringVarP(&movieFilter.expression, "filter", "f", "", "filter expression")
		c.Flags().StringVarP(&movieFilter.preset, "preset", "p", "", "use a preset filter from config")
	}
	movieTrendingCmd.Flags().StringVar(&movieInterval, "interval", "week", "day, week or month")
	movieTrendingCmd.Flags().IntVar(&movieLimit, "limit", 0, "number of movies (default 20)")
	movieRecommendCmd.Flags().StringSliceVar(&movieGenres, "genre", nil, "narrow to genres, e.g. film-noir")
	movieStatsCmd.Flags().StringVar(&movieUser, "user", "", "whose stats (default: session user)")

	movieCmd.AddCommand(movieInfoCmd, movieSimilarCmd, movieTrendingCmd, movieRecommendCmd, movieStatsCmd)

	for _, m := range movieMutations {
		c := &cobra.Command{
			Use:   m.use,
			Short: m.short,
			RunE: func(cmd *cobra.Command, args []string) error {
				kind, id, err := movieTarget.target()
				if err != nil {
					return err
				}
				return mutate(fmt.Sprintf(m.verb, id), func() (bool, error) {
					return m.call(client, cmd.Context(), kind, id)
				})
			},
		}
		switch m.use {
		case "collect", "watched":
			c.Flags().BoolVar(&movieNoStream, "no-stream", false, "do not post the change to your stream")
		case "rate":
			c.Flags().IntVar(&movieRating, "rating", 0, "rating to give")
			_ = c.MarkFlagRequired("rating")
		case "list-add", "list-remove":
			c.Flags().StringVar(&movieListID, "list", "", "list identifier")
			_ = c.MarkFlagRequired("list")
		}
		movieCmd.AddCommand(c)
	}
}

func printMovies(movies []follwit.Movie) error {
	movies, err := movieFilter.movies(filters, movies)
	if err != nil {
		return err
	}
	fmt.Print(formatMovies(movies))
	return nil
}
