package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/s0up4200/follwit/follwit"
)

var (
	showTarget   showFlags
	showFilter   filterFlags
	showEpisodes bool
	showLocale   string
	showInterval string
	showLimit    int
	showGenres   []string
	showRating   int
	showListID   string
	showUser     string
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Look up and manage TV shows",
}

var showInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show series details",
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, id, err := showTarget.target()
		if err != nil {
			return err
		}
		show, err := client.ShowDetails(cmd.Context(), kind, id, showEpisodes)
		if err != nil {
			return fmt.Errorf("failed to get show: %w", err)
		}
		fmt.Print(formatShowDetails(show))
		return nil
	},
}

var showTrendingCmd = &cobra.Command{
	Use:   "trending",
	Short: "List trending shows",
	RunE: func(cmd *cobra.Command, args []string) error {
		interval, err := follwit.ParseTimeInterval(showInterval)
		if err != nil {
			return err
		}
		shows, err := client.TrendingShows(cmd.Context(), interval, showLocale, showLimit)
		if err != nil {
			return fmt.Errorf("failed to get trending shows: %w", err)
		}
		return printShows(shows)
	},
}

var showRecommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "List show recommendations for the session user",
	RunE: func(cmd *cobra.Command, args []string) error {
		genres, err := parseGenres(showGenres)
		if err != nil {
			return err
		}
		shows, err := client.RecommendedShows(cmd.Context(), genres...)
		if err != nil {
			return fmt.Errorf("failed to get recommendations: %w", err)
		}
		return printShows(shows)
	},
}

var showStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show a user's rating and episode state of a show",
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, id, err := showTarget.numericTarget()
		if err != nil {
			return err
		}
		stats, err := client.ShowUserStatsByID(cmd.Context(), kind, id, showUser, showEpisodes)
		if err != nil {
			return fmt.Errorf("failed to get show stats: %w", err)
		}
		fmt.Print(formatShowUserStats(kind.String()+" "+strconv.Itoa(id), stats))
		return nil
	},
}

var showMutations = []struct {
	use   string
	short string
	verb  string
	call  func(c *follwit.Client, ctx context.Context, kind follwit.ShowIdentification, id int) (bool, error)
}{
	{"rate", "Rate a show (--rating)", "rate show %d",
		func(c *follwit.Client, ctx context.Context, kind follwit.ShowIdentification, id int) (bool, error) {
			return c.RateShowByID(ctx, kind, id, showRating)
		}},
	{"list-add", "Add a show to one of your lists (--list)", "add show %d to the list",
		func(c *follwit.Client, ctx context.Context, kind follwit.ShowIdentification, id int) (bool, error) {
			return c.AddShowToListByID(ctx, kind, id, showListID)
		}},
	{"list-remove", "Remove a show from one of your lists (--list)", "remove show %d from the list",
		func(c *follwit.Client, ctx context.Context, kind follwit.ShowIdentification, id int) (bool, error) {
			return c.RemoveShowFromListByID(ctx, kind, id, showListID)
		}},
}

func init() {
	pf := showCmd.PersistentFlags()
	pf.IntVar(&showTarget.id, "id", 0, "follw.it series id")
	pf.StringVar(&showTarget.imdb, "imdb", "", "IMDb id (lookups only)")
	pf.IntVar(&showTarget.tvdb, "tvdb", 0, "TVDb series id")

	showInfoCmd.Flags().BoolVar(&showEpisodes, "episodes", false, "include the episode list")
	showStatsCmd.Flags().BoolVar(&showEpisodes, "episodes", false, "include per-episode state")
	showStatsCmd.Flags().StringVar(&showUser, "user", "", "whose stats (default: session user)")

	for _, c := range []*cobra.Command{showTrendingCmd, showRecommendCmd} {
		c.Flags().StringVarP(&showFilter.expression, "filter", "f", "", "filter expression")
		c.Flags().StringVarP(&showFilter.preset, "preset", "p", "", "use a preset filter from config")
	}
	showTrendingCmd.Flags().StringVar(&showInterval, "interval", "week", "day, week, month or newshows")
	showTrendingCmd.Flags().StringVar(&showLocale, "locale", "", "locale for titles (default en)")
	showTrendingCmd.Flags().IntVar(&showLimit, "limit", 0, "number of shows (default 20)")
	showRecommendCmd.Flags().StringSliceVar(&showGenres, "genre", nil, "narrow to genres, e.g. science-fiction")

	showCmd.AddCommand(showInfoCmd, showTrendingCmd, showRecommendCmd, showStatsCmd)

	for _, m := range showMutations {
		c := &cobra.Command{
			Use:   m.use,
			Short: m.short,
			RunE: func(cmd *cobra.Command, args []string) error {
				kind, id, err := showTarget.numericTarget()
				if err != nil {
					return err
				}
				return mutate(fmt.Sprintf(m.verb, id), func() (bool, error) {
					return m.call(client, cmd.Context(), kind, id)
				})
			},
		}
		if m.use == "rate" {
			c.Flags().IntVar(&showRating, "rating", 0, "rating to give")
			_ = c.MarkFlagRequired("rating")
		} else {
			c.Flags().StringVar(&showListID, "list", "", "list identifier")
			_ = c.MarkFlagRequired("list")
		}
		showCmd.AddCommand(c)
	}
}

func printShows(shows []follwit.Show) error {
	shows, err := showFilter.shows(filters, shows)
	if err != nil {
		return err
	}
	fmt.Print(formatShows(shows))
	return nil
}
