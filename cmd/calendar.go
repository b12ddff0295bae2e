package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	calendarFrom   string
	calendarTo     string
	calendarLocale string
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show airing episodes",
	Long: `Show episodes airing between --from and --to. Without dates the
calendar covers today and the following week.`,
}

var calendarPopularCmd = &cobra.Command{
	Use:   "popular",
	Short: "Popular episodes airing in the range",
	RunE:  runCalendar(false),
}

var calendarFollowingCmd = &cobra.Command{
	Use:   "following",
	Short: "Episodes of shows you follow airing in the range",
	RunE:  runCalendar(true),
}

func init() {
	calendarCmd.PersistentFlags().StringVar(&calendarFrom, "from", "", "first day (YYYY-MM-DD)")
	calendarCmd.PersistentFlags().StringVar(&calendarTo, "to", "", "last day (YYYY-MM-DD)")
	calendarCmd.PersistentFlags().StringVar(&calendarLocale, "locale", "", "locale for titles (default en)")

	calendarCmd.AddCommand(calendarPopularCmd, calendarFollowingCmd)
}

func runCalendar(following bool) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		from, err := parseDay("from", calendarFrom)
		if err != nil {
			return err
		}
		to, err := parseDay("to", calendarTo)
		if err != nil {
			return err
		}

		fetch := client.PopularEpisodes
		if following {
			fetch = client.FollowingCalendar
		}

		episodes, err := fetch(cmd.Context(), from, to, calendarLocale)
		if err != nil {
			return fmt.Errorf("failed to get calendar: %w", err)
		}

		fmt.Print(formatEpisodes(episodes))
		return nil
	}
}
