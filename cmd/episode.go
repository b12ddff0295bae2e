package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/follwit/follwit"
)

var (
	episodeTarget   episodeFlags
	episodeRating   int
	episodeListID   string
	episodeNoStream bool
)

var episodeCmd = &cobra.Command{
	Use:   "episode",
	Short: "Look up and manage episodes",
	Long: `Episodes are addressed by follw.it id (--id), TVDb episode id (--tvdb),
TVDb series id plus season and number (--tvdb --season --number), or series
name plus season, number and title (--series --season --number --name).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		episodeTarget.numbered = flags.Changed("season") && flags.Changed("number")
		return initializeApp(cmd, args)
	},
}

var episodeInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show episode details",
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, err := episodeTarget.ref()
		if err != nil {
			return err
		}
		episode, err := client.EpisodeDetailsByRef(cmd.Context(), ref)
		if err != nil {
			return fmt.Errorf("failed to get episode: %w", err)
		}
		fmt.Print(formatEpisodes([]follwit.Episode{*episode}))
		return nil
	},
}

var episodeMutations = []struct {
	use   string
	short string
	verb  string
	call  func(c *follwit.Client, ctx context.Context, ref follwit.EpisodeRef) (bool, error)
}{
	{"collect", "Add an episode to your collection", "add the episode to the collection",
		(*follwit.Client).AddEpisodeToCollectionByRef},
	{"uncollect", "Remove an episode from your collection", "remove the episode from the collection",
		(*follwit.Client).RemoveEpisodeFromCollectionByRef},
	{"watched", "Mark an episode as watched", "mark the episode watched",
		func(c *follwit.Client, ctx context.Context, ref follwit.EpisodeRef) (bool, error) {
			return c.MarkEpisodeWatchedByRef(ctx, ref, !episodeNoStream)
		}},
	{"unwatched", "Mark an episode as not watched", "mark the episode unwatched",
		(*follwit.Client).MarkEpisodeUnwatchedByRef},
	{"watching", "Mark an episode as currently watching", "mark the episode as watching",
		(*follwit.Client).MarkEpisodeWatchingByRef},
	{"unwatching", "Stop watching an episode", "mark the episode as not watching",
		(*follwit.Client).MarkEpisodeNotWatchingByRef},
	{"rate", "Rate an episode (--rating)", "rate the episode",
		func(c *follwit.Client, ctx context.Context, ref follwit.EpisodeRef) (bool, error) {
			return c.RateEpisodeByRef(ctx, ref, episodeRating)
		}},
	{"list-add", "Add an episode to one of your lists (--list)", "add the episode to the list",
		func(c *follwit.Client, ctx context.Context, ref follwit.EpisodeRef) (bool, error) {
			return c.AddEpisodeToListByRef(ctx, ref, episodeListID)
		}},
	{"list-remove", "Remove an episode from one of your lists (--list)", "remove the episode from the list",
		func(c *follwit.Client, ctx context.Context, ref follwit.EpisodeRef) (bool, error) {
			return c.RemoveEpisodeFromListByRef(ctx, ref, episodeListID)
		}},
}

func init() {
	pf := episodeCmd.PersistentFlags()
	pf.IntVar(&episodeTarget.id, "id", 0, "follw.it episode id")
	pf.IntVar(&episodeTarget.tvdb, "tvdb", 0, "TVDb episode id, or series id with --season and --number")
	pf.StringVar(&episodeTarget.series, "series", "", "series name")
	pf.IntVar(&episodeTarget.season, "season", 0, "season number")
	pf.IntVar(&episodeTarget.number, "number", 0, "episode number")
	pf.StringVar(&episodeTarget.name, "name", "", "episode title (with --series)")

	episodeCmd.AddCommand(episodeInfoCmd)

	for _, m := range episodeMutations {
		c := &cobra.Command{
			Use:   m.use,
			Short: m.short,
			RunE: func(cmd *cobra.Command, args []string) error {
				ref, err := episodeTarget.ref()
				if err != nil {
					return err
				}
				return mutate(m.verb, func() (bool, error) {
					return m.call(client, cmd.Context(), ref)
				})
			},
		}
		switch m.use {
		case "watched":
			c.Flags().BoolVar(&episodeNoStream, "no-stream", false, "do not post the change to your stream")
		case "rate":
			c.Flags().IntVar(&episodeRating, "rating", 0, "rating to give")
			_ = c.MarkFlagRequired("rating")
		case "list-add", "list-remove":
			c.Flags().StringVar(&episodeListID, "list", "", "list identifier")
			_ = c.MarkFlagRequired("list")
		}
		episodeCmd.AddCommand(c)
	}
}
