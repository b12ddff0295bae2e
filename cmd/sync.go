package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/follwit/config"
	"github.com/s0up4200/follwit/radarr"
	"github.com/s0up4200/follwit/syncer"
	"github.com/s0up4200/follwit/tautulli"
)

var (
	syncAction      string
	syncConcurrency int
	syncRate        float64
	syncBulk        bool
	syncNoStream    bool

	radarrTag        string
	radarrDownloaded bool
	radarrMonitored  bool
	tautulliUser     string
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Push movies from another service into follw.it",
	Long: `Apply one follw.it action (collect, uncollect, watched, unwatched) to every
movie a source reports. Requests run concurrently, bounded by --concurrency and
throttled to --rate requests per second. Use --bulk to send a single request.`,
}

var syncRadarrCmd = &cobra.Command{
	Use:   "radarr",
	Short: "Sync the Radarr library",
	RunE: func(cmd *cobra.Command, args []string) error {
		var opts []radarr.Option
		if radarrTag != "" {
			opts = append(opts, radarr.WithTag(radarrTag))
		}
		if radarrDownloaded {
			opts = append(opts, radarr.WithDownloadedOnly())
		}
		if radarrMonitored {
			opts = append(opts, radarr.WithMonitoredOnly())
		}

		src, err := radarr.NewClient(cfg.Radarr.URL, cfg.Radarr.APIKey, cfg.Follwit.Timeout, logger, opts...)
		if err != nil {
			return err
		}
		return runSync(cmd, src)
	},
}

var syncTautulliCmd = &cobra.Command{
	Use:   "tautulli",
	Short: "Sync movies watched according to Tautulli",
	RunE: func(cmd *cobra.Command, args []string) error {
		user := tautulliUser
		if user == "" {
			user = cfg.Tautulli.User
		}
		src := tautulli.NewClient(cfg.Tautulli.URL, cfg.Tautulli.APIKey, logger,
			tautulli.WithUser(user),
			tautulli.WithMinWatchPercent(cfg.Tautulli.MinWatchPercent),
			tautulli.WithTimeout(cfg.Follwit.Timeout),
		)
		if err := src.TestConnection(cmd.Context()); err != nil {
			return fmt.Errorf("failed to connect to Tautulli: %w", err)
		}

		// history marks movies watched unless --action says otherwise
		if !cmd.Flags().Changed("action") {
			syncAction = string(syncer.ActionWatched)
		}
		return runSync(cmd, src)
	},
}

var syncFileCmd = &cobra.Command{
	Use:   "file <path>",
	Short: "Sync movies listed in a YAML import file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSync(cmd, syncer.NewFileSource(args[0]))
	},
}

func init() {
	pf := syncCmd.PersistentFlags()
	pf.StringVar(&syncAction, "action", "", "collect, uncollect, watched or unwatched (default from config)")
	pf.IntVar(&syncConcurrency, "concurrency", 0, "parallel requests (default from config)")
	pf.Float64Var(&syncRate, "rate", 0, "requests per second (default from config)")
	pf.BoolVar(&syncBulk, "bulk", false, "send one bulk request instead of one per movie")
	pf.BoolVar(&syncNoStream, "no-stream", false, "do not post the changes to your stream")

	syncRadarrCmd.Flags().StringVar(&radarrTag, "tag", "", "only movies with this Radarr tag")
	syncRadarrCmd.Flags().BoolVar(&radarrDownloaded, "downloaded", false, "only movies with a file on disk")
	syncRadarrCmd.Flags().BoolVar(&radarrMonitored, "monitored", false, "only monitored movies")
	syncTautulliCmd.Flags().StringVar(&tautulliUser, "user", "", "only this Plex user's history")

	syncCmd.AddCommand(syncRadarrCmd, syncTautulliCmd, syncFileCmd)
}

// syncOptions merges the sync flags over the config defaults.
func syncOptions(sc config.SyncConfig) (syncer.Options, error) {
	action := sc.Action
	if syncAction != "" {
		action = syncAction
	}
	parsed, err := syncer.ParseAction(action)
	if err != nil {
		return syncer.Options{}, err
	}

	opts := syncer.Options{
		Action:         parsed,
		Concurrency:    sc.Concurrency,
		RateLimit:      sc.RateLimit,
		InsertInStream: sc.InsertInStream && !syncNoStream,
		DryRun:         dryRun,
	}
	if syncConcurrency > 0 {
		opts.Concurrency = syncConcurrency
	}
	if syncRate > 0 {
		opts.RateLimit = syncRate
	}
	return opts, nil
}

func runSync(cmd *cobra.Command, src syncer.Source) error {
	ctx := cmd.Context()

	opts, err := syncOptions(cfg.Sync)
	if err != nil {
		return err
	}

	s, err := syncer.New(client, logger, opts)
	if err != nil {
		return err
	}

	items, err := src.Items(ctx)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", src.Name(), err)
	}
	logger.Info().
		Str("source", src.Name()).
		Str("action", string(opts.Action)).
		Int("movies", len(items)).
		Msg("Starting sync")

	if syncBulk {
		results, err := s.RunBulk(ctx, items)
		if err != nil {
			return fmt.Errorf("bulk sync failed: %w", err)
		}
		fmt.Print(formatBulkResults(results))
		return nil
	}

	result, err := s.Run(ctx, items)
	fmt.Print(formatSyncResult(src.Name(), result))
	if err != nil {
		return err
	}
	return result.Err()
}
