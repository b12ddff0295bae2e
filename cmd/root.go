package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/follwit/config"
	"github.com/s0up4200/follwit/filter"
	"github.com/s0up4200/follwit/follwit"
)

var (
	version   = "dev"
	buildTime = "unknown"

	cfgFile   string
	cfg       *config.Config
	logger    zerolog.Logger
	logCloser io.Closer
	client    *follwit.Client
	filters   *filter.Manager

	// Command flags
	dryRun bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "follwit",
	Short: "A command line client for the follw.it media tracking service",
	Long: `follwit talks to the follw.it API: look up movies, shows and episodes, manage
your collection, lists and watch state, browse profiles and calendars, and sync
watch state from Radarr, Tautulli or an import file.`,
	SilenceUsage:       true,
	PersistentPreRunE:  initializeApp,
	PersistentPostRunE: closeApp,
}

// SetVersion stamps the build information shown by --version and used by self-update.
func SetVersion(v, built string) {
	version = v
	buildTime = built
	rootCmd.Version = fmt.Sprintf("%s (built %s)", v, built)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "d", false, "perform a dry run without making changes")

	rootCmd.AddCommand(loginCmd, signupCmd, availableCmd)
	rootCmd.AddCommand(calendarCmd)
	rootCmd.AddCommand(movieCmd, showCmd, episodeCmd)
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(selfUpdateCmd)
}

// initializeApp initializes the configuration and clients
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, logCloser, err = setupLogger(cfg.Logging)
	if err != nil {
		return err
	}

	client, err = newClient(cfg.Follwit, logger)
	if err != nil {
		return fmt.Errorf("failed to create follw.it client: %w", err)
	}

	filters = filter.NewManager()
	if err := filters.RegisterFilters(cfg.Filter.Presets); err != nil {
		return fmt.Errorf("invalid filter preset: %w", err)
	}

	logger.Debug().
		Str("base_url", cfg.Follwit.BaseURL).
		Str("username", client.Username()).
		Bool("dry_run", dryRun).
		Msg("Initialized")
	return nil
}

func closeApp(cmd *cobra.Command, args []string) error {
	if logCloser != nil {
		return logCloser.Close()
	}
	return nil
}

func newClient(fc config.FollwitConfig, logger zerolog.Logger) (*follwit.Client, error) {
	opts := []follwit.Option{
		follwit.WithBaseURL(fc.BaseURL),
		follwit.WithTimeout(fc.Timeout),
		follwit.WithUserAgent("follwit-cli/" + version),
	}
	if fc.Username != "" {
		opts = append(opts, follwit.WithCredentials(fc.Username, fc.Password))
	}
	return follwit.NewClient(fc.APIKey, logger, opts...)
}

// exitCode maps library error kinds onto distinct exit statuses for scripts.
func exitCode(err error) int {
	switch follwit.KindOf(err) {
	case follwit.KindInvalidArgument, follwit.KindUnsupportedOperation, follwit.KindNoUsableIdentifier:
		return 2
	case follwit.KindTransport, follwit.KindDecode:
		return 3
	case follwit.KindService:
		return 4
	case follwit.KindCanceled:
		return 130
	}
	return 1
}

// mutate runs a state-changing call unless --dry-run is set, and turns a rejected
// request into an error.
func mutate(description string, call func() (bool, error)) error {
	if dryRun {
		logger.Info().Msgf("[DRY RUN] Would %s", description)
		return nil
	}

	ok, err := call()
	if err != nil {
		return fmt.Errorf("failed to %s: %w", description, err)
	}
	if !ok {
		return fmt.Errorf("follw.it rejected request to %s", description)
	}
	fmt.Printf("✓ %s\n", capitalize(description))
	return nil
}
