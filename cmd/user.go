package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/s0up4200/follwit/follwit"
)

var (
	userFilter      filterFlags
	userFull        bool
	userPrivate     bool
	userTV          bool
	userEpisodes    bool
	userSince       string
	userUpdate      follwit.UserUpdate
	userMakePrivate bool
	userMakePublic  bool
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Browse profiles, lists and collections",
	Long: `Browse follw.it profiles, lists and collections. Commands that take an
optional username default to the session user.`,
}

var userProfileCmd = &cobra.Command{
	Use:   "profile [username]",
	Short: "Show a profile",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if userFull {
			profile, err := client.FullProfile(cmd.Context(), optionalArg(args))
			if err != nil {
				return fmt.Errorf("failed to get profile: %w", err)
			}
			fmt.Print(formatProfile(&profile.User))
			fmt.Printf("Email: %s | Locale: %s | Private: %t\n", profile.Email, profile.Locale, profile.PrivateProfile)
			return nil
		}

		profile, err := client.PublicProfile(cmd.Context(), optionalArg(args))
		if err != nil {
			return fmt.Errorf("failed to get profile: %w", err)
		}
		fmt.Print(formatProfile(profile))
		return nil
	},
}

var userListsCmd = &cobra.Command{
	Use:   "lists [username]",
	Short: "Show the lists of a user",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fetch := client.UserLists
		if userPrivate {
			fetch = client.QueryUserLists
		}
		lists, err := fetch(cmd.Context(), optionalArg(args))
		if err != nil {
			return fmt.Errorf("failed to get lists: %w", err)
		}
		fmt.Print(formatLists(lists))
		return nil
	},
}

var userListCmd = &cobra.Command{
	Use:   "list <list-id> [username]",
	Short: "Show the entries of one list",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		fetch := client.UserList
		if userPrivate {
			fetch = client.QueryUserList
		}
		list, err := fetch(cmd.Context(), args[0], optionalArg(args[1:]))
		if err != nil {
			return fmt.Errorf("failed to get list: %w", err)
		}
		fmt.Print(formatListEntries(list))
		return nil
	},
}

var userCollectionCmd = &cobra.Command{
	Use:   "collection [username]",
	Short: "Show a movie or TV collection",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if userTV {
			shows, err := client.UserTvCollection(cmd.Context(), optionalArg(args), userEpisodes)
			if err != nil {
				return fmt.Errorf("failed to get TV collection: %w", err)
			}
			if shows, err = userFilter.shows(filters, shows); err != nil {
				return err
			}
			fmt.Print(formatShows(shows))
			return nil
		}

		movies, err := client.UserMovieCollection(cmd.Context(), optionalArg(args))
		if err != nil {
			return fmt.Errorf("failed to get movie collection: %w", err)
		}
		if movies, err = userFilter.movies(filters, movies); err != nil {
			return err
		}
		fmt.Print(formatMovies(movies))
		return nil
	},
}

var userStreamCmd = &cobra.Command{
	Use:   "stream [username]",
	Short: "Show recent activity",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := client.UserStream(cmd.Context(), optionalArg(args))
		if err != nil {
			return fmt.Errorf("failed to get stream: %w", err)
		}
		fmt.Print(formatStream(items))
		return nil
	},
}

var userChangesCmd = &cobra.Command{
	Use:   "changes",
	Short: "Show changes made to your account since a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		since, err := parseDay("since", userSince)
		if err != nil {
			return err
		}
		if since.IsZero() {
			since = time.Now().AddDate(0, 0, -7)
		}
		changes, err := client.OnlineChanges(cmd.Context(), since)
		if err != nil {
			return fmt.Errorf("failed to get changes: %w", err)
		}
		fmt.Print(formatChanges(changes))
		return nil
	},
}

var userUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Change account settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		if userMakePrivate && userMakePublic {
			return fmt.Errorf("--private and --public are mutually exclusive")
		}
		update := userUpdate
		switch {
		case userMakePrivate:
			update.PrivateProfile = &userMakePrivate
		case userMakePublic:
			private := false
			update.PrivateProfile = &private
		}
		return mutate("update account settings", func() (bool, error) {
			return client.UpdateUser(cmd.Context(), update)
		})
	},
}

func init() {
	userProfileCmd.Flags().BoolVar(&userFull, "full", false, "include account settings (session user only)")
	userListsCmd.Flags().BoolVar(&userPrivate, "private", false, "include private lists visible to the session user")
	userListCmd.Flags().BoolVar(&userPrivate, "private", false, "read a private list visible to the session user")
	userCollectionCmd.Flags().BoolVar(&userTV, "tv", false, "show the TV collection instead of movies")
	userCollectionCmd.Flags().BoolVar(&userEpisodes, "episodes", false, "include episodes in the TV collection")
	userCollectionCmd.Flags().StringVarP(&userFilter.expression, "filter", "f", "", "filter expression")
	userCollectionCmd.Flags().StringVarP(&userFilter.preset, "preset", "p", "", "use a preset filter from config")
	userChangesCmd.Flags().StringVar(&userSince, "since", "", "first day (YYYY-MM-DD, default a week ago)")
	userUpdateCmd.Flags().StringVar(&userUpdate.Email, "email", "", "new email address")
	userUpdateCmd.Flags().StringVar(&userUpdate.Locale, "locale", "", "new locale")
	userUpdateCmd.Flags().BoolVar(&userMakePrivate, "private", false, "make the profile private")
	userUpdateCmd.Flags().BoolVar(&userMakePublic, "public", false, "make the profile public")

	userCmd.AddCommand(userProfileCmd, userListsCmd, userListCmd, userCollectionCmd, userStreamCmd, userChangesCmd, userUpdateCmd)
}

func optionalArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
