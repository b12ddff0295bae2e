package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/follwit/follwit"
)

var (
	authUsername string
	authPassword string
	newUser      follwit.NewUser
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Check follw.it credentials",
	Long: `Authenticate against follw.it with the given credentials, or with
follwit.username and follwit.password from the config when no flags are given.`,
	RunE: runLogin,
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a follw.it account",
	RunE:  runSignup,
}

var availableCmd = &cobra.Command{
	Use:   "available <username>",
	Short: "Check whether a username is still free",
	Args:  cobra.ExactArgs(1),
	RunE:  runAvailable,
}

func init() {
	loginCmd.Flags().StringVarP(&authUsername, "username", "u", "", "follw.it username")
	loginCmd.Flags().StringVarP(&authPassword, "password", "p", "", "follw.it password")

	signupCmd.Flags().StringVarP(&newUser.Username, "username", "u", "", "username for the new account")
	signupCmd.Flags().StringVarP(&newUser.Password, "password", "p", "", "password for the new account")
	signupCmd.Flags().StringVar(&newUser.Email, "email", "", "email address")
	signupCmd.Flags().StringVar(&newUser.Locale, "locale", "", "preferred locale, e.g. en")
	signupCmd.Flags().BoolVar(&newUser.PrivateProfile, "private", false, "hide the profile from other users")
	_ = signupCmd.MarkFlagRequired("username")
	_ = signupCmd.MarkFlagRequired("password")
	_ = signupCmd.MarkFlagRequired("email")
}

func runLogin(cmd *cobra.Command, args []string) error {
	username, password := authUsername, authPassword
	if username == "" {
		username, password = cfg.Follwit.Username, cfg.Follwit.Password
	}

	ok, err := client.Authenticate(cmd.Context(), username, password)
	if err != nil {
		return fmt.Errorf("failed to authenticate: %w", err)
	}
	if !ok {
		return fmt.Errorf("follw.it rejected the credentials for %s", username)
	}

	fmt.Printf("✓ Logged in as %s\n", username)
	return nil
}

func runSignup(cmd *cobra.Command, args []string) error {
	return mutate("create account "+newUser.Username, func() (bool, error) {
		return client.CreateUser(cmd.Context(), newUser)
	})
}

func runAvailable(cmd *cobra.Command, args []string) error {
	free, err := client.UsernameAvailable(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if free {
		fmt.Printf("✓ %s is available\n", args[0])
	} else {
		fmt.Printf("✗ %s is taken\n", args[0])
	}
	return nil
}
