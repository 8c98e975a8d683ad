package cmd

import (
	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the local session",
	Long: `Sign out everywhere: the token is invalidated on every backend that
will take it, and the local session file is removed. Running logout while
already signed out is not an error.`,
	RunE: runLogout,
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

func runLogout(cmd *cobra.Command, args []string) error {
	views.Auth().SignOut(cmd.Context())
	printer.Success("Signed out")
	printer.PrintHints("logout")
	return nil
}
