package cmd

import (
	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	Long: `Show who is currently signed in.

The cached session is verified against the forum backend; if that fails the
identity provider is consulted, and as a last resort the cached profile is
shown as-is. Exits with a message when nobody is signed in.`,
	RunE: runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

func runWhoami(cmd *cobra.Command, args []string) error {
	user := views.Auth().CurrentUser(cmd.Context())
	if user == nil {
		printer.Info("Not signed in. Run 'forumctl login' to sign in.")
		return nil
	}

	if jsonOut {
		return printer.JSON(user)
	}

	printer.Print("%s <%s>", printer.Bold(user.Username), user.Email)
	if user.FullName != "" {
		printer.Print("Name:     %s", user.FullName)
	}
	if user.Role != "" {
		printer.Print("Role:     %s", user.Role)
	}
	if user.Location != "" {
		printer.Print("Location: %s", user.Location)
	}
	if user.Bio != "" {
		printer.Print("Bio:      %s", user.Bio)
	}
	if !user.CreatedAt.IsZero() {
		printer.Print("Member:   %s", user.CreatedAt.Format("Jan 2, 2006"))
	}
	printer.PrintHints("whoami")
	return nil
}
