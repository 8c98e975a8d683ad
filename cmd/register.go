package cmd

import (
	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	Long: `Create an account on the platform.

Registration goes to the forum backend first and falls back to the identity
provider. The identity provider may require email verification before the
first sign-in; the command reports when that is the case.

Examples:
  forumctl register --email ada@example.com --username ada
  forumctl register --email ada@example.com --name "Ada Lovelace"`,
	RunE: runRegister,
}

func init() {
	rootCmd.AddCommand(registerCmd)

	registerCmd.Flags().String("email", "", "account email")
	registerCmd.Flags().String("password", "", "account password (prompted when omitted)")
	registerCmd.Flags().String("username", "", "public username (defaults to the email's local part)")
	registerCmd.Flags().String("name", "", "full name")
}

func runRegister(cmd *cobra.Command, args []string) error {
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")
	username, _ := cmd.Flags().GetString("username")
	fullName, _ := cmd.Flags().GetString("name")

	var err error
	if email == "" {
		email, err = promptLine(cmd, "Email: ")
		if err != nil {
			return err
		}
	}
	if password == "" {
		password, err = promptPassword(cmd, "Password: ")
		if err != nil {
			return err
		}
	}

	res, err := views.Auth().SignUp(cmd.Context(), email, password, username, fullName)
	if err != nil {
		return err
	}

	if jsonOut {
		return printer.JSON(res)
	}
	if res.Token == "" {
		// Verification pending: signed up but not signed in yet.
		printer.Info("%s", res.Message)
		return nil
	}
	printer.Success("%s", res.Message)
	printer.Print("Signed in as %s", res.User.Username)
	printer.PrintHints("register")
	return nil
}
