package cmd

import (
	"github.com/spf13/cobra"
)

var passwordCmd = &cobra.Command{
	Use:   "password",
	Short: "Request and complete password resets",
}

var passwordForgotCmd = &cobra.Command{
	Use:   "forgot <email>",
	Short: "Request a password reset email",
	Args:  cobra.ExactArgs(1),
	RunE:  runPasswordForgot,
}

var passwordResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Set a new password",
	Long: `Set a new password.

With --token the reset completes against the forum backend using the token
from the reset email. Without a token you must be signed in; the password is
changed through the identity provider's settings flow.

Examples:
  forumctl password forgot ada@example.com
  forumctl password reset --token 4f2c…
  forumctl password reset                 # while signed in`,
	RunE: runPasswordReset,
}

func init() {
	rootCmd.AddCommand(passwordCmd)
	passwordCmd.AddCommand(passwordForgotCmd)
	passwordCmd.AddCommand(passwordResetCmd)

	passwordResetCmd.Flags().String("token", "", "reset token from the email")
	passwordResetCmd.Flags().String("new-password", "", "new password (prompted when omitted)")
}

func runPasswordForgot(cmd *cobra.Command, args []string) error {
	msg, err := views.Auth().ForgotPassword(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	printer.Success("%s", msg)
	return nil
}

func runPasswordReset(cmd *cobra.Command, args []string) error {
	token, _ := cmd.Flags().GetString("token")
	newPassword, _ := cmd.Flags().GetString("new-password")

	var err error
	if newPassword == "" {
		newPassword, err = promptPassword(cmd, "New password: ")
		if err != nil {
			return err
		}
	}

	msg, err := views.Auth().ResetPassword(cmd.Context(), token, newPassword)
	if err != nil {
		return err
	}
	printer.Success("%s", msg)
	return nil
}
