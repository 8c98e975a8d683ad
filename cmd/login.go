package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the platform",
	Long: `Sign in with email and password, or start a browser OAuth flow.

Credentials are checked against the forum backend first; if it rejects them
or is unreachable, the identity provider is tried next. The resulting session
is stored locally and picked up by every other forumctl invocation.

Examples:
  forumctl login                        # Prompt for email and password
  forumctl login --email ada@example.com
  forumctl login --oauth google         # Sign in via browser with Google
  forumctl login --oauth github`,
	RunE: runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().String("email", "", "account email")
	loginCmd.Flags().String("password", "", "account password (prompted when omitted)")
	loginCmd.Flags().String("oauth", "", "OAuth provider for browser sign-in (google, github)")
}

func runLogin(cmd *cobra.Command, args []string) error {
	oauthProvider, _ := cmd.Flags().GetString("oauth")
	if oauthProvider != "" {
		url, err := views.Auth().OAuthURL(oauthProvider)
		if err != nil {
			return err
		}
		printer.Info("Open this URL in your browser to sign in with %s:", oauthProvider)
		printer.Print("%s", url)
		return nil
	}

	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")

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

	res, err := views.Auth().SignIn(cmd.Context(), email, password)
	if err != nil {
		return err
	}

	if jsonOut {
		return printer.JSON(res.User)
	}
	printer.Success("Signed in as %s (%s)", res.User.Username, res.User.Email)
	printer.PrintHints("login")
	return nil
}

func promptLine(cmd *cobra.Command, label string) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), label)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func promptPassword(cmd *cobra.Command, label string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		// Piped input; fall back to a plain line read.
		return promptLine(cmd, label)
	}
	fmt.Fprint(cmd.OutOrStdout(), label)
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(cmd.OutOrStdout())
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}
