package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report <type> <id>",
	Short: "Report content or a user to the moderators",
	Long: `File a moderation report against an event, post, listing, thread,
comment or user.

Examples:
  forumctl report post post-17 --reason SPAM
  forumctl report user user-9 --reason HARASSMENT \
    --description "Repeated abusive replies on my listing"`,
	Args: cobra.ExactArgs(2),
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().String("reason", "", "SPAM, HARASSMENT, INAPPROPRIATE, SCAM or OTHER (required)")
	reportCmd.Flags().String("description", "", "extra context for the moderators")
	_ = reportCmd.MarkFlagRequired("reason")
}

func runReport(cmd *cobra.Command, args []string) error {
	reason, _ := cmd.Flags().GetString("reason")
	description, _ := cmd.Flags().GetString("description")

	targetType := strings.ToUpper(args[0])
	err := views.Reports().Create(cmd.Context(), targetType, args[1], strings.ToUpper(reason), description)
	if err != nil {
		return err
	}
	printer.Success("Report filed. The moderators will take a look.")
	return nil
}
