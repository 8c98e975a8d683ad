package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Sowjanyakambhampati/forumctl/internal/timefmt"
)

var notificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "List notifications",
	Long: `Show your notifications, newest first.

Examples:
  forumctl notifications
  forumctl notifications --unread
  forumctl notifications --read-all`,
	RunE: runNotifications,
}

func init() {
	rootCmd.AddCommand(notificationsCmd)

	notificationsCmd.Flags().Bool("unread", false, "only unread notifications")
	notificationsCmd.Flags().Bool("read-all", false, "mark everything as read")
	notificationsCmd.Flags().String("read", "", "mark one notification as read by ID")
}

func runNotifications(cmd *cobra.Command, args []string) error {
	if id, _ := cmd.Flags().GetString("read"); id != "" {
		if err := views.Notifications().MarkRead(cmd.Context(), id); err != nil {
			return err
		}
		printer.Success("Notification %s marked as read", id)
		return nil
	}
	if readAll, _ := cmd.Flags().GetBool("read-all"); readAll {
		if err := views.Notifications().MarkAllRead(cmd.Context()); err != nil {
			return err
		}
		printer.Success("All notifications marked as read")
		return nil
	}

	unreadOnly, _ := cmd.Flags().GetBool("unread")
	items, err := views.Notifications().List(cmd.Context(), unreadOnly)
	if err != nil {
		return err
	}
	if jsonOut {
		return printer.JSON(items)
	}

	table := newStdoutTable([]string{"", "ID", "TYPE", "MESSAGE", "WHEN"})
	for _, n := range items {
		marker := " "
		if !n.Read {
			marker = printer.Bold("●")
		}
		table.AddRow([]string{marker, n.ID, n.Type, n.Message, timefmt.Ago(n.CreatedAt)})
	}
	renderOrEmpty(table, "No notifications")
	printer.PrintHints("notifications")
	return nil
}
