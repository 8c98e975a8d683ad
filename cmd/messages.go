package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sowjanyakambhampati/forumctl/internal/api"
	"github.com/Sowjanyakambhampati/forumctl/internal/timefmt"
)

var messagesCmd = &cobra.Command{
	Use:   "messages",
	Short: "Read and send direct messages",
	RunE:  runMessagesList,
}

var messagesShowCmd = &cobra.Command{
	Use:   "show <conversation-id>",
	Short: "Show a conversation",
	Args:  cobra.ExactArgs(1),
	RunE:  runMessagesShow,
}

var messagesSendCmd = &cobra.Command{
	Use:   "send <user-id> <text>",
	Short: "Send a direct message",
	Long: `Send a direct message to another member.

Examples:
  forumctl messages send user-42 "Is the bike still available?"`,
	Args: cobra.ExactArgs(2),
	RunE: runMessagesSend,
}

func init() {
	rootCmd.AddCommand(messagesCmd)
	messagesCmd.AddCommand(messagesShowCmd, messagesSendCmd)

	messagesShowCmd.Flags().Int("limit", 50, "messages per page")
}

func runMessagesList(cmd *cobra.Command, args []string) error {
	conversations, err := views.Messages().Conversations(cmd.Context(), api.ListParams{})
	if err != nil {
		return err
	}
	if jsonOut {
		return printer.JSON(conversations)
	}

	table := newStdoutTable([]string{"ID", "WITH", "LAST MESSAGE", "UNREAD", "UPDATED"})
	for _, c := range conversations {
		with := ""
		if c.Participant != nil {
			with = c.Participant.Username
		}
		unread := ""
		if c.UnreadCount > 0 {
			unread = fmt.Sprintf("%d", c.UnreadCount)
		}
		table.AddRow([]string{
			c.ID,
			with,
			truncate(c.LastMessage, 48),
			unread,
			timefmt.Ago(c.UpdatedAt),
		})
	}
	renderOrEmpty(table, "No conversations yet")
	return nil
}

func runMessagesShow(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	messages, err := views.Messages().Conversation(cmd.Context(), args[0], api.ListParams{Limit: limit})
	if err != nil {
		return err
	}
	if jsonOut {
		return printer.JSON(messages)
	}

	if len(messages) == 0 {
		printer.Print("No messages in this conversation")
		return nil
	}
	for _, m := range messages {
		printer.Print("%s %s", printer.Bold(m.SenderID), printer.Dim(timefmt.Ago(m.CreatedAt)))
		printer.Print("  %s", m.Content)
	}
	return nil
}

func runMessagesSend(cmd *cobra.Command, args []string) error {
	sent, err := views.Messages().Send(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}
	if jsonOut {
		return printer.JSON(sent)
	}
	printer.Success("Message sent")
	return nil
}
