package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Sowjanyakambhampati/forumctl/internal/timefmt"
)

var threadsCmd = &cobra.Command{
	Use:   "threads",
	Short: "Browse and join discussion threads",
}

var threadsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List discussion threads",
	Long: `List discussion threads with the category sidebar.

Examples:
  forumctl threads list
  forumctl threads list --category general --sort popular
  forumctl threads list --search "garden tools"`,
	RunE: runThreadsList,
}

var threadsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a thread with its replies",
	Args:  cobra.ExactArgs(1),
	RunE:  runThreadsShow,
}

var threadsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Start a new thread",
	Long: `Start a discussion thread in a category.

Examples:
  forumctl threads create --title "Best local bakery?" \
    --content "Looking for sourdough recommendations." --category food`,
	RunE: runThreadsCreate,
}

var threadsReplyCmd = &cobra.Command{
	Use:   "reply <id> <text>",
	Short: "Reply to a thread",
	Args:  cobra.ExactArgs(2),
	RunE:  runThreadsReply,
}

var threadsVoteCmd = &cobra.Command{
	Use:   "vote <id>",
	Short: "Vote a thread up or down",
	Args:  cobra.ExactArgs(1),
	RunE:  runThreadsVote,
}

var threadsAnswerCmd = &cobra.Command{
	Use:   "answer <post-id>",
	Short: "Mark a reply as the accepted answer",
	Args:  cobra.ExactArgs(1),
	RunE:  runThreadsAnswer,
}

func init() {
	rootCmd.AddCommand(threadsCmd)
	threadsCmd.AddCommand(threadsListCmd, threadsShowCmd, threadsCreateCmd,
		threadsReplyCmd, threadsVoteCmd, threadsAnswerCmd)

	addListFlags(threadsListCmd)

	threadsCreateCmd.Flags().String("title", "", "thread title (required)")
	threadsCreateCmd.Flags().String("content", "", "opening post (required)")
	threadsCreateCmd.Flags().String("category", "", "category ID or slug (required)")
	_ = threadsCreateCmd.MarkFlagRequired("title")
	_ = threadsCreateCmd.MarkFlagRequired("content")
	_ = threadsCreateCmd.MarkFlagRequired("category")

	threadsReplyCmd.Flags().String("parent", "", "parent reply ID for nested replies")

	threadsVoteCmd.Flags().Bool("down", false, "vote down instead of up")
}

func runThreadsList(cmd *cobra.Command, args []string) error {
	page, err := views.ThreadList(cmd.Context(), listParams(cmd))
	if err != nil {
		return err
	}
	if jsonOut {
		return printer.JSON(page)
	}

	table := newStdoutTable([]string{"ID", "TITLE", "AUTHOR", "REPLIES", "VIEWS", "LAST POST"})
	for _, t := range page.Threads {
		title := t.Title
		if t.IsPinned {
			title = "📌 " + title
		}
		if t.HasAnswer {
			title = "✓ " + title
		}
		author := ""
		if t.Author != nil {
			author = t.Author.Username
		}
		table.AddRow([]string{
			t.ID,
			title,
			author,
			fmt.Sprintf("%d", t.PostCount),
			fmt.Sprintf("%d", t.ViewCount),
			timefmt.Ago(t.LastPostAt),
		})
	}
	renderOrEmpty(table, "No threads found")

	if len(page.Categories) > 0 {
		names := make([]string, 0, len(page.Categories))
		for _, c := range page.Categories {
			names = append(names, fmt.Sprintf("%s (%d)", c.Name, c.ThreadCount))
		}
		printer.Print("%s", printer.Dim("Categories: "+strings.Join(names, ", ")))
	}
	printer.PrintHints("threads list")
	return nil
}

func runThreadsShow(cmd *cobra.Command, args []string) error {
	page, err := views.ThreadDetail(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if jsonOut {
		return printer.JSON(page)
	}

	t := page.Thread
	printer.Header(t.Title)
	line := []string{}
	if t.Author != nil {
		line = append(line, "by "+t.Author.Username)
	}
	line = append(line, timefmt.Ago(t.CreatedAt), fmt.Sprintf("%d views", t.ViewCount))
	if t.IsLocked {
		line = append(line, "locked")
	}
	printer.Print("%s", printer.Dim(strings.Join(line, " · ")))
	printer.Print("")
	printer.Print("%s", t.Content)

	if len(page.Posts) > 0 {
		printer.Header(fmt.Sprintf("Replies (%d)", len(page.Posts)))
		for _, p := range page.Posts {
			printComment(p.Author, p.Content, p.CreatedAt)
			if p.IsAnswer {
				printer.Print("    %s", printer.Bold("✓ accepted answer"))
			}
		}
	}
	printer.PrintHints("threads show")
	return nil
}

func runThreadsCreate(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")
	content, _ := cmd.Flags().GetString("content")
	category, _ := cmd.Flags().GetString("category")

	created, err := views.Threads().Create(cmd.Context(), title, content, category)
	if err != nil {
		return err
	}
	if jsonOut {
		return printer.JSON(created)
	}
	printer.Success("Thread %q created with ID %s", created.Title, created.ID)
	return nil
}

func runThreadsReply(cmd *cobra.Command, args []string) error {
	parent, _ := cmd.Flags().GetString("parent")

	reply, err := views.Posts().Create(cmd.Context(), args[0], args[1], parent)
	if err != nil {
		return err
	}
	if jsonOut {
		return printer.JSON(reply)
	}
	printer.Success("Reply posted")
	return nil
}

func runThreadsVote(cmd *cobra.Command, args []string) error {
	down, _ := cmd.Flags().GetBool("down")
	direction := "up"
	if down {
		direction = "down"
	}
	if err := views.Threads().Vote(cmd.Context(), args[0], direction); err != nil {
		return err
	}
	printer.Success("Vote recorded")
	return nil
}

func runThreadsAnswer(cmd *cobra.Command, args []string) error {
	if err := views.Posts().MarkAsAnswer(cmd.Context(), args[0]); err != nil {
		return err
	}
	printer.Success("Reply marked as the accepted answer")
	return nil
}
