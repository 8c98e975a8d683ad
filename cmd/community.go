package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Sowjanyakambhampati/forumctl/internal/domain"
	"github.com/Sowjanyakambhampati/forumctl/internal/timefmt"
)

var communityCmd = &cobra.Command{
	Use:   "community",
	Short: "Browse and write community posts",
}

var communityListCmd = &cobra.Command{
	Use:   "list",
	Short: "List community posts",
	Long: `List community posts, pinned first.

Examples:
  forumctl community list
  forumctl community list --category QUESTION
  forumctl community list --search plumber`,
	RunE: runCommunityList,
}

var communityShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a post with its comments",
	Args:  cobra.ExactArgs(1),
	RunE:  runCommunityShow,
}

var communityCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Publish a community post",
	Long: `Publish a post in one of the four categories: SERVICE, ISSUE,
QUESTION or ANNOUNCEMENT.

Examples:
  forumctl community create --title "Plumber wanted" --category SERVICE \
    --content "Kitchen sink is leaking, any recommendations?"`,
	RunE: runCommunityCreate,
}

var communityCommentCmd = &cobra.Command{
	Use:   "comment <id> <text>",
	Short: "Comment on a post",
	Args:  cobra.ExactArgs(2),
	RunE:  runCommunityComment,
}

var communityLikeCmd = &cobra.Command{
	Use:   "like <id>",
	Short: "Like or unlike a post",
	Args:  cobra.ExactArgs(1),
	RunE:  runCommunityLike,
}

func init() {
	rootCmd.AddCommand(communityCmd)
	communityCmd.AddCommand(communityListCmd, communityShowCmd,
		communityCreateCmd, communityCommentCmd, communityLikeCmd)

	addListFlags(communityListCmd)
	communityListCmd.Flags().Bool("mine", false, "only your own posts")

	communityCreateCmd.Flags().String("title", "", "post title (required)")
	communityCreateCmd.Flags().String("content", "", "post body (required)")
	communityCreateCmd.Flags().String("category", "", "SERVICE, ISSUE, QUESTION or ANNOUNCEMENT (required)")
	communityCreateCmd.Flags().StringSlice("tags", nil, "tags")
	communityCreateCmd.Flags().String("neighborhood", "", "neighborhood ID")
	_ = communityCreateCmd.MarkFlagRequired("title")
	_ = communityCreateCmd.MarkFlagRequired("content")
	_ = communityCreateCmd.MarkFlagRequired("category")

	communityLikeCmd.Flags().Bool("undo", false, "remove your like")
}

func runCommunityList(cmd *cobra.Command, args []string) error {
	mine, _ := cmd.Flags().GetBool("mine")

	var posts []domain.CommunityPost
	var err error
	if mine {
		posts, err = views.Community().MyPosts(cmd.Context(), listParams(cmd))
	} else {
		page, perr := views.CommunityList(cmd.Context(), listParams(cmd))
		if perr == nil {
			posts = page.Posts
		}
		err = perr
	}
	if err != nil {
		return err
	}
	if jsonOut {
		return printer.JSON(posts)
	}

	table := newStdoutTable([]string{"ID", "CATEGORY", "TITLE", "AUTHOR", "LIKES", "COMMENTS", "POSTED"})
	for _, p := range posts {
		title := p.Title
		if p.IsPinned {
			title = "📌 " + title
		}
		author := ""
		if p.Author != nil {
			author = p.Author.Username
		}
		table.AddRow([]string{
			p.ID,
			string(p.Category),
			title,
			author,
			fmt.Sprintf("%d", p.LikeCount),
			fmt.Sprintf("%d", p.CommentCount),
			timefmt.Ago(p.CreatedAt),
		})
	}
	renderOrEmpty(table, "No posts found")
	printer.PrintHints("community list")
	return nil
}

func runCommunityShow(cmd *cobra.Command, args []string) error {
	page, err := views.CommunityPost(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if jsonOut {
		return printer.JSON(page)
	}

	p := page.Post
	printer.Header(p.Title)
	line := []string{string(p.Category)}
	if p.Author != nil {
		line = append(line, "by "+p.Author.Username)
	}
	line = append(line, timefmt.Ago(p.CreatedAt))
	printer.Print("%s", printer.Dim(strings.Join(line, " · ")))
	printer.Print("")
	printer.Print("%s", p.Content)
	printer.Print("")
	printer.Print("%d likes · %d views", p.LikeCount, p.ViewCount)

	if len(page.Comments) > 0 {
		printer.Header(fmt.Sprintf("Comments (%d)", len(page.Comments)))
		for _, c := range page.Comments {
			printComment(c.User, c.Content, c.CreatedAt)
			for _, reply := range c.Replies {
				printer.Print("    ↳ %s: %s", replyAuthor(reply.User), reply.Content)
			}
		}
	}
	printer.PrintHints("community show")
	return nil
}

func runCommunityCreate(cmd *cobra.Command, args []string) error {
	post := domain.NewCommunityPost{}
	post.Title, _ = cmd.Flags().GetString("title")
	post.Content, _ = cmd.Flags().GetString("content")
	category, _ := cmd.Flags().GetString("category")
	post.Category = domain.PostCategory(strings.ToUpper(category))
	post.Tags, _ = cmd.Flags().GetStringSlice("tags")
	post.NeighborhoodID, _ = cmd.Flags().GetString("neighborhood")

	created, err := views.Community().Create(cmd.Context(), post)
	if err != nil {
		return err
	}
	if jsonOut {
		return printer.JSON(created)
	}
	printer.Success("Post %q created with ID %s", created.Title, created.ID)
	return nil
}

func runCommunityComment(cmd *cobra.Command, args []string) error {
	comment, err := views.Community().AddComment(cmd.Context(), args[0], args[1], "")
	if err != nil {
		return err
	}
	if jsonOut {
		return printer.JSON(comment)
	}
	printer.Success("Comment posted")
	return nil
}

func runCommunityLike(cmd *cobra.Command, args []string) error {
	undo, _ := cmd.Flags().GetBool("undo")
	if undo {
		if err := views.Community().Unlike(cmd.Context(), args[0]); err != nil {
			return err
		}
		printer.Success("Like removed")
		return nil
	}
	if err := views.Community().Like(cmd.Context(), args[0]); err != nil {
		return err
	}
	printer.Success("Post liked")
	return nil
}

func replyAuthor(user *domain.User) string {
	if user == nil {
		return "anonymous"
	}
	return user.Username
}
