package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/Sowjanyakambhampati/forumctl/internal/timefmt"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search across events, posts, listings and users",
	Long: `Search the whole platform.

Examples:
  forumctl search "garage sale"
  forumctl search bike --type listing
  forumctl search ada --type user`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().String("type", "", "limit to one resource type: event, post, listing, user")
	searchCmd.Flags().Int("limit", 20, "maximum results")
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	resourceType, _ := cmd.Flags().GetString("type")
	limit, _ := cmd.Flags().GetInt("limit")

	results, err := views.Search().Search(cmd.Context(), query, resourceType, limit)
	if err != nil {
		return err
	}
	if jsonOut {
		return printer.JSON(results)
	}

	table := newStdoutTable([]string{"TYPE", "ID", "TITLE", "WHEN"})
	for _, r := range results {
		title := r.Title
		if title == "" {
			title = truncate(r.Content, 60)
		}
		table.AddRow([]string{r.Type, r.ID, title, timefmt.Ago(r.CreatedAt)})
	}
	renderOrEmpty(table, "No results for "+query)
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
