package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sowjanyakambhampati/forumctl/internal/timefmt"
)

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Dashboard: events, posts and listings at a glance",
	Long: `Show the dashboard: upcoming events, recent community posts and new
marketplace listings, plus your unread notification count when signed in.
Sections that fail to load are skipped, so the dashboard works even when
parts of the platform are down.`,
	RunE: runHome,
}

func init() {
	rootCmd.AddCommand(homeCmd)
	homeCmd.Flags().Int("limit", 5, "items per section")
}

func runHome(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	page := views.Home(cmd.Context(), limit)

	if jsonOut {
		return printer.JSON(page)
	}

	if page.User != nil {
		greeting := fmt.Sprintf("Welcome back, %s", page.User.Username)
		if page.UnreadCount > 0 {
			greeting += fmt.Sprintf(" — %d unread notification(s)", page.UnreadCount)
		}
		printer.Info("%s", greeting)
	} else {
		printer.Info("Browsing as guest. Run 'forumctl login' to sign in.")
	}

	if len(page.UpcomingEvents) > 0 {
		printer.Header("Upcoming events")
		for _, e := range page.UpcomingEvents {
			printer.Print("%s %s — %s, %s", printer.StatusBadge(string(e.Status)), e.Title, timefmt.Date(e.StartDate), e.Location)
		}
	}
	if len(page.RecentPosts) > 0 {
		printer.Header("Community")
		for _, p := range page.RecentPosts {
			printer.Print("[%s] %s %s", p.Category, p.Title, printer.Dim(timefmt.Ago(p.CreatedAt)))
		}
	}
	if len(page.NewListings) > 0 {
		printer.Header("Marketplace")
		for _, l := range page.NewListings {
			printer.Print("%s %s — %s", printer.StatusBadge(string(l.Status)), l.Title, listingPrice(l))
		}
	}
	if page.Stats != nil {
		printer.Print("")
		printer.Print("%s", printer.Dim(fmt.Sprintf("%d users · %d events · %d posts · %d listings",
			page.Stats.Users, page.Stats.Events, page.Stats.Posts, page.Stats.Listings)))
	}
	return nil
}
