package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sowjanyakambhampati/forumctl/internal/timefmt"
)

var neighborhoodsCmd = &cobra.Command{
	Use:   "neighborhoods",
	Short: "Browse neighborhoods and their activity",
}

var neighborhoodsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List neighborhoods",
	Long: `List neighborhoods, optionally narrowed by city or a search term.

Examples:
  forumctl neighborhoods list
  forumctl neighborhoods list --city Amsterdam
  forumctl neighborhoods list --search park`,
	RunE: runNeighborhoodsList,
}

var neighborhoodsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a neighborhood with its events, listings and posts",
	Args:  cobra.ExactArgs(1),
	RunE:  runNeighborhoodsShow,
}

var neighborhoodsJoinCmd = &cobra.Command{
	Use:   "join <id>",
	Short: "Join a neighborhood",
	Args:  cobra.ExactArgs(1),
	RunE:  runNeighborhoodsJoin,
}

var neighborhoodsLeaveCmd = &cobra.Command{
	Use:   "leave <id>",
	Short: "Leave a neighborhood",
	Args:  cobra.ExactArgs(1),
	RunE:  runNeighborhoodsLeave,
}

func init() {
	rootCmd.AddCommand(neighborhoodsCmd)
	neighborhoodsCmd.AddCommand(neighborhoodsListCmd, neighborhoodsShowCmd,
		neighborhoodsJoinCmd, neighborhoodsLeaveCmd)

	neighborhoodsListCmd.Flags().String("city", "", "filter by city")
	neighborhoodsListCmd.Flags().String("search", "", "search term")
}

func runNeighborhoodsList(cmd *cobra.Command, args []string) error {
	city, _ := cmd.Flags().GetString("city")
	search, _ := cmd.Flags().GetString("search")

	page, err := views.NeighborhoodList(cmd.Context(), city, search)
	if err != nil {
		return err
	}
	if jsonOut {
		return printer.JSON(page.Neighborhoods)
	}

	table := newStdoutTable([]string{"ID", "NAME", "CITY", "MEMBERS", "EVENTS", "LISTINGS"})
	for _, n := range page.Neighborhoods {
		table.AddRow([]string{
			n.ID,
			n.Name,
			n.City,
			fmt.Sprintf("%d", n.MemberCount),
			fmt.Sprintf("%d", n.EventCount),
			fmt.Sprintf("%d", n.ListingCount),
		})
	}
	renderOrEmpty(table, "No neighborhoods found")
	printer.PrintHints("neighborhoods list")
	return nil
}

func runNeighborhoodsShow(cmd *cobra.Command, args []string) error {
	page, err := views.NeighborhoodDetail(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if jsonOut {
		return printer.JSON(page)
	}

	n := page.Neighborhood
	printer.Header(fmt.Sprintf("%s (%s)", n.Name, n.City))
	if n.Description != "" {
		printer.Print("%s", n.Description)
	}
	printer.Print("%d members", n.MemberCount)

	if len(page.Events) > 0 {
		printer.Header(fmt.Sprintf("Upcoming events (%d)", len(page.Events)))
		for _, e := range page.Events {
			printer.Print("%s %s — %s, %s", printer.StatusBadge(string(e.Status)), e.Title, timefmt.Date(e.StartDate), e.Location)
		}
	}
	if len(page.Listings) > 0 {
		printer.Header(fmt.Sprintf("Marketplace (%d)", len(page.Listings)))
		for _, l := range page.Listings {
			printer.Print("%s %s — %s", printer.StatusBadge(string(l.Status)), l.Title, listingPrice(l))
		}
	}
	if len(page.Posts) > 0 {
		printer.Header(fmt.Sprintf("Recent posts (%d)", len(page.Posts)))
		for _, p := range page.Posts {
			printer.Print("[%s] %s %s", p.Category, p.Title, printer.Dim(timefmt.Ago(p.CreatedAt)))
		}
	}
	printer.PrintHints("neighborhoods show")
	return nil
}

func runNeighborhoodsJoin(cmd *cobra.Command, args []string) error {
	if err := views.Neighborhoods().Join(cmd.Context(), args[0]); err != nil {
		return err
	}
	printer.Success("Joined neighborhood %s", args[0])
	return nil
}

func runNeighborhoodsLeave(cmd *cobra.Command, args []string) error {
	if err := views.Neighborhoods().Leave(cmd.Context(), args[0]); err != nil {
		return err
	}
	printer.Success("Left neighborhood %s", args[0])
	return nil
}
