package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Sowjanyakambhampati/forumctl/internal/domain"
	"github.com/Sowjanyakambhampati/forumctl/internal/timefmt"
)

var marketCmd = &cobra.Command{
	Use:   "market",
	Short: "Browse and manage marketplace listings",
}

var marketListCmd = &cobra.Command{
	Use:   "list",
	Short: "List marketplace listings",
	Long: `Browse listings, newest first.

Examples:
  forumctl market list
  forumctl market list --search bike --status ACTIVE
  forumctl market list --mine
  forumctl market list --favorites`,
	RunE: runMarketList,
}

var marketShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one listing",
	Args:  cobra.ExactArgs(1),
	RunE:  runMarketShow,
}

var marketCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Publish a listing",
	Long: `Publish a marketplace listing.

Examples:
  forumctl market create --title "City bike" --description "Three gears, good brakes" \
    --price 80 --location "Oud-West" --condition GOOD
  forumctl market create --title "Moving boxes" --description "About 20, sturdy" \
    --free --location "Centrum" --condition USED`,
	RunE: runMarketCreate,
}

var marketSoldCmd = &cobra.Command{
	Use:   "sold <id>",
	Short: "Mark a listing as sold",
	Args:  cobra.ExactArgs(1),
	RunE:  runMarketSold,
}

var marketFavoriteCmd = &cobra.Command{
	Use:   "favorite <id>",
	Short: "Toggle a listing as favorite",
	Args:  cobra.ExactArgs(1),
	RunE:  runMarketFavorite,
}

var marketRequestCmd = &cobra.Command{
	Use:   "request <id> <message>",
	Short: "Send a purchase request to the seller",
	Args:  cobra.ExactArgs(2),
	RunE:  runMarketRequest,
}

func init() {
	rootCmd.AddCommand(marketCmd)
	marketCmd.AddCommand(marketListCmd, marketShowCmd, marketCreateCmd,
		marketSoldCmd, marketFavoriteCmd, marketRequestCmd)

	addListFlags(marketListCmd)
	marketListCmd.Flags().Bool("mine", false, "only your own listings")
	marketListCmd.Flags().Bool("favorites", false, "only your favorites")

	marketCreateCmd.Flags().String("title", "", "listing title (required)")
	marketCreateCmd.Flags().String("description", "", "item description (required)")
	marketCreateCmd.Flags().Float64("price", 0, "asking price")
	marketCreateCmd.Flags().Bool("free", false, "give the item away")
	marketCreateCmd.Flags().String("location", "", "pickup location (required)")
	marketCreateCmd.Flags().String("condition", "", "NEW, LIKE_NEW, GOOD, USED or WORN (required)")
	marketCreateCmd.Flags().String("category", "", "category ID")
	marketCreateCmd.Flags().StringSlice("tags", nil, "tags")
	marketCreateCmd.Flags().String("neighborhood", "", "neighborhood ID")
	_ = marketCreateCmd.MarkFlagRequired("title")
	_ = marketCreateCmd.MarkFlagRequired("description")
	_ = marketCreateCmd.MarkFlagRequired("location")
	_ = marketCreateCmd.MarkFlagRequired("condition")
}

func runMarketList(cmd *cobra.Command, args []string) error {
	mine, _ := cmd.Flags().GetBool("mine")
	favorites, _ := cmd.Flags().GetBool("favorites")

	var listings []domain.MarketplaceListing
	var err error
	switch {
	case mine:
		listings, err = views.Market().MyListings(cmd.Context(), listParams(cmd))
	case favorites:
		listings, err = views.Market().Favorites(cmd.Context(), listParams(cmd))
	default:
		page, perr := views.MarketList(cmd.Context(), listParams(cmd))
		if perr == nil {
			listings = page.Listings
		}
		err = perr
	}
	if err != nil {
		return err
	}
	if jsonOut {
		return printer.JSON(listings)
	}

	table := newStdoutTable([]string{"", "ID", "TITLE", "PRICE", "CONDITION", "LOCATION", "POSTED"})
	for _, l := range listings {
		table.AddRow([]string{
			printer.StatusBadge(string(l.Status)),
			l.ID,
			l.Title,
			listingPrice(l),
			string(l.Condition),
			l.Location,
			timefmt.Ago(l.CreatedAt),
		})
	}
	renderOrEmpty(table, "No listings found")
	printer.PrintHints("market list")
	return nil
}

func runMarketShow(cmd *cobra.Command, args []string) error {
	page, err := views.ListingDetail(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if jsonOut {
		return printer.JSON(page)
	}

	l := page.Listing
	printer.Header(l.Title)
	printer.Print("%s %s", printer.StatusBadge(string(l.Status)), string(l.Status))
	printer.Print("Price:     %s", listingPrice(*l))
	printer.Print("Condition: %s", string(l.Condition))
	printer.Print("Pickup:    %s", l.Location)
	if l.Seller != nil {
		printer.Print("Seller:    %s", l.Seller.Username)
	}
	printer.Print("")
	printer.Print("%s", l.Description)
	printer.Print("")
	printer.Print("%d favorites · %d views", l.FavoriteCount, l.ViewCount)

	if len(page.Requests) > 0 {
		printer.Header(fmt.Sprintf("Purchase requests (%d)", len(page.Requests)))
		for _, r := range page.Requests {
			buyer := "anonymous"
			if r.Buyer != nil {
				buyer = r.Buyer.Username
			}
			printer.Print("%s %s: %s", printer.StatusBadge(string(r.Status)), buyer, r.Message)
		}
	}
	printer.PrintHints("market show")
	return nil
}

func runMarketCreate(cmd *cobra.Command, args []string) error {
	listing := domain.NewListing{}
	listing.Title, _ = cmd.Flags().GetString("title")
	listing.Description, _ = cmd.Flags().GetString("description")
	listing.Price, _ = cmd.Flags().GetFloat64("price")
	listing.IsFree, _ = cmd.Flags().GetBool("free")
	listing.Location, _ = cmd.Flags().GetString("location")
	condition, _ := cmd.Flags().GetString("condition")
	listing.Condition = domain.ListingCondition(strings.ToUpper(condition))
	listing.CategoryID, _ = cmd.Flags().GetString("category")
	listing.Tags, _ = cmd.Flags().GetStringSlice("tags")
	listing.NeighborhoodID, _ = cmd.Flags().GetString("neighborhood")

	created, err := views.Market().Create(cmd.Context(), listing)
	if err != nil {
		return err
	}
	if jsonOut {
		return printer.JSON(created)
	}
	printer.Success("Listing %q created with ID %s", created.Title, created.ID)
	return nil
}

func runMarketSold(cmd *cobra.Command, args []string) error {
	if err := views.Market().MarkSold(cmd.Context(), args[0]); err != nil {
		return err
	}
	printer.Success("Listing %s marked as sold", args[0])
	return nil
}

func runMarketFavorite(cmd *cobra.Command, args []string) error {
	if err := views.Market().ToggleFavorite(cmd.Context(), args[0]); err != nil {
		return err
	}
	printer.Success("Favorite toggled for listing %s", args[0])
	return nil
}

func runMarketRequest(cmd *cobra.Command, args []string) error {
	req, err := views.Market().SendRequest(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}
	if jsonOut {
		return printer.JSON(req)
	}
	printer.Success("Request sent to the seller")
	return nil
}

func listingPrice(l domain.MarketplaceListing) string {
	if l.IsFree || l.Price == 0 {
		return "free"
	}
	return "$" + strconv.FormatFloat(l.Price, 'f', 2, 64)
}
