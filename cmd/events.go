package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Sowjanyakambhampati/forumctl/internal/api"
	"github.com/Sowjanyakambhampati/forumctl/internal/domain"
	"github.com/Sowjanyakambhampati/forumctl/internal/timefmt"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Browse and manage community events",
}

var eventsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List events",
	Long: `List events, newest first.

Examples:
  forumctl events list
  forumctl events list --category cleanup --limit 10
  forumctl events list --search "garage sale"
  forumctl events list --mine`,
	RunE: runEventsList,
}

var eventsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one event with attendees and comments",
	Args:  cobra.ExactArgs(1),
	RunE:  runEventsShow,
}

var eventsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Publish a new event",
	Long: `Publish an event.

Examples:
  forumctl events create --title "Street Cleanup" --description "Bring gloves" \
    --start 2026-10-01T10:00:00 --location "Main St park" --free
  forumctl events create --title "Workshop" --description "Intro to beekeeping" \
    --start 2026-10-05 --location "Community hall" --price 5 --capacity 20`,
	RunE: runEventsCreate,
}

var eventsRegisterCmd = &cobra.Command{
	Use:   "register <id>",
	Short: "Register for an event",
	Args:  cobra.ExactArgs(1),
	RunE:  runEventsRegister,
}

var eventsUnregisterCmd = &cobra.Command{
	Use:   "unregister <id>",
	Short: "Cancel an event registration",
	Args:  cobra.ExactArgs(1),
	RunE:  runEventsUnregister,
}

var eventsCommentCmd = &cobra.Command{
	Use:   "comment <id> <text>",
	Short: "Comment on an event",
	Args:  cobra.ExactArgs(2),
	RunE:  runEventsComment,
}

func init() {
	rootCmd.AddCommand(eventsCmd)
	eventsCmd.AddCommand(eventsListCmd, eventsShowCmd, eventsCreateCmd,
		eventsRegisterCmd, eventsUnregisterCmd, eventsCommentCmd)

	addListFlags(eventsListCmd)
	eventsListCmd.Flags().Bool("mine", false, "only events you registered for")

	eventsCreateCmd.Flags().String("title", "", "event title (required)")
	eventsCreateCmd.Flags().String("description", "", "event description (required)")
	eventsCreateCmd.Flags().String("start", "", "start date, e.g. 2026-10-01 or 2026-10-01T10:00:00 (required)")
	eventsCreateCmd.Flags().String("end", "", "end date")
	eventsCreateCmd.Flags().String("location", "", "where the event happens (required)")
	eventsCreateCmd.Flags().String("category", "", "category ID")
	eventsCreateCmd.Flags().Int("capacity", 0, "attendee cap (0 = unlimited)")
	eventsCreateCmd.Flags().Float64("price", 0, "ticket price")
	eventsCreateCmd.Flags().Bool("free", false, "mark the event as free")
	eventsCreateCmd.Flags().StringSlice("tags", nil, "tags")
	eventsCreateCmd.Flags().String("neighborhood", "", "neighborhood ID")
	_ = eventsCreateCmd.MarkFlagRequired("title")
	_ = eventsCreateCmd.MarkFlagRequired("description")
	_ = eventsCreateCmd.MarkFlagRequired("start")
	_ = eventsCreateCmd.MarkFlagRequired("location")

	eventsRegisterCmd.Flags().String("notes", "", "note for the organizer")
}

// addListFlags attaches the filter/sort/pagination flags shared by every
// listing command.
func addListFlags(cmd *cobra.Command) {
	cmd.Flags().Int("page", 0, "page number")
	cmd.Flags().Int("limit", 20, "results per page")
	cmd.Flags().String("search", "", "search term")
	cmd.Flags().String("category", "", "filter by category")
	cmd.Flags().String("neighborhood", "", "filter by neighborhood ID")
	cmd.Flags().String("status", "", "filter by status")
	cmd.Flags().String("sort", "", "sort key")
}

func listParams(cmd *cobra.Command) api.ListParams {
	p := api.ListParams{}
	p.Page, _ = cmd.Flags().GetInt("page")
	p.Limit, _ = cmd.Flags().GetInt("limit")
	p.Search, _ = cmd.Flags().GetString("search")
	p.Category, _ = cmd.Flags().GetString("category")
	p.Neighborhood, _ = cmd.Flags().GetString("neighborhood")
	p.Status, _ = cmd.Flags().GetString("status")
	p.SortBy, _ = cmd.Flags().GetString("sort")
	return p
}

func runEventsList(cmd *cobra.Command, args []string) error {
	mine, _ := cmd.Flags().GetBool("mine")
	if mine {
		status, _ := cmd.Flags().GetString("status")
		regs, err := views.Events().MyRegistrations(cmd.Context(), status)
		if err != nil {
			return err
		}
		if jsonOut {
			return printer.JSON(regs)
		}
		table := newStdoutTable([]string{"", "EVENT", "STATUS", "NOTES"})
		for _, r := range regs {
			table.AddRow([]string{printer.StatusBadge(string(r.Status)), r.EventID, string(r.Status), r.Notes})
		}
		renderOrEmpty(table, "No registrations")
		return nil
	}

	page, err := views.EventList(cmd.Context(), listParams(cmd))
	if err != nil {
		return err
	}
	if jsonOut {
		return printer.JSON(page.Events)
	}

	table := newStdoutTable([]string{"", "ID", "TITLE", "DATE", "LOCATION", "PRICE"})
	for _, e := range page.Events {
		table.AddRow([]string{
			printer.StatusBadge(string(e.Status)),
			e.ID,
			e.Title,
			timefmt.Date(e.StartDate),
			e.Location,
			eventPrice(e),
		})
	}
	renderOrEmpty(table, "No events found")

	if len(page.Categories) > 0 && !quiet {
		names := make([]string, 0, len(page.Categories))
		for _, c := range page.Categories {
			names = append(names, c.Name)
		}
		printer.Print("")
		printer.Info("Categories: %s", strings.Join(names, ", "))
	}
	printer.PrintHints("events list")
	return nil
}

func runEventsShow(cmd *cobra.Command, args []string) error {
	page, err := views.EventDetail(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if jsonOut {
		return printer.JSON(page)
	}

	e := page.Event
	printer.Header(e.Title)
	printer.Print("%s %s", printer.StatusBadge(string(e.Status)), string(e.Status))
	printer.Print("When:     %s", timefmt.DateTime(e.StartDate))
	if e.EndDate != "" {
		printer.Print("Until:    %s", timefmt.DateTime(e.EndDate))
	}
	printer.Print("Where:    %s", e.Location)
	printer.Print("Price:    %s", eventPrice(*e))
	if e.Capacity > 0 {
		printer.Print("Capacity: %d/%d", e.CurrentAttendees, e.Capacity)
	}
	if e.CreatedBy != nil {
		printer.Print("Host:     %s", e.CreatedBy.Username)
	}
	printer.Print("")
	printer.Print("%s", e.Description)

	if len(page.Attendees) > 0 {
		printer.Header(fmt.Sprintf("Attendees (%d)", len(page.Attendees)))
		for _, a := range page.Attendees {
			name := a.UserID
			if a.User != nil {
				name = a.User.Username
			}
			printer.Print("%s %s", printer.StatusBadge(string(a.Status)), name)
		}
	}
	if len(page.Comments) > 0 {
		printer.Header(fmt.Sprintf("Comments (%d)", len(page.Comments)))
		for _, c := range page.Comments {
			printComment(c.User, c.Content, c.CreatedAt)
		}
	}
	printer.PrintHints("events show")
	return nil
}

func runEventsCreate(cmd *cobra.Command, args []string) error {
	ev := domain.NewEvent{}
	ev.Title, _ = cmd.Flags().GetString("title")
	ev.Description, _ = cmd.Flags().GetString("description")
	ev.StartDate, _ = cmd.Flags().GetString("start")
	ev.EndDate, _ = cmd.Flags().GetString("end")
	ev.Location, _ = cmd.Flags().GetString("location")
	ev.CategoryID, _ = cmd.Flags().GetString("category")
	ev.Capacity, _ = cmd.Flags().GetInt("capacity")
	ev.Price, _ = cmd.Flags().GetFloat64("price")
	ev.IsFree, _ = cmd.Flags().GetBool("free")
	ev.Tags, _ = cmd.Flags().GetStringSlice("tags")
	ev.NeighborhoodID, _ = cmd.Flags().GetString("neighborhood")

	created, err := views.Events().Create(cmd.Context(), ev)
	if err != nil {
		return err
	}
	if jsonOut {
		return printer.JSON(created)
	}
	printer.Success("Event %q created with ID %s", created.Title, created.ID)
	return nil
}

func runEventsRegister(cmd *cobra.Command, args []string) error {
	notes, _ := cmd.Flags().GetString("notes")
	reg, err := views.Events().Register(cmd.Context(), args[0], notes)
	if err != nil {
		return err
	}
	if jsonOut {
		return printer.JSON(reg)
	}
	if reg.Status == domain.RegistrationWaitlist {
		printer.Warning("Event is full: you are on the waitlist at position %d", reg.WaitlistPosition)
	} else {
		printer.Success("Registered for event %s", args[0])
	}
	printer.PrintHints("events register")
	return nil
}

func runEventsUnregister(cmd *cobra.Command, args []string) error {
	if err := views.Events().Unregister(cmd.Context(), args[0]); err != nil {
		return err
	}
	printer.Success("Registration cancelled for event %s", args[0])
	return nil
}

func runEventsComment(cmd *cobra.Command, args []string) error {
	comment, err := views.Events().AddComment(cmd.Context(), args[0], args[1], "")
	if err != nil {
		return err
	}
	if jsonOut {
		return printer.JSON(comment)
	}
	printer.Success("Comment posted")
	return nil
}

func eventPrice(e domain.Event) string {
	if e.IsFree || e.Price == 0 {
		return "free"
	}
	return "$" + strconv.FormatFloat(e.Price, 'f', 2, 64)
}

func printComment(user *domain.User, content, createdAt string) {
	author := "anonymous"
	if user != nil {
		author = user.Username
	}
	printer.Print("%s %s", printer.Bold(author), printer.Dim(timefmt.Ago(createdAt)))
	printer.Print("  %s", content)
}
