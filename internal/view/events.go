package view

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Sowjanyakambhampati/forumctl/internal/api"
	"github.com/Sowjanyakambhampati/forumctl/internal/domain"
)

// EventsPage is the event listing with its category sidebar.
type EventsPage struct {
	Events     []domain.Event
	Categories []domain.EventCategory
}

// EventDetailPage is one event with its attendee and comment sections.
type EventDetailPage struct {
	Event     *domain.Event
	Attendees []domain.EventRegistration
	Comments  []domain.EventComment
}

// EventList loads the events page. The category sidebar is a secondary
// section; the event list itself is the page and its failure is fatal.
func (v *View) EventList(ctx context.Context, params api.ListParams) (*EventsPage, error) {
	page := &EventsPage{}

	var g errgroup.Group
	g.Go(func() error {
		events, err := v.events.List(ctx, params)
		if err != nil {
			return err
		}
		page.Events = events
		return nil
	})
	g.Go(section(v, "events", "categories", func() error {
		cats, err := v.events.Categories(ctx)
		if err != nil {
			return err
		}
		page.Categories = cats
		return nil
	}))

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return page, nil
}

// EventDetail loads one event. Attendees and comments load concurrently and
// degrade to empty sections when their fetches fail.
func (v *View) EventDetail(ctx context.Context, id string) (*EventDetailPage, error) {
	event, err := v.events.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	page := &EventDetailPage{Event: event}

	var g errgroup.Group
	g.Go(section(v, "event", "attendees", func() error {
		attendees, err := v.events.Attendees(ctx, id, api.ListParams{})
		if err != nil {
			return err
		}
		page.Attendees = attendees
		return nil
	}))
	g.Go(section(v, "event", "comments", func() error {
		comments, err := v.events.Comments(ctx, id, api.ListParams{})
		if err != nil {
			return err
		}
		page.Comments = comments
		return nil
	}))

	_ = g.Wait()
	return page, nil
}
