// Package view assembles the data each forumctl screen needs. A page loader
// fetches the primary resource, then fans out over the secondary fetches
// concurrently; a secondary fetch that fails is logged and leaves its section
// empty instead of failing the page.
package view

import (
	"log/slog"

	"github.com/Sowjanyakambhampati/forumctl/internal/api"
	"github.com/Sowjanyakambhampati/forumctl/internal/auth"
)

// View loads pages from the forum backend for the command layer to render.
type View struct {
	events        *api.EventsAPI
	community     *api.CommunityAPI
	neighborhoods *api.NeighborhoodsAPI
	market        *api.MarketplaceAPI
	threads       *api.ThreadsAPI
	posts         *api.PostsAPI
	notifications *api.NotificationsAPI
	search        *api.SearchAPI
	analytics     *api.AnalyticsAPI
	messages      *api.MessagesAPI
	reports       *api.ReportsAPI
	upload        *api.UploadAPI
	auth          *auth.Manager
	logger        *slog.Logger
}

// New wires every resource group onto one shared REST client.
func New(client *api.Client, mgr *auth.Manager, logger *slog.Logger) *View {
	return &View{
		events:        api.NewEventsAPI(client),
		community:     api.NewCommunityAPI(client),
		neighborhoods: api.NewNeighborhoodsAPI(client),
		market:        api.NewMarketplaceAPI(client),
		threads:       api.NewThreadsAPI(client),
		posts:         api.NewPostsAPI(client),
		notifications: api.NewNotificationsAPI(client),
		search:        api.NewSearchAPI(client),
		analytics:     api.NewAnalyticsAPI(client),
		messages:      api.NewMessagesAPI(client),
		reports:       api.NewReportsAPI(client),
		upload:        api.NewUploadAPI(client),
		auth:          mgr,
		logger:        logger.With("component", "view"),
	}
}

// Auth exposes the auth manager for commands that act on the session.
func (v *View) Auth() *auth.Manager {
	return v.auth
}

// Events exposes the events resource group for mutating commands.
func (v *View) Events() *api.EventsAPI { return v.events }

// Community exposes the community posts resource group.
func (v *View) Community() *api.CommunityAPI { return v.community }

// Neighborhoods exposes the neighborhoods resource group.
func (v *View) Neighborhoods() *api.NeighborhoodsAPI { return v.neighborhoods }

// Market exposes the marketplace resource group.
func (v *View) Market() *api.MarketplaceAPI { return v.market }

// Notifications exposes the notifications resource group.
func (v *View) Notifications() *api.NotificationsAPI { return v.notifications }

// Search exposes the cross-resource search endpoint.
func (v *View) Search() *api.SearchAPI { return v.search }

// Threads exposes the discussion threads resource group.
func (v *View) Threads() *api.ThreadsAPI { return v.threads }

// Posts exposes the thread replies resource group.
func (v *View) Posts() *api.PostsAPI { return v.posts }

// Messages exposes the direct messages resource group.
func (v *View) Messages() *api.MessagesAPI { return v.messages }

// Reports exposes the moderation reports resource group.
func (v *View) Reports() *api.ReportsAPI { return v.reports }

// Upload exposes the image upload resource group.
func (v *View) Upload() *api.UploadAPI { return v.upload }

// section runs a secondary fetch and downgrades its failure to a log line.
// The returned closure fits errgroup.Group.Go.
func section(v *View, page, name string, fetch func() error) func() error {
	return func() error {
		if err := fetch(); err != nil {
			v.logger.Warn("page section unavailable", "page", page, "section", name, "error", err)
		}
		return nil
	}
}
