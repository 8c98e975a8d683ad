package domain

// EventStatus is the lifecycle state the backend reports for an event.
type EventStatus string

const (
	EventUpcoming  EventStatus = "UPCOMING"
	EventOngoing   EventStatus = "ONGOING"
	EventCompleted EventStatus = "COMPLETED"
	EventCancelled EventStatus = "CANCELLED"
)

// RegistrationStatus is the state of a user's event registration. Capacity
// and waitlist transitions are decided server-side; the client only displays
// them.
type RegistrationStatus string

const (
	RegistrationRegistered RegistrationStatus = "REGISTERED"
	RegistrationWaitlist   RegistrationStatus = "WAITLIST"
	RegistrationCancelled  RegistrationStatus = "CANCELLED"
	RegistrationAttended   RegistrationStatus = "ATTENDED"
	RegistrationNoShow     RegistrationStatus = "NO_SHOW"
)

// EventCategory groups events for filtering.
type EventCategory struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	EventCount int    `json:"eventCount,omitempty"`
}

// Event is a community event listing.
type Event struct {
	ID               string        `json:"id"`
	Title            string        `json:"title"`
	Description      string        `json:"description"`
	CategoryID       string        `json:"categoryId,omitempty"`
	StartDate        string        `json:"startDate"`
	EndDate          string        `json:"endDate,omitempty"`
	Location         string        `json:"location"`
	Capacity         int           `json:"capacity,omitempty"`
	CurrentAttendees int           `json:"currentAttendees,omitempty"`
	Price            float64       `json:"price,omitempty"`
	IsFree           bool          `json:"isFree"`
	Images           []string      `json:"images,omitempty"`
	Tags             []string      `json:"tags,omitempty"`
	Status           EventStatus   `json:"status"`
	CreatedBy        *User         `json:"createdBy,omitempty"`
	NeighborhoodID   string        `json:"neighborhoodId,omitempty"`
	Neighborhood     *Neighborhood `json:"neighborhood,omitempty"`
	RegistrationCnt  int           `json:"registrationCount,omitempty"`
	WaitlistCount    int           `json:"waitlistCount,omitempty"`
	CreatedAt        string        `json:"createdAt,omitempty"`
}

// NewEvent carries the fields for creating an event.
type NewEvent struct {
	Title          string   `json:"title" validate:"required,min=3,max=200"`
	Description    string   `json:"description" validate:"required"`
	CategoryID     string   `json:"categoryId,omitempty"`
	StartDate      string   `json:"startDate" validate:"required"`
	EndDate        string   `json:"endDate,omitempty"`
	Location       string   `json:"location" validate:"required"`
	Capacity       int      `json:"capacity,omitempty" validate:"omitempty,min=1"`
	Price          float64  `json:"price,omitempty" validate:"omitempty,min=0"`
	IsFree         bool     `json:"isFree"`
	Tags           []string `json:"tags,omitempty"`
	NeighborhoodID string   `json:"neighborhoodId,omitempty"`
}

// EventRegistration ties a user to an event with a status.
type EventRegistration struct {
	ID               string             `json:"id"`
	EventID          string             `json:"eventId"`
	UserID           string             `json:"userId"`
	User             *User              `json:"user,omitempty"`
	Status           RegistrationStatus `json:"status"`
	Notes            string             `json:"notes,omitempty"`
	WaitlistPosition int                `json:"waitlistPosition,omitempty"`
	CreatedAt        string             `json:"createdAt,omitempty"`
}

// EventComment is a threaded comment on an event.
type EventComment struct {
	ID        string         `json:"id"`
	EventID   string         `json:"eventId"`
	UserID    string         `json:"userId"`
	User      *User          `json:"user,omitempty"`
	Content   string         `json:"content"`
	ParentID  string         `json:"parentId,omitempty"`
	Replies   []EventComment `json:"replies,omitempty"`
	CreatedAt string         `json:"createdAt,omitempty"`
}
