package model

import (
	"time"

	"github.com/google/uuid"
)

// Event is addressed externally by EventID (uuid); the serial ID stays
// internal. Category and Organizer are joined in at query time and never
// stored on the row.
type Event struct {
	ID            int       `json:"id" db:"id"`
	EventID       uuid.UUID `json:"event_id" db:"event_id"`
	Title         string    `json:"title" db:"title"`
	Description   *string   `json:"description,omitempty" db:"description"`
	Location      *string   `json:"location,omitempty" db:"location"`
	ImageURL      string    `json:"image_url" db:"image_url"`
	StartDateTime time.Time `json:"start_datetime" db:"start_datetime"`
	EndDateTime   time.Time `json:"end_datetime" db:"end_datetime"`
	Price         *string   `json:"price,omitempty" db:"price"`
	IsFree        bool      `json:"is_free" db:"is_free"`
	URL           *string   `json:"url,omitempty" db:"url"`
	CategoryID    int       `json:"category_id" db:"category_id"`
	OrganizerID   int       `json:"organizer_id" db:"organizer_id"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`

	Category  *CategorySummary  `json:"category,omitempty" db:"-"`
	Organizer *OrganizerSummary `json:"organizer,omitempty" db:"-"`
}

// CategorySummary is the two-field projection embedded in listed events.
type CategorySummary struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// OrganizerSummary is the name projection embedded in listed events.
type OrganizerSummary struct {
	ID        int     `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  *string `json:"last_name,omitempty"`
}

// EventFilter is the conjunctive predicate for the global listing. Zero
// values mean "no condition". CategoryID is the already-resolved category;
// resolution from a category name happens in the service.
type EventFilter struct {
	TitleQuery     string
	CategoryID     int
	OrganizerID    int
	ExcludeEventID int
}

type ListEventsParams struct {
	Query    string
	Category string
	Page     int
	Limit    int
}

type ListEventsByOrganizerParams struct {
	UserID int
	Page   int
	Limit  int
}

type ListRelatedEventsParams struct {
	CategoryID     int
	ExcludeEventID int
	Page           int
	Limit          int
}

// EventPage is a page of populated events plus the page count for the
// whole filtered set.
type EventPage struct {
	Data       []*Event `json:"data"`
	TotalPages int      `json:"total_pages"`
}
