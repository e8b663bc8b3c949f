package model

import (
	"net/url"
	"strings"
	"time"
	"unicode/utf8"
)

// EventForm is the full set of writable event fields. Create inserts it;
// Update replaces the stored fields with it wholesale, mirroring the
// product's single edit form.
type EventForm struct {
	Title         string
	Description   *string
	Location      *string
	ImageURL      string
	StartDateTime time.Time
	EndDateTime   time.Time
	Price         *string
	IsFree        bool
	URL           *string
	CategoryID    int
}

// FieldRule declares one form field's constraints, kept as data so the
// rules stay inspectable by whatever renders the form.
type FieldRule struct {
	Name     string
	Type     string
	Required bool
	MinLen   int
	MaxLen   int
}

// EventFormRules is the schema behind Validate.
var EventFormRules = []FieldRule{
	{Name: "title", Type: "string", Required: true, MinLen: 3},
	{Name: "description", Type: "string", MinLen: 3, MaxLen: 400},
	{Name: "location", Type: "string", MinLen: 3, MaxLen: 400},
	{Name: "imageUrl", Type: "string", Required: true},
	{Name: "startDateTime", Type: "datetime"},
	{Name: "endDateTime", Type: "datetime"},
	{Name: "price", Type: "string"},
	{Name: "isFree", Type: "bool"},
	{Name: "url", Type: "url"},
	{Name: "categoryId", Type: "int", Required: true},
}

// FieldError reports a single failed rule.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate applies EventFormRules plus the cross-field rule that the end
// must not precede the start. It is a pure check with no persistence
// involved; price stays optional because stored price is nullable.
func (f *EventForm) Validate() []FieldError {
	var errs []FieldError

	if utf8.RuneCountInString(strings.TrimSpace(f.Title)) < 3 {
		errs = append(errs, FieldError{"title", "must be at least 3 characters"})
	}
	if f.Description != nil {
		if n := utf8.RuneCountInString(*f.Description); n < 3 || n > 400 {
			errs = append(errs, FieldError{"description", "must be 3 to 400 characters"})
		}
	}
	if f.Location != nil {
		if n := utf8.RuneCountInString(*f.Location); n < 3 || n > 400 {
			errs = append(errs, FieldError{"location", "must be 3 to 400 characters"})
		}
	}
	if strings.TrimSpace(f.ImageURL) == "" {
		errs = append(errs, FieldError{"imageUrl", "is required"})
	}
	if !f.EndDateTime.IsZero() && !f.StartDateTime.IsZero() && f.EndDateTime.Before(f.StartDateTime) {
		errs = append(errs, FieldError{"endDateTime", "must not be before startDateTime"})
	}
	if f.URL != nil {
		u, err := url.Parse(*f.URL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, FieldError{"url", "must be a valid URL"})
		}
	}
	if f.CategoryID <= 0 {
		errs = append(errs, FieldError{"categoryId", "is required"})
	}

	return errs
}
