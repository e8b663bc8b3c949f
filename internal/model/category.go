package model

// Category names are stored case-sensitive and unique; lookups by name are
// case-insensitive.
type Category struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
