package model

import "time"

// User mirrors the account record pushed by the identity provider.
// ClerkID is the provider's opaque identifier; email and username are
// unique alongside it.
type User struct {
	ID        int       `json:"id" db:"id"`
	ClerkID   string    `json:"clerk_id" db:"clerk_id"`
	Email     string    `json:"email" db:"email"`
	Username  string    `json:"username" db:"username"`
	FirstName string    `json:"first_name" db:"first_name"`
	LastName  *string   `json:"last_name,omitempty" db:"last_name"`
	Photo     string    `json:"photo" db:"photo"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type UpdateUserParams struct {
	Username  *string
	FirstName *string
	LastName  *string
	Photo     *string
}
