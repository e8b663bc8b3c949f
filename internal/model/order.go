package model

import "time"

// Order links a completed payment to an event and its buyer. StripeID is
// the payment processor's identifier and is globally unique.
type Order struct {
	ID          int       `json:"id" db:"id"`
	StripeID    string    `json:"stripe_id" db:"stripe_id"`
	TotalAmount string    `json:"total_amount" db:"total_amount"`
	EventID     int       `json:"event_id" db:"event_id"`
	BuyerID     int       `json:"buyer_id" db:"buyer_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`

	EventTitle *string           `json:"event_title,omitempty" db:"-"`
	Buyer      *OrganizerSummary `json:"buyer,omitempty" db:"-"`
}

type CreateOrderParams struct {
	StripeID    string
	TotalAmount string
	EventID     int
	BuyerID     int
}

type ListOrdersByUserParams struct {
	UserID int
	Page   int
	Limit  int
}

type OrderPage struct {
	Data       []*Order `json:"data"`
	TotalPages int      `json:"total_pages"`
}
