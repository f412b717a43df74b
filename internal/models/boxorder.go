package models

import "time"

// BoxOrder is pre-order entity for the physical box. Shipping fields are
// filled progressively before payment. BoxMonth is the "YYYY-MM" key of the
// box the buyer pre-ordered.
type BoxOrder struct {
	ID          uint64
	ChatID      int64
	Name        string
	Phone       string
	Address     string
	BoxMonth    string
	Amount      int64
	Currency    string
	Status      string
	CreatedAt   time.Time
	PaidAt      *time.Time
	ConfirmedAt *time.Time
	ShippedAt   *time.Time
	DeliveredAt *time.Time
}
