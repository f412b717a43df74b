package models

import "time"

//pending — заказ создан, ожидает оплаты;
//paid — пользователь отметил оплату, ожидает подтверждения;
//confirmed — оплата подтверждена админом;
//cancelled — заказ отклонён.

// order and box order statuses
const (
	StatusPending   = "pending"
	StatusPaid      = "paid"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
)

// CanTransition reports whether a single status change is legal; the
// repositories re-check it under a row lock before every write.
// cancelled and delivered are terminal: nothing leaves them.
func CanTransition(from, to string) bool {
	switch to {
	case StatusPaid:
		return from == StatusPending
	case StatusConfirmed:
		return from == StatusPending || from == StatusPaid
	case StatusCancelled:
		return from == StatusPending || from == StatusPaid
	case StatusShipped:
		return from == StatusConfirmed
	case StatusDelivered:
		return from == StatusShipped
	default:
		return false
	}
}

// Order is digital pre-order entity
type Order struct {
	ID          uint64
	ChatID      int64
	Name        string
	Email       string
	Amount      int64
	Currency    string
	Status      string
	CreatedAt   time.Time
	PaidAt      *time.Time
	ConfirmedAt *time.Time
}
