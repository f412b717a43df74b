package models

// Stats is admin dashboard summary
type Stats struct {
	Users     int64
	Orders    map[string]int64
	BoxOrders map[string]int64
	Revenue   int64
}
