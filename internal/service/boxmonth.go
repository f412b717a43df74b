package service

import (
	"fmt"
	"time"
)

var monthsGenitive = map[time.Month]string{
	time.January:   "января",
	time.February:  "февраля",
	time.March:     "марта",
	time.April:     "апреля",
	time.May:       "мая",
	time.June:      "июня",
	time.July:      "июля",
	time.August:    "августа",
	time.September: "сентября",
	time.October:   "октября",
	time.November:  "ноября",
	time.December:  "декабря",
}

// NextBoxMonth determines which box a new pre-order belongs to.
// Pre-orders close on the 20th: up to and including day 20 the box ships on
// the 1st of the next month, after that on the 1st of the month after next.
// It returns the storage key ("2026-02") and the display form ("февраля").
func NextBoxMonth(now time.Time) (string, string) {
	now = now.UTC()

	months := 1
	if now.Day() > 20 {
		months = 2
	}
	target := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, months, 0)

	key := fmt.Sprintf("%04d-%02d", target.Year(), int(target.Month()))
	return key, monthsGenitive[target.Month()]
}
