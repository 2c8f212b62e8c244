package models

// ReminderTemplate is static guidance text keyed by day-of-cycle
// (1..10). Seeded once at startup, read-only through the API; clients
// join it against a day's dayNumber themselves.
type ReminderTemplate struct {
	ID        int    `json:"id" db:"id"`
	DayNumber int    `json:"dayNumber" db:"day_number"`
	Message   string `json:"message" db:"message"`
}
