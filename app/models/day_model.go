package models

import (
	"time"
)

// Day is one of the 10 calendar days inside a cycle. Its date is fixed
// at generation time to cycle.startDate + (dayNumber-1) days.
type Day struct {
	ID          int       `json:"id" db:"id"`
	CycleID     int       `json:"cycleId" db:"cycle_id"`
	DayNumber   int       `json:"dayNumber" db:"day_number"`
	Date        time.Time `json:"date" db:"date"`
	Goal        string    `json:"goal" db:"goal"`
	IsCompleted bool      `json:"isCompleted" db:"is_completed"`
	Notes       string    `json:"notes" db:"notes"`
}

type DayWithTasks struct {
	Day
	Tasks []Task `json:"tasks"`
}

// UpdateDayRequest is the sparse day update. cycleId is not part of
// the accepted fields; a day never moves to another cycle.
type UpdateDayRequest struct {
	DayNumber   *int       `json:"dayNumber"`
	Date        *time.Time `json:"date"`
	Goal        *string    `json:"goal"`
	IsCompleted *bool      `json:"isCompleted"`
	Notes       *string    `json:"notes"`
}
