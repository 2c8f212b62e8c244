package models

import (
	"time"
)

// Cycle is one of the 36 ten-day planning periods that make up a
// tracked year. Exactly one cycle is "active" right after the year is
// initialized; the status field is freely mutable afterwards.
type Cycle struct {
	ID          int       `json:"id" db:"id"`
	CycleNumber int       `json:"cycleNumber" db:"cycle_number"`
	StartDate   time.Time `json:"startDate" db:"start_date"`
	EndDate     time.Time `json:"endDate" db:"end_date"`
	Goal        string    `json:"goal" db:"goal"`
	Status      string    `json:"status" db:"status"`
}

// CycleWithDays is the aggregate returned by the single-cycle fetch:
// the cycle plus its days in dayNumber order, each day carrying its
// tasks in insertion order.
type CycleWithDays struct {
	Cycle
	Days []DayWithTasks `json:"days"`
}

type InitializeYearRequest struct {
	StartDate string `json:"startDate" validate:"required"`
}

// UpdateCycleRequest carries only the fields a client may change. Nil
// means "leave untouched". The id is deliberately absent: clients that
// send it have it ignored.
type UpdateCycleRequest struct {
	CycleNumber *int       `json:"cycleNumber"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Goal        *string    `json:"goal"`
	Status      *string    `json:"status"`
}
