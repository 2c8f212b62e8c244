// Package planner materializes a tracked year: 36 ten-day cycles and
// their 360 days, laid out contiguously from a chosen start date. It
// is pure date arithmetic; persistence happens in app/queries.
package planner

import (
	"time"

	"github.com/tencycle/tencycle-backend/app/models"
)

const (
	// CyclesPerYear is the number of ten-day cycles in a tracked year.
	CyclesPerYear = 36
	// DaysPerCycle is the length of one cycle in days.
	DaysPerCycle = 10
)

// BuildYear lays out the 36 cycles starting at start. Cycle k runs
// from start+10*(k-1) days through start+10*(k-1)+9 days, so the
// cycles cover 360 contiguous days with no gaps or overlaps. Cycle 1
// comes out "active", all others "upcoming". IDs are zero; the store
// assigns them on insert.
func BuildYear(start time.Time) []models.Cycle {
	cycles := make([]models.Cycle, 0, CyclesPerYear)

	cursor := start
	for i := 1; i <= CyclesPerYear; i++ {
		end := cursor.AddDate(0, 0, DaysPerCycle-1)
		status := "upcoming"
		if i == 1 {
			status = "active"
		}
		cycles = append(cycles, models.Cycle{
			CycleNumber: i,
			StartDate:   cursor,
			EndDate:     end,
			Goal:        "",
			Status:      status,
		})
		cursor = end.AddDate(0, 0, 1)
	}

	return cycles
}

// BuildDays lays out the 10 days of a cycle that starts at start.
// Day j gets date start+(j-1) days, an empty goal and notes, and is
// not completed.
func BuildDays(cycleID int, start time.Time) []models.Day {
	days := make([]models.Day, 0, DaysPerCycle)

	for j := 1; j <= DaysPerCycle; j++ {
		days = append(days, models.Day{
			CycleID:     cycleID,
			DayNumber:   j,
			Date:        start.AddDate(0, 0, j-1),
			Goal:        "",
			IsCompleted: false,
			Notes:       "",
		})
	}

	return days
}

// ParseStartDate accepts the two date forms clients send: a bare ISO
// date ("2024-01-01") or a full RFC3339 timestamp.
func ParseStartDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
