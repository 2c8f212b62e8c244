package queries

import (
	"database/sql"
	"fmt"

	"github.com/tencycle/tencycle-backend/app/models"
)

type ReminderQueries struct {
	DB *sql.DB
}

// defaultReminders is the canonical per-day-of-cycle guidance, seeded
// once into an empty table.
var defaultReminders = []models.ReminderTemplate{
	{DayNumber: 1, Message: "Set your intentions for this cycle. What is your main focus?"},
	{DayNumber: 2, Message: "Break down your goal into small steps."},
	{DayNumber: 3, Message: "Momentum is building. Keep going!"},
	{DayNumber: 4, Message: "Review your progress. Are you on track?"},
	{DayNumber: 5, Message: "Halfway point! Adjust your plan if needed."},
	{DayNumber: 6, Message: "Stay consistent. Small efforts add up."},
	{DayNumber: 7, Message: "Visualize the successful completion of this cycle."},
	{DayNumber: 8, Message: "Finish strong. Clear any remaining blockers."},
	{DayNumber: 9, Message: "Prepare for the next cycle. Reflect on this one."},
	{DayNumber: 10, Message: "Cycle complete! Celebrate your wins and rest."},
}

// GetReminders returns all templates ordered by day number.
func (q *ReminderQueries) GetReminders() ([]models.ReminderTemplate, error) {
	query := `SELECT id, day_number, message FROM reminder_templates ORDER BY day_number ASC`
	rows, err := q.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("unable to query reminders: %w", err)
	}
	defer rows.Close()

	reminders := []models.ReminderTemplate{}
	for rows.Next() {
		var r models.ReminderTemplate
		if err := rows.Scan(&r.ID, &r.DayNumber, &r.Message); err != nil {
			return nil, err
		}
		reminders = append(reminders, r)
	}
	return reminders, rows.Err()
}

// SeedReminders populates the default templates. The seed is skipped
// entirely when any rows exist, so edited templates survive restarts.
func (q *ReminderQueries) SeedReminders() error {
	var count int
	if err := q.DB.QueryRow(`SELECT count(*) FROM reminder_templates`).Scan(&count); err != nil {
		return fmt.Errorf("unable to count reminders: %w", err)
	}
	if count > 0 {
		return nil
	}

	query := `INSERT INTO reminder_templates (day_number, message) VALUES ($1, $2)`
	for _, r := range defaultReminders {
		if _, err := q.DB.Exec(query, r.DayNumber, r.Message); err != nil {
			return fmt.Errorf("unable to seed reminder %d: %w", r.DayNumber, err)
		}
	}
	return nil
}
