package queries

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/tencycle/tencycle-backend/app/models"
)

type DayQueries struct {
	DB *sql.DB
}

const dayColumns = `id, cycle_id, day_number, date, goal, is_completed, notes`

func scanDay(row interface{ Scan(...any) error }, d *models.Day) error {
	return row.Scan(&d.ID, &d.CycleID, &d.DayNumber, &d.Date, &d.Goal, &d.IsCompleted, &d.Notes)
}

// GetDay returns a day with its tasks in insertion order, independent
// of the owning cycle.
func (q *DayQueries) GetDay(id int) (models.DayWithTasks, error) {
	var out models.DayWithTasks

	query := `SELECT ` + dayColumns + ` FROM days WHERE id = $1`
	if err := scanDay(q.DB.QueryRow(query, id), &out.Day); err != nil {
		if err == sql.ErrNoRows {
			return out, ErrNotFound
		}
		return out, fmt.Errorf("unable to get day: %w", err)
	}

	tq := TaskQueries{DB: q.DB}
	tasks, err := tq.getTasksByDay(id)
	if err != nil {
		return out, err
	}
	out.Tasks = tasks
	return out, nil
}

func (q *DayQueries) getDaysByCycle(cycleID int) ([]models.Day, error) {
	query := `SELECT ` + dayColumns + ` FROM days WHERE cycle_id = $1 ORDER BY day_number ASC`
	rows, err := q.DB.Query(query, cycleID)
	if err != nil {
		return nil, fmt.Errorf("unable to query days: %w", err)
	}
	defer rows.Close()

	days := []models.Day{}
	for rows.Next() {
		var d models.Day
		if err := scanDay(rows, &d); err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, rows.Err()
}

// UpdateDay applies a sparse update and returns the full post-update
// record.
func (q *DayQueries) UpdateDay(id int, req *models.UpdateDayRequest) (models.Day, error) {
	sets := []string{}
	args := []any{}
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if req.DayNumber != nil {
		add("day_number", *req.DayNumber)
	}
	if req.Date != nil {
		add("date", *req.Date)
	}
	if req.Goal != nil {
		add("goal", *req.Goal)
	}
	if req.IsCompleted != nil {
		add("is_completed", *req.IsCompleted)
	}
	if req.Notes != nil {
		add("notes", *req.Notes)
	}

	var d models.Day
	if len(sets) == 0 {
		query := `SELECT ` + dayColumns + ` FROM days WHERE id = $1`
		err := scanDay(q.DB.QueryRow(query, id), &d)
		if err == sql.ErrNoRows {
			return d, ErrNotFound
		}
		return d, err
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE days SET %s WHERE id = $%d RETURNING `+dayColumns,
		strings.Join(sets, ", "), len(args))
	err := scanDay(q.DB.QueryRow(query, args...), &d)
	if err == sql.ErrNoRows {
		return d, ErrNotFound
	}
	if err != nil {
		return d, fmt.Errorf("unable to update day: %w", err)
	}
	return d, nil
}

// CreateDays inserts the generated day rows for the year.
func (q *DayQueries) CreateDays(days []models.Day) error {
	query := `INSERT INTO days (cycle_id, day_number, date, goal, is_completed, notes)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for i := range days {
		d := &days[i]
		if _, err := q.DB.Exec(query, d.CycleID, d.DayNumber, d.Date, d.Goal, d.IsCompleted, d.Notes); err != nil {
			return fmt.Errorf("unable to insert day %d of cycle %d: %w", d.DayNumber, d.CycleID, err)
		}
	}
	return nil
}
