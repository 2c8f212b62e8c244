package queries

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/tencycle/tencycle-backend/app/models"
)

type CycleQueries struct {
	DB *sql.DB
}

const cycleColumns = `id, cycle_number, start_date, end_date, goal, status`

func scanCycle(row interface{ Scan(...any) error }, c *models.Cycle) error {
	return row.Scan(&c.ID, &c.CycleNumber, &c.StartDate, &c.EndDate, &c.Goal, &c.Status)
}

// GetCycles returns every cycle ordered by cycle number.
func (q *CycleQueries) GetCycles() ([]models.Cycle, error) {
	query := `SELECT ` + cycleColumns + ` FROM cycles ORDER BY cycle_number ASC`
	rows, err := q.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("unable to query cycles: %w", err)
	}
	defer rows.Close()

	cycles := []models.Cycle{}
	for rows.Next() {
		var c models.Cycle
		if err := scanCycle(rows, &c); err != nil {
			return nil, err
		}
		cycles = append(cycles, c)
	}
	return cycles, rows.Err()
}

// GetCycle returns one cycle together with its days in dayNumber
// order, each day carrying its tasks in insertion (id) order. The
// nesting is assembled here from three flat queries keyed on the
// ownership columns, so it does not depend on any join feature of the
// store.
func (q *CycleQueries) GetCycle(id int) (models.CycleWithDays, error) {
	var out models.CycleWithDays

	query := `SELECT ` + cycleColumns + ` FROM cycles WHERE id = $1`
	if err := scanCycle(q.DB.QueryRow(query, id), &out.Cycle); err != nil {
		if err == sql.ErrNoRows {
			return out, ErrNotFound
		}
		return out, fmt.Errorf("unable to get cycle: %w", err)
	}

	dq := DayQueries{DB: q.DB}
	days, err := dq.getDaysByCycle(id)
	if err != nil {
		return out, err
	}

	tasksByDay, err := q.tasksByCycle(id)
	if err != nil {
		return out, err
	}

	out.Days = make([]models.DayWithTasks, 0, len(days))
	for _, d := range days {
		tasks := tasksByDay[d.ID]
		if tasks == nil {
			tasks = []models.Task{}
		}
		out.Days = append(out.Days, models.DayWithTasks{Day: d, Tasks: tasks})
	}
	return out, nil
}

func (q *CycleQueries) tasksByCycle(cycleID int) (map[int][]models.Task, error) {
	query := `SELECT t.id, t.day_id, t.content, t.is_completed
		FROM tasks t JOIN days d ON t.day_id = d.id
		WHERE d.cycle_id = $1 ORDER BY t.id ASC`
	rows, err := q.DB.Query(query, cycleID)
	if err != nil {
		return nil, fmt.Errorf("unable to query tasks for cycle: %w", err)
	}
	defer rows.Close()

	byDay := map[int][]models.Task{}
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.DayID, &t.Content, &t.IsCompleted); err != nil {
			return nil, err
		}
		byDay[t.DayID] = append(byDay[t.DayID], t)
	}
	return byDay, rows.Err()
}

// UpdateCycle applies a sparse update and returns the full post-update
// record. A request with no recognized fields set returns the current
// record unchanged.
func (q *CycleQueries) UpdateCycle(id int, req *models.UpdateCycleRequest) (models.Cycle, error) {
	sets := []string{}
	args := []any{}
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if req.CycleNumber != nil {
		add("cycle_number", *req.CycleNumber)
	}
	if req.StartDate != nil {
		add("start_date", *req.StartDate)
	}
	if req.EndDate != nil {
		add("end_date", *req.EndDate)
	}
	if req.Goal != nil {
		add("goal", *req.Goal)
	}
	if req.Status != nil {
		add("status", *req.Status)
	}

	var c models.Cycle
	if len(sets) == 0 {
		query := `SELECT ` + cycleColumns + ` FROM cycles WHERE id = $1`
		err := scanCycle(q.DB.QueryRow(query, id), &c)
		if err == sql.ErrNoRows {
			return c, ErrNotFound
		}
		return c, err
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE cycles SET %s WHERE id = $%d RETURNING `+cycleColumns,
		strings.Join(sets, ", "), len(args))
	err := scanCycle(q.DB.QueryRow(query, args...), &c)
	if err == sql.ErrNoRows {
		return c, ErrNotFound
	}
	if err != nil {
		return c, fmt.Errorf("unable to update cycle: %w", err)
	}
	return c, nil
}

// CreateCycles inserts the generated cycles and fills in the
// store-assigned ids, which the caller needs to key the day rows.
func (q *CycleQueries) CreateCycles(cycles []models.Cycle) ([]models.Cycle, error) {
	query := `INSERT INTO cycles (cycle_number, start_date, end_date, goal, status)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`
	for i := range cycles {
		c := &cycles[i]
		if err := q.DB.QueryRow(query, c.CycleNumber, c.StartDate, c.EndDate, c.Goal, c.Status).Scan(&c.ID); err != nil {
			return nil, fmt.Errorf("unable to insert cycle %d: %w", c.CycleNumber, err)
		}
	}
	return cycles, nil
}

// ClearCycles destroys the whole hierarchy, children first so the
// ownership constraints hold at every step.
func (q *CycleQueries) ClearCycles() error {
	for _, query := range []string{
		`DELETE FROM tasks`,
		`DELETE FROM days`,
		`DELETE FROM cycles`,
	} {
		if _, err := q.DB.Exec(query); err != nil {
			return fmt.Errorf("unable to clear cycles: %w", err)
		}
	}
	return nil
}
