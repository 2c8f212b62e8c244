package queries

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/tencycle/tencycle-backend/app/models"
)

type TaskQueries struct {
	DB *sql.DB
}

// CreateTask inserts the task and fills in the store-assigned id.
func (q *TaskQueries) CreateTask(t *models.Task) error {
	query := `INSERT INTO tasks (day_id, content, is_completed) VALUES ($1, $2, $3) RETURNING id`
	if err := q.DB.QueryRow(query, t.DayID, t.Content, t.IsCompleted).Scan(&t.ID); err != nil {
		return fmt.Errorf("unable to insert task: %w", err)
	}
	return nil
}

func (q *TaskQueries) getTasksByDay(dayID int) ([]models.Task, error) {
	query := `SELECT id, day_id, content, is_completed FROM tasks WHERE day_id = $1 ORDER BY id ASC`
	rows, err := q.DB.Query(query, dayID)
	if err != nil {
		return nil, fmt.Errorf("unable to query tasks: %w", err)
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.DayID, &t.Content, &t.IsCompleted); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// UpdateTask applies a sparse update and returns the full post-update
// record.
func (q *TaskQueries) UpdateTask(id int, req *models.UpdateTaskRequest) (models.Task, error) {
	sets := []string{}
	args := []any{}
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if req.Content != nil {
		add("content", *req.Content)
	}
	if req.IsCompleted != nil {
		add("is_completed", *req.IsCompleted)
	}

	var t models.Task
	if len(sets) == 0 {
		query := `SELECT id, day_id, content, is_completed FROM tasks WHERE id = $1`
		err := q.DB.QueryRow(query, id).Scan(&t.ID, &t.DayID, &t.Content, &t.IsCompleted)
		if err == sql.ErrNoRows {
			return t, ErrNotFound
		}
		return t, err
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE tasks SET %s WHERE id = $%d RETURNING id, day_id, content, is_completed`,
		strings.Join(sets, ", "), len(args))
	err := q.DB.QueryRow(query, args...).Scan(&t.ID, &t.DayID, &t.Content, &t.IsCompleted)
	if err == sql.ErrNoRows {
		return t, ErrNotFound
	}
	if err != nil {
		return t, fmt.Errorf("unable to update task: %w", err)
	}
	return t, nil
}

// DeleteTask removes the task if it exists. Deleting an absent id is
// a no-op, so client retries stay cheap.
func (q *TaskQueries) DeleteTask(id int) error {
	if _, err := q.DB.Exec(`DELETE FROM tasks WHERE id = $1`, id); err != nil {
		return fmt.Errorf("unable to delete task: %w", err)
	}
	return nil
}
