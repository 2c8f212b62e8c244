package queries

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tencycle/tencycle-backend/app/models"
)

type AlarmQueries struct {
	DB *sql.DB
}

const alarmColumns = `id, name, time, is_enabled, repeat_days, message, sound`

// repeat_days lives in one text column as a JSON array so the same
// schema works on every supported driver. NULL and "[]" both read
// back as an alarm that fires every day.
func marshalRepeatDays(days []string) (sql.NullString, error) {
	if days == nil {
		return sql.NullString{}, nil
	}
	b, err := json.Marshal(days)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(b), Valid: true}, nil
}

func scanAlarm(row interface{ Scan(...any) error }, a *models.Alarm) error {
	var repeat sql.NullString
	if err := row.Scan(&a.ID, &a.Name, &a.Time, &a.IsEnabled, &repeat, &a.Message, &a.Sound); err != nil {
		return err
	}
	if repeat.Valid && repeat.String != "" {
		if err := json.Unmarshal([]byte(repeat.String), &a.RepeatDays); err != nil {
			return fmt.Errorf("corrupt repeat_days for alarm %d: %w", a.ID, err)
		}
	}
	return nil
}

// GetAlarms returns all alarms ordered by their HH:mm time, which
// sorts chronologically as plain text.
func (q *AlarmQueries) GetAlarms() ([]models.Alarm, error) {
	query := `SELECT ` + alarmColumns + ` FROM alarms ORDER BY time ASC`
	rows, err := q.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("unable to query alarms: %w", err)
	}
	defer rows.Close()

	alarms := []models.Alarm{}
	for rows.Next() {
		var a models.Alarm
		if err := scanAlarm(rows, &a); err != nil {
			return nil, err
		}
		alarms = append(alarms, a)
	}
	return alarms, rows.Err()
}

// CreateAlarm inserts the alarm and fills in the store-assigned id.
func (q *AlarmQueries) CreateAlarm(a *models.Alarm) error {
	repeat, err := marshalRepeatDays(a.RepeatDays)
	if err != nil {
		return err
	}
	query := `INSERT INTO alarms (name, time, is_enabled, repeat_days, message, sound)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	if err := q.DB.QueryRow(query, a.Name, a.Time, a.IsEnabled, repeat, a.Message, a.Sound).Scan(&a.ID); err != nil {
		return fmt.Errorf("unable to insert alarm: %w", err)
	}
	return nil
}

// UpdateAlarm applies a sparse update and returns the full post-update
// record.
func (q *AlarmQueries) UpdateAlarm(id int, req *models.UpdateAlarmRequest) (models.Alarm, error) {
	sets := []string{}
	args := []any{}
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if req.Name != nil {
		add("name", *req.Name)
	}
	if req.Time != nil {
		add("time", *req.Time)
	}
	if req.IsEnabled != nil {
		add("is_enabled", *req.IsEnabled)
	}
	if req.RepeatDays != nil {
		repeat, err := marshalRepeatDays(*req.RepeatDays)
		if err != nil {
			return models.Alarm{}, err
		}
		add("repeat_days", repeat)
	}
	if req.Message != nil {
		add("message", *req.Message)
	}
	if req.Sound != nil {
		add("sound", *req.Sound)
	}

	var a models.Alarm
	if len(sets) == 0 {
		query := `SELECT ` + alarmColumns + ` FROM alarms WHERE id = $1`
		err := scanAlarm(q.DB.QueryRow(query, id), &a)
		if err == sql.ErrNoRows {
			return a, ErrNotFound
		}
		return a, err
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE alarms SET %s WHERE id = $%d RETURNING `+alarmColumns,
		strings.Join(sets, ", "), len(args))
	err := scanAlarm(q.DB.QueryRow(query, args...), &a)
	if err == sql.ErrNoRows {
		return a, ErrNotFound
	}
	if err != nil {
		return a, fmt.Errorf("unable to update alarm: %w", err)
	}
	return a, nil
}

// DeleteAlarm removes the alarm if it exists; absent ids are a no-op.
func (q *AlarmQueries) DeleteAlarm(id int) error {
	if _, err := q.DB.Exec(`DELETE FROM alarms WHERE id = $1`, id); err != nil {
		return fmt.Errorf("unable to delete alarm: %w", err)
	}
	return nil
}
