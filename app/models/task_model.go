package models

// Task is a single actionable item attached to a day. Tasks keep
// their identity independent of position: deleting one never
// renumbers its siblings.
type Task struct {
	ID          int    `json:"id" db:"id"`
	DayID       int    `json:"dayId" db:"day_id"`
	Content     string `json:"content" db:"content"`
	IsCompleted bool   `json:"isCompleted" db:"is_completed"`
}

type CreateTaskRequest struct {
	DayID       int    `json:"dayId" validate:"required"`
	Content     string `json:"content" validate:"required"`
	IsCompleted bool   `json:"isCompleted"`
}

// UpdateTaskRequest is the sparse task update; dayId is immutable
// through this path.
type UpdateTaskRequest struct {
	Content     *string `json:"content"`
	IsCompleted *bool   `json:"isCompleted"`
}
