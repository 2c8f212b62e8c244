package controllers_test

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	_ "modernc.org/sqlite"

	"github.com/tencycle/tencycle-backend/app/models"
	"github.com/tencycle/tencycle-backend/app/queries"
	"github.com/tencycle/tencycle-backend/pkg/database"
	"github.com/tencycle/tencycle-backend/pkg/routes"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	path := filepath.Join(t.TempDir(), "api_test.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("cannot open test database: %s", err)
	}
	db.SetMaxOpenConns(1)
	if err := database.Migrate(db, "sqlite"); err != nil {
		t.Fatalf("cannot migrate test database: %s", err)
	}
	database.DB = db
	t.Cleanup(func() {
		database.DB = nil
		db.Close()
	})

	rq := queries.ReminderQueries{DB: db}
	if err := rq.SeedReminders(); err != nil {
		t.Fatalf("cannot seed reminders: %s", err)
	}

	app := fiber.New()
	routes.RegisterCycleRoutes(app)
	routes.RegisterDayRoutes(app)
	routes.RegisterTaskRoutes(app)
	routes.RegisterReminderRoutes(app)
	routes.RegisterAlarmRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("cannot marshal request body: %s", err)
		}
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %s", method, path, err)
	}
	return resp
}

func decode(t *testing.T, resp *http.Response, dst any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		t.Fatalf("cannot decode response: %s", err)
	}
}

func initYear(t *testing.T, app *fiber.App, startDate string) {
	t.Helper()
	resp := doJSON(t, app, "POST", "/api/cycles/initialize", fiber.Map{"startDate": startDate})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("initialize returned %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestInitializeYearEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/cycles/initialize", fiber.Map{"startDate": "2024-01-01"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	var result struct {
		Message string `json:"message"`
		Count   int    `json:"count"`
	}
	decode(t, resp, &result)
	if result.Message != "Initialized 36 cycles" || result.Count != 36 {
		t.Errorf("body = %+v", result)
	}

	resp = doJSON(t, app, "GET", "/api/cycles", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list status = %d", resp.StatusCode)
	}
	var cycles []models.Cycle
	decode(t, resp, &cycles)
	if len(cycles) != 36 {
		t.Fatalf("listed %d cycles", len(cycles))
	}

	jan1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if !cycles[0].StartDate.Equal(jan1) {
		t.Errorf("cycle 1 startDate = %s", cycles[0].StartDate)
	}
	if !cycles[0].EndDate.Equal(jan1.AddDate(0, 0, 9)) {
		t.Errorf("cycle 1 endDate = %s", cycles[0].EndDate)
	}
	if cycles[0].Status != "active" {
		t.Errorf("cycle 1 status = %q", cycles[0].Status)
	}
	if !cycles[1].StartDate.Equal(jan1.AddDate(0, 0, 10)) {
		t.Errorf("cycle 2 startDate = %s", cycles[1].StartDate)
	}
	if cycles[1].Status != "upcoming" {
		t.Errorf("cycle 2 status = %q", cycles[1].Status)
	}
}

func TestInitializeYearValidation(t *testing.T) {
	app := newTestApp(t)

	for name, body := range map[string]any{
		"missing startDate": fiber.Map{},
		"garbage date":      fiber.Map{"startDate": "not-a-date"},
	} {
		resp := doJSON(t, app, "POST", "/api/cycles/initialize", body)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", name, resp.StatusCode)
		}
		var e struct {
			Message string `json:"message"`
			Field   string `json:"field"`
		}
		decode(t, resp, &e)
		if e.Field != "startDate" {
			t.Errorf("%s: field = %q, want startDate", name, e.Field)
		}
	}
}

func TestTaskRoundTripThroughCycleAggregate(t *testing.T) {
	app := newTestApp(t)
	initYear(t, app, "2024-01-01")

	var cycles []models.Cycle
	resp := doJSON(t, app, "GET", "/api/cycles", nil)
	decode(t, resp, &cycles)

	var cycle models.CycleWithDays
	resp = doJSON(t, app, "GET", "/api/cycles/"+itoa(cycles[0].ID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get cycle status = %d", resp.StatusCode)
	}
	decode(t, resp, &cycle)
	if len(cycle.Days) != 10 {
		t.Fatalf("cycle has %d days", len(cycle.Days))
	}
	dayID := cycle.Days[4].ID

	var task models.Task
	resp = doJSON(t, app, "POST", "/api/tasks", fiber.Map{"dayId": dayID, "content": "Read 10 pages", "isCompleted": false})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create task status = %d", resp.StatusCode)
	}
	decode(t, resp, &task)
	if task.ID == 0 {
		t.Fatal("task came back without an id")
	}

	resp = doJSON(t, app, "GET", "/api/cycles/"+itoa(cycles[0].ID), nil)
	decode(t, resp, &cycle)
	if len(cycle.Days[4].Tasks) != 1 || cycle.Days[4].Tasks[0].ID != task.ID {
		t.Errorf("task missing from the owning cycle aggregate: %+v", cycle.Days[4].Tasks)
	}

	var updated models.Task
	resp = doJSON(t, app, "PUT", "/api/tasks/"+itoa(task.ID), fiber.Map{"isCompleted": true})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update task status = %d", resp.StatusCode)
	}
	decode(t, resp, &updated)
	if !updated.IsCompleted || updated.Content != "Read 10 pages" {
		t.Errorf("update response = %+v", updated)
	}
}

func TestCreateTaskValidation(t *testing.T) {
	app := newTestApp(t)
	initYear(t, app, "2024-01-01")

	resp := doJSON(t, app, "POST", "/api/tasks", fiber.Map{"dayId": 1})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	var e struct {
		Message string `json:"message"`
		Field   string `json:"field"`
	}
	decode(t, resp, &e)
	if e.Field != "content" {
		t.Errorf("field = %q, want content", e.Field)
	}

	// Wrong type for a known field is also a field-level 400.
	resp = doJSON(t, app, "POST", "/api/tasks", fiber.Map{"dayId": 1, "content": 123})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("wrong-type status = %d, want 400", resp.StatusCode)
	}
	decode(t, resp, &e)
	if e.Field != "content" {
		t.Errorf("wrong-type field = %q, want content", e.Field)
	}
}

func TestDeleteTaskIsIdempotent(t *testing.T) {
	app := newTestApp(t)
	initYear(t, app, "2024-01-01")

	for i := 0; i < 2; i++ {
		resp := doJSON(t, app, "DELETE", "/api/tasks/12345", nil)
		if resp.StatusCode != http.StatusNoContent {
			t.Errorf("delete attempt %d: status = %d, want 204", i+1, resp.StatusCode)
		}
		resp.Body.Close()
	}
}

func TestUpdateCycleEndpoint(t *testing.T) {
	app := newTestApp(t)
	initYear(t, app, "2024-01-01")

	var cycles []models.Cycle
	resp := doJSON(t, app, "GET", "/api/cycles", nil)
	decode(t, resp, &cycles)

	// Unknown extra fields are ignored; untouched fields survive.
	var updated models.Cycle
	resp = doJSON(t, app, "PUT", "/api/cycles/"+itoa(cycles[0].ID), fiber.Map{"goal": "Deep work", "bogus": 1})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	decode(t, resp, &updated)
	if updated.Goal != "Deep work" || updated.Status != "active" {
		t.Errorf("update response = %+v", updated)
	}
	if !updated.StartDate.Equal(cycles[0].StartDate) {
		t.Errorf("startDate changed by a goal-only update")
	}

	resp = doJSON(t, app, "PUT", "/api/cycles/999999", fiber.Map{"goal": "x"})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("missing id status = %d, want 404", resp.StatusCode)
	}
	var e struct {
		Message string `json:"message"`
	}
	decode(t, resp, &e)
	if e.Message != "Cycle not found" {
		t.Errorf("message = %q", e.Message)
	}
}

func TestGetDayEndpoint(t *testing.T) {
	app := newTestApp(t)
	initYear(t, app, "2024-01-01")

	resp := doJSON(t, app, "GET", "/api/days/987654", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("missing day status = %d, want 404", resp.StatusCode)
	}
	resp.Body.Close()

	var cycles []models.Cycle
	resp = doJSON(t, app, "GET", "/api/cycles", nil)
	decode(t, resp, &cycles)
	var cycle models.CycleWithDays
	resp = doJSON(t, app, "GET", "/api/cycles/"+itoa(cycles[0].ID), nil)
	decode(t, resp, &cycle)

	var day models.DayWithTasks
	resp = doJSON(t, app, "GET", "/api/days/"+itoa(cycle.Days[0].ID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get day status = %d", resp.StatusCode)
	}
	decode(t, resp, &day)
	if day.DayNumber != 1 || day.CycleID != cycle.ID {
		t.Errorf("day = %+v", day.Day)
	}

	var updatedDay models.Day
	resp = doJSON(t, app, "PUT", "/api/days/"+itoa(day.ID), fiber.Map{"isCompleted": true, "notes": "good pace"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update day status = %d", resp.StatusCode)
	}
	decode(t, resp, &updatedDay)
	if !updatedDay.IsCompleted || updatedDay.Notes != "good pace" || !updatedDay.Date.Equal(day.Date) {
		t.Errorf("update day response = %+v", updatedDay)
	}
}

func TestRemindersEndpoint(t *testing.T) {
	app := newTestApp(t)

	var reminders []models.ReminderTemplate
	resp := doJSON(t, app, "GET", "/api/reminders", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	decode(t, resp, &reminders)
	if len(reminders) != 10 {
		t.Fatalf("expected 10 reminders, got %d", len(reminders))
	}
	for i, r := range reminders {
		if r.DayNumber != i+1 {
			t.Errorf("reminder at position %d has dayNumber %d", i, r.DayNumber)
		}
	}
}

func TestAlarmEndpoints(t *testing.T) {
	app := newTestApp(t)

	var alarm models.Alarm
	resp := doJSON(t, app, "POST", "/api/alarms", fiber.Map{"name": "Wake up", "time": "07:30"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d", resp.StatusCode)
	}
	decode(t, resp, &alarm)
	if !alarm.IsEnabled || alarm.Sound != "default" {
		t.Errorf("defaults not applied: %+v", alarm)
	}

	resp = doJSON(t, app, "POST", "/api/alarms", fiber.Map{"name": "Bad", "time": "25:99"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("invalid time status = %d, want 400", resp.StatusCode)
	}
	var e struct {
		Field string `json:"field"`
	}
	decode(t, resp, &e)
	if e.Field != "time" {
		t.Errorf("field = %q, want time", e.Field)
	}

	var updated models.Alarm
	resp = doJSON(t, app, "PUT", "/api/alarms/"+itoa(alarm.ID), fiber.Map{"repeatDays": []string{"Sat", "Sun"}})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update status = %d", resp.StatusCode)
	}
	decode(t, resp, &updated)
	if len(updated.RepeatDays) != 2 || updated.Name != "Wake up" {
		t.Errorf("update response = %+v", updated)
	}

	resp = doJSON(t, app, "PUT", "/api/alarms/555555", fiber.Map{"name": "ghost"})
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("missing alarm status = %d, want 404", resp.StatusCode)
	}
	resp.Body.Close()

	for i := 0; i < 2; i++ {
		resp := doJSON(t, app, "DELETE", "/api/alarms/"+itoa(alarm.ID), nil)
		if resp.StatusCode != http.StatusNoContent {
			t.Errorf("delete attempt %d: status = %d, want 204", i+1, resp.StatusCode)
		}
		resp.Body.Close()
	}

	var alarms []models.Alarm
	resp = doJSON(t, app, "GET", "/api/alarms", nil)
	decode(t, resp, &alarms)
	if len(alarms) != 0 {
		t.Errorf("expected no alarms left, got %d", len(alarms))
	}
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
