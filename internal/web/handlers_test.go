//nolint:testpackage // Tests require internal access for thorough testing
package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpoulsen/tracker/internal/store"
	"github.com/dpoulsen/tracker/internal/tracker"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "tracker.json"))
	require.NoError(t, err)
	return NewServer(s)
}

func doJSON(t *testing.T, srv *Server, method, target string, body any) (*http.Response, []byte) {
	t.Helper()

	var buf io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := srv.App().Test(req, -1)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, data
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, srv, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestCreateAndListTasks(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, srv, http.MethodPost, "/api/tasks", createTaskRequest{
		Title:    "Write report",
		Priority: "high",
		Tags:     []string{"work"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created tracker.Task
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, tracker.StatusPending, created.Status)
	assert.Equal(t, tracker.PriorityHigh, created.Priority)
	assert.Equal(t, []string{"work"}, created.Tags)

	resp, body = doJSON(t, srv, http.MethodGet, "/api/tasks", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var tasks []tracker.Task
	require.NoError(t, json.Unmarshal(body, &tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, "Write report", tasks[0].Title)
}

func TestCreateTaskDefaultsPriority(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, srv, http.MethodPost, "/api/tasks", createTaskRequest{Title: "Buy milk"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created tracker.Task
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Equal(t, tracker.PriorityMedium, created.Priority)
}

func TestCreateTaskValidation(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, srv, http.MethodPost, "/api/tasks", createTaskRequest{Title: "   "})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.Contains(t, errResp.Error, "title")
}

func TestCompleteTaskFiltersFromList(t *testing.T) {
	srv := newTestServer(t)

	_, body := doJSON(t, srv, http.MethodPost, "/api/tasks", createTaskRequest{Title: "Done soon"})
	var created tracker.Task
	require.NoError(t, json.Unmarshal(body, &created))

	resp, body := doJSON(t, srv, http.MethodPost, fmt.Sprintf("/api/tasks/%d/complete", created.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var completed tracker.Task
	require.NoError(t, json.Unmarshal(body, &completed))
	assert.Equal(t, tracker.StatusCompleted, completed.Status)
	require.NotNil(t, completed.CompletedAt)

	_, body = doJSON(t, srv, http.MethodGet, "/api/tasks", nil)
	var tasks []tracker.Task
	require.NoError(t, json.Unmarshal(body, &tasks))
	assert.Empty(t, tasks)

	_, body = doJSON(t, srv, http.MethodGet, "/api/tasks?all=true", nil)
	require.NoError(t, json.Unmarshal(body, &tasks))
	assert.Len(t, tasks, 1)
}

func TestCompleteTaskNotFound(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := doJSON(t, srv, http.MethodPost, "/api/tasks/99/complete", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteTask(t *testing.T) {
	srv := newTestServer(t)

	_, body := doJSON(t, srv, http.MethodPost, "/api/tasks", createTaskRequest{Title: "Ephemeral"})
	var created tracker.Task
	require.NoError(t, json.Unmarshal(body, &created))

	resp, _ := doJSON(t, srv, http.MethodDelete, fmt.Sprintf("/api/tasks/%d", created.ID), nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = doJSON(t, srv, http.MethodDelete, fmt.Sprintf("/api/tasks/%d", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateAndCompleteHabit(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, srv, http.MethodPost, "/api/habits", createHabitRequest{
		Name:       "Exercise",
		TargetDays: 7,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created tracker.Habit
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, 7, created.TargetDays)
	assert.NotNil(t, created.CompletedDates)

	resp, body = doJSON(t, srv, http.MethodPost, fmt.Sprintf("/api/habits/%d/complete", created.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result completeHabitResponse
	require.NoError(t, json.Unmarshal(body, &result))
	assert.True(t, result.Recorded)
	assert.Equal(t, 1, result.Habit.CurrentStreak)

	// The same day a second time is a no-op.
	_, body = doJSON(t, srv, http.MethodPost, fmt.Sprintf("/api/habits/%d/complete", created.ID), nil)
	require.NoError(t, json.Unmarshal(body, &result))
	assert.False(t, result.Recorded)
	assert.Equal(t, 1, result.Habit.CurrentStreak)
}

func TestCompleteHabitWithDate(t *testing.T) {
	srv := newTestServer(t)

	_, body := doJSON(t, srv, http.MethodPost, "/api/habits", createHabitRequest{Name: "Read", TargetDays: 30})
	var created tracker.Habit
	require.NoError(t, json.Unmarshal(body, &created))

	resp, body := doJSON(t, srv, http.MethodPost, fmt.Sprintf("/api/habits/%d/complete?date=2024-03-01", created.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result completeHabitResponse
	require.NoError(t, json.Unmarshal(body, &result))
	assert.True(t, result.Recorded)
	require.Len(t, result.Habit.CompletedDates, 1)
	assert.Equal(t, "2024-03-01", result.Habit.CompletedDates[0].String())

	resp, _ = doJSON(t, srv, http.MethodPost, fmt.Sprintf("/api/habits/%d/complete?date=bogus", created.ID), nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHabitValidationAndNotFound(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := doJSON(t, srv, http.MethodPost, "/api/habits", createHabitRequest{Name: "", TargetDays: 5})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, srv, http.MethodPost, "/api/habits/42/complete", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, srv, http.MethodDelete, "/api/habits/42", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteHabit(t *testing.T) {
	srv := newTestServer(t)

	_, body := doJSON(t, srv, http.MethodPost, "/api/habits", createHabitRequest{Name: "Meditate", TargetDays: 10})
	var created tracker.Habit
	require.NoError(t, json.Unmarshal(body, &created))

	resp, _ := doJSON(t, srv, http.MethodDelete, fmt.Sprintf("/api/habits/%d", created.ID), nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	_, body = doJSON(t, srv, http.MethodGet, "/api/habits", nil)
	var habits []tracker.Habit
	require.NoError(t, json.Unmarshal(body, &habits))
	assert.Empty(t, habits)
}

func TestStats(t *testing.T) {
	srv := newTestServer(t)

	_, body := doJSON(t, srv, http.MethodPost, "/api/tasks", createTaskRequest{Title: "One"})
	var created tracker.Task
	require.NoError(t, json.Unmarshal(body, &created))
	doJSON(t, srv, http.MethodPost, fmt.Sprintf("/api/tasks/%d/complete", created.ID), nil)
	doJSON(t, srv, http.MethodPost, "/api/tasks", createTaskRequest{Title: "Two"})

	resp, body := doJSON(t, srv, http.MethodGet, "/api/stats", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats store.Stats
	require.NoError(t, json.Unmarshal(body, &stats))
	assert.Equal(t, 2, stats.TotalTasks)
	assert.Equal(t, 1, stats.CompletedTasks)
	assert.Equal(t, 0, stats.TotalHabits)
}

func TestMalformedBody(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/tasks", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := srv.App().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
