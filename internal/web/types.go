package web

import "github.com/dpoulsen/tracker/internal/tracker"

// createTaskRequest is the body for POST /api/tasks.
type createTaskRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    string   `json:"priority"`
	Tags        []string `json:"tags"`
}

// createHabitRequest is the body for POST /api/habits.
type createHabitRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	TargetDays  int    `json:"target_days"`
}

// completeHabitResponse reports whether the completion was newly recorded.
type completeHabitResponse struct {
	Habit    *tracker.Habit `json:"habit"`
	Recorded bool           `json:"recorded"`
}

// ErrorResponse is the JSON body for failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

// healthResponse is the body for GET /health.
type healthResponse struct {
	Status string `json:"status"`
}
