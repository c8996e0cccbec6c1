package output

import (
	"encoding/json"

	"github.com/dpoulsen/tracker/internal/store"
	"github.com/dpoulsen/tracker/internal/tracker"
)

// JSONFormatter formats output as JSON. The domain types already carry the
// canonical wire tags, so they marshal directly.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// marshalJSON marshals a value to indented JSON with a trailing newline.
func marshalJSON(v any) string {
	data, _ := json.MarshalIndent(v, "", "  ")
	return string(data) + "\n"
}

// FormatTask formats a single task as JSON.
func (f *JSONFormatter) FormatTask(t *tracker.Task) string {
	return marshalJSON(t)
}

// FormatTaskList formats a list of tasks as JSON.
func (f *JSONFormatter) FormatTaskList(tasks []*tracker.Task) string {
	return marshalJSON(tasks)
}

// FormatHabit formats a single habit as JSON.
func (f *JSONFormatter) FormatHabit(h *tracker.Habit) string {
	return marshalJSON(h)
}

// FormatHabitList formats a list of habits as JSON.
func (f *JSONFormatter) FormatHabitList(habits []*tracker.Habit) string {
	return marshalJSON(habits)
}

// FormatStats formats the summary statistics as JSON.
func (f *JSONFormatter) FormatStats(s store.Stats) string {
	return marshalJSON(s)
}

// errorJSON is the JSON representation of an error.
type errorJSON struct {
	Error string `json:"error"`
}

// FormatError formats an error as JSON.
func (f *JSONFormatter) FormatError(err error) string {
	return marshalJSON(errorJSON{Error: err.Error()})
}

// messageJSON is the JSON representation of a message.
type messageJSON struct {
	Message string `json:"message"`
}

// FormatMessage formats a simple message as JSON.
func (f *JSONFormatter) FormatMessage(msg string) string {
	return marshalJSON(messageJSON{Message: msg})
}
