package output

import (
	"github.com/dpoulsen/tracker/internal/store"
	"github.com/dpoulsen/tracker/internal/tracker"
)

// Formatter defines the interface for output formatting.
type Formatter interface {
	FormatTask(t *tracker.Task) string
	FormatTaskList(tasks []*tracker.Task) string
	FormatHabit(h *tracker.Habit) string
	FormatHabitList(habits []*tracker.Habit) string
	FormatStats(s store.Stats) string
	FormatError(err error) string
	FormatMessage(msg string) string
}
