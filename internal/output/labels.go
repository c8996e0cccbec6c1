package output

import "github.com/dpoulsen/tracker/internal/tracker"

// Presentation labels for the domain enums. The domain stores canonical
// strings ("high", "completed"); the emoji live only here.

// StatusIcon returns the display icon for a task status.
func StatusIcon(s tracker.Status) string {
	switch s {
	case tracker.StatusPending:
		return "⏳"
	case tracker.StatusInProgress:
		return "🔄"
	case tracker.StatusCompleted:
		return "✅"
	case tracker.StatusCancelled:
		return "❌"
	default:
		return "?"
	}
}

// PriorityIcon returns the display icon for a task priority.
func PriorityIcon(p tracker.Priority) string {
	switch p {
	case tracker.PriorityLow:
		return "🟢"
	case tracker.PriorityMedium:
		return "🟡"
	case tracker.PriorityHigh:
		return "🔴"
	default:
		return "?"
	}
}
