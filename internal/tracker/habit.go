package tracker

import (
	"slices"
	"time"
)

// Habit represents a recurring practice tracked by completion streaks.
type Habit struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	TargetDays     int       `json:"target_days"`
	CurrentStreak  int       `json:"current_streak"`
	LongestStreak  int       `json:"longest_streak"`
	CompletedDates []Date    `json:"completed_dates"`
	CreatedAt      time.Time `json:"created_at"`
}

// Complete records a completion for the given calendar day and recomputes
// the streak counters. Recording the same day twice is a no-op; the return
// value reports whether the date was newly recorded.
func (h *Habit) Complete(date Date) bool {
	if slices.Contains(h.CompletedDates, date) {
		return false
	}

	h.CompletedDates = append(h.CompletedDates, date)
	slices.SortFunc(h.CompletedDates, func(a, b Date) int {
		return a.Time().Compare(b.Time())
	})

	// Streaks are measured as of the most recent completion on record, so
	// backfilling an older day cannot mark the streak broken.
	asOf := h.CompletedDates[len(h.CompletedDates)-1]
	h.CurrentStreak, h.LongestStreak = ComputeStreaks(h.CompletedDates, h.TargetDays, asOf)
	return true
}

// CompletedOn reports whether the habit was completed on the given day.
func (h *Habit) CompletedOn(date Date) bool {
	return slices.Contains(h.CompletedDates, date)
}
