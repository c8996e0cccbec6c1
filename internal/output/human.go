package output

import (
	"fmt"
	"strings"

	"github.com/dpoulsen/tracker/internal/store"
	"github.com/dpoulsen/tracker/internal/tracker"
)

const progressBarWidth = 20

// HumanFormatter formats output for human-readable terminal display.
type HumanFormatter struct{}

// NewHumanFormatter creates a new HumanFormatter.
func NewHumanFormatter() *HumanFormatter {
	return &HumanFormatter{}
}

// FormatTask formats a single task for display.
func (f *HumanFormatter) FormatTask(t *tracker.Task) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%d. %s %s %s\n", t.ID, StatusIcon(t.Status), PriorityIcon(t.Priority), t.Title))
	sb.WriteString(fmt.Sprintf("   Status:   %s\n", t.Status))
	sb.WriteString(fmt.Sprintf("   Priority: %s\n", t.Priority))
	sb.WriteString(fmt.Sprintf("   Created:  %s\n", t.CreatedAt.Format("2006-01-02 15:04")))

	if t.CompletedAt != nil {
		sb.WriteString(fmt.Sprintf("   Done:     %s\n", t.CompletedAt.Format("2006-01-02 15:04")))
	}
	if len(t.Tags) > 0 {
		sb.WriteString(fmt.Sprintf("   Tags:     %s\n", strings.Join(t.Tags, ", ")))
	}
	if t.Description != "" {
		sb.WriteString(fmt.Sprintf("   %s\n", t.Description))
	}

	return sb.String()
}

// FormatTaskList formats a list of tasks as compact one-liners.
func (f *HumanFormatter) FormatTaskList(tasks []*tracker.Task) string {
	if len(tasks) == 0 {
		return "No tasks yet! Add some with 'tracker add'.\n"
	}

	var sb strings.Builder
	for _, t := range tasks {
		tags := ""
		if len(t.Tags) > 0 {
			tags = fmt.Sprintf(" [%s]", strings.Join(t.Tags, ", "))
		}
		sb.WriteString(fmt.Sprintf("%2d. %s %s %s%s\n", t.ID, StatusIcon(t.Status), PriorityIcon(t.Priority), t.Title, tags))
		if t.Description != "" {
			sb.WriteString(fmt.Sprintf("    %s\n", t.Description))
		}
	}
	return sb.String()
}

// FormatHabit formats a habit with its streak progress bar.
func (f *HumanFormatter) FormatHabit(h *tracker.Habit) string {
	progress := float64(h.CurrentStreak) / float64(h.TargetDays) * 100
	if progress > 100 {
		progress = 100
	}
	filled := int(progressBarWidth * progress / 100)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", progressBarWidth-filled)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🔥 %s\n", h.Name))
	sb.WriteString(fmt.Sprintf("   %s %.1f%% (%d/%d days)\n", bar, progress, h.CurrentStreak, h.TargetDays))
	sb.WriteString(fmt.Sprintf("   🏆 Longest streak: %d days\n", h.LongestStreak))
	if h.Description != "" {
		sb.WriteString(fmt.Sprintf("   %s\n", h.Description))
	}
	return sb.String()
}

// FormatHabitList formats all habits with progress.
func (f *HumanFormatter) FormatHabitList(habits []*tracker.Habit) string {
	if len(habits) == 0 {
		return "No habits yet! Add some with 'tracker habit add'.\n"
	}

	var sb strings.Builder
	for i, h := range habits {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(f.FormatHabit(h))
	}
	return sb.String()
}

// FormatStats formats the summary statistics.
func (f *HumanFormatter) FormatStats(s store.Stats) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Tasks:  %d/%d completed\n", s.CompletedTasks, s.TotalTasks))
	sb.WriteString(fmt.Sprintf("Habits: %d being tracked\n", s.TotalHabits))
	if s.TotalHabits > 0 {
		sb.WriteString(fmt.Sprintf("Average streak: %.1f days\n", s.AverageStreak))
	}
	return sb.String()
}

// FormatError formats an error for display.
func (f *HumanFormatter) FormatError(err error) string {
	return fmt.Sprintf("Error: %s\n", err.Error())
}

// FormatMessage formats a simple message.
func (f *HumanFormatter) FormatMessage(msg string) string {
	return msg + "\n"
}
