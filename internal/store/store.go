// Package store owns the task and habit collections and their durable
// JSON-backed persistence.
package store

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/flock"

	trkerrors "github.com/dpoulsen/tracker/internal/errors"
	"github.com/dpoulsen/tracker/internal/tracker"
)

const (
	trackerDir  = ".tracker"
	defaultFile = "tracker.json"
)

// Store holds the in-memory collections and writes them through to a single
// JSON document on every mutation. Insertion order is preserved for listing;
// an id-keyed index backs lookups.
//
// The mutex serializes access within this process. Concurrent processes
// sharing the data file are only guarded by a file lock around each whole-file
// read/write, so the last writer wins between saves.
type Store struct {
	mu   sync.RWMutex
	path string
	flk  *flock.Flock

	tasks    []*tracker.Task
	habits   []*tracker.Habit
	taskIdx  map[int]*tracker.Task
	habitIdx map[int]*tracker.Habit

	nextTaskID  int
	nextHabitID int
}

// DefaultPath returns the default data file location (~/.tracker/tracker.json).
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, trackerDir, defaultFile), nil
}

// Open creates a Store backed by the given file, loading any existing data.
// A missing file yields an empty store; the file is created on first save.
func Open(path string) (*Store, error) {
	s := &Store{
		path:        path,
		flk:         flock.New(path + ".lock"),
		tasks:       []*tracker.Task{},
		habits:      []*tracker.Habit{},
		taskIdx:     make(map[int]*tracker.Task),
		habitIdx:    make(map[int]*tracker.Habit),
		nextTaskID:  1,
		nextHabitID: 1,
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the data file path of the store.
func (s *Store) Path() string {
	return s.path
}

// AddTask creates a new pending task with the next unused identifier and
// persists it. The in-memory collection keeps the task even when the save
// fails; the error reports the failed save.
func (s *Store) AddTask(title, description string, priority tracker.Priority, tags []string) (*tracker.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, trkerrors.ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if !tracker.IsValidPriority(priority) {
		return nil, trkerrors.ValidationError{Field: "priority", Reason: "must be low, medium or high"}
	}
	if tags == nil {
		tags = []string{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := &tracker.Task{
		ID:          s.nextTaskID,
		Title:       title,
		Description: strings.TrimSpace(description),
		Priority:    priority,
		Status:      tracker.StatusPending,
		CreatedAt:   time.Now().UTC(),
		Tags:        tags,
	}
	s.nextTaskID++
	s.tasks = append(s.tasks, t)
	s.taskIdx[t.ID] = t

	if err := s.save(); err != nil {
		return nil, err
	}
	return copyTask(t), nil
}

// FindTask returns the task with the given id, or false if absent.
func (s *Store) FindTask(id int) (*tracker.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.taskIdx[id]
	if !ok {
		return nil, false
	}
	return copyTask(t), true
}

// CompleteTask transitions a task to completed and stamps the completion
// time. Fails with NotFoundError when the id is absent.
func (s *Store) CompleteTask(id int) (*tracker.Task, error) {
	return s.setTaskStatus(id, tracker.StatusCompleted)
}

// CancelTask transitions a task to cancelled. Cancellation is a status, not a
// removal; the task stays in the collection.
func (s *Store) CancelTask(id int) (*tracker.Task, error) {
	return s.setTaskStatus(id, tracker.StatusCancelled)
}

// StartTask transitions a task to in_progress.
func (s *Store) StartTask(id int) (*tracker.Task, error) {
	return s.setTaskStatus(id, tracker.StatusInProgress)
}

func (s *Store) setTaskStatus(id int, status tracker.Status) (*tracker.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.taskIdx[id]
	if !ok {
		return nil, trkerrors.NotFoundError{Kind: "task", Ref: strconv.Itoa(id)}
	}

	t.Status = status
	if status == tracker.StatusCompleted {
		now := time.Now().UTC()
		t.CompletedAt = &now
	}

	if err := s.save(); err != nil {
		return nil, err
	}
	return copyTask(t), nil
}

// RemoveTask deletes a task from the collection.
func (s *Store) RemoveTask(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.taskIdx[id]; !ok {
		return trkerrors.NotFoundError{Kind: "task", Ref: strconv.Itoa(id)}
	}

	delete(s.taskIdx, id)
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.tasks = kept

	return s.save()
}

// ListTasks returns tasks in insertion order. Completed tasks are skipped
// unless includeCompleted is set.
func (s *Store) ListTasks(includeCompleted bool) []*tracker.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*tracker.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if !includeCompleted && t.Status == tracker.StatusCompleted {
			continue
		}
		out = append(out, copyTask(t))
	}
	return out
}

// AddHabit creates a new habit with an empty completion history and persists
// it.
func (s *Store) AddHabit(name, description string, targetDays int) (*tracker.Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, trkerrors.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if targetDays < 1 {
		return nil, trkerrors.ValidationError{Field: "target_days", Reason: "must be at least 1"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	h := &tracker.Habit{
		ID:             s.nextHabitID,
		Name:           name,
		Description:    strings.TrimSpace(description),
		TargetDays:     targetDays,
		CompletedDates: []tracker.Date{},
		CreatedAt:      time.Now().UTC(),
	}
	s.nextHabitID++
	s.habits = append(s.habits, h)
	s.habitIdx[h.ID] = h

	if err := s.save(); err != nil {
		return nil, err
	}
	return copyHabit(h), nil
}

// FindHabit returns the habit with the given id, or false if absent.
func (s *Store) FindHabit(id int) (*tracker.Habit, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h, ok := s.habitIdx[id]
	if !ok {
		return nil, false
	}
	return copyHabit(h), true
}

// FindHabitByName returns the first habit whose name matches
// case-insensitively, or false if none does.
func (s *Store) FindHabitByName(name string) (*tracker.Habit, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, h := range s.habits {
		if strings.EqualFold(h.Name, name) {
			return copyHabit(h), true
		}
	}
	return nil, false
}

// CompleteHabit records a completion for the given calendar day, recomputes
// the streak counters and persists. Recording the same day twice leaves the
// counters unchanged; recorded reports whether the date was newly added.
func (s *Store) CompleteHabit(id int, date tracker.Date) (habit *tracker.Habit, recorded bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.habitIdx[id]
	if !ok {
		return nil, false, trkerrors.NotFoundError{Kind: "habit", Ref: strconv.Itoa(id)}
	}

	if !h.Complete(date) {
		return copyHabit(h), false, nil
	}

	if err := s.save(); err != nil {
		return nil, true, err
	}
	return copyHabit(h), true, nil
}

// RemoveHabit deletes a habit from the collection.
func (s *Store) RemoveHabit(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.habitIdx[id]; !ok {
		return trkerrors.NotFoundError{Kind: "habit", Ref: strconv.Itoa(id)}
	}

	delete(s.habitIdx, id)
	kept := s.habits[:0]
	for _, h := range s.habits {
		if h.ID != id {
			kept = append(kept, h)
		}
	}
	s.habits = kept

	return s.save()
}

// ListHabits returns all habits in insertion order.
func (s *Store) ListHabits() []*tracker.Habit {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*tracker.Habit, 0, len(s.habits))
	for _, h := range s.habits {
		out = append(out, copyHabit(h))
	}
	return out
}

// Stats summarizes the collections.
type Stats struct {
	TotalTasks     int     `json:"total_tasks"`
	CompletedTasks int     `json:"completed_tasks"`
	TotalHabits    int     `json:"total_habits"`
	AverageStreak  float64 `json:"average_streak"`
}

// Stats computes summary counters over the collections.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Stats{TotalTasks: len(s.tasks), TotalHabits: len(s.habits)}
	for _, t := range s.tasks {
		if t.Status == tracker.StatusCompleted {
			st.CompletedTasks++
		}
	}
	if len(s.habits) > 0 {
		sum := 0
		for _, h := range s.habits {
			sum += h.CurrentStreak
		}
		st.AverageStreak = float64(sum) / float64(len(s.habits))
	}
	return st
}

func copyTask(t *tracker.Task) *tracker.Task {
	c := *t
	if t.CompletedAt != nil {
		at := *t.CompletedAt
		c.CompletedAt = &at
	}
	c.Tags = append([]string{}, t.Tags...)
	return &c
}

func copyHabit(h *tracker.Habit) *tracker.Habit {
	c := *h
	c.CompletedDates = append([]tracker.Date{}, h.CompletedDates...)
	return &c
}
