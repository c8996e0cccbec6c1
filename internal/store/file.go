package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	trkerrors "github.com/dpoulsen/tracker/internal/errors"
	"github.com/dpoulsen/tracker/internal/tracker"
)

// document is the on-disk shape of a store: one JSON object holding both
// collections and the id counters.
type document struct {
	Tasks       []*tracker.Task  `json:"tasks"`
	Habits      []*tracker.Habit `json:"habits"`
	NextTaskID  int              `json:"next_task_id"`
	NextHabitID int              `json:"next_habit_id"`
}

// load reads the whole document from disk, replacing the in-memory state.
// A missing file leaves the store empty.
func (s *Store) load() error {
	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return trkerrors.PersistenceError{Op: "load", Path: s.path, Err: err}
		}
	}

	if err := s.flk.RLock(); err != nil {
		return trkerrors.PersistenceError{Op: "load", Path: s.path, Err: err}
	}
	defer func() { _ = s.flk.Unlock() }()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return trkerrors.PersistenceError{Op: "load", Path: s.path, Err: err}
	}

	var doc document
	if unmarshalErr := json.Unmarshal(data, &doc); unmarshalErr != nil {
		return trkerrors.PersistenceError{Op: "load", Path: s.path, Err: unmarshalErr}
	}

	s.tasks = doc.Tasks
	s.habits = doc.Habits
	if s.tasks == nil {
		s.tasks = []*tracker.Task{}
	}
	if s.habits == nil {
		s.habits = []*tracker.Habit{}
	}

	s.taskIdx = make(map[int]*tracker.Task, len(s.tasks))
	maxTaskID := 0
	for _, t := range s.tasks {
		if t.Tags == nil {
			t.Tags = []string{}
		}
		s.taskIdx[t.ID] = t
		if t.ID > maxTaskID {
			maxTaskID = t.ID
		}
	}

	s.habitIdx = make(map[int]*tracker.Habit, len(s.habits))
	maxHabitID := 0
	for _, h := range s.habits {
		if h.CompletedDates == nil {
			h.CompletedDates = []tracker.Date{}
		}
		s.habitIdx[h.ID] = h
		if h.ID > maxHabitID {
			maxHabitID = h.ID
		}
	}

	// The counters must stay ahead of every assigned id even if the stored
	// values are missing or stale.
	s.nextTaskID = max(doc.NextTaskID, maxTaskID+1)
	s.nextHabitID = max(doc.NextHabitID, maxHabitID+1)
	return nil
}

// save serializes the whole document and replaces the data file via a
// temp-file rename. Callers must hold the store mutex.
func (s *Store) save() error {
	doc := document{
		Tasks:       s.tasks,
		Habits:      s.habits,
		NextTaskID:  s.nextTaskID,
		NextHabitID: s.nextHabitID,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return trkerrors.PersistenceError{Op: "save", Path: s.path, Err: err}
	}

	if lockErr := s.flk.Lock(); lockErr != nil {
		return trkerrors.PersistenceError{Op: "save", Path: s.path, Err: lockErr}
	}
	defer func() { _ = s.flk.Unlock() }()

	tmp := s.path + ".tmp"
	//nolint:gosec // G306: 0644 is appropriate for user-readable data files
	if writeErr := os.WriteFile(tmp, data, 0o644); writeErr != nil {
		return trkerrors.PersistenceError{Op: "save", Path: s.path, Err: writeErr}
	}
	if renameErr := os.Rename(tmp, s.path); renameErr != nil {
		return trkerrors.PersistenceError{Op: "save", Path: s.path, Err: renameErr}
	}
	return nil
}
