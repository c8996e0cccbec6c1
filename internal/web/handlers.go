package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	trkerrors "github.com/dpoulsen/tracker/internal/errors"
	"github.com/dpoulsen/tracker/internal/tracker"
)

// writeError maps a domain error onto an HTTP status and JSON body.
func writeError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError

	var notFound trkerrors.NotFoundError
	var validation trkerrors.ValidationError
	switch {
	case errors.As(err, &notFound):
		status = fiber.StatusNotFound
	case errors.As(err, &validation):
		status = fiber.StatusBadRequest
	}

	return c.Status(status).JSON(ErrorResponse{Error: err.Error()})
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(healthResponse{Status: "ok"})
}

func (s *Server) handleListTasks(c *fiber.Ctx) error {
	includeCompleted := c.QueryBool("all")
	return c.JSON(s.store.ListTasks(includeCompleted))
}

func (s *Server) handleCreateTask(c *fiber.Ctx) error {
	var req createTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, trkerrors.ValidationError{Field: "body", Reason: "malformed JSON"})
	}
	if req.Priority == "" {
		req.Priority = string(tracker.PriorityMedium)
	}

	t, err := s.store.AddTask(req.Title, req.Description, tracker.Priority(req.Priority), req.Tags)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(t)
}

func (s *Server) handleCompleteTask(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return writeError(c, trkerrors.ValidationError{Field: "id", Reason: "must be an integer"})
	}

	t, err := s.store.CompleteTask(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(t)
}

func (s *Server) handleDeleteTask(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return writeError(c, trkerrors.ValidationError{Field: "id", Reason: "must be an integer"})
	}

	if err := s.store.RemoveTask(id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) handleListHabits(c *fiber.Ctx) error {
	return c.JSON(s.store.ListHabits())
}

func (s *Server) handleCreateHabit(c *fiber.Ctx) error {
	var req createHabitRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, trkerrors.ValidationError{Field: "body", Reason: "malformed JSON"})
	}
	if req.TargetDays == 0 {
		req.TargetDays = 1
	}

	h, err := s.store.AddHabit(req.Name, req.Description, req.TargetDays)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(h)
}

func (s *Server) handleCompleteHabit(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return writeError(c, trkerrors.ValidationError{Field: "id", Reason: "must be an integer"})
	}

	date := tracker.Today()
	if raw := c.Query("date"); raw != "" {
		date, err = tracker.ParseDate(raw)
		if err != nil {
			return writeError(c, trkerrors.ValidationError{Field: "date", Reason: "must be YYYY-MM-DD"})
		}
	}

	h, recorded, err := s.store.CompleteHabit(id, date)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(completeHabitResponse{Habit: h, Recorded: recorded})
}

func (s *Server) handleDeleteHabit(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return writeError(c, trkerrors.ValidationError{Field: "id", Reason: "must be an integer"})
	}

	if err := s.store.RemoveHabit(id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) handleStats(c *fiber.Ctx) error {
	return c.JSON(s.store.Stats())
}
