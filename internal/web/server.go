// Package web exposes the store over a JSON HTTP API.
package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/dpoulsen/tracker/internal/store"
)

// Server wraps the fiber app and the store it serves.
type Server struct {
	app   *fiber.App
	store *store.Store
}

// NewServer creates a Server with routing and middleware configured.
func NewServer(s *store.Store) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "tracker",
		DisableStartupMessage: true,
	})
	app.Use(logger.New())
	app.Use(cors.New())

	srv := &Server{app: app, store: s}
	srv.routes()
	return srv
}

func (s *Server) routes() {
	s.app.Get("/health", s.handleHealth)

	api := s.app.Group("/api")
	api.Get("/tasks", s.handleListTasks)
	api.Post("/tasks", s.handleCreateTask)
	api.Post("/tasks/:id/complete", s.handleCompleteTask)
	api.Delete("/tasks/:id", s.handleDeleteTask)

	api.Get("/habits", s.handleListHabits)
	api.Post("/habits", s.handleCreateHabit)
	api.Post("/habits/:id/complete", s.handleCompleteHabit)
	api.Delete("/habits/:id", s.handleDeleteHabit)

	api.Get("/stats", s.handleStats)
}

// App exposes the underlying fiber app, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves the API on the given address until the listener fails.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
