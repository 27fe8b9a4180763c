package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"main/service"
)

type Server struct {
	app       *fiber.App
	users     *service.UserService
	txs       *service.TransactionService
	imports   *service.ImportService
	exports   *service.ExportService
	analytics *service.AnalyticsService
	log       zerolog.Logger
}

func NewServer(
	users *service.UserService,
	txs *service.TransactionService,
	imports *service.ImportService,
	exports *service.ExportService,
	analytics *service.AnalyticsService,
	log zerolog.Logger,
) *Server {
	s := &Server{
		app:       fiber.New(fiber.Config{DisableStartupMessage: true}),
		users:     users,
		txs:       txs,
		imports:   imports,
		exports:   exports,
		analytics: analytics,
		log:       log,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	s.app.Post("/users", s.createUser)
	s.app.Get("/users/:id/balance", s.userBalance)
	s.app.Get("/users/:id/summary", s.userSummary)

	s.app.Post("/transactions", s.createTransaction)
	s.app.Get("/transactions", s.listTransactions)

	s.app.Post("/files/import", s.importFile)
	s.app.Get("/files/export", s.exportFile)
}

func (s *Server) Listen(addr string) error {
	s.log.Info().Str("addr", addr).Msg("http server listening")
	return s.app.Listen(addr)
}

func (s *Server) Shutdown() error { return s.app.Shutdown() }

// App exposes the fiber app for in-process testing.
func (s *Server) App() *fiber.App { return s.app }

type apiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func ok(c *fiber.Ctx, status int, data any, msg string) error {
	return c.Status(status).JSON(apiResponse{Success: true, Message: msg, Data: data})
}

// fail maps the service error taxonomy to status codes. Internal causes never
// reach the response body.
func fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	msg := service.ErrInternal.Error()

	switch {
	case errors.Is(err, service.ErrUserNotFound):
		status, msg = fiber.StatusNotFound, err.Error()
	case errors.Is(err, service.ErrInsufficientBalance):
		status, msg = fiber.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, service.ErrNoData),
		errors.Is(err, service.ErrInvalidPageNumber),
		errors.Is(err, service.ErrInvalidTransaction),
		errors.Is(err, service.ErrMalformedInput):
		status, msg = fiber.StatusBadRequest, err.Error()
	}

	return c.Status(status).JSON(apiResponse{Success: false, Message: msg})
}
