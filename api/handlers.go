package api

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"main/domain"
	"main/files"
	"main/service"
)

type createUserRequest struct {
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
}

func (s *Server) createUser(c *fiber.Ctx) error {
	var req createUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(apiResponse{Success: false, Message: "invalid request body"})
	}
	u, err := s.users.CreateUser(c.Context(), req.Name, req.Balance)
	if err != nil {
		if errors.Is(err, service.ErrInternal) {
			return fail(c, err)
		}
		// domain validation error (empty name, negative balance)
		return c.Status(fiber.StatusBadRequest).JSON(apiResponse{Success: false, Message: err.Error()})
	}
	return ok(c, fiber.StatusCreated, u, "")
}

func (s *Server) userBalance(c *fiber.Ctx) error {
	bal, err := s.txs.GetUserBalance(c.Context(), domain.UserID(c.Params("id")))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, bal, "")
}

func (s *Server) userSummary(c *fiber.Ctx) error {
	to := time.Now().UTC()
	from := to.AddDate(0, 0, -30)
	if v := c.Query("from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(apiResponse{Success: false, Message: "invalid from date"})
		}
		from = t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(apiResponse{Success: false, Message: "invalid to date"})
		}
		to = t
	}

	sum, err := s.analytics.SummaryByPeriod(c.Context(), domain.UserID(c.Params("id")), from, to)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, sum, "")
}

type createTransactionRequest struct {
	UserID string          `json:"user_id"`
	Amount decimal.Decimal `json:"amount"`
	Type   string          `json:"type"`
}

func (s *Server) createTransaction(c *fiber.Ctx) error {
	var req createTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(apiResponse{Success: false, Message: "invalid request body"})
	}
	if _, ok := domain.ParseTransactionType(req.Type); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(apiResponse{Success: false, Message: fmt.Sprintf("unknown transaction type %q", req.Type)})
	}

	msg, err := s.txs.CreateTransaction(c.Context(), domain.UserID(req.UserID), req.Amount, req.Type)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusCreated, nil, msg)
}

func (s *Server) listTransactions(c *fiber.Ctx) error {
	pageNumber := c.QueryInt("pageNumber", 1)
	pageSize := c.QueryInt("pageSize", 10)

	page, err := s.txs.ListTransactions(c.Context(), pageNumber, pageSize)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, page, "")
}

func (s *Server) importFile(c *fiber.Ctx) error {
	format := c.Query("format", "csv")

	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(apiResponse{Success: false, Message: "file is required"})
	}
	f, err := fh.Open()
	if err != nil {
		return fail(c, service.ErrInternal)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return fail(c, service.ErrInternal)
	}

	res, err := s.imports.ImportFile(c.Context(), format, data)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, res, res.Message)
}

func (s *Server) exportFile(c *fiber.Ctx) error {
	format := c.Query("format", "csv")

	b, err := s.exports.Export(c.Context(), format)
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, files.ContentType(format))
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=transactions.%s", format))
	return c.Send(b)
}
