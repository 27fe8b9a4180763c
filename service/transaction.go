package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"main/domain"
	"main/events"
	"main/repo"
	"main/strategy"
)

type TransactionService struct {
	store  repo.Store
	f      domain.Factory
	events events.Publisher
	log    zerolog.Logger
}

func NewTransactionService(store repo.Store, f domain.Factory, pub events.Publisher, log zerolog.Logger) *TransactionService {
	return &TransactionService{store: store, f: f, events: pub, log: log}
}

type TransactionSummary struct {
	ID     domain.TransactionID `json:"id"`
	Amount decimal.Decimal      `json:"amount"`
	Type   string               `json:"type"`
	Date   time.Time            `json:"date"`
	UserID domain.UserID        `json:"user_id"`
}

type Page struct {
	Items      []TransactionSummary `json:"items"`
	PageNumber int                  `json:"page_number"`
	PageSize   int                  `json:"page_size"`
	TotalPages int                  `json:"total_pages"`
	TotalItems int                  `json:"total_items"`
}

type UserBalance struct {
	UserID  domain.UserID   `json:"user_id"`
	Balance decimal.Decimal `json:"balance"`
}

// CreateTransaction applies one movement to the owner's balance. The balance
// check, the new ledger row and the balance update all happen inside a single
// atomic scope; on any failure past the strategy the scope rolls back and no
// partial state survives.
func (s *TransactionService) CreateTransaction(ctx context.Context, userID domain.UserID, amount decimal.Decimal, kind string) (string, error) {
	t, ok := domain.ParseTransactionType(kind)
	if !ok {
		// The kind passed upstream validation but has no strategy mapped:
		// a configuration defect, not a caller error.
		s.log.Error().Str("type", kind).Msg("no strategy mapped for transaction type")
		return "", ErrInternal
	}

	var created domain.Transaction
	err := s.store.WithinTx(ctx, func(tx repo.Store) error {
		user, err := tx.GetUser(ctx, userID)
		if err != nil {
			return err
		}

		switch strategy.Execute(t, &user, amount) {
		case strategy.InsufficientBalance:
			s.log.Info().Str("user", user.Name).Msg("transaction rejected: insufficient balance")
			return ErrInsufficientBalance
		case strategy.InvalidTransaction:
			s.log.Info().Str("user", user.Name).Msg("transaction rejected: invalid")
			return ErrInvalidTransaction
		}

		created, err = s.f.NewTransaction(t, userID, amount, time.Now().UTC())
		if err != nil {
			return err
		}
		if err := tx.CreateTransaction(ctx, created); err != nil {
			return err
		}
		return tx.UpdateUser(ctx, user)
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			s.log.Info().Str("user_id", string(userID)).Msg("transaction rejected: user not found")
			return "", ErrUserNotFound
		case errors.Is(err, ErrInsufficientBalance), errors.Is(err, ErrInvalidTransaction):
			return "", err
		default:
			s.log.Error().Err(err).Str("user_id", string(userID)).Msg("transaction rolled back: store failure")
			return "", ErrInternal
		}
	}

	s.publishCompleted(created)
	return "transaction created successfully", nil
}

// publishCompleted is best effort; a broker failure never undoes a committed
// transaction.
func (s *TransactionService) publishCompleted(t domain.Transaction) {
	if s.events == nil {
		return
	}
	evt := events.TransactionCompleted{
		TransactionID: string(t.ID),
		UserID:        string(t.UserID),
		Amount:        t.Amount.StringFixed(2),
		Type:          string(t.Type),
		Date:          t.Date,
	}
	if err := s.events.Publish(events.TopicTransactionCompleted, evt); err != nil {
		s.log.Warn().Err(err).Str("transaction_id", string(t.ID)).Msg("transaction event not published")
	}
}

// ListTransactions pages over the whole ledger. Page 1 is first; the last page
// may be short.
func (s *TransactionService) ListTransactions(ctx context.Context, pageNumber, pageSize int) (Page, error) {
	if pageSize < 1 {
		return Page{}, ErrInvalidPageNumber
	}

	all, err := s.store.ListTransactions(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("listing transactions failed")
		return Page{}, ErrInternal
	}
	if len(all) == 0 {
		return Page{}, ErrNoData
	}

	totalItems := len(all)
	totalPages := (totalItems + pageSize - 1) / pageSize
	if pageNumber < 1 || pageNumber > totalPages {
		return Page{}, ErrInvalidPageNumber
	}

	start := (pageNumber - 1) * pageSize
	end := start + pageSize
	if end > totalItems {
		end = totalItems
	}

	items := make([]TransactionSummary, 0, end-start)
	for _, t := range all[start:end] {
		items = append(items, TransactionSummary{
			ID:     t.ID,
			Amount: t.Amount,
			Type:   string(t.Type),
			Date:   t.Date,
			UserID: t.UserID,
		})
	}

	return Page{
		Items:      items,
		PageNumber: pageNumber,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalItems: totalItems,
	}, nil
}

func (s *TransactionService) GetUserBalance(ctx context.Context, userID domain.UserID) (UserBalance, error) {
	user, err := s.store.GetUser(ctx, userID)
	if errors.Is(err, ErrUserNotFound) {
		return UserBalance{}, ErrUserNotFound
	}
	if err != nil {
		s.log.Error().Err(err).Str("user_id", string(userID)).Msg("balance lookup failed")
		return UserBalance{}, ErrInternal
	}
	return UserBalance{UserID: user.ID, Balance: user.Balance}, nil
}
