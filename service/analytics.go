package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"main/domain"
	"main/repo"
)

type AnalyticsService struct {
	store repo.Store
	log   zerolog.Logger
}

func NewAnalyticsService(store repo.Store, log zerolog.Logger) *AnalyticsService {
	return &AnalyticsService{store: store, log: log}
}

type FlowSummary struct {
	Deposits    decimal.Decimal `json:"deposits"`
	Withdrawals decimal.Decimal `json:"withdrawals"`
	Purchases   decimal.Decimal `json:"purchases"`
	Net         decimal.Decimal `json:"net"` // Deposits - Withdrawals - Purchases
}

// SummaryByPeriod aggregates one user's transactions over [from; to].
func (s *AnalyticsService) SummaryByPeriod(ctx context.Context, userID domain.UserID, from, to time.Time) (FlowSummary, error) {
	if _, err := s.store.GetUser(ctx, userID); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return FlowSummary{}, ErrUserNotFound
		}
		s.log.Error().Err(err).Str("user_id", string(userID)).Msg("summary failed: user lookup")
		return FlowSummary{}, ErrInternal
	}

	list, err := s.store.ListTransactionsByUser(ctx, userID, from, to)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", string(userID)).Msg("summary failed: listing transactions")
		return FlowSummary{}, ErrInternal
	}

	deposits := decimal.Zero
	withdrawals := decimal.Zero
	purchases := decimal.Zero
	for _, t := range list {
		amt := t.Amount.Round(2)
		switch t.Type {
		case domain.Deposit:
			deposits = deposits.Add(amt)
		case domain.Withdrawal:
			withdrawals = withdrawals.Add(amt)
		case domain.Purchase:
			purchases = purchases.Add(amt)
		}
	}

	return FlowSummary{
		Deposits:    deposits.Round(2),
		Withdrawals: withdrawals.Round(2),
		Purchases:   purchases.Round(2),
		Net:         deposits.Sub(withdrawals).Sub(purchases).Round(2),
	}, nil
}
