package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"main/domain"
	"main/repo"
	"main/service"
)

func TestSummaryByPeriod(t *testing.T) {
	ctx := context.Background()
	store := repo.NewMemStore()
	seedUser(t, store, "u1", "0.00")
	day := func(d int) time.Time { return time.Date(2024, 4, d, 0, 0, 0, 0, time.UTC) }

	for _, tx := range []domain.Transaction{
		{ID: "a", UserID: "u1", Type: domain.Deposit, Amount: decimal.RequireFromString("100.00"), Date: day(1)},
		{ID: "b", UserID: "u1", Type: domain.Withdrawal, Amount: decimal.RequireFromString("30.00"), Date: day(2)},
		{ID: "c", UserID: "u1", Type: domain.Purchase, Amount: decimal.RequireFromString("20.50"), Date: day(3)},
		{ID: "d", UserID: "u1", Type: domain.Deposit, Amount: decimal.RequireFromString("10.00"), Date: day(20)},
		{ID: "e", UserID: "u2", Type: domain.Deposit, Amount: decimal.RequireFromString("999.00"), Date: day(2)},
	} {
		require.NoError(t, store.CreateTransaction(ctx, tx))
	}
	svc := service.NewAnalyticsService(store, zerolog.Nop())

	sum, err := svc.SummaryByPeriod(ctx, "u1", day(1), day(10))
	require.NoError(t, err)
	assert.Equal(t, "100.00", sum.Deposits.StringFixed(2))
	assert.Equal(t, "30.00", sum.Withdrawals.StringFixed(2))
	assert.Equal(t, "20.50", sum.Purchases.StringFixed(2))
	assert.Equal(t, "49.50", sum.Net.StringFixed(2))
}

func TestSummaryByPeriod_UserNotFound(t *testing.T) {
	svc := service.NewAnalyticsService(repo.NewMemStore(), zerolog.Nop())

	_, err := svc.SummaryByPeriod(context.Background(), "ghost", time.Now().AddDate(0, 0, -30), time.Now())
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}
