package service_test

import (
	"context"
	"strings"
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

func TestExport_CSVRendersReferenceTimezone(t *testing.T) {
	ctx := context.Background()
	store := repo.NewMemStore()
	require.NoError(t, store.CreateTransaction(ctx, domain.Transaction{
		ID:     "t1",
		Amount: decimal.RequireFromString("12.34"),
		Type:   domain.Purchase,
		Date:   time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
		UserID: "u1",
	}))
	svc := service.NewExportService(store, zerolog.Nop())

	b, err := svc.Export(ctx, "csv")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Id,UserId,Amount,Type,Date", lines[0])
	// 12:00 UTC is 09:00 in America/Sao_Paulo
	assert.Equal(t, "t1,u1,12.34,Purchase,15/01/2024 09:00:00", lines[1])
}

func TestExport_EmptyLedger(t *testing.T) {
	svc := service.NewExportService(repo.NewMemStore(), zerolog.Nop())

	_, err := svc.Export(context.Background(), "csv")
	assert.ErrorIs(t, err, service.ErrNoData)
}

func TestExport_UnknownFormat(t *testing.T) {
	svc := service.NewExportService(repo.NewMemStore(), zerolog.Nop())

	_, err := svc.Export(context.Background(), "pdf")
	assert.ErrorIs(t, err, service.ErrMalformedInput)
}

func TestExport_JSONAndYAML(t *testing.T) {
	ctx := context.Background()
	store := repo.NewMemStore()
	require.NoError(t, store.CreateTransaction(ctx, domain.Transaction{
		ID:     "t1",
		Amount: decimal.RequireFromString("5.00"),
		Type:   domain.Deposit,
		Date:   time.Date(2024, 6, 1, 3, 0, 0, 0, time.UTC),
		UserID: "u1",
	}))
	svc := service.NewExportService(store, zerolog.Nop())

	j, err := svc.Export(ctx, "json")
	require.NoError(t, err)
	assert.Contains(t, string(j), `"type": "Deposit"`)
	assert.Contains(t, string(j), `"amount": "5.00"`)

	y, err := svc.Export(ctx, "yaml")
	require.NoError(t, err)
	assert.Contains(t, string(y), "type: Deposit")
}
