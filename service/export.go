package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"main/files"
	"main/repo"
)

// ExportService maps the full ledger to flat rows and hands them to a format
// encoder. No business logic beyond the mapping; dates are rendered in the
// reference timezone by the codec layer.
type ExportService struct {
	store repo.Store
	log   zerolog.Logger
}

func NewExportService(store repo.Store, log zerolog.Logger) *ExportService {
	return &ExportService{store: store, log: log}
}

func (s *ExportService) Export(ctx context.Context, format string) ([]byte, error) {
	enc, ok := files.GetEncoder(format)
	if !ok {
		return nil, fmt.Errorf("%w: unknown export format %q", ErrMalformedInput, format)
	}

	list, err := s.store.ListTransactions(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("export failed: listing transactions")
		return nil, ErrInternal
	}
	if len(list) == 0 {
		return nil, ErrNoData
	}

	rows := make([]files.Row, 0, len(list))
	for _, t := range list {
		rows = append(rows, files.Row{
			ID:     t.ID,
			UserID: t.UserID,
			Amount: t.Amount,
			Type:   t.Type,
			Date:   t.Date,
		})
	}

	b, err := enc.EncodeRows(rows)
	if err != nil {
		s.log.Error().Err(err).Str("format", format).Msg("export failed: encoding")
		return nil, ErrInternal
	}
	return b, nil
}
