package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"main/domain"
	"main/files"
	"main/repo"
)

type ImportResult struct {
	Imported int    `json:"imported"`
	Message  string `json:"message"`
}

// ImportService reconciles decoded file rows against the user ledger:
// rows whose owner exists are persisted as imported transactions, the rest
// are counted and dropped. Imported rows never touch the owner's balance.
type ImportService struct {
	store repo.Store
	f     domain.Factory
	log   zerolog.Logger
}

func NewImportService(store repo.Store, f domain.Factory, log zerolog.Logger) *ImportService {
	return &ImportService{store: store, f: f, log: log}
}

// ImportFile decodes an uploaded file and reconciles it. Parsing is
// all-or-nothing: one malformed row rejects the whole file before any write.
func (s *ImportService) ImportFile(ctx context.Context, format string, data []byte) (ImportResult, error) {
	imp, ok := files.GetImporter(format)
	if !ok {
		return ImportResult{}, fmt.Errorf("%w: unknown import format %q", ErrMalformedInput, format)
	}
	rows, err := imp.Parse(data)
	if err != nil {
		s.log.Info().Err(err).Str("format", format).Msg("import rejected: malformed file")
		return ImportResult{}, ErrMalformedInput
	}
	return s.Import(ctx, rows)
}

// Import processes rows strictly in input order. A missing owner skips the row;
// a store failure aborts, leaving rows persisted so far in place.
func (s *ImportService) Import(ctx context.Context, rows []files.Row) (ImportResult, error) {
	imported, ignored := 0, 0
	for _, r := range rows {
		if _, err := s.store.GetUser(ctx, r.UserID); err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				ignored++
				continue
			}
			s.log.Error().Err(err).Str("user_id", string(r.UserID)).Msg("import aborted: user lookup failed")
			return ImportResult{}, ErrInternal
		}

		t, err := s.f.NewImportedTransaction(r.Type, r.UserID, r.Amount, r.Date)
		if err != nil {
			s.log.Error().Err(err).Str("user_id", string(r.UserID)).Msg("import aborted: row failed entity validation")
			return ImportResult{}, ErrInternal
		}
		if err := s.store.CreateTransaction(ctx, t); err != nil {
			s.log.Error().Err(err).Str("user_id", string(r.UserID)).Msg("import aborted: store failure")
			return ImportResult{}, ErrInternal
		}
		imported++
	}

	msg := "import completed successfully."
	if ignored > 0 {
		msg = fmt.Sprintf("import completed successfully. %d transactions were ignored because their users do not exist.", ignored)
	}
	s.log.Info().Int("imported", imported).Int("ignored", ignored).Msg("import finished")

	return ImportResult{Imported: imported, Message: msg}, nil
}
