package files

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"main/domain"
)

// ErrMalformedRow wraps any field-level decoding failure. A single bad row
// rejects the whole file; the reconciler never sees partially parsed input.
var ErrMalformedRow = errors.New("malformed row")

// Row is the flat interchange record shared by all import/export codecs.
// ID is set on export only; import rows receive a fresh id downstream.
type Row struct {
	ID     domain.TransactionID
	UserID domain.UserID
	Amount decimal.Decimal
	Type   domain.TransactionType
	Date   time.Time
}

var importDateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC3339,
}

func parseRowDate(s string) (time.Time, error) {
	for _, layout := range importDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// parseRowFields decodes one import record in column order
// userId, amount, type, date. line is 1-based and names the offending row in
// the returned error.
func parseRowFields(rec []string, line int) (Row, error) {
	if len(rec) < 4 {
		return Row{}, fmt.Errorf("%w: line %d: expected 4 columns, got %d", ErrMalformedRow, line, len(rec))
	}

	userID := rec[0]
	if userID == "" {
		return Row{}, fmt.Errorf("%w: line %d: empty user id", ErrMalformedRow, line)
	}

	amt, err := decimal.NewFromString(rec[1])
	if err != nil {
		return Row{}, fmt.Errorf("%w: line %d: bad amount %q", ErrMalformedRow, line, rec[1])
	}
	if !amt.GreaterThan(decimal.Zero) {
		return Row{}, fmt.Errorf("%w: line %d: amount must be > 0", ErrMalformedRow, line)
	}

	t, ok := domain.ParseTransactionType(rec[2])
	if !ok {
		return Row{}, fmt.Errorf("%w: line %d: unknown transaction type %q", ErrMalformedRow, line, rec[2])
	}

	dt, err := parseRowDate(rec[3])
	if err != nil {
		return Row{}, fmt.Errorf("%w: line %d: %v", ErrMalformedRow, line, err)
	}

	return Row{
		UserID: domain.UserID(userID),
		Amount: amt.Round(2),
		Type:   t,
		Date:   dt,
	}, nil
}
