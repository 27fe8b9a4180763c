package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyTransactionID     = errors.New("transaction id is empty")
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrEmptyUserRef           = errors.New("transaction user id is empty")
	ErrNonPositiveAmount      = errors.New("transaction amount must be > 0")
	ErrZeroDate               = errors.New("transaction date is zero")
)

// Transaction is an immutable ledger entry. IsImported marks rows written by
// the bulk import path rather than the transaction engine.
type Transaction struct {
	ID         TransactionID   `json:"id"          yaml:"id"`
	Amount     decimal.Decimal `json:"amount"      yaml:"amount"`
	Type       TransactionType `json:"type"        yaml:"type"`
	Date       time.Time       `json:"date"        yaml:"date"`
	UserID     UserID          `json:"user_id"     yaml:"user_id"`
	IsImported bool            `json:"is_imported" yaml:"is_imported"`
}

func (t Transaction) Validate() error {
	if strings.TrimSpace(string(t.ID)) == "" {
		return ErrEmptyTransactionID
	}
	if !t.Type.Valid() {
		return ErrInvalidTransactionType
	}
	if strings.TrimSpace(string(t.UserID)) == "" {
		return ErrEmptyUserRef
	}
	if t.Date.IsZero() {
		return ErrZeroDate
	}
	if !t.Amount.GreaterThan(decimal.Zero) {
		return ErrNonPositiveAmount
	}
	return nil
}
