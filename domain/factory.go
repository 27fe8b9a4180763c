package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Factory struct{}

func (Factory) NewUser(name string, balance decimal.Decimal) (User, error) {
	u := User{
		ID:      UserID(uuid.NewString()),
		Name:    strings.TrimSpace(name),
		Balance: balance.Round(2),
	}
	return u, u.Validate()
}

func (Factory) NewTransaction(
	t TransactionType,
	userID UserID,
	amount decimal.Decimal,
	when time.Time,
) (Transaction, error) {
	tx := Transaction{
		ID:     TransactionID(uuid.NewString()),
		Amount: amount.Round(2),
		Type:   t,
		Date:   when,
		UserID: userID,
	}
	return tx, tx.Validate()
}

// NewImportedTransaction builds a ledger entry for a reconciled import row.
// The date comes from the source row, not from the clock.
func (f Factory) NewImportedTransaction(
	t TransactionType,
	userID UserID,
	amount decimal.Decimal,
	when time.Time,
) (Transaction, error) {
	tx, err := f.NewTransaction(t, userID, amount, when)
	if err != nil {
		return Transaction{}, err
	}
	tx.IsImported = true
	return tx, nil
}
