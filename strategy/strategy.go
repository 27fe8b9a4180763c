package strategy

import (
	"github.com/shopspring/decimal"

	"main/domain"
)

// Outcome classifies the result of applying a transaction to a balance.
type Outcome int

const (
	Success Outcome = iota
	InsufficientBalance
	InvalidTransaction
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "Success"
	case InsufficientBalance:
		return "InsufficientBalance"
	case InvalidTransaction:
		return "InvalidTransaction"
	}
	return "Unknown"
}

// Execute validates and applies a transaction of the given kind to the user's
// balance. Debit kinds (Withdrawal, Purchase) report insufficiency before any
// other validation; Deposit never checks the balance. The user is mutated only
// on Success.
func Execute(kind domain.TransactionType, user *domain.User, amount decimal.Decimal) Outcome {
	if kind.Debits() && user.Balance.LessThan(amount) {
		return InsufficientBalance
	}
	if !amount.GreaterThan(decimal.Zero) {
		return InvalidTransaction
	}

	amt := amount.Round(2)
	switch kind {
	case domain.Deposit:
		user.Balance = user.Balance.Add(amt).Round(2)
	case domain.Withdrawal, domain.Purchase:
		user.Balance = user.Balance.Sub(amt).Round(2)
	default:
		return InvalidTransaction
	}
	return Success
}
