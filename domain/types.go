package domain

type UserID string
type TransactionID string

// TransactionType is the closed set of ledger movement kinds. The canonical
// names are case-sensitive and match the wire/file representation.
type TransactionType string

const (
	Deposit    TransactionType = "Deposit"
	Withdrawal TransactionType = "Withdrawal"
	Purchase   TransactionType = "Purchase"
)

// ParseTransactionType resolves a kind string to its TransactionType.
// Unknown kinds report ok=false; callers decide how fatal that is.
func ParseTransactionType(s string) (TransactionType, bool) {
	switch TransactionType(s) {
	case Deposit:
		return Deposit, true
	case Withdrawal:
		return Withdrawal, true
	case Purchase:
		return Purchase, true
	}
	return "", false
}

func (t TransactionType) Valid() bool {
	return t == Deposit || t == Withdrawal || t == Purchase
}

// Debits reports whether the kind takes money out of the balance.
// Purchase behaves exactly like Withdrawal; the kind differs for reporting only.
func (t TransactionType) Debits() bool {
	return t == Withdrawal || t == Purchase
}

func (t TransactionType) String() string { return string(t) }
