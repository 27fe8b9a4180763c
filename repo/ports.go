package repo

import (
	"context"
	"time"

	"main/domain"
)

// Store is the persistence boundary for users and transactions.
//
// WithinTx opens an atomic scope: every write fn performs through the store it
// receives becomes visible together on commit, or not at all when fn returns
// an error. Inside a scope GetUser locks the user row until the scope ends, so
// concurrent debits against the same user serialize.
type Store interface {
	CreateUser(ctx context.Context, u domain.User) error
	GetUser(ctx context.Context, id domain.UserID) (domain.User, error)
	UpdateUser(ctx context.Context, u domain.User) error
	ListUsers(ctx context.Context) ([]domain.User, error)

	CreateTransaction(ctx context.Context, t domain.Transaction) error
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
	ListTransactionsByUser(ctx context.Context, id domain.UserID, from, to time.Time) ([]domain.Transaction, error)

	WithinTx(ctx context.Context, fn func(Store) error) error
}
