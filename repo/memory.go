package repo

import (
	"context"
	"sort"
	"sync"
	"time"

	"main/domain"
)

// MemStore keeps the ledger in memory. It backs tests and broker-less local
// runs; WithinTx works on a shadow copy that replaces the live state only on
// commit, mirroring the transactional guarantees of PgStore.
//
// FailCreateTransaction and FailUpdateUser, when set, make the corresponding
// write fail. Tests use them to simulate store faults inside an atomic scope.
type MemStore struct {
	mu    sync.Mutex
	users map[domain.UserID]domain.User
	txs   []domain.Transaction

	FailCreateTransaction error
	FailUpdateUser        error
}

func NewMemStore() *MemStore {
	return &MemStore{users: map[domain.UserID]domain.User{}}
}

func (s *MemStore) CreateUser(ctx context.Context, u domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
	return nil
}

func (s *MemStore) GetUser(ctx context.Context, id domain.UserID) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return u, nil
}

func (s *MemStore) UpdateUser(ctx context.Context, u domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailUpdateUser != nil {
		return s.FailUpdateUser
	}
	if _, ok := s.users[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	s.users[u.ID] = u
	return nil
}

func (s *MemStore) ListUsers(ctx context.Context) ([]domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *MemStore) CreateTransaction(ctx context.Context, t domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailCreateTransaction != nil {
		return s.FailCreateTransaction
	}
	s.txs = append(s.txs, t)
	return nil
}

func (s *MemStore) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]domain.Transaction(nil), s.txs...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (s *MemStore) ListTransactionsByUser(ctx context.Context, id domain.UserID, from, to time.Time) ([]domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Transaction
	for _, t := range s.txs {
		if t.UserID != id {
			continue
		}
		if t.Date.Before(from) || t.Date.After(to) {
			continue
		}
		out = append(out, t)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (s *MemStore) WithinTx(ctx context.Context, fn func(Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	shadow := &MemStore{
		users:                 make(map[domain.UserID]domain.User, len(s.users)),
		txs:                   append([]domain.Transaction(nil), s.txs...),
		FailCreateTransaction: s.FailCreateTransaction,
		FailUpdateUser:        s.FailUpdateUser,
	}
	for id, u := range s.users {
		shadow.users[id] = u
	}

	if err := fn(shadow); err != nil {
		return err
	}
	s.users = shadow.users
	s.txs = shadow.txs
	return nil
}

var _ Store = (*MemStore)(nil)
