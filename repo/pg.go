package repo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"main/domain"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PgStore struct {
	db   querier
	pool *pgxpool.Pool
	inTx bool
}

func NewPgStore(pool *pgxpool.Pool) *PgStore {
	return &PgStore{db: pool, pool: pool}
}

func (s *PgStore) CreateUser(ctx context.Context, u domain.User) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO users(id,name,balance) VALUES($1,$2,$3)`,
		u.ID, u.Name, u.Balance.StringFixed(2),
	)
	return err
}

func (s *PgStore) GetUser(ctx context.Context, id domain.UserID) (domain.User, error) {
	q := `SELECT id, name, balance FROM users WHERE id=$1`
	if s.inTx {
		q += ` FOR UPDATE`
	}
	var u domain.User
	var bal string
	err := s.db.QueryRow(ctx, q, id).Scan(&u.ID, &u.Name, &bal)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, domain.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	dec, err := decimal.NewFromString(bal)
	if err != nil {
		return domain.User{}, err
	}
	u.Balance = dec
	return u, nil
}

func (s *PgStore) UpdateUser(ctx context.Context, u domain.User) error {
	ct, err := s.db.Exec(ctx,
		`UPDATE users SET name=$2, balance=$3 WHERE id=$1`,
		u.ID, u.Name, u.Balance.StringFixed(2),
	)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (s *PgStore) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := s.db.Query(ctx, `SELECT id, name, balance FROM users ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.User
	for rows.Next() {
		var u domain.User
		var bal string
		if err := rows.Scan(&u.ID, &u.Name, &bal); err != nil {
			return nil, err
		}
		dec, err := decimal.NewFromString(bal)
		if err != nil {
			return nil, err
		}
		u.Balance = dec
		out = append(out, u)
	}
	return out, rows.Err()
}

func (s *PgStore) CreateTransaction(ctx context.Context, t domain.Transaction) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO transactions(id,amount,type,"date",user_id,is_imported)
		 VALUES($1,$2,$3,$4,$5,$6)`,
		t.ID, t.Amount.StringFixed(2), string(t.Type), t.Date, t.UserID, t.IsImported,
	)
	return err
}

func (s *PgStore) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id,amount,type,"date",user_id,is_imported
		  FROM transactions
		  ORDER BY "date", id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTransactions(rows)
}

func (s *PgStore) ListTransactionsByUser(ctx context.Context, id domain.UserID, from, to time.Time) ([]domain.Transaction, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id,amount,type,"date",user_id,is_imported
		  FROM transactions
		  WHERE user_id=$1 AND "date" BETWEEN $2 AND $3
		  ORDER BY "date", id`,
		id, from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTransactions(rows)
}

func scanTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	var out []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		var amt, typ string
		if err := rows.Scan(&t.ID, &amt, &typ, &t.Date, &t.UserID, &t.IsImported); err != nil {
			return nil, err
		}
		dec, err := decimal.NewFromString(amt)
		if err != nil {
			return nil, err
		}
		t.Amount = dec
		t.Type = domain.TransactionType(typ)
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *PgStore) WithinTx(ctx context.Context, fn func(Store) error) error {
	if s.inTx {
		return fn(s)
	}
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	scoped := &PgStore{db: tx, pool: s.pool, inTx: true}
	if err := fn(scoped); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

var _ Store = (*PgStore)(nil)
