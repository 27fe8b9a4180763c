package domain

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyUserID            = errors.New("user id is empty")
	ErrEmptyUserName          = errors.New("user name is empty")
	ErrNegativeInitialBalance = errors.New("initial balance must be >= 0")
	ErrUserNotFound           = errors.New("user not found")
)

type User struct {
	ID      UserID          `json:"id"      yaml:"id"`
	Name    string          `json:"name"    yaml:"name"`
	Balance decimal.Decimal `json:"balance" yaml:"balance"`
}

func (u User) Validate() error {
	if strings.TrimSpace(string(u.ID)) == "" {
		return ErrEmptyUserID
	}
	if strings.TrimSpace(u.Name) == "" {
		return ErrEmptyUserName
	}
	if u.Balance.IsNegative() {
		return ErrNegativeInitialBalance
	}
	return nil
}
