package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"main/domain"
	"main/repo"
)

type UserService struct {
	store repo.Store
	f     domain.Factory
	log   zerolog.Logger
}

func NewUserService(store repo.Store, f domain.Factory, log zerolog.Logger) *UserService {
	return &UserService{store: store, f: f, log: log}
}

func (s *UserService) CreateUser(ctx context.Context, name string, balance decimal.Decimal) (domain.User, error) {
	u, err := s.f.NewUser(name, balance)
	if err != nil {
		return domain.User{}, err
	}
	if err := s.store.CreateUser(ctx, u); err != nil {
		s.log.Error().Err(err).Str("name", name).Msg("user creation failed")
		return domain.User{}, ErrInternal
	}
	return u, nil
}

func (s *UserService) UserExists(ctx context.Context, id domain.UserID) (bool, error) {
	_, err := s.store.GetUser(ctx, id)
	if errors.Is(err, ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, ErrInternal
	}
	return true, nil
}
