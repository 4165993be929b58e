package usecase

import (
	"context"

	repo "github.com/legal-connect/backend/internal/adapters/postgres"
	"github.com/legal-connect/backend/internal/domain"
	pkglog "github.com/legal-connect/backend/pkg/log"
)

// UserUpdate patches the role-agnostic account fields. Empty fields keep
// their prior values.
type UserUpdate struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Mobile    string `json:"mobile"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Pincode   string `json:"pincode"`
}

type UserService interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, upd UserUpdate) (*domain.User, error)
}

type userService struct {
	logger pkglog.Logger
	store  repo.Store
}

func NewUserService(logger pkglog.Logger, store repo.Store) UserService {
	return &userService{logger: logger, store: store}
}

func (s *userService) Get(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.store.Users().FindByID(ctx, userID)
	if err != nil {
		return nil, ErrNotFound
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, upd UserUpdate) (*domain.User, error) {
	user, err := s.store.Users().FindByID(ctx, userID)
	if err != nil {
		return nil, ErrNotFound
	}
	if upd.FirstName != "" {
		user.FirstName = upd.FirstName
	}
	if upd.LastName != "" {
		user.LastName = upd.LastName
	}
	if upd.Mobile != "" {
		user.Mobile = upd.Mobile
	}
	if upd.Address != "" {
		user.Address = upd.Address
	}
	if upd.City != "" {
		user.City = upd.City
	}
	if upd.State != "" {
		user.State = upd.State
	}
	if upd.Pincode != "" {
		user.Pincode = upd.Pincode
	}
	if err := s.store.Users().Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
