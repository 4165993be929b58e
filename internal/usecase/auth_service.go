package usecase

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/legal-connect/backend/config"
	repo "github.com/legal-connect/backend/internal/adapters/postgres"
	"github.com/legal-connect/backend/internal/domain"
	pkglog "github.com/legal-connect/backend/pkg/log"
)

type AuthService interface {
	Login(ctx context.Context, traceID, email, password string) (*RegisteredUser, error)
	CurrentUser(ctx context.Context, userID string) (*domain.User, error)
}

type authService struct {
	cfg    *config.Config
	logger pkglog.Logger
	store  repo.Store
	signer JWTSigner
}

func NewAuthService(cfg *config.Config, logger pkglog.Logger, store repo.Store, signer JWTSigner) AuthService {
	return &authService{cfg: cfg, logger: logger, store: store, signer: signer}
}

func (s *authService) Login(ctx context.Context, traceID, email, password string) (*RegisteredUser, error) {
	user, err := s.store.Users().FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	token, err := s.signer.Sign(user.ID, map[string]interface{}{"email": user.Email, "user_type": string(user.UserType)}, s.cfg.TokenTTL)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("trace_id", traceID).Str("user_id", user.ID).Msg("login")
	return &RegisteredUser{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		UserType:  user.UserType,
		Token:     token,
	}, nil
}

func (s *authService) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.store.Users().FindByID(ctx, userID)
	if err != nil {
		return nil, ErrNotFound
	}
	return user, nil
}
