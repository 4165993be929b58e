package usecase

import (
	"context"
	"time"

	repo "github.com/legal-connect/backend/internal/adapters/postgres"
	"github.com/legal-connect/backend/internal/domain"
	pkglog "github.com/legal-connect/backend/pkg/log"
)

// AdvocateUpdate patches an advocate profile. Zero fields keep prior values.
type AdvocateUpdate struct {
	Specialization domain.Specialization `json:"specialization"`
	Experience     int                   `json:"experience"`
	Fees           float64               `json:"fees"`
	Bio            string                `json:"bio"`
}

type AdvocateService interface {
	List(ctx context.Context) ([]domain.AdvocateProfile, error)
	Get(ctx context.Context, id string) (*domain.AdvocateProfile, error)
	UpdateProfile(ctx context.Context, userID string, upd AdvocateUpdate) (*domain.AdvocateProfile, error)
	AddReview(ctx context.Context, advocateID, reviewerID string, rating int, comment string) error
}

type advocateService struct {
	logger pkglog.Logger
	store  repo.Store
}

func NewAdvocateService(logger pkglog.Logger, store repo.Store) AdvocateService {
	return &advocateService{logger: logger, store: store}
}

func (s *advocateService) List(ctx context.Context) ([]domain.AdvocateProfile, error) {
	return s.store.Advocates().List(ctx)
}

func (s *advocateService) Get(ctx context.Context, id string) (*domain.AdvocateProfile, error) {
	profile, err := s.store.Advocates().FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return profile, nil
}

func (s *advocateService) UpdateProfile(ctx context.Context, userID string, upd AdvocateUpdate) (*domain.AdvocateProfile, error) {
	profile, err := s.store.Advocates().FindByUserID(ctx, userID)
	if err != nil {
		return nil, ErrNotFound
	}
	if upd.Specialization != "" {
		if !domain.ValidSpecialization(upd.Specialization) {
			return nil, validationf("invalid specialization %q", upd.Specialization)
		}
		profile.Specialization = upd.Specialization
	}
	if upd.Experience > 0 {
		profile.Experience = upd.Experience
	}
	if upd.Fees > 0 {
		profile.Fees = upd.Fees
	}
	if upd.Bio != "" {
		profile.Bio = upd.Bio
	}
	if err := s.store.Advocates().Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *advocateService) AddReview(ctx context.Context, advocateID, reviewerID string, rating int, comment string) error {
	if rating < 1 || rating > 5 {
		return validationf("rating must be between 1 and 5")
	}
	profile, err := s.store.Advocates().FindByID(ctx, advocateID)
	if err != nil {
		return ErrNotFound
	}
	profile.AddReview(domain.Review{
		UserID:    reviewerID,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now(),
	})
	// Drop the joined account row so Update only touches the profile.
	profile.User = nil
	if err := s.store.Advocates().Update(ctx, profile); err != nil {
		return err
	}
	s.logger.Info().Str("advocate_id", advocateID).Str("reviewer_id", reviewerID).Int("rating", rating).Msg("review added")
	return nil
}
