package usecase

import (
	"context"

	repo "github.com/legal-connect/backend/internal/adapters/postgres"
	"github.com/legal-connect/backend/internal/domain"
	pkglog "github.com/legal-connect/backend/pkg/log"
)

// InternUpdate patches an intern profile. Zero fields keep prior values.
type InternUpdate struct {
	SchoolName  string                  `json:"schoolName"`
	CurrentYear int                     `json:"currentYear"`
	Interests   []domain.Specialization `json:"interests"`
	Skills      []string                `json:"skills"`
}

type InternService interface {
	List(ctx context.Context) ([]domain.InternProfile, error)
	Get(ctx context.Context, id string) (*domain.InternProfile, error)
	UpdateProfile(ctx context.Context, userID string, upd InternUpdate) (*domain.InternProfile, error)
	AddAchievement(ctx context.Context, userID string, achievement domain.Achievement) error
	AddCertification(ctx context.Context, userID string, certification domain.Certification) error
}

type internService struct {
	logger pkglog.Logger
	store  repo.Store
}

func NewInternService(logger pkglog.Logger, store repo.Store) InternService {
	return &internService{logger: logger, store: store}
}

func (s *internService) List(ctx context.Context) ([]domain.InternProfile, error) {
	return s.store.Interns().List(ctx)
}

func (s *internService) Get(ctx context.Context, id string) (*domain.InternProfile, error) {
	profile, err := s.store.Interns().FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return profile, nil
}

func (s *internService) UpdateProfile(ctx context.Context, userID string, upd InternUpdate) (*domain.InternProfile, error) {
	profile, err := s.store.Interns().FindByUserID(ctx, userID)
	if err != nil {
		return nil, ErrNotFound
	}
	if upd.SchoolName != "" {
		profile.SchoolName = upd.SchoolName
	}
	if upd.CurrentYear != 0 {
		if upd.CurrentYear < 1 || upd.CurrentYear > 5 {
			return nil, validationf("current year must be between 1 and 5")
		}
		profile.CurrentYear = upd.CurrentYear
	}
	if len(upd.Interests) > 0 {
		for _, interest := range upd.Interests {
			if !domain.ValidSpecialization(interest) || interest == domain.SpecLabor {
				return nil, validationf("invalid interest %q", interest)
			}
		}
		profile.Interests = upd.Interests
	}
	if len(upd.Skills) > 0 {
		profile.Skills = upd.Skills
	}
	if err := s.store.Interns().Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *internService) AddAchievement(ctx context.Context, userID string, achievement domain.Achievement) error {
	if achievement.Title == "" {
		return validationf("achievement title is required")
	}
	profile, err := s.store.Interns().FindByUserID(ctx, userID)
	if err != nil {
		return ErrNotFound
	}
	profile.Achievements = append(profile.Achievements, achievement)
	return s.store.Interns().Update(ctx, profile)
}

func (s *internService) AddCertification(ctx context.Context, userID string, certification domain.Certification) error {
	if certification.Name == "" {
		return validationf("certification name is required")
	}
	profile, err := s.store.Interns().FindByUserID(ctx, userID)
	if err != nil {
		return ErrNotFound
	}
	profile.Certifications = append(profile.Certifications, certification)
	return s.store.Interns().Update(ctx, profile)
}
