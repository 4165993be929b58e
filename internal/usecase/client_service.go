package usecase

import (
	"context"

	repo "github.com/legal-connect/backend/internal/adapters/postgres"
	"github.com/legal-connect/backend/internal/domain"
	pkglog "github.com/legal-connect/backend/pkg/log"
)

// ClientUpdate patches a client profile. Zero fields keep prior values.
type ClientUpdate struct {
	Occupation         string                `json:"occupation"`
	CompanyName        string                `json:"companyName"`
	PreferredLanguages []string              `json:"preferredLanguages"`
	Budget             float64               `json:"budget"`
	PreferredLocation  string                `json:"preferredLocation"`
	CaseType           domain.Specialization `json:"caseType"`
}

type ClientService interface {
	List(ctx context.Context) ([]domain.ClientProfile, error)
	Get(ctx context.Context, id string) (*domain.ClientProfile, error)
	Update(ctx context.Context, id, requesterID string, upd ClientUpdate) (*domain.ClientProfile, error)
}

type clientService struct {
	logger pkglog.Logger
	store  repo.Store
}

func NewClientService(logger pkglog.Logger, store repo.Store) ClientService {
	return &clientService{logger: logger, store: store}
}

func (s *clientService) List(ctx context.Context) ([]domain.ClientProfile, error) {
	return s.store.Clients().List(ctx)
}

func (s *clientService) Get(ctx context.Context, id string) (*domain.ClientProfile, error) {
	profile, err := s.store.Clients().FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return profile, nil
}

// Update lets an account edit only its own client profile.
func (s *clientService) Update(ctx context.Context, id, requesterID string, upd ClientUpdate) (*domain.ClientProfile, error) {
	profile, err := s.store.Clients().FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	if profile.UserID != requesterID {
		return nil, ErrForbidden
	}
	if upd.Occupation != "" {
		profile.Occupation = upd.Occupation
	}
	if upd.CompanyName != "" {
		profile.CompanyName = upd.CompanyName
	}
	if len(upd.PreferredLanguages) > 0 {
		for _, lang := range upd.PreferredLanguages {
			if !domain.PreferredLanguage[lang] {
				return nil, validationf("unsupported language %q", lang)
			}
		}
		profile.PreferredLanguages = upd.PreferredLanguages
	}
	if upd.Budget > 0 {
		profile.Budget = upd.Budget
	}
	if upd.PreferredLocation != "" {
		profile.PreferredLocation = upd.PreferredLocation
	}
	if upd.CaseType != "" {
		if !domain.ValidSpecialization(upd.CaseType) {
			return nil, validationf("invalid case type %q", upd.CaseType)
		}
		profile.CaseType = upd.CaseType
	}
	profile.User = nil
	if err := s.store.Clients().Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
