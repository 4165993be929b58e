package usecase

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/legal-connect/backend/config"
	natsadapter "github.com/legal-connect/backend/internal/adapters/nats"
	repo "github.com/legal-connect/backend/internal/adapters/postgres"
	"github.com/legal-connect/backend/internal/adapters/storage"
	"github.com/legal-connect/backend/internal/domain"
	pkglog "github.com/legal-connect/backend/pkg/log"
)

// RegisterForm is the JSON document carried in the multipart "data" field.
// The role-specific block matching UserType must be present; the others
// must be absent.
type RegisterForm struct {
	UserType  domain.UserType `json:"userType"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Email     string          `json:"email"`
	Password  string          `json:"password"`
	Mobile    string          `json:"mobile"`
	Address   string          `json:"address"`
	City      string          `json:"city"`
	State     string          `json:"state"`
	Pincode   string          `json:"pincode"`
	IDType    domain.IDType   `json:"idType"`

	Advocate *AdvocateForm `json:"advocate,omitempty"`
	Intern   *InternForm   `json:"intern,omitempty"`
	Client   *ClientForm   `json:"client,omitempty"`
}

type AdvocateForm struct {
	BarCouncilID   string                `json:"barCouncilId"`
	Specialization domain.Specialization `json:"specialization"`
	Experience     int                   `json:"experience"`
	Fees           float64               `json:"fees"`
	Bio            string                `json:"bio"`
}

type InternForm struct {
	SchoolName  string                  `json:"schoolName"`
	CurrentYear int                     `json:"currentYear"`
	Interests   []domain.Specialization `json:"interests"`
	Skills      []string                `json:"skills"`
}

type ClientForm struct {
	Occupation         string                `json:"occupation"`
	CompanyName        string                `json:"companyName"`
	PreferredLanguages []string              `json:"preferredLanguages"`
	Budget             float64               `json:"budget"`
	PreferredLocation  string                `json:"preferredLocation"`
	CaseType           domain.Specialization `json:"caseType"`
}

// DocumentRefs holds the document-store references for the files received
// with a registration request. An empty string means the slot was not
// submitted.
type DocumentRefs struct {
	IDProofFront string
	IDProofBack  string
	LawDegree    string
	StudentID    string
	Resume       string
}

// All returns every non-empty reference, for failure-path cleanup.
func (d DocumentRefs) All() []string {
	var refs []string
	for _, ref := range []string{d.IDProofFront, d.IDProofBack, d.LawDegree, d.StudentID, d.Resume} {
		if ref != "" {
			refs = append(refs, ref)
		}
	}
	return refs
}

// RegisteredUser is the public account summary returned on success.
type RegisteredUser struct {
	ID        string          `json:"id"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Email     string          `json:"email"`
	UserType  domain.UserType `json:"userType"`
	Token     string          `json:"token"`
}

type RegistrationService interface {
	Register(ctx context.Context, traceID string, form RegisterForm, docs DocumentRefs) (*RegisteredUser, error)
}

type registrationService struct {
	cfg    *config.Config
	logger pkglog.Logger
	store  repo.Store
	docs   storage.Store
	events natsadapter.EventPublisher
	signer JWTSigner
}

func NewRegistrationService(cfg *config.Config, logger pkglog.Logger, store repo.Store, docs storage.Store, events natsadapter.EventPublisher, signer JWTSigner) RegistrationService {
	return &registrationService{cfg: cfg, logger: logger, store: store, docs: docs, events: events, signer: signer}
}

// Register creates one account and exactly one role profile. Any failure
// schedules deletion of every uploaded document; the account and profile
// creates share one transaction, so no partial pair survives.
func (s *registrationService) Register(ctx context.Context, traceID string, form RegisterForm, docs DocumentRefs) (*RegisteredUser, error) {
	form.Email = normalizeEmail(form.Email)
	if err := validateForm(form, docs); err != nil {
		s.docs.Cleanup(docs.All())
		return nil, err
	}

	if form.IDType != domain.IDTypeAadhaar && docs.IDProofBack != "" {
		// A back side is only recorded for aadhaar. Discard strays so the
		// file does not linger unreferenced.
		s.docs.Cleanup([]string{docs.IDProofBack})
		docs.IDProofBack = ""
	}

	if _, err := s.store.Users().FindByEmail(ctx, form.Email); err == nil {
		s.docs.Cleanup(docs.All())
		return nil, ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.docs.Cleanup(docs.All())
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		s.docs.Cleanup(docs.All())
		return nil, err
	}

	user := &domain.User{
		FirstName:    form.FirstName,
		LastName:     form.LastName,
		Email:        form.Email,
		PasswordHash: string(hash),
		Mobile:       form.Mobile,
		Address:      form.Address,
		City:         form.City,
		State:        form.State,
		Pincode:      form.Pincode,
		UserType:     form.UserType,
		IDType:       form.IDType,
		IDProofFront: docs.IDProofFront,
	}
	if docs.IDProofBack != "" {
		user.IDProofBack = &docs.IDProofBack
	}

	err = s.store.InTx(ctx, func(tx repo.Store) error {
		if err := tx.Users().Create(ctx, user); err != nil {
			return err
		}
		switch form.UserType {
		case domain.UserTypeAdvocate:
			return tx.Advocates().Create(ctx, &domain.AdvocateProfile{
				UserID:         user.ID,
				BarCouncilID:   form.Advocate.BarCouncilID,
				LawDegree:      docs.LawDegree,
				Specialization: form.Advocate.Specialization,
				Experience:     form.Advocate.Experience,
				Fees:           form.Advocate.Fees,
				Bio:            form.Advocate.Bio,
			})
		case domain.UserTypeIntern:
			return tx.Interns().Create(ctx, &domain.InternProfile{
				UserID:      user.ID,
				SchoolName:  form.Intern.SchoolName,
				CurrentYear: form.Intern.CurrentYear,
				Interests:   form.Intern.Interests,
				Resume:      docs.Resume,
				StudentID:   docs.StudentID,
				Skills:      form.Intern.Skills,
			})
		case domain.UserTypeClient:
			return tx.Clients().Create(ctx, clientProfile(user, form.Client))
		}
		return validationf("unknown user type %q", form.UserType)
	})
	if err != nil {
		s.docs.Cleanup(docs.All())
		// A uniqueness violation raced past the pre-check is reported
		// the same way as the pre-check duplicate.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	if s.events != nil {
		_ = s.events.UserRegistered(ctx, user.ID, user.Email, string(user.UserType))
	}

	token, err := s.signer.Sign(user.ID, map[string]interface{}{"email": user.Email, "user_type": string(user.UserType)}, s.cfg.TokenTTL)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("trace_id", traceID).Str("user_id", user.ID).Str("user_type", string(user.UserType)).Msg("user registered")
	return &RegisteredUser{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		UserType:  user.UserType,
		Token:     token,
	}, nil
}

func clientProfile(user *domain.User, form *ClientForm) *domain.ClientProfile {
	p := &domain.ClientProfile{
		UserID:             user.ID,
		Occupation:         form.Occupation,
		CompanyName:        form.CompanyName,
		PreferredLanguages: form.PreferredLanguages,
		Budget:             form.Budget,
		PreferredLocation:  form.PreferredLocation,
		CaseType:           form.CaseType,
	}
	if p.Occupation == "" {
		p.Occupation = "Not Specified"
	}
	if len(p.PreferredLanguages) == 0 {
		p.PreferredLanguages = []string{"English"}
	}
	if p.PreferredLocation == "" {
		p.PreferredLocation = user.City
	}
	if p.CaseType == "" {
		p.CaseType = domain.SpecCivil
	}
	return p
}

func validateForm(form RegisterForm, docs DocumentRefs) error {
	if form.FirstName == "" || form.LastName == "" {
		return validationf("first and last name are required")
	}
	if err := validateEmail(form.Email); err != nil {
		return err
	}
	if len(form.Password) < 6 {
		return validationf("password must be at least 6 characters")
	}
	switch form.IDType {
	case domain.IDTypeAadhaar, domain.IDTypePAN, domain.IDTypePassport, domain.IDTypeDrivingLicense:
	default:
		return validationf("invalid id type %q", form.IDType)
	}
	if docs.IDProofFront == "" {
		return validationf("id proof front is required")
	}
	if form.IDType == domain.IDTypeAadhaar && docs.IDProofBack == "" {
		return validationf("id proof back is required for aadhaar")
	}

	switch form.UserType {
	case domain.UserTypeAdvocate:
		return validateAdvocate(form.Advocate, docs)
	case domain.UserTypeIntern:
		return validateIntern(form.Intern, docs)
	case domain.UserTypeClient:
		return validateClient(form.Client)
	}
	return validationf("unknown user type %q", form.UserType)
}

func validateAdvocate(form *AdvocateForm, docs DocumentRefs) error {
	if form == nil {
		return validationf("advocate details are required")
	}
	if docs.LawDegree == "" {
		return validationf("law degree document is required")
	}
	if form.BarCouncilID == "" {
		return validationf("bar council id is required")
	}
	if !domain.ValidSpecialization(form.Specialization) {
		return validationf("invalid specialization %q", form.Specialization)
	}
	if form.Experience < 0 {
		return validationf("experience cannot be negative")
	}
	if form.Fees < 0 {
		return validationf("fees cannot be negative")
	}
	return nil
}

func validateIntern(form *InternForm, docs DocumentRefs) error {
	if form == nil {
		return validationf("intern details are required")
	}
	if docs.Resume == "" {
		return validationf("resume is required")
	}
	if docs.StudentID == "" {
		return validationf("student id document is required")
	}
	if form.SchoolName == "" {
		return validationf("school name is required")
	}
	if form.CurrentYear < 1 || form.CurrentYear > 5 {
		return validationf("current year must be between 1 and 5")
	}
	for _, interest := range form.Interests {
		// Labor is an advocate-only practice area.
		if !domain.ValidSpecialization(interest) || interest == domain.SpecLabor {
			return validationf("invalid interest %q", interest)
		}
	}
	return nil
}

func validateClient(form *ClientForm) error {
	if form == nil {
		return validationf("client details are required")
	}
	if form.Budget < 0 {
		return validationf("budget cannot be negative")
	}
	if form.CaseType != "" && !domain.ValidSpecialization(form.CaseType) {
		return validationf("invalid case type %q", form.CaseType)
	}
	for _, lang := range form.PreferredLanguages {
		if !domain.PreferredLanguage[lang] {
			return validationf("unsupported language %q", lang)
		}
	}
	return nil
}

func normalizeEmail(email string) string { return strings.ToLower(strings.TrimSpace(email)) }

func validateEmail(email string) error {
	if !strings.Contains(email, "@") || len(email) > 255 {
		return validationf("invalid email")
	}
	return nil
}
