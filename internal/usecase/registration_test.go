package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/legal-connect/backend/config"
	"github.com/legal-connect/backend/internal/domain"
	pkglog "github.com/legal-connect/backend/pkg/log"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:   "test-secret",
		JWTIssuer:   "legalconnect",
		JWTAudience: "frontend",
		TokenTTL:    time.Hour,
	}
}

func newTestRegistration(t *testing.T) (*mockStore, *mockDocStore, *mockPublisher, RegistrationService) {
	t.Helper()
	cfg := testConfig()
	signer, err := NewJWTSigner(cfg)
	if err != nil {
		t.Fatalf("signer: %v", err)
	}
	store := newMockStore()
	docs := &mockDocStore{}
	pub := &mockPublisher{}
	svc := NewRegistrationService(cfg, pkglog.New("test"), store, docs, pub, signer)
	return store, docs, pub, svc
}

func advocateForm() RegisterForm {
	return RegisterForm{
		UserType:  domain.UserTypeAdvocate,
		FirstName: "Asha",
		LastName:  "Verma",
		Email:     "asha@example.com",
		Password:  "hunter22",
		Mobile:    "9876543210",
		City:      "Pune",
		IDType:    domain.IDTypePAN,
		Advocate: &AdvocateForm{
			BarCouncilID:   "MH/1234/2015",
			Specialization: domain.SpecCivil,
			Experience:     8,
			Fees:           1500,
			Bio:            "Civil litigation.",
		},
	}
}

func advocateRefs() DocumentRefs {
	return DocumentRefs{IDProofFront: "uploads/idProofFront-1", LawDegree: "uploads/lawDegree-1"}
}

func TestRegisterAdvocate(t *testing.T) {
	store, docs, pub, svc := newTestRegistration(t)

	result, err := svc.Register(context.Background(), "trace-1", advocateForm(), advocateRefs())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if result.Token == "" {
		t.Fatal("expected a token")
	}
	if result.UserType != domain.UserTypeAdvocate {
		t.Fatalf("unexpected user type %q", result.UserType)
	}
	if len(store.users) != 1 || len(store.advocates) != 1 {
		t.Fatalf("expected 1 user and 1 advocate profile, got %d/%d", len(store.users), len(store.advocates))
	}
	for _, p := range store.advocates {
		if p.UserID != result.ID {
			t.Fatalf("profile linked to %q, want %q", p.UserID, result.ID)
		}
		if p.LawDegree != "uploads/lawDegree-1" {
			t.Fatalf("law degree ref %q", p.LawDegree)
		}
	}
	if len(docs.deleted) != 0 {
		t.Fatalf("no cleanup expected, deleted %v", docs.deleted)
	}
	if len(pub.events) != 1 {
		t.Fatalf("expected 1 registration event, got %d", len(pub.events))
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store, docs, _, svc := newTestRegistration(t)
	store.users["user-0"] = &domain.User{ID: "user-0", Email: "asha@example.com"}

	_, err := svc.Register(context.Background(), "trace-1", advocateForm(), advocateRefs())
	if !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if len(store.users) != 1 || len(store.advocates) != 0 {
		t.Fatal("no new records expected")
	}
	if len(docs.deleted) != 2 {
		t.Fatalf("expected both refs cleaned up, deleted %v", docs.deleted)
	}
}

func TestRegisterDuplicateRaceAtCreate(t *testing.T) {
	store, docs, _, svc := newTestRegistration(t)
	// The pre-check passes but the insert loses a race on the unique index.
	store.userCreateErr = gorm.ErrDuplicatedKey

	_, err := svc.Register(context.Background(), "trace-1", advocateForm(), advocateRefs())
	if !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if len(store.users) != 0 || len(store.advocates) != 0 {
		t.Fatal("rollback expected")
	}
	if len(docs.deleted) != 2 {
		t.Fatalf("expected cleanup of both refs, deleted %v", docs.deleted)
	}
}

func TestRegisterInternMissingResume(t *testing.T) {
	store, docs, _, svc := newTestRegistration(t)
	form := RegisterForm{
		UserType:  domain.UserTypeIntern,
		FirstName: "Ravi",
		LastName:  "Kumar",
		Email:     "ravi@example.com",
		Password:  "hunter22",
		IDType:    domain.IDTypePassport,
		Intern: &InternForm{
			SchoolName:  "NLU Delhi",
			CurrentYear: 3,
			Interests:   []domain.Specialization{domain.SpecCriminal},
		},
	}
	refs := DocumentRefs{IDProofFront: "uploads/idProofFront-1", StudentID: "uploads/studentId-1"}

	_, err := svc.Register(context.Background(), "trace-1", form, refs)
	if !IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(store.users) != 0 || len(store.interns) != 0 {
		t.Fatal("no records expected")
	}
	if len(docs.deleted) != 2 {
		t.Fatalf("expected cleanup of both refs, deleted %v", docs.deleted)
	}
}

func TestRegisterClientAadhaarNeedsBack(t *testing.T) {
	store, _, _, svc := newTestRegistration(t)
	form := RegisterForm{
		UserType:  domain.UserTypeClient,
		FirstName: "Meera",
		LastName:  "Shah",
		Email:     "meera@example.com",
		Password:  "hunter22",
		City:      "Mumbai",
		IDType:    domain.IDTypeAadhaar,
		Client:    &ClientForm{},
	}
	refs := DocumentRefs{IDProofFront: "uploads/idProofFront-1"}

	_, err := svc.Register(context.Background(), "trace-1", form, refs)
	if !IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(store.users) != 0 {
		t.Fatal("no records expected")
	}
}

func TestRegisterClientDefaults(t *testing.T) {
	store, _, _, svc := newTestRegistration(t)
	form := RegisterForm{
		UserType:  domain.UserTypeClient,
		FirstName: "Meera",
		LastName:  "Shah",
		Email:     "meera@example.com",
		Password:  "hunter22",
		City:      "Mumbai",
		IDType:    domain.IDTypePAN,
		Client:    &ClientForm{},
	}
	refs := DocumentRefs{IDProofFront: "uploads/idProofFront-1"}

	if _, err := svc.Register(context.Background(), "trace-1", form, refs); err != nil {
		t.Fatalf("register: %v", err)
	}
	if len(store.clients) != 1 {
		t.Fatalf("expected 1 client profile, got %d", len(store.clients))
	}
	for _, p := range store.clients {
		if p.Occupation != "Not Specified" {
			t.Fatalf("occupation %q", p.Occupation)
		}
		if len(p.PreferredLanguages) != 1 || p.PreferredLanguages[0] != "English" {
			t.Fatalf("languages %v", p.PreferredLanguages)
		}
		if p.PreferredLocation != "Mumbai" {
			t.Fatalf("location %q, want the account city", p.PreferredLocation)
		}
		if p.CaseType != domain.SpecCivil {
			t.Fatalf("case type %q", p.CaseType)
		}
	}
}

func TestRegisterRetryAfterFailedAttempt(t *testing.T) {
	store, docs, _, svc := newTestRegistration(t)

	form := advocateForm()
	firstRefs := DocumentRefs{IDProofFront: "uploads/idProofFront-1"}
	if _, err := svc.Register(context.Background(), "trace-1", form, firstRefs); !IsValidation(err) {
		t.Fatalf("expected ValidationError on missing law degree, got %v", err)
	}
	if len(docs.deleted) != 1 || docs.deleted[0] != "uploads/idProofFront-1" {
		t.Fatalf("first attempt's ref should be gone, deleted %v", docs.deleted)
	}

	secondRefs := DocumentRefs{IDProofFront: "uploads/idProofFront-2", LawDegree: "uploads/lawDegree-2"}
	if _, err := svc.Register(context.Background(), "trace-2", form, secondRefs); err != nil {
		t.Fatalf("retry should succeed: %v", err)
	}
	if len(store.users) != 1 || len(store.advocates) != 1 {
		t.Fatalf("expected exactly one account and profile, got %d/%d", len(store.users), len(store.advocates))
	}
	if len(docs.deleted) != 1 {
		t.Fatalf("second attempt's refs must be retained, deleted %v", docs.deleted)
	}
}

func TestRegisterUnknownRoleBlockMismatch(t *testing.T) {
	_, _, _, svc := newTestRegistration(t)
	form := advocateForm()
	form.Advocate = nil

	_, err := svc.Register(context.Background(), "trace-1", form, advocateRefs())
	if !IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
