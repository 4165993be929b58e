package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/legal-connect/backend/internal/domain"
	pkglog "github.com/legal-connect/backend/pkg/log"
)

func seedIntern(store *mockStore) *domain.InternProfile {
	profile := &domain.InternProfile{
		ID:          "intern-1",
		UserID:      "user-1",
		SchoolName:  "NLU Delhi",
		CurrentYear: 3,
	}
	store.interns[profile.ID] = profile
	return profile
}

func TestAddAchievement(t *testing.T) {
	store := newMockStore()
	profile := seedIntern(store)
	svc := NewInternService(pkglog.New("test"), store)

	err := svc.AddAchievement(context.Background(), profile.UserID, domain.Achievement{
		Title:       "Moot court winner",
		Description: "National rounds",
		Date:        time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("add achievement: %v", err)
	}
	if len(profile.Achievements) != 1 {
		t.Fatalf("expected 1 achievement, got %d", len(profile.Achievements))
	}

	if err := svc.AddAchievement(context.Background(), profile.UserID, domain.Achievement{}); !IsValidation(err) {
		t.Fatalf("expected ValidationError for empty title, got %v", err)
	}
}

func TestAddCertification(t *testing.T) {
	store := newMockStore()
	profile := seedIntern(store)
	svc := NewInternService(pkglog.New("test"), store)

	err := svc.AddCertification(context.Background(), profile.UserID, domain.Certification{
		Name:   "Cyber law basics",
		Issuer: "NPTEL",
	})
	if err != nil {
		t.Fatalf("add certification: %v", err)
	}
	if len(profile.Certifications) != 1 {
		t.Fatalf("expected 1 certification, got %d", len(profile.Certifications))
	}
}

func TestUpdateInternProfileValidatesYearAndInterests(t *testing.T) {
	store := newMockStore()
	profile := seedIntern(store)
	svc := NewInternService(pkglog.New("test"), store)

	if _, err := svc.UpdateProfile(context.Background(), profile.UserID, InternUpdate{CurrentYear: 7}); !IsValidation(err) {
		t.Fatalf("expected ValidationError for year, got %v", err)
	}
	if _, err := svc.UpdateProfile(context.Background(), profile.UserID, InternUpdate{Interests: []domain.Specialization{domain.SpecLabor}}); !IsValidation(err) {
		t.Fatalf("expected ValidationError for labor interest, got %v", err)
	}

	updated, err := svc.UpdateProfile(context.Background(), profile.UserID, InternUpdate{CurrentYear: 4, Skills: []string{"drafting"}})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.CurrentYear != 4 || updated.SchoolName != "NLU Delhi" {
		t.Fatalf("unexpected profile %+v", updated)
	}
}
