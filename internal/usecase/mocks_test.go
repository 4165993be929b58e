package usecase

import (
	"context"
	"fmt"
	"mime/multipart"

	"gorm.io/gorm"

	repo "github.com/legal-connect/backend/internal/adapters/postgres"
	"github.com/legal-connect/backend/internal/adapters/storage"
	"github.com/legal-connect/backend/internal/domain"
)

var _ storage.Store = (*mockDocStore)(nil)

// mockStore is an in-memory repo.Store. InTx snapshots the maps so a
// failed callback rolls back like a real transaction.
type mockStore struct {
	users     map[string]*domain.User
	advocates map[string]*domain.AdvocateProfile
	interns   map[string]*domain.InternProfile
	clients   map[string]*domain.ClientProfile
	nextID    int

	userCreateErr error
}

func newMockStore() *mockStore {
	return &mockStore{
		users:     map[string]*domain.User{},
		advocates: map[string]*domain.AdvocateProfile{},
		interns:   map[string]*domain.InternProfile{},
		clients:   map[string]*domain.ClientProfile{},
	}
}

var _ repo.Store = (*mockStore)(nil)

func (s *mockStore) Users() repo.UserRepository         { return &mockUserRepo{s} }
func (s *mockStore) Advocates() repo.AdvocateRepository { return &mockAdvocateRepo{s} }
func (s *mockStore) Interns() repo.InternRepository     { return &mockInternRepo{s} }
func (s *mockStore) Clients() repo.ClientRepository     { return &mockClientRepo{s} }

func (s *mockStore) InTx(_ context.Context, fn func(tx repo.Store) error) error {
	users, advocates, interns, clients := cloneMap(s.users), cloneMap(s.advocates), cloneMap(s.interns), cloneMap(s.clients)
	if err := fn(s); err != nil {
		s.users, s.advocates, s.interns, s.clients = users, advocates, interns, clients
		return err
	}
	return nil
}

func cloneMap[V any](m map[string]V) map[string]V {
	out := make(map[string]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s *mockStore) id(prefix string) string {
	s.nextID++
	return fmt.Sprintf("%s-%d", prefix, s.nextID)
}

type mockUserRepo struct{ s *mockStore }

func (r *mockUserRepo) Create(_ context.Context, user *domain.User) error {
	if r.s.userCreateErr != nil {
		return r.s.userCreateErr
	}
	for _, u := range r.s.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if user.ID == "" {
		user.ID = r.s.id("user")
	}
	r.s.users[user.ID] = user
	return nil
}

func (r *mockUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.s.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockUserRepo) Update(_ context.Context, user *domain.User) error {
	r.s.users[user.ID] = user
	return nil
}

type mockAdvocateRepo struct{ s *mockStore }

func (r *mockAdvocateRepo) Create(_ context.Context, profile *domain.AdvocateProfile) error {
	for _, p := range r.s.advocates {
		if p.BarCouncilID == profile.BarCouncilID || p.UserID == profile.UserID {
			return gorm.ErrDuplicatedKey
		}
	}
	if profile.ID == "" {
		profile.ID = r.s.id("advocate")
	}
	r.s.advocates[profile.ID] = profile
	return nil
}

func (r *mockAdvocateRepo) FindByID(_ context.Context, id string) (*domain.AdvocateProfile, error) {
	if p, ok := r.s.advocates[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockAdvocateRepo) FindByUserID(_ context.Context, userID string) (*domain.AdvocateProfile, error) {
	for _, p := range r.s.advocates {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockAdvocateRepo) List(_ context.Context) ([]domain.AdvocateProfile, error) {
	var out []domain.AdvocateProfile
	for _, p := range r.s.advocates {
		out = append(out, *p)
	}
	return out, nil
}

func (r *mockAdvocateRepo) Update(_ context.Context, profile *domain.AdvocateProfile) error {
	r.s.advocates[profile.ID] = profile
	return nil
}

type mockInternRepo struct{ s *mockStore }

func (r *mockInternRepo) Create(_ context.Context, profile *domain.InternProfile) error {
	for _, p := range r.s.interns {
		if p.UserID == profile.UserID {
			return gorm.ErrDuplicatedKey
		}
	}
	if profile.ID == "" {
		profile.ID = r.s.id("intern")
	}
	r.s.interns[profile.ID] = profile
	return nil
}

func (r *mockInternRepo) FindByID(_ context.Context, id string) (*domain.InternProfile, error) {
	if p, ok := r.s.interns[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockInternRepo) FindByUserID(_ context.Context, userID string) (*domain.InternProfile, error) {
	for _, p := range r.s.interns {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockInternRepo) List(_ context.Context) ([]domain.InternProfile, error) {
	var out []domain.InternProfile
	for _, p := range r.s.interns {
		out = append(out, *p)
	}
	return out, nil
}

func (r *mockInternRepo) Update(_ context.Context, profile *domain.InternProfile) error {
	r.s.interns[profile.ID] = profile
	return nil
}

type mockClientRepo struct{ s *mockStore }

func (r *mockClientRepo) Create(_ context.Context, profile *domain.ClientProfile) error {
	for _, p := range r.s.clients {
		if p.UserID == profile.UserID {
			return gorm.ErrDuplicatedKey
		}
	}
	if profile.ID == "" {
		profile.ID = r.s.id("client")
	}
	r.s.clients[profile.ID] = profile
	return nil
}

func (r *mockClientRepo) FindByID(_ context.Context, id string) (*domain.ClientProfile, error) {
	if p, ok := r.s.clients[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockClientRepo) FindByUserID(_ context.Context, userID string) (*domain.ClientProfile, error) {
	for _, p := range r.s.clients {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockClientRepo) List(_ context.Context) ([]domain.ClientProfile, error) {
	var out []domain.ClientProfile
	for _, p := range r.s.clients {
		out = append(out, *p)
	}
	return out, nil
}

func (r *mockClientRepo) Update(_ context.Context, profile *domain.ClientProfile) error {
	r.s.clients[profile.ID] = profile
	return nil
}

// mockDocStore records saves and deletes synchronously.
type mockDocStore struct {
	saved   []string
	deleted []string
}

func (d *mockDocStore) Save(slot string, _ *multipart.FileHeader) (string, error) {
	ref := fmt.Sprintf("uploads/%s-%d", slot, len(d.saved)+1)
	d.saved = append(d.saved, ref)
	return ref, nil
}

func (d *mockDocStore) Delete(ref string) error {
	d.deleted = append(d.deleted, ref)
	return nil
}

func (d *mockDocStore) Cleanup(refs []string) {
	for _, ref := range refs {
		_ = d.Delete(ref)
	}
}

type mockPublisher struct {
	events []string
}

func (p *mockPublisher) UserRegistered(_ context.Context, userID, _, _ string) error {
	p.events = append(p.events, userID)
	return nil
}
