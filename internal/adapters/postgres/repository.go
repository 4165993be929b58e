package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/legal-connect/backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type AdvocateRepository interface {
	Create(ctx context.Context, profile *domain.AdvocateProfile) error
	FindByID(ctx context.Context, id string) (*domain.AdvocateProfile, error)
	FindByUserID(ctx context.Context, userID string) (*domain.AdvocateProfile, error)
	List(ctx context.Context) ([]domain.AdvocateProfile, error)
	Update(ctx context.Context, profile *domain.AdvocateProfile) error
}

type InternRepository interface {
	Create(ctx context.Context, profile *domain.InternProfile) error
	FindByID(ctx context.Context, id string) (*domain.InternProfile, error)
	FindByUserID(ctx context.Context, userID string) (*domain.InternProfile, error)
	List(ctx context.Context) ([]domain.InternProfile, error)
	Update(ctx context.Context, profile *domain.InternProfile) error
}

type ClientRepository interface {
	Create(ctx context.Context, profile *domain.ClientProfile) error
	FindByID(ctx context.Context, id string) (*domain.ClientProfile, error)
	FindByUserID(ctx context.Context, userID string) (*domain.ClientProfile, error)
	List(ctx context.Context) ([]domain.ClientProfile, error)
	Update(ctx context.Context, profile *domain.ClientProfile) error
}

// Store groups the repositories and runs callbacks inside one database
// transaction. Repositories obtained from the Store passed to the InTx
// callback are bound to that transaction.
type Store interface {
	Users() UserRepository
	Advocates() AdvocateRepository
	Interns() InternRepository
	Clients() ClientRepository
	InTx(ctx context.Context, fn func(s Store) error) error
}

type gormStore struct{ db *gorm.DB }

func NewStore(db *gorm.DB) Store { return &gormStore{db: db} }

func (s *gormStore) Users() UserRepository         { return &userRepo{db: s.db} }
func (s *gormStore) Advocates() AdvocateRepository { return &advocateRepo{db: s.db} }
func (s *gormStore) Interns() InternRepository     { return &internRepo{db: s.db} }
func (s *gormStore) Clients() ClientRepository     { return &clientRepo{db: s.db} }

func (s *gormStore) InTx(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}

type userRepo struct{ db *gorm.DB }

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) Update(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

type advocateRepo struct{ db *gorm.DB }

func (r *advocateRepo) Create(ctx context.Context, profile *domain.AdvocateProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *advocateRepo) FindByID(ctx context.Context, id string) (*domain.AdvocateProfile, error) {
	var profile domain.AdvocateProfile
	if err := r.db.WithContext(ctx).Preload("User").Where("id = ?", id).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *advocateRepo) FindByUserID(ctx context.Context, userID string) (*domain.AdvocateProfile, error) {
	var profile domain.AdvocateProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *advocateRepo) List(ctx context.Context) ([]domain.AdvocateProfile, error) {
	var profiles []domain.AdvocateProfile
	if err := r.db.WithContext(ctx).Preload("User").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *advocateRepo) Update(ctx context.Context, profile *domain.AdvocateProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

type internRepo struct{ db *gorm.DB }

func (r *internRepo) Create(ctx context.Context, profile *domain.InternProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *internRepo) FindByID(ctx context.Context, id string) (*domain.InternProfile, error) {
	var profile domain.InternProfile
	if err := r.db.WithContext(ctx).Preload("User").Where("id = ?", id).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *internRepo) FindByUserID(ctx context.Context, userID string) (*domain.InternProfile, error) {
	var profile domain.InternProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *internRepo) List(ctx context.Context) ([]domain.InternProfile, error) {
	var profiles []domain.InternProfile
	if err := r.db.WithContext(ctx).Preload("User").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *internRepo) Update(ctx context.Context, profile *domain.InternProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

type clientRepo struct{ db *gorm.DB }

func (r *clientRepo) Create(ctx context.Context, profile *domain.ClientProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *clientRepo) FindByID(ctx context.Context, id string) (*domain.ClientProfile, error) {
	var profile domain.ClientProfile
	if err := r.db.WithContext(ctx).Preload("User").Where("id = ?", id).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *clientRepo) FindByUserID(ctx context.Context, userID string) (*domain.ClientProfile, error) {
	var profile domain.ClientProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *clientRepo) List(ctx context.Context) ([]domain.ClientProfile, error) {
	var profiles []domain.ClientProfile
	if err := r.db.WithContext(ctx).Preload("User").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *clientRepo) Update(ctx context.Context, profile *domain.ClientProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}
