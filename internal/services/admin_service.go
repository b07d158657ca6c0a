package services

import (
	"context"
	"errors"

	"github.com/vitalapp/vitalapp-api/internal/auth"
	"github.com/vitalapp/vitalapp-api/internal/models"
	"github.com/vitalapp/vitalapp-api/internal/repository"
)

// AdminService wraps the admin repository with the password hashing rules.
// Plaintext never reaches the repository layer.
type AdminService struct {
	repo   repository.AdminRepository
	hasher auth.PasswordHasher
}

func NewAdminService(repo repository.AdminRepository, hasher auth.PasswordHasher) *AdminService {
	return &AdminService{repo: repo, hasher: hasher}
}

func (s *AdminService) List(ctx context.Context) ([]models.Admin, error) {
	return s.repo.List(ctx)
}

func (s *AdminService) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *AdminService) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	return s.repo.FindByEmail(ctx, email)
}

// SaveOrUpdate inserts when the id is unset, otherwise rewrites the existing
// row. A blank password on update keeps the stored hash.
func (s *AdminService) SaveOrUpdate(ctx context.Context, admin *models.Admin) error {
	hashed, err := s.hasher.Hash(admin.Password)
	if err != nil {
		return err
	}
	admin.Password = hashed

	if admin.ID == 0 {
		return s.repo.Insert(ctx, admin)
	}

	existing, err := s.repo.GetByID(ctx, admin.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return s.repo.Insert(ctx, admin)
	}
	if err != nil {
		return err
	}
	if admin.Password == "" {
		admin.Password = existing.Password
	}
	return s.repo.Update(ctx, admin)
}

// UpdateByID copies name and email onto the stored row, replacing the
// password only when a non-blank one was provided. When no row exists for id,
// the incoming account is inserted with that id.
func (s *AdminService) UpdateByID(ctx context.Context, id int64, in *models.Admin) (*models.Admin, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		in.ID = id
		if in.Password != "" {
			if in.Password, err = s.hasher.Hash(in.Password); err != nil {
				return nil, err
			}
		}
		if err := s.repo.Insert(ctx, in); err != nil {
			return nil, err
		}
		return in, nil
	}
	if err != nil {
		return nil, err
	}

	existing.Name = in.Name
	existing.Email = in.Email
	if in.Password != "" {
		if existing.Password, err = s.hasher.Hash(in.Password); err != nil {
			return nil, err
		}
	}
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *AdminService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
