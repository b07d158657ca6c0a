package services

import (
	"context"
	"errors"

	"github.com/vitalapp/vitalapp-api/internal/auth"
	"github.com/vitalapp/vitalapp-api/internal/models"
	"github.com/vitalapp/vitalapp-api/internal/repository"
)

type DoctorService struct {
	repo   repository.DoctorRepository
	hasher auth.PasswordHasher
}

func NewDoctorService(repo repository.DoctorRepository, hasher auth.PasswordHasher) *DoctorService {
	return &DoctorService{repo: repo, hasher: hasher}
}

func (s *DoctorService) List(ctx context.Context) ([]models.Doctor, error) {
	return s.repo.List(ctx)
}

func (s *DoctorService) GetByID(ctx context.Context, id int64) (*models.Doctor, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *DoctorService) FindByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	return s.repo.FindByEmail(ctx, email)
}

func (s *DoctorService) SaveOrUpdate(ctx context.Context, doctor *models.Doctor) error {
	hashed, err := s.hasher.Hash(doctor.Password)
	if err != nil {
		return err
	}
	doctor.Password = hashed

	if doctor.ID == 0 {
		return s.repo.Insert(ctx, doctor)
	}

	existing, err := s.repo.GetByID(ctx, doctor.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return s.repo.Insert(ctx, doctor)
	}
	if err != nil {
		return err
	}
	if doctor.Password == "" {
		doctor.Password = existing.Password
	}
	return s.repo.Update(ctx, doctor)
}

// UpdateByID copies name and email, replaces the password only when a
// non-blank one was provided, and leaves phoneNumber and specialty untouched.
// An id miss inserts the incoming doctor under that id.
func (s *DoctorService) UpdateByID(ctx context.Context, id int64, in *models.Doctor) (*models.Doctor, error) {
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

func (s *DoctorService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
