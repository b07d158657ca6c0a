package services

import (
	"context"
	"errors"

	"github.com/vitalapp/vitalapp-api/internal/auth"
	"github.com/vitalapp/vitalapp-api/internal/models"
	"github.com/vitalapp/vitalapp-api/internal/repository"
)

type PatientService struct {
	repo   repository.PatientRepository
	hasher auth.PasswordHasher
}

func NewPatientService(repo repository.PatientRepository, hasher auth.PasswordHasher) *PatientService {
	return &PatientService{repo: repo, hasher: hasher}
}

func (s *PatientService) List(ctx context.Context) ([]models.Patient, error) {
	return s.repo.List(ctx)
}

func (s *PatientService) GetByID(ctx context.Context, id int64) (*models.Patient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *PatientService) FindByEmail(ctx context.Context, email string) (*models.Patient, error) {
	return s.repo.FindByEmail(ctx, email)
}

func (s *PatientService) SaveOrUpdate(ctx context.Context, patient *models.Patient) error {
	hashed, err := s.hasher.Hash(patient.Password)
	if err != nil {
		return err
	}
	patient.Password = hashed

	if patient.ID == 0 {
		return s.repo.Insert(ctx, patient)
	}

	existing, err := s.repo.GetByID(ctx, patient.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return s.repo.Insert(ctx, patient)
	}
	if err != nil {
		return err
	}
	if patient.Password == "" {
		patient.Password = existing.Password
	}
	return s.repo.Update(ctx, patient)
}

// UpdateByID copies name and email, replaces the password only when a
// non-blank one was provided, and leaves phone untouched. An id miss inserts
// the incoming patient under that id.
func (s *PatientService) UpdateByID(ctx context.Context, id int64, in *models.Patient) (*models.Patient, error) {
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

func (s *PatientService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
