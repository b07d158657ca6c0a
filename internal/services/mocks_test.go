package services

import (
	"context"
	"errors"

	"github.com/vitalapp/vitalapp-api/internal/models"
	"github.com/vitalapp/vitalapp-api/internal/repository"
)

// Compile-time checks that the mocks satisfy the repository contracts.
var (
	_ repository.AdminRepository   = (*MockAdminRepo)(nil)
	_ repository.DoctorRepository  = (*MockDoctorRepo)(nil)
	_ repository.PatientRepository = (*MockPatientRepo)(nil)
)

type MockAdminRepo struct {
	ListFunc        func(ctx context.Context) ([]models.Admin, error)
	GetByIDFunc     func(ctx context.Context, id int64) (*models.Admin, error)
	FindByEmailFunc func(ctx context.Context, email string) (*models.Admin, error)
	InsertFunc      func(ctx context.Context, admin *models.Admin) error
	UpdateFunc      func(ctx context.Context, admin *models.Admin) error
	DeleteFunc      func(ctx context.Context, id int64) error
}

func (m *MockAdminRepo) List(ctx context.Context) ([]models.Admin, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockAdminRepo) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *MockAdminRepo) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, repository.ErrNotFound
}

func (m *MockAdminRepo) Insert(ctx context.Context, admin *models.Admin) error {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, admin)
	}
	return errors.New("InsertFunc not implemented in mock")
}

func (m *MockAdminRepo) Update(ctx context.Context, admin *models.Admin) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, admin)
	}
	return errors.New("UpdateFunc not implemented in mock")
}

func (m *MockAdminRepo) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type MockDoctorRepo struct {
	ListFunc        func(ctx context.Context) ([]models.Doctor, error)
	GetByIDFunc     func(ctx context.Context, id int64) (*models.Doctor, error)
	FindByEmailFunc func(ctx context.Context, email string) (*models.Doctor, error)
	InsertFunc      func(ctx context.Context, doctor *models.Doctor) error
	UpdateFunc      func(ctx context.Context, doctor *models.Doctor) error
	DeleteFunc      func(ctx context.Context, id int64) error
}

func (m *MockDoctorRepo) List(ctx context.Context) ([]models.Doctor, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockDoctorRepo) GetByID(ctx context.Context, id int64) (*models.Doctor, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *MockDoctorRepo) FindByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, repository.ErrNotFound
}

func (m *MockDoctorRepo) Insert(ctx context.Context, doctor *models.Doctor) error {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, doctor)
	}
	return errors.New("InsertFunc not implemented in mock")
}

func (m *MockDoctorRepo) Update(ctx context.Context, doctor *models.Doctor) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, doctor)
	}
	return errors.New("UpdateFunc not implemented in mock")
}

func (m *MockDoctorRepo) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type MockPatientRepo struct {
	ListFunc        func(ctx context.Context) ([]models.Patient, error)
	GetByIDFunc     func(ctx context.Context, id int64) (*models.Patient, error)
	FindByEmailFunc func(ctx context.Context, email string) (*models.Patient, error)
	InsertFunc      func(ctx context.Context, patient *models.Patient) error
	UpdateFunc      func(ctx context.Context, patient *models.Patient) error
	DeleteFunc      func(ctx context.Context, id int64) error
}

func (m *MockPatientRepo) List(ctx context.Context) ([]models.Patient, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockPatientRepo) GetByID(ctx context.Context, id int64) (*models.Patient, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *MockPatientRepo) FindByEmail(ctx context.Context, email string) (*models.Patient, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, repository.ErrNotFound
}

func (m *MockPatientRepo) Insert(ctx context.Context, patient *models.Patient) error {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, patient)
	}
	return errors.New("InsertFunc not implemented in mock")
}

func (m *MockPatientRepo) Update(ctx context.Context, patient *models.Patient) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, patient)
	}
	return errors.New("UpdateFunc not implemented in mock")
}

func (m *MockPatientRepo) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}
