package handlers

import (
	"context"

	"github.com/vitalapp/vitalapp-api/internal/models"
	"github.com/vitalapp/vitalapp-api/internal/repository"
)

// In-memory repositories backing the HTTP tests. They follow the same id and
// not-found semantics as the real backends.

var (
	_ repository.AdminRepository   = (*fakeAdminRepo)(nil)
	_ repository.DoctorRepository  = (*fakeDoctorRepo)(nil)
	_ repository.PatientRepository = (*fakePatientRepo)(nil)
)

type fakeAdminRepo struct {
	rows   map[int64]models.Admin
	nextID int64
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{rows: make(map[int64]models.Admin)}
}

func (r *fakeAdminRepo) List(ctx context.Context) ([]models.Admin, error) {
	out := make([]models.Admin, 0, len(r.rows))
	for _, a := range r.rows {
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeAdminRepo) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	a, ok := r.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &a, nil
}

func (r *fakeAdminRepo) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	for _, a := range r.rows {
		if a.Email == email {
			a := a
			return &a, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeAdminRepo) Insert(ctx context.Context, admin *models.Admin) error {
	for _, a := range r.rows {
		if a.Email == admin.Email {
			return repository.ErrDuplicateEmail
		}
	}
	if admin.ID == 0 {
		r.nextID++
		admin.ID = r.nextID
	}
	r.rows[admin.ID] = *admin
	return nil
}

func (r *fakeAdminRepo) Update(ctx context.Context, admin *models.Admin) error {
	if _, ok := r.rows[admin.ID]; !ok {
		return repository.ErrNotFound
	}
	r.rows[admin.ID] = *admin
	return nil
}

func (r *fakeAdminRepo) Delete(ctx context.Context, id int64) error {
	delete(r.rows, id)
	return nil
}

type fakeDoctorRepo struct {
	rows   map[int64]models.Doctor
	nextID int64
}

func newFakeDoctorRepo() *fakeDoctorRepo {
	return &fakeDoctorRepo{rows: make(map[int64]models.Doctor)}
}

func (r *fakeDoctorRepo) List(ctx context.Context) ([]models.Doctor, error) {
	out := make([]models.Doctor, 0, len(r.rows))
	for _, d := range r.rows {
		out = append(out, d)
	}
	return out, nil
}

func (r *fakeDoctorRepo) GetByID(ctx context.Context, id int64) (*models.Doctor, error) {
	d, ok := r.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &d, nil
}

func (r *fakeDoctorRepo) FindByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	for _, d := range r.rows {
		if d.Email == email {
			d := d
			return &d, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeDoctorRepo) Insert(ctx context.Context, doctor *models.Doctor) error {
	for _, d := range r.rows {
		if d.Email == doctor.Email {
			return repository.ErrDuplicateEmail
		}
	}
	if doctor.ID == 0 {
		r.nextID++
		doctor.ID = r.nextID
	}
	r.rows[doctor.ID] = *doctor
	return nil
}

func (r *fakeDoctorRepo) Update(ctx context.Context, doctor *models.Doctor) error {
	if _, ok := r.rows[doctor.ID]; !ok {
		return repository.ErrNotFound
	}
	r.rows[doctor.ID] = *doctor
	return nil
}

func (r *fakeDoctorRepo) Delete(ctx context.Context, id int64) error {
	delete(r.rows, id)
	return nil
}

type fakePatientRepo struct {
	rows   map[int64]models.Patient
	nextID int64
}

func newFakePatientRepo() *fakePatientRepo {
	return &fakePatientRepo{rows: make(map[int64]models.Patient)}
}

func (r *fakePatientRepo) List(ctx context.Context) ([]models.Patient, error) {
	out := make([]models.Patient, 0, len(r.rows))
	for _, p := range r.rows {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePatientRepo) GetByID(ctx context.Context, id int64) (*models.Patient, error) {
	p, ok := r.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r *fakePatientRepo) FindByEmail(ctx context.Context, email string) (*models.Patient, error) {
	for _, p := range r.rows {
		if p.Email == email {
			p := p
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakePatientRepo) Insert(ctx context.Context, patient *models.Patient) error {
	for _, p := range r.rows {
		if p.Email == patient.Email {
			return repository.ErrDuplicateEmail
		}
	}
	if patient.ID == 0 {
		r.nextID++
		patient.ID = r.nextID
	}
	r.rows[patient.ID] = *patient
	return nil
}

func (r *fakePatientRepo) Update(ctx context.Context, patient *models.Patient) error {
	if _, ok := r.rows[patient.ID]; !ok {
		return repository.ErrNotFound
	}
	r.rows[patient.ID] = *patient
	return nil
}

func (r *fakePatientRepo) Delete(ctx context.Context, id int64) error {
	delete(r.rows, id)
	return nil
}
