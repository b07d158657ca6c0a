package repository

import (
	"context"
	"errors"

	"github.com/vitalapp/vitalapp-api/internal/models"
)

// ErrNotFound is returned when a lookup matches no account.
var ErrNotFound = errors.New("account not found")

// ErrDuplicateEmail is returned when an insert or update violates the unique
// email constraint of an account table.
var ErrDuplicateEmail = errors.New("email already exists")

// AdminRepository is plain row CRUD over the admin table. Hashing and the
// partial-update rules live one layer up, in the account services.
type AdminRepository interface {
	List(ctx context.Context) ([]models.Admin, error)
	GetByID(ctx context.Context, id int64) (*models.Admin, error)
	FindByEmail(ctx context.Context, email string) (*models.Admin, error)
	// Insert stores a new row. With ID zero the backend assigns the next
	// identity value and writes it back; a non-zero ID is kept as given.
	Insert(ctx context.Context, admin *models.Admin) error
	// Update rewrites the full row by ID; ErrNotFound when no row matches.
	Update(ctx context.Context, admin *models.Admin) error
	Delete(ctx context.Context, id int64) error
}

type DoctorRepository interface {
	List(ctx context.Context) ([]models.Doctor, error)
	GetByID(ctx context.Context, id int64) (*models.Doctor, error)
	FindByEmail(ctx context.Context, email string) (*models.Doctor, error)
	Insert(ctx context.Context, doctor *models.Doctor) error
	Update(ctx context.Context, doctor *models.Doctor) error
	Delete(ctx context.Context, id int64) error
}

type PatientRepository interface {
	List(ctx context.Context) ([]models.Patient, error)
	GetByID(ctx context.Context, id int64) (*models.Patient, error)
	FindByEmail(ctx context.Context, email string) (*models.Patient, error)
	Insert(ctx context.Context, patient *models.Patient) error
	Update(ctx context.Context, patient *models.Patient) error
	Delete(ctx context.Context, id int64) error
}
