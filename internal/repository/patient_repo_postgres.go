package repository

import (
	"context"
	"database/sql"

	"github.com/vitalapp/vitalapp-api/internal/models"
)

type PostgresPatientRepo struct {
	DB *sql.DB
}

func NewPostgresPatientRepo(db *sql.DB) *PostgresPatientRepo {
	return &PostgresPatientRepo{DB: db}
}

func (r *PostgresPatientRepo) List(ctx context.Context) ([]models.Patient, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, email, password, phone
		FROM tbl_patient
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	patients := make([]models.Patient, 0)
	for rows.Next() {
		var p models.Patient
		if err := rows.Scan(&p.ID, &p.Name, &p.Email, &p.Password, &p.Phone); err != nil {
			return nil, err
		}
		patients = append(patients, p)
	}
	return patients, rows.Err()
}

func (r *PostgresPatientRepo) GetByID(ctx context.Context, id int64) (*models.Patient, error) {
	p := &models.Patient{}
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, email, password, phone
		FROM tbl_patient
		WHERE id=$1
	`, id).Scan(&p.ID, &p.Name, &p.Email, &p.Password, &p.Phone)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PostgresPatientRepo) FindByEmail(ctx context.Context, email string) (*models.Patient, error) {
	p := &models.Patient{}
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, email, password, phone
		FROM tbl_patient
		WHERE email=$1
	`, email).Scan(&p.ID, &p.Name, &p.Email, &p.Password, &p.Phone)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PostgresPatientRepo) Insert(ctx context.Context, patient *models.Patient) error {
	var err error
	if patient.ID == 0 {
		err = r.DB.QueryRowContext(ctx, `
			INSERT INTO tbl_patient (name, email, password, phone)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, patient.Name, patient.Email, patient.Password, patient.Phone).Scan(&patient.ID)
	} else {
		_, err = r.DB.ExecContext(ctx, `
			INSERT INTO tbl_patient (id, name, email, password, phone)
			VALUES ($1, $2, $3, $4, $5)
		`, patient.ID, patient.Name, patient.Email, patient.Password, patient.Phone)
	}
	if isUniqueViolation(err) {
		return ErrDuplicateEmail
	}
	return err
}

func (r *PostgresPatientRepo) Update(ctx context.Context, patient *models.Patient) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE tbl_patient
		SET name=$1, email=$2, password=$3, phone=$4
		WHERE id=$5
	`, patient.Name, patient.Email, patient.Password, patient.Phone, patient.ID)
	if isUniqueViolation(err) {
		return ErrDuplicateEmail
	}
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresPatientRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM tbl_patient WHERE id=$1`, id)
	return err
}
