package repository

import (
	"context"
	"database/sql"

	"github.com/vitalapp/vitalapp-api/internal/models"
)

type PostgresDoctorRepo struct {
	DB *sql.DB
}

func NewPostgresDoctorRepo(db *sql.DB) *PostgresDoctorRepo {
	return &PostgresDoctorRepo{DB: db}
}

func (r *PostgresDoctorRepo) List(ctx context.Context) ([]models.Doctor, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, email, password, phone_number, specialty
		FROM tbl_doctor
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	doctors := make([]models.Doctor, 0)
	for rows.Next() {
		var d models.Doctor
		if err := rows.Scan(&d.ID, &d.Name, &d.Email, &d.Password, &d.PhoneNumber, &d.Specialty); err != nil {
			return nil, err
		}
		doctors = append(doctors, d)
	}
	return doctors, rows.Err()
}

func (r *PostgresDoctorRepo) GetByID(ctx context.Context, id int64) (*models.Doctor, error) {
	d := &models.Doctor{}
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, email, password, phone_number, specialty
		FROM tbl_doctor
		WHERE id=$1
	`, id).Scan(&d.ID, &d.Name, &d.Email, &d.Password, &d.PhoneNumber, &d.Specialty)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *PostgresDoctorRepo) FindByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	d := &models.Doctor{}
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, email, password, phone_number, specialty
		FROM tbl_doctor
		WHERE email=$1
	`, email).Scan(&d.ID, &d.Name, &d.Email, &d.Password, &d.PhoneNumber, &d.Specialty)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *PostgresDoctorRepo) Insert(ctx context.Context, doctor *models.Doctor) error {
	var err error
	if doctor.ID == 0 {
		err = r.DB.QueryRowContext(ctx, `
			INSERT INTO tbl_doctor (name, email, password, phone_number, specialty)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, doctor.Name, doctor.Email, doctor.Password, doctor.PhoneNumber, doctor.Specialty).Scan(&doctor.ID)
	} else {
		_, err = r.DB.ExecContext(ctx, `
			INSERT INTO tbl_doctor (id, name, email, password, phone_number, specialty)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, doctor.ID, doctor.Name, doctor.Email, doctor.Password, doctor.PhoneNumber, doctor.Specialty)
	}
	if isUniqueViolation(err) {
		return ErrDuplicateEmail
	}
	return err
}

func (r *PostgresDoctorRepo) Update(ctx context.Context, doctor *models.Doctor) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE tbl_doctor
		SET name=$1, email=$2, password=$3, phone_number=$4, specialty=$5
		WHERE id=$6
	`, doctor.Name, doctor.Email, doctor.Password, doctor.PhoneNumber, doctor.Specialty, doctor.ID)
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

func (r *PostgresDoctorRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM tbl_doctor WHERE id=$1`, id)
	return err
}
