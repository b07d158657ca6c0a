package repository

import (
	"context"
	"database/sql"

	"github.com/vitalapp/vitalapp-api/internal/models"
)

type PostgresAdminRepo struct {
	DB *sql.DB
}

func NewPostgresAdminRepo(db *sql.DB) *PostgresAdminRepo {
	return &PostgresAdminRepo{DB: db}
}

func (r *PostgresAdminRepo) List(ctx context.Context) ([]models.Admin, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, email, password
		FROM tbl_admin
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	admins := make([]models.Admin, 0)
	for rows.Next() {
		var a models.Admin
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &a.Password); err != nil {
			return nil, err
		}
		admins = append(admins, a)
	}
	return admins, rows.Err()
}

func (r *PostgresAdminRepo) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	a := &models.Admin{}
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, email, password
		FROM tbl_admin
		WHERE id=$1
	`, id).Scan(&a.ID, &a.Name, &a.Email, &a.Password)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *PostgresAdminRepo) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	a := &models.Admin{}
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, email, password
		FROM tbl_admin
		WHERE email=$1
	`, email).Scan(&a.ID, &a.Name, &a.Email, &a.Password)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *PostgresAdminRepo) Insert(ctx context.Context, admin *models.Admin) error {
	var err error
	if admin.ID == 0 {
		err = r.DB.QueryRowContext(ctx, `
			INSERT INTO tbl_admin (name, email, password)
			VALUES ($1, $2, $3)
			RETURNING id
		`, admin.Name, admin.Email, admin.Password).Scan(&admin.ID)
	} else {
		_, err = r.DB.ExecContext(ctx, `
			INSERT INTO tbl_admin (id, name, email, password)
			VALUES ($1, $2, $3, $4)
		`, admin.ID, admin.Name, admin.Email, admin.Password)
	}
	if isUniqueViolation(err) {
		return ErrDuplicateEmail
	}
	return err
}

func (r *PostgresAdminRepo) Update(ctx context.Context, admin *models.Admin) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE tbl_admin
		SET name=$1, email=$2, password=$3
		WHERE id=$4
	`, admin.Name, admin.Email, admin.Password, admin.ID)
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

func (r *PostgresAdminRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM tbl_admin WHERE id=$1`, id)
	return err
}
