package services

import (
	"context"
	"errors"

	"github.com/vitalapp/vitalapp-api/internal/auth"
	"github.com/vitalapp/vitalapp-api/internal/models"
	"github.com/vitalapp/vitalapp-api/internal/repository"
)

// ErrAccountNotFound is the single login failure: no table holds an account
// with that email and a matching password. Callers must not learn which of
// the two was wrong.
var ErrAccountNotFound = errors.New("no account matches the given credentials")

// LoginResult is what a successful login hands back to the client.
type LoginResult struct {
	Token string `json:"token"`
	Role  string `json:"role"`
	Email string `json:"email"`
	ID    int64  `json:"id"`
}

// LoginService authenticates against the three account tables in a fixed
// precedence: Admin, then Doctor, then Patient. When the same email exists in
// several tables, the first verified match wins.
type LoginService struct {
	admins   repository.AdminRepository
	doctors  repository.DoctorRepository
	patients repository.PatientRepository
	hasher   auth.PasswordHasher
	tokens   *auth.TokenService
}

func NewLoginService(
	admins repository.AdminRepository,
	doctors repository.DoctorRepository,
	patients repository.PatientRepository,
	hasher auth.PasswordHasher,
	tokens *auth.TokenService,
) *LoginService {
	return &LoginService{
		admins:   admins,
		doctors:  doctors,
		patients: patients,
		hasher:   hasher,
		tokens:   tokens,
	}
}

func (s *LoginService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if a, err := s.admins.FindByEmail(ctx, email); err == nil {
		if s.hasher.Verify(password, a.Password) {
			return s.issue(a.ID, email, models.RoleAdmin)
		}
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if d, err := s.doctors.FindByEmail(ctx, email); err == nil {
		if s.hasher.Verify(password, d.Password) {
			return s.issue(d.ID, email, models.RoleDoctor)
		}
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if p, err := s.patients.FindByEmail(ctx, email); err == nil {
		if s.hasher.Verify(password, p.Password) {
			return s.issue(p.ID, email, models.RolePatient)
		}
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	return nil, ErrAccountNotFound
}

func (s *LoginService) issue(id int64, email, role string) (*LoginResult, error) {
	token, err := s.tokens.Issue(id, email, role)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, Role: role, Email: email, ID: id}, nil
}
