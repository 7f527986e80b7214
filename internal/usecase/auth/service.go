package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"talent-rank/internal/domain/recruiter"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInternal               = errors.New("internal error")
)

type RegisterInput struct {
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type Service struct {
	recruiters recruiter.Repository
}

func NewService(recruiters recruiter.Repository) *Service {
	return &Service{recruiters: recruiters}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (recruiter.Recruiter, error) {
	email := normalizeEmail(in.Email)
	if email == "" {
		return recruiter.Recruiter{}, ErrInvalidInput
	}
	if !isValidPassword(in.Password) {
		return recruiter.Recruiter{}, ErrInvalidInput
	}

	exists, err := s.recruiters.ExistsByEmail(ctx, email)
	if err != nil {
		return recruiter.Recruiter{}, ErrInternal
	}
	if exists {
		return recruiter.Recruiter{}, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return recruiter.Recruiter{}, ErrInternal
	}

	rec := recruiter.Recruiter{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := s.recruiters.Create(ctx, rec); err != nil {
		exists, exErr := s.recruiters.ExistsByEmail(ctx, email)
		if exErr == nil && exists {
			return recruiter.Recruiter{}, ErrEmailAlreadyRegistered
		}
		return recruiter.Recruiter{}, ErrInternal
	}

	created, err := s.recruiters.GetByID(ctx, rec.ID)
	if err != nil {
		return recruiter.Recruiter{}, ErrInternal
	}
	return sanitize(created), nil
}

func (s *Service) Login(ctx context.Context, in LoginInput) (recruiter.Recruiter, error) {
	email := normalizeEmail(in.Email)
	if email == "" {
		return recruiter.Recruiter{}, ErrInvalidCredentials
	}
	if in.Password == "" {
		return recruiter.Recruiter{}, ErrInvalidCredentials
	}

	rec, err := s.recruiters.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, recruiter.ErrNotFound) {
			return recruiter.Recruiter{}, ErrInvalidCredentials
		}
		return recruiter.Recruiter{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(in.Password)); err != nil {
		return recruiter.Recruiter{}, ErrInvalidCredentials
	}

	return sanitize(rec), nil
}

func normalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}
	return strings.ToLower(email)
}

func isValidPassword(pw string) bool {
	return len(strings.TrimSpace(pw)) >= 8
}

func sanitize(r recruiter.Recruiter) recruiter.Recruiter {
	r.PasswordHash = ""
	return r
}
