package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"staffing-tool/internal/repository"
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
	accounts repository.AccountRepository
}

func NewService(accounts repository.AccountRepository) *Service {
	return &Service{accounts: accounts}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (repository.Account, error) {
	email := normalizeEmail(in.Email)
	if email == "" {
		return repository.Account{}, ErrInvalidInput
	}
	if !isValidPassword(in.Password) {
		return repository.Account{}, ErrInvalidInput
	}

	exists, err := s.accounts.ExistsByEmail(ctx, email)
	if err != nil {
		return repository.Account{}, ErrInternal
	}
	if exists {
		return repository.Account{}, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return repository.Account{}, ErrInternal
	}

	a := repository.Account{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := s.accounts.Create(ctx, a); err != nil {
		// A concurrent register may have claimed the email between the
		// existence check and the insert.
		exists, exErr := s.accounts.ExistsByEmail(ctx, email)
		if exErr == nil && exists {
			return repository.Account{}, ErrEmailAlreadyRegistered
		}
		return repository.Account{}, ErrInternal
	}

	created, err := s.accounts.GetByID(ctx, a.ID)
	if err != nil {
		return repository.Account{}, ErrInternal
	}
	return sanitizeAccount(created), nil
}

func (s *Service) Login(ctx context.Context, in LoginInput) (repository.Account, error) {
	email := normalizeEmail(in.Email)
	if email == "" {
		return repository.Account{}, ErrInvalidCredentials
	}
	if in.Password == "" {
		return repository.Account{}, ErrInvalidCredentials
	}

	a, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return repository.Account{}, ErrInvalidCredentials
		}
		return repository.Account{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(in.Password)); err != nil {
		return repository.Account{}, ErrInvalidCredentials
	}

	return sanitizeAccount(a), nil
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

func sanitizeAccount(a repository.Account) repository.Account {
	a.PasswordHash = ""
	return a
}
