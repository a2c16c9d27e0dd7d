package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"staffing-tool/internal/pkg/jwt"
	"staffing-tool/internal/repository"
	ucauth "staffing-tool/internal/usecase/auth"
)

type mockAccountRepo struct {
	items []repository.Account
	err   error
}

func (m *mockAccountRepo) Create(_ context.Context, a repository.Account) error {
	if m.err != nil {
		return m.err
	}
	m.items = append(m.items, a)
	return nil
}

func (m *mockAccountRepo) GetByID(_ context.Context, id uuid.UUID) (repository.Account, error) {
	for _, a := range m.items {
		if a.ID == id {
			return a, nil
		}
	}
	return repository.Account{}, repository.ErrAccountNotFound
}

func (m *mockAccountRepo) GetByEmail(_ context.Context, email string) (repository.Account, error) {
	for _, a := range m.items {
		if a.Email == email {
			return a, nil
		}
	}
	return repository.Account{}, repository.ErrAccountNotFound
}

func (m *mockAccountRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, err := m.GetByEmail(ctx, email)
	return err == nil, nil
}

type fakeJWT struct {
	claims jwt.Claims
	err    error
}

func (f fakeJWT) GenerateAccessToken(accountID uuid.UUID, email string) (string, error) {
	return "access-" + accountID.String(), nil
}

func (f fakeJWT) GenerateRefreshToken(accountID uuid.UUID) (string, error) {
	return "refresh-" + accountID.String(), nil
}

func (f fakeJWT) ValidateToken(string) (jwt.Claims, error) {
	return f.claims, f.err
}

func (f fakeJWT) IsRefreshToken(claims jwt.Claims) bool {
	return claims.TokenType == jwt.TokenTypeRefresh
}

func TestAuthUsecase_Register_Success(t *testing.T) {
	uc := NewAuthUsecase(&mockAccountRepo{}, fakeJWT{})

	acc, access, refresh, err := uc.Register(context.Background(), ucauth.RegisterInput{
		Email:    " Chief@Example.COM ",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if acc.Email != "chief@example.com" {
		t.Fatalf("email should be normalized, got %q", acc.Email)
	}
	if acc.PasswordHash != "" {
		t.Fatalf("password hash must not leave the usecase")
	}
	if access == "" || refresh == "" {
		t.Fatalf("expected both tokens")
	}
}

func TestAuthUsecase_Register_DuplicateEmail(t *testing.T) {
	repo := &mockAccountRepo{items: []repository.Account{{ID: uuid.New(), Email: "chief@example.com"}}}
	uc := NewAuthUsecase(repo, fakeJWT{})

	_, _, _, err := uc.Register(context.Background(), ucauth.RegisterInput{
		Email:    "chief@example.com",
		Password: "correct horse",
	})
	if !errors.Is(err, ucauth.ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestAuthUsecase_Register_ShortPassword(t *testing.T) {
	uc := NewAuthUsecase(&mockAccountRepo{}, fakeJWT{})

	_, _, _, err := uc.Register(context.Background(), ucauth.RegisterInput{
		Email:    "chief@example.com",
		Password: "short",
	})
	if !errors.Is(err, ucauth.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAuthUsecase_Login_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	repo := &mockAccountRepo{items: []repository.Account{{
		ID:           uuid.New(),
		Email:        "chief@example.com",
		PasswordHash: string(hash),
	}}}
	uc := NewAuthUsecase(repo, fakeJWT{})

	_, _, _, err = uc.Login(context.Background(), ucauth.LoginInput{
		Email:    "chief@example.com",
		Password: "wrong horse",
	})
	if !errors.Is(err, ucauth.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthUsecase_Login_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	id := uuid.New()
	repo := &mockAccountRepo{items: []repository.Account{{
		ID:           id,
		Email:        "chief@example.com",
		PasswordHash: string(hash),
	}}}
	uc := NewAuthUsecase(repo, fakeJWT{})

	acc, access, _, err := uc.Login(context.Background(), ucauth.LoginInput{
		Email:    "chief@example.com",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if acc.ID != id || access == "" {
		t.Fatalf("unexpected login result")
	}
}

func TestAuthUsecase_Refresh_RejectsAccessToken(t *testing.T) {
	uc := NewAuthUsecase(&mockAccountRepo{}, fakeJWT{claims: jwt.Claims{
		AccountID: uuid.New(),
		TokenType: jwt.TokenTypeAccess,
	}})

	_, _, err := uc.Refresh(context.Background(), "some-token")
	if !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestAuthUsecase_Refresh_Success(t *testing.T) {
	id := uuid.New()
	repo := &mockAccountRepo{items: []repository.Account{{ID: id, Email: "chief@example.com"}}}
	uc := NewAuthUsecase(repo, fakeJWT{claims: jwt.Claims{
		AccountID: id,
		TokenType: jwt.TokenTypeRefresh,
	}})

	access, refresh, err := uc.Refresh(context.Background(), "refresh-token")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if access == "" || refresh == "" {
		t.Fatalf("expected new token pair")
	}
}

func TestAuthUsecase_Refresh_Expired(t *testing.T) {
	uc := NewAuthUsecase(&mockAccountRepo{}, fakeJWT{err: jwt.ErrTokenExpired})

	_, _, err := uc.Refresh(context.Background(), "stale")
	if !errors.Is(err, ErrRefreshTokenExpired) {
		t.Fatalf("expected ErrRefreshTokenExpired, got %v", err)
	}
}
