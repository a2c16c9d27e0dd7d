package usecase

import (
	"context"
	"errors"

	"staffing-tool/internal/pkg/jwt"
	"staffing-tool/internal/repository"
	ucauth "staffing-tool/internal/usecase/auth"
)

var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrInternal            = errors.New("internal error")
)

type AuthUsecase interface {
	Register(ctx context.Context, in ucauth.RegisterInput) (repository.Account, string, string, error)
	Login(ctx context.Context, in ucauth.LoginInput) (repository.Account, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

type Auth struct {
	authSvc  *ucauth.Service
	accounts repository.AccountRepository
	jwt      jwt.Service
}

func NewAuthUsecase(accounts repository.AccountRepository, jwtSvc jwt.Service) *Auth {
	return &Auth{authSvc: ucauth.NewService(accounts), accounts: accounts, jwt: jwtSvc}
}

func (u *Auth) Register(ctx context.Context, in ucauth.RegisterInput) (repository.Account, string, string, error) {
	acc, err := u.authSvc.Register(ctx, in)
	if err != nil {
		return repository.Account{}, "", "", err
	}

	access, refresh, err := u.issueTokens(acc)
	if err != nil {
		return repository.Account{}, "", "", err
	}
	return acc, access, refresh, nil
}

func (u *Auth) Login(ctx context.Context, in ucauth.LoginInput) (repository.Account, string, string, error) {
	acc, err := u.authSvc.Login(ctx, in)
	if err != nil {
		return repository.Account{}, "", "", err
	}

	access, refresh, err := u.issueTokens(acc)
	if err != nil {
		return repository.Account{}, "", "", err
	}
	return acc, access, refresh, nil
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	if refreshToken == "" {
		return "", "", ErrUnauthorized
	}

	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrRefreshTokenExpired
		}
		return "", "", ErrInvalidRefreshToken
	}

	if !u.jwt.IsRefreshToken(claims) {
		return "", "", ErrInvalidRefreshToken
	}

	acc, err := u.accounts.GetByID(ctx, claims.AccountID)
	if err != nil {
		return "", "", ErrInternal
	}

	access, newRefresh, err := u.issueTokens(acc)
	if err != nil {
		return "", "", err
	}
	return access, newRefresh, nil
}

func (u *Auth) issueTokens(acc repository.Account) (string, string, error) {
	access, err := u.jwt.GenerateAccessToken(acc.ID, acc.Email)
	if err != nil {
		return "", "", ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(acc.ID)
	if err != nil {
		return "", "", ErrInternal
	}
	return access, refresh, nil
}
