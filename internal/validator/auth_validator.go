package validator

import (
	"context"
	"regexp"

	"loja/internal/repository"
	"loja/internal/usecase"
)

// 最低限のemail形式チェック（厳密なRFCまでは見ない）
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const passwordMinLen = 8

type authValidator struct {
	users repository.UserRepository
}

func NewAuthValidator(users repository.UserRepository) usecase.AuthValidator {
	return &authValidator{users: users}
}

func (v *authValidator) ValidateRegister(ctx context.Context, email string, password string) error {
	if email == "" || password == "" {
		return usecase.ErrValidation
	}

	if !emailRe.MatchString(email) {
		return usecase.ErrValidation
	}

	if len(password) < passwordMinLen {
		return usecase.ErrValidation
	}

	//email重複チェック
	existing, err := v.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return usecase.ErrConflict
	}

	return nil
}

func (v *authValidator) ValidateLogin(ctx context.Context, email string, password string) error {
	if email == "" || password == "" {
		return usecase.ErrValidation
	}

	if !emailRe.MatchString(email) {
		return usecase.ErrValidation
	}

	return nil
}

func (v *authValidator) ValidateRefresh(ctx context.Context, refreshToken string, userAgent string) error {
	if refreshToken == "" {
		return usecase.ErrUnauthorized
	}

	return nil
}

func (v *authValidator) ValidateLogout(ctx context.Context) error {
	return nil
}
