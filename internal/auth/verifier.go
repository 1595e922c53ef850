package auth

import (
	"context"

	apperrors "yourlog/internal/errors"
	"yourlog/internal/model"
	"yourlog/internal/repository"
)

// Verifier resolves a user by email and checks the submitted password
// against the stored credential. Every mutating operation goes through it.
type Verifier interface {
	Authenticate(ctx context.Context, email, password string) (*model.User, error)
}

type verifier struct {
	users repository.UserRepository
}

// NewVerifier builds a Verifier over the user repository.
func NewVerifier(users repository.UserRepository) Verifier {
	return &verifier{users: users}
}

// Authenticate returns the resolved user, or ErrAuthentication for both an
// unknown email and a wrong password. The two cases are indistinguishable to
// the caller on purpose.
func (v *verifier) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	user, err := v.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.ErrAuthentication
	}
	if !CheckPassword(user.PasswordHash, password) {
		return nil, apperrors.ErrAuthentication
	}
	return user, nil
}
