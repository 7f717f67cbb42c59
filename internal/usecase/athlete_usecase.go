// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"athletehub/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new athlete.
type RegisterInput struct {
	Username string
	Password string
	Name     string
	Age      int
	Sport    string
}

// LoginInput defines the data required for an athlete to log in.
type LoginInput struct {
	Username string
	Password string
}

// UpdateInput carries a partial update. Nil fields are left unchanged.
// Password is plaintext here and is hashed before it is stored.
type UpdateInput struct {
	ID       int64
	Username *string
	Password *string
	Name     *string
	Age      *int
	Sport    *string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created athlete.
type RegisterOutput struct {
	Athlete *entity.Athlete
}

// LoginOutput returns the bearer token issued after a successful login.
type LoginOutput struct {
	Token string
}

// AthleteUsecase defines the account operations the HTTP layer depends on.
type AthleteUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	List(ctx context.Context) ([]*entity.Athlete, error)
	Get(ctx context.Context, id int64) (*entity.Athlete, error)
	Update(ctx context.Context, input *UpdateInput) (*entity.Athlete, error)
	Delete(ctx context.Context, id int64) error
}
