// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "athletehub/internal/delivery/context"
	"athletehub/internal/domain/entity"
	domainerrors "athletehub/internal/domain/errors"
	"athletehub/internal/domain/repository"
	"athletehub/internal/domain/service"
	"athletehub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// athleteService implements the AthleteUsecase interface.
type athleteService struct {
	athleteRepo  repository.AthleteRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AthleteServiceParams holds dependencies for athleteService, injected by Fx.
type AthleteServiceParams struct {
	fx.In

	AthleteRepo  repository.AthleteRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAthleteService is the constructor for athleteService. It receives all dependencies as interfaces.
func NewAthleteService(params AthleteServiceParams) usecase.AthleteUsecase {
	return &athleteService{
		athleteRepo:  params.AthleteRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *athleteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register hashes the password and stores a new athlete.
func (srv *athleteService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if input == nil || input.Username == "" || input.Password == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "username and password are required")
	}

	// Fail fast before paying for the hash; Create re-checks under its lock.
	if _, err := srv.athleteRepo.FindByUsername(ctx, input.Username); err == nil {
		return nil, errors.Wrap(domainerrors.ErrUsernameTaken, "register")
	} else if !errors.Is(err, repository.ErrAthleteNotFound) {
		return nil, errors.Wrap(err, "failed to look up username")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	athlete := &entity.Athlete{
		Username: input.Username,
		Password: hashedPassword,
		Name:     input.Name,
		Age:      input.Age,
		Sport:    input.Sport,
	}

	if err := srv.athleteRepo.Create(ctx, athlete); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return nil, errors.Wrap(domainerrors.ErrUsernameTaken, "register")
		}

		return nil, errors.Wrap(err, "failed to create athlete")
	}

	srv.log(ctx).Info("Athlete registered", slog.Int64("athleteID", athlete.ID), slog.String("username", athlete.Username))

	return &usecase.RegisterOutput{Athlete: athlete}, nil
}

// Login checks the credentials and issues a bearer token.
func (srv *athleteService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input == nil {
		input = &usecase.LoginInput{}
	}

	athlete, err := srv.athleteRepo.FindByUsername(ctx, input.Username)
	if errors.Is(err, repository.ErrAthleteNotFound) {
		return nil, errors.Wrap(domainerrors.ErrUserNotFound, "login")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find athlete by username")
	}

	if !srv.hasher.Check(input.Password, athlete.Password) {
		srv.log(ctx).Warn("Invalid password", slog.Int64("athleteID", athlete.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidPassword, "login")
	}

	token, err := srv.tokenService.GenerateToken(athlete.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	srv.log(ctx).Debug("Athlete logged in", slog.Int64("athleteID", athlete.ID))

	return &usecase.LoginOutput{Token: token}, nil
}

// List returns every athlete, password hashes included.
func (srv *athleteService) List(ctx context.Context) ([]*entity.Athlete, error) {
	athletes, err := srv.athleteRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list athletes")
	}

	return athletes, nil
}

// Get returns a single athlete.
func (srv *athleteService) Get(ctx context.Context, id int64) (*entity.Athlete, error) {
	athlete, err := srv.athleteRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrAthleteNotFound) {
		return nil, errors.Wrap(domainerrors.ErrAthleteNotFound, "get")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find athlete")
	}

	return athlete, nil
}

// Update merges the supplied fields over the athlete, re-hashing a new password.
// An empty password is treated as not supplied.
func (srv *athleteService) Update(ctx context.Context, input *usecase.UpdateInput) (*entity.Athlete, error) {
	patch := entity.AthletePatch{
		Username: input.Username,
		Name:     input.Name,
		Age:      input.Age,
		Sport:    input.Sport,
	}

	if input.Password != nil && *input.Password != "" {
		// Skip hashing for an id that does not exist.
		if _, err := srv.Get(ctx, input.ID); err != nil {
			return nil, err
		}

		hashed, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return nil, errors.Wrap(err, "failed to hash password during update")
		}
		patch.Password = &hashed
	}

	athlete, err := srv.athleteRepo.Update(ctx, input.ID, patch)
	if errors.Is(err, repository.ErrAthleteNotFound) {
		return nil, errors.Wrap(domainerrors.ErrAthleteNotFound, "update")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to update athlete")
	}

	srv.log(ctx).Info("Athlete updated", slog.Int64("athleteID", athlete.ID), slog.Bool("passwordChanged", patch.Password != nil))

	return athlete, nil
}

// Delete removes the athlete.
func (srv *athleteService) Delete(ctx context.Context, id int64) error {
	removed, err := srv.athleteRepo.Delete(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to delete athlete")
	}
	if !removed {
		return errors.Wrap(domainerrors.ErrAthleteNotFound, "delete")
	}

	srv.log(ctx).Info("Athlete deleted", slog.Int64("athleteID", id))

	return nil
}
