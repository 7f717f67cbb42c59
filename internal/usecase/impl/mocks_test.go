package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"athletehub/internal/domain/entity"
	"athletehub/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mockAthleteRepository struct {
	mock.Mock
}

func (m *mockAthleteRepository) FindByID(ctx context.Context, id int64) (*entity.Athlete, error) {
	args := m.Called(ctx, id)
	athlete, _ := args.Get(0).(*entity.Athlete)

	return athlete, args.Error(1)
}

func (m *mockAthleteRepository) FindByUsername(ctx context.Context, username string) (*entity.Athlete, error) {
	args := m.Called(ctx, username)
	athlete, _ := args.Get(0).(*entity.Athlete)

	return athlete, args.Error(1)
}

func (m *mockAthleteRepository) Create(ctx context.Context, athlete *entity.Athlete) error {
	return m.Called(ctx, athlete).Error(0)
}

func (m *mockAthleteRepository) Update(ctx context.Context, id int64, patch entity.AthletePatch) (*entity.Athlete, error) {
	args := m.Called(ctx, id, patch)
	athlete, _ := args.Get(0).(*entity.Athlete)

	return athlete, args.Error(1)
}

func (m *mockAthleteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)

	return args.Bool(0), args.Error(1)
}

func (m *mockAthleteRepository) List(ctx context.Context) ([]*entity.Athlete, error) {
	args := m.Called(ctx)
	athletes, _ := args.Get(0).([]*entity.Athlete)

	return athletes, args.Error(1)
}

type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) GenerateToken(athleteID int64) (string, error) {
	args := m.Called(athleteID)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	claims, _ := args.Get(0).(*service.Claims)

	return claims, args.Error(1)
}

func (m *mockTokenService) TokenTTL() time.Duration {
	return time.Hour
}
