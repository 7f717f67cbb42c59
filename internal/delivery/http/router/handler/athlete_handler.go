// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"athletehub/internal/delivery/http/response"
	"athletehub/internal/domain/entity"
	domainerrors "athletehub/internal/domain/errors"
	"athletehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AthleteHandlerParams holds dependencies for AthleteHandler, injected by Fx.
type AthleteHandlerParams struct {
	fx.In

	AthleteUC usecase.AthleteUsecase
	Logger    *slog.Logger
}

// AthleteHandler holds dependencies for athlete account handlers.
type AthleteHandler struct {
	athleteUC usecase.AthleteUsecase
	logger    *slog.Logger
}

// NewAthleteHandler is the constructor for AthleteHandler.
func NewAthleteHandler(params AthleteHandlerParams) *AthleteHandler {
	return &AthleteHandler{
		athleteUC: params.AthleteUC,
		logger:    params.Logger,
	}
}

// RegisterRequest represents the request body for registration
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Sport    string `json:"sport"`
}

// RegisterResponse is returned after a successful registration.
type RegisterResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer token.
type LoginResponse struct {
	Token string `json:"token"`
}

// UpdateAthleteRequest is a partial update; omitted fields are left unchanged.
type UpdateAthleteRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	Name     *string `json:"name"`
	Age      *int    `json:"age"`
	Sport    *string `json:"sport"`
}

// UpdateAthleteResponse is returned after a successful update.
type UpdateAthleteResponse struct {
	Message string          `json:"message"`
	Athlete *entity.Athlete `json:"athlete"`
}

// Register handles POST /register.
func (h *AthleteHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.AppError(c, domainerrors.ErrInvalidInput)
	}

	if err := c.Validate(&req); err != nil {
		return response.AppError(c, domainerrors.ErrValidationFailed)
	}

	output, err := h.athleteUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
		Age:      req.Age,
		Sport:    req.Sport,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, RegisterResponse{
		Message: "Athlete registered successfully",
		ID:      output.Athlete.ID,
	})
}

// Login handles POST /login.
func (h *AthleteHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.AppError(c, domainerrors.ErrInvalidInput)
	}

	output, err := h.athleteUC.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, LoginResponse{Token: output.Token})
}

// ListAthletes handles GET /athletes.
func (h *AthleteHandler) ListAthletes(c echo.Context) error {
	athletes, err := h.athleteUC.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, athletes)
}

// GetAthlete handles GET /athlete/:id.
func (h *AthleteHandler) GetAthlete(c echo.Context) error {
	id, ok := parseAthleteID(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrAthleteNotFound)
	}

	athlete, err := h.athleteUC.Get(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, athlete)
}

// UpdateAthlete handles PUT /athletes/:id.
func (h *AthleteHandler) UpdateAthlete(c echo.Context) error {
	id, ok := parseAthleteID(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrAthleteNotFound)
	}

	var req UpdateAthleteRequest
	if err := c.Bind(&req); err != nil {
		return response.AppError(c, domainerrors.ErrInvalidInput)
	}

	athlete, err := h.athleteUC.Update(c.Request().Context(), &usecase.UpdateInput{
		ID:       id,
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
		Age:      req.Age,
		Sport:    req.Sport,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, UpdateAthleteResponse{
		Message: "Athlete updated",
		Athlete: athlete,
	})
}

// DeleteAthlete handles DELETE /athletes/:id.
func (h *AthleteHandler) DeleteAthlete(c echo.Context) error {
	id, ok := parseAthleteID(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrAthleteNotFound)
	}

	if err := h.athleteUC.Delete(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Athlete deleted")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// parseAthleteID reads the :id path parameter. A non-integer id matches no athlete.
func parseAthleteID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)

	return id, err == nil
}
