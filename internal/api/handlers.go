package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/snackcheck/internal/error_values"
	"github.com/limbo/snackcheck/internal/service"
	"github.com/limbo/snackcheck/pkg/entity"
	"github.com/limbo/snackcheck/pkg/httputil"
)

type LoginRequest struct {
	Name      string `json:"username"`
	Password  string `json:"password"`
	ClassCode string `json:"class_code"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

type CreateUserRequest struct {
	Name      string `json:"username"`
	Password  string `json:"password"`
	ClassCode string `json:"class_code"`
	Role      string `json:"role,omitempty"`
}

type ListUsersResponse struct {
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
	Users []*entity.User `json:"users"`
}

// writeServiceError maps service sentinels to HTTP statuses.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	var (
		status  int
		message string
		details error
	)
	switch {
	case errors.Is(err, errorvalues.ErrValidation), errors.Is(err, errorvalues.ErrInvalidRole):
		status, message, details = http.StatusBadRequest, "invalid request", err
	case errors.Is(err, errorvalues.ErrWrongCredentials), errors.Is(err, errorvalues.ErrInvalidToken):
		status, message = http.StatusUnauthorized, "authorization failed"
	case errors.Is(err, errorvalues.ErrForbidden):
		status, message = http.StatusForbidden, "not enough rights"
	case errors.Is(err, errorvalues.ErrUserNotFound):
		status, message = http.StatusNotFound, "user doesn't exist"
	case errors.Is(err, errorvalues.ErrQuestionNotFound):
		status, message = http.StatusNotFound, "question doesn't exist"
	case errors.Is(err, errorvalues.ErrGalleryItemNotFound):
		status, message = http.StatusNotFound, "gallery item doesn't exist"
	case errors.Is(err, errorvalues.ErrUserExists):
		status, message = http.StatusConflict, "user with such name already exists"
	case errors.Is(err, errorvalues.ErrAlreadyAnswered):
		status, message = http.StatusConflict, "question already answered"
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
		return
	}
	logger.Error(op+" error", slog.String("reason", err.Error()))
	httputil.WriteErrorResponse(w, status, message, details)
}

// Login godoc
// @Summary Log in with name, password and class code
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 401 {object} httputil.ErrorResponse
// @Router /auth/login [post]
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if req.Name == "" || req.Password == "" || req.ClassCode == "" {
		logger.Error("login error: missing credentials")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "username, password and class_code are required", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Name, req.Password, req.ClassCode)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound), errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("login error: wrong credentials")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "invalid username, password or class code", nil)
		default:
			logger.Error("login error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during login", nil)
		}
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, LoginResponse{
		Token: token,
		User:  user,
	})
	logger.Info("successful login")
}

// Me godoc
// @Summary Current user with progress
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} entity.User
// @Router /me [get]
func (s *Server) Me(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, err := GetUserFromContext(r)
	if err != nil {
		logger.Error("me error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, user)
}

// Leaderboard godoc
// @Summary Top users of the viewer's class, or of all classes for admins
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Success 200 {array} entity.LeaderboardRow
// @Router /leaderboard [get]
func (s *Server) Leaderboard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, err := GetUserFromContext(r)
	if err != nil {
		logger.Error("leaderboard error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	rows, err := s.userService.Leaderboard(ctx, user)
	if err != nil {
		writeServiceError(w, logger, "leaderboard", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, rows)
	logger.Info("leaderboard provided")
}

// UserStats godoc
// @Summary Aggregated statistics of the current user
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} entity.UserStats
// @Router /analytics/user-stats [get]
func (s *Server) UserStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, err := GetUserFromContext(r)
	if err != nil {
		logger.Error("user stats error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	stats, err := s.foodService.Stats(ctx, user)
	if err != nil {
		writeServiceError(w, logger, "user stats", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
	logger.Info("user stats provided")
}

// ClassSummary godoc
// @Summary Per-class aggregates, teachers and admins only
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {array} entity.ClassSummary
// @Failure 403 {object} httputil.ErrorResponse
// @Router /analytics/class-summary [get]
func (s *Server) ClassSummary(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, err := GetUserFromContext(r)
	if err != nil {
		logger.Error("class summary error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	summary, err := s.foodService.ClassSummary(ctx, user)
	if err != nil {
		writeServiceError(w, logger, "class summary", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, summary)
	logger.Info("class summary provided")
}

// AdminCreateUser godoc
// @Summary Create a user account
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user body CreateUserRequest true "new user"
// @Success 201 {object} entity.User
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 409 {object} httputil.ErrorResponse
// @Router /admin/users [post]
func (s *Server) AdminCreateUser(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req CreateUserRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("create user error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.CreateUser(ctx, &service.CreateUserRequest{
		Name:      req.Name,
		Password:  req.Password,
		ClassCode: req.ClassCode,
		Role:      req.Role,
	})
	if err != nil {
		writeServiceError(w, logger, "create user", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, user)
	logger.Info("user created", slog.String("created_uid", user.ID.String()))
}

// AdminListUsers godoc
// @Summary List users page by page
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param limit query int false "page size (1-100)"
// @Param page query int false "page number"
// @Success 200 {object} ListUsersResponse
// @Router /admin/users [get]
func (s *Server) AdminListUsers(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 50
	}
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	offset := (page - 1) * limit
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	users, err := s.userService.List(ctx, limit, offset)
	if err != nil {
		writeServiceError(w, logger, "list users", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ListUsersResponse{
		Page:  page,
		Limit: limit,
		Users: users,
	})
	logger.Info("users list provided")
}

// AdminDeleteUser godoc
// @Summary Delete a user with all of their records
// @Tags admin
// @Security BearerAuth
// @Param id path string true "user id"
// @Success 204
// @Failure 404 {object} httputil.ErrorResponse
// @Router /admin/users/{id} [delete]
func (s *Server) AdminDeleteUser(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("user deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid user id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	if err = s.userService.DeleteUser(ctx, id); err != nil {
		writeServiceError(w, logger, "user deletion", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("user deleted", slog.String("deleted_uid", id.String()))
}

// AdminResetProgress godoc
// @Summary Reset points, level, badges and streak of a user
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "user id"
// @Success 200 {object} entity.UserProgress
// @Failure 404 {object} httputil.ErrorResponse
// @Router /admin/users/{id}/reset-progress [post]
func (s *Server) AdminResetProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("reset progress error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid user id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	progress, err := s.userService.ResetProgress(ctx, id)
	if err != nil {
		writeServiceError(w, logger, "reset progress", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, progress)
	logger.Info("progress reset", slog.String("target_uid", id.String()))
}
