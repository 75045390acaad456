package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/limbo/snackcheck/internal/imagerecognition"
	"github.com/limbo/snackcheck/internal/service"
	"github.com/limbo/snackcheck/pkg/httputil"
)

const (
	imageFormField = "image"
	// Room for the text fields next to the image
	multipartOverhead = 1 << 20
)

type CalorieCheckRequest struct {
	FoodName string `json:"food_name"`
	Quantity string `json:"quantity"`
}

type CompareRequest struct {
	FirstFood  string `json:"food_1"`
	SecondFood string `json:"food_2"`
}

// SubmitFoodEntry godoc
// @Summary Log a meal and collect points
// @Tags food
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param food_name formData string true "food name"
// @Param meal_type formData string true "breakfast, lunch, dinner or snack"
// @Param quantity formData string true "quantity, e.g. 150g"
// @Param image formData file false "photo of the meal"
// @Success 201 {object} service.SubmissionResult
// @Failure 400 {object} httputil.ErrorResponse
// @Router /food-entries [post]
func (s *Server) SubmitFoodEntry(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, err := GetUserFromContext(r)
	if err != nil {
		logger.Error("submit food entry error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, imagerecognition.MaxImageSize+multipartOverhead)
	if err = r.ParseMultipartForm(imagerecognition.MaxImageSize + multipartOverhead); err != nil {
		logger.Error("submit food entry error: invalid multipart form", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid multipart form", nil)
		return
	}
	defer r.MultipartForm.RemoveAll()
	req := &service.FoodEntryRequest{
		FoodName: r.FormValue("food_name"),
		MealType: r.FormValue("meal_type"),
		Quantity: r.FormValue("quantity"),
	}
	file, _, err := r.FormFile(imageFormField)
	switch {
	case err == nil:
		defer file.Close()
		// One byte over the limit is enough for validation to reject it
		req.Image, err = io.ReadAll(io.LimitReader(file, imagerecognition.MaxImageSize+1))
		if err != nil {
			logger.Error("submit food entry error: reading image", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "couldn't read image", nil)
			return
		}
	case errors.Is(err, http.ErrMissingFile):
	default:
		logger.Error("submit food entry error: invalid image field", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid image field", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*20)
	defer cancel()
	result, err := s.foodService.Submit(ctx, user, req)
	if err != nil {
		writeServiceError(w, logger, "submit food entry", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, result)
	logger.Info("food entry submitted",
		slog.Int("score", result.Entry.Score),
		slog.Int("points_earned", result.PointsEarned))
}

// ListOwnEntries godoc
// @Summary Latest entries of the current user
// @Tags food
// @Produce json
// @Security BearerAuth
// @Success 200 {array} entity.FoodEntry
// @Router /food-entries [get]
func (s *Server) ListOwnEntries(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get entries error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	entries, err := s.foodService.ListOwn(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get entries", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, entries)
	logger.Info("entries provided")
}

// ListRecentEntries godoc
// @Summary Latest entries of all users, teachers and admins only
// @Tags food
// @Produce json
// @Security BearerAuth
// @Success 200 {array} entity.FoodEntry
// @Failure 403 {object} httputil.ErrorResponse
// @Router /food-entries/all [get]
func (s *Server) ListRecentEntries(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, err := GetUserFromContext(r)
	if err != nil {
		logger.Error("get all entries error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	entries, err := s.foodService.ListRecent(ctx, user)
	if err != nil {
		writeServiceError(w, logger, "get all entries", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, entries)
	logger.Info("all entries provided")
}

// CheckCalories godoc
// @Summary Estimate calories of a food without logging it
// @Tags food
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param food body CalorieCheckRequest true "food and quantity"
// @Success 200 {object} service.CalorieCheckResult
// @Failure 400 {object} httputil.ErrorResponse
// @Router /calorie-check [post]
func (s *Server) CheckCalories(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req CalorieCheckRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("calorie check error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	result, err := s.foodService.CheckCalories(ctx, req.FoodName, req.Quantity)
	if err != nil {
		writeServiceError(w, logger, "calorie check", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, result)
	logger.Info("calories checked")
}

// CompareFoods godoc
// @Summary Compare two foods by health score and calories
// @Tags food
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param foods body CompareRequest true "foods to compare"
// @Success 200 {object} nutrition.Comparison
// @Failure 400 {object} httputil.ErrorResponse
// @Router /food-compare [post]
func (s *Server) CompareFoods(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req CompareRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("food compare error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	comparison, err := s.foodService.Compare(ctx, req.FirstFood, req.SecondFood)
	if err != nil {
		writeServiceError(w, logger, "food compare", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, comparison)
	logger.Info("foods compared")
}
