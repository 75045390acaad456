package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/snackcheck/internal/service"
	"github.com/limbo/snackcheck/pkg/entity"
	"github.com/limbo/snackcheck/pkg/httputil"
)

type ChatMessageRequest struct {
	Message string `json:"message"`
}

type LikeResponse struct {
	ID    string `json:"id"`
	Likes int    `json:"likes"`
}

type QuestionResponseRequest struct {
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
}

type QuestionResponseResult struct {
	Response *entity.QuizResponse `json:"response"`
	Progress entity.UserProgress  `json:"progress"`
}

type CreateQuestionRequest struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	Date         string   `json:"date"`
	PointsReward *int     `json:"points_reward,omitempty"`
}

// ListGallery godoc
// @Summary Latest healthy meal photos
// @Tags community
// @Produce json
// @Security BearerAuth
// @Success 200 {array} entity.GalleryItem
// @Router /gallery [get]
func (s *Server) ListGallery(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	items, err := s.galleryService.List(ctx)
	if err != nil {
		writeServiceError(w, logger, "get gallery", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, items)
	logger.Info("gallery provided")
}

// LikeGalleryItem godoc
// @Summary Like a gallery item
// @Tags community
// @Produce json
// @Security BearerAuth
// @Param id path string true "gallery item id"
// @Success 200 {object} LikeResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Router /gallery/{id}/like [post]
func (s *Server) LikeGalleryItem(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("like error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid gallery item id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	likes, err := s.galleryService.Like(ctx, id)
	if err != nil {
		writeServiceError(w, logger, "like", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, LikeResponse{
		ID:    id.String(),
		Likes: likes,
	})
	logger.Info("gallery item liked", slog.String("item_id", id.String()))
}

// SendChatMessage godoc
// @Summary Post a message to the class chat
// @Tags community
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param message body ChatMessageRequest true "message"
// @Success 201 {object} entity.ChatMessage
// @Failure 400 {object} httputil.ErrorResponse
// @Router /chat/messages [post]
func (s *Server) SendChatMessage(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, err := GetUserFromContext(r)
	if err != nil {
		logger.Error("send message error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req ChatMessageRequest
	if err = httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("send message error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	msg, err := s.chatService.Send(ctx, user, req.Message)
	if err != nil {
		writeServiceError(w, logger, "send message", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, msg)
	logger.Info("message sent")
}

// ListChatMessages godoc
// @Summary Latest chat messages
// @Tags community
// @Produce json
// @Security BearerAuth
// @Success 200 {array} entity.ChatMessage
// @Router /chat/messages [get]
func (s *Server) ListChatMessages(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	messages, err := s.chatService.List(ctx)
	if err != nil {
		writeServiceError(w, logger, "get messages", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, messages)
	logger.Info("messages provided")
}

// TodaysQuestions godoc
// @Summary Active quiz questions for today
// @Tags quiz
// @Produce json
// @Success 200 {array} entity.QuizQuestion
// @Router /daily-questions/today [get]
func (s *Server) TodaysQuestions(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	questions, err := s.quizService.TodaysQuestions(ctx)
	if err != nil {
		writeServiceError(w, logger, "get questions", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, questions)
	logger.Info("questions provided")
}

// SubmitQuestionResponse godoc
// @Summary Answer a quiz question once for its reward
// @Tags quiz
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param answer body QuestionResponseRequest true "answer"
// @Success 201 {object} QuestionResponseResult
// @Failure 404 {object} httputil.ErrorResponse
// @Failure 409 {object} httputil.ErrorResponse
// @Router /question-responses [post]
func (s *Server) SubmitQuestionResponse(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, err := GetUserFromContext(r)
	if err != nil {
		logger.Error("answer question error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req QuestionResponseRequest
	if err = httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("answer question error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	questionID, err := uuid.Parse(req.QuestionID)
	if err != nil {
		logger.Error("answer question error: invalid question id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid question id", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	resp, progress, err := s.quizService.SubmitResponse(ctx, user, &service.QuizAnswerRequest{
		QuestionID: questionID,
		Answer:     req.Answer,
	})
	if err != nil {
		writeServiceError(w, logger, "answer question", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, QuestionResponseResult{
		Response: resp,
		Progress: progress,
	})
	logger.Info("question answered", slog.Int("points_earned", resp.PointsEarned))
}

// AdminCreateQuestion godoc
// @Summary Schedule a quiz question for a date
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param question body CreateQuestionRequest true "question"
// @Success 201 {object} entity.QuizQuestion
// @Failure 400 {object} httputil.ErrorResponse
// @Router /admin/questions [post]
func (s *Server) AdminCreateQuestion(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req CreateQuestionRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("create question error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	question, err := s.quizService.CreateQuestion(ctx, &service.CreateQuestionRequest{
		Question:     req.Question,
		Options:      req.Options,
		Date:         req.Date,
		PointsReward: req.PointsReward,
	})
	if err != nil {
		writeServiceError(w, logger, "create question", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, question)
	logger.Info("question created", slog.String("question_id", question.ID.String()))
}
