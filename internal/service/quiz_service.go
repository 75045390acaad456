package service

import (
	"context"
	"errors"
	"log"
	"strings"

	errorvalues "github.com/limbo/snackcheck/internal/error_values"
	"github.com/limbo/snackcheck/internal/repository"
	"github.com/limbo/snackcheck/internal/rewards"
	"github.com/limbo/snackcheck/pkg/entity"
)

const DefaultQuestionReward = 5

type QuizService struct {
	repo     repository.QuizRepositoryI
	engine   *rewards.Engine
	calendar Calendar
}

func NewQuizService(repo repository.QuizRepositoryI, engine *rewards.Engine, calendar Calendar) *QuizService {
	if repo == nil {
		log.Fatal("on quiz service provided nil repo")
	}
	if engine == nil {
		engine = rewards.NewEngine(rewards.PolicyBanded)
	}
	return &QuizService{
		repo:     repo,
		engine:   engine,
		calendar: calendar,
	}
}

func (qs *QuizService) CreateQuestion(ctx context.Context, req *CreateQuestionRequest) (*entity.QuizQuestion, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	reward := DefaultQuestionReward
	if req.PointsReward != nil {
		reward = *req.PointsReward
	}
	q := &entity.QuizQuestion{
		Question:     strings.TrimSpace(req.Question),
		Options:      req.Options,
		Date:         req.Date,
		Active:       true,
		PointsReward: reward,
	}
	id, err := qs.repo.CreateQuestion(ctx, q)
	if err != nil {
		if errors.Is(err, errorvalues.ErrValidation) {
			return nil, err
		}
		return nil, errors.New("repository creating question error: " + err.Error())
	}
	q.ID = id
	return q, nil
}

func (qs *QuizService) TodaysQuestions(ctx context.Context) ([]*entity.QuizQuestion, error) {
	questions, err := qs.repo.GetByDate(ctx, qs.calendar.Today())
	if err != nil {
		return nil, errors.New("repository getting questions error: " + err.Error())
	}
	return questions, nil
}

// SubmitResponse stores the answer once per user and question and adds the
// question's reward to the user's points.
func (qs *QuizService) SubmitResponse(ctx context.Context, user *entity.User, req *QuizAnswerRequest) (*entity.QuizResponse, entity.UserProgress, error) {
	if user == nil {
		return nil, entity.UserProgress{}, errorvalues.ErrInvalidToken
	}
	if err := validateStruct(req); err != nil {
		return nil, entity.UserProgress{}, err
	}
	question, err := qs.repo.GetQuestion(ctx, req.QuestionID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrQuestionNotFound) {
			return nil, entity.UserProgress{}, err
		}
		return nil, entity.UserProgress{}, errors.New("repository getting question error: " + err.Error())
	}
	resp := &entity.QuizResponse{
		UserID:       user.ID,
		QuestionID:   question.ID,
		Answer:       req.Answer,
		PointsEarned: question.PointsReward,
	}
	progress, err := qs.repo.RecordResponse(ctx, resp, func(current entity.UserProgress) (entity.UserProgress, error) {
		return qs.engine.ApplyQuizReward(current, question.PointsReward), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrAlreadyAnswered),
			errors.Is(err, errorvalues.ErrQuestionNotFound),
			errors.Is(err, errorvalues.ErrUserNotFound):
			return nil, entity.UserProgress{}, err
		}
		return nil, entity.UserProgress{}, errors.New("repository recording response error: " + err.Error())
	}
	return resp, progress, nil
}
