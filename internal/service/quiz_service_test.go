package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/snackcheck/internal/error_values"
	"github.com/limbo/snackcheck/internal/repository"
	"github.com/limbo/snackcheck/internal/repository/mocks"
	"github.com/limbo/snackcheck/internal/service"
	"github.com/limbo/snackcheck/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateQuestion(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockQuizRepositoryI(ctrl)
	serv := service.NewQuizService(repo, nil, fixedCalendar())
	ctx := context.Background()
	qid := uuid.New()
	ten := 10
	testCases := []struct {
		Desc         string
		Req          service.CreateQuestionRequest
		Reward       int
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:   "default reward",
			Req:    service.CreateQuestionRequest{Question: "Best drink?", Options: []string{"water", "soda"}, Date: "2024-03-11"},
			Reward: 5,
			MockPrepFunc: func() {
				repo.EXPECT().CreateQuestion(gomock.Any(), gomock.Any()).Return(qid, nil)
			},
		},
		{
			Desc:   "custom reward",
			Req:    service.CreateQuestionRequest{Question: "Best drink?", Options: []string{"water", "soda"}, Date: "2024-03-11", PointsReward: &ten},
			Reward: 10,
			MockPrepFunc: func() {
				repo.EXPECT().CreateQuestion(gomock.Any(), gomock.Any()).Return(qid, nil)
			},
		},
		{
			Desc:         "single option",
			Req:          service.CreateQuestionRequest{Question: "Best drink?", Options: []string{"water"}, Date: "2024-03-11"},
			Error:        errorvalues.ErrValidation,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "bad date",
			Req:          service.CreateQuestionRequest{Question: "Best drink?", Options: []string{"water", "soda"}, Date: "tomorrow"},
			Error:        errorvalues.ErrValidation,
			MockPrepFunc: func() {},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			q, err := serv.CreateQuestion(ctx, &tc.Req)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, qid, q.ID)
			assert.Equal(t, tc.Reward, q.PointsReward)
			assert.True(t, q.Active)
		})
	}
}

func TestTodaysQuestions(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockQuizRepositoryI(ctrl)
	serv := service.NewQuizService(repo, nil, fixedCalendar())
	today := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	repo.EXPECT().GetByDate(gomock.Any(), today).Return([]*entity.QuizQuestion{{ID: uuid.New()}}, nil)
	qs, err := serv.TodaysQuestions(context.Background())
	require.NoError(t, err)
	assert.Len(t, qs, 1)
}

func TestSubmitQuizResponse(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockQuizRepositoryI(ctrl)
	serv := service.NewQuizService(repo, nil, fixedCalendar())
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Name: "anna"}
	qid := uuid.New()
	question := &entity.QuizQuestion{ID: qid, PointsReward: 5}
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc: "reward added and level recomputed",
			MockPrepFunc: func() {
				repo.EXPECT().GetQuestion(gomock.Any(), qid).Return(question, nil)
				repo.EXPECT().RecordResponse(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, resp *entity.QuizResponse, apply repository.ProgressFunc) (entity.UserProgress, error) {
						assert.Equal(t, 5, resp.PointsEarned)
						p, err := apply(entity.UserProgress{Points: 98, Level: 1, Badges: []string{}, StreakDays: 3})
						assert.Equal(t, 103, p.Points)
						assert.Equal(t, 2, p.Level)
						assert.Equal(t, 3, p.StreakDays)
						return p, err
					})
			},
		},
		{
			Desc:  "answered twice",
			Error: errorvalues.ErrAlreadyAnswered,
			MockPrepFunc: func() {
				repo.EXPECT().GetQuestion(gomock.Any(), qid).Return(question, nil)
				repo.EXPECT().RecordResponse(gomock.Any(), gomock.Any(), gomock.Any()).Return(entity.UserProgress{}, errorvalues.ErrAlreadyAnswered)
			},
		},
		{
			Desc:  "unknown question",
			Error: errorvalues.ErrQuestionNotFound,
			MockPrepFunc: func() {
				repo.EXPECT().GetQuestion(gomock.Any(), qid).Return(nil, errorvalues.ErrQuestionNotFound)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			_, _, err := serv.SubmitResponse(ctx, user, &service.QuizAnswerRequest{QuestionID: qid, Answer: "water"})
			assert.ErrorIs(t, err, tc.Error)
		})
	}
	t.Run("empty answer", func(t *testing.T) {
		_, _, err := serv.SubmitResponse(ctx, user, &service.QuizAnswerRequest{QuestionID: qid})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
}
