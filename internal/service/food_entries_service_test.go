package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/snackcheck/internal/error_values"
	"github.com/limbo/snackcheck/internal/nutrition"
	"github.com/limbo/snackcheck/internal/repository"
	"github.com/limbo/snackcheck/internal/repository/mocks"
	"github.com/limbo/snackcheck/internal/rewards"
	"github.com/limbo/snackcheck/internal/service"
	"github.com/limbo/snackcheck/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 11, 10, 30, 0, 0, time.UTC)

func fixedCalendar() service.Calendar {
	return service.Calendar{
		Now:      func() time.Time { return fixedNow },
		Location: time.UTC,
	}
}

type stubImages struct {
	label *nutrition.ImageLabel
	err   error
}

func (s *stubImages) ClassifyImage(ctx context.Context, image []byte) (*nutrition.ImageLabel, error) {
	return s.label, s.err
}

// recordWith makes the mocked repository run the progress closure on current.
func recordWith(current entity.UserProgress, gallery **entity.GalleryItem) func(context.Context, *entity.FoodEntry, *entity.GalleryItem, repository.ProgressFunc) (entity.UserProgress, error) {
	return func(_ context.Context, _ *entity.FoodEntry, g *entity.GalleryItem, apply repository.ProgressFunc) (entity.UserProgress, error) {
		if gallery != nil {
			*gallery = g
		}
		return apply(current)
	}
}

func TestSubmitFoodEntry(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockFoodEntriesRepositoryI(ctrl)
	images := &stubImages{}
	classifier := nutrition.NewClassifier(nil, images, time.Second)
	serv := service.NewFoodEntriesService(repo, classifier, rewards.NewEngine(rewards.PolicyBanded), fixedCalendar(), 6)
	user := &entity.User{ID: uuid.New(), Name: "anna", ClassCode: "KLAS1"}
	ctx := context.Background()
	yesterday := fixedNow.AddDate(0, 0, -1)

	t.Run("first healthy entry", func(t *testing.T) {
		var gallery *entity.GalleryItem
		repo.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(recordWith(entity.UserProgress{Level: 1, Badges: []string{}}, &gallery))
		res, err := serv.Submit(ctx, user, &service.FoodEntryRequest{FoodName: "Apple", MealType: "Snack", Quantity: "200g"})
		require.NoError(t, err)
		assert.Equal(t, 15, res.PointsEarned)
		assert.Equal(t, 15, res.Entry.PointsEarned)
		assert.Equal(t, []string{rewards.BadgeHealthyStart}, res.NewBadges)
		assert.Equal(t, 1, res.Progress.StreakDays)
		assert.Equal(t, "snack", res.Entry.MealType)
		assert.InDelta(t, 104.0, res.Entry.CaloriesEstimated, 0.001)
		assert.False(t, res.ImageLabelUsed)
		assert.Nil(t, gallery)
	})
	t.Run("streak extended, no repeated badge", func(t *testing.T) {
		repo.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(recordWith(entity.UserProgress{Points: 15, Level: 1, Badges: []string{rewards.BadgeHealthyStart}, StreakDays: 1, LastEntryDate: &yesterday}, nil))
		res, err := serv.Submit(ctx, user, &service.FoodEntryRequest{FoodName: "banana", MealType: "breakfast", Quantity: "1 piece"})
		require.NoError(t, err)
		assert.Equal(t, 2, res.Progress.StreakDays)
		assert.Empty(t, res.NewBadges)
		assert.NotNil(t, res.NewBadges)
	})
	t.Run("image failure never fails submission", func(t *testing.T) {
		images.label, images.err = nil, errors.New("rekognition unavailable")
		var gallery *entity.GalleryItem
		repo.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(recordWith(entity.UserProgress{Level: 1, Badges: []string{}}, &gallery))
		res, err := serv.Submit(ctx, user, &service.FoodEntryRequest{FoodName: "salad", MealType: "lunch", Quantity: "bowl", Image: []byte{0xff, 0xd8}})
		require.NoError(t, err)
		assert.True(t, res.Entry.HasImage)
		assert.False(t, res.ImageLabelUsed)
		assert.Contains(t, res.NewBadges, rewards.BadgeAIExpert)
		require.NotNil(t, gallery)
		assert.Equal(t, "anna", gallery.Username)
	})
	t.Run("image label overrides typed name", func(t *testing.T) {
		images.label, images.err = &nutrition.ImageLabel{Label: "chips", Confidence: 0.8}, nil
		var gallery *entity.GalleryItem
		repo.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(recordWith(entity.UserProgress{Level: 1, Badges: []string{}}, &gallery))
		res, err := serv.Submit(ctx, user, &service.FoodEntryRequest{FoodName: "apple", MealType: "snack", Quantity: "1 bag", Image: []byte{1}})
		require.NoError(t, err)
		assert.Equal(t, "chips", res.Entry.DetectedFood)
		assert.True(t, res.ImageLabelUsed)
		assert.Equal(t, 3, res.PointsEarned)
		assert.Nil(t, gallery, "low scores stay out of the gallery")
	})
	t.Run("invalid meal type", func(t *testing.T) {
		_, err := serv.Submit(ctx, user, &service.FoodEntryRequest{FoodName: "apple", MealType: "brunch", Quantity: "1"})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("user vanished", func(t *testing.T) {
		images.label, images.err = nil, nil
		repo.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entity.UserProgress{}, errorvalues.ErrUserNotFound)
		_, err := serv.Submit(ctx, user, &service.FoodEntryRequest{FoodName: "apple", MealType: "snack", Quantity: "1"})
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

func TestCheckCaloriesAndCompare(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	serv := service.NewFoodEntriesService(mocks.NewMockFoodEntriesRepositoryI(ctrl), nil, nil, fixedCalendar(), 0)
	ctx := context.Background()
	t.Run("calorie check", func(t *testing.T) {
		res, err := serv.CheckCalories(ctx, "rice", "300 gram")
		require.NoError(t, err)
		assert.Equal(t, "grains", res.Category)
		assert.InDelta(t, res.CaloriesPer100g*3, res.EstimatedCalories, 0.001)
	})
	t.Run("calorie check without food", func(t *testing.T) {
		_, err := serv.CheckCalories(ctx, "  ", "300 gram")
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("compare", func(t *testing.T) {
		res, err := serv.Compare(ctx, "apple", "candy")
		require.NoError(t, err)
		assert.Equal(t, "apple", res.Winner)
		assert.GreaterOrEqual(t, res.ScoreDifference, 3)
	})
	t.Run("compare missing food", func(t *testing.T) {
		_, err := serv.Compare(ctx, "apple", "")
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
}

func TestListRecentEntries(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockFoodEntriesRepositoryI(ctrl)
	serv := service.NewFoodEntriesService(repo, nil, nil, fixedCalendar(), 0)
	ctx := context.Background()
	owner := uuid.New()
	entries := func() []*entity.FoodEntry {
		return []*entity.FoodEntry{{ID: uuid.New(), UserID: owner, FoodName: "apple"}}
	}
	t.Run("admin sees owners", func(t *testing.T) {
		repo.EXPECT().GetRecent(gomock.Any(), 1000).Return(entries(), nil)
		res, err := serv.ListRecent(ctx, &entity.User{Role: entity.RoleAdmin})
		require.NoError(t, err)
		assert.Equal(t, owner, res[0].UserID)
	})
	t.Run("teacher sees anonymized entries", func(t *testing.T) {
		repo.EXPECT().GetRecent(gomock.Any(), 1000).Return(entries(), nil)
		res, err := serv.ListRecent(ctx, &entity.User{Role: entity.RoleTeacher})
		require.NoError(t, err)
		assert.Equal(t, uuid.Nil, res[0].UserID)
	})
	t.Run("student is forbidden", func(t *testing.T) {
		_, err := serv.ListRecent(ctx, &entity.User{Role: entity.RoleStudentClass1})
		assert.ErrorIs(t, err, errorvalues.ErrForbidden)
	})
	t.Run("class summary is forbidden for students", func(t *testing.T) {
		_, err := serv.ClassSummary(ctx, &entity.User{Role: entity.RoleStudentClass2})
		assert.ErrorIs(t, err, errorvalues.ErrForbidden)
	})
	t.Run("stats carry progress", func(t *testing.T) {
		user := &entity.User{ID: owner, Progress: entity.UserProgress{Points: 40, Level: 1}}
		repo.EXPECT().UserStats(gomock.Any(), owner).Return(&entity.UserStats{TotalEntries: 3}, nil)
		stats, err := serv.Stats(ctx, user)
		require.NoError(t, err)
		assert.Equal(t, 40, stats.Progress.Points)
		assert.Equal(t, []string{}, stats.Progress.Badges)
	})
}
