package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/snackcheck/internal/error_values"
	"github.com/limbo/snackcheck/internal/nutrition"
	"github.com/limbo/snackcheck/internal/repository"
	"github.com/limbo/snackcheck/internal/rewards"
	"github.com/limbo/snackcheck/pkg/entity"
)

const (
	ownEntriesLimit    = 100
	recentEntriesLimit = 1000
	// Entries with a picture and at least this score go to the gallery
	DefaultGalleryMinScore = 6
)

type FoodEntriesService struct {
	repo            repository.FoodEntriesRepositoryI
	classifier      *nutrition.Classifier
	engine          *rewards.Engine
	calendar        Calendar
	galleryMinScore int
	logger          *slog.Logger
}

func NewFoodEntriesService(repo repository.FoodEntriesRepositoryI, classifier *nutrition.Classifier, engine *rewards.Engine, calendar Calendar, galleryMinScore int) *FoodEntriesService {
	if repo == nil {
		log.Fatal("on food entries service provided nil repo")
	}
	if classifier == nil {
		classifier = nutrition.NewClassifier(nil, nil, 0)
	}
	if engine == nil {
		engine = rewards.NewEngine(rewards.PolicyBanded)
	}
	if galleryMinScore <= 0 {
		galleryMinScore = DefaultGalleryMinScore
	}
	return &FoodEntriesService{
		repo:            repo,
		classifier:      classifier,
		engine:          engine,
		calendar:        calendar,
		galleryMinScore: galleryMinScore,
		logger:          slog.Default().With(slog.String("component", "food_entries_service")),
	}
}

// Submit classifies the food, estimates its calories and stores the entry
// together with the user's new progress. Image recognition problems never
// fail a submission.
func (fs *FoodEntriesService) Submit(ctx context.Context, user *entity.User, req *FoodEntryRequest) (*SubmissionResult, error) {
	if user == nil {
		return nil, errorvalues.ErrInvalidToken
	}
	req.FoodName = strings.TrimSpace(req.FoodName)
	req.MealType = strings.ToLower(strings.TrimSpace(req.MealType))
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	hasImage := len(req.Image) > 0
	classification, labelUsed := fs.classifier.Analyze(ctx, req.FoodName, req.Image)
	if hasImage {
		fs.logger.Debug("entry classified",
			slog.String("uid", user.ID.String()),
			slog.String("detected_food", classification.DetectedFood),
			slog.Bool("image_label_used", labelUsed),
		)
	}
	entry := &entity.FoodEntry{
		UserID:            user.ID,
		FoodName:          req.FoodName,
		MealType:          req.MealType,
		Quantity:          req.Quantity,
		HasImage:          hasImage,
		Score:             classification.Score,
		Feedback:          classification.Feedback,
		Suggestions:       classification.Suggestions,
		Category:          classification.Category,
		DetectedFood:      classification.DetectedFood,
		Confidence:        classification.Confidence,
		CaloriesPer100g:   classification.CaloriesPer100g,
		CaloriesEstimated: nutrition.EstimateCalories(req.Quantity, classification.CaloriesPer100g),
	}
	var gallery *entity.GalleryItem
	if hasImage && classification.Score >= fs.galleryMinScore {
		gallery = &entity.GalleryItem{
			Username: user.Name,
			FoodName: req.FoodName,
			Image:    req.Image,
			Score:    classification.Score,
		}
	}

	today := fs.calendar.Today()
	var outcome rewards.EntryOutcome
	progress, err := fs.repo.Record(ctx, entry, gallery, func(current entity.UserProgress) (entity.UserProgress, error) {
		outcome = fs.engine.ApplyEntry(current, classification, hasImage, today)
		entry.PointsEarned = outcome.PointsEarned
		return outcome.Progress, nil
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository recording entry error: " + err.Error())
	}
	newBadges := outcome.NewBadges
	if newBadges == nil {
		newBadges = []string{}
	}
	if len(outcome.NewBadges) > 0 {
		fs.logger.Info("badges awarded", slog.String("uid", user.ID.String()), slog.Any("badges", outcome.NewBadges))
	}
	return &SubmissionResult{
		Entry:          entry,
		Progress:       progress,
		PointsEarned:   outcome.PointsEarned,
		NewBadges:      newBadges,
		ImageLabelUsed: labelUsed,
	}, nil
}

func (fs *FoodEntriesService) CheckCalories(ctx context.Context, foodName, quantity string) (*CalorieCheckResult, error) {
	foodName = strings.TrimSpace(foodName)
	if foodName == "" {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("food name is empty"))
	}
	c := fs.classifier.Classify(foodName, "")
	return &CalorieCheckResult{
		FoodName:          foodName,
		Quantity:          quantity,
		CaloriesPer100g:   c.CaloriesPer100g,
		EstimatedCalories: nutrition.EstimateCalories(quantity, c.CaloriesPer100g),
		Score:             c.Score,
		Category:          c.Category,
		Tips:              c.Feedback,
	}, nil
}

func (fs *FoodEntriesService) Compare(ctx context.Context, firstFood, secondFood string) (*nutrition.Comparison, error) {
	firstFood, secondFood = strings.TrimSpace(firstFood), strings.TrimSpace(secondFood)
	if firstFood == "" || secondFood == "" {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("both foods are required"))
	}
	result := nutrition.Compare(
		firstFood, fs.classifier.Classify(firstFood, ""),
		secondFood, fs.classifier.Classify(secondFood, ""),
	)
	return &result, nil
}

func (fs *FoodEntriesService) ListOwn(ctx context.Context, uid uuid.UUID) ([]*entity.FoodEntry, error) {
	entries, err := fs.repo.GetByUserID(ctx, uid, ownEntriesLimit, 0)
	if err != nil {
		return nil, errors.New("repository listing entries error: " + err.Error())
	}
	return entries, nil
}

// ListRecent shows entries of everyone. Teachers get them without owner ids.
func (fs *FoodEntriesService) ListRecent(ctx context.Context, viewer *entity.User) ([]*entity.FoodEntry, error) {
	if !canSeeClassData(viewer) {
		return nil, errorvalues.ErrForbidden
	}
	entries, err := fs.repo.GetRecent(ctx, recentEntriesLimit)
	if err != nil {
		return nil, errors.New("repository listing entries error: " + err.Error())
	}
	if !viewer.IsAdmin() {
		for _, e := range entries {
			e.UserID = uuid.Nil
		}
	}
	return entries, nil
}

func (fs *FoodEntriesService) Stats(ctx context.Context, user *entity.User) (*entity.UserStats, error) {
	if user == nil {
		return nil, errorvalues.ErrInvalidToken
	}
	stats, err := fs.repo.UserStats(ctx, user.ID)
	if err != nil {
		return nil, errors.New("repository stats error: " + err.Error())
	}
	stats.Progress = user.Progress
	if stats.Progress.Badges == nil {
		stats.Progress.Badges = []string{}
	}
	return stats, nil
}

func (fs *FoodEntriesService) ClassSummary(ctx context.Context, viewer *entity.User) ([]entity.ClassSummary, error) {
	if !canSeeClassData(viewer) {
		return nil, errorvalues.ErrForbidden
	}
	summary, err := fs.repo.ClassSummary(ctx)
	if err != nil {
		return nil, errors.New("repository class summary error: " + err.Error())
	}
	return summary, nil
}

func canSeeClassData(u *entity.User) bool {
	return u != nil && (u.Role == entity.RoleAdmin || u.Role == entity.RoleTeacher)
}
