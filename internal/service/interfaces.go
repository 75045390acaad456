package service

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks github.com/limbo/snackcheck/internal/service UserServiceI,FoodEntriesServiceI,QuizServiceI,GalleryServiceI,ChatServiceI

import (
	"context"

	"github.com/google/uuid"
	"github.com/limbo/snackcheck/internal/nutrition"
	"github.com/limbo/snackcheck/pkg/entity"
)

type CreateUserRequest struct {
	Name      string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password  string `validate:"required,min=6,max=72"`
	ClassCode string `validate:"required,alphanum,max=20"`
	// Empty role means it is derived from the class code
	Role string `validate:"omitempty,user_role"`
}

type FoodEntryRequest struct {
	FoodName string `validate:"required,max=200"`
	MealType string `validate:"required,oneof=breakfast lunch dinner snack"`
	Quantity string `validate:"required,max=100"`
	Image    []byte `validate:"max=5242880"`
}

type CreateQuestionRequest struct {
	Question     string   `validate:"required,max=500"`
	Options      []string `validate:"min=2,max=10,dive,required,max=200"`
	Date         string   `validate:"required,datetime=2006-01-02"`
	PointsReward *int     `validate:"omitempty,min=0,max=100"`
}

type QuizAnswerRequest struct {
	QuestionID uuid.UUID `validate:"required"`
	Answer     string    `validate:"required,max=500"`
}

type SubmissionResult struct {
	Entry          *entity.FoodEntry   `json:"entry"`
	Progress       entity.UserProgress `json:"progress"`
	PointsEarned   int                 `json:"points_earned"`
	NewBadges      []string            `json:"new_badges"`
	ImageLabelUsed bool                `json:"image_label_used"`
}

type CalorieCheckResult struct {
	FoodName          string  `json:"food_name"`
	Quantity          string  `json:"quantity"`
	CaloriesPer100g   float64 `json:"calories_per_100g"`
	EstimatedCalories float64 `json:"estimated_calories"`
	Score             int     `json:"score"`
	Category          string  `json:"category"`
	Tips              string  `json:"tips"`
}

type UserServiceI interface {
	// Validates request, derives role and creates user. Returns user's data with ID
	CreateUser(ctx context.Context, req *CreateUserRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password, classCode string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	List(ctx context.Context, limit, offset int) ([]*entity.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
	ResetProgress(ctx context.Context, id uuid.UUID) (entity.UserProgress, error)
	// Admins see every class, everyone else only their own
	Leaderboard(ctx context.Context, viewer *entity.User) ([]entity.LeaderboardRow, error)
}

type FoodEntriesServiceI interface {
	Submit(ctx context.Context, user *entity.User, req *FoodEntryRequest) (*SubmissionResult, error)
	CheckCalories(ctx context.Context, foodName, quantity string) (*CalorieCheckResult, error)
	Compare(ctx context.Context, firstFood, secondFood string) (*nutrition.Comparison, error)
	ListOwn(ctx context.Context, uid uuid.UUID) ([]*entity.FoodEntry, error)
	ListRecent(ctx context.Context, viewer *entity.User) ([]*entity.FoodEntry, error)
	Stats(ctx context.Context, user *entity.User) (*entity.UserStats, error)
	ClassSummary(ctx context.Context, viewer *entity.User) ([]entity.ClassSummary, error)
}

type QuizServiceI interface {
	CreateQuestion(ctx context.Context, req *CreateQuestionRequest) (*entity.QuizQuestion, error)
	TodaysQuestions(ctx context.Context) ([]*entity.QuizQuestion, error)
	SubmitResponse(ctx context.Context, user *entity.User, req *QuizAnswerRequest) (*entity.QuizResponse, entity.UserProgress, error)
}

type GalleryServiceI interface {
	List(ctx context.Context) ([]*entity.GalleryItem, error)
	Like(ctx context.Context, id uuid.UUID) (int, error)
}

type ChatServiceI interface {
	Send(ctx context.Context, user *entity.User, message string) (*entity.ChatMessage, error)
	List(ctx context.Context) ([]*entity.ChatMessage, error)
}
