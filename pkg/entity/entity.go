package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleStudentClass1 = "student_class_1"
	RoleStudentClass2 = "student_class_2"
	RoleStudentClass3 = "student_class_3"
	RoleTeacher       = "teacher"
	RoleAdmin         = "admin"
)

// UserProgress is the gamification state owned by a user record.
// Level always equals Points/100 + 1 after a points mutation.
type UserProgress struct {
	Points        int        `json:"points"`
	Level         int        `json:"level"`
	Badges        []string   `json:"badges"`
	StreakDays    int        `json:"streak_days"`
	LastEntryDate *time.Time `json:"last_entry_date,omitempty"`
}

func (p UserProgress) HasBadge(badge string) bool {
	for _, b := range p.Badges {
		if b == badge {
			return true
		}
	}
	return false
}

type User struct {
	ID           uuid.UUID    `json:"id"`
	Name         string       `json:"username"`
	PasswordHash string       `json:"-"`
	ClassCode    string       `json:"class_code"`
	Role         string       `json:"role"`
	Progress     UserProgress `json:"progress"`
	CreatedAt    time.Time    `json:"created_at"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

type FoodCatalogEntry struct {
	Name            string  `mapstructure:"name" json:"name"`
	Score           int     `mapstructure:"score" json:"score"`
	Category        string  `mapstructure:"category" json:"category"`
	CaloriesPer100g float64 `mapstructure:"calories_per_100g" json:"calories_per_100g"`
	Feedback        string  `mapstructure:"feedback" json:"feedback"`
}

// Classification is the per-submission result of the nutrition classifier.
type Classification struct {
	Score           int      `json:"score"`
	Category        string   `json:"category"`
	CaloriesPer100g float64  `json:"calories_per_100g"`
	Feedback        string   `json:"feedback"`
	Suggestions     []string `json:"suggestions"`
	DetectedFood    string   `json:"detected_food"`
	Confidence      float64  `json:"confidence"`
}

type FoodEntry struct {
	ID                uuid.UUID `json:"id"`
	UserID            uuid.UUID `json:"uid"`
	FoodName          string    `json:"food_name"`
	MealType          string    `json:"meal_type"`
	Quantity          string    `json:"quantity"`
	HasImage          bool      `json:"has_image"`
	Score             int       `json:"score"`
	Feedback          string    `json:"feedback"`
	Suggestions       []string  `json:"suggestions"`
	Category          string    `json:"category"`
	DetectedFood      string    `json:"detected_food"`
	Confidence        float64   `json:"confidence"`
	CaloriesPer100g   float64   `json:"calories_per_100g"`
	CaloriesEstimated float64   `json:"calories_estimated"`
	PointsEarned      int       `json:"points_earned"`
	CreatedAt         time.Time `json:"created_at"`
}

type QuizQuestion struct {
	ID           uuid.UUID `json:"id"`
	Question     string    `json:"question"`
	Options      []string  `json:"options"`
	Date         string    `json:"date"`
	Active       bool      `json:"active"`
	PointsReward int       `json:"points_reward"`
}

type QuizResponse struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"uid"`
	QuestionID   uuid.UUID `json:"question_id"`
	Answer       string    `json:"answer"`
	PointsEarned int       `json:"points_earned"`
	CreatedAt    time.Time `json:"created_at"`
}

type GalleryItem struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"uid"`
	Username    string    `json:"username"`
	FoodEntryID uuid.UUID `json:"food_entry_id"`
	FoodName    string    `json:"food_name"`
	Image       []byte    `json:"image,omitempty"`
	Score       int       `json:"score"`
	Likes       int       `json:"likes"`
	CreatedAt   time.Time `json:"created_at"`
}

type ChatMessage struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"uid"`
	Username  string    `json:"username"`
	Message   string    `json:"message"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

type LeaderboardRow struct {
	Rank              int        `json:"rank"`
	UserID            uuid.UUID  `json:"uid"`
	Username          string     `json:"username"`
	ClassCode         string     `json:"class_code"`
	Points            int        `json:"points"`
	Level             int        `json:"level"`
	Badges            []string   `json:"badges"`
	StreakDays        int        `json:"streak_days"`
	TotalEntries      int        `json:"total_entries"`
	HealthyEntries    int        `json:"healthy_entries"`
	HealthyPercentage int        `json:"healthy_percentage"`
	LastEntry         *time.Time `json:"last_entry,omitempty"`
}

type UserStats struct {
	TotalEntries      int          `json:"total_entries"`
	AvgScore          float64      `json:"avg_score"`
	TotalCalories     float64      `json:"total_calories"`
	AvgCaloriesPerDay float64      `json:"avg_calories_per_day"`
	ActiveDays        int          `json:"active_days"`
	Progress          UserProgress `json:"progress"`
}

type ClassSummary struct {
	ClassCode    string  `json:"class_code"`
	TotalEntries int     `json:"total_entries"`
	AvgScore     float64 `json:"avg_score"`
	TotalPoints  int     `json:"total_points"`
	AvgCalories  float64 `json:"avg_calories"`
	ActiveUsers  int     `json:"active_users"`
}
