package repository_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	errorvalues "github.com/limbo/snackcheck/internal/error_values"
	"github.com/limbo/snackcheck/internal/repository"
	"github.com/limbo/snackcheck/pkg/entity"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func TestRepositoriesIntegrational(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	cfg := setupTestDB(t)
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.ConnString())
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	users := repository.NewUsersRepo(pool)
	entries := repository.NewFoodEntriesRepo(pool)
	quiz := repository.NewQuizRepo(pool)
	gallery := repository.NewGalleryRepo(pool)
	chat := repository.NewChatRepo(pool)

	user := &entity.User{Name: "anna", PasswordHash: "hash", ClassCode: "KLAS1", Role: entity.RoleStudentClass1}
	t.Run("users", func(t *testing.T) {
		id, err := users.Create(ctx, user)
		require.NoError(t, err)
		user.ID = id
		_, err = users.Create(ctx, user)
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
		found, err := users.FindByName(ctx, "anna", "KLAS1")
		require.NoError(t, err)
		assert.Equal(t, id, found.ID)
		assert.Equal(t, 1, found.Progress.Level)
		assert.Equal(t, []string{}, found.Progress.Badges)
		assert.Nil(t, found.Progress.LastEntryDate)
		_, err = users.FindByName(ctx, "anna", "KLAS2")
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	today := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	t.Run("record entry with gallery item", func(t *testing.T) {
		entry := &entity.FoodEntry{
			UserID: user.ID, FoodName: "salad", MealType: "lunch", Quantity: "200g", HasImage: true,
			Score: 9, Category: "vegetables", CaloriesPer100g: 20, CaloriesEstimated: 40, PointsEarned: 15,
		}
		item := &entity.GalleryItem{Username: user.Name, FoodName: "salad", Image: []byte{1, 2, 3}, Score: 9}
		p, err := entries.Record(ctx, entry, item, func(current entity.UserProgress) (entity.UserProgress, error) {
			current.Points += 15
			current.Badges = append(current.Badges, "healthy_start")
			current.StreakDays = 1
			current.LastEntryDate = &today
			return current, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 15, p.Points)
		found, err := users.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"healthy_start"}, found.Progress.Badges)
		require.NotNil(t, found.Progress.LastEntryDate)
		assert.True(t, found.Progress.LastEntryDate.Equal(today))

		own, err := entries.GetByUserID(ctx, user.ID, 10, 0)
		require.NoError(t, err)
		require.Len(t, own, 1)
		assert.Equal(t, entry.ID, own[0].ID)

		likes, err := gallery.Like(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, likes)
		_, err = gallery.Like(ctx, uuid.New())
		assert.ErrorIs(t, err, errorvalues.ErrGalleryItemNotFound)

		stats, err := entries.UserStats(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, stats.TotalEntries)
		assert.Equal(t, 40.0, stats.AvgCaloriesPerDay)

		board, err := users.Leaderboard(ctx, "KLAS1", 10)
		require.NoError(t, err)
		require.Len(t, board, 1)
		assert.Equal(t, 100, board[0].HealthyPercentage)
	})
	t.Run("quiz response once per question", func(t *testing.T) {
		qid, err := quiz.CreateQuestion(ctx, &entity.QuizQuestion{
			Question: "Best drink?", Options: []string{"water", "soda"}, Date: "2024-03-11", Active: true, PointsReward: 5,
		})
		require.NoError(t, err)
		todays, err := quiz.GetByDate(ctx, today)
		require.NoError(t, err)
		require.Len(t, todays, 1)
		reward := func(current entity.UserProgress) (entity.UserProgress, error) {
			current.Points += 5
			return current, nil
		}
		resp := &entity.QuizResponse{UserID: user.ID, QuestionID: qid, Answer: "water", PointsEarned: 5}
		p, err := quiz.RecordResponse(ctx, resp, reward)
		require.NoError(t, err)
		assert.Equal(t, 20, p.Points)
		_, err = quiz.RecordResponse(ctx, &entity.QuizResponse{UserID: user.ID, QuestionID: qid, Answer: "soda"}, reward)
		assert.ErrorIs(t, err, errorvalues.ErrAlreadyAnswered)
		found, err := users.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, 20, found.Progress.Points)
	})
	t.Run("chat", func(t *testing.T) {
		require.NoError(t, chat.Create(ctx, &entity.ChatMessage{UserID: user.ID, Username: user.Name, Message: "hi"}))
		messages, err := chat.List(ctx, 10)
		require.NoError(t, err)
		assert.Len(t, messages, 1)
	})
	t.Run("delete cascades", func(t *testing.T) {
		require.NoError(t, users.Delete(ctx, user.ID))
		_, err := users.UpdateProgress(ctx, user.ID, func(p entity.UserProgress) (entity.UserProgress, error) { return p, nil })
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
		recent, err := entries.GetRecent(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, recent)
	})
}

func setupTestDB(t *testing.T) *testPGConfig {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("snackcheck"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	connStr, err := container.ConnectionString(context.Background(), "sslmode=disable")
	if err != nil {
		t.Fatal(err)
	}
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	if err = goose.Up(conn, "../../migrations"); err != nil {
		t.Fatal(err)
	}
	return &testPGConfig{
		connStr: connStr,
	}
}
