package repository

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/limbo/snackcheck/internal/repository UsersRepositoryI,FoodEntriesRepositoryI,QuizRepositoryI,GalleryRepositoryI,ChatRepositoryI

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/snackcheck/pkg/entity"
)

// ProgressFunc receives the locked, current progress of a user and returns
// its replacement. Returning an error aborts the whole transaction.
type ProgressFunc func(current entity.UserProgress) (entity.UserProgress, error)

type UsersRepositoryI interface {
	// Creates new user in database, returns its id
	Create(ctx context.Context, user *entity.User) (uuid.UUID, error)
	// Looks up user by name inside a class. Used for login
	FindByName(ctx context.Context, name, classCode string) (*entity.User, error)
	// Looks up user by uid. Used by authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Lists users, newest first
	List(ctx context.Context, limit, offset int) ([]*entity.User, error)
	// Deletes user with all owned records
	Delete(ctx context.Context, uid uuid.UUID) error
	// Replaces user's progress under a row lock
	UpdateProgress(ctx context.Context, uid uuid.UUID, apply ProgressFunc) (entity.UserProgress, error)
	// Users ordered by points. Empty classCode means every class
	Leaderboard(ctx context.Context, classCode string, limit int) ([]entity.LeaderboardRow, error)
}

type FoodEntriesRepositoryI interface {
	// Appends entry, optional gallery item and new progress in one transaction.
	// entry and gallery get their ids and creation times filled in
	Record(ctx context.Context, entry *entity.FoodEntry, gallery *entity.GalleryItem, apply ProgressFunc) (entity.UserProgress, error)
	// Lists user's entries, newest first
	GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.FoodEntry, error)
	// Lists entries of all users, newest first
	GetRecent(ctx context.Context, limit int) ([]*entity.FoodEntry, error)
	// Aggregates user's entries. Progress is left empty
	UserStats(ctx context.Context, uid uuid.UUID) (*entity.UserStats, error)
	// Aggregates entries per class code
	ClassSummary(ctx context.Context) ([]entity.ClassSummary, error)
}

type QuizRepositoryI interface {
	CreateQuestion(ctx context.Context, q *entity.QuizQuestion) (uuid.UUID, error)
	GetQuestion(ctx context.Context, id uuid.UUID) (*entity.QuizQuestion, error)
	// Active questions of a day
	GetByDate(ctx context.Context, date time.Time) ([]*entity.QuizQuestion, error)
	// Stores the response and the new progress in one transaction
	RecordResponse(ctx context.Context, resp *entity.QuizResponse, apply ProgressFunc) (entity.UserProgress, error)
}

type GalleryRepositoryI interface {
	// Lists gallery items, newest first
	List(ctx context.Context, limit int) ([]*entity.GalleryItem, error)
	// Increments likes, returns the new count
	Like(ctx context.Context, id uuid.UUID) (int, error)
}

type ChatRepositoryI interface {
	Create(ctx context.Context, msg *entity.ChatMessage) error
	// Lists messages, newest first
	List(ctx context.Context, limit int) ([]*entity.ChatMessage, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
