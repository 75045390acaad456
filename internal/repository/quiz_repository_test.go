package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/snackcheck/internal/error_values"
	"github.com/limbo/snackcheck/internal/repository"
	"github.com/limbo/snackcheck/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateQuestion(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewQuizRepo(conn)
	q := entity.QuizQuestion{
		Question:     "Which snack is healthiest?",
		Options:      []string{"apple", "chips"},
		Date:         "2024-03-11",
		Active:       true,
		PointsReward: 5,
	}
	id := uuid.New()
	t.Run("created", func(t *testing.T) {
		conn.ExpectQuery(regexp.QuoteMeta(`INSERT INTO quiz_questions`)).
			WithArgs(q.Question, q.Options, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), true, 5).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(id))
		result, err := repo.CreateQuestion(ctx, &q)
		assert.NoError(t, err)
		assert.Equal(t, id, result)
	})
	t.Run("bad date", func(t *testing.T) {
		bad := q
		bad.Date = "11-03-2024"
		_, err := repo.CreateQuestion(ctx, &bad)
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
}

func TestGetQuestions(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewQuizRepo(conn)
	columns := []string{"id", "question", "options", "question_date", "active", "points_reward"}
	id := uuid.New()
	day := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	t.Run("by id", func(t *testing.T) {
		conn.ExpectQuery(regexp.QuoteMeta(`FROM quiz_questions WHERE id = $1;`)).
			WithArgs(id).
			WillReturnRows(pgxmock.NewRows(columns).AddRow(id, "q?", []string{"a", "b"}, day, true, 5))
		q, err := repo.GetQuestion(ctx, id)
		assert.NoError(t, err)
		assert.Equal(t, "2024-03-11", q.Date)
	})
	t.Run("by id not found", func(t *testing.T) {
		conn.ExpectQuery(regexp.QuoteMeta(`FROM quiz_questions WHERE id = $1;`)).
			WithArgs(id).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetQuestion(ctx, id)
		assert.ErrorIs(t, err, errorvalues.ErrQuestionNotFound)
	})
	t.Run("by date", func(t *testing.T) {
		local := time.Date(2024, 3, 11, 23, 30, 0, 0, time.FixedZone("CET", 3600))
		conn.ExpectQuery(regexp.QuoteMeta(`WHERE question_date = $1 AND active`)).
			WithArgs(day).
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow(id, "q1?", []string{"a", "b"}, day, true, 5).
				AddRow(uuid.New(), "q2?", []string{"a", "b", "c"}, day, true, 10))
		qs, err := repo.GetByDate(ctx, local)
		assert.NoError(t, err)
		require.Len(t, qs, 2)
		assert.Equal(t, 10, qs[1].PointsReward)
	})
}

func TestRecordResponse(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewQuizRepo(conn)
	uid, qid := uuid.New(), uuid.New()
	insert := regexp.QuoteMeta(`INSERT INTO quiz_responses`)
	reward := func(current entity.UserProgress) (entity.UserProgress, error) {
		current.Points += 5
		current.Level = current.Points/100 + 1
		return current, nil
	}
	resp := func() *entity.QuizResponse {
		return &entity.QuizResponse{UserID: uid, QuestionID: qid, Answer: "apple", PointsEarned: 5}
	}
	t.Run("recorded", func(t *testing.T) {
		conn.ExpectBegin()
		conn.ExpectQuery(lockQuery).
			WithArgs(uid).
			WillReturnRows(pgxmock.NewRows(progressColumns).AddRow(98, 1, []string{}, 2, nil))
		conn.ExpectQuery(insert).
			WithArgs(uid, qid, "apple", 5).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(uuid.New(), time.Now()))
		conn.ExpectExec(updateQuery).
			WithArgs(103, 2, []string{}, 2, pgxmock.AnyArg(), uid).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		conn.ExpectCommit()
		p, err := repo.RecordResponse(ctx, resp(), reward)
		assert.NoError(t, err)
		assert.Equal(t, 103, p.Points)
		assert.Equal(t, 2, p.Level)
	})
	t.Run("already answered", func(t *testing.T) {
		conn.ExpectBegin()
		conn.ExpectQuery(lockQuery).
			WithArgs(uid).
			WillReturnRows(pgxmock.NewRows(progressColumns).AddRow(103, 2, []string{}, 2, nil))
		conn.ExpectQuery(insert).
			WithArgs(uid, qid, "apple", 5).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		conn.ExpectRollback()
		_, err := repo.RecordResponse(ctx, resp(), reward)
		assert.ErrorIs(t, err, errorvalues.ErrAlreadyAnswered)
	})
	t.Run("question vanished", func(t *testing.T) {
		conn.ExpectBegin()
		conn.ExpectQuery(lockQuery).
			WithArgs(uid).
			WillReturnRows(pgxmock.NewRows(progressColumns).AddRow(103, 2, []string{}, 2, nil))
		conn.ExpectQuery(insert).
			WithArgs(uid, qid, "apple", 5).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		conn.ExpectRollback()
		_, err := repo.RecordResponse(ctx, resp(), reward)
		assert.ErrorIs(t, err, errorvalues.ErrQuestionNotFound)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}
