package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/snackcheck/internal/error_values"
	"github.com/limbo/snackcheck/pkg/entity"
)

const (
	QuestionDateLayout = "2006-01-02"

	insertQuizResponseQuery = `INSERT INTO quiz_responses (user_id, question_id, answer, points_earned)
		VALUES ($1, $2, $3, $4) RETURNING id, created_at;`
)

type QuizRepository struct {
	conn PgConnection
}

func NewQuizRepo(conn PgConnection) *QuizRepository {
	return &QuizRepository{
		conn: conn,
	}
}

func (qr *QuizRepository) CreateQuestion(ctx context.Context, q *entity.QuizQuestion) (uuid.UUID, error) {
	if q == nil {
		return uuid.Nil, errors.New("question is nil")
	}
	date, err := time.Parse(QuestionDateLayout, q.Date)
	if err != nil {
		return uuid.Nil, errors.Join(errorvalues.ErrValidation, err)
	}
	var id uuid.UUID
	row := qr.conn.QueryRow(ctx, `INSERT INTO quiz_questions (question, options, question_date, active, points_reward)
		VALUES ($1, $2, $3, $4, $5) RETURNING id;`,
		q.Question, q.Options, date, q.Active, q.PointsReward,
	)
	if err = row.Scan(&id); err != nil {
		return uuid.Nil, errors.New("creating question error: " + err.Error())
	}
	return id, nil
}

func scanQuestion(row pgx.Row) (*entity.QuizQuestion, error) {
	var (
		q    entity.QuizQuestion
		date time.Time
	)
	if err := row.Scan(&q.ID, &q.Question, &q.Options, &date, &q.Active, &q.PointsReward); err != nil {
		return nil, err
	}
	q.Date = date.Format(QuestionDateLayout)
	return &q, nil
}

func (qr *QuizRepository) GetQuestion(ctx context.Context, id uuid.UUID) (*entity.QuizQuestion, error) {
	row := qr.conn.QueryRow(ctx, `SELECT id, question, options, question_date, active, points_reward
		FROM quiz_questions WHERE id = $1;`, id)
	q, err := scanQuestion(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrQuestionNotFound
		}
		return nil, errors.New("getting question by id error: " + err.Error())
	}
	return q, nil
}

func (qr *QuizRepository) GetByDate(ctx context.Context, date time.Time) ([]*entity.QuizQuestion, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	rows, err := qr.conn.Query(ctx, `SELECT id, question, options, question_date, active, points_reward
		FROM quiz_questions WHERE question_date = $1 AND active ORDER BY id;`, day)
	if err != nil {
		return nil, errors.New("getting questions by date error: " + err.Error())
	}
	defer rows.Close()
	questions := make([]*entity.QuizQuestion, 0)
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, errors.New("unmarshalling question error: " + err.Error())
		}
		questions = append(questions, q)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning questions: " + err.Error())
	}
	return questions, nil
}

func (qr *QuizRepository) RecordResponse(ctx context.Context, resp *entity.QuizResponse, apply ProgressFunc) (entity.UserProgress, error) {
	if resp == nil {
		return entity.UserProgress{}, errors.New("response is nil")
	}
	var result entity.UserProgress
	err := inTx(ctx, qr.conn, func(tx pgx.Tx) error {
		current, err := lockProgress(ctx, tx, resp.UserID)
		if err != nil {
			return err
		}
		row := tx.QueryRow(ctx, insertQuizResponseQuery, resp.UserID, resp.QuestionID, resp.Answer, resp.PointsEarned)
		if err = row.Scan(&resp.ID, &resp.CreatedAt); err != nil {
			switch pgErrCode(err) {
			case pgUniqueViolation:
				return errorvalues.ErrAlreadyAnswered
			case pgForeignKeyViolation:
				return errorvalues.ErrQuestionNotFound
			}
			return errors.New("creating quiz response error: " + err.Error())
		}
		next, err := apply(current)
		if err != nil {
			return err
		}
		if err = saveProgress(ctx, tx, resp.UserID, next); err != nil {
			return err
		}
		result = next
		return nil
	})
	return result, err
}
