package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/snackcheck/internal/error_values"
	"github.com/limbo/snackcheck/pkg/entity"
)

const (
	lockProgressQuery   = `SELECT points, level, badges, streak_days, last_entry_date FROM users WHERE id = $1 FOR UPDATE;`
	updateProgressQuery = `UPDATE users SET points = $1, level = $2, badges = $3, streak_days = $4, last_entry_date = $5 WHERE id = $6;`
)

func lockProgress(ctx context.Context, tx pgx.Tx, uid uuid.UUID) (entity.UserProgress, error) {
	var p entity.UserProgress
	row := tx.QueryRow(ctx, lockProgressQuery, uid)
	if err := row.Scan(&p.Points, &p.Level, &p.Badges, &p.StreakDays, &p.LastEntryDate); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return p, errorvalues.ErrUserNotFound
		}
		return p, errors.New("locking user progress error: " + err.Error())
	}
	return p, nil
}

func saveProgress(ctx context.Context, tx pgx.Tx, uid uuid.UUID, p entity.UserProgress) error {
	badges := p.Badges
	if badges == nil {
		badges = []string{}
	}
	ct, err := tx.Exec(ctx, updateProgressQuery, p.Points, p.Level, badges, p.StreakDays, p.LastEntryDate, uid)
	if err != nil {
		return errors.New("updating user progress error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}
