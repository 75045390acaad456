package repository

import (
	"context"
	"errors"
	"math"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/snackcheck/internal/error_values"
	"github.com/limbo/snackcheck/pkg/entity"
)

const userColumns = `id, name, password_hash, class_code, role, points, level, badges, streak_days, last_entry_date, created_at`

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepo(conn PgConnection) *UsersRepository {
	return &UsersRepository{
		conn: conn,
	}
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.PasswordHash,
		&u.ClassCode,
		&u.Role,
		&u.Progress.Points,
		&u.Progress.Level,
		&u.Progress.Badges,
		&u.Progress.StreakDays,
		&u.Progress.LastEntryDate,
		&u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (ur *UsersRepository) Create(ctx context.Context, user *entity.User) (uuid.UUID, error) {
	if user == nil {
		return uuid.Nil, errors.New("user is nil")
	}
	var id uuid.UUID
	row := ur.conn.QueryRow(ctx,
		`INSERT INTO users (name, password_hash, class_code, role) VALUES ($1, $2, $3, $4) RETURNING id;`,
		user.Name, user.PasswordHash, user.ClassCode, user.Role,
	)
	if err := row.Scan(&id); err != nil {
		// Unique violation on (name, class_code)
		if pgErrCode(err) == pgUniqueViolation {
			return uuid.Nil, errorvalues.ErrUserExists
		}
		return uuid.Nil, errors.New("creating user db error: " + err.Error())
	}
	return id, nil
}

func (ur *UsersRepository) FindByName(ctx context.Context, name, classCode string) (*entity.User, error) {
	row := ur.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE name = $1 AND class_code = $2;`, name, classCode)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by name error: " + err.Error())
	}
	return user, nil
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	row := ur.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1;`, uid)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by id error: " + err.Error())
	}
	return user, nil
}

func (ur *UsersRepository) List(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	rows, err := ur.conn.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at DESC LIMIT $1 OFFSET $2;`, limit, offset)
	if err != nil {
		return nil, errors.New("listing users error: " + err.Error())
	}
	defer rows.Close()
	users := make([]*entity.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, errors.New("unmarshalling user error: " + err.Error())
		}
		users = append(users, u)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning users: " + err.Error())
	}
	return users, nil
}

func (ur *UsersRepository) Delete(ctx context.Context, uid uuid.UUID) error {
	ct, err := ur.conn.Exec(ctx, `DELETE FROM users WHERE id = $1;`, uid)
	if err != nil {
		return errors.New("deleting user error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *UsersRepository) UpdateProgress(ctx context.Context, uid uuid.UUID, apply ProgressFunc) (entity.UserProgress, error) {
	var result entity.UserProgress
	err := inTx(ctx, ur.conn, func(tx pgx.Tx) error {
		current, err := lockProgress(ctx, tx, uid)
		if err != nil {
			return err
		}
		next, err := apply(current)
		if err != nil {
			return err
		}
		if err = saveProgress(ctx, tx, uid, next); err != nil {
			return err
		}
		result = next
		return nil
	})
	return result, err
}

const leaderboardQuery = `SELECT u.id, u.name, u.class_code, u.points, u.level, u.badges, u.streak_days,
		COUNT(f.id), COUNT(f.id) FILTER (WHERE f.score >= 7), MAX(f.created_at)
	FROM users u LEFT JOIN food_entries f ON f.user_id = u.id
	WHERE ($1::text = '' OR u.class_code = $1)
	GROUP BY u.id
	ORDER BY u.points DESC, u.name ASC
	LIMIT $2;`

func (ur *UsersRepository) Leaderboard(ctx context.Context, classCode string, limit int) ([]entity.LeaderboardRow, error) {
	rows, err := ur.conn.Query(ctx, leaderboardQuery, classCode, limit)
	if err != nil {
		return nil, errors.New("getting leaderboard error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.LeaderboardRow, 0, limit)
	for rows.Next() {
		var r entity.LeaderboardRow
		err = rows.Scan(&r.UserID, &r.Username, &r.ClassCode, &r.Points, &r.Level, &r.Badges, &r.StreakDays,
			&r.TotalEntries, &r.HealthyEntries, &r.LastEntry)
		if err != nil {
			return nil, errors.New("leaderboard row parsing error: " + err.Error())
		}
		r.Rank = len(result) + 1
		if r.TotalEntries > 0 {
			r.HealthyPercentage = int(math.Round(float64(r.HealthyEntries) / float64(r.TotalEntries) * 100))
		}
		if r.Badges == nil {
			r.Badges = []string{}
		}
		result = append(result, r)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected leaderboard rows error: " + err.Error())
	}
	return result, nil
}
