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
	foodEntryColumns = `id, user_id, food_name, meal_type, quantity, has_image, score, feedback, suggestions, category,
		detected_food, confidence, calories_per_100g, calories_estimated, points_earned, created_at`

	insertFoodEntryQuery = `INSERT INTO food_entries (user_id, food_name, meal_type, quantity, has_image, score, feedback,
		suggestions, category, detected_food, confidence, calories_per_100g, calories_estimated, points_earned)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14) RETURNING id, created_at;`

	insertGalleryItemQuery = `INSERT INTO gallery_items (user_id, username, food_entry_id, food_name, image, score)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at;`
)

type FoodEntriesRepository struct {
	conn PgConnection
}

func NewFoodEntriesRepo(conn PgConnection) *FoodEntriesRepository {
	return &FoodEntriesRepository{
		conn: conn,
	}
}

func scanFoodEntry(row pgx.Row) (*entity.FoodEntry, error) {
	var e entity.FoodEntry
	err := row.Scan(&e.ID, &e.UserID, &e.FoodName, &e.MealType, &e.Quantity, &e.HasImage, &e.Score, &e.Feedback,
		&e.Suggestions, &e.Category, &e.DetectedFood, &e.Confidence, &e.CaloriesPer100g, &e.CaloriesEstimated,
		&e.PointsEarned, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (fr *FoodEntriesRepository) Record(ctx context.Context, entry *entity.FoodEntry, gallery *entity.GalleryItem, apply ProgressFunc) (entity.UserProgress, error) {
	if entry == nil {
		return entity.UserProgress{}, errors.New("food entry is nil")
	}
	var result entity.UserProgress
	err := inTx(ctx, fr.conn, func(tx pgx.Tx) error {
		current, err := lockProgress(ctx, tx, entry.UserID)
		if err != nil {
			return err
		}
		next, err := apply(current)
		if err != nil {
			return err
		}
		suggestions := entry.Suggestions
		if suggestions == nil {
			suggestions = []string{}
		}
		row := tx.QueryRow(ctx, insertFoodEntryQuery,
			entry.UserID, entry.FoodName, entry.MealType, entry.Quantity, entry.HasImage, entry.Score, entry.Feedback,
			suggestions, entry.Category, entry.DetectedFood, entry.Confidence, entry.CaloriesPer100g,
			entry.CaloriesEstimated, entry.PointsEarned,
		)
		if err = row.Scan(&entry.ID, &entry.CreatedAt); err != nil {
			if pgErrCode(err) == pgForeignKeyViolation {
				return errorvalues.ErrUserNotFound
			}
			return errors.New("creating food entry error: " + err.Error())
		}
		if gallery != nil {
			gallery.UserID = entry.UserID
			gallery.FoodEntryID = entry.ID
			row = tx.QueryRow(ctx, insertGalleryItemQuery,
				gallery.UserID, gallery.Username, gallery.FoodEntryID, gallery.FoodName, gallery.Image, gallery.Score,
			)
			if err = row.Scan(&gallery.ID, &gallery.CreatedAt); err != nil {
				return errors.New("creating gallery item error: " + err.Error())
			}
		}
		if err = saveProgress(ctx, tx, entry.UserID, next); err != nil {
			return err
		}
		result = next
		return nil
	})
	return result, err
}

func (fr *FoodEntriesRepository) GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.FoodEntry, error) {
	rows, err := fr.conn.Query(ctx, `SELECT `+foodEntryColumns+` FROM food_entries
		WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3;`, uid, limit, offset)
	if err != nil {
		return nil, errors.New("getting food entries by uid error: " + err.Error())
	}
	return collectFoodEntries(rows)
}

func (fr *FoodEntriesRepository) GetRecent(ctx context.Context, limit int) ([]*entity.FoodEntry, error) {
	rows, err := fr.conn.Query(ctx, `SELECT `+foodEntryColumns+` FROM food_entries ORDER BY created_at DESC LIMIT $1;`, limit)
	if err != nil {
		return nil, errors.New("getting recent food entries error: " + err.Error())
	}
	return collectFoodEntries(rows)
}

func collectFoodEntries(rows pgx.Rows) ([]*entity.FoodEntry, error) {
	defer rows.Close()
	entries := make([]*entity.FoodEntry, 0)
	for rows.Next() {
		e, err := scanFoodEntry(rows)
		if err != nil {
			return nil, errors.New("unmarshalling food entry error: " + err.Error())
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning food entries: " + err.Error())
	}
	return entries, nil
}

func (fr *FoodEntriesRepository) UserStats(ctx context.Context, uid uuid.UUID) (*entity.UserStats, error) {
	var stats entity.UserStats
	row := fr.conn.QueryRow(ctx, `SELECT COUNT(*), COALESCE(AVG(score), 0)::float8,
		COALESCE(SUM(calories_estimated), 0)::float8, COUNT(DISTINCT created_at::date)
		FROM food_entries WHERE user_id = $1;`, uid)
	if err := row.Scan(&stats.TotalEntries, &stats.AvgScore, &stats.TotalCalories, &stats.ActiveDays); err != nil {
		return nil, errors.New("getting user stats error: " + err.Error())
	}
	if stats.ActiveDays > 0 {
		stats.AvgCaloriesPerDay = stats.TotalCalories / float64(stats.ActiveDays)
	}
	return &stats, nil
}

func (fr *FoodEntriesRepository) ClassSummary(ctx context.Context) ([]entity.ClassSummary, error) {
	rows, err := fr.conn.Query(ctx, `SELECT u.class_code, COUNT(f.id), COALESCE(AVG(f.score), 0)::float8,
		COALESCE(SUM(f.points_earned), 0), COALESCE(AVG(f.calories_estimated), 0)::float8, COUNT(DISTINCT f.user_id)
		FROM food_entries f JOIN users u ON u.id = f.user_id
		GROUP BY u.class_code ORDER BY u.class_code;`)
	if err != nil {
		return nil, errors.New("getting class summary error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.ClassSummary, 0)
	for rows.Next() {
		var s entity.ClassSummary
		if err = rows.Scan(&s.ClassCode, &s.TotalEntries, &s.AvgScore, &s.TotalPoints, &s.AvgCalories, &s.ActiveUsers); err != nil {
			return nil, errors.New("class summary row parsing error: " + err.Error())
		}
		result = append(result, s)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected class summary rows error: " + err.Error())
	}
	return result, nil
}
