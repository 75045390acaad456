package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/snackcheck/internal/error_values"
	"github.com/limbo/snackcheck/pkg/entity"
)

type GalleryRepository struct {
	conn PgConnection
}

func NewGalleryRepo(conn PgConnection) *GalleryRepository {
	return &GalleryRepository{
		conn: conn,
	}
}

func (gr *GalleryRepository) List(ctx context.Context, limit int) ([]*entity.GalleryItem, error) {
	rows, err := gr.conn.Query(ctx, `SELECT id, user_id, username, food_entry_id, food_name, image, score, likes, created_at
		FROM gallery_items ORDER BY created_at DESC LIMIT $1;`, limit)
	if err != nil {
		return nil, errors.New("listing gallery error: " + err.Error())
	}
	defer rows.Close()
	items := make([]*entity.GalleryItem, 0)
	for rows.Next() {
		var item entity.GalleryItem
		err = rows.Scan(&item.ID, &item.UserID, &item.Username, &item.FoodEntryID, &item.FoodName, &item.Image,
			&item.Score, &item.Likes, &item.CreatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling gallery item error: " + err.Error())
		}
		items = append(items, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning gallery: " + err.Error())
	}
	return items, nil
}

func (gr *GalleryRepository) Like(ctx context.Context, id uuid.UUID) (int, error) {
	var likes int
	row := gr.conn.QueryRow(ctx, `UPDATE gallery_items SET likes = likes + 1 WHERE id = $1 RETURNING likes;`, id)
	if err := row.Scan(&likes); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, errorvalues.ErrGalleryItemNotFound
		}
		return 0, errors.New("liking gallery item error: " + err.Error())
	}
	return likes, nil
}
