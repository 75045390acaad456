package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/snackcheck/internal/error_values"
	"github.com/limbo/snackcheck/internal/repository"
	"github.com/limbo/snackcheck/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGallery(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewGalleryRepo(conn)
	id := uuid.New()
	likeQuery := regexp.QuoteMeta(`UPDATE gallery_items SET likes = likes + 1 WHERE id = $1 RETURNING likes;`)
	t.Run("list", func(t *testing.T) {
		columns := []string{"id", "user_id", "username", "food_entry_id", "food_name", "image", "score", "likes", "created_at"}
		conn.ExpectQuery(regexp.QuoteMeta(`FROM gallery_items ORDER BY created_at DESC LIMIT $1;`)).
			WithArgs(20).
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow(id, uuid.New(), "anna", uuid.New(), "salad", []byte{1, 2}, 8, 3, time.Now()))
		items, err := repo.List(ctx, 20)
		assert.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, 3, items[0].Likes)
	})
	t.Run("like", func(t *testing.T) {
		conn.ExpectQuery(likeQuery).WithArgs(id).WillReturnRows(pgxmock.NewRows([]string{"likes"}).AddRow(4))
		likes, err := repo.Like(ctx, id)
		assert.NoError(t, err)
		assert.Equal(t, 4, likes)
	})
	t.Run("like unknown item", func(t *testing.T) {
		conn.ExpectQuery(likeQuery).WithArgs(id).WillReturnError(pgx.ErrNoRows)
		_, err := repo.Like(ctx, id)
		assert.ErrorIs(t, err, errorvalues.ErrGalleryItemNotFound)
	})
}

func TestChat(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewChatRepo(conn)
	msg := entity.ChatMessage{UserID: uuid.New(), Username: "anna", Message: "hello", IsAdmin: false}
	insert := regexp.QuoteMeta(`INSERT INTO chat_messages`)
	t.Run("create", func(t *testing.T) {
		id := uuid.New()
		conn.ExpectQuery(insert).
			WithArgs(msg.UserID, msg.Username, msg.Message, msg.IsAdmin).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(id, time.Now()))
		m := msg
		assert.NoError(t, repo.Create(ctx, &m))
		assert.Equal(t, id, m.ID)
	})
	t.Run("create db error", func(t *testing.T) {
		conn.ExpectQuery(insert).
			WithArgs(msg.UserID, msg.Username, msg.Message, msg.IsAdmin).
			WillReturnError(errors.New("db error"))
		m := msg
		assert.Error(t, repo.Create(ctx, &m))
	})
	t.Run("list", func(t *testing.T) {
		conn.ExpectQuery(regexp.QuoteMeta(`FROM chat_messages ORDER BY created_at DESC LIMIT $1;`)).
			WithArgs(50).
			WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "username", "message", "is_admin", "created_at"}).
				AddRow(uuid.New(), msg.UserID, "anna", "hello", false, time.Now()).
				AddRow(uuid.New(), uuid.New(), "admin", "welcome", true, time.Now()))
		messages, err := repo.List(ctx, 50)
		assert.NoError(t, err)
		require.Len(t, messages, 2)
		assert.True(t, messages[1].IsAdmin)
	})
}
