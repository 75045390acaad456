package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/snackcheck/internal/error_values"
	"github.com/limbo/snackcheck/internal/repository"
	"github.com/limbo/snackcheck/pkg/entity"
)

const (
	galleryPageSize = 50
	chatPageSize    = 100
	maxChatMessage  = 1000
)

type GalleryService struct {
	repo repository.GalleryRepositoryI
}

func NewGalleryService(repo repository.GalleryRepositoryI) *GalleryService {
	if repo == nil {
		log.Fatal("on gallery service provided nil repo")
	}
	return &GalleryService{repo: repo}
}

func (gs *GalleryService) List(ctx context.Context) ([]*entity.GalleryItem, error) {
	items, err := gs.repo.List(ctx, galleryPageSize)
	if err != nil {
		return nil, errors.New("repository listing gallery error: " + err.Error())
	}
	return items, nil
}

func (gs *GalleryService) Like(ctx context.Context, id uuid.UUID) (int, error) {
	likes, err := gs.repo.Like(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGalleryItemNotFound) {
			return 0, err
		}
		return 0, errors.New("repository liking error: " + err.Error())
	}
	return likes, nil
}

type ChatService struct {
	repo repository.ChatRepositoryI
}

func NewChatService(repo repository.ChatRepositoryI) *ChatService {
	if repo == nil {
		log.Fatal("on chat service provided nil repo")
	}
	return &ChatService{repo: repo}
}

func (cs *ChatService) Send(ctx context.Context, user *entity.User, message string) (*entity.ChatMessage, error) {
	if user == nil {
		return nil, errorvalues.ErrInvalidToken
	}
	message = strings.TrimSpace(message)
	if message == "" || utf8.RuneCountInString(message) > maxChatMessage {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("message must be 1-1000 characters"))
	}
	msg := &entity.ChatMessage{
		UserID:   user.ID,
		Username: user.Name,
		Message:  message,
		IsAdmin:  user.IsAdmin(),
	}
	if err := cs.repo.Create(ctx, msg); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository sending message error: " + err.Error())
	}
	return msg, nil
}

func (cs *ChatService) List(ctx context.Context) ([]*entity.ChatMessage, error) {
	messages, err := cs.repo.List(ctx, chatPageSize)
	if err != nil {
		return nil, errors.New("repository listing messages error: " + err.Error())
	}
	return messages, nil
}
