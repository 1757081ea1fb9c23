package service

import (
	"context"
	"fmt"
	"io"

	"artcenter/internal/models"
	"artcenter/internal/repository"
	"artcenter/internal/storage"
)

type UserService interface {
	GetProfile(ctx context.Context, userID int64) (*models.User, error)
	UpdateUsername(ctx context.Context, userID int64, username string) error
	UpdateAvatar(ctx context.Context, userID int64, fileName string, file io.Reader, size int64) (string, error)
}

type userService struct {
	accountRepo repository.AccountRepository
	storage     storage.Storage
}

func NewUserService(accountRepo repository.AccountRepository, storage storage.Storage) UserService {
	return &userService{
		accountRepo: accountRepo,
		storage:     storage,
	}
}

func (s *userService) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	return s.accountRepo.GetUserByID(ctx, userID)
}

func (s *userService) UpdateUsername(ctx context.Context, userID int64, username string) error {
	return s.accountRepo.UpdateUsername(ctx, userID, username)
}

// UpdateAvatar загружает новую аватарку и сохраняет её публичный URL
func (s *userService) UpdateAvatar(ctx context.Context, userID int64, fileName string, file io.Reader, size int64) (string, error) {
	objectName, avatarURL, err := s.storage.UploadImage(ctx, "avatars", fileName, file, size)
	if err != nil {
		return "", fmt.Errorf("ошибка загрузки аватара: %w", err)
	}

	err = s.accountRepo.UpdateAvatar(ctx, userID, avatarURL)
	if err != nil {
		if derr := s.storage.DeleteImage(ctx, objectName); derr != nil {
			return "", fmt.Errorf("ошибка сохранения аватара: %w (объект %s не удалён: %v)", err, objectName, derr)
		}
		return "", err
	}

	return avatarURL, nil
}
