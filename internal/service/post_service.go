package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"artcenter/internal/models"
	"artcenter/internal/policy"
	"artcenter/internal/repository"
	"artcenter/internal/storage"
)

// ErrForbidden - аутентифицированный пользователь не имеет права
// на действие с этим ресурсом
var ErrForbidden = errors.New("доступ запрещен")

type PostService interface {
	CreatePost(ctx context.Context, authorID int64, description *string, tagID *int64, fileName string, file io.Reader, size int64) (*models.Post, error)
	DeletePost(ctx context.Context, identity models.Identity, postID int64) error
}

type postService struct {
	postRepo repository.PostRepository
	storage  storage.Storage
}

func NewPostService(postRepo repository.PostRepository, storage storage.Storage) PostService {
	return &postService{
		postRepo: postRepo,
		storage:  storage,
	}
}

// CreatePost загружает изображение в хранилище и создаёт запись.
// Если вставка не удалась, загруженный объект убирается, чтобы
// в хранилище не оставалось осиротевших файлов.
func (p *postService) CreatePost(ctx context.Context, authorID int64, description *string, tagID *int64, fileName string, file io.Reader, size int64) (*models.Post, error) {
	objectName, contentURL, err := p.storage.UploadImage(ctx, "posts", fileName, file, size)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки изображения: %w", err)
	}

	post := &models.Post{
		UserID:      authorID,
		ContentURL:  contentURL,
		Description: description,
		TagID:       tagID,
	}

	err = p.postRepo.Create(ctx, post)
	if err != nil {
		if derr := p.storage.DeleteImage(ctx, objectName); derr != nil {
			log.Printf("Предупреждение: не удалось удалить объект %s: %v", objectName, derr)
		}
		return nil, err
	}

	return post, nil
}

// DeletePost: сначала существование (404), затем политика (403),
// затем удаление - в этом порядке для всех ресурсов
func (p *postService) DeletePost(ctx context.Context, identity models.Identity, postID int64) error {
	ownerID, err := p.postRepo.GetOwnerID(ctx, postID)
	if err != nil {
		return err
	}

	if !policy.CanModify(identity, ownerID) {
		return ErrForbidden
	}

	return p.postRepo.Delete(ctx, postID)
}
