package service

import (
	"context"
	"errors"

	"artcenter/internal/repository"
)

// ToggleResult - итог переключения отношения.
// Created=true означает, что пара только что вставлена (ответ 201).
type ToggleResult struct {
	Active  bool
	Created bool
}

// EngagementService переключает лайк/сохранение публикации.
// Схема insert-then-handle-conflict: вставка без предварительной проверки,
// дубликат означает "уже есть" и переводится в удаление. Так два
// параллельных toggle одного пользователя не могут создать вторую строку -
// гонку check-then-insert устраняет уникальный констрейнт хранилища.
type EngagementService interface {
	Toggle(ctx context.Context, kind repository.EngagementKind, userID, postID int64) (ToggleResult, error)
}

type engagementService struct {
	engagementRepo repository.EngagementRepository
}

func NewEngagementService(engagementRepo repository.EngagementRepository) EngagementService {
	return &engagementService{engagementRepo: engagementRepo}
}

func (s *engagementService) Toggle(ctx context.Context, kind repository.EngagementKind, userID, postID int64) (ToggleResult, error) {
	err := s.engagementRepo.Insert(ctx, kind, userID, postID)
	if err == nil {
		return ToggleResult{Active: true, Created: true}, nil
	}

	if errors.Is(err, repository.ErrConflict) {
		// пара уже существовала - второй вызов её снимает
		if err := s.engagementRepo.Delete(ctx, kind, userID, postID); err != nil {
			return ToggleResult{}, err
		}
		return ToggleResult{Active: false}, nil
	}

	// ErrInvalidReference (пост не существует) и прочие ошибки хранилища
	// уходят вызывающему как есть
	return ToggleResult{}, err
}
