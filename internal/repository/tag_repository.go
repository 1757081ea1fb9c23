package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"artcenter/internal/models"
)

type tagRepository struct {
	db *sqlx.DB
}

func NewTagRepository(db *sqlx.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(ctx context.Context, tag *models.Tag) error {
	query := `
		INSERT INTO tags (name, category_id, subcategory_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.GetContext(ctx, &tag.ID, query, tag.Name, tag.CategoryID, tag.SubcategoryID)
	if err != nil {
		if terr := translateError(err); isConstraintError(terr) {
			return terr
		}
		return fmt.Errorf("ошибка при создании тега: %w", err)
	}

	return nil
}

func (r *tagRepository) GetAll(ctx context.Context) ([]models.Tag, error) {
	query := `SELECT id, name, category_id, subcategory_id FROM tags ORDER BY id`

	var tags []models.Tag
	err := r.db.SelectContext(ctx, &tags, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении тегов: %w", err)
	}

	return tags, nil
}

func (r *tagRepository) Delete(ctx context.Context, tagID int64) error {
	query := `DELETE FROM tags WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, tagID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении тега: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
