package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"artcenter/internal/models"
)

type subcategoryRepository struct {
	db *sqlx.DB
}

func NewSubcategoryRepository(db *sqlx.DB) SubcategoryRepository {
	return &subcategoryRepository{db: db}
}

func (r *subcategoryRepository) Create(ctx context.Context, subcategory *models.Subcategory) error {
	query := `
		INSERT INTO subcategories (category_id, name, history, features, requirements, tutorials)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.GetContext(ctx, &subcategory.ID, query,
		subcategory.CategoryID,
		subcategory.Name,
		subcategory.History,
		subcategory.Features,
		subcategory.Requirements,
		subcategory.Tutorials,
	)
	if err != nil {
		if terr := translateError(err); isConstraintError(terr) {
			return terr
		}
		return fmt.Errorf("ошибка при создании подкатегории: %w", err)
	}

	return nil
}

func (r *subcategoryRepository) GetAll(ctx context.Context) ([]models.Subcategory, error) {
	query := `
		SELECT id, category_id, name, history, features, requirements, tutorials
		FROM subcategories
		ORDER BY category_id, id
	`

	var subcategories []models.Subcategory
	err := r.db.SelectContext(ctx, &subcategories, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении подкатегорий: %w", err)
	}

	return subcategories, nil
}

func (r *subcategoryRepository) GetByCategory(ctx context.Context, categoryID int64) ([]models.Subcategory, error) {
	query := `
		SELECT id, category_id, name, history, features, requirements, tutorials
		FROM subcategories
		WHERE category_id = $1
		ORDER BY id
	`

	var subcategories []models.Subcategory
	err := r.db.SelectContext(ctx, &subcategories, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении подкатегорий категории: %w", err)
	}

	return subcategories, nil
}

func (r *subcategoryRepository) GetByID(ctx context.Context, subcategoryID int64) (*models.Subcategory, error) {
	var subcategory models.Subcategory

	query := `
		SELECT id, category_id, name, history, features, requirements, tutorials
		FROM subcategories
		WHERE id = $1
	`

	err := r.db.GetContext(ctx, &subcategory, query, subcategoryID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении подкатегории: %w", err)
	}

	return &subcategory, nil
}

// NameExists - уникальность имени проверяется внутри категории, а не глобально
func (r *subcategoryRepository) NameExists(ctx context.Context, categoryID int64, name string) (bool, error) {
	var exists bool

	query := `SELECT EXISTS(SELECT 1 FROM subcategories WHERE category_id = $1 AND name = $2)`

	err := r.db.GetContext(ctx, &exists, query, categoryID, name)
	if err != nil {
		return false, fmt.Errorf("ошибка при проверке имени подкатегории: %w", err)
	}

	return exists, nil
}

func (r *subcategoryRepository) Update(ctx context.Context, subcategory *models.Subcategory) error {
	query := `
		UPDATE subcategories
		SET name = $1, history = $2, features = $3, requirements = $4, tutorials = $5
		WHERE id = $6
	`

	result, err := r.db.ExecContext(ctx, query,
		subcategory.Name,
		subcategory.History,
		subcategory.Features,
		subcategory.Requirements,
		subcategory.Tutorials,
		subcategory.ID,
	)
	if err != nil {
		if terr := translateError(err); isConstraintError(terr) {
			return terr
		}
		return fmt.Errorf("ошибка при обновлении подкатегории: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *subcategoryRepository) Delete(ctx context.Context, subcategoryID int64) error {
	query := `DELETE FROM subcategories WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, subcategoryID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении подкатегории: %w", err)
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
