package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"artcenter/internal/models"
)

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

// feedColumns - строка ленты: пост + тег + флаги liked/saved зрителя.
// Флаги вычисляются LEFT JOIN-ами на отношения лайков и сохранений.
const feedColumns = `
		p.id,
		p.user_id,
		p.content_url,
		p.tag_id,
		t.name AS tag_name,
		t.category_id,
		t.subcategory_id,
		(pl.user_id IS NOT NULL) AS liked,
		(ps.user_id IS NOT NULL) AS saved`

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO posts (user_id, content_url, description, tag_id, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	row := r.db.QueryRowxContext(ctx, query,
		post.UserID, post.ContentURL, post.Description, post.TagID)

	err := row.Scan(&post.ID, &post.CreatedAt)
	if err != nil {
		// несуществующий тег отклоняется внешним ключом
		if terr := translateError(err); isConstraintError(terr) {
			return terr
		}
		return fmt.Errorf("ошибка при создании публикации: %w", err)
	}

	return nil
}

func (r *postRepository) GetByID(ctx context.Context, postID, viewerID int64) (*models.PostDetail, error) {
	query := `
		SELECT
			p.id,
			p.user_id,
			p.content_url,
			p.description,
			p.created_at,
			(SELECT COUNT(*) FROM post_likes WHERE post_id = p.id) AS likes,
			p.tag_id,
			t.name AS tag_name,
			t.category_id,
			t.subcategory_id,
			(pl.user_id IS NOT NULL) AS liked,
			(ps.user_id IS NOT NULL) AS saved
		FROM posts p
		LEFT JOIN tags t ON p.tag_id = t.id
		LEFT JOIN post_likes pl ON pl.user_id = $2 AND pl.post_id = p.id
		LEFT JOIN post_saves ps ON ps.user_id = $2 AND ps.post_id = p.id
		WHERE p.id = $1
	`

	var post models.PostDetail
	err := r.db.GetContext(ctx, &post, query, postID, viewerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении публикации: %w", err)
	}

	return &post, nil
}

// GetOwnerID - факт владения для проверки политики; существование
// проверяется раньше авторизации
func (r *postRepository) GetOwnerID(ctx context.Context, postID int64) (int64, error) {
	var ownerID int64

	query := `SELECT user_id FROM posts WHERE id = $1`

	err := r.db.GetContext(ctx, &ownerID, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("ошибка при получении владельца публикации: %w", err)
	}

	return ownerID, nil
}

func (r *postRepository) GetFeed(ctx context.Context, viewerID int64, limit, offset int) ([]models.FeedPost, error) {
	query := `
		SELECT` + feedColumns + `
		FROM posts p
		LEFT JOIN tags t ON p.tag_id = t.id
		LEFT JOIN post_likes pl ON pl.user_id = $1 AND pl.post_id = p.id
		LEFT JOIN post_saves ps ON ps.user_id = $1 AND ps.post_id = p.id
		ORDER BY p.created_at DESC
		LIMIT $2 OFFSET $3
	`

	var posts []models.FeedPost
	err := r.db.SelectContext(ctx, &posts, query, viewerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении ленты: %w", err)
	}

	return posts, nil
}

func (r *postRepository) GetByAuthor(ctx context.Context, authorID int64, limit, offset int) ([]models.FeedPost, error) {
	query := `
		SELECT` + feedColumns + `
		FROM posts p
		LEFT JOIN tags t ON p.tag_id = t.id
		LEFT JOIN post_likes pl ON pl.user_id = $1 AND pl.post_id = p.id
		LEFT JOIN post_saves ps ON ps.user_id = $1 AND ps.post_id = p.id
		WHERE p.user_id = $1
		ORDER BY p.created_at DESC
		LIMIT $2 OFFSET $3
	`

	var posts []models.FeedPost
	err := r.db.SelectContext(ctx, &posts, query, authorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении публикаций автора: %w", err)
	}

	return posts, nil
}

func (r *postRepository) GetSaved(ctx context.Context, viewerID int64, limit, offset int) ([]models.FeedPost, error) {
	query := `
		SELECT
			p.id,
			p.user_id,
			p.content_url,
			p.tag_id,
			t.name AS tag_name,
			t.category_id,
			t.subcategory_id,
			(pl.user_id IS NOT NULL) AS liked,
			TRUE AS saved
		FROM post_saves ps
		JOIN posts p ON ps.post_id = p.id
		LEFT JOIN tags t ON p.tag_id = t.id
		LEFT JOIN post_likes pl ON pl.user_id = $1 AND pl.post_id = p.id
		WHERE ps.user_id = $1
		ORDER BY p.created_at DESC
		LIMIT $2 OFFSET $3
	`

	var posts []models.FeedPost
	err := r.db.SelectContext(ctx, &posts, query, viewerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении сохранённых публикаций: %w", err)
	}

	return posts, nil
}

// Search - подстрочный поиск по категории, подкатегории, описанию,
// имени пользователя и email автора
func (r *postRepository) Search(ctx context.Context, viewerID int64, query string, limit, offset int) ([]models.FeedPost, error) {
	sqlQuery := `
		SELECT` + feedColumns + `
		FROM posts p
		LEFT JOIN tags t ON p.tag_id = t.id
		LEFT JOIN categories c ON t.category_id = c.id
		LEFT JOIN subcategories s ON t.subcategory_id = s.id
		JOIN users u ON p.user_id = u.id
		JOIN accounts a ON u.id = a.id
		LEFT JOIN post_likes pl ON pl.user_id = $1 AND pl.post_id = p.id
		LEFT JOIN post_saves ps ON ps.user_id = $1 AND ps.post_id = p.id
		WHERE c.name ILIKE $2
		   OR s.name ILIKE $2
		   OR p.description ILIKE $2
		   OR u.username ILIKE $2
		   OR a.email ILIKE $2
		ORDER BY p.created_at DESC
		LIMIT $3 OFFSET $4
	`

	pattern := "%" + query + "%"

	var posts []models.FeedPost
	err := r.db.SelectContext(ctx, &posts, sqlQuery, viewerID, pattern, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ошибка при поиске публикаций: %w", err)
	}

	return posts, nil
}

// Delete - лайки, сохранения и комментарии удаляются каскадом в БД
func (r *postRepository) Delete(ctx context.Context, postID int64) error {
	query := `DELETE FROM posts WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении публикации: %w", err)
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
