package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// EngagementKind - вид отношения пользователь-публикация
type EngagementKind string

const (
	EngagementLike EngagementKind = "like"
	EngagementSave EngagementKind = "save"
)

// фиксированное отображение вид -> таблица; имя таблицы никогда
// не приходит извне
var engagementTables = map[EngagementKind]string{
	EngagementLike: "post_likes",
	EngagementSave: "post_saves",
}

type engagementRepository struct {
	db *sqlx.DB
}

func NewEngagementRepository(db *sqlx.DB) EngagementRepository {
	return &engagementRepository{db: db}
}

// Insert пытается вставить пару (user_id, post_id) без предварительной
// проверки. Дубликат возвращается как ErrConflict (пара уже существует),
// несуществующий пост - как ErrInvalidReference. Атомарность обеспечивает
// уникальный констрейнт в БД, а не блокировки в приложении.
func (r *engagementRepository) Insert(ctx context.Context, kind EngagementKind, userID, postID int64) error {
	table, ok := engagementTables[kind]
	if !ok {
		return fmt.Errorf("неизвестный вид реакции: %s", kind)
	}

	query := fmt.Sprintf(`INSERT INTO %s (user_id, post_id) VALUES ($1, $2)`, table)

	_, err := r.db.ExecContext(ctx, query, userID, postID)
	if err != nil {
		if terr := translateError(err); isConstraintError(terr) {
			return terr
		}
		return fmt.Errorf("ошибка при добавлении реакции: %w", err)
	}

	return nil
}

// Delete удаляет пару. Ноль затронутых строк - не ошибка: параллельный
// toggle мог удалить её первым.
func (r *engagementRepository) Delete(ctx context.Context, kind EngagementKind, userID, postID int64) error {
	table, ok := engagementTables[kind]
	if !ok {
		return fmt.Errorf("неизвестный вид реакции: %s", kind)
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE user_id = $1 AND post_id = $2`, table)

	_, err := r.db.ExecContext(ctx, query, userID, postID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении реакции: %w", err)
	}

	return nil
}
