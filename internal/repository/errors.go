package repository

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrNotFound - запись с таким id не существует
	ErrNotFound = errors.New("запись не найдена")
	// ErrConflict - нарушение уникальности при вставке
	ErrConflict = errors.New("запись уже существует")
	// ErrInvalidReference - внешний ключ указывает на несуществующую запись
	ErrInvalidReference = errors.New("ссылка на несуществующую запись")
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// translateError переводит ошибки констрейнтов драйвера в типизированные,
// чтобы вызывающий код не разбирал коды и тексты ошибок pq
func translateError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			return ErrConflict
		case pqForeignKeyViolation:
			return ErrInvalidReference
		}
	}
	return err
}

// isConstraintError - вставка отклонена констрейнтом, а не отказом хранилища
func isConstraintError(err error) bool {
	return errors.Is(err, ErrConflict) || errors.Is(err, ErrInvalidReference)
}
