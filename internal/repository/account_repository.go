package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"artcenter/internal/models"
)

type accountRepository struct {
	db *sqlx.DB
}

func NewAccountRepository(db *sqlx.DB) AccountRepository {
	return &accountRepository{db: db}
}

// CreateAccount создаёт учётную запись и профиль пользователя одной транзакцией
func (r *accountRepository) CreateAccount(ctx context.Context, email, password, username string) (int64, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("ошибка при хешировании пароля: %w", err)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("ошибка при открытии транзакции: %w", err)
	}
	defer tx.Rollback()

	var accountID int64
	err = tx.GetContext(ctx, &accountID,
		`INSERT INTO accounts (email, password_hash) VALUES ($1, $2) RETURNING id`,
		email, string(hashedPassword),
	)
	if err != nil {
		if terr := translateError(err); isConstraintError(terr) {
			return 0, terr
		}
		return 0, fmt.Errorf("ошибка при создании учётной записи: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO users (id, username) VALUES ($1, $2)`,
		accountID, username,
	)
	if err != nil {
		return 0, fmt.Errorf("ошибка при создании профиля: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("ошибка при фиксации транзакции: %w", err)
	}

	return accountID, nil
}

func (r *accountRepository) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	var account models.Account

	query := `SELECT id, email, password_hash FROM accounts WHERE email = $1`

	err := r.db.GetContext(ctx, &account, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении учётной записи: %w", err)
	}

	return &account, nil
}

func (r *accountRepository) VerifyPassword(ctx context.Context, email, password string) (*models.Account, error) {
	account, err := r.GetAccountByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	// сравнение делегируется bcrypt, без ручного сравнения хешей
	err = bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password))
	if err != nil {
		return nil, fmt.Errorf("неверный пароль: %w", err)
	}

	return account, nil
}

// IsAdmin - роль определяется наличием строки в таблице admins,
// а не полем на самой учётной записи
func (r *accountRepository) IsAdmin(ctx context.Context, accountID int64) (bool, error) {
	var isAdmin bool

	query := `SELECT EXISTS(SELECT 1 FROM admins WHERE id = $1)`

	err := r.db.GetContext(ctx, &isAdmin, query, accountID)
	if err != nil {
		return false, fmt.Errorf("ошибка при проверке роли: %w", err)
	}

	return isAdmin, nil
}

func (r *accountRepository) GetUserByID(ctx context.Context, userID int64) (*models.User, error) {
	var user models.User

	query := `SELECT id, username, avatar_url FROM users WHERE id = $1`

	err := r.db.GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении пользователя: %w", err)
	}

	return &user, nil
}

func (r *accountRepository) UpdateUsername(ctx context.Context, userID int64, username string) error {
	query := `UPDATE users SET username = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, username, userID)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении имени пользователя: %w", err)
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

func (r *accountRepository) UpdateAvatar(ctx context.Context, userID int64, avatarURL string) error {
	query := `UPDATE users SET avatar_url = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, avatarURL, userID)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении аватара: %w", err)
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
