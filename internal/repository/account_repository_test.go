package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAccountRepository_CreateAccount(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewAccountRepository(sqlxDB)

	ctx := context.Background()

	email := "test@example.com"
	password := "password123"
	username := "tester"

	t.Run("Успешная регистрация в одной транзакции", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO accounts (email, password_hash) VALUES ($1, $2) RETURNING id`).
			WithArgs(email, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
		mock.ExpectExec(`INSERT INTO users (id, username) VALUES ($1, $2)`).
			WithArgs(int64(7), username).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		accountID, err := repo.CreateAccount(ctx, email, password, username)

		require.NoError(t, err)
		assert.Equal(t, int64(7), accountID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Дубликат email возвращает ErrConflict", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO accounts (email, password_hash) VALUES ($1, $2) RETURNING id`).
			WithArgs(email, sqlmock.AnyArg()).
			WillReturnError(&pq.Error{Code: "23505"})
		mock.ExpectRollback()

		accountID, err := repo.CreateAccount(ctx, email, password, username)

		assert.ErrorIs(t, err, ErrConflict)
		assert.Zero(t, accountID)
	})

	t.Run("Сбой при создании профиля откатывает транзакцию", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO accounts (email, password_hash) VALUES ($1, $2) RETURNING id`).
			WithArgs(email, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(8)))
		mock.ExpectExec(`INSERT INTO users (id, username) VALUES ($1, $2)`).
			WithArgs(int64(8), username).
			WillReturnError(errors.New("insert failed"))
		mock.ExpectRollback()

		_, err := repo.CreateAccount(ctx, email, password, username)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "ошибка при создании профиля")
	})
}

func TestAccountRepository_VerifyPassword(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewAccountRepository(sqlxDB)

	ctx := context.Background()

	email := "test@example.com"
	password := "correct_password"

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	t.Run("Успешная проверка пароля", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "email", "password_hash"}).
			AddRow(int64(1), email, string(hashedPassword))

		mock.ExpectQuery(`SELECT id, email, password_hash FROM accounts WHERE email = $1`).
			WithArgs(email).
			WillReturnRows(rows)

		account, err := repo.VerifyPassword(ctx, email, password)

		require.NoError(t, err)
		assert.Equal(t, email, account.Email)
	})

	t.Run("Неверный пароль сохраняет ошибку bcrypt в цепочке", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "email", "password_hash"}).
			AddRow(int64(1), email, string(hashedPassword))

		mock.ExpectQuery(`SELECT id, email, password_hash FROM accounts WHERE email = $1`).
			WithArgs(email).
			WillReturnRows(rows)

		account, err := repo.VerifyPassword(ctx, email, "wrong_password")

		assert.Nil(t, account)
		assert.ErrorIs(t, err, bcrypt.ErrMismatchedHashAndPassword)
	})

	t.Run("Учётная запись не найдена", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, email, password_hash FROM accounts WHERE email = $1`).
			WithArgs(email).
			WillReturnError(sql.ErrNoRows)

		account, err := repo.VerifyPassword(ctx, email, password)

		assert.Nil(t, account)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestAccountRepository_IsAdmin(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewAccountRepository(sqlxDB)

	ctx := context.Background()

	t.Run("Учётная запись в таблице admins", func(t *testing.T) {
		mock.ExpectQuery(`SELECT EXISTS(SELECT 1 FROM admins WHERE id = $1)`).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		isAdmin, err := repo.IsAdmin(ctx, 1)

		require.NoError(t, err)
		assert.True(t, isAdmin)
	})

	t.Run("Обычный пользователь", func(t *testing.T) {
		mock.ExpectQuery(`SELECT EXISTS(SELECT 1 FROM admins WHERE id = $1)`).
			WithArgs(int64(2)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		isAdmin, err := repo.IsAdmin(ctx, 2)

		require.NoError(t, err)
		assert.False(t, isAdmin)
	})
}

func TestAccountRepository_UpdateUsername(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewAccountRepository(sqlxDB)

	ctx := context.Background()

	t.Run("Успешное обновление имени", func(t *testing.T) {
		mock.ExpectExec(`UPDATE users SET username = $1 WHERE id = $2`).
			WithArgs("newname", int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateUsername(ctx, 1, "newname")

		assert.NoError(t, err)
	})

	t.Run("Пользователь не найден", func(t *testing.T) {
		mock.ExpectExec(`UPDATE users SET username = $1 WHERE id = $2`).
			WithArgs("newname", int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateUsername(ctx, 99, "newname")

		assert.ErrorIs(t, err, ErrNotFound)
	})
}
