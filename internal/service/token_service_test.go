package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artcenter/internal/config"
	"artcenter/internal/models"
)

func testTokenService(ttl time.Duration) TokenService {
	cfg := &config.Config{
		JWTSecretKey: "test-secret-key",
		TokenTTL:     ttl,
	}
	return NewTokenService(cfg)
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	tokens := testTokenService(time.Hour)

	t.Run("Токен проходит полный круг без потерь", func(t *testing.T) {
		identity := models.Identity{ID: 7, Role: models.RoleAdmin}

		tokenString, err := tokens.Issue(identity)
		require.NoError(t, err)
		assert.NotEmpty(t, tokenString)

		got, err := tokens.Verify(tokenString)
		require.NoError(t, err)
		assert.Equal(t, identity, got)
	})

	t.Run("Роль обычного пользователя сохраняется", func(t *testing.T) {
		identity := models.Identity{ID: 42, Role: models.RoleUser}

		tokenString, err := tokens.Issue(identity)
		require.NoError(t, err)

		got, err := tokens.Verify(tokenString)
		require.NoError(t, err)
		assert.Equal(t, int64(42), got.ID)
		assert.Equal(t, models.RoleUser, got.Role)
	})
}

func TestTokenService_Verify_Rejects(t *testing.T) {
	tokens := testTokenService(time.Hour)

	t.Run("Просроченный токен", func(t *testing.T) {
		expired := testTokenService(-time.Hour)

		tokenString, err := expired.Issue(models.Identity{ID: 1, Role: models.RoleUser})
		require.NoError(t, err)

		_, err = tokens.Verify(tokenString)
		assert.Error(t, err)
	})

	t.Run("Токен подписан другим ключом", func(t *testing.T) {
		other := NewTokenService(&config.Config{
			JWTSecretKey: "another-secret",
			TokenTTL:     time.Hour,
		})

		tokenString, err := other.Issue(models.Identity{ID: 1, Role: models.RoleUser})
		require.NoError(t, err)

		_, err = tokens.Verify(tokenString)
		assert.Error(t, err)
	})

	t.Run("Мусорная строка вместо токена", func(t *testing.T) {
		_, err := tokens.Verify("not-a-token")
		assert.Error(t, err)
	})

	t.Run("Пустая строка", func(t *testing.T) {
		_, err := tokens.Verify("")
		assert.Error(t, err)
	})

	t.Run("Неизвестная роль в subject", func(t *testing.T) {
		tokenString, err := tokens.Issue(models.Identity{ID: 1, Role: "superuser"})
		require.NoError(t, err)

		_, err = tokens.Verify(tokenString)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "неизвестная роль")
	})
}
