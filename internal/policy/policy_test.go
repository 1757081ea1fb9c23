package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"artcenter/internal/models"
)

func TestCanAdminister(t *testing.T) {
	assert.True(t, CanAdminister(models.Identity{ID: 1, Role: models.RoleAdmin}))
	assert.False(t, CanAdminister(models.Identity{ID: 1, Role: models.RoleUser}))
	assert.False(t, CanAdminister(models.Identity{}))
}

func TestCanPublish(t *testing.T) {
	assert.True(t, CanPublish(models.Identity{ID: 1, Role: models.RoleUser}))
	assert.False(t, CanPublish(models.Identity{ID: 1, Role: models.RoleAdmin}))
}

func TestCanModify(t *testing.T) {
	t.Run("Владелец может изменять свой ресурс", func(t *testing.T) {
		identity := models.Identity{ID: 5, Role: models.RoleUser}
		assert.True(t, CanModify(identity, 5))
	})

	t.Run("Чужой пользователь не может", func(t *testing.T) {
		identity := models.Identity{ID: 5, Role: models.RoleUser}
		assert.False(t, CanModify(identity, 6))
	})

	t.Run("Администратор может изменять чужое", func(t *testing.T) {
		identity := models.Identity{ID: 1, Role: models.RoleAdmin}
		assert.True(t, CanModify(identity, 6))
	})
}
