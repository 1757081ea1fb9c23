// Package policy - чистые предикаты авторизации. Вычисляются после
// аутентификации и после проверки существования ресурса.
package policy

import (
	"artcenter/internal/models"
)

// CanAdminister - действия только для администратора:
// категории, подкатегории и теги
func CanAdminister(identity models.Identity) bool {
	return identity.Role == models.RoleAdmin
}

// CanPublish - публикуют контент только обычные пользователи,
// администратор не публикует
func CanPublish(identity models.Identity) bool {
	return identity.Role != models.RoleAdmin
}

// CanModify - владелец ресурса или администратор
func CanModify(identity models.Identity, ownerID int64) bool {
	return identity.ID == ownerID || identity.Role == models.RoleAdmin
}
