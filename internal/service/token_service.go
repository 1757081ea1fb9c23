package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"artcenter/internal/config"
	"artcenter/internal/models"
)

// TokenService выпускает и проверяет самодостаточные подписанные токены.
// Серверного хранилища токенов нет: до истечения срока токен
// отозвать нельзя, logout выполняется на клиенте.
type TokenService interface {
	Issue(identity models.Identity) (string, error)
	Verify(tokenString string) (models.Identity, error)
}

type tokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(cfg *config.Config) TokenService {
	return &tokenService{
		secret: []byte(cfg.JWTSecretKey),
		ttl:    cfg.TokenTTL,
	}
}

// Issue подписывает HS256-токен. Subject кладётся отдельной
// JSON-строкой - этот формат читают существующие клиенты API.
func (s *tokenService) Issue(identity models.Identity) (string, error) {
	subject, err := json.Marshal(identity)
	if err != nil {
		return "", fmt.Errorf("ошибка сериализации subject: %w", err)
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": string(subject),
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}

	return tokenString, nil
}

// Verify проверяет подпись и срок действия; сравнение подписи
// делегируется библиотеке. Любой дефект токена - единый результат
// "недействителен", без частичного доверия payload-у.
func (s *tokenService) Verify(tokenString string) (models.Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return models.Identity{}, fmt.Errorf("недействительный токен: %w", err)
	}

	if !token.Valid {
		return models.Identity{}, errors.New("недействительный токен")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.Identity{}, errors.New("неверный формат claims")
	}

	subject, ok := claims["sub"].(string)
	if !ok {
		return models.Identity{}, errors.New("отсутствует subject токена")
	}

	var identity models.Identity
	if err := json.Unmarshal([]byte(subject), &identity); err != nil {
		return models.Identity{}, fmt.Errorf("неверный формат subject: %w", err)
	}

	if identity.Role != models.RoleUser && identity.Role != models.RoleAdmin {
		return models.Identity{}, fmt.Errorf("неизвестная роль в токене: %s", identity.Role)
	}

	return identity, nil
}
