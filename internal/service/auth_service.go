package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"artcenter/internal/models"
	"artcenter/internal/repository"
)

// ErrInvalidCredentials - неверная пара email/пароль; наружу не уходит
// информация о том, существует ли учётная запись
var ErrInvalidCredentials = errors.New("неверный email или пароль")

type AuthService interface {
	Register(ctx context.Context, email, password, username string) (int64, error)
	Login(ctx context.Context, email, password string) (models.Identity, string, error)
}

type authService struct {
	accountRepo repository.AccountRepository
	tokens      TokenService
}

func NewAuthService(accountRepo repository.AccountRepository, tokens TokenService) AuthService {
	return &authService{
		accountRepo: accountRepo,
		tokens:      tokens,
	}
}

func (s *authService) Register(ctx context.Context, email, password, username string) (int64, error) {
	accountID, err := s.accountRepo.CreateAccount(ctx, email, password, username)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return 0, repository.ErrConflict
		}
		return 0, fmt.Errorf("ошибка при регистрации: %w", err)
	}

	return accountID, nil
}

// Login проверяет пароль и выпускает токен. Роль вычисляется здесь,
// в момент выпуска, и фиксируется в токене на весь срок его жизни -
// смена роли не влияет на уже выданные токены.
func (s *authService) Login(ctx context.Context, email, password string) (models.Identity, string, error) {
	account, err := s.accountRepo.VerifyPassword(ctx, email, password)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return models.Identity{}, "", ErrInvalidCredentials
		}
		return models.Identity{}, "", fmt.Errorf("ошибка аутентификации: %w", err)
	}

	isAdmin, err := s.accountRepo.IsAdmin(ctx, account.ID)
	if err != nil {
		return models.Identity{}, "", fmt.Errorf("ошибка при определении роли: %w", err)
	}

	role := models.RoleUser
	if isAdmin {
		role = models.RoleAdmin
	}

	identity := models.Identity{ID: account.ID, Role: role}

	token, err := s.tokens.Issue(identity)
	if err != nil {
		return models.Identity{}, "", fmt.Errorf("ошибка выпуска токена: %w", err)
	}

	return identity, token, nil
}
