package service

import (
	"artcenter/internal/config"
	"artcenter/internal/repository"
	"artcenter/internal/storage"
)

type Service struct {
	Token      TokenService
	Auth       AuthService
	User       UserService
	Post       PostService
	Engagement EngagementService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	tokens := NewTokenService(cfg)

	return &Service{
		Token:      tokens,
		Auth:       NewAuthService(rep.Account, tokens),
		User:       NewUserService(rep.Account, storage),
		Post:       NewPostService(rep.Post, storage),
		Engagement: NewEngagementService(rep.Engagement),
	}
}
