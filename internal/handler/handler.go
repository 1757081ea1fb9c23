package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"artcenter/internal/config"
	"artcenter/internal/repository"
	"artcenter/internal/service"
)

type Handlers struct {
	TokenService      service.TokenService
	AuthService       service.AuthService
	UserService       service.UserService
	PostService       service.PostService
	EngagementService service.EngagementService

	CategoryRepo    repository.CategoryRepository
	SubcategoryRepo repository.SubcategoryRepository
	TagRepo         repository.TagRepository
	PostRepo        repository.PostRepository
	CommentRepo     repository.CommentRepository

	Cfg      *config.Config
	Validate *validator.Validate
}

func NewHandlers(repo *repository.Repository, services *service.Service, cfg *config.Config) *Handlers {
	return &Handlers{
		TokenService:      services.Token,
		AuthService:       services.Auth,
		UserService:       services.User,
		PostService:       services.Post,
		EngagementService: services.Engagement,
		CategoryRepo:      repo.Category,
		SubcategoryRepo:   repo.Subcategory,
		TagRepo:           repo.Tag,
		PostRepo:          repo.Post,
		CommentRepo:       repo.Comment,
		Cfg:               cfg,
		Validate:          validator.New(),
	}
}

func HomeHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"service": "artcenter-api"})
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
