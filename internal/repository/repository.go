package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"artcenter/internal/models"
)

type AccountRepository interface {
	CreateAccount(ctx context.Context, email, password, username string) (int64, error)
	GetAccountByEmail(ctx context.Context, email string) (*models.Account, error)
	VerifyPassword(ctx context.Context, email, password string) (*models.Account, error)
	IsAdmin(ctx context.Context, accountID int64) (bool, error)
	GetUserByID(ctx context.Context, userID int64) (*models.User, error)
	UpdateUsername(ctx context.Context, userID int64, username string) error
	UpdateAvatar(ctx context.Context, userID int64, avatarURL string) error
}

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetAll(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, categoryID int64) (*models.Category, error)
	NameExists(ctx context.Context, name string) (bool, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, categoryID int64) error
}

type SubcategoryRepository interface {
	Create(ctx context.Context, subcategory *models.Subcategory) error
	GetAll(ctx context.Context) ([]models.Subcategory, error)
	GetByCategory(ctx context.Context, categoryID int64) ([]models.Subcategory, error)
	GetByID(ctx context.Context, subcategoryID int64) (*models.Subcategory, error)
	NameExists(ctx context.Context, categoryID int64, name string) (bool, error)
	Update(ctx context.Context, subcategory *models.Subcategory) error
	Delete(ctx context.Context, subcategoryID int64) error
}

type TagRepository interface {
	Create(ctx context.Context, tag *models.Tag) error
	GetAll(ctx context.Context) ([]models.Tag, error)
	Delete(ctx context.Context, tagID int64) error
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID, viewerID int64) (*models.PostDetail, error)
	GetOwnerID(ctx context.Context, postID int64) (int64, error)
	GetFeed(ctx context.Context, viewerID int64, limit, offset int) ([]models.FeedPost, error)
	GetByAuthor(ctx context.Context, authorID int64, limit, offset int) ([]models.FeedPost, error)
	GetSaved(ctx context.Context, viewerID int64, limit, offset int) ([]models.FeedPost, error)
	Search(ctx context.Context, viewerID int64, query string, limit, offset int) ([]models.FeedPost, error)
	Delete(ctx context.Context, postID int64) error
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, commentID int64) (*models.Comment, error)
	GetByPostID(ctx context.Context, postID int64) ([]models.Comment, error)
	Delete(ctx context.Context, commentID int64) error
}

// EngagementRepository - отношения "лайк" и "сохранение" поста.
// Insert не проверяет существование пары заранее: единственный источник
// правды о её существовании - уникальный констрейнт в БД.
type EngagementRepository interface {
	Insert(ctx context.Context, kind EngagementKind, userID, postID int64) error
	Delete(ctx context.Context, kind EngagementKind, userID, postID int64) error
}

type Repository struct {
	Account     AccountRepository
	Category    CategoryRepository
	Subcategory SubcategoryRepository
	Tag         TagRepository
	Post        PostRepository
	Comment     CommentRepository
	Engagement  EngagementRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Account:     NewAccountRepository(db),
		Category:    NewCategoryRepository(db),
		Subcategory: NewSubcategoryRepository(db),
		Tag:         NewTagRepository(db),
		Post:        NewPostRepository(db),
		Comment:     NewCommentRepository(db),
		Engagement:  NewEngagementRepository(db),
	}
}
