package models

import (
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Identity - аутентифицированный пользователь, извлечённый из токена.
// Роль вычисляется один раз при логине и фиксируется в токене.
type Identity struct {
	ID   int64  `json:"id"`
	Role string `json:"role"`
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

type Account struct {
	ID           int64  `json:"id" db:"id"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
}

type User struct {
	ID        int64   `json:"id" db:"id"`
	Username  string  `json:"username" db:"username"`
	AvatarURL *string `json:"avatarUrl" db:"avatar_url"`
}

type Category struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
}

type Subcategory struct {
	ID           int64   `json:"id" db:"id"`
	CategoryID   int64   `json:"categoryId" db:"category_id"`
	Name         string  `json:"name" db:"name"`
	History      *string `json:"history" db:"history"`
	Features     *string `json:"features" db:"features"`
	Requirements *string `json:"requirements" db:"requirements"`
	Tutorials    *string `json:"tutorials" db:"tutorials"`
}

type Tag struct {
	ID            int64  `json:"id" db:"id"`
	Name          string `json:"name" db:"name"`
	CategoryID    *int64 `json:"categoryId" db:"category_id"`
	SubcategoryID *int64 `json:"subcategoryId" db:"subcategory_id"`
}

type Post struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"userId" db:"user_id"`
	ContentURL  string    `json:"contentUrl" db:"content_url"`
	Description *string   `json:"description" db:"description"`
	TagID       *int64    `json:"tagId" db:"tag_id"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// FeedPost - строка ленты с флагами liked/saved для конкретного зрителя
type FeedPost struct {
	ID            int64   `json:"id" db:"id"`
	UserID        int64   `json:"userId" db:"user_id"`
	ContentURL    string  `json:"contentUrl" db:"content_url"`
	TagID         *int64  `json:"tagId" db:"tag_id"`
	TagName       *string `json:"tagName" db:"tag_name"`
	CategoryID    *int64  `json:"categoryId" db:"category_id"`
	SubcategoryID *int64  `json:"subcategoryId" db:"subcategory_id"`
	Liked         bool    `json:"liked" db:"liked"`
	Saved         bool    `json:"saved" db:"saved"`
}

type PostDetail struct {
	ID            int64     `json:"id" db:"id"`
	UserID        int64     `json:"userId" db:"user_id"`
	ContentURL    string    `json:"contentUrl" db:"content_url"`
	Description   *string   `json:"description" db:"description"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	Likes         int64     `json:"likes" db:"likes"`
	TagID         *int64    `json:"tagId" db:"tag_id"`
	TagName       *string   `json:"tagName" db:"tag_name"`
	CategoryID    *int64    `json:"categoryId" db:"category_id"`
	SubcategoryID *int64    `json:"subcategoryId" db:"subcategory_id"`
	Liked         bool      `json:"liked" db:"liked"`
	Saved         bool      `json:"saved" db:"saved"`
}

type Comment struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	PostID    int64     `json:"postId" db:"post_id"`
	Username  string    `json:"username" db:"username"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
