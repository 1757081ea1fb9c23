package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"artcenter/internal/models"
	"artcenter/internal/repository"
)

func TestCreateComment_Success(t *testing.T) {
	env := newTestEnv()

	env.postRepo.On("GetOwnerID", mock.Anything, int64(42)).Return(int64(3), nil)
	env.commentRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *models.Comment) bool {
		return c.UserID == 2 && c.PostID == 42 && c.Content == "отличная работа"
	})).Return(nil)

	body, _ := json.Marshal(map[string]string{"content": "отличная работа"})

	req := httptest.NewRequest(http.MethodPost, "/api/posts/42/comments", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req = env.authorize(req, userIdentity)
	req = mux.SetURLVars(req, map[string]string{"id": "42"})

	rr := env.serveProtected(env.handler.CreateComment, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	env.commentRepo.AssertExpectations(t)
}

func TestCreateComment_MissingPost(t *testing.T) {
	env := newTestEnv()

	env.postRepo.On("GetOwnerID", mock.Anything, int64(9999)).
		Return(int64(0), repository.ErrNotFound)

	body, _ := json.Marshal(map[string]string{"content": "в пустоту"})

	req := httptest.NewRequest(http.MethodPost, "/api/posts/9999/comments", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req = env.authorize(req, userIdentity)
	req = mux.SetURLVars(req, map[string]string{"id": "9999"})

	rr := env.serveProtected(env.handler.CreateComment, req)

	assertJSONError(t, rr, http.StatusNotFound, "Публикация не найдена")
	env.commentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateComment_BlankContent(t *testing.T) {
	env := newTestEnv()

	body, _ := json.Marshal(map[string]string{"content": "   "})

	req := httptest.NewRequest(http.MethodPost, "/api/posts/42/comments", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req = env.authorize(req, userIdentity)
	req = mux.SetURLVars(req, map[string]string{"id": "42"})

	rr := env.serveProtected(env.handler.CreateComment, req)

	assertJSONError(t, rr, http.StatusBadRequest, "не может быть пустым")
	env.commentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDeleteComment_NonOwnerForbidden(t *testing.T) {
	env := newTestEnv()

	env.commentRepo.On("GetByID", mock.Anything, int64(5)).
		Return(&models.Comment{ID: 5, UserID: 3, PostID: 42, Content: "чужой комментарий"}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/comments/5", nil)
	req = env.authorize(req, userIdentity)
	req = mux.SetURLVars(req, map[string]string{"id": "5"})

	rr := env.serveProtected(env.handler.DeleteComment, req)

	assertJSONError(t, rr, http.StatusForbidden, "Доступ запрещен")
	env.commentRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteComment_OwnerSuccess(t *testing.T) {
	env := newTestEnv()

	env.commentRepo.On("GetByID", mock.Anything, int64(5)).
		Return(&models.Comment{ID: 5, UserID: 2, PostID: 42, Content: "мой комментарий"}, nil)
	env.commentRepo.On("Delete", mock.Anything, int64(5)).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/comments/5", nil)
	req = env.authorize(req, userIdentity)
	req = mux.SetURLVars(req, map[string]string{"id": "5"})

	rr := env.serveProtected(env.handler.DeleteComment, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	env.commentRepo.AssertExpectations(t)
}

func TestDeleteComment_AdminCanDeleteForeign(t *testing.T) {
	env := newTestEnv()

	env.commentRepo.On("GetByID", mock.Anything, int64(5)).
		Return(&models.Comment{ID: 5, UserID: 3, PostID: 42, Content: "чужой комментарий"}, nil)
	env.commentRepo.On("Delete", mock.Anything, int64(5)).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/comments/5", nil)
	req = env.authorize(req, adminIdentity)
	req = mux.SetURLVars(req, map[string]string{"id": "5"})

	rr := env.serveProtected(env.handler.DeleteComment, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	env.commentRepo.AssertExpectations(t)
}

func TestGetComments_MissingPost(t *testing.T) {
	env := newTestEnv()

	env.postRepo.On("GetOwnerID", mock.Anything, int64(9999)).
		Return(int64(0), repository.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/posts/9999/comments", nil)
	req = env.authorize(req, userIdentity)
	req = mux.SetURLVars(req, map[string]string{"id": "9999"})

	rr := env.serveProtected(env.handler.GetComments, req)

	assertJSONError(t, rr, http.StatusNotFound, "Публикация не найдена")
}
