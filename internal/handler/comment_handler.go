package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"artcenter/internal/models"
	"artcenter/internal/policy"
	"artcenter/internal/repository"
)

func (h *Handlers) GetComments(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r)
	if err != nil {
		WriteError(w, "Неверный id публикации", http.StatusBadRequest)
		return
	}

	// сначала проверяется существование публикации
	if _, err := h.PostRepo.GetOwnerID(r.Context(), postID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Публикация не найдена", http.StatusNotFound)
			return
		}
		writeDomainError(w, err)
		return
	}

	comments, err := h.CommentRepo.GetByPostID(r.Context(), postID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if len(comments) == 0 {
		WriteError(w, "Комментарии не найдены", http.StatusNotFound)
		return
	}

	writeJSON(w, comments, http.StatusOK)
}

func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	postID, err := pathID(r)
	if err != nil {
		WriteError(w, "Неверный id публикации", http.StatusBadRequest)
		return
	}

	var req struct {
		Content string `json:"content" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil || strings.TrimSpace(req.Content) == "" {
		WriteError(w, "Комментарий не может быть пустым", http.StatusBadRequest)
		return
	}

	if _, err := h.PostRepo.GetOwnerID(r.Context(), postID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Публикация не найдена", http.StatusNotFound)
			return
		}
		writeDomainError(w, err)
		return
	}

	comment := &models.Comment{
		UserID:  identity.ID,
		PostID:  postID,
		Content: req.Content,
	}

	if err := h.CommentRepo.Create(r.Context(), comment); err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, comment, http.StatusCreated)
}

func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	commentID, err := pathID(r)
	if err != nil {
		WriteError(w, "Неверный id комментария", http.StatusBadRequest)
		return
	}

	comment, err := h.CommentRepo.GetByID(r.Context(), commentID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	// удалить может автор комментария или администратор
	if !policy.CanModify(identity, comment.UserID) {
		WriteError(w, "Доступ запрещен", http.StatusForbidden)
		return
	}

	if err := h.CommentRepo.Delete(r.Context(), commentID); err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, map[string]string{"msg": "Комментарий удалён"}, http.StatusOK)
}
