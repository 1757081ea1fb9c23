package handlers

import (
	"encoding/json"
	"net/http"

	"artcenter/internal/models"
	"artcenter/internal/policy"
)

func (h *Handlers) GetTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.TagRepo.GetAll(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if len(tags) == 0 {
		WriteError(w, "Теги не найдены", http.StatusNotFound)
		return
	}

	writeJSON(w, tags, http.StatusOK)
}

func (h *Handlers) CreateTag(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	if !policy.CanAdminister(identity) {
		WriteError(w, "Доступ запрещен", http.StatusForbidden)
		return
	}

	var req struct {
		Name          string `json:"name" validate:"required"`
		CategoryID    *int64 `json:"categoryId"`
		SubcategoryID *int64 `json:"subcategoryId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Поле name обязательно", http.StatusBadRequest)
		return
	}

	tag := &models.Tag{
		Name:          req.Name,
		CategoryID:    req.CategoryID,
		SubcategoryID: req.SubcategoryID,
	}

	if err := h.TagRepo.Create(r.Context(), tag); err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, tag, http.StatusCreated)
}

func (h *Handlers) DeleteTag(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	if !policy.CanAdminister(identity) {
		WriteError(w, "Доступ запрещен", http.StatusForbidden)
		return
	}

	tagID, err := pathID(r)
	if err != nil {
		WriteError(w, "Неверный id тега", http.StatusBadRequest)
		return
	}

	if err := h.TagRepo.Delete(r.Context(), tagID); err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, map[string]string{"msg": "Тег удалён"}, http.StatusOK)
}
