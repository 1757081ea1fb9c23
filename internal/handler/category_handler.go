package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"artcenter/internal/models"
	"artcenter/internal/policy"
)

type CategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

func (h *Handlers) CreateCategory(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	if !policy.CanAdminister(identity) {
		WriteError(w, "Доступ запрещен", http.StatusForbidden)
		return
	}

	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Все поля обязательны", http.StatusBadRequest)
		return
	}

	// проверка существования до вставки; констрейнт в БД подстраховывает
	exists, err := h.CategoryRepo.NameExists(r.Context(), req.Name)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if exists {
		WriteError(w, "Категория с таким именем уже существует", http.StatusConflict)
		return
	}

	category := &models.Category{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := h.CategoryRepo.Create(r.Context(), category); err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, category, http.StatusCreated)
}

func (h *Handlers) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.CategoryRepo.GetAll(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if categories == nil {
		categories = []models.Category{}
	}

	writeJSON(w, categories, http.StatusOK)
}

func (h *Handlers) GetCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := pathID(r)
	if err != nil {
		WriteError(w, "Неверный id категории", http.StatusBadRequest)
		return
	}

	category, err := h.CategoryRepo.GetByID(r.Context(), categoryID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, category, http.StatusOK)
}

func (h *Handlers) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	if !policy.CanAdminister(identity) {
		WriteError(w, "Доступ запрещен", http.StatusForbidden)
		return
	}

	categoryID, err := pathID(r)
	if err != nil {
		WriteError(w, "Неверный id категории", http.StatusBadRequest)
		return
	}

	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Все поля обязательны", http.StatusBadRequest)
		return
	}

	// существование проверяется до изменения
	if _, err := h.CategoryRepo.GetByID(r.Context(), categoryID); err != nil {
		writeDomainError(w, err)
		return
	}

	category := &models.Category{
		ID:          categoryID,
		Name:        req.Name,
		Description: req.Description,
	}

	if err := h.CategoryRepo.Update(r.Context(), category); err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, map[string]string{"msg": "Категория обновлена"}, http.StatusOK)
}

func (h *Handlers) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	if !policy.CanAdminister(identity) {
		WriteError(w, "Доступ запрещен", http.StatusForbidden)
		return
	}

	categoryID, err := pathID(r)
	if err != nil {
		WriteError(w, "Неверный id категории", http.StatusBadRequest)
		return
	}

	if _, err := h.CategoryRepo.GetByID(r.Context(), categoryID); err != nil {
		writeDomainError(w, err)
		return
	}

	if err := h.CategoryRepo.Delete(r.Context(), categoryID); err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, map[string]string{"msg": "Категория удалена"}, http.StatusOK)
}
