package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"artcenter/internal/models"
	"artcenter/internal/policy"
	"artcenter/internal/repository"
)

type SubcategoryRequest struct {
	CategoryID   int64   `json:"categoryId" validate:"required"`
	Name         string  `json:"name" validate:"required"`
	History      *string `json:"history"`
	Features     *string `json:"features"`
	Requirements *string `json:"requirements"`
	Tutorials    *string `json:"tutorials"`
}

func (h *Handlers) CreateSubcategory(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	if !policy.CanAdminister(identity) {
		WriteError(w, "Доступ запрещен", http.StatusForbidden)
		return
	}

	var req SubcategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "categoryId и name обязательны", http.StatusBadRequest)
		return
	}

	// сначала существование родительской категории
	if _, err := h.CategoryRepo.GetByID(r.Context(), req.CategoryID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Категория не найдена", http.StatusNotFound)
			return
		}
		writeDomainError(w, err)
		return
	}

	exists, err := h.SubcategoryRepo.NameExists(r.Context(), req.CategoryID, req.Name)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if exists {
		WriteError(w, "Подкатегория с таким именем уже есть в этой категории", http.StatusConflict)
		return
	}

	subcategory := &models.Subcategory{
		CategoryID:   req.CategoryID,
		Name:         req.Name,
		History:      req.History,
		Features:     req.Features,
		Requirements: req.Requirements,
		Tutorials:    req.Tutorials,
	}

	if err := h.SubcategoryRepo.Create(r.Context(), subcategory); err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, subcategory, http.StatusCreated)
}

func (h *Handlers) GetSubcategories(w http.ResponseWriter, r *http.Request) {
	subcategories, err := h.SubcategoryRepo.GetAll(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if subcategories == nil {
		subcategories = []models.Subcategory{}
	}

	writeJSON(w, subcategories, http.StatusOK)
}

func (h *Handlers) GetSubcategoriesByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := pathID(r)
	if err != nil {
		WriteError(w, "Неверный id категории", http.StatusBadRequest)
		return
	}

	subcategories, err := h.SubcategoryRepo.GetByCategory(r.Context(), categoryID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if len(subcategories) == 0 {
		WriteError(w, "Подкатегории для этой категории не найдены", http.StatusNotFound)
		return
	}

	writeJSON(w, subcategories, http.StatusOK)
}

func (h *Handlers) GetSubcategory(w http.ResponseWriter, r *http.Request) {
	subcategoryID, err := pathID(r)
	if err != nil {
		WriteError(w, "Неверный id подкатегории", http.StatusBadRequest)
		return
	}

	subcategory, err := h.SubcategoryRepo.GetByID(r.Context(), subcategoryID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, subcategory, http.StatusOK)
}

func (h *Handlers) UpdateSubcategory(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	if !policy.CanAdminister(identity) {
		WriteError(w, "Доступ запрещен", http.StatusForbidden)
		return
	}

	subcategoryID, err := pathID(r)
	if err != nil {
		WriteError(w, "Неверный id подкатегории", http.StatusBadRequest)
		return
	}

	var req struct {
		Name         string  `json:"name" validate:"required"`
		History      *string `json:"history"`
		Features     *string `json:"features"`
		Requirements *string `json:"requirements"`
		Tutorials    *string `json:"tutorials"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Поле name обязательно", http.StatusBadRequest)
		return
	}

	existing, err := h.SubcategoryRepo.GetByID(r.Context(), subcategoryID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	existing.Name = req.Name
	existing.History = req.History
	existing.Features = req.Features
	existing.Requirements = req.Requirements
	existing.Tutorials = req.Tutorials

	if err := h.SubcategoryRepo.Update(r.Context(), existing); err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, map[string]string{"msg": "Подкатегория обновлена"}, http.StatusOK)
}

func (h *Handlers) DeleteSubcategory(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	if !policy.CanAdminister(identity) {
		WriteError(w, "Доступ запрещен", http.StatusForbidden)
		return
	}

	subcategoryID, err := pathID(r)
	if err != nil {
		WriteError(w, "Неверный id подкатегории", http.StatusBadRequest)
		return
	}

	if _, err := h.SubcategoryRepo.GetByID(r.Context(), subcategoryID); err != nil {
		writeDomainError(w, err)
		return
	}

	if err := h.SubcategoryRepo.Delete(r.Context(), subcategoryID); err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, map[string]string{"msg": "Подкатегория удалена"}, http.StatusOK)
}
