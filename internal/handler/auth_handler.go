package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"artcenter/internal/repository"
	"artcenter/internal/service"
)

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Username string `json:"username" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
	ID    int64  `json:"id"`
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неполные или неверные данные", http.StatusBadRequest)
		return
	}

	_, err := h.AuthService.Register(r.Context(), req.Email, req.Password, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			WriteError(w, "Email уже зарегистрирован", http.StatusConflict)
			return
		}
		writeDomainError(w, err)
		return
	}

	writeJSON(w, map[string]string{"msg": "Пользователь зарегистрирован"}, http.StatusCreated)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неполные или неверные данные", http.StatusBadRequest)
		return
	}

	identity, token, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			WriteError(w, "Неверный email или пароль", http.StatusUnauthorized)
			return
		}
		writeDomainError(w, err)
		return
	}

	writeJSON(w, LoginResponse{
		Token: token,
		Role:  identity.Role,
		ID:    identity.ID,
	}, http.StatusOK)
}
