package handlers

import (
	"encoding/json"
	"net/http"
)

func (h *Handlers) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	user, err := h.UserService.GetProfile(r.Context(), identity.ID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, user, http.StatusOK)
}

func (h *Handlers) UpdateUsername(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	var req struct {
		Username string `json:"username" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Имя пользователя обязательно", http.StatusBadRequest)
		return
	}

	if err := h.UserService.UpdateUsername(r.Context(), identity.ID, req.Username); err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, map[string]string{"msg": "Имя пользователя обновлено"}, http.StatusOK)
}

func (h *Handlers) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteError(w, "Не предоставлено изображение", http.StatusBadRequest)
		return
	}
	defer file.Close()

	avatarURL, err := h.UserService.UpdateAvatar(r.Context(), identity.ID, header.Filename, file, header.Size)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, map[string]string{
		"msg":       "Аватар обновлён",
		"avatarUrl": avatarURL,
	}, http.StatusOK)
}
