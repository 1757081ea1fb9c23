package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"artcenter/internal/repository"
	"artcenter/internal/service"
)

// ErrorResponse - единый формат тела ошибки
type ErrorResponse struct {
	Msg string `json:"msg"`
}

func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Msg: message})
}

func writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// writeDomainError переводит типизированные ошибки слоёв в HTTP-статусы.
// Неизвестные ошибки наружу уходят общим сообщением, детали - в лог.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		WriteError(w, "Запись не найдена", http.StatusNotFound)
	case errors.Is(err, repository.ErrConflict):
		WriteError(w, "Запись уже существует", http.StatusConflict)
	case errors.Is(err, repository.ErrInvalidReference):
		WriteError(w, "Указанная запись не существует", http.StatusNotFound)
	case errors.Is(err, service.ErrForbidden):
		WriteError(w, "Доступ запрещен", http.StatusForbidden)
	default:
		log.Printf("внутренняя ошибка: %v", err)
		WriteError(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
	}
}
