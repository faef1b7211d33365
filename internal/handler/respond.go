package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/GoArmGo/ForumApp/internal/usecase"
)

// respondWithJSON — отправляет JSON-ответ клиенту.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		logger.Error("failed to marshal JSON response", "error", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err = w.Write(response); err != nil {
		logger.Error("failed to write HTTP response", "error", err)
	}
}

// respondWithError — отправляет JSON-ответ с ошибкой.
func respondWithError(w http.ResponseWriter, code int, message string, logger *slog.Logger) {
	respondWithJSON(w, code, map[string]string{"error": message}, logger)
}

// respondUseCaseError маппит ошибки бизнес-логики в HTTP-статусы.
// Детали неожиданных ошибок уходят клиенту только в режиме разработки,
// в проде — общее сообщение; полная ошибка в любом случае логируется.
func respondUseCaseError(w http.ResponseWriter, err error, devMode bool, logger *slog.Logger) {
	switch {
	case errors.Is(err, usecase.ErrDuplicate):
		respondWithError(w, http.StatusBadRequest, "Пользователь с таким именем или email уже существует.", logger)
	case errors.Is(err, usecase.ErrNotReady):
		respondWithError(w, http.StatusServiceUnavailable, "База данных еще не готова. Повторите попытку позже.", logger)
	case errors.Is(err, usecase.ErrUnavailable):
		respondWithError(w, http.StatusServiceUnavailable, "База данных недоступна. Повторите попытку позже.", logger)
	case errors.Is(err, usecase.ErrNotFound):
		respondWithError(w, http.StatusNotFound, "Запись не найдена.", logger)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		respondWithError(w, http.StatusUnauthorized, "Неверное имя пользователя или пароль.", logger)
	default:
		logger.Error("unhandled internal error", "error", err)
		message := "Внутренняя ошибка сервера. Повторите попытку позже."
		if devMode {
			message = err.Error()
		}
		respondWithError(w, http.StatusInternalServerError, message, logger)
	}
}
