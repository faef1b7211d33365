package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/GoArmGo/ForumApp/internal/core/ports"
	"github.com/GoArmGo/ForumApp/internal/domain"
)

// RequestLogger — middleware для логирования HTTP-запросов.
func RequestLogger(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Оборачиваем ResponseWriter, чтобы знать статус
			ww := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(ww, r)

			duration := time.Since(start)
			logger.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.statusCode,
				"duration_ms", duration.Milliseconds(),
			)
		})
	}
}

// responseWriter нужен, чтобы перехватывать код ответа
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

type sessionCtxKey struct{}

// SessionAuth — middleware авторизации: достает сессию из cookie и кладет её
// в контекст запроса. Без валидной сессии — 401 до любого обращения к БД.
func SessionAuth(store ports.SessionStore, secret string, logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := sessionTokenFromRequest(r, secret)
			if !ok {
				respondWithError(w, http.StatusUnauthorized, "Требуется вход в систему.", logger)
				return
			}

			sess, ok := store.Get(token)
			if !ok {
				respondWithError(w, http.StatusUnauthorized, "Требуется вход в систему.", logger)
				return
			}

			ctx := context.WithValue(r.Context(), sessionCtxKey{}, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// sessionFromContext возвращает сессию, положенную SessionAuth.
func sessionFromContext(ctx context.Context) (*domain.Session, bool) {
	sess, ok := ctx.Value(sessionCtxKey{}).(*domain.Session)
	return sess, ok
}
