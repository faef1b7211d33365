package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/GoArmGo/ForumApp/internal/domain"
	"github.com/GoArmGo/ForumApp/internal/usecase"
)

// CommentHandler — обработчик HTTP-запросов для работы с комментариями.
type CommentHandler struct {
	comments usecase.CommentUseCase
	devMode  bool
	logger   *slog.Logger
}

// NewCommentHandler создаёт новый экземпляр CommentHandler.
func NewCommentHandler(comments usecase.CommentUseCase, devMode bool, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{comments: comments, devMode: devMode, logger: logger}
}

type createCommentRequest struct {
	Content string `json:"content"`
}

// CreateComment — добавление комментария к публикации. Требует сессию.
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Требуется вход в систему.", h.logger)
		return
	}

	postID, ok := postIDFromURL(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Некорректный идентификатор публикации.", h.logger)
		return
	}

	var req createCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Некорректное тело запроса.", h.logger)
		return
	}

	if req.Content == "" {
		respondWithError(w, http.StatusBadRequest, "Введите текст комментария.", h.logger)
		return
	}

	if _, err := h.comments.Create(r.Context(), postID, sess.AccountID, sess.Username, req.Content); err != nil {
		h.logger.Error("failed to create comment", "post_id", postID, "account_id", sess.AccountID, "error", err)
		respondUseCaseError(w, err, h.devMode, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Комментарий добавлен.",
	}, h.logger)
}

// ListComments — комментарии публикации в порядке создания.
func (h *CommentHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	postID, ok := postIDFromURL(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Некорректный идентификатор публикации.", h.logger)
		return
	}

	comments, err := h.comments.ListForPost(r.Context(), postID)
	if err != nil {
		h.logger.Error("failed to list comments", "post_id", postID, "error", err)
		respondUseCaseError(w, err, h.devMode, h.logger)
		return
	}

	// пустой список сериализуем как [], а не null
	if comments == nil {
		comments = []domain.Comment{}
	}
	respondWithJSON(w, http.StatusOK, comments, h.logger)
}
