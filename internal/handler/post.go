package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/GoArmGo/ForumApp/internal/domain"
	"github.com/GoArmGo/ForumApp/internal/usecase"
	"github.com/go-chi/chi/v5"
)

// PostHandler — обработчик HTTP-запросов для работы с публикациями.
type PostHandler struct {
	posts   usecase.PostUseCase
	devMode bool
	logger  *slog.Logger
}

// NewPostHandler создаёт новый экземпляр PostHandler.
func NewPostHandler(posts usecase.PostUseCase, devMode bool, logger *slog.Logger) *PostHandler {
	return &PostHandler{posts: posts, devMode: devMode, logger: logger}
}

type createPostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// postIDFromURL достает числовой id публикации из пути запроса.
func postIDFromURL(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

// CreatePost — создание публикации. Требует сессию (middleware SessionAuth).
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Требуется вход в систему.", h.logger)
		return
	}

	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Некорректное тело запроса.", h.logger)
		return
	}

	if req.Title == "" || req.Content == "" {
		respondWithError(w, http.StatusBadRequest, "Укажите заголовок и текст публикации.", h.logger)
		return
	}

	postID, err := h.posts.Create(r.Context(), sess.AccountID, sess.Username, req.Title, req.Content)
	if err != nil {
		h.logger.Error("failed to create post", "account_id", sess.AccountID, "error", err)
		respondUseCaseError(w, err, h.devMode, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"postId":  postID,
		"message": "Публикация создана.",
	}, h.logger)
}

// ListPosts — список всех публикаций, новые первыми.
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list posts", "error", err)
		respondUseCaseError(w, err, h.devMode, h.logger)
		return
	}

	// пустой список сериализуем как [], а не null
	if posts == nil {
		posts = []domain.Post{}
	}
	respondWithJSON(w, http.StatusOK, posts, h.logger)
}

// GetPost — публикация по id.
func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, ok := postIDFromURL(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Некорректный идентификатор публикации.", h.logger)
		return
	}

	post, err := h.posts.Get(r.Context(), id)
	if err != nil {
		respondUseCaseError(w, err, h.devMode, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, post, h.logger)
}
