package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/GoArmGo/ForumApp/internal/core/ports"
	"github.com/GoArmGo/ForumApp/internal/usecase"
)

// Минимальная длина пароля при регистрации.
const minPasswordLength = 6

// AuthHandler — обработчик HTTP-запросов регистрации, входа и выхода.
type AuthHandler struct {
	accounts      usecase.AccountUseCase
	sessions      ports.SessionStore
	sessionSecret string
	devMode       bool
	logger        *slog.Logger
}

// NewAuthHandler создаёт новый экземпляр AuthHandler.
func NewAuthHandler(
	accounts usecase.AccountUseCase,
	sessions ports.SessionStore,
	sessionSecret string,
	devMode bool,
	logger *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		accounts:      accounts,
		sessions:      sessions,
		sessionSecret: sessionSecret,
		devMode:       devMode,
		logger:        logger,
	}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register — регистрация нового пользователя.
// Валидация полей выполняется до любого обращения к хранилищу.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Некорректное тело запроса.", h.logger)
		return
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		respondWithError(w, http.StatusBadRequest, "Заполните все поля.", h.logger)
		return
	}

	if len(req.Password) < minPasswordLength {
		respondWithError(w, http.StatusBadRequest, "Пароль должен содержать не менее 6 символов.", h.logger)
		return
	}

	id, err := h.accounts.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		h.logger.Error("registration failed", "username", req.Username, "error", err)
		respondUseCaseError(w, err, h.devMode, h.logger)
		return
	}

	h.logger.Info("account registered", "account_id", id, "username", req.Username)
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Регистрация завершена.",
	}, h.logger)
}

// Login — вход: проверяет учетные данные и открывает сессию.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Некорректное тело запроса.", h.logger)
		return
	}

	if req.Username == "" || req.Password == "" {
		respondWithError(w, http.StatusBadRequest, "Введите имя пользователя и пароль.", h.logger)
		return
	}

	account, err := h.accounts.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		respondUseCaseError(w, err, h.devMode, h.logger)
		return
	}

	sess, err := h.sessions.Create(account.ID, account.Username)
	if err != nil {
		h.logger.Error("failed to create session", "username", account.Username, "error", err)
		respondUseCaseError(w, err, h.devMode, h.logger)
		return
	}

	setSessionCookie(w, sess.Token, h.sessionSecret)

	h.logger.Info("login successful", "account_id", account.ID, "username", account.Username)
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"username": account.Username,
		"message":  "Вход выполнен.",
	}, h.logger)
}

// Logout — выход: уничтожает сессию и сбрасывает cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if sess, ok := sessionFromContext(r.Context()); ok {
		h.sessions.Delete(sess.Token)
		h.logger.Info("logout", "account_id", sess.AccountID)
	}
	clearSessionCookie(w)

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Выход выполнен.",
	}, h.logger)
}

// CurrentUser — сообщает состояние сессии. Авторизация не требуется:
// без валидной сессии возвращается loggedIn=false, а не 401.
func (h *AuthHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	token, ok := sessionTokenFromRequest(r, h.sessionSecret)
	if !ok {
		respondWithJSON(w, http.StatusOK, map[string]interface{}{"loggedIn": false}, h.logger)
		return
	}

	sess, ok := h.sessions.Get(token)
	if !ok {
		respondWithJSON(w, http.StatusOK, map[string]interface{}{"loggedIn": false}, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"loggedIn": true,
		"username": sess.Username,
		"userId":   sess.AccountID,
	}, h.logger)
}
