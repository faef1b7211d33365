package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GoArmGo/ForumApp/internal/core/ports"
	"github.com/GoArmGo/ForumApp/internal/domain"
	"github.com/GoArmGo/ForumApp/internal/session"
	"github.com/GoArmGo/ForumApp/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

// forumStub — in-memory реализация всех трех usecase-интерфейсов,
// достаточная для прогона сквозных сценариев через HTTP.
type forumStub struct {
	nextID   int64
	accounts map[string]*domain.Account
	posts    map[int64]*domain.Post
	comments map[int64][]domain.Comment

	registerErr error
}

func newForumStub() *forumStub {
	return &forumStub{
		accounts: make(map[string]*domain.Account),
		posts:    make(map[int64]*domain.Post),
		comments: make(map[int64][]domain.Comment),
	}
}

func (f *forumStub) id() int64 {
	f.nextID++
	return f.nextID
}

func (f *forumStub) Register(ctx context.Context, username, email, password string) (int64, error) {
	if f.registerErr != nil {
		return 0, f.registerErr
	}
	if _, exists := f.accounts[username]; exists {
		return 0, usecase.ErrDuplicate
	}
	hash, err := usecase.HashPassword(password)
	if err != nil {
		return 0, err
	}
	acc := &domain.Account{ID: f.id(), Username: username, Email: email, PasswordHash: hash, CreatedAt: time.Now()}
	f.accounts[username] = acc
	return acc.ID, nil
}

func (f *forumStub) Login(ctx context.Context, username, password string) (*domain.Account, error) {
	acc, ok := f.accounts[username]
	if !ok || !usecase.VerifyPassword(password, acc.PasswordHash) {
		return nil, usecase.ErrInvalidCredentials
	}
	return acc, nil
}

func (f *forumStub) Create(ctx context.Context, accountID int64, authorUsername, title, content string) (int64, error) {
	post := &domain.Post{ID: f.id(), AccountID: accountID, AuthorUsername: authorUsername, Title: title, Content: content, CreatedAt: time.Now()}
	f.posts[post.ID] = post
	return post.ID, nil
}

func (f *forumStub) List(ctx context.Context) ([]domain.Post, error) {
	var out []domain.Post
	for _, p := range f.posts {
		out = append(out, *p)
	}
	return out, nil
}

func (f *forumStub) Get(ctx context.Context, id int64) (*domain.Post, error) {
	post, ok := f.posts[id]
	if !ok {
		return nil, usecase.ErrNotFound
	}
	return post, nil
}

func (f *forumStub) ListByAuthor(ctx context.Context, accountID int64) ([]domain.Post, error) {
	var out []domain.Post
	for _, p := range f.posts {
		if p.AccountID == accountID {
			out = append(out, *p)
		}
	}
	return out, nil
}

// commentStub адаптирует forumStub к usecase.CommentUseCase
// (у методов Create конфликтующие сигнатуры).
type commentStub struct {
	forum *forumStub
}

func (c *commentStub) Create(ctx context.Context, postID, accountID int64, authorUsername, content string) (int64, error) {
	if _, ok := c.forum.posts[postID]; !ok {
		return 0, usecase.ErrNotFound
	}
	cm := domain.Comment{ID: c.forum.id(), PostID: postID, AccountID: accountID, AuthorUsername: authorUsername, Content: content, CreatedAt: time.Now()}
	c.forum.comments[postID] = append(c.forum.comments[postID], cm)
	return cm.ID, nil
}

func (c *commentStub) ListForPost(ctx context.Context, postID int64) ([]domain.Comment, error) {
	return c.forum.comments[postID], nil
}

func (c *commentStub) ListByAuthor(ctx context.Context, accountID int64) ([]domain.Comment, error) {
	var out []domain.Comment
	for _, list := range c.forum.comments {
		for _, cm := range list {
			if cm.AccountID == accountID {
				out = append(out, cm)
			}
		}
	}
	return out, nil
}

// gateStub — управляемый ports.ReadinessGate.
type gateStub struct {
	ready bool
}

func (g *gateStub) Ready() bool                                                { return g.ready }
func (g *gateStub) AwaitReady(ctx context.Context, timeout time.Duration) bool { return g.ready }

type testEnv struct {
	router   http.Handler
	forum    *forumStub
	sessions ports.SessionStore
	gate     *gateStub
}

// newTestEnv собирает роутер с теми же маршрутами, что и боевой сервер.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	forum := newForumStub()
	comments := &commentStub{forum: forum}
	sessions := session.NewMemoryStore(logger)
	gate := &gateStub{ready: true}

	authHandler := NewAuthHandler(forum, sessions, testSecret, false, logger)
	postHandler := NewPostHandler(forum, false, logger)
	commentHandler := NewCommentHandler(comments, false, logger)
	healthHandler := NewHealthHandler(gate, logger)

	r := chi.NewRouter()
	r.Get("/health", healthHandler.Health)
	r.Route("/api", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Get("/user", authHandler.CurrentUser)
		r.Get("/posts", postHandler.ListPosts)
		r.Get("/posts/{id}", postHandler.GetPost)
		r.Get("/posts/{id}/comments", commentHandler.ListComments)
		r.Group(func(r chi.Router) {
			r.Use(SessionAuth(sessions, testSecret, logger))
			r.Post("/logout", authHandler.Logout)
			r.Post("/posts", postHandler.CreatePost)
			r.Post("/posts/{id}/comments", commentHandler.CreateComment)
		})
	})

	return &testEnv{router: r, forum: forum, sessions: sessions, gate: gate}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookieName && c.Value != "" {
			return c
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)

	// отсутствующие поля
	rec := env.do(t, http.MethodPost, "/api/register", map[string]string{"username": "alice"}, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// короткий пароль отбрасывается до обращения к хранилищу
	rec = env.do(t, http.MethodPost, "/api/register", map[string]string{
		"username": "alice", "email": "alice@x.com", "password": "12345",
	}, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Empty(t, env.forum.accounts)

	// битый JSON
	req := httptest.NewRequest(http.MethodPost, "/api/register", bytes.NewReader([]byte("{")))
	rw := httptest.NewRecorder()
	env.router.ServeHTTP(rw, req)
	require.Equal(t, http.StatusBadRequest, rw.Code)
}

func TestRegisterDuplicate(t *testing.T) {
	env := newTestEnv(t)

	body := map[string]string{"username": "alice", "email": "alice@x.com", "password": "secret1"}
	rec := env.do(t, http.MethodPost, "/api/register", body, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/register", body, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Len(t, env.forum.accounts, 1)
}

func TestRegisterSchemaNotReady(t *testing.T) {
	env := newTestEnv(t)
	env.forum.registerErr = usecase.ErrNotReady

	rec := env.do(t, http.MethodPost, "/api/register", map[string]string{
		"username": "alice", "email": "alice@x.com", "password": "secret1",
	}, nil)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestLoginBadCredentials(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/login", map[string]string{"username": "ghost", "password": "secret1"}, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/login", map[string]string{"username": "ghost"}, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSessionLifecycle(t *testing.T) {
	env := newTestEnv(t)

	env.do(t, http.MethodPost, "/api/register", map[string]string{
		"username": "alice", "email": "alice@x.com", "password": "secret1",
	}, nil)

	rec := env.do(t, http.MethodPost, "/api/login", map[string]string{"username": "alice", "password": "secret1"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, "alice", body["username"])

	cookie := sessionCookie(t, rec)

	// после входа /api/user видит сессию
	rec = env.do(t, http.MethodGet, "/api/user", nil, cookie)
	body = decodeBody(t, rec)
	require.Equal(t, true, body["loggedIn"])
	require.Equal(t, "alice", body["username"])

	// выход уничтожает сессию
	rec = env.do(t, http.MethodPost, "/api/logout", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/user", nil, cookie)
	body = decodeBody(t, rec)
	require.Equal(t, false, body["loggedIn"])
}

func TestCurrentUserWithoutSession(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/user", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, false, decodeBody(t, rec)["loggedIn"])
}

func TestForgedCookieRejected(t *testing.T) {
	env := newTestEnv(t)

	forged := &http.Cookie{Name: sessionCookieName, Value: "some-token.deadbeef"}
	rec := env.do(t, http.MethodPost, "/api/posts", map[string]string{"title": "Hi", "content": "Hello"}, forged)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreatePostRequiresSession(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/posts", map[string]string{"title": "Hi", "content": "Hello"}, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Empty(t, env.forum.posts)
}

func TestCreateCommentRequiresSession(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/posts/1/comments", map[string]string{"content": "Nice"}, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetPostErrors(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/posts/999", nil, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/posts/abc", nil, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListPostsEmpty(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/posts", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "[]", rec.Body.String())
}

// Сквозной сценарий: регистрация -> вход -> публикация -> комментарий.
func TestForumScenario(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/register", map[string]string{
		"username": "alice", "email": "alice@x.com", "password": "secret1",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, true, decodeBody(t, rec)["success"])

	rec = env.do(t, http.MethodPost, "/api/login", map[string]string{"username": "alice", "password": "secret1"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cookie := sessionCookie(t, rec)

	rec = env.do(t, http.MethodPost, "/api/posts", map[string]string{"title": "Hi", "content": "Hello"}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	postID := decodeBody(t, rec)["postId"].(float64)
	require.NotZero(t, postID)

	path := fmt.Sprintf("/api/posts/%d", int64(postID))
	rec = env.do(t, http.MethodGet, path, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Hi", decodeBody(t, rec)["title"])

	rec = env.do(t, http.MethodPost, path+"/comments", map[string]string{"content": "Nice"}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, path+"/comments", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var comments []domain.Comment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &comments))
	require.Len(t, comments, 1)
	require.Equal(t, "Nice", comments[0].Content)
	require.Equal(t, "alice", comments[0].AuthorUsername)
}

func TestCreatePostValidation(t *testing.T) {
	env := newTestEnv(t)

	env.do(t, http.MethodPost, "/api/register", map[string]string{
		"username": "alice", "email": "alice@x.com", "password": "secret1",
	}, nil)
	rec := env.do(t, http.MethodPost, "/api/login", map[string]string{"username": "alice", "password": "secret1"}, nil)
	cookie := sessionCookie(t, rec)

	rec = env.do(t, http.MethodPost, "/api/posts", map[string]string{"title": "", "content": "Hello"}, cookie)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Empty(t, env.forum.posts)
}

func TestHealthReflectsReadiness(t *testing.T) {
	env := newTestEnv(t)

	env.gate.ready = false
	rec := env.do(t, http.MethodGet, "/health", nil, nil)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, false, body["tablesReady"])
	require.Equal(t, "initializing", body["status"])

	env.gate.ready = true
	rec = env.do(t, http.MethodGet, "/health", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	require.Equal(t, true, body["tablesReady"])
	require.Equal(t, "healthy", body["status"])
}
