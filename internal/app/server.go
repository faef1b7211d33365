package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/GoArmGo/ForumApp/internal/handler"
)

// runServer запускает HTTP-сервер и блокируется до отмены ctx.
func (a *App) runServer(ctx context.Context) error {
	r := chi.NewRouter()
	r.Use(handler.RequestLogger(a.logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(a.cfg.RequestTimeout))

	r.Get("/health", a.healthHandler.Health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", a.authHandler.Register)
		r.Post("/login", a.authHandler.Login)
		r.Get("/user", a.authHandler.CurrentUser)

		r.Get("/posts", a.postHandler.ListPosts)
		r.Get("/posts/{id}", a.postHandler.GetPost)
		r.Get("/posts/{id}/comments", a.commentHandler.ListComments)

		// Операции, требующие авторизованной сессии
		r.Group(func(r chi.Router) {
			r.Use(a.sessionAuth)
			r.Post("/logout", a.authHandler.Logout)
			r.Post("/posts", a.postHandler.CreatePost)
			r.Post("/posts/{id}/comments", a.commentHandler.CreateComment)
		})
	})

	serverAddr := fmt.Sprintf(":%s", a.cfg.ServerPort)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server listening", "addr", serverAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("ошибка при запуске сервера: %w", err)
	case <-ctx.Done():
	}

	a.logger.Info("shutdown signal received, stopping server")

	ctxServer, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxServer); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	a.logger.Info("server stopped gracefully")
	return nil
}
