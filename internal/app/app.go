package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/GoArmGo/ForumApp/internal/config"
	"github.com/GoArmGo/ForumApp/internal/database/bootstrap"
	"github.com/GoArmGo/ForumApp/internal/database/client"
	"github.com/GoArmGo/ForumApp/internal/handler"
)

// App — собранное приложение форума.
type App struct {
	cfg          *config.Config
	logger       *slog.Logger
	dbClient     *client.Client
	bootstrapper *bootstrap.Bootstrapper

	authHandler    *handler.AuthHandler
	postHandler    *handler.PostHandler
	commentHandler *handler.CommentHandler
	healthHandler  *handler.HealthHandler
	sessionAuth    func(next http.Handler) http.Handler
}

// NewApp собирает App из готовых зависимостей (см. di.BuildApp).
func NewApp(
	cfg *config.Config,
	logger *slog.Logger,
	dbClient *client.Client,
	bootstrapper *bootstrap.Bootstrapper,
	authHandler *handler.AuthHandler,
	postHandler *handler.PostHandler,
	commentHandler *handler.CommentHandler,
	healthHandler *handler.HealthHandler,
	sessionAuth func(next http.Handler) http.Handler,
) *App {
	return &App{
		cfg:            cfg,
		logger:         logger,
		dbClient:       dbClient,
		bootstrapper:   bootstrapper,
		authHandler:    authHandler,
		postHandler:    postHandler,
		commentHandler: commentHandler,
		healthHandler:  healthHandler,
		sessionAuth:    sessionAuth,
	}
}

// LoggerIns возвращает основной логгер приложения.
func (a *App) LoggerIns() *slog.Logger {
	return a.logger
}

// Run запускает фоновую инициализацию схемы и HTTP-сервер,
// затем ждет сигнал завершения.
func (a *App) Run(ctx context.Context) error {
	// канал для graceful shutdown
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Схема создается асинхронно: сервер начинает слушать сразу,
	// готовность отслеживает bootstrapper
	a.bootstrapper.Start(ctx)

	if err := a.runServer(ctx); err != nil {
		return err
	}

	// аккуратно закрываем ресурсы
	if closeErr := a.Shutdown(); closeErr != nil {
		a.logger.Error("shutdown error", "error", closeErr)
	}

	a.logger.Info("application stopped")
	return nil
}

// Shutdown закрывает все ресурсы приложения.
func (a *App) Shutdown() error {
	if a.dbClient != nil {
		if err := a.dbClient.Close(); err != nil {
			return fmt.Errorf("ошибка закрытия БД: %w", err)
		}
	}
	return nil
}
