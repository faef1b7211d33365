package di

import (
	"github.com/GoArmGo/ForumApp/internal/app"
	"github.com/GoArmGo/ForumApp/internal/config"
	"github.com/GoArmGo/ForumApp/internal/database/bootstrap"
	"github.com/GoArmGo/ForumApp/internal/database/client"
	"github.com/GoArmGo/ForumApp/internal/database/storage"
	"github.com/GoArmGo/ForumApp/internal/handler"
	"github.com/GoArmGo/ForumApp/internal/logger"
	"github.com/GoArmGo/ForumApp/internal/session"
	"github.com/GoArmGo/ForumApp/internal/usecase"
)

// BuildApp инициализирует все зависимости и возвращает готовый объект App.
func BuildApp() (*app.App, error) {
	// 1. Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	slogger := logger.NewSlog(logger.SlogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	slogger.Info("logger initialized", "level", cfg.LogLevel, "format", cfg.LogFormat)

	// 2. Пул соединений PostgreSQL (ленивый: без Ping)
	dbClient, err := client.New(cfg, slogger)
	if err != nil {
		return nil, err
	}

	// 3. Инициализатор схемы; запускается в app.Run
	bootstrapper := bootstrap.New(bootstrap.NewSqlxExecer(dbClient.DB), slogger)

	// 4. Хранилища
	accountStorage := storage.NewAccountStorage(dbClient.DB, slogger)
	postStorage := storage.NewPostStorage(dbClient.DB, slogger)
	commentStorage := storage.NewCommentStorage(dbClient.DB, slogger)

	// 5. Сессии (in-memory, за интерфейсом ports.SessionStore)
	sessionStore := session.NewMemoryStore(slogger)

	// 6. Бизнес-логика
	accountUseCase := usecase.NewAccountUseCase(accountStorage, bootstrapper, slogger)
	postUseCase := usecase.NewPostUseCase(postStorage, slogger)
	commentUseCase := usecase.NewCommentUseCase(commentStorage, postStorage, slogger)

	// 7. HTTP-обработчики
	devMode := cfg.IsDevelopment()
	authHandler := handler.NewAuthHandler(accountUseCase, sessionStore, cfg.SessionSecret, devMode, slogger)
	postHandler := handler.NewPostHandler(postUseCase, devMode, slogger)
	commentHandler := handler.NewCommentHandler(commentUseCase, devMode, slogger)
	healthHandler := handler.NewHealthHandler(bootstrapper, slogger)

	sessionAuth := handler.SessionAuth(sessionStore, cfg.SessionSecret, slogger)

	// 8. Сборка итогового приложения
	application := app.NewApp(
		cfg,
		slogger,
		dbClient,
		bootstrapper,
		authHandler,
		postHandler,
		commentHandler,
		healthHandler,
		sessionAuth,
	)

	slogger.Info("all dependencies initialized")
	return application, nil
}
