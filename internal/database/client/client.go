package client

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/ForumApp/internal/config"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Client представляет клиент для взаимодействия с PostgreSQL.
// Владеет пулом соединений; лимит пула ограничивает число одновременных
// запросов, лишние ждут свободного соединения.
type Client struct {
	DB     *sqlx.DB
	logger *slog.Logger
}

// New создает пул соединений с PostgreSQL.
// Подключение ленивое (sqlx.Open без Ping): процесс должен стартовать и
// отвечать на /health, даже если база еще недоступна — проверкой связи
// занимается bootstrap.
func New(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	db, err := sqlx.Open("postgres", cfg.DatabaseURL())
	if err != nil {
		logger.Error("failed to open PostgreSQL pool", "error", err)
		return nil, fmt.Errorf("ошибка открытия соединения с БД: %w", err)
	}

	db.SetMaxOpenConns(cfg.DBMaxConns)
	db.SetMaxIdleConns(cfg.DBMaxConns / 2)
	db.SetConnMaxLifetime(5 * time.Minute)

	logger.Info("PostgreSQL pool created",
		"host", cfg.DBHost,
		"database", cfg.DBName,
		"max_conns", cfg.DBMaxConns,
	)

	return &Client{DB: db, logger: logger}, nil
}

func (c *Client) Close() error {
	start := time.Now()
	err := c.DB.Close()
	if err != nil {
		c.logger.Error("failed to close database connection", "error", err)
		return err
	}
	c.logger.Info("database connection closed", "duration_ms", time.Since(start).Milliseconds())
	return nil
}
