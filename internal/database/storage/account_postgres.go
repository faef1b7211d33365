package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/ForumApp/internal/domain"
	"github.com/jmoiron/sqlx"
)

// AccountStorage реализует интерфейс ports.AccountStorage поверх sqlx
type AccountStorage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewAccountStorage(db *sqlx.DB, logger *slog.Logger) *AccountStorage {
	return &AccountStorage{db: db, logger: logger}
}

// CreateAccount вставляет новый аккаунт и возвращает сгенерированный id.
// Ошибки БД пробрасываются наверх без изменения: по коду 23505 вызывающий
// слой отличает конфликт уникальности от остальных ошибок.
func (s *AccountStorage) CreateAccount(ctx context.Context, username, email, passwordHash string) (int64, error) {
	start := time.Now()

	var id int64
	query := `
	INSERT INTO accounts (username, email, password_hash)
	VALUES ($1, $2, $3)
	RETURNING id
	`

	if err := s.db.QueryRowxContext(ctx, query, username, email, passwordHash).Scan(&id); err != nil {
		s.logger.Error("failed to insert account", "username", username, "error", err)
		return 0, fmt.Errorf("ошибка при создании аккаунта: %w", err)
	}

	s.logger.Info("account created",
		"account_id", id,
		"username", username,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return id, nil
}

// GetByUsername возвращает аккаунт по имени пользователя.
func (s *AccountStorage) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	var account domain.Account
	query := `SELECT * FROM accounts WHERE username = $1 LIMIT 1`

	err := s.db.GetContext(ctx, &account, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		s.logger.Error("failed to get account by username", "username", username, "error", err)
		return nil, fmt.Errorf("ошибка при поиске аккаунта по имени: %w", err)
	}

	return &account, nil
}

// GetByEmail возвращает аккаунт по email.
func (s *AccountStorage) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var account domain.Account
	query := `SELECT * FROM accounts WHERE email = $1 LIMIT 1`

	err := s.db.GetContext(ctx, &account, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		s.logger.Error("failed to get account by email", "email", email, "error", err)
		return nil, fmt.Errorf("ошибка при поиске аккаунта по email: %w", err)
	}

	return &account, nil
}

// DeleteAccount удаляет аккаунт. Публикации и комментарии удаляются
// каскадно ограничениями ON DELETE CASCADE.
func (s *AccountStorage) DeleteAccount(ctx context.Context, id int64) error {
	start := time.Now()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1`, id); err != nil {
		s.logger.Error("failed to delete account", "account_id", id, "error", err)
		return fmt.Errorf("ошибка при удалении аккаунта: %w", err)
	}

	s.logger.Info("account deleted",
		"account_id", id,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}
