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

// PostStorage реализует интерфейс ports.PostStorage поверх sqlx
type PostStorage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewPostStorage(db *sqlx.DB, logger *slog.Logger) *PostStorage {
	return &PostStorage{db: db, logger: logger}
}

// CreatePost вставляет публикацию и возвращает сгенерированный id.
// authorUsername — снимок имени автора на момент создания.
func (s *PostStorage) CreatePost(ctx context.Context, accountID int64, authorUsername, title, content string) (int64, error) {
	start := time.Now()

	var id int64
	query := `
	INSERT INTO posts (account_id, author_username, title, content)
	VALUES ($1, $2, $3, $4)
	RETURNING id
	`

	if err := s.db.QueryRowxContext(ctx, query, accountID, authorUsername, title, content).Scan(&id); err != nil {
		s.logger.Error("failed to insert post", "account_id", accountID, "error", err)
		return 0, fmt.Errorf("ошибка при создании публикации: %w", err)
	}

	s.logger.Info("post created",
		"post_id", id,
		"account_id", accountID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return id, nil
}

// ListPosts возвращает все публикации, новые первыми.
func (s *PostStorage) ListPosts(ctx context.Context) ([]domain.Post, error) {
	var posts []domain.Post
	query := `SELECT * FROM posts ORDER BY created_at DESC`

	if err := s.db.SelectContext(ctx, &posts, query); err != nil {
		s.logger.Error("failed to list posts", "error", err)
		return nil, fmt.Errorf("ошибка при получении списка публикаций: %w", err)
	}

	return posts, nil
}

// GetPost возвращает публикацию по id, (nil, nil) если не найдена.
func (s *PostStorage) GetPost(ctx context.Context, id int64) (*domain.Post, error) {
	var post domain.Post
	query := `SELECT * FROM posts WHERE id = $1 LIMIT 1`

	err := s.db.GetContext(ctx, &post, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		s.logger.Error("failed to get post", "post_id", id, "error", err)
		return nil, fmt.Errorf("ошибка при получении публикации: %w", err)
	}

	return &post, nil
}

// ListPostsByAuthor возвращает публикации автора, новые первыми.
func (s *PostStorage) ListPostsByAuthor(ctx context.Context, accountID int64) ([]domain.Post, error) {
	var posts []domain.Post
	query := `SELECT * FROM posts WHERE account_id = $1 ORDER BY created_at DESC`

	if err := s.db.SelectContext(ctx, &posts, query, accountID); err != nil {
		s.logger.Error("failed to list posts by author", "account_id", accountID, "error", err)
		return nil, fmt.Errorf("ошибка при получении публикаций автора: %w", err)
	}

	return posts, nil
}
