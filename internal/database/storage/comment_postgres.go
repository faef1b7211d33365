package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/ForumApp/internal/domain"
	"github.com/jmoiron/sqlx"
)

// CommentStorage реализует интерфейс ports.CommentStorage поверх sqlx
type CommentStorage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewCommentStorage(db *sqlx.DB, logger *slog.Logger) *CommentStorage {
	return &CommentStorage{db: db, logger: logger}
}

// CreateComment вставляет комментарий и возвращает сгенерированный id.
func (s *CommentStorage) CreateComment(ctx context.Context, postID, accountID int64, authorUsername, content string) (int64, error) {
	start := time.Now()

	var id int64
	query := `
	INSERT INTO comments (post_id, account_id, author_username, content)
	VALUES ($1, $2, $3, $4)
	RETURNING id
	`

	if err := s.db.QueryRowxContext(ctx, query, postID, accountID, authorUsername, content).Scan(&id); err != nil {
		s.logger.Error("failed to insert comment", "post_id", postID, "account_id", accountID, "error", err)
		return 0, fmt.Errorf("ошибка при создании комментария: %w", err)
	}

	s.logger.Info("comment created",
		"comment_id", id,
		"post_id", postID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return id, nil
}

// ListCommentsForPost возвращает комментарии публикации, старые первыми.
func (s *CommentStorage) ListCommentsForPost(ctx context.Context, postID int64) ([]domain.Comment, error) {
	var comments []domain.Comment
	query := `SELECT * FROM comments WHERE post_id = $1 ORDER BY created_at ASC`

	if err := s.db.SelectContext(ctx, &comments, query, postID); err != nil {
		s.logger.Error("failed to list comments for post", "post_id", postID, "error", err)
		return nil, fmt.Errorf("ошибка при получении комментариев публикации: %w", err)
	}

	return comments, nil
}

// ListCommentsByAuthor возвращает комментарии автора, новые первыми.
func (s *CommentStorage) ListCommentsByAuthor(ctx context.Context, accountID int64) ([]domain.Comment, error) {
	var comments []domain.Comment
	query := `SELECT * FROM comments WHERE account_id = $1 ORDER BY created_at DESC`

	if err := s.db.SelectContext(ctx, &comments, query, accountID); err != nil {
		s.logger.Error("failed to list comments by author", "account_id", accountID, "error", err)
		return nil, fmt.Errorf("ошибка при получении комментариев автора: %w", err)
	}

	return comments, nil
}
