package usecase

import (
	"context"
	"log/slog"

	"github.com/GoArmGo/ForumApp/internal/core/ports"
	"github.com/GoArmGo/ForumApp/internal/domain"
)

// commentUseCase implements CommentUseCase
type commentUseCase struct {
	comments ports.CommentStorage
	posts    ports.PostStorage
	logger   *slog.Logger
}

// NewCommentUseCase создает новый экземпляр CommentUseCase.
func NewCommentUseCase(
	comments ports.CommentStorage,
	posts ports.PostStorage,
	logger *slog.Logger,
) CommentUseCase {
	return &commentUseCase{comments: comments, posts: posts, logger: logger}
}

// Create добавляет комментарий. Сначала убеждаемся, что публикация существует:
// внешний ключ и так не даст вставить комментарий к несуществующему посту,
// но клиенту нужен 404, а не 500.
func (uc *commentUseCase) Create(ctx context.Context, postID, accountID int64, authorUsername, content string) (int64, error) {
	post, err := uc.posts.GetPost(ctx, postID)
	if err != nil {
		return 0, err
	}
	if post == nil {
		return 0, ErrNotFound
	}

	return uc.comments.CreateComment(ctx, postID, accountID, authorUsername, content)
}

func (uc *commentUseCase) ListForPost(ctx context.Context, postID int64) ([]domain.Comment, error) {
	return uc.comments.ListCommentsForPost(ctx, postID)
}

func (uc *commentUseCase) ListByAuthor(ctx context.Context, accountID int64) ([]domain.Comment, error) {
	return uc.comments.ListCommentsByAuthor(ctx, accountID)
}
