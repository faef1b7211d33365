package usecase

import (
	"context"
	"log/slog"

	"github.com/GoArmGo/ForumApp/internal/core/ports"
	"github.com/GoArmGo/ForumApp/internal/domain"
)

// postUseCase implements PostUseCase
type postUseCase struct {
	posts  ports.PostStorage
	logger *slog.Logger
}

// NewPostUseCase создает новый экземпляр PostUseCase.
func NewPostUseCase(posts ports.PostStorage, logger *slog.Logger) PostUseCase {
	return &postUseCase{posts: posts, logger: logger}
}

func (uc *postUseCase) Create(ctx context.Context, accountID int64, authorUsername, title, content string) (int64, error) {
	return uc.posts.CreatePost(ctx, accountID, authorUsername, title, content)
}

func (uc *postUseCase) List(ctx context.Context) ([]domain.Post, error) {
	return uc.posts.ListPosts(ctx)
}

// Get возвращает публикацию или ErrNotFound, если её нет.
func (uc *postUseCase) Get(ctx context.Context, id int64) (*domain.Post, error) {
	post, err := uc.posts.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	return post, nil
}

func (uc *postUseCase) ListByAuthor(ctx context.Context, accountID int64) ([]domain.Post, error) {
	return uc.posts.ListPostsByAuthor(ctx, accountID)
}
