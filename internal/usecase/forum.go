package usecase

import (
	"context"

	"github.com/GoArmGo/ForumApp/internal/domain"
)

// AccountUseCase определяет бизнес-логику регистрации и входа.
type AccountUseCase interface {
	// Register создает аккаунт: дожидается готовности схемы, хеширует пароль
	// и возвращает id нового аккаунта. Валидация полей — забота обработчика.
	Register(ctx context.Context, username, email, password string) (int64, error)

	// Login проверяет пару username/пароль и возвращает аккаунт.
	// Неизвестный пользователь и неверный пароль неразличимы для клиента.
	Login(ctx context.Context, username, password string) (*domain.Account, error)
}

// PostUseCase определяет бизнес-логику работы с публикациями.
type PostUseCase interface {
	Create(ctx context.Context, accountID int64, authorUsername, title, content string) (int64, error)

	// List возвращает все публикации, новые первыми
	List(ctx context.Context) ([]domain.Post, error)

	// Get возвращает публикацию по id или ErrNotFound
	Get(ctx context.Context, id int64) (*domain.Post, error)

	// ListByAuthor возвращает публикации автора, новые первыми
	ListByAuthor(ctx context.Context, accountID int64) ([]domain.Post, error)
}

// CommentUseCase определяет бизнес-логику работы с комментариями.
type CommentUseCase interface {
	// Create добавляет комментарий к существующей публикации;
	// если публикации нет — ErrNotFound
	Create(ctx context.Context, postID, accountID int64, authorUsername, content string) (int64, error)

	// ListForPost возвращает комментарии публикации, старые первыми
	ListForPost(ctx context.Context, postID int64) ([]domain.Comment, error)

	// ListByAuthor возвращает комментарии автора, новые первыми
	ListByAuthor(ctx context.Context, accountID int64) ([]domain.Comment, error)
}
