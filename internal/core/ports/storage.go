package ports

import (
	"context"

	"github.com/GoArmGo/ForumApp/internal/domain"
)

// AccountStorage определяет методы для взаимодействия с хранилищем аккаунтов
type AccountStorage interface {
	// CreateAccount вставляет новый аккаунт и возвращает сгенерированный id.
	// Хеширование пароля — забота вызывающего слоя, сюда приходит готовый хеш.
	CreateAccount(ctx context.Context, username, email, passwordHash string) (int64, error)

	// GetByUsername возвращает аккаунт по имени пользователя, (nil, nil) если не найден
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)

	// GetByEmail возвращает аккаунт по email, (nil, nil) если не найден
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)

	// DeleteAccount удаляет аккаунт; публикации и комментарии каскадно
	// удаляются ссылочными ограничениями схемы
	DeleteAccount(ctx context.Context, id int64) error
}

// PostStorage определяет методы для взаимодействия с хранилищем публикаций
type PostStorage interface {
	CreatePost(ctx context.Context, accountID int64, authorUsername, title, content string) (int64, error)

	// ListPosts возвращает все публикации, новые первыми
	ListPosts(ctx context.Context) ([]domain.Post, error)

	// GetPost возвращает публикацию по id, (nil, nil) если не найдена
	GetPost(ctx context.Context, id int64) (*domain.Post, error)

	// ListPostsByAuthor возвращает публикации автора, новые первыми
	ListPostsByAuthor(ctx context.Context, accountID int64) ([]domain.Post, error)
}

// CommentStorage определяет методы для взаимодействия с хранилищем комментариев
type CommentStorage interface {
	CreateComment(ctx context.Context, postID, accountID int64, authorUsername, content string) (int64, error)

	// ListCommentsForPost возвращает комментарии публикации в порядке создания (старые первыми)
	ListCommentsForPost(ctx context.Context, postID int64) ([]domain.Comment, error)

	// ListCommentsByAuthor возвращает комментарии автора, новые первыми
	ListCommentsByAuthor(ctx context.Context, accountID int64) ([]domain.Comment, error)
}
