package ports

import (
	"github.com/GoArmGo/ForumApp/internal/domain"
)

// SessionStore определяет методы серверного хранилища сессий.
// Интерфейс позволяет заменить in-memory реализацию на внешнее хранилище
// при горизонтальном масштабировании.
type SessionStore interface {
	// Create создает новую сессию для аккаунта и возвращает её вместе с токеном
	Create(accountID int64, username string) (*domain.Session, error)

	// Get возвращает сессию по токену; false — если сессии нет или она истекла
	Get(token string) (*domain.Session, bool)

	// Delete уничтожает сессию (logout); отсутствующий токен — не ошибка
	Delete(token string)
}
