package session

import (
	"log/slog"
	"sync"
	"time"

	"github.com/GoArmGo/ForumApp/internal/domain"
	"github.com/google/uuid"
)

// TTL сессии соответствует сроку жизни cookie (24 часа).
const sessionTTL = 24 * time.Hour

// MemoryStore — in-memory реализация ports.SessionStore.
// Сессии живут в памяти процесса и не разделяются между инстансами:
// горизонтальное масштабирование требует внешней реализации интерфейса.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
	logger   *slog.Logger

	// подменяется в тестах
	now func() time.Time
}

func NewMemoryStore(logger *slog.Logger) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*domain.Session),
		logger:   logger,
		now:      time.Now,
	}
}

// Create создает новую сессию для аккаунта.
func (s *MemoryStore) Create(accountID int64, username string) (*domain.Session, error) {
	now := s.now()
	sess := &domain.Session{
		Token:     uuid.NewString(),
		AccountID: accountID,
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(sessionTTL),
	}

	s.mu.Lock()
	s.sessions[sess.Token] = sess
	s.mu.Unlock()

	s.logger.Info("session created", "account_id", accountID, "username", username)
	return sess, nil
}

// Get возвращает сессию по токену. Истекшие сессии удаляются лениво.
func (s *MemoryStore) Get(token string) (*domain.Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if sess.Expired(s.now()) {
		s.Delete(token)
		return nil, false
	}

	return sess, true
}

// Delete уничтожает сессию. Отсутствующий токен — не ошибка.
func (s *MemoryStore) Delete(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}
