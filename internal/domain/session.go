package domain

import (
	"time"
)

// Session представляет серверную сессию: связывает идентификатор из cookie
// с авторизованным аккаунтом.
type Session struct {
	Token     string    `json:"-"`
	AccountID int64     `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired сообщает, истекла ли сессия.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
