package domain

import (
	"time"
)

// Account представляет модель пользователя в системе.
// Соответствует таблице 'accounts' в базе данных.
type Account struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
