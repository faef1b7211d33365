package domain

import (
	"time"
)

// Post представляет модель публикации,
// соответствует таблице posts в бд.
// AuthorUsername — снимок имени автора на момент создания,
// а не live join (фичи переименования нет, поле не может устареть).
type Post struct {
	ID             int64     `json:"id" db:"id"`
	AccountID      int64     `json:"account_id" db:"account_id"`
	AuthorUsername string    `json:"author_username" db:"author_username"`
	Title          string    `json:"title" db:"title"`
	Content        string    `json:"content" db:"content"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// Comment представляет модель комментария к публикации,
// соответствует таблице comments в бд.
type Comment struct {
	ID             int64     `json:"id" db:"id"`
	PostID         int64     `json:"post_id" db:"post_id"`
	AccountID      int64     `json:"account_id" db:"account_id"`
	AuthorUsername string    `json:"author_username" db:"author_username"`
	Content        string    `json:"content" db:"content"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
