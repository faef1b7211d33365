package bootstrap

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// SqlxExecer адаптирует *sqlx.DB к контракту Execer.
type SqlxExecer struct {
	db *sqlx.DB
}

func NewSqlxExecer(db *sqlx.DB) *SqlxExecer {
	return &SqlxExecer{db: db}
}

func (e *SqlxExecer) PingContext(ctx context.Context) error {
	return e.db.PingContext(ctx)
}

func (e *SqlxExecer) ExecContext(ctx context.Context, query string, args ...interface{}) error {
	_, err := e.db.ExecContext(ctx, query, args...)
	return err
}

// TableExists проверяет наличие таблицы в каталоге схемы.
func (e *SqlxExecer) TableExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (
		SELECT 1 FROM information_schema.tables
		WHERE table_schema = 'public' AND table_name = $1
	)`
	if err := e.db.GetContext(ctx, &exists, query, name); err != nil {
		return false, err
	}
	return exists, nil
}
