package storage

import (
	"errors"
	"net"

	"github.com/lib/pq"
)

// Коды ошибок PostgreSQL, на которые завязана маршрутизация ответов:
// уникальный конфликт — 4xx, отсутствие схемы / недоступность — 503.
const (
	pqUniqueViolation    = "23505"
	pqUndefinedTable     = "42P01"
	pqInvalidPassword    = "28P01"
	pqInvalidCatalogName = "3D000"
)

// IsUniqueViolation сообщает, нарушает ли ошибка уникальное ограничение
// (занятый username или email).
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pqUniqueViolation
	}
	return false
}

// IsSchemaMissing сообщает, что запрос пришел раньше, чем bootstrap создал
// таблицы. Для клиента это retryable-ситуация.
func IsSchemaMissing(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pqUndefinedTable
	}
	return false
}

// IsUnavailable сообщает, что хранилище недоступно: сетевая ошибка,
// ошибка аутентификации или отсутствующая база.
func IsUnavailable(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		code := string(pqErr.Code)
		return code == pqInvalidPassword || code == pqInvalidCatalogName
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var opErr *net.OpError
	return errors.As(err, &opErr)
}
