package ports

import (
	"context"
	"time"
)

// ReadinessGate определяет методы ожидания готовности схемы БД.
// Обработчики не должны трогать таблицы, пока схема не создана.
type ReadinessGate interface {
	// Ready сообщает текущее состояние без ожидания
	Ready() bool

	// AwaitReady блокирует вызывающего до готовности схемы, но не дольше timeout.
	// Возвращает итоговую готовность.
	AwaitReady(ctx context.Context, timeout time.Duration) bool
}
