package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// State описывает фазу инициализации схемы БД.
type State int32

const (
	StateUninitialized State = iota
	StateProbing
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateProbing:
		return "probing"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

const (
	// Число попыток фонового probe и пауза между ними
	probeAttempts = 3
	probeBackoff  = time.Second

	// DefaultAwaitTimeout — сколько по умолчанию ждут готовности схемы
	// вызывающие AwaitReady (обработчик регистрации и т.п.)
	DefaultAwaitTimeout = 10 * time.Second
)

// Bootstrapper асинхронно проверяет связь с БД, создает таблицы схемы и
// отслеживает готовность. Состояния: uninitialized -> probing -> ready|failed;
// из failed возможен повторный синхронный probe через AwaitReady.
type Bootstrapper struct {
	db     Execer
	logger *slog.Logger

	mu      sync.Mutex
	state   State
	readyCh chan struct{} // закрывается при переходе в ready
}

// Execer — узкий срез *sqlx.DB, достаточный для инициализации схемы.
// Вынесен в интерфейс, чтобы тесты могли подставить фейк.
type Execer interface {
	PingContext(ctx context.Context) error
	ExecContext(ctx context.Context, query string, args ...interface{}) error
	TableExists(ctx context.Context, name string) (bool, error)
}

// New создает Bootstrapper поверх подготовленного пула соединений.
func New(db Execer, logger *slog.Logger) *Bootstrapper {
	return &Bootstrapper{
		db:      db,
		logger:  logger,
		state:   StateUninitialized,
		readyCh: make(chan struct{}),
	}
}

// Start запускает фоновую инициализацию схемы. Неблокирующий.
// Ошибки не фатальны: процесс продолжает работать в деградированном режиме,
// готовность будет перепроверена последующими вызовами AwaitReady.
func (b *Bootstrapper) Start(ctx context.Context) {
	b.setState(StateProbing)
	go b.probe(ctx)
}

// probe — фоновая инициализация с фиксированным бюджетом повторов.
func (b *Bootstrapper) probe(ctx context.Context) {
	for attempt := 1; attempt <= probeAttempts; attempt++ {
		err := b.initSchema(ctx)
		if err == nil {
			b.markReady()
			b.logger.Info("database schema ready", "attempt", attempt)
			return
		}

		b.logger.Warn("schema initialization attempt failed",
			"attempt", attempt,
			"max_attempts", probeAttempts,
			"error", err,
		)

		if attempt < probeAttempts {
			select {
			case <-time.After(probeBackoff):
			case <-ctx.Done():
				b.setState(StateFailed)
				return
			}
		}
	}

	b.setState(StateFailed)
	b.logger.Error("schema initialization failed, serving in degraded mode",
		"attempts", probeAttempts,
	)
}

// initSchema проверяет связь и создает таблицы. Идемпотентно.
func (b *Bootstrapper) initSchema(ctx context.Context) error {
	if err := b.db.PingContext(ctx); err != nil {
		return fmt.Errorf("ошибка проверки связи с БД: %w", err)
	}

	for _, stmt := range schemaStatements {
		if err := b.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ошибка создания таблиц: %w", err)
		}
	}
	return nil
}

// Ready сообщает текущую готовность без ожидания.
func (b *Bootstrapper) Ready() bool {
	return b.State() == StateReady
}

// State возвращает текущее состояние инициализации.
func (b *Bootstrapper) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// AwaitReady блокирует вызывающего до готовности схемы, но не дольше timeout.
// Если фоновый probe не успел или провалился, делает прямую проверку каталога
// схемы и одну синхронную попытку создания таблиц. Возвращает итоговую
// готовность.
func (b *Bootstrapper) AwaitReady(ctx context.Context, timeout time.Duration) bool {
	if b.Ready() {
		return true
	}

	// failed ждать нечего — сразу пробуем синхронно
	if b.State() != StateFailed {
		timer := time.NewTimer(timeout)
		defer timer.Stop()

		select {
		case <-b.readyCh:
			return true
		case <-timer.C:
		case <-ctx.Done():
			return false
		}
	}

	return b.recheck(ctx)
}

// recheck — fallback: прямой запрос каталога схемы; если таблиц нет —
// одна синхронная попытка их создать.
func (b *Bootstrapper) recheck(ctx context.Context) bool {
	exists, err := b.db.TableExists(ctx, "accounts")
	if err != nil {
		b.logger.Warn("schema catalog probe failed", "error", err)
		return false
	}

	if exists {
		b.markReady()
		b.logger.Info("schema found by catalog probe, marking ready")
		return true
	}

	if err := b.initSchema(ctx); err != nil {
		b.logger.Warn("synchronous schema creation failed", "error", err)
		b.setState(StateFailed)
		return false
	}

	b.markReady()
	b.logger.Info("schema created synchronously after await timeout")
	return true
}

func (b *Bootstrapper) setState(s State) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state == StateReady {
		// из ready не выходим
		return
	}
	b.state = s
}

func (b *Bootstrapper) markReady() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state == StateReady {
		return
	}
	b.state = StateReady
	close(b.readyCh)
}
