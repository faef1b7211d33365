package usecase

import "errors"

// Ошибки бизнес-логики. Обработчики маппят их в HTTP-статусы через errors.Is.
var (
	// ErrNotReady — схема БД еще не создана; клиенту имеет смысл повторить запрос
	ErrNotReady = errors.New("usecase: схема базы данных еще не готова")

	// ErrUnavailable — хранилище недоступно (сеть, аутентификация, нет базы)
	ErrUnavailable = errors.New("usecase: база данных недоступна")

	// ErrDuplicate — нарушение уникальности (занятый username или email)
	ErrDuplicate = errors.New("usecase: аккаунт с таким именем или email уже существует")

	// ErrNotFound — запрошенная сущность отсутствует
	ErrNotFound = errors.New("usecase: запись не найдена")

	// ErrInvalidCredentials — неизвестный пользователь или неверный пароль
	ErrInvalidCredentials = errors.New("usecase: неверное имя пользователя или пароль")
)
