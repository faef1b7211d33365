package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/ForumApp/internal/core/ports"
	"github.com/GoArmGo/ForumApp/internal/database/bootstrap"
	"github.com/GoArmGo/ForumApp/internal/database/storage"
	"github.com/GoArmGo/ForumApp/internal/domain"
)

// accountUseCase implements AccountUseCase
type accountUseCase struct {
	accounts  ports.AccountStorage
	readiness ports.ReadinessGate
	logger    *slog.Logger
}

// NewAccountUseCase создает новый экземпляр AccountUseCase.
func NewAccountUseCase(
	accounts ports.AccountStorage,
	readiness ports.ReadinessGate,
	logger *slog.Logger,
) AccountUseCase {
	return &accountUseCase{
		accounts:  accounts,
		readiness: readiness,
		logger:    logger,
	}
}

// Register создает аккаунт. Единственный путь, который явно дожидается
// готовности схемы: регистрация — первое, что делает пользователь на
// свежем развертывании, пока bootstrap еще создает таблицы.
func (uc *accountUseCase) Register(ctx context.Context, username, email, password string) (int64, error) {
	if !uc.readiness.AwaitReady(ctx, bootstrap.DefaultAwaitTimeout) {
		return 0, ErrNotReady
	}

	hash, err := HashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("usecase: %w", err)
	}

	id, err := uc.accounts.CreateAccount(ctx, username, email, hash)
	if err != nil {
		return 0, uc.classifyStoreError(err)
	}

	return id, nil
}

// Login проверяет учетные данные. Оба случая — неизвестный пользователь и
// неверный пароль — возвращают одну и ту же ошибку.
func (uc *accountUseCase) Login(ctx context.Context, username, password string) (*domain.Account, error) {
	account, err := uc.accounts.GetByUsername(ctx, username)
	if err != nil {
		return nil, uc.classifyStoreError(err)
	}
	if account == nil {
		return nil, ErrInvalidCredentials
	}

	if !VerifyPassword(password, account.PasswordHash) {
		uc.logger.Warn("login rejected: wrong password", "username", username)
		return nil, ErrInvalidCredentials
	}

	return account, nil
}

// classifyStoreError переводит ошибки хранилища в ошибки бизнес-логики,
// сохраняя исходную ошибку в цепочке для серверных логов.
func (uc *accountUseCase) classifyStoreError(err error) error {
	switch {
	case storage.IsUniqueViolation(err):
		return fmt.Errorf("%w: %w", ErrDuplicate, err)
	case storage.IsSchemaMissing(err):
		return fmt.Errorf("%w: %w", ErrNotReady, err)
	case storage.IsUnavailable(err):
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return err
}
