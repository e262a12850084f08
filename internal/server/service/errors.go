package service

import (
	"context"
	"errors"
	"log/slog"
)

// Ошибки операций. Любая ошибка коллабораторов (хранилище, подпись токена)
// на границе операции превращается в одну из них и наружу как есть не уходит.
var (
	// ErrUnauthenticated нет сессии, токен невалиден или истек
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrInvalidCredentials неверный email или пароль.
	// Намеренно не различает "нет такого email" и "неверный пароль".
	ErrInvalidCredentials = errors.New("incorrect email or password")

	// ErrDuplicateIdentity username или email уже заняты
	ErrDuplicateIdentity = errors.New("username or email is already in use")

	// ErrStorageFailure сбой хранилища или другого коллаборатора, детали только в логах
	ErrStorageFailure = errors.New("storage failure")

	// ErrInvalidInput входные данные не прошли валидацию
	ErrInvalidInput = errors.New("invalid input")
)

// collaboratorFailure логирует исходную ошибку и возвращает обобщенную ErrStorageFailure
func collaboratorFailure(ctx context.Context, logger *slog.Logger, operation string, err error) error {
	logger.ErrorContext(ctx, "collaborator call failed",
		slog.String("operation", operation),
		slog.Any("error", err))
	return ErrStorageFailure
}
