package auth

import (
	"context"

	"github.com/iudanet/pagekeeper/internal/client/storage"
)

//go:generate moq -out service_mock.go . Service

// Service defines the main interface for authentication operations.
// The service talks to the server for register/login/refresh and keeps
// the resulting session in local storage.
type Service interface {
	// Register регистрирует нового пользователя.
	// Сессию не создает: после регистрации нужен login.
	Register(ctx context.Context, username, password string) (*RegisterResult, error)

	// Login выполняет аутентификацию пользователя,
	// сохраняет сессию локально и взводит токен на API клиенте
	Login(ctx context.Context, username, password string) (*LoginResult, error)

	// EnsureTokenValid готовит API клиент к авторизованным запросам:
	// загружает сессию, обновляет истекший access token через refresh token
	// и взводит токен на клиенте.
	// Возвращает ErrNotAuthenticated, если локальной сессии нет.
	EnsureTokenValid(ctx context.Context) error

	// CurrentSession возвращает сохраненную сессию
	// Возвращает storage.ErrSessionNotFound, если сессии нет
	CurrentSession(ctx context.Context) (*storage.SessionData, error)

	// IsAuthenticated проверяет, есть ли непросроченная сессия
	IsAuthenticated(ctx context.Context) (bool, error)

	// Logout удаляет локальную сессию
	// Отсутствие сессии не считается ошибкой
	Logout(ctx context.Context) error
}
