package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iudanet/pagekeeper/internal/client/storage"
	"github.com/iudanet/pagekeeper/internal/validation"
	api "github.com/iudanet/pagekeeper/pkg/api"
)

//go:generate moq -out authapi_mock.go . API

// ErrNotAuthenticated нет локальной сессии, требуется login
var ErrNotAuthenticated = errors.New("not authenticated")

// refreshLeeway: токен с таким запасом до истечения обновляется заранее,
// чтобы не поймать 401 посреди серии запросов
const refreshLeeway = 30 * time.Second

// API defines the server auth endpoints used by the service
type API interface {
	Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error)
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*api.TokenResponse, error)
	SetToken(token string)
}

// service предоставляет функции авторизации
type service struct {
	apiClient API
	sessions  storage.SessionStorage
	logger    *slog.Logger
}

// NewService создает новый сервис авторизации
func NewService(apiClient API, sessions storage.SessionStorage, logger *slog.Logger) Service {
	return &service{
		apiClient: apiClient,
		sessions:  sessions,
		logger:    logger,
	}
}

// RegisterResult содержит результат регистрации
type RegisterResult struct {
	UserID   string // UUID пользователя
	Username string // username
	Message  string // сообщение сервера
}

// Register регистрирует нового пользователя
func (s *service) Register(ctx context.Context, username, password string) (*RegisterResult, error) {
	// Валидация входных данных
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	req := api.RegisterRequest{
		Username: username,
		Password: password,
	}

	resp, err := s.apiClient.Register(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	s.logger.Info("user registered", "username", username, "user_id", resp.UserID)

	return &RegisterResult{
		UserID:   resp.UserID,
		Username: username,
		Message:  resp.Message,
	}, nil
}

// LoginResult содержит результат авторизации
type LoginResult struct {
	Username  string // username
	UserID    string // UUID пользователя из access token
	ExpiresIn int64  // время жизни access token в секундах
}

// Login выполняет аутентификацию пользователя и сохраняет сессию
func (s *service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	// Валидация входных данных
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	req := api.LoginRequest{
		Username: username,
		Password: password,
	}

	resp, err := s.apiClient.Login(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	// UserID лежит в subject клейме access token, подпись не проверяем:
	// клиент доверяет токену, который сам только что получил по TLS
	userID := userIDFromToken(resp.AccessToken)

	session := &storage.SessionData{
		Username:     username,
		UserID:       userID,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    time.Now().Unix() + resp.ExpiresIn,
	}

	if err := s.sessions.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	// Взводим токен: последующие запросы этого процесса уже авторизованы
	s.apiClient.SetToken(resp.AccessToken)

	s.logger.Info("user logged in", "username", username)

	return &LoginResult{
		Username:  username,
		UserID:    userID,
		ExpiresIn: resp.ExpiresIn,
	}, nil
}

// EnsureTokenValid готовит API клиент к авторизованным запросам
func (s *service) EnsureTokenValid(ctx context.Context) error {
	session, err := s.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return ErrNotAuthenticated
		}
		return fmt.Errorf("failed to get session: %w", err)
	}

	// Токен еще жив: просто взводим его
	expiresAt := time.Unix(session.ExpiresAt, 0)
	if time.Now().Add(refreshLeeway).Before(expiresAt) {
		s.apiClient.SetToken(session.AccessToken)
		return nil
	}

	s.logger.Debug("access token expired, refreshing", "username", session.Username)

	// Обмениваем refresh token на новую пару
	resp, err := s.apiClient.Refresh(ctx, session.RefreshToken)
	if err != nil {
		return fmt.Errorf("failed to refresh token: %w", err)
	}

	// Refresh token ротируется сервером, сохраняем оба новых токена
	session.AccessToken = resp.AccessToken
	session.RefreshToken = resp.RefreshToken
	session.ExpiresAt = time.Now().Unix() + resp.ExpiresIn

	if err := s.sessions.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("failed to save refreshed session: %w", err)
	}

	s.apiClient.SetToken(resp.AccessToken)
	return nil
}

// CurrentSession возвращает сохраненную сессию
func (s *service) CurrentSession(ctx context.Context) (*storage.SessionData, error) {
	return s.sessions.GetSession(ctx)
}

// IsAuthenticated проверяет, есть ли непросроченная сессия
func (s *service) IsAuthenticated(ctx context.Context) (bool, error) {
	return s.sessions.IsAuthenticated(ctx)
}

// Logout удаляет локальную сессию
func (s *service) Logout(ctx context.Context) error {
	// Сбрасываем токен независимо от состояния хранилища
	s.apiClient.SetToken("")

	if err := s.sessions.DeleteSession(ctx); err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			s.logger.Debug("no session found during logout")
			return nil
		}
		return fmt.Errorf("failed to delete session: %w", err)
	}

	s.logger.Info("user logged out")
	return nil
}

// userIDFromToken извлекает subject клейм без проверки подписи.
// Пустая строка, если токен не разбирается.
func userIDFromToken(token string) string {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	return claims.Subject
}
