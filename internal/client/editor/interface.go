package editor

import (
	"context"

	"github.com/iudanet/pagekeeper/internal/models"
)

//go:generate moq -out store_mock.go . Store

// Store определяет удаленное хранилище документов, через которое сессия
// загружает и сохраняет буфер. Реализуется api.Client.
type Store interface {
	// FetchDocument загружает документ по идентификатору.
	// Возвращает api.ErrNotFound, если сервер не знает такой id.
	FetchDocument(ctx context.Context, id string) (*models.Document, error)

	// CreateDocument создает документ; id и таймстемпы назначает сервер
	CreateDocument(ctx context.Context, doc *models.Document) (*models.Document, error)

	// UpdateDocument заменяет документ целиком и возвращает авторитетное
	// представление сервера со свежим updated_at
	UpdateDocument(ctx context.Context, id string, doc *models.Document) (*models.Document, error)
}

//go:generate moq -out events_mock.go . Events

// Events получает уведомления о жизненном цикле сессии. UI рисует блоки
// и показывает результат сохранений; сама сессия ошибки автосохранения
// наружу не пробрасывает.
type Events interface {
	// DocumentLoaded вызывается после установки нового буфера:
	// по одному блочному редактору на каждый блок документа
	DocumentLoaded(doc *models.Document)

	// SaveSucceeded вызывается после применения успешного ответа сервера
	SaveSucceeded(doc *models.Document)

	// SaveFailed вызывается, когда сохранение не удалось.
	// Буфер при этом не изменился, следующее сохранение отправит
	// то же содержимое.
	SaveFailed(err error)
}
