package api

import "time"

// BlockContent содержит полезную нагрузку блока
type BlockContent struct {
	Text string `json:"text"`
}

// Block представляет один блок содержимого страницы
type Block struct {
	Content  BlockContent `json:"content"`
	Type     string       `json:"type"`     // тип блока, сейчас только "paragraph"
	Position int          `json:"position"` // индекс блока в документе, считается с нуля
}

// Document представляет страницу рабочего пространства
type Document struct {
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	Properties map[string]any `json:"properties,omitempty"` // произвольные свойства страницы, сервер их не интерпретирует
	ID         string         `json:"id"`                   // UUID документа
	Title      string         `json:"title"`
	Content    []Block        `json:"content"` // упорядоченные блоки
}

// DocumentRequest представляет запрос на создание или полную замену документа.
// Обновление всегда заменяет документ целиком, частичных патчей нет.
type DocumentRequest struct {
	Properties map[string]any `json:"properties,omitempty"`
	Title      string         `json:"title"`
	Content    []Block        `json:"content"`
}

// DocumentListResponse представляет список документов пользователя
type DocumentListResponse struct {
	Documents []Document `json:"documents"`
	Count     int        `json:"count"`
}
