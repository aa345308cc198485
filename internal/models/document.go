package models

import "time"

// BlockTypeParagraph единственный тип блока, который создаёт редактор.
// Модель допускает другие типы, они переносятся как есть.
const BlockTypeParagraph = "paragraph"

// BlockContent содержит полезную нагрузку блока
type BlockContent struct {
	Text string `json:"text"` // Text свободный текст параграфа
}

// Block представляет один блок содержимого документа.
// Позиция не имеет самостоятельного смысла: при каждом сохранении она
// пересчитывается из текущего порядка блоков и никогда не берётся из
// предыдущего состояния.
type Block struct {
	Content  BlockContent `json:"content"`  // Content полезная нагрузка блока
	Type     string       `json:"type"`     // Type тип блока (сейчас только "paragraph")
	Position int          `json:"position"` // Position индекс блока в документе, с нуля
}

// NewParagraph создает блок-параграф с заданным текстом
func NewParagraph(text string) Block {
	return Block{
		Type:    BlockTypeParagraph,
		Content: BlockContent{Text: text},
	}
}

// Document представляет страницу рабочего пространства: заголовок и
// упорядоченную последовательность блоков. Пока страница открыта на
// редактирование, буфером владеет ровно одна сессия редактора; каждый
// успешный ответ сервера замещает локальное представление целиком.
type Document struct {
	CreatedAt  time.Time      `json:"created_at"`           // CreatedAt время создания (назначает сервер)
	UpdatedAt  time.Time      `json:"updated_at"`           // UpdatedAt время последнего сохранения (назначает сервер)
	Properties map[string]any `json:"properties,omitempty"` // Properties произвольные свойства страницы, переносятся как есть
	ID         string         `json:"id"`                   // ID уникальный идентификатор документа (UUID)
	Title      string         `json:"title"`                // Title заголовок страницы
	Blocks     []Block        `json:"content"`              // Blocks упорядоченные блоки содержимого
}

// Clone создает глубокую копию документа.
// Значения Properties не копируются вглубь: это непрозрачный мешок,
// который никто не мутирует.
func (d *Document) Clone() *Document {
	blocks := make([]Block, len(d.Blocks))
	copy(blocks, d.Blocks)

	var props map[string]any
	if d.Properties != nil {
		props = make(map[string]any, len(d.Properties))
		for k, v := range d.Properties {
			props[k] = v
		}
	}

	return &Document{
		ID:         d.ID,
		Title:      d.Title,
		Blocks:     blocks,
		Properties: props,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

// EnsureBlock материализует пустой документ: если блоков нет, добавляется
// один пустой параграф. В редакторе документ всегда имеет хотя бы один блок.
func (d *Document) EnsureBlock() {
	if len(d.Blocks) == 0 {
		d.Blocks = []Block{NewParagraph("")}
	}
}

// NormalizePositions пересчитывает позиции блоков из текущего порядка:
// непрерывные целые начиная с нуля
func (d *Document) NormalizePositions() {
	for i := range d.Blocks {
		d.Blocks[i].Position = i
	}
}
