package editor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/pagekeeper/internal/models"
)

// DefaultQuietInterval окно тишины дебаунса: сохранение откладывается,
// пока столько времени не пройдет без новых правок
const DefaultQuietInterval = 1000 * time.Millisecond

// Ошибки операций сессии
var (
	// ErrClosed операция на закрытой сессии
	ErrClosed = errors.New("editor session is closed")
	// ErrNoDocument в сессию не загружен документ
	ErrNoDocument = errors.New("no document is loaded")
	// ErrBlockIndex индекс блока вне границ буфера
	ErrBlockIndex = errors.New("block index out of range")
)

// Options настраивают поведение сессии
type Options struct {
	// QuietInterval окно тишины дебаунса; 0 означает DefaultQuietInterval
	QuietInterval time.Duration

	// MaxDeferral принудительное сохранение после этого времени с первой
	// несохраненной правки, даже если правки продолжаются.
	// 0 отключает потолок: непрерывный поток правок откладывает
	// сохранение бесконечно.
	MaxDeferral time.Duration
}

// Session владеет буфером одного открытого документа и синхронизирует
// его с удаленным хранилищем. Правки применяются к буферу немедленно,
// сохранение откладывается до окна тишины: каждая новая правка отменяет
// и перевзводит отложенное сохранение, поэтому на взрыв правок уходит
// один запрос с состоянием буфера на момент срабатывания таймера.
//
// Сессия - обычный объект: их может быть сколько угодно, каждая владеет
// своим буфером.
type Session struct {
	store  Store
	events Events
	logger *slog.Logger

	quiet       time.Duration
	maxDeferral time.Duration

	// ctx обрывает запросы отложенных сохранений при закрытии сессии
	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	doc      *models.Document
	pending  *schedule // отложенное сохранение, живет максимум одно
	seq      uint64    // номер последнего выданного снапшота
	applied  uint64    // номер последнего примененного ответа сервера
	editGen  uint64    // поколение буфера, растет с каждой мутацией
	savedGen uint64    // поколение, зафиксированное последним успешным сохранением
	burstAt  time.Time // время первой несохраненной правки (для MaxDeferral)
	closed   bool
}

// New создает сессию редактора поверх удаленного хранилища
func New(store Store, events Events, logger *slog.Logger, opts Options) *Session {
	quiet := opts.QuietInterval
	if quiet <= 0 {
		quiet = DefaultQuietInterval
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Session{
		store:       store,
		events:      events,
		logger:      logger,
		quiet:       quiet,
		maxDeferral: opts.MaxDeferral,
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Load загружает документ по идентификатору и безусловно замещает буфер.
// Отложенное сохранение предыдущего документа снимается, а его ответы в
// полете больше не применяются. Документ без блоков материализуется с
// одним пустым параграфом.
func (s *Session) Load(ctx context.Context, id string) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	s.cancelPendingLocked()
	// Все выданные снапшоты относятся к прежнему документу
	s.applied = s.seq
	s.mu.Unlock()

	doc, err := s.store.FetchDocument(ctx, id)
	if err != nil {
		s.logger.Error("failed to load document", "document_id", id, "error", err)
		return fmt.Errorf("load document: %w", err)
	}

	if !s.installBuffer(doc) {
		return ErrClosed
	}
	return nil
}

// Create создает документ с заданным заголовком и одним пустым
// параграфом и делает ответ сервера буфером сессии
func (s *Session) Create(ctx context.Context, title string) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	s.cancelPendingLocked()
	s.applied = s.seq
	s.mu.Unlock()

	draft := &models.Document{
		Title:  title,
		Blocks: []models.Block{models.NewParagraph("")},
	}

	doc, err := s.store.CreateDocument(ctx, draft)
	if err != nil {
		s.logger.Error("failed to create document", "title", title, "error", err)
		return fmt.Errorf("create document: %w", err)
	}

	if !s.installBuffer(doc) {
		return ErrClosed
	}
	return nil
}

// Edit записывает правку блока в буфер немедленно, чтобы видимое
// состояние всегда было актуальным, и перевзводит отложенное сохранение
func (s *Session) Edit(index int, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if s.doc == nil {
		return ErrNoDocument
	}
	if index < 0 || index >= len(s.doc.Blocks) {
		return fmt.Errorf("%w: %d of %d", ErrBlockIndex, index, len(s.doc.Blocks))
	}

	s.doc.Blocks[index].Content.Text = text
	s.touchLocked()
	s.scheduleLocked()
	return nil
}

// SetTitle изменяет заголовок так же, как Edit изменяет блок:
// немедленно в буфере, с отложенным сохранением
func (s *Session) SetTitle(title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if s.doc == nil {
		return ErrNoDocument
	}

	s.doc.Title = title
	s.touchLocked()
	s.scheduleLocked()
	return nil
}

// AddBlock добавляет пустой параграф в конец документа и возвращает его
// индекс. Сохранение не планируется: его взведет первая правка нового
// блока. Это осознанная политика, а не упущение.
func (s *Session) AddBlock() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, ErrClosed
	}
	if s.doc == nil {
		return 0, ErrNoDocument
	}

	s.doc.Blocks = append(s.doc.Blocks, models.NewParagraph(""))
	s.touchLocked()
	return len(s.doc.Blocks) - 1, nil
}

// Persist немедленно сериализует буфер и отправляет его как полную
// замену документа, минуя окно тишины. Отложенное сохранение при этом
// снимается: явный вызов его вытесняет.
func (s *Session) Persist(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if s.doc == nil {
		s.mu.Unlock()
		return ErrNoDocument
	}
	s.cancelPendingLocked()
	doc, seq, gen := s.snapshotLocked()
	s.mu.Unlock()

	return s.persistSnapshot(ctx, doc, seq, gen)
}

// Close завершает сессию: снимает отложенное сохранение, один раз
// дозаписывает несохраненные правки (best effort) и отбрасывает ответы,
// оставшиеся в полете. Повторный Close ничего не делает.
func (s *Session) Close(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.cancelPendingLocked()

	var flushErr error
	if s.doc != nil && s.editGen != s.savedGen {
		doc, seq, gen := s.snapshotLocked()
		s.mu.Unlock()
		flushErr = s.persistSnapshot(ctx, doc, seq, gen)
		s.mu.Lock()
	}

	s.closed = true
	// Правка из другой горутины могла перевзвести таймер, пока шел
	// финальный flush
	s.cancelPendingLocked()
	s.mu.Unlock()

	s.cancel()
	return flushErr
}

// Document возвращает копию текущего буфера, nil до первой загрузки
func (s *Session) Document() *models.Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.doc == nil {
		return nil
	}
	return s.doc.Clone()
}

// Dirty сообщает, есть ли в буфере несохраненные правки
func (s *Session) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.doc != nil && s.editGen != s.savedGen
}

// installBuffer ставит новый буфер на место старого и объявляет его UI.
// Возвращает false, если сессию успели закрыть.
func (s *Session) installBuffer(doc *models.Document) bool {
	buf := doc.Clone()
	buf.EnsureBlock()
	buf.NormalizePositions()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return false
	}
	s.cancelPendingLocked()
	s.applied = s.seq
	s.doc = buf
	s.editGen++
	s.savedGen = s.editGen
	s.burstAt = time.Time{}
	loaded := buf.Clone()
	s.mu.Unlock()

	s.events.DocumentLoaded(loaded)
	return true
}

// touchLocked отмечает мутацию буфера
func (s *Session) touchLocked() {
	s.editGen++
	if s.burstAt.IsZero() {
		s.burstAt = time.Now()
	}
}

// scheduleLocked перевзводит отложенное сохранение: прежняя задача
// снимается, новая сработает после окна тишины. При настроенном
// MaxDeferral задержка укорачивается так, чтобы не пересечь потолок
// отложенности текущего взрыва правок.
func (s *Session) scheduleLocked() {
	s.cancelPendingLocked()

	delay := s.quiet
	if s.maxDeferral > 0 && !s.burstAt.IsZero() {
		if remain := time.Until(s.burstAt.Add(s.maxDeferral)); remain < delay {
			delay = remain
			if delay < 0 {
				delay = 0
			}
		}
	}

	sc := &schedule{}
	sc.timer = time.AfterFunc(delay, func() { s.fire(sc) })
	s.pending = sc
}

// cancelPendingLocked снимает отложенное сохранение, если оно есть
func (s *Session) cancelPendingLocked() {
	if s.pending != nil {
		s.pending.Cancel()
		s.pending = nil
	}
}

// fire вызывается таймером отложенного сохранения
func (s *Session) fire(sc *schedule) {
	s.mu.Lock()
	// Таймер мог сработать уже после отмены или вытеснения более новой
	// задачей: тогда снапшот не наш
	if s.closed || s.pending != sc || s.doc == nil {
		s.mu.Unlock()
		return
	}
	s.pending = nil
	doc, seq, gen := s.snapshotLocked()
	s.mu.Unlock()

	_ = s.persistSnapshot(s.ctx, doc, seq, gen)
}

// snapshotLocked сериализует буфер для отправки: глубокая копия с
// позициями, пересчитанными из текущего порядка блоков. Снапшот получает
// монотонный номер, по которому устаревшие ответы отбрасываются.
func (s *Session) snapshotLocked() (*models.Document, uint64, uint64) {
	s.seq++
	doc := s.doc.Clone()
	doc.NormalizePositions()
	return doc, s.seq, s.editGen
}

// persistSnapshot отправляет снапшот как полную замену документа и
// применяет авторитетный ответ сервера. Ответ с номером не новее уже
// примененного отбрасывается: медленный ранний запрос не должен затереть
// подтверждение более позднего. При ошибке буфер не меняется, следующее
// сохранение отправит то же содержимое.
func (s *Session) persistSnapshot(ctx context.Context, doc *models.Document, seq, gen uint64) error {
	updated, err := s.store.UpdateDocument(ctx, doc.ID, doc)
	if err != nil {
		s.logger.Error("autosave failed",
			"document_id", doc.ID,
			"seq", seq,
			"error", err)

		s.mu.Lock()
		closed := s.closed
		s.mu.Unlock()
		if !closed {
			s.events.SaveFailed(err)
		}
		return fmt.Errorf("persist document: %w", err)
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	if seq <= s.applied {
		applied := s.applied
		s.mu.Unlock()
		s.logger.Warn("discarding stale save response",
			"document_id", doc.ID,
			"seq", seq,
			"applied", applied)
		return nil
	}
	s.applied = seq

	if s.editGen == gen {
		// Правок с момента снапшота не было: представление сервера
		// замещает буфер целиком
		buf := updated.Clone()
		buf.EnsureBlock()
		buf.NormalizePositions()
		s.doc = buf
		s.savedGen = gen
		s.burstAt = time.Time{}
	} else {
		// Буфер уже ушел вперед: берем только авторитетные поля сервера,
		// локальные правки остаются несохраненными до своего таймера
		s.doc.ID = updated.ID
		s.doc.CreatedAt = updated.CreatedAt
		s.doc.UpdatedAt = updated.UpdatedAt
		s.savedGen = gen
		s.burstAt = time.Now()
	}
	saved := s.doc.Clone()
	s.mu.Unlock()

	s.events.SaveSucceeded(saved)
	return nil
}
