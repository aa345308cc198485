package editor

import "time"

// schedule представляет одно отложенное сохранение: явная задача,
// которую можно отменить и взвести заново. Отмена кооперативная:
// Stop может не перехватить уже сработавший таймер, поэтому колбэк
// обязан проверить, что задача все еще текущая для сессии, прежде
// чем что-то делать.
type schedule struct {
	timer *time.Timer
}

// Cancel снимает задачу. Безопасно вызывать повторно.
func (sc *schedule) Cancel() {
	sc.timer.Stop()
}
