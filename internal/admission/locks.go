package admission

import (
	"context"
	"sync"
)

// queueLocks выдаёт эксклюзивный слот исполнения на идентификатор очереди.
// Слот — канал ёмкостью 1, поэтому захват можно прервать по контексту, пока
// запрос ещё ждёт своей очереди. Слоты живут, пока на них кто-то ссылается:
// последний отпустивший удаляет запись из карты, чтобы она не росла вечно.
type queueLocks struct {
	mu    sync.Mutex
	slots map[string]*slot
}

type slot struct {
	ch   chan struct{}
	refs int
}

func newQueueLocks() *queueLocks {
	return &queueLocks{slots: make(map[string]*slot)}
}

// acquire блокирует слот очереди id. Если контекст отменён раньше, чем слот
// достался, возвращает ошибку контекста и не оставляет следов.
func (l *queueLocks) acquire(ctx context.Context, id string) error {
	l.mu.Lock()
	s, ok := l.slots[id]
	if !ok {
		s = &slot{ch: make(chan struct{}, 1)}
		l.slots[id] = s
	}
	s.refs++
	l.mu.Unlock()

	// Уже отменённый запрос не должен занимать свободный слот.
	select {
	case <-ctx.Done():
		l.unref(id, s)
		return ctx.Err()
	default:
	}

	select {
	case s.ch <- struct{}{}:
		return nil
	case <-ctx.Done():
		l.unref(id, s)
		return ctx.Err()
	}
}

// release отпускает слот. Вызывается строго после acquire, вернувшего nil.
func (l *queueLocks) release(id string) {
	l.mu.Lock()
	s := l.slots[id]
	l.mu.Unlock()
	l.unref(id, s)
	<-s.ch
}

func (l *queueLocks) unref(id string, s *slot) {
	l.mu.Lock()
	s.refs--
	if s.refs == 0 {
		delete(l.slots, id)
	}
	l.mu.Unlock()
}
