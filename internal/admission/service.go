// Package admission сериализует конкурирующие операции над одной очередью.
//
// Любая мутация проходит через эксклюзивный слот своей очереди (разные
// очереди друг друга не ждут) и фиксируется условной записью по версии.
// Если условная запись всё же проиграла гонку — например, рядом работает
// второй экземпляр сервиса над тем же хранилищем — снимок перечитывается
// и операция повторяется ограниченное число раз.
package admission

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"smartqueue/internal/engine"
	"smartqueue/internal/models"
	"smartqueue/internal/store"
)

// ErrConflict возвращается после исчерпания повторов условной записи.
// Для клиента это временный сбой: запрос можно безопасно повторить.
var ErrConflict = errors.New("очередь обновляется слишком часто, повторите запрос")

// maxAttempts — сколько раз мутация перечитывает снимок после проигранного
// compare-and-swap, прежде чем сдаться.
const maxAttempts = 3

// Invalidator сбрасывает кэш списков после успешной мутации.
type Invalidator interface {
	Invalidate(ctx context.Context)
}

type Service struct {
	store store.QueueStore
	locks *queueLocks
	cache Invalidator // может быть nil
}

func NewService(st store.QueueStore, cache Invalidator) *Service {
	return &Service{
		store: st,
		locks: newQueueLocks(),
		cache: cache,
	}
}

// CreateInput — параметры новой очереди от владельца.
type CreateInput struct {
	OwnerID           string
	OwnerName         string
	Name              string
	Description       string
	WaitTimePerPerson int
	MaxCapacity       int
}

// Значения по умолчанию для непереданных настроек.
const (
	defaultWaitTimePerPerson = 5
	defaultMaxCapacity       = 50
)

// Create создаёт активную пустую очередь с версией 0.
func (s *Service) Create(ctx context.Context, in CreateInput) (*models.Queue, error) {
	q := &models.Queue{
		ID:                uuid.NewString(),
		OwnerID:           in.OwnerID,
		OwnerName:         in.OwnerName,
		Name:              in.Name,
		Description:       in.Description,
		IsActive:          true,
		WaitTimePerPerson: in.WaitTimePerPerson,
		MaxCapacity:       in.MaxCapacity,
		Members:           []models.Member{},
		Version:           0,
		CreatedAt:         time.Now(),
	}
	if q.WaitTimePerPerson == 0 {
		q.WaitTimePerPerson = defaultWaitTimePerPerson
	}
	if q.MaxCapacity == 0 {
		q.MaxCapacity = defaultMaxCapacity
	}
	if err := engine.ValidateNew(q); err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, q); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return q, nil
}

// Join ставит пользователя в конец очереди.
func (s *Service) Join(ctx context.Context, queueID, userID, userName, userEmail string) (*models.Queue, error) {
	return s.mutate(ctx, queueID, func(snapshot *models.Queue) (*models.Queue, error) {
		return engine.Join(snapshot, userID, userName, userEmail)
	})
}

// Leave выводит пользователя из очереди по его инициативе.
func (s *Service) Leave(ctx context.Context, queueID, userID string) (*models.Queue, error) {
	return s.mutate(ctx, queueID, func(snapshot *models.Queue) (*models.Queue, error) {
		return engine.Leave(snapshot, userID)
	})
}

// RemoveMember выводит пользователя по решению владельца и засчитывает
// его как обслуженного.
func (s *Service) RemoveMember(ctx context.Context, queueID, ownerID, targetUserID string) (*models.Queue, error) {
	return s.mutate(ctx, queueID, func(snapshot *models.Queue) (*models.Queue, error) {
		return engine.RemoveByOwner(snapshot, ownerID, targetUserID)
	})
}

// UpdateSettings применяет изменения настроек от владельца.
func (s *Service) UpdateSettings(ctx context.Context, queueID, ownerID string, patch engine.Patch) (*models.Queue, error) {
	return s.mutate(ctx, queueID, func(snapshot *models.Queue) (*models.Queue, error) {
		return engine.UpdateSettings(snapshot, ownerID, patch)
	})
}

// mutate — общий контур мутации: слот -> чтение -> движок -> условная
// запись. Проигранный compare-and-swap перечитывает снимок и повторяет
// применение; отказ движка возвращается сразу, без повторов.
func (s *Service) mutate(ctx context.Context, queueID string, apply func(*models.Queue) (*models.Queue, error)) (*models.Queue, error) {
	if err := s.locks.acquire(ctx, queueID); err != nil {
		return nil, err
	}
	defer s.locks.release(queueID)

	// Слот взят — мутация доводится до конца, даже если клиент отвалился:
	// частично применённых операций не бывает.
	ctx = context.WithoutCancel(ctx)

	for attempt := 0; attempt < maxAttempts; attempt++ {
		snapshot, err := s.store.Get(ctx, queueID)
		if err != nil {
			return nil, err
		}
		next, err := apply(snapshot)
		if err != nil {
			return nil, err
		}
		err = s.store.CompareAndSwap(ctx, snapshot.Version, next)
		if err == nil {
			s.invalidate(ctx)
			return next, nil
		}
		if errors.Is(err, store.ErrVersionMismatch) {
			continue
		}
		return nil, err
	}
	return nil, ErrConflict
}

// Get возвращает текущий снимок очереди. Чтения идут мимо слота: позиция
// каждый раз выводится из свежего порядка участников.
func (s *Service) Get(ctx context.Context, queueID string) (*models.Queue, error) {
	return s.store.Get(ctx, queueID)
}

// Position возвращает позицию пользователя (с единицы) и расчётное
// ожидание в минутах. Если пользователь не в очереди — engine-ошибка
// ErrNotAMember.
func (s *Service) Position(ctx context.Context, queueID, userID string) (int, int, error) {
	snapshot, err := s.store.Get(ctx, queueID)
	if err != nil {
		return 0, 0, err
	}
	pos, ok := engine.Position(snapshot, userID)
	if !ok {
		return -1, 0, engine.ErrNotAMember
	}
	wait, _ := engine.EstimatedWait(snapshot, userID)
	return pos, wait, nil
}

func (s *Service) ListActive(ctx context.Context) ([]models.Queue, error) {
	return s.store.ListActive(ctx)
}

func (s *Service) ListByOwner(ctx context.Context, ownerID string) ([]models.Queue, error) {
	return s.store.ListByOwner(ctx, ownerID)
}

func (s *Service) ListContainingMember(ctx context.Context, userID string) ([]models.Queue, error) {
	return s.store.ListContainingMember(ctx, userID)
}

func (s *Service) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}
