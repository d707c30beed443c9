package admission

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartqueue/internal/engine"
	"smartqueue/internal/models"
	"smartqueue/internal/store"
)

func newService(t *testing.T) (*Service, *store.MemoryStore) {
	t.Helper()
	st := store.NewMemoryStore()
	return NewService(st, nil), st
}

func createQueue(t *testing.T, svc *Service, capacity int) *models.Queue {
	t.Helper()
	q, err := svc.Create(context.Background(), CreateInput{
		OwnerID:           "owner",
		OwnerName:         "Кофейня",
		Name:              "Тестовая очередь",
		WaitTimePerPerson: 5,
		MaxCapacity:       capacity,
	})
	require.NoError(t, err)
	require.Equal(t, int64(0), q.Version, "новая очередь начинается с версии 0")
	require.True(t, q.IsActive)
	return q
}

func TestCreateDefaults(t *testing.T) {
	svc, _ := newService(t)
	q, err := svc.Create(context.Background(), CreateInput{
		OwnerID: "owner",
		Name:    "Очередь без настроек",
	})
	require.NoError(t, err)
	assert.Equal(t, defaultWaitTimePerPerson, q.WaitTimePerPerson)
	assert.Equal(t, defaultMaxCapacity, q.MaxCapacity)
	assert.NotEmpty(t, q.ID)
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.Create(context.Background(), CreateInput{OwnerID: "owner"})
	assert.ErrorIs(t, err, engine.ErrValidation, "очередь без имени не создаётся")
}

func TestJoinLeaveFlow(t *testing.T) {
	svc, _ := newService(t)
	q := createQueue(t, svc, 10)
	ctx := context.Background()

	updated, err := svc.Join(ctx, q.ID, "u1", "Иван", "ivan@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated.Version)

	pos, wait, err := svc.Position(ctx, q.ID, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, pos)
	assert.Equal(t, 0, wait)

	_, err = svc.Leave(ctx, q.ID, "u1")
	require.NoError(t, err)

	_, _, err = svc.Position(ctx, q.ID, "u1")
	assert.ErrorIs(t, err, engine.ErrNotAMember)
}

func TestMutateUnknownQueue(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.Join(context.Background(), "missing", "u1", "", "")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestConcurrentJoinsSerialize(t *testing.T) {
	// Гонка вступлений в одну очередь: каждый участник должен получить
	// уникальную позицию, версия — вырасти ровно на число участников.
	svc, st := newService(t)
	q := createQueue(t, svc, 100)

	const n = 50
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Join(context.Background(), q.ID, fmt.Sprintf("u%d", i), "", "")
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "вступление %d не должно падать", i)
	}

	final, err := st.Get(context.Background(), q.ID)
	require.NoError(t, err)
	assert.Len(t, final.Members, n)
	assert.Equal(t, int64(n), final.Version)

	seen := make(map[string]bool)
	for _, m := range final.Members {
		assert.False(t, seen[m.UserID], "дубликат участника %s", m.UserID)
		seen[m.UserID] = true
	}
}

func TestConcurrentJoinRaceOnEmptyQueue(t *testing.T) {
	// Два одновременных вступления в пустую очередь: ровно один получает
	// позицию 1, второй — позицию 2, оба успешны.
	svc, _ := newService(t)
	q := createQueue(t, svc, 10)

	var wg sync.WaitGroup
	for _, id := range []string{"u1", "u2"} {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, err := svc.Join(context.Background(), q.ID, id, "", "")
			assert.NoError(t, err)
		}(id)
	}
	wg.Wait()

	p1, _, err := svc.Position(context.Background(), q.ID, "u1")
	require.NoError(t, err)
	p2, _, err := svc.Position(context.Background(), q.ID, "u2")
	require.NoError(t, err)

	assert.ElementsMatch(t, []int{1, 2}, []int{p1, p2})
}

func TestConcurrentJoinsAtCapacity(t *testing.T) {
	// Лимит 2, три гонщика: ровно один получает отказ QUEUE_FULL.
	svc, st := newService(t)
	q := createQueue(t, svc, 2)

	var wg sync.WaitGroup
	errs := make([]error, 3)
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Join(context.Background(), q.ID, fmt.Sprintf("u%d", i), "", "")
		}(i)
	}
	wg.Wait()

	full := 0
	for _, err := range errs {
		if err != nil {
			assert.ErrorIs(t, err, engine.ErrQueueFull)
			full++
		}
	}
	assert.Equal(t, 1, full)

	final, err := st.Get(context.Background(), q.ID)
	require.NoError(t, err)
	assert.Len(t, final.Members, 2)
}

func TestDistinctQueuesDoNotBlock(t *testing.T) {
	svc, _ := newService(t)
	q1 := createQueue(t, svc, 10)
	q2 := createQueue(t, svc, 10)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			target := q1.ID
			if i%2 == 0 {
				target = q2.ID
			}
			_, err := svc.Join(context.Background(), target, fmt.Sprintf("u%d", i), "", "")
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	final1, _ := svc.Get(context.Background(), q1.ID)
	final2, _ := svc.Get(context.Background(), q2.ID)
	assert.Len(t, final1.Members, 10)
	assert.Len(t, final2.Members, 10)
}

func TestCancelledBeforeSlotLeavesNoTrace(t *testing.T) {
	svc, st := newService(t)
	q := createQueue(t, svc, 10)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Join(ctx, q.ID, "u1", "", "")
	assert.ErrorIs(t, err, context.Canceled)

	final, err := st.Get(context.Background(), q.ID)
	require.NoError(t, err)
	assert.Len(t, final.Members, 0, "отменённый до слота запрос следов не оставляет")
}

// flakyStore имитирует второй экземпляр сервиса: первые failures условных
// записей проигрывают, как будто кто-то успел записать раньше.
type flakyStore struct {
	*store.MemoryStore
	mu       sync.Mutex
	failures int
}

func (s *flakyStore) CompareAndSwap(ctx context.Context, expectedVersion int64, q *models.Queue) error {
	s.mu.Lock()
	if s.failures > 0 {
		s.failures--
		s.mu.Unlock()
		return store.ErrVersionMismatch
	}
	s.mu.Unlock()
	return s.MemoryStore.CompareAndSwap(ctx, expectedVersion, q)
}

func TestRetryAfterVersionMismatch(t *testing.T) {
	st := &flakyStore{MemoryStore: store.NewMemoryStore(), failures: 2}
	svc := NewService(st, nil)
	q := createQueue(t, svc, 10)

	updated, err := svc.Join(context.Background(), q.ID, "u1", "", "")
	require.NoError(t, err, "после проигранного CAS операция повторяется")
	assert.Equal(t, int64(1), updated.Version)
}

func TestConflictAfterExhaustedRetries(t *testing.T) {
	st := &flakyStore{MemoryStore: store.NewMemoryStore(), failures: maxAttempts}
	svc := NewService(st, nil)
	q := createQueue(t, svc, 10)

	_, err := svc.Join(context.Background(), q.ID, "u1", "", "")
	assert.ErrorIs(t, err, ErrConflict)
}

// recordingInvalidator считает сбросы кэша.
type recordingInvalidator struct {
	mu    sync.Mutex
	calls int
}

func (r *recordingInvalidator) Invalidate(context.Context) {
	r.mu.Lock()
	r.calls++
	r.mu.Unlock()
}

func TestCacheInvalidatedOnMutation(t *testing.T) {
	inv := &recordingInvalidator{}
	svc := NewService(store.NewMemoryStore(), inv)
	q := createQueue(t, svc, 10)

	_, err := svc.Join(context.Background(), q.ID, "u1", "", "")
	require.NoError(t, err)

	inv.mu.Lock()
	defer inv.mu.Unlock()
	assert.Equal(t, 2, inv.calls, "создание и вступление сбрасывают кэш")
}

func TestAcquireReleaseCleansUp(t *testing.T) {
	locks := newQueueLocks()
	ctx := context.Background()

	require.NoError(t, locks.acquire(ctx, "q1"))
	locks.release("q1")

	locks.mu.Lock()
	assert.Len(t, locks.slots, 0, "последний отпустивший удаляет слот")
	locks.mu.Unlock()
}

func TestAcquireTimesOutWhileHeld(t *testing.T) {
	locks := newQueueLocks()
	require.NoError(t, locks.acquire(context.Background(), "q1"))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := locks.acquire(ctx, "q1")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	locks.release("q1")
}
