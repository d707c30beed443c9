package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"smartqueue/internal/models"
)

func testQueue(id, ownerID string) *models.Queue {
	return &models.Queue{
		ID:                id,
		OwnerID:           ownerID,
		OwnerName:         "Кофейня",
		Name:              "Тестовая очередь",
		IsActive:          true,
		WaitTimePerPerson: 5,
		MaxCapacity:       10,
		Members:           []models.Member{},
		Version:           0,
		CreatedAt:         time.Now(),
	}
}

func newSQLiteStore(t *testing.T) *GormStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Ошибка открытия тестовой базы")
	st := NewGormStore(db)
	require.NoError(t, st.AutoMigrate())
	return st
}

// Оба хранилища обязаны вести себя одинаково: контракт один.
func eachStore(t *testing.T, run func(t *testing.T, st QueueStore)) {
	t.Run("memory", func(t *testing.T) { run(t, NewMemoryStore()) })
	t.Run("sqlite", func(t *testing.T) { run(t, newSQLiteStore(t)) })
}

func TestGetMissing(t *testing.T) {
	eachStore(t, func(t *testing.T, st QueueStore) {
		_, err := st.Get(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCreateAndGetRoundTrip(t *testing.T) {
	eachStore(t, func(t *testing.T, st QueueStore) {
		ctx := context.Background()
		q := testQueue("q1", "owner")
		q.Members = []models.Member{{UserID: "u1", UserName: "Иван", JoinedAt: time.Now()}}
		require.NoError(t, st.Create(ctx, q))

		got, err := st.Get(ctx, "q1")
		require.NoError(t, err)
		assert.Equal(t, "q1", got.ID)
		assert.Equal(t, "owner", got.OwnerID)
		require.Len(t, got.Members, 1)
		assert.Equal(t, "u1", got.Members[0].UserID)
		assert.Equal(t, int64(0), got.Version)
	})
}

func TestCompareAndSwap(t *testing.T) {
	eachStore(t, func(t *testing.T, st QueueStore) {
		ctx := context.Background()
		require.NoError(t, st.Create(ctx, testQueue("q1", "owner")))

		// Успешная запись от версии 0 к версии 1.
		next := testQueue("q1", "owner")
		next.Members = []models.Member{{UserID: "u1", JoinedAt: time.Now()}}
		next.Version = 1
		require.NoError(t, st.CompareAndSwap(ctx, 0, next))

		got, err := st.Get(ctx, "q1")
		require.NoError(t, err)
		assert.Equal(t, int64(1), got.Version)
		assert.Len(t, got.Members, 1)

		// Повторная запись от устаревшей версии 0 проигрывает.
		stale := testQueue("q1", "owner")
		stale.Version = 1
		err = st.CompareAndSwap(ctx, 0, stale)
		assert.ErrorIs(t, err, ErrVersionMismatch)

		// Проигранная запись ничего не меняет.
		got, err = st.Get(ctx, "q1")
		require.NoError(t, err)
		assert.Equal(t, int64(1), got.Version)
		assert.Len(t, got.Members, 1)
	})
}

func TestCompareAndSwapMissing(t *testing.T) {
	eachStore(t, func(t *testing.T, st QueueStore) {
		q := testQueue("missing", "owner")
		err := st.CompareAndSwap(context.Background(), 0, q)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestListActive(t *testing.T) {
	eachStore(t, func(t *testing.T, st QueueStore) {
		ctx := context.Background()
		active := testQueue("q1", "owner")
		inactive := testQueue("q2", "owner")
		inactive.IsActive = false
		inactive.CreatedAt = active.CreatedAt.Add(time.Second)
		require.NoError(t, st.Create(ctx, active))
		require.NoError(t, st.Create(ctx, inactive))

		queues, err := st.ListActive(ctx)
		require.NoError(t, err)
		require.Len(t, queues, 1)
		assert.Equal(t, "q1", queues[0].ID)
	})
}

func TestListByOwner(t *testing.T) {
	eachStore(t, func(t *testing.T, st QueueStore) {
		ctx := context.Background()
		first := testQueue("q1", "owner-a")
		second := testQueue("q2", "owner-a")
		second.CreatedAt = first.CreatedAt.Add(time.Second)
		other := testQueue("q3", "owner-b")
		require.NoError(t, st.Create(ctx, first))
		require.NoError(t, st.Create(ctx, second))
		require.NoError(t, st.Create(ctx, other))

		queues, err := st.ListByOwner(ctx, "owner-a")
		require.NoError(t, err)
		require.Len(t, queues, 2)
		assert.Equal(t, "q1", queues[0].ID)
		assert.Equal(t, "q2", queues[1].ID)
	})
}

func TestListContainingMember(t *testing.T) {
	eachStore(t, func(t *testing.T, st QueueStore) {
		ctx := context.Background()
		with := testQueue("q1", "owner")
		with.Members = []models.Member{{UserID: "u1", JoinedAt: time.Now()}}
		without := testQueue("q2", "owner")
		without.CreatedAt = with.CreatedAt.Add(time.Second)
		require.NoError(t, st.Create(ctx, with))
		require.NoError(t, st.Create(ctx, without))

		queues, err := st.ListContainingMember(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, queues, 1)
		assert.Equal(t, "q1", queues[0].ID)

		queues, err = st.ListContainingMember(ctx, "ghost")
		require.NoError(t, err)
		assert.Len(t, queues, 0)
	})
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	require.NoError(t, st.Create(ctx, testQueue("q1", "owner")))

	got, err := st.Get(ctx, "q1")
	require.NoError(t, err)
	got.Members = append(got.Members, models.Member{UserID: "hacker"})

	fresh, err := st.Get(ctx, "q1")
	require.NoError(t, err)
	assert.Len(t, fresh.Members, 0, "мутация снимка не просачивается в хранилище")
}
