// Package store описывает контракт хранилища очередей.
//
// Движок и сервис допуска зависят только от интерфейса QueueStore: в бою за
// ним стоит Postgres (GormStore), в тестах — карта в памяти (MemoryStore).
package store

import (
	"context"

	"github.com/pkg/errors"

	"smartqueue/internal/models"
)

var (
	ErrNotFound        = errors.New("очередь не найдена")
	ErrVersionMismatch = errors.New("версия очереди устарела")
)

// QueueStore — долговременное хранилище очередей с условной записью.
// Get и List* возвращают независимые копии, которые можно спокойно мутировать.
type QueueStore interface {
	// Create сохраняет новую очередь. Идентификатор уже присвоен вызывающим.
	Create(ctx context.Context, q *models.Queue) error

	// Get возвращает текущий снимок очереди или ErrNotFound.
	Get(ctx context.Context, id string) (*models.Queue, error)

	// CompareAndSwap записывает новый снимок, только если версия в хранилище
	// всё ещё равна expectedVersion. Конкурирующая запись даёт
	// ErrVersionMismatch — вызывающий перечитывает и пробует снова.
	CompareAndSwap(ctx context.Context, expectedVersion int64, q *models.Queue) error

	// ListActive возвращает все активные очереди.
	ListActive(ctx context.Context) ([]models.Queue, error)

	// ListByOwner возвращает все очереди бизнеса.
	ListByOwner(ctx context.Context, ownerID string) ([]models.Queue, error)

	// ListContainingMember возвращает очереди, в которых состоит пользователь.
	ListContainingMember(ctx context.Context, userID string) ([]models.Queue, error)
}
