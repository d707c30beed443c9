// Package cache — кэш списка доступных очередей в Redis.
//
// Список активных очередей — самый горячий запрос (его опрашивают все
// клиенты), поэтому он кэшируется одним JSON-блобом с коротким TTL.
// Любая успешная мутация сбрасывает ключ; читатели при промахе идут в базу.
package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"smartqueue/internal/models"
)

const (
	availableKey = "queues_available"
	availableTTL = 5 * time.Minute
)

type QueueCache struct {
	client *redis.Client // nil — кэш выключен
}

func New(client *redis.Client) *QueueCache {
	return &QueueCache{client: client}
}

// GetAvailable возвращает закэшированный список активных очередей.
// Промах кэша — не ошибка: вызывающий просто читает из базы.
func (c *QueueCache) GetAvailable(ctx context.Context) ([]models.Queue, bool) {
	if c.client == nil {
		return nil, false
	}
	cached, err := c.client.Get(ctx, availableKey).Result()
	if err != nil || cached == "" {
		return nil, false
	}
	var queues []models.Queue
	if err := json.Unmarshal([]byte(cached), &queues); err != nil {
		return nil, false
	}
	return queues, true
}

// SetAvailable кладёт свежий список в кэш.
func (c *QueueCache) SetAvailable(ctx context.Context, queues []models.Queue) {
	if c.client == nil {
		return
	}
	data, err := json.Marshal(queues)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, availableKey, data, availableTTL).Err(); err != nil {
		log.Println("Не удалось записать кэш очередей:", err)
	}
}

// Invalidate сбрасывает кэш после мутации.
func (c *QueueCache) Invalidate(ctx context.Context) {
	if c.client == nil {
		return
	}
	if err := c.client.Del(ctx, availableKey).Err(); err != nil {
		log.Println("Не удалось сбросить кэш очередей:", err)
	}
}
