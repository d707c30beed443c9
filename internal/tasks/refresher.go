package tasks

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"

	"smartqueue/internal/cache"
	"smartqueue/internal/store"
)

// RefreshAvailableQueues перечитывает активные очереди из хранилища и
// прогревает кэш. Помимо cron-запусков вызывается один раз при старте.
func RefreshAvailableQueues(st store.QueueStore, qc *cache.QueueCache) {
	ctx := context.Background()
	queues, err := st.ListActive(ctx)
	if err != nil {
		log.Println("Ошибка обновления кэша доступных очередей:", err)
		return
	}
	qc.SetAvailable(ctx, queues)
	log.Printf("Кэш доступных очередей обновлён: %d шт.\n", len(queues))
}

// InitScheduler запускает cron-задачи обслуживания.
func InitScheduler(st store.QueueStore, qc *cache.QueueCache) *cron.Cron {
	c := cron.New(cron.WithSeconds())

	// Прогрев кэша доступных очередей каждые 5 минут.
	_, err := c.AddFunc("0 */5 * * * *", func() { RefreshAvailableQueues(st, qc) })
	if err != nil {
		log.Println("Ошибка запуска cron-задачи RefreshAvailableQueues:", err)
	}

	c.Start()
	log.Println("Cron-планировщик запущен.")
	return c
}
