package handlers

import (
	"gorm.io/gorm"

	"smartqueue/internal/admission"
	"smartqueue/internal/cache"
)

// Handler держит зависимости всех HTTP-обработчиков. Собирается один раз
// при старте приложения — глобальных соединений в пакете нет.
type Handler struct {
	db    *gorm.DB           // учётные записи и профили
	svc   *admission.Service // все операции с очередями
	cache *cache.QueueCache
}

func New(db *gorm.DB, svc *admission.Service, qc *cache.QueueCache) *Handler {
	return &Handler{db: db, svc: svc, cache: qc}
}
