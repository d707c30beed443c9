package storage

import (
	"fmt"
	"os"

	"github.com/go-redis/redis/v8"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect открывает соединение с Postgres по переменным окружения и отдаёт
// его вызывающему. Глобального *gorm.DB нет намеренно: все потребители
// получают соединение явно при сборке приложения.
func Connect() (*gorm.DB, error) {
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)

	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

// NewRedisClient создаёт клиент Redis для кэша списков. Если REDIS_ADDR не
// задан, возвращает nil — приложение работает без кэша.
func NewRedisClient() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
}
