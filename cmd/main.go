package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "smartqueue/docs"
	"smartqueue/internal/admission"
	"smartqueue/internal/auth"
	"smartqueue/internal/cache"
	"smartqueue/internal/handlers"
	"smartqueue/internal/models"
	"smartqueue/internal/storage"
	"smartqueue/internal/store"
	"smartqueue/internal/tasks"
)

// @Title						SmartQueue — виртуальные очереди для бизнеса
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	key := os.Getenv("ENV_CHEK")
	if key == "" {
		fmt.Println("Подключение к .env")
		err := godotenv.Load()
		if err != nil {
			log.Fatal("Ошибка получения .env")
		}
	}

	db, err := storage.Connect()
	if err != nil {
		log.Fatal("Ошибка подключения к базе данных: ", err)
	}

	if err := db.AutoMigrate(&models.User{}); err != nil {
		log.Fatal("Ошибка при миграции... ", err.Error())
	}

	queueStore := store.NewGormStore(db)
	if err := queueStore.AutoMigrate(); err != nil {
		log.Fatal("Ошибка при миграции... ", err.Error())
	}

	queueCache := cache.New(storage.NewRedisClient())
	svc := admission.NewService(queueStore, queueCache)
	h := handlers.New(db, svc, queueCache)

	tasks.RefreshAvailableQueues(queueStore, queueCache)
	tasks.InitScheduler(queueStore, queueCache)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
		authGroup.POST("/register", h.Register)
		authGroup.POST("/refresh", h.RefreshToken)
	}

	api := r.Group("/api", auth.AuthMiddleware())

	users := api.Group("/users")
	{
		users.GET("/profile/:userId", h.GetProfileHandler)
		users.POST("/profile", h.UpdateProfileHandler)
	}

	queues := api.Group("/queues")
	{
		queues.GET("/available", h.GetAvailableQueuesHandler)
		queues.GET("/business/:businessId", h.GetBusinessQueuesHandler)
		queues.GET("/user/:userId", h.GetUserQueuesHandler)
		queues.GET("/details/:queueId", h.GetQueueDetailsHandler)
		queues.GET("/:queueId/position/:userId", h.GetPositionHandler)
		queues.POST("/create", auth.RequireRole(models.RoleBusiness), h.CreateQueueHandler)
		queues.PUT("/:queueId/update", h.UpdateQueueHandler)
		queues.POST("/:queueId/join", auth.RequireRole(models.RoleUser), h.JoinQueueHandler)
		queues.POST("/:queueId/leave/:userId", h.LeaveQueueHandler)
		queues.DELETE("/:queueId/user/:userId", h.RemoveUserHandler)
	}

	if err := r.Run(":8080"); err != nil {
		log.Fatal("Ошибка запуска сервера...", err.Error())
	}
}
