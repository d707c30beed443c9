package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"smartqueue/internal/admission"
	"smartqueue/internal/engine"
	"smartqueue/internal/models"
	"smartqueue/internal/response"
	"smartqueue/internal/store"
)

// queueError сопоставляет типизированные ошибки ядра с HTTP-ответами.
// Каждый отказ получает свой код — фронту не приходится парсить текст.
func queueError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "QUEUE_NOT_FOUND",
			Message: "Очередь не найдена",
		})
	case errors.Is(err, engine.ErrForbidden):
		c.JSON(http.StatusForbidden, response.ErrorResponse{
			Code:    "FORBIDDEN",
			Message: "Нет прав на операцию с этой очередью",
		})
	case errors.Is(err, engine.ErrQueueInactive):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "QUEUE_INACTIVE",
			Message: "Очередь не активна",
		})
	case errors.Is(err, engine.ErrAlreadyMember):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "ALREADY_IN_QUEUE",
			Message: "Пользователь уже состоит в этой очереди",
		})
	case errors.Is(err, engine.ErrQueueFull):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "QUEUE_FULL",
			Message: "Очередь заполнена",
		})
	case errors.Is(err, engine.ErrNotAMember):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "NOT_IN_QUEUE",
			Message: "Пользователь не состоит в этой очереди",
		})
	case errors.Is(err, engine.ErrCapacityBelowOccupancy):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "CAPACITY_BELOW_OCCUPANCY",
			Message: "Лимит не может быть меньше числа участников",
		})
	case errors.Is(err, engine.ErrValidation):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Некорректные параметры очереди",
			Details: err.Error(),
		})
	case errors.Is(err, admission.ErrConflict):
		c.JSON(http.StatusConflict, response.ErrorResponse{
			Code:    "CONFLICT",
			Message: "Очередь обновляется слишком часто, повторите запрос",
		})
	case errors.Is(err, store.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, response.ErrorResponse{
			Code:    "STORE_UNAVAILABLE",
			Message: "Хранилище временно недоступно",
		})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "INTERNAL_ERROR",
			Message: "Внутренняя ошибка сервера",
			Details: err.Error(),
		})
	}
}

// GetAvailableQueuesHandler обрабатывает запрос списка доступных очередей
// @Summary		Список доступных очередей
// @Description	Возвращает все активные очереди; результат кэшируется в Redis
// @Tags			queues
// @Produce		json
// @Security		BearerAuth
// @Success		200	{array}		models.Queue			"Активные очереди"
// @Failure		503	{object}	response.ErrorResponse	"Хранилище недоступно (STORE_UNAVAILABLE)"
// @Router			/api/queues/available [get]
func (h *Handler) GetAvailableQueuesHandler(c *gin.Context) {
	if queues, ok := h.cache.GetAvailable(c.Request.Context()); ok {
		c.JSON(http.StatusOK, queues)
		return
	}

	queues, err := h.svc.ListActive(c.Request.Context())
	if err != nil {
		queueError(c, err)
		return
	}
	h.cache.SetAvailable(c.Request.Context(), queues)
	c.JSON(http.StatusOK, queues)
}

// GetBusinessQueuesHandler обрабатывает запрос очередей бизнеса
// @Summary		Очереди бизнеса
// @Description	Возвращает все очереди владельца; смотреть можно только свои
// @Tags			queues
// @Produce		json
// @Param			businessId	path	string	true	"ID бизнеса"
// @Security		BearerAuth
// @Success		200	{array}		models.Queue			"Очереди бизнеса"
// @Failure		403	{object}	response.ErrorResponse	"Чужие очереди (FORBIDDEN)"
// @Router			/api/queues/business/{businessId} [get]
func (h *Handler) GetBusinessQueuesHandler(c *gin.Context) {
	businessID := c.Param("businessId")
	if businessID != c.GetString("userID") {
		c.JSON(http.StatusForbidden, response.ErrorResponse{
			Code:    "FORBIDDEN",
			Message: "Можно запрашивать только свои очереди",
		})
		return
	}

	queues, err := h.svc.ListByOwner(c.Request.Context(), businessID)
	if err != nil {
		queueError(c, err)
		return
	}
	c.JSON(http.StatusOK, queues)
}

// GetUserQueuesHandler обрабатывает запрос очередей пользователя
// @Summary		Очереди пользователя
// @Description	Возвращает очереди, в которых состоит пользователь
// @Tags			queues
// @Produce		json
// @Param			userId	path	string	true	"ID пользователя"
// @Security		BearerAuth
// @Success		200	{array}		models.Queue			"Очереди пользователя"
// @Failure		403	{object}	response.ErrorResponse	"Чужие данные (FORBIDDEN)"
// @Router			/api/queues/user/{userId} [get]
func (h *Handler) GetUserQueuesHandler(c *gin.Context) {
	userID := c.Param("userId")
	if userID != c.GetString("userID") {
		c.JSON(http.StatusForbidden, response.ErrorResponse{
			Code:    "FORBIDDEN",
			Message: "Можно запрашивать только свои очереди",
		})
		return
	}

	queues, err := h.svc.ListContainingMember(c.Request.Context(), userID)
	if err != nil {
		queueError(c, err)
		return
	}
	c.JSON(http.StatusOK, queues)
}

// QueueDetailsResponse — снимок очереди с суммарным ожиданием.
type QueueDetailsResponse struct {
	models.Queue
	// Суммарное ожидание для вновь пришедшего, минут
	TotalWait int `json:"total_wait"`
}

// GetQueueDetailsHandler обрабатывает запрос деталей очереди
// @Summary		Детали очереди
// @Description	Возвращает снимок очереди со списком участников и суммарным ожиданием
// @Tags			queues
// @Produce		json
// @Param			queueId	path	string	true	"ID очереди"
// @Security		BearerAuth
// @Success		200	{object}	QueueDetailsResponse	"Снимок очереди"
// @Failure		404	{object}	response.ErrorResponse	"Очередь не найдена (QUEUE_NOT_FOUND)"
// @Router			/api/queues/details/{queueId} [get]
func (h *Handler) GetQueueDetailsHandler(c *gin.Context) {
	queue, err := h.svc.Get(c.Request.Context(), c.Param("queueId"))
	if err != nil {
		queueError(c, err)
		return
	}
	c.JSON(http.StatusOK, QueueDetailsResponse{
		Queue:     *queue,
		TotalWait: engine.TotalWait(queue),
	})
}

// GetPositionHandler обрабатывает запрос позиции пользователя в очереди
// @Summary		Позиция в очереди
// @Description	Возвращает позицию пользователя (с единицы) и расчётное ожидание
// @Tags			queues
// @Produce		json
// @Param			queueId	path	string	true	"ID очереди"
// @Param			userId	path	string	true	"ID пользователя"
// @Security		BearerAuth
// @Success		200	{object}	response.PositionResponse	"Позиция и ожидание"
// @Failure		403	{object}	response.ErrorResponse		"Чужие данные (FORBIDDEN)"
// @Failure		404	{object}	response.ErrorResponse		"Очередь не найдена (QUEUE_NOT_FOUND) или пользователь не в очереди (NOT_IN_QUEUE)"
// @Router			/api/queues/{queueId}/position/{userId} [get]
func (h *Handler) GetPositionHandler(c *gin.Context) {
	userID := c.Param("userId")
	if userID != c.GetString("userID") {
		c.JSON(http.StatusForbidden, response.ErrorResponse{
			Code:    "FORBIDDEN",
			Message: "Можно запрашивать только свою позицию",
		})
		return
	}

	pos, wait, err := h.svc.Position(c.Request.Context(), c.Param("queueId"), userID)
	if err != nil {
		if errors.Is(err, engine.ErrNotAMember) {
			c.JSON(http.StatusNotFound, gin.H{
				"code":     "NOT_IN_QUEUE",
				"message":  "Пользователь не состоит в этой очереди",
				"position": -1,
			})
			return
		}
		queueError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.PositionResponse{
		Position:      pos,
		EstimatedWait: wait,
	})
}

type CreateQueueRequest struct {
	QueueName         string `json:"queue_name" binding:"required"`
	Description       string `json:"description"`
	WaitTimePerPerson int    `json:"estimated_wait_time" binding:"omitempty,min=1"`
	MaxCapacity       int    `json:"max_capacity" binding:"omitempty,min=1"`
}

// CreateQueueHandler обрабатывает создание очереди
// @Summary		Создание очереди
// @Description	Создаёт новую активную очередь для бизнеса
// @Tags			queues
// @Accept			json
// @Produce		json
// @Param			queue	body	CreateQueueRequest	true	"Параметры очереди"
// @Security		BearerAuth
// @Success		201	{object}	models.Queue			"Созданная очередь"
// @Failure		400	{object}	response.ErrorResponse	"Ошибка валидации (VALIDATION_ERROR)"
// @Failure		403	{object}	response.ErrorResponse	"Не бизнес-аккаунт (FORBIDDEN)"
// @Router			/api/queues/create [post]
func (h *Handler) CreateQueueHandler(c *gin.Context) {
	var req CreateQueueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Ошибка валидации данных",
			Details: err.Error(),
		})
		return
	}

	ownerID := c.GetString("userID")
	var owner models.User
	if err := h.db.First(&owner, "id = ?", ownerID).Error; err != nil {
		c.JSON(http.StatusForbidden, response.ErrorResponse{
			Code:    "FORBIDDEN",
			Message: "Бизнес-аккаунт не найден",
		})
		return
	}

	queue, err := h.svc.Create(c.Request.Context(), admission.CreateInput{
		OwnerID:           ownerID,
		OwnerName:         owner.DisplayName,
		Name:              req.QueueName,
		Description:       req.Description,
		WaitTimePerPerson: req.WaitTimePerPerson,
		MaxCapacity:       req.MaxCapacity,
	})
	if err != nil {
		queueError(c, err)
		return
	}

	c.JSON(http.StatusCreated, queue)
}

type UpdateQueueRequest struct {
	QueueName         *string `json:"queue_name"`
	Description       *string `json:"description"`
	IsActive          *bool   `json:"is_active"`
	WaitTimePerPerson *int    `json:"estimated_wait_time"`
	MaxCapacity       *int    `json:"max_capacity"`
}

// UpdateQueueHandler обрабатывает изменение настроек очереди
// @Summary		Изменение очереди
// @Description	Меняет настройки очереди; доступно только владельцу
// @Tags			queues
// @Accept			json
// @Produce		json
// @Param			queueId	path	string				true	"ID очереди"
// @Param			patch	body	UpdateQueueRequest	true	"Изменяемые поля"
// @Security		BearerAuth
// @Success		200	{object}	models.Queue			"Обновлённая очередь"
// @Failure		400	{object}	response.ErrorResponse	"Ошибка валидации (VALIDATION_ERROR, CAPACITY_BELOW_OCCUPANCY)"
// @Failure		403	{object}	response.ErrorResponse	"Не владелец (FORBIDDEN)"
// @Failure		404	{object}	response.ErrorResponse	"Очередь не найдена (QUEUE_NOT_FOUND)"
// @Failure		409	{object}	response.ErrorResponse	"Конфликт версий (CONFLICT)"
// @Router			/api/queues/{queueId}/update [put]
func (h *Handler) UpdateQueueHandler(c *gin.Context) {
	var req UpdateQueueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Ошибка валидации данных",
			Details: err.Error(),
		})
		return
	}

	queue, err := h.svc.UpdateSettings(c.Request.Context(), c.Param("queueId"), c.GetString("userID"), engine.Patch{
		Name:              req.QueueName,
		Description:       req.Description,
		IsActive:          req.IsActive,
		WaitTimePerPerson: req.WaitTimePerPerson,
		MaxCapacity:       req.MaxCapacity,
	})
	if err != nil {
		queueError(c, err)
		return
	}

	c.JSON(http.StatusOK, queue)
}

type JoinQueueRequest struct {
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
}

// JoinQueueHandler обрабатывает вступление в очередь
// @Summary		Вступление в очередь
// @Description	Ставит пользователя в конец очереди
// @Tags			queues
// @Accept			json
// @Produce		json
// @Param			queueId	path	string				true	"ID очереди"
// @Param			member	body	JoinQueueRequest	true	"Данные участника"
// @Security		BearerAuth
// @Success		200	{object}	models.Queue			"Обновлённая очередь"
// @Failure		400	{object}	response.ErrorResponse	"Отказ (QUEUE_INACTIVE, ALREADY_IN_QUEUE, QUEUE_FULL)"
// @Failure		403	{object}	response.ErrorResponse	"Чужой user_id (FORBIDDEN)"
// @Failure		404	{object}	response.ErrorResponse	"Очередь не найдена (QUEUE_NOT_FOUND)"
// @Failure		409	{object}	response.ErrorResponse	"Конфликт версий (CONFLICT)"
// @Router			/api/queues/{queueId}/join [post]
func (h *Handler) JoinQueueHandler(c *gin.Context) {
	var req JoinQueueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Ошибка валидации данных",
			Details: err.Error(),
		})
		return
	}

	callerID := c.GetString("userID")
	// Вставать в очередь можно только под своим идентификатором.
	if req.UserID != "" && req.UserID != callerID {
		c.JSON(http.StatusForbidden, response.ErrorResponse{
			Code:    "FORBIDDEN",
			Message: "Нельзя вставать в очередь за другого пользователя",
		})
		return
	}

	queue, err := h.svc.Join(c.Request.Context(), c.Param("queueId"), callerID, req.UserName, req.UserEmail)
	if err != nil {
		queueError(c, err)
		return
	}

	c.JSON(http.StatusOK, queue)
}

// LeaveQueueHandler обрабатывает выход из очереди
// @Summary		Выход из очереди
// @Description	Убирает пользователя из очереди по его инициативе
// @Tags			queues
// @Produce		json
// @Param			queueId	path	string	true	"ID очереди"
// @Param			userId	path	string	true	"ID пользователя"
// @Security		BearerAuth
// @Success		200	{object}	response.SuccessResponse	"Успешный выход из очереди"
// @Failure		400	{object}	response.ErrorResponse		"Пользователь не в очереди (NOT_IN_QUEUE)"
// @Failure		403	{object}	response.ErrorResponse		"Чужой user_id (FORBIDDEN)"
// @Failure		404	{object}	response.ErrorResponse		"Очередь не найдена (QUEUE_NOT_FOUND)"
// @Router			/api/queues/{queueId}/leave/{userId} [post]
func (h *Handler) LeaveQueueHandler(c *gin.Context) {
	userID := c.Param("userId")
	if userID != c.GetString("userID") {
		c.JSON(http.StatusForbidden, response.ErrorResponse{
			Code:    "FORBIDDEN",
			Message: "Нельзя выводить из очереди другого пользователя",
		})
		return
	}

	if _, err := h.svc.Leave(c.Request.Context(), c.Param("queueId"), userID); err != nil {
		queueError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Message: "Вы успешно вышли из очереди"})
}

// RemoveUserHandler обрабатывает снятие пользователя владельцем очереди
// @Summary		Снятие пользователя из очереди
// @Description	Владелец убирает пользователя из очереди, счётчик обслуженных растёт
// @Tags			queues
// @Produce		json
// @Param			queueId	path	string	true	"ID очереди"
// @Param			userId	path	string	true	"ID пользователя"
// @Security		BearerAuth
// @Success		200	{object}	models.Queue			"Обновлённая очередь"
// @Failure		400	{object}	response.ErrorResponse	"Пользователь не в очереди (NOT_IN_QUEUE)"
// @Failure		403	{object}	response.ErrorResponse	"Не владелец (FORBIDDEN)"
// @Failure		404	{object}	response.ErrorResponse	"Очередь не найдена (QUEUE_NOT_FOUND)"
// @Router			/api/queues/{queueId}/user/{userId} [delete]
func (h *Handler) RemoveUserHandler(c *gin.Context) {
	queue, err := h.svc.RemoveMember(c.Request.Context(), c.Param("queueId"), c.GetString("userID"), c.Param("userId"))
	if err != nil {
		queueError(c, err)
		return
	}

	c.JSON(http.StatusOK, queue)
}
