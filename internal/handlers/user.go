package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smartqueue/internal/models"
	"smartqueue/internal/response"
)

// GetProfileHandler обрабатывает запрос профиля пользователя
// @Summary		Получение профиля
// @Description	Возвращает профиль пользователя; смотреть можно только свой
// @Tags			users
// @Produce		json
// @Param			userId	path	string	true	"ID пользователя"
// @Security		BearerAuth
// @Success		200	{object}	models.User				"Профиль пользователя"
// @Failure		403	{object}	response.ErrorResponse	"Чужой профиль (FORBIDDEN)"
// @Failure		404	{object}	response.ErrorResponse	"Пользователь не найден (USER_NOT_FOUND)"
// @Router			/api/users/profile/{userId} [get]
func (h *Handler) GetProfileHandler(c *gin.Context) {
	userID := c.Param("userId")
	if userID != c.GetString("userID") {
		c.JSON(http.StatusForbidden, response.ErrorResponse{
			Code:    "FORBIDDEN",
			Message: "Можно запрашивать только свой профиль",
		})
		return
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "USER_NOT_FOUND",
			Message: "Пользователь не найден",
		})
		return
	}

	c.JSON(http.StatusOK, user)
}

type UpdateProfileRequest struct {
	DisplayName string `json:"display_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
}

// UpdateProfileHandler обрабатывает обновление профиля пользователя
// @Summary		Обновление профиля
// @Description	Обновляет имя и email текущего пользователя
// @Tags			users
// @Accept			json
// @Produce		json
// @Param			profile	body	UpdateProfileRequest	true	"Новые данные профиля"
// @Security		BearerAuth
// @Success		200	{object}	models.User				"Обновлённый профиль"
// @Failure		400	{object}	response.ErrorResponse	"Ошибка валидации (VALIDATION_ERROR)"
// @Failure		404	{object}	response.ErrorResponse	"Пользователь не найден (USER_NOT_FOUND)"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка сервера (DB_ERROR)"
// @Router			/api/users/profile [post]
func (h *Handler) UpdateProfileHandler(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Ошибка валидации данных",
			Details: err.Error(),
		})
		return
	}

	userID := c.GetString("userID")
	var user models.User
	if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{
			Code:    "USER_NOT_FOUND",
			Message: "Пользователь не найден",
		})
		return
	}

	user.DisplayName = req.DisplayName
	user.Email = req.Email
	if err := h.db.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Code:    "DB_ERROR",
			Message: "Ошибка при обновлении профиля",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, user)
}
