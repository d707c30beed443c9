package models

import "time"

// Роли пользователей. Бизнес-аккаунт управляет своими очередями,
// обычный пользователь может в них вставать.
const (
	RoleUser     = "user"
	RoleBusiness = "business"
)

type User struct {
	ID           string    `gorm:"primaryKey" json:"user_id"`
	DisplayName  string    `gorm:"not null" json:"display_name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Role         string    `gorm:"not null" json:"role"` // user | business
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
