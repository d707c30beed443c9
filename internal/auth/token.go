package auth

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	AccessSecret  = []byte(os.Getenv("JWT_ACCESS_SECRET"))
	RefreshSecret = []byte(os.Getenv("JWT_REFRESH_SECRET"))
)

const (
	AccessTTL  = time.Minute * 15
	RefreshTTL = time.Hour * 24 * 7
)

// GenerateToken выпускает HS256-токен с идентификатором и ролью
// пользователя. Роль кладётся прямо в claims: дальше по запросу ей
// безоговорочно доверяют все обработчики.
func GenerateToken(userID, role string, duration time.Duration, secret []byte) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(duration).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}
