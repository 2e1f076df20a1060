// Package jwt реализует выпуск и разбор JWT токенов личности пользователя.
//
// Maker определяет интерфейс для создания и проверки токенов, несущих
// произвольный набор claims с обязательным полем email.
package jwt

import (
	"time"
)

// Maker описывает интерфейс для выпуска и разбора JWT токенов.
type Maker interface {
	// GenerateToken подписывает произвольный набор claims, добавляя срок жизни
	GenerateToken(claims map[string]any) (string, error)
	// ParseToken возвращает *CustomClaims с email из токена
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни токена (TTL).
type MakerImpl struct {
	secretKey string        // Секретный ключ для подписи токенов.
	tokenTTL  time.Duration // Время жизни токена.
}

// NewMaker создаёт новый экземпляр MakerImpl на основе секретного ключа и TTL.
func NewMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
