package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CustomClaims описывает данные личности, хранящиеся в JWT.
// Из произвольного набора claims при разборе извлекается email —
// единственное поле, участвующее в проверках владения ресурсом.
type CustomClaims struct {
	Email                string `json:"email"` // Электронная почта пользователя
	jwt.RegisteredClaims        // Встроенные стандартные claims JWT (ExpiresAt, IssuedAt и пр.)
}

// GenerateToken подписывает переданный набор claims секретным ключом,
// добавляя время выпуска и срок жизни токена. Claims копируются как есть,
// никакой проверки уникальности или учёта выпущенных токенов не ведётся.
func (j *MakerImpl) GenerateToken(claims map[string]any) (string, error) {
	mapClaims := jwt.MapClaims{}
	for k, v := range claims {
		mapClaims[k] = v
	}
	now := time.Now()
	mapClaims["iat"] = jwt.NewNumericDate(now)
	mapClaims["exp"] = jwt.NewNumericDate(now.Add(j.tokenTTL))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	return token.SignedString([]byte(j.secretKey))
}

// ParseToken разбирает JWT токен, проверяет подпись и срок действия,
// возвращает CustomClaims, если токен корректен. Причина отказа
// (подпись, срок, формат) вызывающему не различается.
func (j *MakerImpl) ParseToken(tokenStr string) (*CustomClaims, error) {
	const op = "jwt.ParseToken"
	token, err := jwt.ParseWithClaims(tokenStr, &CustomClaims{}, func(_ *jwt.Token) (any, error) {
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: invalid token", op)
	}
	return claims, nil
}
