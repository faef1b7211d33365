package usecase

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Стоимость bcrypt как в исходной системе.
const bcryptCost = 10

// HashPassword хеширует пароль медленным солёным bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("ошибка хеширования пароля: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword сравнивает пароль с хешем. Сравнение выполняет bcrypt,
// устойчиво к тайминг-атакам.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
