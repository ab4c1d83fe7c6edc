package seed

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/dashboard-api/internal/domain"
)

// DefaultBcryptCost factor de trabajo usado para las contraseñas del dataset.
const DefaultBcryptCost = 10

// BcryptHasher implementa PasswordHasher con bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher construye el hasher; cost 0 usa DefaultBcryptCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost == 0 {
		cost = DefaultBcryptCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash devuelve el hash bcrypt de plain.
func (h *BcryptHasher) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrHashPassword, err)
	}
	return string(hash), nil
}

// VerifyPassword compara una contraseña en plano contra su hash bcrypt.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
