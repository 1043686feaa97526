package repository

import (
	"context"

	"github.com/jhoicas/tienda-pos/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para cuentas de usuario.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	// GetByUsername devuelve (nil, nil) si el usuario no existe.
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}
