package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tienda-pos/internal/domain"
	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/internal/domain/repository"
)

// Session identifica al operador autenticado durante la vida del proceso.
// Reemplaza el estado global "usuario actual": se pasa explícitamente a
// los casos de uso que registran quién ejecutó una operación.
type Session struct {
	Username string
}

// UseCase casos de uso de identidad: registro y login.
type UseCase struct {
	users repository.UserRepository
}

// NewUseCase construye el caso de uso de identidad.
func NewUseCase(users repository.UserRepository) *UseCase {
	return &UseCase{users: users}
}

// Register crea una cuenta: valida, hashea la contraseña con bcrypt y
// persiste. Devuelve ErrUsernameAlreadyExists si el username está tomado
// (chequeo previo; el constraint UNIQUE respalda).
func (uc *UseCase) Register(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return domain.ErrInvalidInput
	}
	existing, err := uc.users.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrUsernameAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	return uc.users.Create(ctx, user)
}

// Login verifica username/contraseña y devuelve la sesión del operador.
// Usuario desconocido y contraseña incorrecta devuelven el mismo
// ErrUnauthorized. Sin bloqueo de cuenta ni límite de intentos.
func (uc *UseCase) Login(ctx context.Context, username, password string) (Session, error) {
	user, err := uc.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return Session{}, err
	}
	if user == nil {
		return Session{}, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return Session{}, domain.ErrUnauthorized
	}
	return Session{Username: user.Username}, nil
}
