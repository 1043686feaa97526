package entity

import "time"

// User representa una cuenta del sistema. Username es único
// (comparación exacta, sensible a mayúsculas).
type User struct {
	ID           string // uuid
	Username     string
	PasswordHash string // bcrypt, nunca en claro después de persistir
	CreatedAt    time.Time
}
