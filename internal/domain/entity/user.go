package entity

import "time"

// Roles válidos para User. Por ahora todos los usuarios se registran como
// RoleUser; el claim de rol viaja en el token para chequeos futuros.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User representa un usuario del sistema. El email es el identificador de
// login (único, sensible a mayúsculas).
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string // hash bcrypt, nunca el password plano
	Role         string
	CreatedAt    time.Time
}
