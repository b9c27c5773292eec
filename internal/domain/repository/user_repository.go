package repository

import "github.com/jhoicas/kardex-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Las búsquedas devuelven (nil, nil) cuando no hay fila.
type UserRepository interface {
	// Create persiste el usuario y asigna user.ID. Devuelve
	// domain.ErrEmailAlreadyExists si el email ya está registrado.
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
