package repository

import (
	"time"

	"github.com/jhoicas/kardex-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Las búsquedas devuelven (nil, nil) cuando no hay fila.
type ProductRepository interface {
	// Create persiste el producto y asigna product.ID.
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	// GetByIDForUpdate obtiene el producto bloqueando la fila
	// (SELECT ... FOR UPDATE). Solo tiene sentido dentro de una transacción.
	GetByIDForUpdate(id int64) (*entity.Product, error)
	// Update reemplaza los campos descriptivos y el precio. Nunca toca
	// Quantity: esa columna la escribe exclusivamente el ledger.
	Update(product *entity.Product) error
	// UpdateQuantity fija el stock del producto (uso exclusivo del ledger).
	UpdateQuantity(id int64, quantity int64, updatedAt time.Time) error
	List() ([]*entity.Product, error)
	// Delete elimina el producto. Devuelve domain.ErrProductNotFound si no
	// existe y domain.ErrProductHasMovements si hay movimientos que lo
	// referencian (FK RESTRICT).
	Delete(id int64) error
}
