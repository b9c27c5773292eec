package repository

import "github.com/jhoicas/kardex-api/internal/domain/entity"

// MovementRepository define el puerto de persistencia para el ledger de
// movimientos (DIP). El ledger es append-only: no hay Update ni Delete.
type MovementRepository interface {
	// Create persiste el movimiento y asigna movement.ID.
	Create(movement *entity.Movement) error
	// List devuelve todos los movimientos, más recientes primero
	// (created_at DESC, id DESC como desempate).
	List() ([]*entity.Movement, error)
	// ExistsByProduct indica si algún movimiento referencia al producto.
	ExistsByProduct(productID int64) (bool, error)
}
