package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/kardex-api/internal/domain/entity"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL
// (usable con pool o tx). El ledger es append-only: solo inserta y lee.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento y asigna el ID generado por la DB.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movements (product_id, type, quantity, user_id, observation, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		movement.ProductID, movement.Type, movement.Quantity,
		movement.UserID, movement.Observation, movement.CreatedAt,
	).Scan(&movement.ID)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// List devuelve todos los movimientos, más recientes primero. El id como
// desempate garantiza orden estrictamente no creciente aun con timestamps
// iguales.
func (r *MovementRepo) List() ([]*entity.Movement, error) {
	query := `
		SELECT id, product_id, type, quantity, user_id, observation, created_at
		FROM movements ORDER BY created_at DESC, id DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Type, &m.Quantity,
			&m.UserID, &m.Observation, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// ExistsByProduct indica si algún movimiento referencia al producto.
func (r *MovementRepo) ExistsByProduct(productID int64) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM movements WHERE product_id = $1)`,
		productID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists movement by product: %w", err)
	}
	return exists, nil
}
