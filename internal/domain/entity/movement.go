package entity

import "time"

// Tipos de movimiento de stock. Conjunto cerrado: el tipo libre del sistema
// anterior permitía movimientos sin semántica definida.
const (
	MovementTypeInbound  = "inbound"  // entrada
	MovementTypeOutbound = "outbound" // salida
)

// ValidMovementType indica si el tipo pertenece al conjunto reconocido.
func ValidMovementType(t string) bool {
	return t == MovementTypeInbound || t == MovementTypeOutbound
}

// Movement representa un movimiento de stock contra un producto. Es
// inmutable una vez creado: el ledger es append-only y forma la pista de
// auditoría de todos los cambios de cantidad.
type Movement struct {
	ID          int64
	ProductID   int64
	Type        string // inbound, outbound
	Quantity    int64  // siempre positivo; el tipo define el signo
	UserID      *int64 // nil para movimientos iniciados por el sistema
	Observation string
	CreatedAt   time.Time
}
