package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. Quantity es el stock actual
// y solo lo modifica el ledger de movimientos; el CRUD del catálogo edita
// únicamente los campos descriptivos y el precio.
type Product struct {
	ID          int64
	Name        string
	Description string
	Quantity    int64 // nunca negativo
	Price       decimal.Decimal
	Category    string
	StockType   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
