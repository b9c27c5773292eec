package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Quantity es el stock
// inicial (0 si se omite); a partir de ahí solo cambia vía movimientos.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	Quantity    int64           `json:"quantity" validate:"min=0"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	StockType   string          `json:"stock_type"`
}

// UpdateProductRequest entrada para actualizar un producto. Sin Quantity:
// el stock solo se modifica registrando movimientos.
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Category    *string          `json:"category"`
	StockType   *string          `json:"stock_type"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Quantity    int64           `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	StockType   string          `json:"stock_type"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
