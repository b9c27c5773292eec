package dto

import "time"

// RecordMovementRequest body para POST /api/movements. El usuario que
// registra el movimiento sale del token verificado, nunca del body.
type RecordMovementRequest struct {
	ProductID   int64  `json:"product_id" validate:"required"`
	Type        string `json:"type" validate:"required,oneof=inbound outbound"`
	Quantity    int64  `json:"quantity" validate:"required,gt=0"`
	Observation string `json:"observation"`
}

// MovementResponse salida de un movimiento del ledger.
type MovementResponse struct {
	ID          int64     `json:"id"`
	ProductID   int64     `json:"product_id"`
	Type        string    `json:"type"`
	Quantity    int64     `json:"quantity"`
	UserID      *int64    `json:"user_id,omitempty"`
	Observation string    `json:"observation,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
