package domain

import "errors"

// Errores de dominio (sin dependencias externas). La capa HTTP los traduce
// a códigos de estado; la capa de persistencia los produce a partir de
// violaciones de constraints cuando aplica.
var (
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrInvalidCredentials  = errors.New("credenciales inválidas")
	ErrEmailAlreadyExists  = errors.New("el email ya está registrado")
	ErrProductNotFound     = errors.New("producto no encontrado")
	ErrProductHasMovements = errors.New("el producto tiene movimientos asociados")
	ErrInsufficientStock   = errors.New("stock insuficiente")
)
