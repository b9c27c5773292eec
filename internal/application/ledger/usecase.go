package ledger

import (
	"context"
	"time"

	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con repos atados a la tx.
// Lo implementa postgres.TxRunner.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// UseCase registra movimientos de stock de forma transaccional y expone el
// historial. El par append-al-ledger + ajuste de cantidad del producto es
// atómico: ambos escriben o ninguno, con bloqueo de fila (SELECT FOR UPDATE)
// para que movimientos concurrentes sobre un producto se serialicen.
type UseCase struct {
	txRunner     TxRunner
	movementRepo repository.MovementRepository
}

// NewUseCase construye el caso de uso del ledger.
func NewUseCase(txRunner TxRunner, movementRepo repository.MovementRepository) *UseCase {
	return &UseCase{txRunner: txRunner, movementRepo: movementRepo}
}

// RecordInput entrada para registrar un movimiento. UserID es nil para
// movimientos iniciados por el sistema; en la ruta HTTP siempre viene del
// token verificado.
type RecordInput struct {
	ProductID   int64
	Type        string // inbound, outbound
	Quantity    int64
	UserID      *int64
	Observation string
}

// Record valida la entrada y, en una sola transacción: bloquea la fila del
// producto, verifica stock suficiente para salidas, ajusta la cantidad y
// apendea el movimiento. Errores posibles:
//
//   - domain.ErrInvalidInput: tipo desconocido o cantidad <= 0
//   - domain.ErrProductNotFound: el producto no existe
//   - domain.ErrInsufficientStock: la salida dejaría el stock negativo
func (uc *UseCase) Record(ctx context.Context, in RecordInput) (*entity.Movement, error) {
	if !entity.ValidMovementType(in.Type) || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var movement *entity.Movement
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		// Bloquea la fila del producto: el chequeo de stock y el ajuste no
		// pueden correr contra una cantidad obsoleta.
		product, err := productRepo.GetByIDForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}

		now := time.Now()
		newQuantity := product.Quantity
		switch in.Type {
		case entity.MovementTypeInbound:
			newQuantity += in.Quantity
		case entity.MovementTypeOutbound:
			if product.Quantity < in.Quantity {
				return domain.ErrInsufficientStock
			}
			newQuantity -= in.Quantity
		}

		if err := productRepo.UpdateQuantity(in.ProductID, newQuantity, now); err != nil {
			return err
		}

		mov := &entity.Movement{
			ProductID:   in.ProductID,
			Type:        in.Type,
			Quantity:    in.Quantity,
			UserID:      in.UserID,
			Observation: in.Observation,
			CreatedAt:   now,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		movement = mov
		return nil
	})
	if err != nil {
		return nil, err
	}
	return movement, nil
}

// List devuelve el historial completo de movimientos, más recientes primero.
func (uc *UseCase) List() ([]*entity.Movement, error) {
	return uc.movementRepo.List()
}
