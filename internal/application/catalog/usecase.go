package catalog

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/kardex-api/internal/application/dto"
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

// UseCase casos de uso CRUD para productos. Quantity solo cambia vía el
// ledger de movimientos; aquí únicamente se fija el stock inicial al crear.
type UseCase struct {
	repo     repository.ProductRepository
	txRunner TxRunner
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.ProductRepository, txRunner TxRunner) *UseCase {
	return &UseCase{repo: repo, txRunner: txRunner}
}

// Create crea un producto. Quantity por defecto 0; nunca negativa.
func (uc *UseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 0 || in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		Name:        in.Name,
		Description: in.Description,
		Quantity:    in.Quantity,
		Price:       in.Price,
		Category:    in.Category,
		StockType:   in.StockType,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *UseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return toProductResponse(product), nil
}

// List lista todos los productos.
func (uc *UseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Update reemplaza campos descriptivos y precio, refresca updated_at.
// No permite modificar Quantity: el stock se maneja vía movimientos.
func (uc *UseCase) Update(id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.StockType != nil {
		product.StockType = *in.StockType
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto. Política RESTRICT: si existen movimientos que
// lo referencian devuelve domain.ErrProductHasMovements, nunca deja
// movimientos huérfanos. Chequeo y borrado corren en una sola transacción;
// la FK ON DELETE RESTRICT respalda la política a nivel de schema.
func (uc *UseCase) Delete(ctx context.Context, id int64) error {
	return uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		exists, err := movRepo.ExistsByProduct(id)
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrProductHasMovements
		}
		return productRepo.Delete(id)
	})
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Quantity:    p.Quantity,
		Price:       p.Price,
		Category:    p.Category,
		StockType:   p.StockType,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
