package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/kardex-api/internal/domain/entity"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

// ReportPDFGenerator define el puerto de salida para renderizar el kardex.
// Cualquier adaptador (Maroto, mock) debe implementar esta interfaz.
type ReportPDFGenerator interface {
	GenerateMovementReport(
		ctx context.Context,
		movements []*entity.Movement,
		products []*entity.Product,
	) ([]byte, error)
}

// ReportUseCase genera la representación en PDF del historial de movimientos
// junto con el stock actual del catálogo, para auditoría y conciliación.
type ReportUseCase struct {
	movementRepo repository.MovementRepository
	productRepo  repository.ProductRepository
	generator    ReportPDFGenerator
}

// NewReportUseCase construye el caso de uso inyectando sus dependencias.
func NewReportUseCase(
	movementRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
	generator ReportPDFGenerator,
) *ReportUseCase {
	return &ReportUseCase{
		movementRepo: movementRepo,
		productRepo:  productRepo,
		generator:    generator,
	}
}

// Generate recupera movimientos (más recientes primero) y productos, y
// renderiza el PDF. Retorna los bytes del documento y un nombre de archivo
// con la fecha de generación.
func (uc *ReportUseCase) Generate(ctx context.Context) (pdfBytes []byte, filename string, err error) {
	movements, err := uc.movementRepo.List()
	if err != nil {
		return nil, "", fmt.Errorf("reporte: listar movimientos: %w", err)
	}
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, "", fmt.Errorf("reporte: listar productos: %w", err)
	}
	pdfBytes, err = uc.generator.GenerateMovementReport(ctx, movements, products)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generar pdf: %w", err)
	}
	filename = fmt.Sprintf("kardex_%s.pdf", time.Now().Format("20060102"))
	return pdfBytes, filename, nil
}
