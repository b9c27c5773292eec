package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/kardex-api/internal/application/dto"
	"github.com/jhoicas/kardex-api/internal/application/ledger"
	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
)

// MovementHandler maneja las peticiones HTTP del ledger de movimientos.
type MovementHandler struct {
	uc     *ledger.UseCase
	report *ledger.ReportUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *ledger.UseCase, report *ledger.ReportUseCase) *MovementHandler {
	return &MovementHandler{uc: uc, report: report}
}

// Record godoc
// @Summary      Registrar movimiento de stock
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordMovementRequest  true  "product_id, type (inbound|outbound), quantity, observation"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Record(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RecordMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	// El usuario actuante sale del token verificado, nunca del body.
	mov, err := h.uc.Record(c.Context(), ledger.RecordInput{
		ProductID:   in.ProductID,
		Type:        in.Type,
		Quantity:    in.Quantity,
		UserID:      &userID,
		Observation: in.Observation,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type debe ser inbound u outbound y quantity positiva"})
		}
		if errors.Is(err, domain.ErrProductNotFound) {
			// Un product_id que no resuelve es un error de validación del
			// body, no un recurso ausente: la ruta responde 400.
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "producto no encontrado"})
		}
		if errors.Is(err, domain.ErrInsufficientStock) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
		}
		log.Error().Err(err).Msg("registrar movimiento")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(mov))
}

// List godoc
// @Summary      Listar movimientos
// @Description  Historial completo del ledger, más recientes primero.
// @Tags         movements
// @Produce      json
// @Success      200  {array}   dto.MovementResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	movements, err := h.uc.List()
	if err != nil {
		log.Error().Err(err).Msg("listar movimientos")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, *toMovementResponse(m))
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Kardex en PDF
// @Description  Historial de movimientos y stock actual del catálogo.
// @Tags         movements
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/movements/report [get]
func (h *MovementHandler) Report(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.report.Generate(c.Context())
	if err != nil {
		log.Error().Err(err).Msg("generar reporte de movimientos")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:          m.ID,
		ProductID:   m.ProductID,
		Type:        m.Type,
		Quantity:    m.Quantity,
		UserID:      m.UserID,
		Observation: m.Observation,
		CreatedAt:   m.CreatedAt,
	}
}
