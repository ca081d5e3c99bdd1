package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/firstfortune/tracking-api/internal/application/dto"
	"github.com/firstfortune/tracking-api/internal/application/usecase"
	"github.com/firstfortune/tracking-api/internal/domain"
	"github.com/firstfortune/tracking-api/pkg/logger"
)

// ShipmentHandler maneja tracking público y la gestión de envíos.
type ShipmentHandler struct {
	uc  *usecase.ShipmentUseCase
	log *logger.Logger
}

// NewShipmentHandler construye el handler de envíos.
func NewShipmentHandler(uc *usecase.ShipmentUseCase, log *logger.Logger) *ShipmentHandler {
	return &ShipmentHandler{uc: uc, log: log}
}

// Track godoc
// @Summary      Rastrear un envío (público)
// @Tags         tracking
// @Produce      json
// @Param        trackingNumber  path  string  true  "Número de tracking"
// @Success      200  {object}  dto.DataResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/track/{trackingNumber} [get]
func (h *ShipmentHandler) Track(c *fiber.Ctx) error {
	code := c.Params("trackingNumber")
	// Los claims son opcionales: con sesión del dueño la vista es completa.
	out, err := h.uc.Track(code, ClaimsFrom(c))
	if err != nil {
		if errors.Is(err, domain.ErrShipmentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success":        false,
				"message":        "Tracking number not found. Please check your tracking number and try again.",
				"trackingNumber": code,
			})
		}
		return h.internalError(c, err, "track")
	}
	return c.JSON(dto.OK(out))
}

// List godoc
// @Summary      Listar envíos (admin: todos; cliente: propios)
// @Tags         shipments
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse
// @Router       /api/shipments [get]
func (h *ShipmentHandler) List(c *fiber.Ctx) error {
	shipments, err := h.uc.ListFor(ClaimsFrom(c))
	if err != nil {
		return h.internalError(c, err, "list shipments")
	}
	return c.JSON(dto.OKList(shipments, len(shipments)))
}

// Create godoc
// @Summary      Crear un envío propiedad del usuario autenticado
// @Tags         shipments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateShipmentRequest  true  "origin, destination, weight, service"
// @Success      201   {object}  dto.DataResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/shipments [post]
func (h *ShipmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateShipmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Origin == "" || in.Destination == "" || in.Weight == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Origin, destination, and weight are required fields"})
	}
	claims := ClaimsFrom(c)
	out, err := h.uc.Create(claims.UserID, in)
	if err != nil {
		return h.internalError(c, err, "create shipment")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKMessage("Shipment created successfully", out))
}

// UpdateStatus godoc
// @Summary      Actualizar estado de un envío (dueño o admin)
// @Tags         shipments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        trackingNumber  path  string  true  "Número de tracking"
// @Param        body  body  dto.UpdateStatusRequest  true  "status, location, description"
// @Success      200   {object}  dto.DataResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/shipments/{trackingNumber}/status [put]
func (h *ShipmentHandler) UpdateStatus(c *fiber.Ctx) error {
	code := c.Params("trackingNumber")
	var in dto.UpdateStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status es requerido"})
	}
	out, err := h.uc.UpdateStatus(ClaimsFrom(c), code, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrShipmentNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Shipment not found"})
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "Access denied - you can only update your own shipments"})
		default:
			return h.internalError(c, err, "update status")
		}
	}
	return c.JSON(dto.OKMessage("Shipment status updated", out))
}

// AdminList godoc
// @Summary      Listar todos los envíos (admin)
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/shipments [get]
func (h *ShipmentHandler) AdminList(c *fiber.Ctx) error {
	shipments, err := h.uc.ListAll()
	if err != nil {
		return h.internalError(c, err, "admin shipments")
	}
	return c.JSON(dto.OKList(shipments, len(shipments)))
}

func (h *ShipmentHandler) internalError(c *fiber.Ctx, err error, op string) error {
	h.log.Error().Err(err).Str("op", op).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Internal server error"})
}
