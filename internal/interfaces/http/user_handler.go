package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/firstfortune/tracking-api/internal/application/dto"
	"github.com/firstfortune/tracking-api/internal/application/usecase"
	"github.com/firstfortune/tracking-api/internal/domain"
	"github.com/firstfortune/tracking-api/pkg/logger"
)

// UserHandler maneja perfil, bóveda y la enumeración admin de usuarios.
type UserHandler struct {
	userUC     *usecase.UserUseCase
	shipmentUC *usecase.ShipmentUseCase
	log        *logger.Logger
}

// NewUserHandler construye el handler de usuario.
func NewUserHandler(userUC *usecase.UserUseCase, shipmentUC *usecase.ShipmentUseCase, log *logger.Logger) *UserHandler {
	return &UserHandler{userUC: userUC, shipmentUC: shipmentUC, log: log}
}

// Profile godoc
// @Summary      Perfil del usuario autenticado
// @Tags         user
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DataResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/user/profile [get]
func (h *UserHandler) Profile(c *fiber.Ctx) error {
	claims := ClaimsFrom(c)
	user, err := h.userUC.Profile(claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "User not found"})
		}
		return h.internalError(c, err, "profile")
	}
	return c.JSON(dto.OK(user))
}

// Shipments godoc
// @Summary      Envíos del usuario autenticado
// @Tags         user
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse
// @Router       /api/user/shipments [get]
func (h *UserHandler) Shipments(c *fiber.Ctx) error {
	claims := ClaimsFrom(c)
	shipments, err := h.shipmentUC.ListByOwner(claims.UserID)
	if err != nil {
		return h.internalError(c, err, "user shipments")
	}
	return c.JSON(dto.OKList(shipments, len(shipments)))
}

// Vault godoc
// @Summary      Activos en bóveda del usuario autenticado
// @Tags         user
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DataResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/user/vault [get]
func (h *UserHandler) Vault(c *fiber.Ctx) error {
	claims := ClaimsFrom(c)
	assets, err := h.userUC.Vault(claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "No vault assets found"})
		}
		return h.internalError(c, err, "vault")
	}
	return c.JSON(dto.OK(assets))
}

// AdminListUsers godoc
// @Summary      Enumerar todos los usuarios (admin)
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/users [get]
func (h *UserHandler) AdminListUsers(c *fiber.Ctx) error {
	users, err := h.userUC.ListUsers()
	if err != nil {
		return h.internalError(c, err, "admin users")
	}
	return c.JSON(dto.OKList(users, len(users)))
}

func (h *UserHandler) internalError(c *fiber.Ctx, err error, op string) error {
	h.log.Error().Err(err).Str("op", op).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Internal server error"})
}
