package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/supermercado-api/internal/application/dto"
	"github.com/jhoicas/supermercado-api/internal/domain"
	"github.com/jhoicas/supermercado-api/pkg/logger"
)

// respondError traduce la taxonomía de errores de dominio a estados HTTP.
// Los fallos de almacenamiento se registran con su diagnóstico completo pero
// el cliente recibe un cuerpo genérico.
func respondError(c *fiber.Ctx, log *logger.Logger, err error) error {
	var refErr *domain.ReferenceNotFoundError
	var stockErr *domain.StockEntryMissingError
	var storageErr *domain.StorageError

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "entrada inválida",
		})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: "recurso no encontrado",
		})
	case errors.Is(err, domain.ErrAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "DUPLICATE", Message: "el recurso ya existe",
		})
	case errors.As(err, &refErr):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Code: "REFERENCE_NOT_FOUND", Message: refErr.Error(),
		})
	case errors.As(err, &stockErr):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "STOCK_ENTRY_MISSING", Message: stockErr.Error(),
		})
	case errors.As(err, &storageErr):
		log.Error().Err(storageErr.Err).Str("op", storageErr.Op).Msg("fallo de almacenamiento")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "error interno del servidor",
		})
	default:
		log.Error().Err(err).Msg("error no clasificado")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "error interno del servidor",
		})
	}
}

// parseIDParam lee un parámetro de ruta entero positivo.
func parseIDParam(c *fiber.Ctx, name string) (int, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidInput
	}
	return id, nil
}
