package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/supermercado-api/internal/application/dto"
	"github.com/jhoicas/supermercado-api/internal/application/usecase"
	"github.com/jhoicas/supermercado-api/pkg/logger"
)

// CrudHandler expone el CRUD HTTP de una entidad de referencia. El mapeo
// request↔entidad↔respuesta se inyecta por entidad; el resto (parseo de id,
// estados, errores) es idéntico para las seis.
type CrudHandler[T any] struct {
	uc     *usecase.CrudUseCase[T]
	log    *logger.Logger
	decode func(c *fiber.Ctx) (*T, error)
	encode func(e *T) any
	setID  func(e *T, id int)
}

// NewCrudHandler construye el handler genérico.
func NewCrudHandler[T any](
	uc *usecase.CrudUseCase[T],
	log *logger.Logger,
	decode func(c *fiber.Ctx) (*T, error),
	encode func(e *T) any,
	setID func(e *T, id int),
) *CrudHandler[T] {
	return &CrudHandler[T]{uc: uc, log: log, decode: decode, encode: encode, setID: setID}
}

// Register registra las cinco rutas CRUD en el grupo.
func (h *CrudHandler[T]) Register(g fiber.Router) {
	g.Get("/", h.GetAll)
	g.Get("/:id", h.GetByID)
	g.Post("/", h.Create)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}

// GetAll GET /
func (h *CrudHandler[T]) GetAll(c *fiber.Ctx) error {
	list, err := h.uc.GetAll(c.Context())
	if err != nil {
		return respondError(c, h.log, err)
	}
	out := make([]any, 0, len(list))
	for _, e := range list {
		out = append(out, h.encode(e))
	}
	return c.JSON(out)
}

// GetByID GET /:id
func (h *CrudHandler[T]) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}
	e, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(h.encode(e))
}

// Create POST /
func (h *CrudHandler[T]) Create(c *fiber.Ctx) error {
	e, err := h.decode(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo inválido",
		})
	}
	created, err := h.uc.Create(c.Context(), e)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(h.encode(created))
}

// Update PUT /:id — reemplazo completo del registro.
func (h *CrudHandler[T]) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}
	e, err := h.decode(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo inválido",
		})
	}
	h.setID(e, id)
	updated, err := h.uc.Update(c.Context(), e)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(h.encode(updated))
}

// Delete DELETE /:id
func (h *CrudHandler[T]) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.ActionMessage{Message: "recurso eliminado"})
}
