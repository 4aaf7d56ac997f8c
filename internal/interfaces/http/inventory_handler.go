package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/supermercado-api/internal/application/dto"
	appinventory "github.com/jhoicas/supermercado-api/internal/application/inventory"
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
	"github.com/jhoicas/supermercado-api/pkg/logger"
)

// InventoryHandler maneja las peticiones HTTP del libro de inventario.
type InventoryHandler struct {
	uc  *appinventory.UseCase
	log *logger.Logger
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *appinventory.UseCase, log *logger.Logger) *InventoryHandler {
	return &InventoryHandler{uc: uc, log: log}
}

// Register registra las rutas de inventario en el grupo.
func (h *InventoryHandler) Register(g fiber.Router) {
	g.Get("/", h.GetAll)
	g.Get("/product/:productId", h.GetByProduct)
	g.Get("/:branchId/:productId", h.Get)
	g.Post("/", h.Create)
	g.Put("/:branchId/:productId", h.UpdateQuantity)
	g.Patch("/:branchId/:productId/stock", h.AddStock)
	g.Delete("/:branchId/:productId", h.Delete)
}

// GetAll GET /api/v1/inventory
func (h *InventoryHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.uc.GetAll(c.Context())
	if err != nil {
		return respondError(c, h.log, err)
	}
	out := make([]dto.InventoryResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, dto.NewInventoryResponse(inv))
	}
	return c.JSON(out)
}

// Get GET /api/v1/inventory/:branchId/:productId
func (h *InventoryHandler) Get(c *fiber.Ctx) error {
	branchID, productID, err := h.keyParams(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	inv, err := h.uc.Get(c.Context(), branchID, productID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.NewInventoryResponse(inv))
}

// GetByProduct GET /api/v1/inventory/product/:productId — stock en todas las sucursales.
func (h *InventoryHandler) GetByProduct(c *fiber.Ctx) error {
	productID, err := parseIDParam(c, "productId")
	if err != nil {
		return respondError(c, h.log, err)
	}
	list, err := h.uc.GetByProduct(c.Context(), productID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	out := make([]dto.InventoryResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, dto.NewInventoryResponse(inv))
	}
	return c.JSON(out)
}

// Create POST /api/v1/inventory
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo inválido",
		})
	}
	inv := &entity.Inventory{
		BranchID:      in.BranchID,
		ProductID:     in.ProductID,
		StockQuantity: in.StockQuantity,
	}
	if err := h.uc.Create(c.Context(), inv); err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewInventoryResponse(inv))
}

// UpdateQuantity PUT /api/v1/inventory/:branchId/:productId — reemplazo total de la cantidad.
func (h *InventoryHandler) UpdateQuantity(c *fiber.Ctx) error {
	branchID, productID, err := h.keyParams(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	var in dto.UpdateQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo inválido",
		})
	}
	if err := h.uc.UpdateQuantity(c.Context(), branchID, productID, in.StockQuantity); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.ActionMessage{Message: "inventario actualizado"})
}

// AddStock PATCH /api/v1/inventory/:branchId/:productId/stock — ajuste por delta.
func (h *InventoryHandler) AddStock(c *fiber.Ctx) error {
	branchID, productID, err := h.keyParams(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	var in dto.AddStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo inválido",
		})
	}
	if err := h.uc.AddStock(c.Context(), branchID, productID, in.Quantity); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.ActionMessage{Message: "stock ajustado"})
}

// Delete DELETE /api/v1/inventory/:branchId/:productId
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	branchID, productID, err := h.keyParams(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if err := h.uc.Delete(c.Context(), branchID, productID); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.ActionMessage{Message: "inventario eliminado"})
}

func (h *InventoryHandler) keyParams(c *fiber.Ctx) (int, int, error) {
	branchID, err := parseIDParam(c, "branchId")
	if err != nil {
		return 0, 0, err
	}
	productID, err := parseIDParam(c, "productId")
	if err != nil {
		return 0, 0, err
	}
	return branchID, productID, nil
}
