package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/supermercado-api/internal/application/dto"
	appsales "github.com/jhoicas/supermercado-api/internal/application/sales"
	"github.com/jhoicas/supermercado-api/pkg/logger"
)

// SaleHandler maneja las peticiones HTTP de ventas: creación transaccional,
// historial, detalle y comprobante PDF.
type SaleHandler struct {
	createUC  *appsales.CreateSaleUseCase
	queryUC   *appsales.QueryUseCase
	receiptUC *appsales.ReceiptUseCase
	metrics   *Metrics
	log       *logger.Logger
}

// NewSaleHandler construye el handler.
func NewSaleHandler(
	createUC *appsales.CreateSaleUseCase,
	queryUC *appsales.QueryUseCase,
	receiptUC *appsales.ReceiptUseCase,
	metrics *Metrics,
	log *logger.Logger,
) *SaleHandler {
	return &SaleHandler{
		createUC:  createUC,
		queryUC:   queryUC,
		receiptUC: receiptUC,
		metrics:   metrics,
		log:       log,
	}
}

// Register registra las rutas de ventas en el grupo.
func (h *SaleHandler) Register(g fiber.Router) {
	g.Get("/", h.GetAll)
	g.Get("/:id", h.GetByID)
	g.Get("/:id/receipt", h.Receipt)
	g.Post("/", h.Create)
}

// Create POST /api/v1/sales — venta transaccional (cabecera + líneas + stock).
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo inválido",
		})
	}
	if len(in.Details) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "la venta debe contener al menos un producto en el detalle",
		})
	}

	sale := in.ToEntity()
	id, err := h.createUC.Execute(c.Context(), sale)
	if err != nil {
		return respondError(c, h.log, err)
	}

	h.metrics.SalesCreated.Inc()
	return c.Status(fiber.StatusCreated).JSON(dto.CreateSaleResponse{
		ID:          id,
		SaleDate:    sale.SaleDate,
		TotalAmount: sale.TotalAmount,
		Message:     "la venta fue procesada y el inventario actualizado correctamente",
	})
}

// GetAll GET /api/v1/sales — historial, la más reciente primero.
func (h *SaleHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.queryUC.ListSales(c.Context())
	if err != nil {
		return respondError(c, h.log, err)
	}
	out := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.NewSaleResponse(s))
	}
	return c.JSON(out)
}

// GetByID GET /api/v1/sales/:id — cabecera con sus líneas.
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}
	sale, err := h.queryUC.GetSale(c.Context(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.NewSaleWithDetailsResponse(sale))
}

// Receipt GET /api/v1/sales/:id/receipt — comprobante PDF.
func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}
	pdfBytes, err := h.receiptUC.Execute(c.Context(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(pdfBytes)
}

// DetailSalesHandler expone las líneas de venta como recurso de solo lectura.
type DetailSalesHandler struct {
	queryUC *appsales.QueryUseCase
	log     *logger.Logger
}

// NewDetailSalesHandler construye el handler.
func NewDetailSalesHandler(queryUC *appsales.QueryUseCase, log *logger.Logger) *DetailSalesHandler {
	return &DetailSalesHandler{queryUC: queryUC, log: log}
}

// Register registra las rutas de líneas de venta en el grupo.
func (h *DetailSalesHandler) Register(g fiber.Router) {
	g.Get("/", h.GetAll)
	g.Get("/:saleId", h.GetBySale)
}

// GetAll GET /api/v1/detailsales
func (h *DetailSalesHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.queryUC.ListDetails(c.Context())
	if err != nil {
		return respondError(c, h.log, err)
	}
	out := make([]dto.SaleLineResponse, 0, len(list))
	for _, d := range list {
		out = append(out, dto.SaleLineResponseFromEntity(d))
	}
	return c.JSON(out)
}

// GetBySale GET /api/v1/detailsales/:saleId
func (h *DetailSalesHandler) GetBySale(c *fiber.Ctx) error {
	saleID, err := parseIDParam(c, "saleId")
	if err != nil {
		return respondError(c, h.log, err)
	}
	list, err := h.queryUC.GetDetailsBySale(c.Context(), saleID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	out := make([]dto.SaleLineResponse, 0, len(list))
	for _, d := range list {
		out = append(out, dto.SaleLineResponseFromEntity(d))
	}
	return c.JSON(out)
}
