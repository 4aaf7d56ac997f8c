package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/supermercado-api/internal/application/dto"
	appinventory "github.com/jhoicas/supermercado-api/internal/application/inventory"
	appsales "github.com/jhoicas/supermercado-api/internal/application/sales"
	"github.com/jhoicas/supermercado-api/internal/application/usecase"
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
	"github.com/jhoicas/supermercado-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	BranchUC    *usecase.CrudUseCase[entity.Branch]
	CategoryUC  *usecase.CrudUseCase[entity.Category]
	CustomerUC  *usecase.CrudUseCase[entity.Customer]
	EmployeeUC  *usecase.CrudUseCase[entity.Employee]
	ProductUC   *usecase.CrudUseCase[entity.Product]
	RoleUC      *usecase.CrudUseCase[entity.Role]
	InventoryUC *appinventory.UseCase
	CreateSale  *appsales.CreateSaleUseCase
	SaleQueries *appsales.QueryUseCase
	Receipt     *appsales.ReceiptUseCase
	Metrics     *Metrics
	Log         *logger.Logger
}

// Router registra las rutas de la API bajo /api/v1, igual que los controladores
// versionados de la versión anterior.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	// Sucursales
	branchHandler := NewCrudHandler(deps.BranchUC, deps.Log,
		func(c *fiber.Ctx) (*entity.Branch, error) {
			var in dto.BranchRequest
			if err := c.BodyParser(&in); err != nil {
				return nil, err
			}
			return in.ToEntity(), nil
		},
		func(b *entity.Branch) any { return dto.NewBranchResponse(b) },
		func(b *entity.Branch, id int) { b.ID = id },
	)
	branchHandler.Register(api.Group("/branches"))

	// Categorías
	categoryHandler := NewCrudHandler(deps.CategoryUC, deps.Log,
		func(c *fiber.Ctx) (*entity.Category, error) {
			var in dto.CategoryRequest
			if err := c.BodyParser(&in); err != nil {
				return nil, err
			}
			return in.ToEntity(), nil
		},
		func(cat *entity.Category) any { return dto.NewCategoryResponse(cat) },
		func(cat *entity.Category, id int) { cat.ID = id },
	)
	categoryHandler.Register(api.Group("/categories"))

	// Clientes
	customerHandler := NewCrudHandler(deps.CustomerUC, deps.Log,
		func(c *fiber.Ctx) (*entity.Customer, error) {
			var in dto.CustomerRequest
			if err := c.BodyParser(&in); err != nil {
				return nil, err
			}
			return in.ToEntity(), nil
		},
		func(cu *entity.Customer) any { return dto.NewCustomerResponse(cu) },
		func(cu *entity.Customer, id int) { cu.ID = id },
	)
	customerHandler.Register(api.Group("/customers"))

	// Empleados
	employeeHandler := NewCrudHandler(deps.EmployeeUC, deps.Log,
		func(c *fiber.Ctx) (*entity.Employee, error) {
			var in dto.EmployeeRequest
			if err := c.BodyParser(&in); err != nil {
				return nil, err
			}
			return in.ToEntity(), nil
		},
		func(e *entity.Employee) any { return dto.NewEmployeeResponse(e) },
		func(e *entity.Employee, id int) { e.ID = id },
	)
	employeeHandler.Register(api.Group("/employees"))

	// Productos
	productHandler := NewCrudHandler(deps.ProductUC, deps.Log,
		func(c *fiber.Ctx) (*entity.Product, error) {
			var in dto.ProductRequest
			if err := c.BodyParser(&in); err != nil {
				return nil, err
			}
			return in.ToEntity(), nil
		},
		func(p *entity.Product) any { return dto.NewProductResponse(p) },
		func(p *entity.Product, id int) { p.ID = id },
	)
	productHandler.Register(api.Group("/products"))

	// Roles
	roleHandler := NewCrudHandler(deps.RoleUC, deps.Log,
		func(c *fiber.Ctx) (*entity.Role, error) {
			var in dto.RoleRequest
			if err := c.BodyParser(&in); err != nil {
				return nil, err
			}
			return in.ToEntity(), nil
		},
		func(r *entity.Role) any { return dto.NewRoleResponse(r) },
		func(r *entity.Role, id int) { r.ID = id },
	)
	roleHandler.Register(api.Group("/roles"))

	// Inventario
	inventoryHandler := NewInventoryHandler(deps.InventoryUC, deps.Log)
	inventoryHandler.Register(api.Group("/inventory"))

	// Ventas y líneas de venta
	saleHandler := NewSaleHandler(deps.CreateSale, deps.SaleQueries, deps.Receipt, deps.Metrics, deps.Log)
	saleHandler.Register(api.Group("/sales"))

	detailHandler := NewDetailSalesHandler(deps.SaleQueries, deps.Log)
	detailHandler.Register(api.Group("/detailsales"))
}
