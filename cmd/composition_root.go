package cmd

import (
	"log/slog"
	"time"

	"gorm.io/gorm"

	"barpos/internal/adapters/in/http"
	"barpos/internal/adapters/out/broadcast"
	"barpos/internal/adapters/out/postgres"
	"barpos/internal/core/application/usecases/commands"
	"barpos/internal/core/application/usecases/queries"
	"barpos/internal/core/domain/services"
)

const sessionTTL = 24 * time.Hour

// CompositionRoot owns every shared dependency: the database connection,
// the unit of work factory, the broadcast hub, the audience router, the
// access policy, and the token manager. Nothing here is a package-level
// singleton; whoever holds the root decides the lifetime.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	hub        *broadcast.Hub
	router     services.AudienceRouter
	policy     services.AccessPolicy
	tokens     *http.TokenManager
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		hub:        broadcast.NewHub(logger),
		router:     services.NewAudienceRouter(),
		policy:     services.NewAccessPolicy(),
		tokens:     http.NewTokenManager(config.AuthSecret, sessionTTL),
	}
}

// Hub exposes the broadcast hub for the transport adapter and shutdown.
func (c *CompositionRoot) Hub() *broadcast.Hub {
	return c.hub
}

// Policy exposes the access policy for HTTP middleware.
func (c *CompositionRoot) Policy() services.AccessPolicy {
	return c.policy
}

// Tokens exposes the session token manager.
func (c *CompositionRoot) Tokens() *http.TokenManager {
	return c.tokens
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) staffUoWFactory() commands.StaffUoWFactory {
	return FuncStaffUoWFactory(func() commands.StaffUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) menuUoWFactory() commands.MenuUoWFactory {
	return FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.orderUoWFactory(), c.router, c.hub)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory(), c.router, c.hub)
}

func (c *CompositionRoot) CreateRemoveOrderCommandHandler() commands.RemoveOrderCommandHandler {
	return commands.NewRemoveOrderCommandHandler(c.orderUoWFactory(), c.router, c.hub)
}

func (c *CompositionRoot) CreatePurgeClosedOrdersCommandHandler() commands.PurgeClosedOrdersCommandHandler {
	return commands.NewPurgeClosedOrdersCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRegisterStaffCommandHandler() commands.RegisterStaffCommandHandler {
	return commands.NewRegisterStaffCommandHandler(c.staffUoWFactory())
}

func (c *CompositionRoot) CreateAuthenticateStaffCommandHandler() commands.AuthenticateStaffCommandHandler {
	return commands.NewAuthenticateStaffCommandHandler(c.staffUoWFactory())
}

func (c *CompositionRoot) CreateChangeStaffRoleCommandHandler() commands.ChangeStaffRoleCommandHandler {
	return commands.NewChangeStaffRoleCommandHandler(c.staffUoWFactory())
}

func (c *CompositionRoot) CreateRemoveStaffCommandHandler() commands.RemoveStaffCommandHandler {
	return commands.NewRemoveStaffCommandHandler(c.staffUoWFactory())
}

func (c *CompositionRoot) CreateCreateCategoryCommandHandler() commands.CreateCategoryCommandHandler {
	return commands.NewCreateCategoryCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateRemoveCategoryCommandHandler() commands.RemoveCategoryCommandHandler {
	return commands.NewRemoveCategoryCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateRemoveProductCommandHandler() commands.RemoveProductCommandHandler {
	return commands.NewRemoveProductCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderByIDQueryHandler() queries.GetOrderByIDQueryHandler {
	return queries.NewGetOrderByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListTableOrdersQueryHandler() queries.ListTableOrdersQueryHandler {
	return queries.NewListTableOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListStaffQueryHandler() queries.ListStaffQueryHandler {
	return queries.NewListStaffQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListMenuQueryHandler() queries.ListMenuQueryHandler {
	return queries.NewListMenuQueryHandler(c.gormDB)
}

// CreateServer assembles the HTTP server over all use case handlers.
func (c *CompositionRoot) CreateServer() *http.Server {
	return http.NewServer(http.ServerHandlers{
		PlaceOrder:        c.CreatePlaceOrderCommandHandler(),
		ChangeOrderStatus: c.CreateChangeOrderStatusCommandHandler(),
		RemoveOrder:       c.CreateRemoveOrderCommandHandler(),
		RegisterStaff:     c.CreateRegisterStaffCommandHandler(),
		Authenticate:      c.CreateAuthenticateStaffCommandHandler(),
		ChangeStaffRole:   c.CreateChangeStaffRoleCommandHandler(),
		RemoveStaff:       c.CreateRemoveStaffCommandHandler(),
		CreateCategory:    c.CreateCreateCategoryCommandHandler(),
		RemoveCategory:    c.CreateRemoveCategoryCommandHandler(),
		CreateProduct:     c.CreateCreateProductCommandHandler(),
		RemoveProduct:     c.CreateRemoveProductCommandHandler(),
		ListOrders:        c.CreateListOrdersQueryHandler(),
		GetOrderByID:      c.CreateGetOrderByIDQueryHandler(),
		ListTableOrders:   c.CreateListTableOrdersQueryHandler(),
		ListStaff:         c.CreateListStaffQueryHandler(),
		ListMenu:          c.CreateListMenuQueryHandler(),
	}, c.tokens)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncStaffUoWFactory func() commands.StaffUoW

func (f FuncStaffUoWFactory) Create() commands.StaffUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}
