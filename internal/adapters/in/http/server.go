// Package http implements the inbound HTTP adapter: an echo server exposing
// the order lifecycle, menu, staff, and auth operations, plus the SSE event
// stream fed by the broadcast hub.
package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"barpos/internal/core/application/usecases/commands"
	"barpos/internal/core/application/usecases/queries"
	"barpos/internal/core/domain/model/kernel"
	"barpos/internal/core/domain/model/order"
	"barpos/internal/core/domain/model/staff"
	"barpos/internal/core/domain/services"
	"barpos/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler        commands.PlaceOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	removeOrderHandler       commands.RemoveOrderCommandHandler
	registerStaffHandler     commands.RegisterStaffCommandHandler
	authenticateHandler      commands.AuthenticateStaffCommandHandler
	changeStaffRoleHandler   commands.ChangeStaffRoleCommandHandler
	removeStaffHandler       commands.RemoveStaffCommandHandler
	createCategoryHandler    commands.CreateCategoryCommandHandler
	removeCategoryHandler    commands.RemoveCategoryCommandHandler
	createProductHandler     commands.CreateProductCommandHandler
	removeProductHandler     commands.RemoveProductCommandHandler

	// Query handlers
	listOrdersHandler      queries.ListOrdersQueryHandler
	getOrderByIDHandler    queries.GetOrderByIDQueryHandler
	listTableOrdersHandler queries.ListTableOrdersQueryHandler
	listStaffHandler       queries.ListStaffQueryHandler
	listMenuHandler        queries.ListMenuQueryHandler

	tokens *TokenManager
}

// ServerHandlers bundles the use case handlers the server dispatches to.
// A struct rather than positional arguments; the list is long and the
// composition root reads better this way.
type ServerHandlers struct {
	PlaceOrder        commands.PlaceOrderCommandHandler
	ChangeOrderStatus commands.ChangeOrderStatusCommandHandler
	RemoveOrder       commands.RemoveOrderCommandHandler
	RegisterStaff     commands.RegisterStaffCommandHandler
	Authenticate      commands.AuthenticateStaffCommandHandler
	ChangeStaffRole   commands.ChangeStaffRoleCommandHandler
	RemoveStaff       commands.RemoveStaffCommandHandler
	CreateCategory    commands.CreateCategoryCommandHandler
	RemoveCategory    commands.RemoveCategoryCommandHandler
	CreateProduct     commands.CreateProductCommandHandler
	RemoveProduct     commands.RemoveProductCommandHandler

	ListOrders      queries.ListOrdersQueryHandler
	GetOrderByID    queries.GetOrderByIDQueryHandler
	ListTableOrders queries.ListTableOrdersQueryHandler
	ListStaff       queries.ListStaffQueryHandler
	ListMenu        queries.ListMenuQueryHandler
}

// NewServer creates the HTTP server.
func NewServer(handlers ServerHandlers, tokens *TokenManager) *Server {
	return &Server{
		placeOrderHandler:        handlers.PlaceOrder,
		changeOrderStatusHandler: handlers.ChangeOrderStatus,
		removeOrderHandler:       handlers.RemoveOrder,
		registerStaffHandler:     handlers.RegisterStaff,
		authenticateHandler:      handlers.Authenticate,
		changeStaffRoleHandler:   handlers.ChangeStaffRole,
		removeStaffHandler:       handlers.RemoveStaff,
		createCategoryHandler:    handlers.CreateCategory,
		removeCategoryHandler:    handlers.RemoveCategory,
		createProductHandler:     handlers.CreateProduct,
		removeProductHandler:     handlers.RemoveProduct,
		listOrdersHandler:        handlers.ListOrders,
		getOrderByIDHandler:      handlers.GetOrderByID,
		listTableOrdersHandler:   handlers.ListTableOrders,
		listStaffHandler:         handlers.ListStaff,
		listMenuHandler:          handlers.ListMenu,
		tokens:                   tokens,
	}
}

// RegisterRoutes mounts all endpoints on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo, auth *AuthMiddleware, stream *StreamHandler) {
	api := e.Group("/api")

	api.POST("/auth/login", s.Login)

	// The QR flow is public: a guest scanning a table code can read the
	// menu, place an order, follow the table's orders, and watch events.
	api.POST("/orders", s.PlaceOrder)
	api.GET("/tables/:number/orders", s.ListTableOrders)
	api.GET("/menu", s.ListMenu)
	api.GET("/events", stream.Subscribe)

	authed := api.Group("", auth.Authenticate())
	authed.POST("/auth/logout", s.Logout)
	authed.GET("/auth/profile", s.Profile)
	authed.POST("/auth/register", s.RegisterStaff, auth.RequireCapability(services.CapabilityManageStaff))

	authed.GET("/orders", s.ListOrders)
	authed.GET("/orders/:id", s.GetOrder)
	authed.PATCH("/orders/:id/status", s.ChangeOrderStatus, auth.RequireCapability(services.CapabilityAdvanceOrder))
	authed.DELETE("/orders/:id", s.RemoveOrder, auth.RequireCapability(services.CapabilityRemoveOrder))

	authed.GET("/staff", s.ListStaff, auth.RequireCapability(services.CapabilityManageStaff))
	authed.PATCH("/staff/:id/role", s.ChangeStaffRole, auth.RequireCapability(services.CapabilityManageStaff))
	authed.DELETE("/staff/:id", s.RemoveStaff, auth.RequireCapability(services.CapabilityManageStaff))

	authed.POST("/menu/categories", s.CreateCategory, auth.RequireCapability(services.CapabilityManageMenu))
	authed.DELETE("/menu/categories/:id", s.RemoveCategory, auth.RequireCapability(services.CapabilityManageMenu))
	authed.POST("/menu/products", s.CreateProduct, auth.RequireCapability(services.CapabilityManageMenu))
	authed.DELETE("/menu/products/:id", s.RemoveProduct, auth.RequireCapability(services.CapabilityManageMenu))
}

func errorBody(message string) map[string]string {
	return map[string]string{"error": message}
}

// writeError maps domain errors onto HTTP statuses: invalid input is 400,
// missing objects 404, constraint clashes 409, a dead store 503.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, commands.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, errorBody(err.Error()))
	case errors.Is(err, errs.ErrObjectNotFound):
		return c.JSON(http.StatusNotFound, errorBody(err.Error()))
	case errors.Is(err, errs.ErrConflict):
		return c.JSON(http.StatusConflict, errorBody(err.Error()))
	case errors.Is(err, errs.ErrStoreUnavailable):
		return c.JSON(http.StatusServiceUnavailable, errorBody("store is unavailable"))
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return c.JSON(http.StatusBadRequest, errorBody(err.Error()))
	default:
		return c.JSON(http.StatusInternalServerError, errorBody("internal error"))
	}
}

type itemJSON struct {
	Product  string `json:"product"`
	Quantity int    `json:"qty"`
}

type orderJSON struct {
	ID          string     `json:"id"`
	TableNumber int        `json:"table_number"`
	Items       []itemJSON `json:"products"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
}

func orderToJSON(o *order.Order) orderJSON {
	items := make([]itemJSON, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, itemJSON{Product: item.ProductRef(), Quantity: item.Quantity()})
	}

	return orderJSON{
		ID:          o.ID().String(),
		TableNumber: o.TableNumber().Value(),
		Items:       items,
		Status:      o.Status().String(),
		CreatedAt:   o.CreatedAt(),
	}
}

func orderResponseToJSON(resp queries.OrderResponse) orderJSON {
	items := make([]itemJSON, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, itemJSON{Product: item.Product, Quantity: item.Quantity})
	}

	return orderJSON{
		ID:          resp.ID.String(),
		TableNumber: resp.TableNumber,
		Items:       items,
		Status:      resp.Status,
		CreatedAt:   resp.CreatedAt,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type staffJSON struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// Login handles POST /api/auth/login. On success the session token is set
// as an httpOnly cookie and the account is returned.
func (s *Server) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
	}

	cmd, err := commands.NewAuthenticateStaffCommand(req.Username, req.Password)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody(err.Error()))
	}

	user, err := s.authenticateHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorBody("internal error"))
	}
	setAuthCookie(c, token, s.tokens.TTL())

	return c.JSON(http.StatusOK, staffJSON{
		ID:       user.ID().String(),
		Username: user.Username(),
		Name:     user.Name(),
		Role:     user.Role().String(),
	})
}

// Logout handles POST /api/auth/logout by expiring the session cookie.
func (s *Server) Logout(c echo.Context) error {
	clearAuthCookie(c)
	return c.NoContent(http.StatusNoContent)
}

// Profile handles GET /api/auth/profile, returning the caller's identity
// from the verified token.
func (s *Server) Profile(c echo.Context) error {
	claims, ok := requestClaims(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorBody("authentication required"))
	}

	return c.JSON(http.StatusOK, staffJSON{
		ID:       claims.UserID,
		Username: claims.Username,
		Role:     claims.Role,
	})
}

type registerStaffRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// RegisterStaff handles POST /api/auth/register.
func (s *Server) RegisterStaff(c echo.Context) error {
	var req registerStaffRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
	}

	role, err := staff.RoleFromString(req.Role)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody(err.Error()))
	}

	cmd, err := commands.NewRegisterStaffCommand(kernel.NewUUID(), req.Username, req.Name, req.Password, role)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody(err.Error()))
	}

	user, err := s.registerStaffHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, staffJSON{
		ID:       user.ID().String(),
		Username: user.Username(),
		Name:     user.Name(),
		Role:     user.Role().String(),
	})
}

type placeOrderRequest struct {
	TableNumber int        `json:"table_number"`
	Items       []itemJSON `json:"products"`
}

// PlaceOrder handles POST /api/orders.
func (s *Server) PlaceOrder(c echo.Context) error {
	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
	}

	tableNumber, err := kernel.NewTableNumber(req.TableNumber)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody(err.Error()))
	}

	items := make([]order.Item, 0, len(req.Items))
	for _, raw := range req.Items {
		item, itemErr := order.NewItem(raw.Product, raw.Quantity)
		if itemErr != nil {
			return c.JSON(http.StatusBadRequest, errorBody(itemErr.Error()))
		}
		items = append(items, item)
	}

	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), tableNumber, items)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody(err.Error()))
	}

	placed, err := s.placeOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, orderToJSON(placed))
}

// ListOrders handles GET /api/orders.
func (s *Server) ListOrders(c echo.Context) error {
	orders, err := s.listOrdersHandler.Handle(c.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return writeError(c, err)
	}

	response := make([]orderJSON, 0, len(orders))
	for _, resp := range orders {
		response = append(response, orderResponseToJSON(resp))
	}

	return c.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid order id"))
	}

	query, err := queries.NewGetOrderByIDQuery(id)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody(err.Error()))
	}

	resp, err := s.getOrderByIDHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, orderResponseToJSON(resp))
}

type changeStatusRequest struct {
	Status string `json:"status"`
}

type changeStatusResponse struct {
	Order          orderJSON `json:"order"`
	PreviousStatus string    `json:"previousStatus"`
	NewStatus      string    `json:"newStatus"`
}

// ChangeOrderStatus handles PATCH /api/orders/:id/status.
func (s *Server) ChangeOrderStatus(c echo.Context) error {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid order id"))
	}

	var req changeStatusRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody(err.Error()))
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, target)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody(err.Error()))
	}

	updated, previous, err := s.changeOrderStatusHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, changeStatusResponse{
		Order:          orderToJSON(updated),
		PreviousStatus: previous.String(),
		NewStatus:      updated.Status().String(),
	})
}

// RemoveOrder handles DELETE /api/orders/:id.
func (s *Server) RemoveOrder(c echo.Context) error {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid order id"))
	}

	cmd, err := commands.NewRemoveOrderCommand(id)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody(err.Error()))
	}

	if err = s.removeOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListTableOrders handles GET /api/tables/:number/orders.
func (s *Server) ListTableOrders(c echo.Context) error {
	var number int
	if err := echo.PathParamsBinder(c).Int("number", &number).BindError(); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid table number"))
	}

	tableNumber, err := kernel.NewTableNumber(number)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody(err.Error()))
	}

	query, err := queries.NewListTableOrdersQuery(tableNumber)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody(err.Error()))
	}

	orders, err := s.listTableOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	response := make([]orderJSON, 0, len(orders))
	for _, resp := range orders {
		response = append(response, orderResponseToJSON(resp))
	}

	return c.JSON(http.StatusOK, response)
}

// ListStaff handles GET /api/staff.
func (s *Server) ListStaff(c echo.Context) error {
	accounts, err := s.listStaffHandler.Handle(c.Request().Context(), queries.NewListStaffQuery())
	if err != nil {
		return writeError(c, err)
	}

	response := make([]staffJSON, 0, len(accounts))
	for _, account := range accounts {
		response = append(response, staffJSON{
			ID:       account.ID.String(),
			Username: account.Username,
			Name:     account.Name,
			Role:     account.Role,
		})
	}

	return c.JSON(http.StatusOK, response)
}

type changeRoleRequest struct {
	Role string `json:"role"`
}

// ChangeStaffRole handles PATCH /api/staff/:id/role.
func (s *Server) ChangeStaffRole(c echo.Context) error {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid user id"))
	}

	var req changeRoleRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
	}

	role, err := staff.RoleFromString(req.Role)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody(err.Error()))
	}

	cmd, err := commands.NewChangeStaffRoleCommand(id, role)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody(err.Error()))
	}

	user, err := s.changeStaffRoleHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, staffJSON{
		ID:       user.ID().String(),
		Username: user.Username(),
		Name:     user.Name(),
		Role:     user.Role().String(),
	})
}

// RemoveStaff handles DELETE /api/staff/:id.
func (s *Server) RemoveStaff(c echo.Context) error {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid user id"))
	}

	cmd, err := commands.NewRemoveStaffCommand(id)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody(err.Error()))
	}

	if err = s.removeStaffHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

type productJSON struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
}

type categoryJSON struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Products []productJSON `json:"products"`
}

// ListMenu handles GET /api/menu.
func (s *Server) ListMenu(c echo.Context) error {
	categories, err := s.listMenuHandler.Handle(c.Request().Context(), queries.NewListMenuQuery())
	if err != nil {
		return writeError(c, err)
	}

	response := make([]categoryJSON, 0, len(categories))
	for _, category := range categories {
		products := make([]productJSON, 0, len(category.Products))
		for _, product := range category.Products {
			products = append(products, productJSON{
				ID:         product.ID.String(),
				Name:       product.Name,
				PriceCents: product.PriceCents,
			})
		}
		response = append(response, categoryJSON{
			ID:       category.ID.String(),
			Name:     category.Name,
			Products: products,
		})
	}

	return c.JSON(http.StatusOK, response)
}

type createCategoryRequest struct {
	Name string `json:"name"`
}

// CreateCategory handles POST /api/menu/categories.
func (s *Server) CreateCategory(c echo.Context) error {
	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
	}

	cmd, err := commands.NewCreateCategoryCommand(kernel.NewUUID(), req.Name)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody(err.Error()))
	}

	category, err := s.createCategoryHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, categoryJSON{
		ID:       category.ID().String(),
		Name:     category.Name(),
		Products: []productJSON{},
	})
}

// RemoveCategory handles DELETE /api/menu/categories/:id.
func (s *Server) RemoveCategory(c echo.Context) error {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid category id"))
	}

	cmd, err := commands.NewRemoveCategoryCommand(id)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody(err.Error()))
	}

	if err = s.removeCategoryHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

type createProductRequest struct {
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	CategoryID string `json:"category_id"`
}

// CreateProduct handles POST /api/menu/products.
func (s *Server) CreateProduct(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
	}

	categoryID, err := kernel.UUIDFromString(req.CategoryID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid category id"))
	}

	cmd, err := commands.NewCreateProductCommand(kernel.NewUUID(), req.Name, req.PriceCents, categoryID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody(err.Error()))
	}

	product, err := s.createProductHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, productJSON{
		ID:         product.ID().String(),
		Name:       product.Name(),
		PriceCents: product.PriceCents(),
	})
}

// RemoveProduct handles DELETE /api/menu/products/:id.
func (s *Server) RemoveProduct(c echo.Context) error {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid product id"))
	}

	cmd, err := commands.NewRemoveProductCommand(id)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody(err.Error()))
	}

	if err = s.removeProductHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
