// Package http exposes the fulfillment workflows over a REST API built on
// echo. Handlers translate requests into commands and queries and map the
// error taxonomy onto HTTP statuses.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/preparing"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createProductHandler    commands.CreateProductCommandHandler
	createClientHandler     commands.CreateClientCommandHandler
	createEmployeeHandler   commands.CreateEmployeeCommandHandler
	createCourierHandler    commands.CreateCourierCommandHandler
	createDraftOrderHandler commands.CreateDraftOrderCommandHandler
	generateOrderHandler    commands.GenerateOrderCommandHandler
	signByClientHandler     commands.SignOrderByClientCommandHandler
	finishOrderHandler      commands.FinishOrderCommandHandler
	deleteOrderHandler      commands.DeleteOrderCommandHandler
	appointPickerHandler    commands.AppointPickerCommandHandler
	finishPreparingHandler  commands.FinishPreparingCommandHandler
	appointCourierHandler   commands.AppointCourierCommandHandler
	finishDeliveryHandler   commands.FinishDeliveryCommandHandler

	getOrderHandler           queries.GetOrderQueryHandler
	getPreparingOrdersHandler queries.GetPreparingOrdersQueryHandler
	getDeliveriesQueryHandler queries.GetDeliveriesQueryHandler
}

// Handlers bundles every command and query handler the server exposes.
type Handlers struct {
	CreateProduct    commands.CreateProductCommandHandler
	CreateClient     commands.CreateClientCommandHandler
	CreateEmployee   commands.CreateEmployeeCommandHandler
	CreateCourier    commands.CreateCourierCommandHandler
	CreateDraftOrder commands.CreateDraftOrderCommandHandler
	GenerateOrder    commands.GenerateOrderCommandHandler
	SignByClient     commands.SignOrderByClientCommandHandler
	FinishOrder      commands.FinishOrderCommandHandler
	DeleteOrder      commands.DeleteOrderCommandHandler
	AppointPicker    commands.AppointPickerCommandHandler
	FinishPreparing  commands.FinishPreparingCommandHandler
	AppointCourier   commands.AppointCourierCommandHandler
	FinishDelivery   commands.FinishDeliveryCommandHandler

	GetOrder           queries.GetOrderQueryHandler
	GetPreparingOrders queries.GetPreparingOrdersQueryHandler
	GetDeliveries      queries.GetDeliveriesQueryHandler
}

// NewServer creates an HTTP server over the given handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{
		createProductHandler:    handlers.CreateProduct,
		createClientHandler:     handlers.CreateClient,
		createEmployeeHandler:   handlers.CreateEmployee,
		createCourierHandler:    handlers.CreateCourier,
		createDraftOrderHandler: handlers.CreateDraftOrder,
		generateOrderHandler:    handlers.GenerateOrder,
		signByClientHandler:     handlers.SignByClient,
		finishOrderHandler:      handlers.FinishOrder,
		deleteOrderHandler:      handlers.DeleteOrder,
		appointPickerHandler:    handlers.AppointPicker,
		finishPreparingHandler:  handlers.FinishPreparing,
		appointCourierHandler:   handlers.AppointCourier,
		finishDeliveryHandler:   handlers.FinishDelivery,

		getOrderHandler:           handlers.GetOrder,
		getPreparingOrdersHandler: handlers.GetPreparingOrders,
		getDeliveriesQueryHandler: handlers.GetDeliveries,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/products", s.CreateProduct)
	api.POST("/clients", s.CreateClient)
	api.POST("/employees", s.CreateEmployee)
	api.POST("/couriers", s.CreateCourier)

	api.POST("/orders", s.CreateDraftOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/generate", s.GenerateOrder)
	api.POST("/orders/:id/sign-by-client", s.SignOrderByClient)
	api.POST("/orders/:id/finish", s.FinishOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)

	api.GET("/preparing-orders", s.GetPreparingOrders)
	api.POST("/preparing-orders/:id/appoint", s.AppointPicker)
	api.POST("/preparing-orders/:id/finish", s.FinishPreparing)

	api.GET("/deliveries", s.GetDeliveries)
	api.POST("/deliveries/:id/appoint", s.AppointCourier)
	api.POST("/deliveries/:id/finish", s.FinishDelivery)
}

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps the workflow error taxonomy onto HTTP statuses:
// missing objects are 404, completion by the wrong worker is 403, workflow
// conflicts (status gates, stock shortage, occupied workers) are 409 and
// everything recognizably malformed is 400.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrInvalidStatus),
		errors.Is(err, errs.ErrInsufficientStock),
		errors.Is(err, order.ErrCannotDeleteOrder),
		errors.Is(err, order.ErrCannotAssignOrder):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}

func parseID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// NewProductRequest is the payload for product registration.
type NewProductRequest struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
	Unit     string `json:"unit"`
}

// CreatedResponse returns the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var req NewProductRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(productID, req.Name, req.Quantity, req.Price, req.Unit)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: productID.String()})
}

// NewNamedRequest is the payload for client, employee and courier registration.
type NewNamedRequest struct {
	Name string `json:"name"`
}

// CreateClient handles POST /api/v1/clients.
func (s *Server) CreateClient(ctx echo.Context) error {
	var req NewNamedRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	clientID := kernel.NewUUID()
	cmd, err := commands.NewCreateClientCommand(clientID, req.Name)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createClientHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: clientID.String()})
}

// CreateEmployee handles POST /api/v1/employees.
func (s *Server) CreateEmployee(ctx echo.Context) error {
	var req NewNamedRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	employeeID := kernel.NewUUID()
	cmd, err := commands.NewCreateEmployeeCommand(employeeID, req.Name)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createEmployeeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: employeeID.String()})
}

// CreateCourier handles POST /api/v1/couriers.
func (s *Server) CreateCourier(ctx echo.Context) error {
	var req NewNamedRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	courierID := kernel.NewUUID()
	cmd, err := commands.NewCreateCourierCommand(courierID, req.Name)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: courierID.String()})
}

// NewOrderRequest is the payload for draft order creation.
type NewOrderRequest struct {
	ClientID   string                `json:"clientId"`
	EmployeeID string                `json:"employeeId"`
	Items      []NewOrderItemRequest `json:"items"`
}

// NewOrderItemRequest is one requested line of a draft order.
type NewOrderItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CreateDraftOrder handles POST /api/v1/orders.
func (s *Server) CreateDraftOrder(ctx echo.Context) error {
	var req NewOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	clientID, err := kernel.UUIDFromString(req.ClientID)
	if err != nil {
		return writeError(ctx, err)
	}
	employeeID, err := kernel.UUIDFromString(req.EmployeeID)
	if err != nil {
		return writeError(ctx, err)
	}

	lines := make([]commands.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		productID, lineErr := kernel.UUIDFromString(item.ProductID)
		if lineErr != nil {
			return writeError(ctx, lineErr)
		}
		lines = append(lines, commands.OrderLine{ProductID: productID, Quantity: item.Quantity})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateDraftOrderCommand(orderID, clientID, employeeID, lines)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createDraftOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// GenerateOrder handles POST /api/v1/orders/:id/generate.
func (s *Server) GenerateOrder(ctx echo.Context) error {
	orderID, err := parseID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewGenerateOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.generateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// SignOrderByClient handles POST /api/v1/orders/:id/sign-by-client.
func (s *Server) SignOrderByClient(ctx echo.Context) error {
	orderID, err := parseID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewSignOrderByClientCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.signByClientHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// FinishOrder handles POST /api/v1/orders/:id/finish.
func (s *Server) FinishOrder(ctx echo.Context) error {
	orderID, err := parseID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewFinishOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.finishOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := parseID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// OrderResponse is the JSON shape of one order.
type OrderResponse struct {
	ID           string              `json:"id"`
	ClientID     string              `json:"clientId"`
	EmployeeID   string              `json:"employeeId"`
	Status       string              `json:"status"`
	OrderDate    string              `json:"orderDate"`
	LinkToFolder string              `json:"linkToFolder,omitempty"`
	Items        []OrderItemResponse `json:"items"`
}

// OrderItemResponse is one snapshotted item line of an order.
type OrderItemResponse struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Price     int64  `json:"price"`
	Unit      string `json:"unit"`
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := parseID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	items := make([]OrderItemResponse, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, OrderItemResponse{
			ProductID: item.ProductID.String(),
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Unit:      item.Unit,
		})
	}

	return ctx.JSON(http.StatusOK, OrderResponse{
		ID:           result.ID.String(),
		ClientID:     result.ClientID.String(),
		EmployeeID:   result.EmployeeID.String(),
		Status:       result.Status,
		OrderDate:    result.OrderDate.Format("2006-01-02"),
		LinkToFolder: result.LinkToFolder,
		Items:        items,
	})
}

// WorkerRequest carries the acting worker for appointment and completion.
type WorkerRequest struct {
	EmployeeID string `json:"employeeId,omitempty"`
	CourierID  string `json:"courierId,omitempty"`
}

// AppointPicker handles POST /api/v1/preparing-orders/:id/appoint.
func (s *Server) AppointPicker(ctx echo.Context) error {
	taskID, err := parseID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req WorkerRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	employeeID, err := kernel.UUIDFromString(req.EmployeeID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAppointPickerCommand(taskID, employeeID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.appointPickerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// FinishPreparing handles POST /api/v1/preparing-orders/:id/finish.
func (s *Server) FinishPreparing(ctx echo.Context) error {
	taskID, err := parseID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req WorkerRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	employeeID, err := kernel.UUIDFromString(req.EmployeeID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewFinishPreparingCommand(taskID, employeeID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.finishPreparingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// AppointCourier handles POST /api/v1/deliveries/:id/appoint.
func (s *Server) AppointCourier(ctx echo.Context) error {
	deliveryID, err := parseID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req WorkerRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAppointCourierCommand(deliveryID, courierID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.appointCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// FinishDelivery handles POST /api/v1/deliveries/:id/finish.
func (s *Server) FinishDelivery(ctx echo.Context) error {
	deliveryID, err := parseID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req WorkerRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewFinishDeliveryCommand(deliveryID, courierID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.finishDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// PreparingOrderResponse is the JSON shape of one preparing task.
type PreparingOrderResponse struct {
	ID         string `json:"id"`
	OrderID    string `json:"orderId"`
	EmployeeID string `json:"employeeId,omitempty"`
	Status     string `json:"status"`
}

// GetPreparingOrders handles GET /api/v1/preparing-orders.
// Supports status, page and size query parameters.
func (s *Server) GetPreparingOrders(ctx echo.Context) error {
	var statusFilter *preparing.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := preparing.StatusFromString(raw)
		if err != nil {
			return writeError(ctx, err)
		}
		statusFilter = &status
	}

	page, size, err := parsePaging(ctx)
	if err != nil {
		return badRequest(ctx, "invalid paging parameters")
	}

	query, err := queries.NewGetPreparingOrdersQuery(statusFilter, page, size)
	if err != nil {
		return writeError(ctx, err)
	}

	results, err := s.getPreparingOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]PreparingOrderResponse, 0, len(results))
	for _, task := range results {
		item := PreparingOrderResponse{
			ID:      task.ID.String(),
			OrderID: task.OrderID.String(),
			Status:  task.Status,
		}
		if task.EmployeeID != nil {
			item.EmployeeID = task.EmployeeID.String()
		}
		response = append(response, item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// DeliveryResponse is the JSON shape of one delivery.
type DeliveryResponse struct {
	ID        string `json:"id"`
	OrderID   string `json:"orderId"`
	CourierID string `json:"courierId,omitempty"`
	Status    string `json:"status"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
}

// GetDeliveries handles GET /api/v1/deliveries.
// Supports status, page and size query parameters.
func (s *Server) GetDeliveries(ctx echo.Context) error {
	var statusFilter *delivery.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := delivery.StatusFromString(raw)
		if err != nil {
			return writeError(ctx, err)
		}
		statusFilter = &status
	}

	page, size, err := parsePaging(ctx)
	if err != nil {
		return badRequest(ctx, "invalid paging parameters")
	}

	query, err := queries.NewGetDeliveriesQuery(statusFilter, page, size)
	if err != nil {
		return writeError(ctx, err)
	}

	results, err := s.getDeliveriesQueryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]DeliveryResponse, 0, len(results))
	for _, shipment := range results {
		item := DeliveryResponse{
			ID:      shipment.ID.String(),
			OrderID: shipment.OrderID.String(),
			Status:  shipment.Status,
		}
		if shipment.CourierID != nil {
			item.CourierID = shipment.CourierID.String()
		}
		if shipment.StartTime != nil {
			item.StartTime = shipment.StartTime.Format(time.RFC3339)
		}
		if shipment.EndTime != nil {
			item.EndTime = shipment.EndTime.Format(time.RFC3339)
		}
		response = append(response, item)
	}

	return ctx.JSON(http.StatusOK, response)
}

func parsePaging(ctx echo.Context) (page, size int, err error) {
	page = 1
	if raw := ctx.QueryParam("page"); raw != "" {
		if page, err = strconv.Atoi(raw); err != nil {
			return 0, 0, err
		}
	}
	if raw := ctx.QueryParam("size"); raw != "" {
		if size, err = strconv.Atoi(raw); err != nil {
			return 0, 0, err
		}
	}
	return page, size, nil
}
