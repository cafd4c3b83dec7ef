// Package http exposes the order lifecycle and account registration over a
// JSON API. Handlers translate between the wire payloads and the command and
// query layer; expected failures come back as structured error payloads,
// never as panics.
package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"ristorante/internal/core/application/usecases/commands"
	"ristorante/internal/core/application/usecases/queries"
	"ristorante/internal/core/domain/model/order"
	"ristorante/internal/core/domain/model/user"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	registerUserHandler   commands.RegisterUserCommandHandler
	placeOrderHandler     commands.PlaceOrderCommandHandler
	markOrderReadyHandler commands.MarkOrderReadyCommandHandler
	acceptOrderHandler    commands.AcceptOrderCommandHandler
	deliverOrderHandler   commands.DeliverOrderCommandHandler
	cancelOrderHandler    commands.CancelOrderCommandHandler

	getOrderHandler          queries.GetOrderQueryHandler
	listOrdersByStateHandler queries.ListOrdersByStateQueryHandler
	getUserHandler           queries.GetUserQueryHandler

	now func() time.Time
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerUserHandler commands.RegisterUserCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	markOrderReadyHandler commands.MarkOrderReadyCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	deliverOrderHandler commands.DeliverOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersByStateHandler queries.ListOrdersByStateQueryHandler,
	getUserHandler queries.GetUserQueryHandler,
) *Server {
	return &Server{
		registerUserHandler:      registerUserHandler,
		placeOrderHandler:        placeOrderHandler,
		markOrderReadyHandler:    markOrderReadyHandler,
		acceptOrderHandler:       acceptOrderHandler,
		deliverOrderHandler:      deliverOrderHandler,
		cancelOrderHandler:       cancelOrderHandler,
		getOrderHandler:          getOrderHandler,
		listOrdersByStateHandler: listOrdersByStateHandler,
		getUserHandler:           getUserHandler,
		now:                      time.Now,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/users", s.RegisterUser)
	api.GET("/users/:username", s.GetUser)

	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/ready", s.MarkOrderReady)
	api.POST("/orders/:id/accept", s.AcceptOrder)
	api.POST("/orders/:id/deliver", s.DeliverOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
}

// RegisterUser handles POST /api/v1/users - registers a new account.
func (s *Server) RegisterUser(ctx echo.Context) error {
	var req RegisterUserRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	role, err := user.ParseRole(req.Role)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewRegisterUserCommand(
		req.Name, req.Surname, req.Username, req.Password, req.Phone,
		req.Email, req.City, req.Street, req.HouseNumber, role)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	res := s.registerUserHandler.Handle(ctx.Request().Context(), cmd)
	if !res.IsSuccess() {
		return failure(ctx, res.ErrorMessage())
	}

	return ctx.JSON(http.StatusCreated, toUserResponse(res.Value()))
}

// GetUser handles GET /api/v1/users/:username - retrieves one account.
func (s *Server) GetUser(ctx echo.Context) error {
	query, err := queries.NewGetUserQuery(ctx.Param("username"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	res := s.getUserHandler.Handle(ctx.Request().Context(), query)
	if !res.IsSuccess() {
		return failure(ctx, res.ErrorMessage())
	}

	u, found := res.Value().Get()
	if !found {
		return notFound(ctx, "user does not exist")
	}

	return ctx.JSON(http.StatusOK, toUserResponse(u))
}

// PlaceOrder handles POST /api/v1/orders - places a new order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewPlaceOrderCommand(
		req.ClientUsername, req.RestaurantName, s.now(), req.ShippingRate, req.Foods)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	res := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if !res.IsSuccess() {
		return failure(ctx, res.ErrorMessage())
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(res.Value()))
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := orderID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	res := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if !res.IsSuccess() {
		return failure(ctx, res.ErrorMessage())
	}

	o, found := res.Value().Get()
	if !found {
		return notFound(ctx, "order does not exist")
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(o))
}

// ListOrders handles GET /api/v1/orders?state= - lists orders in one state.
func (s *Server) ListOrders(ctx echo.Context) error {
	status, err := order.ParseStatus(ctx.QueryParam("state"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewListOrdersByStateQuery(status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	res := s.listOrdersByStateHandler.Handle(ctx.Request().Context(), query)
	if !res.IsSuccess() {
		return failure(ctx, res.ErrorMessage())
	}

	response := make([]OrderResponse, 0, len(res.Value()))
	for _, o := range res.Value() {
		response = append(response, toOrderResponse(o))
	}

	return ctx.JSON(http.StatusOK, response)
}

// MarkOrderReady handles POST /api/v1/orders/:id/ready.
func (s *Server) MarkOrderReady(ctx echo.Context) error {
	id, err := orderID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewMarkOrderReadyCommand(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	res := s.markOrderReadyHandler.Handle(ctx.Request().Context(), cmd)
	if !res.IsSuccess() {
		return failure(ctx, res.ErrorMessage())
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(res.Value()))
}

// AcceptOrder handles POST /api/v1/orders/:id/accept.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	id, err := orderID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var req AcceptOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAcceptOrderCommand(id, req.DeliverymanUsername, s.now())
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	res := s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd)
	if !res.IsSuccess() {
		return failure(ctx, res.ErrorMessage())
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(res.Value()))
}

// DeliverOrder handles POST /api/v1/orders/:id/deliver.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	id, err := orderID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewDeliverOrderCommand(id, s.now())
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	res := s.deliverOrderHandler.Handle(ctx.Request().Context(), cmd)
	if !res.IsSuccess() {
		return failure(ctx, res.ErrorMessage())
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(res.Value()))
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	id, err := orderID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	res := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if !res.IsSuccess() {
		return failure(ctx, res.ErrorMessage())
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(res.Value()))
}

func orderID(ctx echo.Context) (int, error) {
	return strconv.Atoi(ctx.Param("id"))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, Error{
		Code:    http.StatusNotFound,
		Message: message,
	})
}

// failure maps a Result failure message onto an HTTP status. The message is
// the contract here: repositories and handlers phrase expected failures
// consistently, so the wording picks the status.
func failure(ctx echo.Context, message string) error {
	code := http.StatusBadRequest
	switch {
	case strings.Contains(message, "does not exist"):
		code = http.StatusNotFound
	case strings.Contains(message, "already exists"),
		strings.Contains(message, "no longer in state"),
		strings.Contains(message, "not a valid state"):
		code = http.StatusConflict
	case strings.Contains(message, "could not"):
		code = http.StatusInternalServerError
	}

	return ctx.JSON(code, Error{Code: code, Message: message})
}
