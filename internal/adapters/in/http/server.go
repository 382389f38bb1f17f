package http

import (
	"log/slog"
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Handlers groups the use cases exposed over HTTP.
type Handlers struct {
	// Cart
	AddCartItem            commands.AddCartItemCommandHandler
	UpdateCartItemQuantity commands.UpdateCartItemQuantityCommandHandler
	RemoveCartItem         commands.RemoveCartItemCommandHandler
	ClearCart              commands.ClearCartCommandHandler
	GetCart                queries.GetCartQueryHandler

	// Orders
	CreateOrder          commands.CreateOrderCommandHandler
	UpdateOrderStatus    commands.UpdateOrderStatusCommandHandler
	CancelOrder          commands.CancelOrderCommandHandler
	AssignOrder          commands.AssignOrderCommandHandler
	GetOrder             queries.GetOrderQueryHandler
	ListUserOrders       queries.ListUserOrdersQueryHandler
	GetUncompletedOrders queries.GetUncompletedOrdersQueryHandler

	// Couriers
	RegisterCourier        commands.RegisterCourierCommandHandler
	UpdateCourierStatus    commands.UpdateCourierStatusCommandHandler
	GetAllCouriers         queries.GetAllCouriersQueryHandler
	GetCourierActiveOrders queries.GetCourierActiveOrdersQueryHandler

	// Notifications
	CreateNotification       commands.CreateNotificationCommandHandler
	UpdateNotificationStatus commands.UpdateNotificationStatusCommandHandler
	ProcessDueNotifications  commands.ProcessDueNotificationsCommandHandler
	ListUserNotifications    queries.ListUserNotificationsQueryHandler

	// Payments
	CreatePayment       commands.CreatePaymentCommandHandler
	UpdatePaymentStatus commands.UpdatePaymentStatusCommandHandler
	GetPayment          queries.GetPaymentQueryHandler

	// Reviews
	SubmitReview   commands.SubmitReviewCommandHandler
	ModerateReview queries.ModerateReviewQueryHandler
}

// Server translates HTTP requests into commands and queries.
// Handlers return domain errors as they are; ErrorHandler maps them to status codes.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(h Handlers, logger *slog.Logger) *Server {
	return &Server{
		h:      h,
		logger: logger.With("component", "http"),
	}
}

// NewEcho returns an echo instance with the middleware, error handler and
// every route of s registered.
func NewEcho(s *Server) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler(s.logger)
	e.Use(Middleware(s.logger)...)
	s.Register(e)
	return e
}

// Register mounts the API under /api/v1 and the health probe at /health.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.GET("/users/:userId/cart", s.GetCart)
	api.POST("/users/:userId/cart/items", s.AddCartItem)
	api.DELETE("/users/:userId/cart", s.ClearCart)
	api.PATCH("/cart/items/:lineId", s.UpdateCartItemQuantity)
	api.DELETE("/cart/items/:lineId", s.RemoveCartItem)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/active", s.GetOrders)
	api.GET("/orders/:orderId", s.GetOrder)
	api.PATCH("/orders/:orderId/status", s.UpdateOrderStatus)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)
	api.POST("/orders/:orderId/assign", s.AssignOrder)
	api.GET("/users/:userId/orders", s.ListUserOrders)

	api.GET("/couriers", s.GetCouriers)
	api.POST("/couriers", s.RegisterCourier)
	api.PATCH("/couriers/:courierId/status", s.UpdateCourierStatus)
	api.GET("/couriers/:courierId/orders", s.GetCourierOrders)

	api.POST("/notifications", s.CreateNotification)
	api.POST("/notifications/dispatch", s.DispatchNotifications)
	api.PATCH("/notifications/:notificationId/status", s.UpdateNotificationStatus)
	api.GET("/users/:userId/notifications", s.ListUserNotifications)

	api.POST("/payments", s.CreatePayment)
	api.GET("/payments/:paymentId", s.GetPayment)
	api.PATCH("/payments/:paymentId/status", s.UpdatePaymentStatus)

	api.POST("/reviews", s.SubmitReview)
	api.POST("/reviews/moderation", s.ModerateReview)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// IDResponse is returned for created resources that have no dedicated read model.
type IDResponse struct {
	ID string `json:"id"`
}
