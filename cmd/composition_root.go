package cmd

import (
	"log/slog"

	httpin "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	clock      ports.Clock
	sender     ports.NotificationSender
	logger     *slog.Logger
}

func NewCompositionRoot(
	cfg Config,
	gormDB *gorm.DB,
	clock ports.Clock,
	sender ports.NotificationSender,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      clock,
		sender:     sender,
		logger:     logger,
	}
}

// Cart

func (c *CompositionRoot) CreateAddCartItemCommandHandler() commands.AddCartItemCommandHandler {
	return commands.NewAddCartItemCommandHandler(c.cartUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdateCartItemQuantityCommandHandler() commands.UpdateCartItemQuantityCommandHandler {
	return commands.NewUpdateCartItemQuantityCommandHandler(c.cartUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateRemoveCartItemCommandHandler() commands.RemoveCartItemCommandHandler {
	return commands.NewRemoveCartItemCommandHandler(c.cartUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateClearCartCommandHandler() commands.ClearCartCommandHandler {
	return commands.NewClearCartCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.uowFactory, c.clock)
}

// Orders

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.CreateGorm()
	})
	return commands.NewCreateOrderCommandHandler(f, c.clock, c.CreateOrderNotifier())
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.CreateOrderNotifier())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.CreateOrderNotifier())
}

func (c *CompositionRoot) CreateAssignOrderCommandHandler() commands.AssignOrderCommandHandler {
	return commands.NewAssignOrderCommandHandler(c.orderUoWFactory(), c.CreateOrderNotifier())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListUserOrdersQueryHandler() queries.ListUserOrdersQueryHandler {
	return queries.NewListUserOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUncompletedOrdersQueryHandler() queries.GetUncompletedOrdersQueryHandler {
	return queries.NewGetUncompletedOrdersQueryHandler(c.gormDB)
}

// Couriers

func (c *CompositionRoot) CreateRegisterCourierCommandHandler() commands.RegisterCourierCommandHandler {
	return commands.NewRegisterCourierCommandHandler(c.courierUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCourierStatusCommandHandler() commands.UpdateCourierStatusCommandHandler {
	return commands.NewUpdateCourierStatusCommandHandler(c.courierUoWFactory())
}

func (c *CompositionRoot) CreateGetAllCouriersQueryHandler() queries.GetAllCouriersQueryHandler {
	return queries.NewGetAllCouriersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCourierActiveOrdersQueryHandler() queries.GetCourierActiveOrdersQueryHandler {
	return queries.NewGetCourierActiveOrdersQueryHandler(c.gormDB)
}

// Notifications

func (c *CompositionRoot) CreateCreateNotificationCommandHandler() commands.CreateNotificationCommandHandler {
	return commands.NewCreateNotificationCommandHandler(c.notificationUoWFactory(), c.sender, c.clock, c.logger)
}

func (c *CompositionRoot) CreateUpdateNotificationStatusCommandHandler() commands.UpdateNotificationStatusCommandHandler {
	return commands.NewUpdateNotificationStatusCommandHandler(c.notificationUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateProcessDueNotificationsCommandHandler() commands.ProcessDueNotificationsCommandHandler {
	return commands.NewProcessDueNotificationsCommandHandler(c.notificationUoWFactory(), c.sender, c.clock, c.logger)
}

func (c *CompositionRoot) CreateListUserNotificationsQueryHandler() queries.ListUserNotificationsQueryHandler {
	return queries.NewListUserNotificationsQueryHandler(c.gormDB)
}

// CreateOrderNotifier turns order status changes into user notifications.
func (c *CompositionRoot) CreateOrderNotifier() commands.OrderNotifier {
	return commands.NewOrderNotifier(c.CreateCreateNotificationCommandHandler(), c.clock, c.logger)
}

// Payments

func (c *CompositionRoot) CreateCreatePaymentCommandHandler() commands.CreatePaymentCommandHandler {
	return commands.NewCreatePaymentCommandHandler(c.paymentUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdatePaymentStatusCommandHandler() commands.UpdatePaymentStatusCommandHandler {
	return commands.NewUpdatePaymentStatusCommandHandler(c.paymentUoWFactory(), c.CreateOrderNotifier())
}

func (c *CompositionRoot) CreateGetPaymentQueryHandler() queries.GetPaymentQueryHandler {
	return queries.NewGetPaymentQueryHandler(c.gormDB)
}

// Reviews

func (c *CompositionRoot) CreateSubmitReviewCommandHandler() commands.SubmitReviewCommandHandler {
	var f commands.ReviewUoWFactory = FuncReviewUoWFactory(func() commands.ReviewUoW {
		return c.uowFactory.CreateGorm()
	})
	return commands.NewSubmitReviewCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateModerateReviewQueryHandler() queries.ModerateReviewQueryHandler {
	return queries.NewModerateReviewQueryHandler(c.uowFactory)
}

// Adapters

// CreateHTTPServer wires every use case into the HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		AddCartItem:            c.CreateAddCartItemCommandHandler(),
		UpdateCartItemQuantity: c.CreateUpdateCartItemQuantityCommandHandler(),
		RemoveCartItem:         c.CreateRemoveCartItemCommandHandler(),
		ClearCart:              c.CreateClearCartCommandHandler(),
		GetCart:                c.CreateGetCartQueryHandler(),

		CreateOrder:          c.CreateCreateOrderCommandHandler(),
		UpdateOrderStatus:    c.CreateUpdateOrderStatusCommandHandler(),
		CancelOrder:          c.CreateCancelOrderCommandHandler(),
		AssignOrder:          c.CreateAssignOrderCommandHandler(),
		GetOrder:             c.CreateGetOrderQueryHandler(),
		ListUserOrders:       c.CreateListUserOrdersQueryHandler(),
		GetUncompletedOrders: c.CreateGetUncompletedOrdersQueryHandler(),

		RegisterCourier:        c.CreateRegisterCourierCommandHandler(),
		UpdateCourierStatus:    c.CreateUpdateCourierStatusCommandHandler(),
		GetAllCouriers:         c.CreateGetAllCouriersQueryHandler(),
		GetCourierActiveOrders: c.CreateGetCourierActiveOrdersQueryHandler(),

		CreateNotification:       c.CreateCreateNotificationCommandHandler(),
		UpdateNotificationStatus: c.CreateUpdateNotificationStatusCommandHandler(),
		ProcessDueNotifications:  c.CreateProcessDueNotificationsCommandHandler(),
		ListUserNotifications:    c.CreateListUserNotificationsQueryHandler(),

		CreatePayment:       c.CreateCreatePaymentCommandHandler(),
		UpdatePaymentStatus: c.CreateUpdatePaymentStatusCommandHandler(),
		GetPayment:          c.CreateGetPaymentQueryHandler(),

		SubmitReview:   c.CreateSubmitReviewCommandHandler(),
		ModerateReview: c.CreateModerateReviewQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateProcessDueNotificationsCommandHandler(),
		c.cfg.NotificationDispatchSchedule,
		c.CreateGetUncompletedOrdersQueryHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) cartUoWFactory() commands.CartUoWFactory {
	return FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) courierUoWFactory() commands.CourierUoWFactory {
	return FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) notificationUoWFactory() commands.NotificationUoWFactory {
	return FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) paymentUoWFactory() commands.PaymentUoWFactory {
	return FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.CreateGorm()
	})
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

type FuncReviewUoWFactory func() commands.ReviewUoW

func (f FuncReviewUoWFactory) Create() commands.ReviewUoW {
	return f()
}
