package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/adapters/out/postgres/pgtest"
	"fooddelivery/internal/adapters/out/postgres/userrepo"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/notification"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/clock"
	"fooddelivery/internal/pkg/logging"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Saturday 19:00, inside the evening and weekend surcharge windows.
var saturdayEvening = time.Date(2024, 5, 11, 19, 0, 0, 0, time.UTC)

type uowFactoryFunc[T any] func() T

func (f uowFactoryFunc[T]) Create() T { return f() }

type recordingSender struct {
	mu   sync.Mutex
	err  error
	sent []*notification.Notification
}

func (s *recordingSender) Send(_ context.Context, n *notification.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, n)
	return nil
}

func (s *recordingSender) failWith(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

func (s *recordingSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

// testEnv wires the command handlers to an in-memory database the way the
// composition root wires them to postgres.
type testEnv struct {
	db       *gorm.DB
	factory  *postgres.GormUnitOfWorkFactory
	clock    *clock.Fixed
	sender   *recordingSender
	notifier commands.OrderNotifier
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := pgtest.NewSQLite(t)
	env := &testEnv{
		db:      db,
		factory: postgres.NewGormUnitOfWorkFactory(db),
		clock:   clock.NewFixed(saturdayEvening),
		sender:  &recordingSender{},
	}
	creator := commands.NewCreateNotificationCommandHandler(env.notificationUoW(), env.sender, env.clock, logging.Discard())
	env.notifier = commands.NewOrderNotifier(creator, env.clock, logging.Discard())
	return env
}

func (e *testEnv) cartUoW() commands.CartUoWFactory {
	return uowFactoryFunc[commands.CartUoW](func() commands.CartUoW { return e.factory.CreateGorm() })
}

func (e *testEnv) checkoutUoW() commands.CheckoutUoWFactory {
	return uowFactoryFunc[commands.CheckoutUoW](func() commands.CheckoutUoW { return e.factory.CreateGorm() })
}

func (e *testEnv) courierUoW() commands.CourierUoWFactory {
	return uowFactoryFunc[commands.CourierUoW](func() commands.CourierUoW { return e.factory.CreateGorm() })
}

func (e *testEnv) orderUoW() commands.UoWFactory {
	return uowFactoryFunc[commands.UoW](func() commands.UoW { return e.factory.CreateGorm() })
}

func (e *testEnv) notificationUoW() commands.NotificationUoWFactory {
	return uowFactoryFunc[commands.NotificationUoW](func() commands.NotificationUoW { return e.factory.CreateGorm() })
}

func (e *testEnv) paymentUoW() commands.PaymentUoWFactory {
	return uowFactoryFunc[commands.PaymentUoW](func() commands.PaymentUoW { return e.factory.CreateGorm() })
}

func (e *testEnv) reviewUoW() commands.ReviewUoWFactory {
	return uowFactoryFunc[commands.ReviewUoW](func() commands.ReviewUoW { return e.factory.CreateGorm() })
}

func (e *testEnv) seedUser(t *testing.T, active bool) kernel.UUID {
	t.Helper()
	id := kernel.NewUUID()
	require.NoError(t, userrepo.NewGormUserDirectory(e.db).Add(t.Context(), id, "Alice", active))
	return id
}

func (e *testEnv) seedRestaurant(t *testing.T, opensAt, closesAt string, active bool) *catalog.Restaurant {
	t.Helper()
	opens, err := kernel.TimeOfDayFromString(opensAt)
	require.NoError(t, err)
	closes, err := kernel.TimeOfDayFromString(closesAt)
	require.NoError(t, err)

	r, err := catalog.RestoreRestaurant(kernel.NewUUID(), "Trattoria", active, opens, closes)
	require.NoError(t, err)
	require.NoError(t, e.factory.Create().CatalogRepository().AddRestaurant(t.Context(), r))
	return r
}

func (e *testEnv) seedMenuItem(
	t *testing.T,
	restaurantID kernel.UUID,
	name, price string,
	prepMinutes int,
	available bool,
) (*catalog.MenuItem, *catalog.Option) {
	t.Helper()
	item, err := catalog.NewMenuItem(kernel.NewUUID(), restaurantID, name)
	require.NoError(t, err)
	option, err := item.AddOption("regular", decimal.RequireFromString(price), prepMinutes)
	require.NoError(t, err)
	item.SetAvailable(available)
	require.NoError(t, e.factory.Create().CatalogRepository().AddMenuItem(t.Context(), item))
	return item, option
}

func (e *testEnv) seedCourier(t *testing.T, status courier.Status, rating string, activeOrders int) *courier.Courier {
	t.Helper()
	c, err := courier.RestoreCourier(kernel.NewUUID(), "Kate", "+15550100", status, decimal.RequireFromString(rating), activeOrders)
	require.NoError(t, err)
	require.NoError(t, e.factory.Create().CourierRepository().Add(t.Context(), c))
	return c
}

func (e *testEnv) seedOrder(t *testing.T, userID kernel.UUID, status order.Status, courierID *kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(
		kernel.NewUUID(),
		userID,
		kernel.NewUUID(),
		kernel.NewUUID(),
		courierID,
		decimal.RequireFromString("450.00"),
		status,
		e.clock.Now(),
	)
	require.NoError(t, err)
	require.NoError(t, e.factory.Create().OrderRepository().Add(t.Context(), o))
	return o
}

func (e *testEnv) loadOrder(t *testing.T, id kernel.UUID) *order.Order {
	t.Helper()
	o, err := e.factory.Create().OrderRepository().Get(t.Context(), id)
	require.NoError(t, err)
	return o
}

func (e *testEnv) loadCourier(t *testing.T, id kernel.UUID) *courier.Courier {
	t.Helper()
	c, err := e.factory.Create().CourierRepository().Get(t.Context(), id)
	require.NoError(t, err)
	return c
}

func (e *testEnv) notifications(t *testing.T, userID kernel.UUID) []queries.NotificationResponse {
	t.Helper()
	query, err := queries.NewListUserNotificationsQuery(userID)
	require.NoError(t, err)
	list, err := queries.NewListUserNotificationsQueryHandler(e.db).Handle(t.Context(), query)
	require.NoError(t, err)
	return list
}
