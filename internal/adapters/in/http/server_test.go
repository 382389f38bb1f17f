package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"fooddelivery/cmd"
	httpin "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/adapters/out/postgres/pgtest"
	"fooddelivery/internal/adapters/out/postgres/userrepo"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/application/views"
	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/notification"
	"fooddelivery/internal/pkg/clock"
	"fooddelivery/internal/pkg/logging"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Saturday 19:00.
var saturdayEvening = time.Date(2024, 5, 11, 19, 0, 0, 0, time.UTC)

type recordingSender struct {
	mu   sync.Mutex
	sent []*notification.Notification
}

func (s *recordingSender) Send(_ context.Context, n *notification.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, n)
	return nil
}

type apiEnv struct {
	db      *gorm.DB
	factory *postgres.GormUnitOfWorkFactory
	clock   *clock.Fixed
	echo    *echo.Echo
	logs    *bytes.Buffer
}

func newAPIEnv(t *testing.T) *apiEnv {
	t.Helper()

	db := pgtest.NewSQLite(t)
	logs := &bytes.Buffer{}
	logger := logging.NewWithWriter(logs, "info", "json")
	fixed := clock.NewFixed(saturdayEvening)

	cfg := cmd.LoadConfig(func(string) string { return "" })
	root := cmd.NewCompositionRoot(cfg, db, fixed, &recordingSender{}, logger)

	return &apiEnv{
		db:      db,
		factory: postgres.NewGormUnitOfWorkFactory(db),
		clock:   fixed,
		echo:    httpin.NewEcho(root.CreateHTTPServer()),
		logs:    logs,
	}
}

func (e *apiEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var payload []byte
	switch b := body.(type) {
	case nil:
	case string:
		payload = []byte(b)
	default:
		var err error
		payload, err = json.Marshal(b)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.echo.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func (e *apiEnv) seedUser(t *testing.T) kernel.UUID {
	t.Helper()
	id := kernel.NewUUID()
	require.NoError(t, userrepo.NewGormUserDirectory(e.db).Add(t.Context(), id, "Alice", true))
	return id
}

func (e *apiEnv) seedMenu(t *testing.T, price string) *catalog.Option {
	t.Helper()
	opens, err := kernel.TimeOfDayFromString("10:00")
	require.NoError(t, err)
	closes, err := kernel.TimeOfDayFromString("23:00")
	require.NoError(t, err)

	r, err := catalog.RestoreRestaurant(kernel.NewUUID(), "Trattoria", true, opens, closes)
	require.NoError(t, err)
	repo := e.factory.Create().CatalogRepository()
	require.NoError(t, repo.AddRestaurant(t.Context(), r))

	item, err := catalog.NewMenuItem(kernel.NewUUID(), r.ID(), "Lasagna")
	require.NoError(t, err)
	option, err := item.AddOption("regular", decimal.RequireFromString(price), 20)
	require.NoError(t, err)
	item.SetAvailable(true)
	require.NoError(t, repo.AddMenuItem(t.Context(), item))
	return option
}

func TestHealth(t *testing.T) {
	env := newAPIEnv(t)

	rec := env.do(t, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	assert.Contains(t, env.logs.String(), `"uri":"/health"`)
	assert.Contains(t, env.logs.String(), `"status":200`)
}

func TestOrderLifecycle(t *testing.T) {
	env := newAPIEnv(t)
	userID := env.seedUser(t)
	option := env.seedMenu(t, "360.00")

	// cart
	rec := env.do(t, http.MethodPost, "/api/v1/users/"+userID.String()+"/cart/items", map[string]any{
		"optionId": option.ID().String(),
		"quantity": 1,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	cart := decode[views.CartView](t, rec)
	assert.Equal(t, "360.00", cart.Subtotal.StringFixed(2))
	require.Len(t, cart.Lines, 1)
	require.NotNil(t, cart.EtaMinutes)

	// checkout
	rec = env.do(t, http.MethodPost, "/api/v1/orders", map[string]any{"cartId": cart.ID.String()})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[queries.OrderResponse](t, rec)
	assert.Equal(t, "NEW", created.Status.String())
	assert.Equal(t, "360.00", created.Total.StringFixed(2))
	orderPath := "/api/v1/orders/" + created.ID.String()

	rec = env.do(t, http.MethodGet, "/api/v1/users/"+userID.String()+"/cart", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[views.CartView](t, rec).Lines)

	// payment
	rec = env.do(t, http.MethodPost, "/api/v1/payments", map[string]any{
		"orderId": created.ID.String(),
		"method":  "CARD",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	pay := decode[queries.PaymentResponse](t, rec)
	assert.Equal(t, "PENDING", pay.Status.String())
	assert.Equal(t, "360.00", pay.Amount.StringFixed(2))

	rec = env.do(t, http.MethodPatch, "/api/v1/payments/"+pay.ID.String()+"/status", map[string]any{"status": "SUCCEEDED"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "SUCCEEDED", decode[queries.PaymentResponse](t, rec).Status.String())

	rec = env.do(t, http.MethodGet, orderPath, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "CONFIRMED", decode[queries.OrderResponse](t, rec).Status.String())

	// kitchen
	for _, status := range []string{"PREPARING", "READY"} {
		rec = env.do(t, http.MethodPatch, orderPath+"/status", map[string]any{"status": status})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, status, decode[queries.OrderResponse](t, rec).Status.String())
	}

	// courier
	rec = env.do(t, http.MethodPost, "/api/v1/couriers", map[string]any{
		"name":   "Kate",
		"phone":  "+15550100",
		"rating": "4.8",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	courierID := decode[httpin.IDResponse](t, rec).ID

	rec = env.do(t, http.MethodPost, orderPath+"/assign", map[string]any{"courierId": courierID})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, decode[httpin.ErrorResponse](t, rec).Message, "must be online")

	rec = env.do(t, http.MethodPatch, "/api/v1/couriers/"+courierID+"/status", map[string]any{"status": "FREE"})
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = env.do(t, http.MethodPost, orderPath+"/assign", map[string]any{"courierId": courierID})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assigned := decode[queries.OrderResponse](t, rec)
	assert.Equal(t, "TAKED", assigned.Status.String())
	require.NotNil(t, assigned.CourierID)
	assert.Equal(t, courierID, assigned.CourierID.String())

	rec = env.do(t, http.MethodGet, "/api/v1/couriers/"+courierID+"/orders", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]queries.OrderResponse](t, rec), 1)

	rec = env.do(t, http.MethodGet, "/api/v1/couriers", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	couriers := decode[[]queries.GetAllCouriersQueryResponse](t, rec)
	require.Len(t, couriers, 1)
	assert.Equal(t, 1, couriers[0].ActiveOrders)
	assert.Equal(t, "BUSY", couriers[0].Status.String())

	// delivery by a stranger is refused, by the assigned courier accepted
	rec = env.do(t, http.MethodPatch, orderPath+"/status", map[string]any{
		"status":    "DELIVERED",
		"courierId": kernel.NewUUID().String(),
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(t, http.MethodPatch, orderPath+"/status", map[string]any{
		"status":    "DELIVERED",
		"courierId": courierID,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "DELIVERED", decode[queries.OrderResponse](t, rec).Status.String())

	rec = env.do(t, http.MethodPost, orderPath+"/cancel", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/orders/active", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]queries.OrderResponse](t, rec))

	rec = env.do(t, http.MethodGet, "/api/v1/users/"+userID.String()+"/orders", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]queries.OrderResponse](t, rec), 1)

	// review
	rec = env.do(t, http.MethodPost, "/api/v1/reviews", map[string]any{
		"userId":  userID.String(),
		"orderId": created.ID.String(),
		"rating":  5,
		"comment": "Hot and fast, thanks",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "APPROVED", decode[map[string]any](t, rec)["verdict"])

	rec = env.do(t, http.MethodPost, "/api/v1/reviews", map[string]any{
		"userId":  userID.String(),
		"orderId": created.ID.String(),
		"rating":  4,
		"comment": "again",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// notifications
	rec = env.do(t, http.MethodGet, "/api/v1/users/"+userID.String()+"/notifications", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	kinds := map[notification.Type]notification.Status{}
	for _, n := range decode[[]queries.NotificationResponse](t, rec) {
		kinds[n.Type] = n.Status
	}
	assert.Equal(t, notification.Sent, kinds[notification.OrderCreated])
	assert.Equal(t, notification.Sent, kinds[notification.PaymentSucceeded])
	assert.Equal(t, notification.Sent, kinds[notification.OrderDelivered])
	assert.Equal(t, notification.Scheduled, kinds[notification.ReviewReminder])

	env.clock.Advance(time.Hour)
	rec = env.do(t, http.MethodPost, "/api/v1/notifications/dispatch", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, httpin.DispatchResponse{Sent: 1}, decode[httpin.DispatchResponse](t, rec))
}

func TestNotificationEndpoints(t *testing.T) {
	env := newAPIEnv(t)
	userID := env.seedUser(t)
	sendAt := saturdayEvening.Add(10 * time.Minute)

	rec := env.do(t, http.MethodPost, "/api/v1/notifications", map[string]any{
		"userId":  userID.String(),
		"message": "20% off tonight",
		"type":    "PROMOTIONAL",
		"channel": "EMAIL",
		"sendAt":  sendAt,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	id := decode[httpin.IDResponse](t, rec).ID

	rec = env.do(t, http.MethodGet, "/api/v1/users/"+userID.String()+"/notifications", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[[]queries.NotificationResponse](t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, notification.Scheduled, list[0].Status)
	assert.Equal(t, notification.Email, list[0].Channel)

	rec = env.do(t, http.MethodPatch, "/api/v1/notifications/"+id+"/status", map[string]any{"status": "FAILED"})
	assert.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = env.do(t, http.MethodPost, "/api/v1/notifications", map[string]any{
		"userId":  kernel.NewUUID().String(),
		"message": "hello",
		"type":    "PROMOTIONAL",
		"channel": "SMS",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/v1/notifications", map[string]any{
		"userId":  userID.String(),
		"message": "hello",
		"type":    "CARRIER_PIGEON",
		"channel": "SMS",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestModerateReview(t *testing.T) {
	env := newAPIEnv(t)

	rec := env.do(t, http.MethodPost, "/api/v1/reviews/moderation", map[string]any{
		"userId":       kernel.NewUUID().String(),
		"restaurantId": kernel.NewUUID().String(),
		"comment":      "join my tg channel",
	})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "BANNED", decode[map[string]any](t, rec)["verdict"])
}

func TestClientErrors(t *testing.T) {
	env := newAPIEnv(t)
	userID := env.seedUser(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		want   int
	}{
		{"malformed id", http.MethodGet, "/api/v1/orders/not-a-uuid", nil, http.StatusBadRequest},
		{"unknown order", http.MethodGet, "/api/v1/orders/" + kernel.NewUUID().String(), nil, http.StatusNotFound},
		{"user without cart", http.MethodGet, "/api/v1/users/" + userID.String() + "/cart", nil, http.StatusNotFound},
		{"unknown cart", http.MethodPost, "/api/v1/orders", map[string]any{"cartId": kernel.NewUUID().String()}, http.StatusNotFound},
		{"missing cart id", http.MethodPost, "/api/v1/orders", map[string]any{}, http.StatusBadRequest},
		{"broken json", http.MethodPost, "/api/v1/orders", "{", http.StatusBadRequest},
		{"unknown status", http.MethodPatch, "/api/v1/orders/" + kernel.NewUUID().String() + "/status",
			map[string]any{"status": "FLYING"}, http.StatusBadRequest},
		{"zero quantity", http.MethodPost, "/api/v1/users/" + userID.String() + "/cart/items",
			map[string]any{"optionId": kernel.NewUUID().String(), "quantity": 0}, http.StatusBadRequest},
		{"rating out of range", http.MethodPost, "/api/v1/couriers",
			map[string]any{"name": "Kate", "phone": "+1", "rating": "5.1"}, http.StatusBadRequest},
		{"unknown payment", http.MethodGet, "/api/v1/payments/" + kernel.NewUUID().String(), nil, http.StatusNotFound},
		{"unknown route", http.MethodGet, "/api/v1/nowhere", nil, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, tt.method, tt.path, tt.body)

			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
			body := decode[httpin.ErrorResponse](t, rec)
			assert.Equal(t, tt.want, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}
