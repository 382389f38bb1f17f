//go:build integration

package queries_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/adapters/out/postgres/courierrepo"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// GetAllCouriersQueryHandlerTestSuite checks the raw SQL of the courier read
// model against the postgres column types.
type GetAllCouriersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetAllCouriersQueryHandler
}

func (suite *GetAllCouriersQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.AutoMigrate(db))
	suite.handler = queries.NewGetAllCouriersQueryHandler(db)
}

func (suite *GetAllCouriersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetAllCouriersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE couriers CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetAllCouriersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	result, err := suite.handler.Handle(context.Background(), queries.NewGetAllCouriersQuery())

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetAllCouriersQueryHandlerTestSuite) TestHandle_WithCouriers_ReturnsAllCouriersOrderedByName() {
	charlie := suite.saveCourier("Charlie", courier.Busy, "3.4", 3)
	alice := suite.saveCourier("Alice", courier.Free, "4.9", 1)
	bob := suite.saveCourier("Bob", courier.Offline, "4.1", 0)

	result, err := suite.handler.Handle(context.Background(), queries.NewGetAllCouriersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)

	for i, expected := range []*courier.Courier{alice, bob, charlie} {
		suite.True(expected.ID().IsEqual(result[i].ID))
		suite.Equal(expected.Name(), result[i].Name)
		suite.Equal(expected.Phone(), result[i].Phone)
		suite.Equal(expected.Status(), result[i].Status)
		suite.True(expected.Rating().Equal(result[i].Rating))
		suite.Equal(expected.ActiveOrders(), result[i].ActiveOrders)
	}
}

func (suite *GetAllCouriersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	result, err := suite.handler.Handle(context.Background(), queries.GetAllCouriersQuery{})

	suite.Require().ErrorIs(err, queries.ErrGetAllCouriersQueryIsNotConstructed)
	suite.Nil(result)
}

func (suite *GetAllCouriersQueryHandlerTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	for range 50 {
		suite.saveCourier("Courier", courier.Free, "4.0", 0)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := suite.handler.Handle(ctx, queries.NewGetAllCouriersQuery())

	suite.Require().Error(err)
	suite.Nil(result)
}

func (suite *GetAllCouriersQueryHandlerTestSuite) saveCourier(
	name string,
	status courier.Status,
	rating string,
	activeOrders int,
) *courier.Courier {
	c, err := courier.RestoreCourier(kernel.NewUUID(), name, "+15550100", status, decimal.RequireFromString(rating), activeOrders)
	suite.Require().NoError(err)

	repo := courierrepo.NewGormCourierRepository(suite.db, noopTracker{})
	suite.Require().NoError(repo.Add(context.Background(), c))
	return c
}

func TestGetAllCouriersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAllCouriersQueryHandlerTestSuite))
}

type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}
