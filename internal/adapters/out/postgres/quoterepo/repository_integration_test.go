package quoterepo_test

import (
	"context"
	"testing"
	"time"

	"freight/internal/adapters/out/postgres/quoterepo"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/quote"
	"freight/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// QuoteRepositoryIntegrationTestSuite verifies quote persistence against PostgreSQL.
type QuoteRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *quoterepo.GormQuoteRepository
}

func (suite *QuoteRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&quoterepo.QuoteDTO{}))
}

func (suite *QuoteRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE quotes").Error)
	suite.repository = quoterepo.NewGormQuoteRepository(suite.db)
}

func (suite *QuoteRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QuoteRepositoryIntegrationTestSuite) TestAdd_RoundTripsBreakdown() {
	ctx := context.Background()
	q := suite.createQuote(kernel.NewUUID(), "28.75")

	suite.Require().NoError(suite.repository.Add(ctx, q))

	stored, err := suite.repository.Get(ctx, q.ID())
	suite.Require().NoError(err)

	raw := stored.Raw()
	suite.Equal(q.ShipmentID(), stored.ShipmentID())
	suite.Equal(q.CarrierID(), stored.CarrierID())
	suite.Equal("28.75", raw.Price.StringFixed(2))
	suite.Equal("25.00", raw.BaseRate.StringFixed(2))
	suite.Require().Len(raw.Surcharges, 1)
	suite.Equal("fuel", raw.Surcharges[0].Type)
	suite.Equal("3.75", raw.Surcharges[0].Amount.StringFixed(2))
	suite.Equal([]string{quote.ServiceDoorPickup, quote.ServiceDoorDelivery}, raw.ServicesIncluded)
	suite.Equal(kernel.TransportModeRoad, raw.TransportMode)
	suite.InDelta(50.0, raw.BillableWeight, 0.001)
	suite.False(stored.IsSelected())
}

func (suite *QuoteRepositoryIntegrationTestSuite) TestAdd_InvalidQuote() {
	err := suite.repository.Add(context.Background(), &quote.Quote{})
	suite.Require().ErrorIs(err, quote.ErrQuoteIsNotConstructed)
	suite.assertQuoteCount(0)
}

func (suite *QuoteRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	var notFound *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFound)
	suite.Equal("quote", notFound.ParamName)
}

func (suite *QuoteRepositoryIntegrationTestSuite) TestListByShipment_CheapestFirst() {
	ctx := context.Background()
	shipmentID := kernel.NewUUID()
	expensive := suite.createQuote(shipmentID, "120.00")
	cheap := suite.createQuote(shipmentID, "45.10")
	other := suite.createQuote(kernel.NewUUID(), "1.00")

	suite.Require().NoError(suite.repository.Add(ctx, expensive, cheap, other))

	quotes, err := suite.repository.ListByShipment(ctx, shipmentID)
	suite.Require().NoError(err)
	suite.Require().Len(quotes, 2)
	suite.Equal(cheap.ID(), quotes[0].ID())
	suite.Equal(expensive.ID(), quotes[1].ID())
}

func (suite *QuoteRepositoryIntegrationTestSuite) TestUpdate_SelectionState() {
	ctx := context.Background()
	q := suite.createQuote(kernel.NewUUID(), "10.00")
	suite.Require().NoError(suite.repository.Add(ctx, q))

	suite.Require().NoError(q.Select(time.Now()))
	suite.Require().NoError(suite.repository.Update(ctx, q))

	stored, err := suite.repository.Get(ctx, q.ID())
	suite.Require().NoError(err)
	suite.True(stored.IsSelected())

	missing := suite.createQuote(kernel.NewUUID(), "10.00")
	suite.Require().ErrorIs(suite.repository.Update(ctx, missing), errs.ErrObjectNotFound)
}

func (suite *QuoteRepositoryIntegrationTestSuite) createQuote(shipmentID kernel.UUID, price string) *quote.Quote {
	now := time.Now().UTC()
	q, err := quote.NewQuote(kernel.NewUUID(), shipmentID, quote.RawQuote{
		CarrierID: kernel.NewUUID(),
		Price:     decimal.RequireFromString(price),
		Currency:  "USD",
		BaseRate:  decimal.RequireFromString("25"),
		Surcharges: []quote.SurchargeLine{
			{Type: "fuel", Name: "Fuel", Amount: decimal.RequireFromString("3.75")},
		},
		SurchargeTotal:    decimal.RequireFromString("3.75"),
		InsuranceCost:     decimal.Zero,
		BillableWeight:    50,
		TransitDaysMin:    3,
		TransitDaysMax:    7,
		EstimatedDelivery: now.AddDate(0, 0, 7),
		TransportMode:     kernel.TransportModeRoad,
		ServicesIncluded:  []string{quote.ServiceDoorPickup, quote.ServiceDoorDelivery},
		ValidUntil:        now.AddDate(0, 0, 7),
	})
	suite.Require().NoError(err)
	return q
}

func (suite *QuoteRepositoryIntegrationTestSuite) assertQuoteCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&quoterepo.QuoteDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestQuoteRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QuoteRepositoryIntegrationTestSuite))
}
