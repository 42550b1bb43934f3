package gormdb_test

import (
	"context"
	"testing"
	"time"

	"orderdesk/internal/adapters/out/gormdb"
	"orderdesk/internal/core/domain/model/client"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/sequence"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite runs the unit of work against a real PostgreSQL
// database reached through lib/pq.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping PostgreSQL integration tests in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(30*time.Second)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gormdb.Open(gormdb.Options{Driver: gormdb.DriverPostgres, DSN: dsn, Logger: zerolog.Nop()})
	suite.Require().NoError(err)
	suite.db = db
	suite.factory = gormdb.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE clients, products, orders, order_lines, draft_orders, sequence_counters").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := suite.T().Context()
	uow := suite.factory.Create()
	c := newTestClient(suite.T())
	counter := newIssuedCounter(suite.T())

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ClientRepository().Add(ctx, c))
	suite.Require().NoError(uow.SequenceCounterRepository().Save(ctx, counter))
	suite.Require().NoError(uow.Commit(ctx))

	fresh := suite.factory.Create()
	_, err := fresh.ClientRepository().Get(ctx, c.ID())
	suite.Require().NoError(err)
	stored, err := fresh.SequenceCounterRepository().Get(ctx, "ORD")
	suite.Require().NoError(err)
	suite.Equal(1, stored.LastNumber())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAcrossRepositories() {
	ctx := suite.T().Context()
	uow := suite.factory.Create()
	c := newTestClient(suite.T())

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ClientRepository().Add(ctx, c))
	suite.Require().NoError(uow.SequenceCounterRepository().Save(ctx, newIssuedCounter(suite.T())))
	suite.Require().NoError(uow.Rollback(ctx))

	fresh := suite.factory.Create()
	_, err := fresh.ClientRepository().Get(ctx, c.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = fresh.SequenceCounterRepository().Get(ctx, "ORD")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCounter_LostUpdateIsDetected() {
	ctx := suite.T().Context()
	seed := suite.factory.Create()
	suite.Require().NoError(seed.SequenceCounterRepository().Save(ctx, newIssuedCounter(suite.T())))

	today := kernel.DateOf(time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC))
	uow1, uow2 := suite.factory.Create(), suite.factory.Create()
	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))
	defer func() { _ = uow2.Rollback(ctx) }()

	first, err := uow1.SequenceCounterRepository().Get(ctx, "ORD")
	suite.Require().NoError(err)
	second, err := uow2.SequenceCounterRepository().Get(ctx, "ORD")
	suite.Require().NoError(err)

	_, err = first.Next(today)
	suite.Require().NoError(err)
	suite.Require().NoError(uow1.SequenceCounterRepository().Save(ctx, first))
	suite.Require().NoError(uow1.Commit(ctx))

	_, err = second.Next(today)
	suite.Require().NoError(err)
	suite.Require().ErrorIs(uow2.SequenceCounterRepository().Save(ctx, second), errs.ErrConcurrentUpdate)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCounter_DuplicateInsertIsDetected() {
	ctx := suite.T().Context()
	suite.Require().NoError(suite.factory.Create().SequenceCounterRepository().Save(ctx, newIssuedCounter(suite.T())))

	err := suite.factory.Create().SequenceCounterRepository().Save(ctx, newIssuedCounter(suite.T()))

	suite.Require().ErrorIs(err, errs.ErrConcurrentUpdate)
}

func newTestClient(t *testing.T) *client.Client {
	t.Helper()
	c, err := client.NewClient(kernel.NewUUID(), "Ann", "Main St 1", "", time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func newIssuedCounter(t *testing.T) *sequence.Counter {
	t.Helper()
	c, err := sequence.NewCounter("ORD")
	if err != nil {
		t.Fatal(err)
	}
	if _, err = c.Next(kernel.DateOf(time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC))); err != nil {
		t.Fatal(err)
	}
	return c
}
