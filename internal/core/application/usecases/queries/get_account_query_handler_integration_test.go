package queries_test

import (
	"context"
	"testing"
	"time"

	"solarstore/internal/adapters/out/postgres/accountrepo"
	"solarstore/internal/core/application/usecases/queries"
	"solarstore/internal/core/domain/model/account"
	"solarstore/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// GetAccountQueryHandlerTestSuite verifies the read side of the bank account
// endpoint, in particular that an unset account surfaces as not-found rather
// than as the placeholder triple.
type GetAccountQueryHandlerTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	handler    queries.GetAccountQueryHandler
	repository *accountrepo.GormAccountRepository
}

func (suite *GetAccountQueryHandlerTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&accountrepo.AccountDTO{}))

	suite.handler = queries.NewGetAccountQueryHandler(db)
	suite.repository = accountrepo.NewGormAccountRepository(db)
}

func (suite *GetAccountQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE bank_accounts").Error)
}

func (suite *GetAccountQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetAccountQueryHandlerTestSuite) TestHandle_NoRecord_NotFound() {
	_, err := suite.handler.Handle(context.Background(), queries.NewGetAccountQuery())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetAccountQueryHandlerTestSuite) TestHandle_ConfiguredRecord_ReturnsDetails() {
	ctx := context.Background()
	details, err := account.NewDetails("0123456789", "First Bank", "PFOS Enterprise")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Save(ctx, details))

	result, err := suite.handler.Handle(ctx, queries.NewGetAccountQuery())

	suite.Require().NoError(err)
	suite.Equal("0123456789", result.AccountNumber)
	suite.Equal("First Bank", result.BankName)
	suite.Equal("PFOS Enterprise", result.AccountName)
}

func TestGetAccountQueryHandlerTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(GetAccountQueryHandlerTestSuite))
}
