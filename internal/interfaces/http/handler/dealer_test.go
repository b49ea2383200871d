package handler

import (
	"context"
	"testing"

	appfinance "github.com/dealerdesk/backend/internal/application/finance"
	appinventory "github.com/dealerdesk/backend/internal/application/inventory"
	appsales "github.com/dealerdesk/backend/internal/application/sales"
	"github.com/dealerdesk/backend/internal/domain/identity"
	"github.com/dealerdesk/backend/internal/infrastructure/persistence"
	"github.com/dealerdesk/backend/tests/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// dealer wires the inventory, finance and sales handlers over one SQLite
// database, acting for a single company.
type dealer struct {
	batches   *BatchHandler
	cars      *CarHandler
	investors *InvestorHandler
	customers *CustomerHandler

	batchService    *appinventory.BatchService
	carService      *appinventory.CarService
	investorService *appfinance.InvestorService
	customerService *appsales.CustomerService

	owner identity.Principal
}

func newDealer(t *testing.T) *dealer {
	t.Helper()
	db := testutil.NewSQLiteDB(t)
	log := zaptest.NewLogger(t)

	batchRepo := persistence.NewGormBatchRepository(db)
	expenseRepo := persistence.NewGormBatchExpenseRepository(db)
	carRepo := persistence.NewGormCarRepository(db)
	customerRepo := persistence.NewGormCustomerRepository(db)
	investorRepo := persistence.NewGormInvestorRepository(db)

	d := &dealer{
		batchService:    appinventory.NewBatchService(batchRepo, expenseRepo, log),
		carService:      appinventory.NewCarService(carRepo, batchRepo, log),
		investorService: appfinance.NewInvestorService(investorRepo, batchRepo, log),
		customerService: appsales.NewCustomerService(customerRepo, carRepo, nil, log),
		owner:           testutil.CompanyPrincipal(testutil.TestCompanyID()),
	}
	aggregator := appinventory.NewBatchAggregator(batchRepo, expenseRepo, carRepo, customerRepo, investorRepo, nil, log)

	base := NewBaseHandler(false)
	d.batches = NewBatchHandler(base, d.batchService, aggregator)
	d.cars = NewCarHandler(base, d.carService)
	d.investors = NewInvestorHandler(base, d.investorService)
	d.customers = NewCustomerHandler(base, d.customerService)
	return d
}

func (d *dealer) batch(t *testing.T, batchNo string) *appinventory.BatchDTO {
	t.Helper()
	b, err := d.batchService.Create(context.Background(), d.owner.CompanyID, appinventory.CreateBatchInput{BatchNo: batchNo})
	require.NoError(t, err)
	return b
}

func (d *dealer) car(t *testing.T, batchNo, chassis string) *appinventory.CarDTO {
	t.Helper()
	c, err := d.carService.Create(context.Background(), d.owner.CompanyID, appinventory.CreateCarInput{
		BatchNo:       batchNo,
		ChassisNumber: chassis,
		Make:          "Toyota",
	})
	require.NoError(t, err)
	return c
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
