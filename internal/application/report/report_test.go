package report

import (
	"context"
	"testing"

	"github.com/dealerdesk/backend/internal/domain/finance"
	"github.com/dealerdesk/backend/internal/domain/inventory"
	"github.com/dealerdesk/backend/internal/domain/sales"
	"github.com/dealerdesk/backend/internal/domain/shared"
	"github.com/dealerdesk/backend/internal/infrastructure/persistence"
	"github.com/dealerdesk/backend/tests/testutil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestDashboardService_Summary(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	ctx := context.Background()
	companyID := uuid.New()

	batches := persistence.NewGormBatchRepository(db)
	cars := persistence.NewGormCarRepository(db)
	customers := persistence.NewGormCustomerRepository(db)
	investors := persistence.NewGormInvestorRepository(db)

	b, err := inventory.NewBatch(companyID, "03", "", nil)
	require.NoError(t, err)
	require.NoError(t, batches.Create(ctx, b))

	for i, chassis := range []string{"D-1", "D-2", "D-3"} {
		car, err := inventory.NewCar(companyID, inventory.CarDetails{BatchNo: "03", ChassisNumber: chassis})
		require.NoError(t, err)
		if i == 0 {
			car.MarkSold()
		}
		require.NoError(t, cars.Create(ctx, car))
	}

	c, err := sales.NewCustomer(companyID, sales.Buyer{Name: "Buyer"}, sales.Vehicle{ChassisNumber: "D-1"}, dec("1000"), nil)
	require.NoError(t, err)
	_, err = c.AddPayment(sales.PaymentInput{AmountPaid: dec("250"), Method: sales.PaymentMethod{Type: sales.PaymentMethodBank}})
	require.NoError(t, err)
	require.NoError(t, customers.Create(ctx, c))

	inv, err := finance.NewInvestor(companyID, finance.InvestorDetails{BatchNo: "03", Name: "Sara", InvestAmount: dec("800"), AmountPaid: dec("300")})
	require.NoError(t, err)
	require.NoError(t, investors.Create(ctx, inv))

	svc := NewDashboardService(batches, cars, customers, investors, zaptest.NewLogger(t))
	summary, err := svc.Summary(ctx, companyID)
	require.NoError(t, err)

	assert.Equal(t, InventoryCounts{Batches: 1, Cars: 3, CarsInStock: 2, CarsSold: 1}, summary.Inventory)
	assert.Equal(t, int64(1), summary.Receivables.Customers)
	assert.True(t, summary.Receivables.Outstanding.Equal(dec("750")))
	assert.True(t, summary.Capital.Remaining.Equal(dec("500")))

	empty, err := svc.Summary(ctx, uuid.New())
	require.NoError(t, err)
	assert.Zero(t, empty.Inventory.Cars)
	assert.True(t, empty.Receivables.Outstanding.IsZero())
}

func TestAnalyticsService_BatchProfitability(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	ctx := context.Background()
	companyID := uuid.New()
	batches := persistence.NewGormBatchRepository(db)

	seed := func(no, sale, cost string) {
		b, err := inventory.NewBatch(companyID, no, "", nil)
		require.NoError(t, err)
		require.NoError(t, batches.Create(ctx, b))
		_, err = batches.UpdateTotal(ctx, b.ID, inventory.TotalKindSalePrice, dec(sale))
		require.NoError(t, err)
		_, err = batches.UpdateTotal(ctx, b.ID, inventory.TotalKindCost, dec(cost))
		require.NoError(t, err)
	}
	seed("A", "1000", "800")
	seed("B", "2000", "1000")
	seed("C", "0", "0")

	svc := NewAnalyticsService(batches, zaptest.NewLogger(t))
	page, err := svc.BatchProfitability(ctx, companyID, shared.Filter{})
	require.NoError(t, err)
	require.Len(t, page.Items, 3)

	assert.Equal(t, "B", page.Items[0].BatchNo)
	assert.True(t, page.Items[0].MarginPercent.Equal(dec("50")))
	assert.Equal(t, "A", page.Items[1].BatchNo)
	assert.True(t, page.Items[1].MarginPercent.Equal(dec("20")))
	assert.True(t, page.Items[2].MarginPercent.IsZero())
}
