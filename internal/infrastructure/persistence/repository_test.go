package persistence

import (
	"context"
	"testing"

	"github.com/dealerdesk/backend/internal/domain/finance"
	"github.com/dealerdesk/backend/internal/domain/identity"
	"github.com/dealerdesk/backend/internal/domain/inventory"
	"github.com/dealerdesk/backend/internal/domain/sales"
	"github.com/dealerdesk/backend/internal/domain/shared"
	"github.com/dealerdesk/backend/internal/infrastructure/persistence/models"
	"github.com/dealerdesk/backend/tests/testutil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func init() {
	identity.SetPasswordCost(bcrypt.MinCost)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func seedCompany(t *testing.T, db *gorm.DB, email string) *identity.Company {
	t.Helper()
	c, err := identity.NewCompany("Owner", "Motors", email, "Password123")
	require.NoError(t, err)
	require.NoError(t, NewGormCompanyRepository(db).Create(context.Background(), c))
	return c
}

func seedBatch(t *testing.T, db *gorm.DB, companyID uuid.UUID, batchNo string) *inventory.Batch {
	t.Helper()
	b, err := inventory.NewBatch(companyID, batchNo, "", nil)
	require.NoError(t, err)
	require.NoError(t, NewGormBatchRepository(db).Create(context.Background(), b))
	return b
}

func TestGormCompanyRepository(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewGormCompanyRepository(db)
	ctx := context.Background()

	t.Run("email is unique and matched case-insensitively", func(t *testing.T) {
		c := seedCompany(t, db, "owner@motors.test")

		found, err := repo.FindByEmail(ctx, "OWNER@motors.test")
		require.NoError(t, err)
		assert.Equal(t, c.ID, found.ID)
		assert.Equal(t, identity.StatusActive, found.Status)

		dup, err := identity.NewCompany("Other", "Other Motors", "owner@motors.test", "Password123")
		require.NoError(t, err)
		assert.ErrorIs(t, repo.Create(ctx, dup), shared.ErrAlreadyExists)

		exists, err := repo.ExistsByEmail(ctx, "owner@motors.test")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("update persists status and pin", func(t *testing.T) {
		c := seedCompany(t, db, "status@motors.test")
		require.NoError(t, c.SetStatus(identity.StatusInactive))
		require.NoError(t, c.SetPIN("1234"))
		require.NoError(t, repo.Update(ctx, c))

		found, err := repo.FindByID(ctx, c.ID)
		require.NoError(t, err)
		assert.False(t, found.IsActive())
		assert.True(t, found.VerifyPIN("1234"))
	})

	t.Run("list filters by search and status", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.Search = "STATUS@"
		companies, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		require.Len(t, companies, 1)

		filter = shared.DefaultFilter()
		filter.Filters["status"] = "active"
		count, err := repo.Count(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("delete cascades tenant data", func(t *testing.T) {
		c := seedCompany(t, db, "cascade@motors.test")
		other := seedCompany(t, db, "keep@motors.test")
		seedBatch(t, db, c.ID, "01")
		seedBatch(t, db, other.ID, "01")

		car, err := inventory.NewCar(c.ID, inventory.CarDetails{BatchNo: "01", ChassisNumber: "ABC-1", Financing: &inventory.Financing{CustomsDuty: dec("10")}})
		require.NoError(t, err)
		require.NoError(t, NewGormCarRepository(db).Create(ctx, car))

		customer, err := sales.NewCustomer(c.ID, sales.Buyer{Name: "Buyer"}, sales.Vehicle{ChassisNumber: "ABC-1"}, dec("100"), nil)
		require.NoError(t, err)
		_, err = customer.AddPayment(sales.PaymentInput{AmountPaid: dec("40"), Method: sales.PaymentMethod{Type: sales.PaymentMethodCash}})
		require.NoError(t, err)
		require.NoError(t, NewGormCustomerRepository(db).Create(ctx, customer))

		require.NoError(t, repo.Delete(ctx, c.ID))

		_, err = repo.FindByID(ctx, c.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		for _, m := range []any{&models.BatchModel{}, &models.CarModel{}, &models.CustomerModel{}} {
			var n int64
			require.NoError(t, db.Model(m).Where("company_id = ?", c.ID).Count(&n).Error)
			assert.Zero(t, n)
		}
		var financings, payments int64
		require.NoError(t, db.Model(&models.CarFinancingModel{}).Count(&financings).Error)
		require.NoError(t, db.Model(&models.CustomerPaymentModel{}).Count(&payments).Error)
		assert.Zero(t, financings)
		assert.Zero(t, payments)

		var kept int64
		require.NoError(t, db.Model(&models.BatchModel{}).Where("company_id = ?", other.ID).Count(&kept).Error)
		assert.Equal(t, int64(1), kept)

		assert.ErrorIs(t, repo.Delete(ctx, c.ID), shared.ErrNotFound)
	})
}

func TestGormSubUserRepository(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewGormSubUserRepository(db)
	ctx := context.Background()
	company := seedCompany(t, db, "owner@subs.test")

	u, err := identity.NewSubUser(company.ID, "Clerk", "clerk@subs.test", "Password123", identity.Access{Investors: true})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, u))

	found, err := repo.FindByEmail(ctx, "Clerk@Subs.test")
	require.NoError(t, err)
	assert.Equal(t, company.ID, found.CompanyID)
	assert.True(t, found.Access.Investors)
	assert.False(t, found.Access.CarManagement)

	access := identity.FullAccess()
	_, err = found.Apply(identity.SubUserUpdate{Access: &access})
	require.NoError(t, err)
	require.NoError(t, repo.Update(ctx, found))

	reloaded, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, identity.FullAccess(), reloaded.Access)

	count, err := repo.Count(ctx, &company.ID, shared.DefaultFilter())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	otherCompany := uuid.New()
	count, err = repo.Count(ctx, &otherCompany, shared.DefaultFilter())
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, repo.Delete(ctx, u.ID))
	assert.ErrorIs(t, repo.Delete(ctx, u.ID), shared.ErrNotFound)
}

func TestGormBatchRepository(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewGormBatchRepository(db)
	ctx := context.Background()
	companyA, companyB := uuid.New(), uuid.New()

	t.Run("batch number is unique per company only", func(t *testing.T) {
		seedBatch(t, db, companyA, "B-1")
		seedBatch(t, db, companyB, "B-1")

		dup, err := inventory.NewBatch(companyA, "B-1", "", nil)
		require.NoError(t, err)
		assert.ErrorIs(t, repo.Create(ctx, dup), shared.ErrAlreadyExists)
	})

	t.Run("update total recomputes profit atomically", func(t *testing.T) {
		b := seedBatch(t, db, companyA, "B-2")

		updated, err := repo.UpdateTotal(ctx, b.ID, inventory.TotalKindSalePrice, dec("50000"))
		require.NoError(t, err)
		assert.True(t, updated.TotalSalePrice.Equal(dec("50000")))
		assert.True(t, updated.Profit.Equal(dec("50000")))

		updated, err = repo.UpdateTotal(ctx, b.ID, inventory.TotalKindCost, dec("30000"))
		require.NoError(t, err)
		assert.True(t, updated.Profit.Equal(dec("20000")))

		updated, err = repo.UpdateTotal(ctx, b.ID, inventory.TotalKindExpense, dec("1500"))
		require.NoError(t, err)
		assert.True(t, updated.Profit.Equal(dec("18500")))

		updated, err = repo.UpdateTotal(ctx, b.ID, inventory.TotalKindInvestment, dec("9000"))
		require.NoError(t, err)
		assert.True(t, updated.TotalInvestment.Equal(dec("9000")))
		assert.True(t, updated.Profit.Equal(dec("18500")), "investment does not move profit")
	})

	t.Run("update total on missing batch", func(t *testing.T) {
		_, err := repo.UpdateTotal(ctx, uuid.New(), inventory.TotalKindCost, dec("1"))
		assert.ErrorIs(t, err, shared.ErrNotFound)

		_, err = repo.UpdateTotal(ctx, uuid.New(), inventory.TotalKind("bogus"), dec("1"))
		assert.Error(t, err)
	})

	t.Run("update keeps totals and batch number", func(t *testing.T) {
		b, err := repo.FindByBatchNo(ctx, companyA, "B-2")
		require.NoError(t, err)
		desc := "re-described"
		b.UpdateDetails(&desc, nil)
		require.NoError(t, repo.Update(ctx, b))

		found, err := repo.FindByIDForCompany(ctx, companyA, b.ID)
		require.NoError(t, err)
		assert.Equal(t, "re-described", found.Description)
		assert.Equal(t, "B-2", found.BatchNo)
		assert.True(t, found.TotalSalePrice.Equal(dec("50000")))

		_, err = repo.FindByIDForCompany(ctx, companyB, b.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("refs and references", func(t *testing.T) {
		refs, err := repo.ListRefs(ctx, &companyA)
		require.NoError(t, err)
		require.Len(t, refs, 2)
		assert.Equal(t, "B-1", refs[0].BatchNo)

		all, err := repo.ListRefs(ctx, nil)
		require.NoError(t, err)
		assert.Len(t, all, 3)

		car, err := inventory.NewCar(companyA, inventory.CarDetails{BatchNo: "B-1", ChassisNumber: "REF-1"})
		require.NoError(t, err)
		require.NoError(t, NewGormCarRepository(db).Create(ctx, car))

		cars, investors, err := repo.CountReferences(ctx, companyA, "B-1")
		require.NoError(t, err)
		assert.Equal(t, int64(1), cars)
		assert.Zero(t, investors)

		cars, _, err = repo.CountReferences(ctx, companyB, "B-1")
		require.NoError(t, err)
		assert.Zero(t, cars)
	})

	t.Run("delete removes expenses", func(t *testing.T) {
		b := seedBatch(t, db, companyB, "B-9")
		expenses := NewGormBatchExpenseRepository(db)
		e, err := inventory.NewBatchExpense(b, "Port", dec("250"), nil, "")
		require.NoError(t, err)
		require.NoError(t, expenses.Create(ctx, e))

		list, err := expenses.FindByBatch(ctx, b.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.True(t, list[0].Amount.Equal(dec("250")))

		require.NoError(t, repo.Delete(ctx, b.ID))
		_, err = expenses.FindByID(ctx, e.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormCarRepository(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewGormCarRepository(db)
	ctx := context.Background()
	companyA, companyB := uuid.New(), uuid.New()

	financing := &inventory.Financing{
		AuctionPrice: inventory.CostTriple{Amount: dec("1000"), Rate: dec("1.5"), TotalAmount: dec("1500")},
		CustomsDuty:  dec("200"),
	}
	car, err := inventory.NewCar(companyA, inventory.CarDetails{BatchNo: "03", ChassisNumber: "nze-161 001", Make: "toyota", Financing: financing})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, car))

	t.Run("financing round trips", func(t *testing.T) {
		found, err := repo.FindByChassis(ctx, companyA, "NZE-161001")
		require.NoError(t, err)
		require.NotNil(t, found.Financing)
		assert.True(t, found.TotalCost().Equal(dec("1700")))
		assert.True(t, found.Financing.AuctionPrice.Rate.Equal(dec("1.5")))
		assert.Equal(t, "Toyota", found.Make)
	})

	t.Run("chassis unique per company", func(t *testing.T) {
		dup, err := inventory.NewCar(companyA, inventory.CarDetails{ChassisNumber: "NZE-161001"})
		require.NoError(t, err)
		assert.ErrorIs(t, repo.Create(ctx, dup), shared.ErrAlreadyExists)

		elsewhere, err := inventory.NewCar(companyB, inventory.CarDetails{ChassisNumber: "NZE-161001"})
		require.NoError(t, err)
		assert.NoError(t, repo.Create(ctx, elsewhere))

		exists, err := repo.ExistsByChassis(ctx, companyA, "nze-161001", nil)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByChassis(ctx, companyA, "NZE-161001", &car.ID)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("update replaces financing", func(t *testing.T) {
		found, err := repo.FindByIDForCompany(ctx, companyA, car.ID)
		require.NoError(t, err)
		sold := inventory.CarStatusSold
		require.NoError(t, found.Apply(inventory.CarUpdate{Status: &sold, Financing: &inventory.Financing{Miscellaneous: dec("5")}}))
		require.NoError(t, repo.Update(ctx, found))

		cars, err := repo.FindByBatch(ctx, companyA, "03")
		require.NoError(t, err)
		require.Len(t, cars, 1)
		assert.True(t, cars[0].TotalCost().Equal(dec("5")))
		assert.Equal(t, inventory.CarStatusSold, cars[0].Status)

		var rows int64
		require.NoError(t, db.Model(&models.CarFinancingModel{}).Where("car_id = ?", car.ID).Count(&rows).Error)
		assert.Equal(t, int64(1), rows)
	})

	t.Run("list and counts", func(t *testing.T) {
		second, err := inventory.NewCar(companyA, inventory.CarDetails{BatchNo: "04", ChassisNumber: "XYZ-2"})
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, second))

		filter := inventory.CarFilter{Filter: shared.DefaultFilter(), BatchNo: "04"}
		cars, err := repo.FindAll(ctx, companyA, filter)
		require.NoError(t, err)
		require.Len(t, cars, 1)
		assert.Nil(t, cars[0].Financing)

		filter = inventory.CarFilter{Filter: shared.DefaultFilter(), Status: inventory.CarStatusSold}
		count, err := repo.Count(ctx, companyA, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		byStatus, err := repo.CountByStatus(ctx, companyA)
		require.NoError(t, err)
		assert.Equal(t, int64(1), byStatus[inventory.CarStatusSold])
		assert.Equal(t, int64(1), byStatus[inventory.CarStatusInStock])
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, car.ID))
		_, err := repo.FindByIDForCompany(ctx, companyA, car.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, car.ID), shared.ErrNotFound)
	})
}

func TestGormInvestorRepository(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewGormInvestorRepository(db)
	ctx := context.Background()
	companyID := uuid.New()

	inv, err := finance.NewInvestor(companyID, finance.InvestorDetails{BatchNo: "03", Name: "sara", InvestAmount: dec("10000"), AmountPaid: dec("2500")})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, inv))

	t.Run("remaining is derived on save even when the entity is stale", func(t *testing.T) {
		inv.AmountPaid = dec("4000")
		inv.RemainingAmount = dec("123")
		require.NoError(t, repo.Update(ctx, inv))

		found, err := repo.FindByIDForCompany(ctx, companyID, inv.ID)
		require.NoError(t, err)
		assert.True(t, found.RemainingAmount.Equal(dec("6000")), found.RemainingAmount.String())
	})

	t.Run("capital summary", func(t *testing.T) {
		second, err := finance.NewInvestor(companyID, finance.InvestorDetails{BatchNo: "04", Name: "omar", InvestAmount: dec("5000")})
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, second))

		capital, err := repo.Capital(ctx, companyID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), capital.Investors)
		assert.True(t, capital.Invested.Equal(dec("15000")))
		assert.True(t, capital.Remaining.Equal(dec("11000")))

		list, err := repo.FindByBatch(ctx, companyID, "03")
		require.NoError(t, err)
		require.Len(t, list, 1)

		count, err := repo.Count(ctx, companyID, finance.InvestorFilter{Filter: shared.DefaultFilter(), BatchNo: "04"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("other company cannot see the investor", func(t *testing.T) {
		_, err := repo.FindByIDForCompany(ctx, uuid.New(), inv.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormCustomerRepository(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewGormCustomerRepository(db)
	ctx := context.Background()
	companyID := uuid.New()
	cash := sales.PaymentMethod{Type: sales.PaymentMethodCash}

	customer, err := sales.NewCustomer(companyID, sales.Buyer{Name: "ali"}, sales.Vehicle{ChassisNumber: "CH-1"}, dec("1000"), nil)
	require.NoError(t, err)
	_, err = customer.AddPayment(sales.PaymentInput{AmountPaid: dec("300"), Method: cash})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, customer))

	t.Run("ledger is loaded in installment order", func(t *testing.T) {
		found, err := repo.FindByIDForCompany(ctx, companyID, customer.ID)
		require.NoError(t, err)
		require.Len(t, found.Payments, 1)

		_, err = found.AddPayment(sales.PaymentInput{AmountPaid: dec("200"), Method: sales.PaymentMethod{Type: sales.PaymentMethodBank, BankName: "HBL"}})
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, found))

		reloaded, err := repo.FindByIDForCompany(ctx, companyID, customer.ID)
		require.NoError(t, err)
		require.Len(t, reloaded.Payments, 2)
		assert.Equal(t, 1, reloaded.Payments[0].InstallmentNumber)
		assert.Equal(t, 2, reloaded.Payments[1].InstallmentNumber)
		assert.Equal(t, "HBL", reloaded.Payments[1].Method.BankName)
		assert.True(t, reloaded.Sale.PaidAmount.Equal(dec("500")))
		assert.True(t, reloaded.Payments[1].RemainingAfterPayment.Equal(dec("500")))
		assert.Equal(t, sales.PaymentStatusPartial, reloaded.Sale.PaymentStatus)
	})

	t.Run("lookup by chassis set", func(t *testing.T) {
		other, err := sales.NewCustomer(companyID, sales.Buyer{Name: "zara"}, sales.Vehicle{ChassisNumber: "CH-2"}, dec("2500"), nil)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, other))

		found, err := repo.FindByChassisNumbers(ctx, companyID, []string{"CH-1", "CH-2", "CH-9"})
		require.NoError(t, err)
		assert.Len(t, found, 2)

		found, err = repo.FindByChassisNumbers(ctx, uuid.New(), []string{"CH-1"})
		require.NoError(t, err)
		assert.Empty(t, found)

		found, err = repo.FindByChassisNumbers(ctx, companyID, nil)
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("receivables", func(t *testing.T) {
		summary, err := repo.Receivables(ctx, companyID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), summary.Customers)
		assert.True(t, summary.SalesTotal.Equal(dec("3500")))
		assert.True(t, summary.Received.Equal(dec("500")))
		assert.True(t, summary.Outstanding.Equal(dec("3000")))

		filter := sales.CustomerFilter{Filter: shared.DefaultFilter(), PaymentStatus: sales.PaymentStatusPending}
		pending, err := repo.FindAll(ctx, companyID, filter)
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, "CH-2", pending[0].Vehicle.ChassisNumber)
	})

	t.Run("delete removes the ledger", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, customer.ID))
		var n int64
		require.NoError(t, db.Model(&models.CustomerPaymentModel{}).Where("customer_id = ?", customer.ID).Count(&n).Error)
		assert.Zero(t, n)
	})
}

func TestGormCustomerRepository_StaleSave(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewGormCustomerRepository(db)
	ctx := context.Background()
	companyID := uuid.New()
	cash := sales.PaymentMethod{Type: sales.PaymentMethodCash}

	customer, err := sales.NewCustomer(companyID, sales.Buyer{Name: "ali"}, sales.Vehicle{ChassisNumber: "CH-1"}, dec("1000"), nil)
	require.NoError(t, err)
	_, err = customer.AddPayment(sales.PaymentInput{AmountPaid: dec("300"), Method: cash})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, customer))

	t.Run("older copy cannot overwrite a newer ledger", func(t *testing.T) {
		first, err := repo.FindByIDForCompany(ctx, companyID, customer.ID)
		require.NoError(t, err)
		second, err := repo.FindByIDForCompany(ctx, companyID, customer.ID)
		require.NoError(t, err)

		_, err = first.AddPayment(sales.PaymentInput{AmountPaid: dec("200"), Method: cash})
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, first))

		require.NoError(t, second.UpdateBuyer(sales.Buyer{Name: "ali raza"}))
		assert.ErrorIs(t, repo.Save(ctx, second), shared.ErrOptimisticLock)

		reloaded, err := repo.FindByIDForCompany(ctx, companyID, customer.ID)
		require.NoError(t, err)
		require.Len(t, reloaded.Payments, 2)
		assert.True(t, reloaded.Sale.PaidAmount.Equal(dec("500")))
		assert.Equal(t, "Ali", reloaded.Buyer.Name)
	})

	t.Run("saved copy keeps writing", func(t *testing.T) {
		current, err := repo.FindByIDForCompany(ctx, companyID, customer.ID)
		require.NoError(t, err)

		require.NoError(t, current.UpdateBuyer(sales.Buyer{Name: "ali raza"}))
		require.NoError(t, repo.Save(ctx, current))
		_, err = current.AddPayment(sales.PaymentInput{AmountPaid: dec("100"), Method: cash})
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, current))

		reloaded, err := repo.FindByIDForCompany(ctx, companyID, customer.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ali Raza", reloaded.Buyer.Name)
		assert.Len(t, reloaded.Payments, 3)
	})

	t.Run("deleted customer is not found", func(t *testing.T) {
		gone, err := sales.NewCustomer(companyID, sales.Buyer{Name: "omar"}, sales.Vehicle{ChassisNumber: "CH-7"}, dec("900"), nil)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, gone))
		require.NoError(t, repo.Delete(ctx, gone.ID))

		assert.ErrorIs(t, repo.Save(ctx, gone), shared.ErrNotFound)
	})
}
