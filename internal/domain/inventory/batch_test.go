package inventory

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBatch(t *testing.T) {
	companyID := uuid.New()

	t.Run("creates batch with zero totals", func(t *testing.T) {
		b, err := NewBatch(companyID, " 03 ", "March shipment", nil)
		require.NoError(t, err)
		assert.Equal(t, "03", b.BatchNo)
		assert.Equal(t, companyID, b.CompanyID)
		assert.True(t, b.TotalCost.IsZero())
		assert.True(t, b.Profit.IsZero())
	})

	t.Run("rejects empty or malformed batch numbers", func(t *testing.T) {
		_, err := NewBatch(companyID, "", "", nil)
		assert.Error(t, err)
		_, err = NewBatch(companyID, "-03", "", nil)
		assert.Error(t, err)
		_, err = NewBatch(companyID, "03 A", "", nil)
		assert.Error(t, err)
	})

	t.Run("rejects missing company", func(t *testing.T) {
		_, err := NewBatch(uuid.Nil, "03", "", nil)
		assert.Error(t, err)
	})
}

func TestBatch_SetTotalMaintainsProfit(t *testing.T) {
	b, err := NewBatch(uuid.New(), "B-1", "", nil)
	require.NoError(t, err)

	b.SetTotal(TotalKindSalePrice, d("50000"))
	b.SetTotal(TotalKindCost, d("30000"))
	b.SetTotal(TotalKindExpense, d("1500.50"))
	b.SetTotal(TotalKindInvestment, d("99999"))

	assert.Equal(t, "18499.50", b.Profit.StringFixed(2))
	assert.Equal(t, "99999", b.Total(TotalKindInvestment).String())
}

func TestBatch_UpdateDetailsKeepsBatchNo(t *testing.T) {
	b, err := NewBatch(uuid.New(), "B-1", "old", nil)
	require.NoError(t, err)

	desc := "new"
	arrival := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	b.UpdateDetails(&desc, &arrival)

	assert.Equal(t, "B-1", b.BatchNo)
	assert.Equal(t, "new", b.Description)
	assert.Equal(t, arrival, *b.ArrivalDate)
	assert.Equal(t, 2, b.Version)
}

func TestTotalKind_Column(t *testing.T) {
	assert.Equal(t, "total_cost", TotalKindCost.Column())
	assert.Equal(t, "total_sale_price", TotalKindSalePrice.Column())
	assert.Equal(t, "total_investment", TotalKindInvestment.Column())
	assert.Equal(t, "total_expense", TotalKindExpense.Column())
	assert.Equal(t, "", TotalKind("bogus").Column())
}

func TestNewBatchExpense(t *testing.T) {
	b, err := NewBatch(uuid.New(), "B-1", "", nil)
	require.NoError(t, err)

	e, err := NewBatchExpense(b, "Yard rent", d("250"), nil, "")
	require.NoError(t, err)
	assert.Equal(t, b.ID, e.BatchID)
	assert.Equal(t, b.CompanyID, e.CompanyID)
	assert.False(t, e.Date.IsZero())

	_, err = NewBatchExpense(b, "Yard rent", d("0"), nil, "")
	assert.Error(t, err)
	_, err = NewBatchExpense(b, " ", d("1"), nil, "")
	assert.Error(t, err)
}
