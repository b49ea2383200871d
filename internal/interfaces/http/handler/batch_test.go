package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	appfinance "github.com/dealerdesk/backend/internal/application/finance"
	appinventory "github.com/dealerdesk/backend/internal/application/inventory"
	"github.com/dealerdesk/backend/tests/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchHandler_Create(t *testing.T) {
	d := newDealer(t)
	owner := testutil.Principal(d.owner)

	testutil.RunHTTPTestCases(t, testutil.Endpoint{Method: http.MethodPost, Route: "/batches", Handler: d.batches.Create}, []testutil.HTTPTestCase{
		{
			Name:           "new batch starts with zero totals",
			Principal:      owner,
			Body:           map[string]any{"batchNo": "JP-2024-07", "description": "July shipment"},
			ExpectedStatus: http.StatusCreated,
			Validate: func(t *testing.T, w *httptest.ResponseRecorder) {
				b := testutil.JSONData[appinventory.BatchDTO](t, w)
				assert.Equal(t, "JP-2024-07", b.BatchNo)
				assert.True(t, b.TotalCost.IsZero())
				assert.True(t, b.Profit.IsZero())
			},
		},
		{
			Name:           "batch number taken",
			Principal:      owner,
			Body:           map[string]any{"batchNo": "JP-2024-07"},
			ExpectedStatus: http.StatusConflict,
			ExpectedCode:   "BATCH_NO_ALREADY_EXISTS",
		},
		{
			Name:           "batch number with spaces",
			Principal:      owner,
			Body:           map[string]any{"batchNo": "JP 2024"},
			ExpectedStatus: http.StatusBadRequest,
			ExpectedCode:   "VALIDATION_ERROR",
		},
	})
}

func TestBatchHandler_Totals(t *testing.T) {
	d := newDealer(t)
	ctx := context.Background()
	batch := d.batch(t, "B-300")
	owner := testutil.Principal(d.owner)

	for _, in := range []appfinance.CreateInvestorInput{
		{BatchNo: "B-300", Name: "Usman", InvestAmount: amount("300000")},
		{BatchNo: "B-300", Name: "Bilal", InvestAmount: amount("200000"), AmountPaid: amount("50000")},
	} {
		_, err := d.investorService.Create(ctx, d.owner.CompanyID, in)
		require.NoError(t, err)
	}

	testutil.RunHTTPTestCases(t, testutil.Endpoint{Method: http.MethodPost, Route: "/batches/:id/total-investment", Handler: d.batches.TotalInvestment}, []testutil.HTTPTestCase{
		{
			Name:           "sums every investor of the batch",
			Path:           "/batches/" + batch.ID.String() + "/total-investment",
			Principal:      owner,
			ExpectedStatus: http.StatusOK,
			Validate: func(t *testing.T, w *httptest.ResponseRecorder) {
				result := testutil.JSONData[appinventory.AggregationResult](t, w)
				assert.True(t, result.Total.Equal(amount("500000")), "got %s", result.Total)
				assert.Equal(t, 2, result.InvestorsCount)
				require.NotNil(t, result.Batch)
				assert.True(t, result.Batch.TotalInvestment.Equal(amount("500000")))
			},
		},
		{
			Name:           "unknown batch",
			Path:           "/batches/" + uuid.NewString() + "/total-investment",
			Principal:      owner,
			ExpectedStatus: http.StatusNotFound,
			ExpectedCode:   "BATCH_NOT_FOUND",
		},
	})

	expenses := testutil.Endpoint{Method: http.MethodPost, Route: "/batches/:id/expenses", Handler: d.batches.AddExpense}
	testutil.RunHTTPTestCases(t, expenses, []testutil.HTTPTestCase{
		{
			Name:           "port charges",
			Path:           "/batches/" + batch.ID.String() + "/expenses",
			Principal:      owner,
			Body:           map[string]any{"title": "Port charges", "amount": "12500.50"},
			ExpectedStatus: http.StatusCreated,
		},
		{
			Name:           "zero amount",
			Path:           "/batches/" + batch.ID.String() + "/expenses",
			Principal:      owner,
			Body:           map[string]any{"title": "Nothing", "amount": 0},
			ExpectedStatus: http.StatusBadRequest,
			ExpectedCode:   "VALIDATION_ERROR",
		},
	})

	w := testutil.ServeHTTPTestCase(t, testutil.Endpoint{Method: http.MethodPost, Route: "/batches/:id/total-expense", Handler: d.batches.TotalExpense}, testutil.HTTPTestCase{
		Path:      "/batches/" + batch.ID.String() + "/total-expense",
		Principal: owner,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	result := testutil.JSONData[appinventory.AggregationResult](t, w)
	assert.True(t, result.Total.Equal(amount("12500.50")), "got %s", result.Total)
	assert.Equal(t, 1, result.ExpensesCount)
}
