package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	appsales "github.com/dealerdesk/backend/internal/application/sales"
	"github.com/dealerdesk/backend/internal/domain/inventory"
	"github.com/dealerdesk/backend/internal/domain/sales"
	"github.com/dealerdesk/backend/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerHandler_Create(t *testing.T) {
	d := newDealer(t)
	d.batch(t, "B-500")
	car := d.car(t, "B-500", "ZRE142-7788")
	owner := testutil.Principal(d.owner)

	testutil.RunHTTPTestCases(t, testutil.Endpoint{Method: http.MethodPost, Route: "/customers", Handler: d.customers.Create}, []testutil.HTTPTestCase{
		{
			Name:      "sale with a down payment",
			Principal: owner,
			Body: map[string]any{
				"buyer":     map[string]any{"name": "Sana Iqbal", "phone": "0321-5550000"},
				"vehicle":   map[string]any{"chassisNumber": "ZRE142-7788", "make": "Toyota"},
				"salePrice": "2500000",
				"initialPayment": map[string]any{
					"amountPaid":    "1000000",
					"paymentMethod": map[string]any{"type": "Bank", "bankName": "HBL"},
				},
			},
			ExpectedStatus: http.StatusCreated,
			Validate: func(t *testing.T, w *httptest.ResponseRecorder) {
				c := testutil.JSONData[appsales.CustomerDTO](t, w)
				require.Len(t, c.Payments, 1)
				assert.True(t, c.Payments[0].RemainingAfterPayment.Equal(amount("1500000")))
				assert.Equal(t, sales.PaymentStatusPartial, c.Sale.PaymentStatus)

				stored, err := d.carService.Get(context.Background(), d.owner.CompanyID, car.ID)
				require.NoError(t, err)
				assert.Equal(t, inventory.CarStatusSold, stored.Status)
			},
		},
		{
			Name:      "down payment above the price",
			Principal: owner,
			Body: map[string]any{
				"buyer":     map[string]any{"name": "Sana Iqbal"},
				"vehicle":   map[string]any{"chassisNumber": "ZRE142-9999"},
				"salePrice": "100000",
				"initialPayment": map[string]any{
					"amountPaid":    "150000",
					"paymentMethod": map[string]any{"type": "Cash"},
				},
			},
			ExpectedStatus: http.StatusBadRequest,
			ExpectedCode:   "PAYMENT_EXCEEDS_REMAINING",
		},
		{
			Name:      "unknown payment method",
			Principal: owner,
			Body: map[string]any{
				"buyer":     map[string]any{"name": "Sana Iqbal"},
				"vehicle":   map[string]any{"chassisNumber": "ZRE142-9999"},
				"salePrice": "100000",
				"initialPayment": map[string]any{
					"amountPaid":    "1000",
					"paymentMethod": map[string]any{"type": "Barter"},
				},
			},
			ExpectedStatus: http.StatusBadRequest,
			ExpectedCode:   "VALIDATION_ERROR",
		},
	})
}

func TestCustomerHandler_Payments(t *testing.T) {
	d := newDealer(t)
	ctx := context.Background()
	customer, err := d.customerService.Create(ctx, d.owner.CompanyID, appsales.CreateCustomerInput{
		Buyer:     appsales.BuyerDTO{Name: "Kamran Ali"},
		Vehicle:   appsales.VehicleDTO{ChassisNumber: "GK5-1234"},
		SalePrice: amount("900000"),
		InitialPayment: &appsales.PaymentInput{
			AmountPaid:    amount("300000"),
			PaymentMethod: appsales.PaymentMethodDTO{Type: sales.PaymentMethodCash},
		},
	})
	require.NoError(t, err)
	owner := testutil.Principal(d.owner)
	paymentsPath := "/customers/" + customer.ID.String() + "/payments"

	var second appsales.LedgerResult
	add := testutil.Endpoint{Method: http.MethodPost, Route: "/customers/:id/payments", Handler: d.customers.AddPayment}
	testutil.RunHTTPTestCases(t, add, []testutil.HTTPTestCase{
		{
			Name:      "second installment",
			Path:      paymentsPath,
			Principal: owner,
			Body: map[string]any{
				"amountPaid":    "400000",
				"paymentMethod": map[string]any{"type": "Cheque", "chequeNumber": "000451"},
			},
			ExpectedStatus: http.StatusCreated,
			Validate: func(t *testing.T, w *httptest.ResponseRecorder) {
				second = testutil.JSONData[appsales.LedgerResult](t, w)
				assert.Equal(t, 2, second.Payment.InstallmentNumber)
				assert.True(t, second.Payment.TotalPaidUpToDate.Equal(amount("700000")))
				assert.True(t, second.Sale.RemainingAmount.Equal(amount("200000")))
			},
		},
		{
			Name:      "more than what is left",
			Path:      paymentsPath,
			Principal: owner,
			Body: map[string]any{
				"amountPaid":    "200000.01",
				"paymentMethod": map[string]any{"type": "Cash"},
			},
			ExpectedStatus: http.StatusBadRequest,
			ExpectedCode:   "PAYMENT_EXCEEDS_REMAINING",
		},
		{
			Name:      "another company's customer",
			Path:      paymentsPath,
			Principal: testutil.Principal(testutil.CompanyPrincipal(testutil.NewTestUUID("rival"))),
			Body: map[string]any{
				"amountPaid":    "1000",
				"paymentMethod": map[string]any{"type": "Cash"},
			},
			ExpectedStatus: http.StatusNotFound,
			ExpectedCode:   "CUSTOMER_NOT_FOUND",
		},
	})

	update := testutil.Endpoint{Method: http.MethodPut, Route: "/customers/:id/payments/:paymentId", Handler: d.customers.UpdatePayment}
	testutil.RunHTTPTestCases(t, update, []testutil.HTTPTestCase{
		{
			Name:      "correcting the second installment settles the sale",
			Path:      paymentsPath + "/" + second.Payment.ID.String(),
			Principal: owner,
			Body: map[string]any{
				"amountPaid":    "600000",
				"paymentMethod": map[string]any{"type": "Cheque", "chequeNumber": "000451"},
			},
			ExpectedStatus: http.StatusOK,
			Validate: func(t *testing.T, w *httptest.ResponseRecorder) {
				result := testutil.JSONData[appsales.LedgerResult](t, w)
				assert.True(t, result.Sale.RemainingAmount.IsZero())
				assert.Equal(t, sales.PaymentStatusPaid, result.Sale.PaymentStatus)
			},
		},
		{
			Name:      "unknown installment",
			Path:      paymentsPath + "/" + testutil.NewTestUUID("missing-payment").String(),
			Principal: owner,
			Body: map[string]any{
				"amountPaid":    "1",
				"paymentMethod": map[string]any{"type": "Cash"},
			},
			ExpectedStatus: http.StatusNotFound,
			ExpectedCode:   "PAYMENT_NOT_FOUND",
		},
		{
			Name:      "malformed payment id",
			Path:      paymentsPath + "/42",
			Principal: owner,
			Body: map[string]any{
				"amountPaid":    "1",
				"paymentMethod": map[string]any{"type": "Cash"},
			},
			ExpectedStatus: http.StatusNotFound,
			ExpectedCode:   "NOT_FOUND",
		},
	})

	w := testutil.ServeHTTPTestCase(t, testutil.Endpoint{Method: http.MethodGet, Route: "/customers/:id/payments", Handler: d.customers.ListPayments}, testutil.HTTPTestCase{
		Path:      paymentsPath,
		Principal: owner,
	})
	testutil.AssertSuccessResponse(t, w)
	payments := testutil.JSONData[[]appsales.PaymentDTO](t, w)
	require.Len(t, payments, 2)
	assert.Equal(t, 1, payments[0].InstallmentNumber)
	assert.True(t, payments[1].RemainingAfterPayment.IsZero())
}
