package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	appinventory "github.com/dealerdesk/backend/internal/application/inventory"
	"github.com/dealerdesk/backend/internal/domain/identity"
	"github.com/dealerdesk/backend/internal/domain/inventory"
	"github.com/dealerdesk/backend/tests/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCarHandler_Create(t *testing.T) {
	d := newDealer(t)
	d.batch(t, "B-100")
	owner := testutil.Principal(d.owner)

	testutil.RunHTTPTestCases(t, testutil.Endpoint{Method: http.MethodPost, Route: "/cars", Handler: d.cars.Create}, []testutil.HTTPTestCase{
		{
			Name:           "registers a car in stock",
			Principal:      owner,
			Body:           map[string]any{"batchNo": "B-100", "chassisNumber": "NZE161-0001", "make": "Toyota", "year": 2018},
			ExpectedStatus: http.StatusCreated,
			Validate: func(t *testing.T, w *httptest.ResponseRecorder) {
				car := testutil.JSONData[appinventory.CarDTO](t, w)
				assert.Equal(t, "NZE161-0001", car.ChassisNumber)
				assert.Equal(t, inventory.CarStatusInStock, car.Status)
				assert.Equal(t, d.owner.CompanyID, car.CompanyID)
			},
		},
		{
			Name:           "duplicate chassis is a conflict",
			Principal:      owner,
			Body:           map[string]any{"batchNo": "B-100", "chassisNumber": "NZE161-0001"},
			ExpectedStatus: http.StatusConflict,
			ExpectedCode:   "CHASSIS_ALREADY_EXISTS",
		},
		{
			Name:           "unknown batch",
			Principal:      owner,
			Body:           map[string]any{"batchNo": "B-404", "chassisNumber": "NZE161-0002"},
			ExpectedStatus: http.StatusBadRequest,
			ExpectedCode:   "UNKNOWN_BATCH",
		},
		{
			Name:           "missing chassis number",
			Principal:      owner,
			Body:           map[string]any{"batchNo": "B-100"},
			ExpectedStatus: http.StatusBadRequest,
			ExpectedCode:   "VALIDATION_ERROR",
			Validate: func(t *testing.T, w *httptest.ResponseRecorder) {
				resp := testutil.DecodeEnvelope(t, w)
				if assert.Len(t, resp.Error.Details, 1) {
					assert.Equal(t, "chassisNumber", resp.Error.Details[0].Field)
				}
			},
		},
		{
			Name:           "malformed json",
			Principal:      owner,
			RawBody:        `{"batchNo":`,
			ExpectedStatus: http.StatusBadRequest,
			ExpectedCode:   "INVALID_JSON",
		},
		{
			Name:           "admin has no tenant",
			Principal:      testutil.Principal(testutil.AdminPrincipal()),
			Body:           map[string]any{"batchNo": "B-100", "chassisNumber": "NZE161-0003"},
			ExpectedStatus: http.StatusForbidden,
			ExpectedCode:   "FORBIDDEN",
		},
		{
			Name:           "no session",
			Body:           map[string]any{"batchNo": "B-100", "chassisNumber": "NZE161-0003"},
			ExpectedStatus: http.StatusUnauthorized,
			ExpectedCode:   "UNAUTHORIZED",
		},
	})
}

func TestCarHandler_UpdateAndGet(t *testing.T) {
	d := newDealer(t)
	d.batch(t, "B-200")
	first := d.car(t, "B-200", "GP5-0001")
	second := d.car(t, "B-200", "GP5-0002")
	owner := testutil.Principal(d.owner)
	other := testutil.Principal(testutil.CompanyPrincipal(testutil.NewTestUUID("other-company")))

	testutil.RunHTTPTestCases(t, testutil.Endpoint{Method: http.MethodPut, Route: "/cars/:id", Handler: d.cars.Update}, []testutil.HTTPTestCase{
		{
			Name:           "renaming onto another car's chassis is a conflict",
			Path:           "/cars/" + second.ID.String(),
			Principal:      owner,
			Body:           map[string]any{"chassisNumber": "GP5-0001"},
			ExpectedStatus: http.StatusConflict,
			ExpectedCode:   "CHASSIS_ALREADY_EXISTS",
		},
		{
			Name:           "color change",
			Path:           "/cars/" + second.ID.String(),
			Principal:      owner,
			Body:           map[string]any{"color": "Pearl White"},
			ExpectedStatus: http.StatusOK,
			Validate: func(t *testing.T, w *httptest.ResponseRecorder) {
				car := testutil.JSONData[appinventory.CarDTO](t, w)
				assert.Equal(t, "GP5-0002", car.ChassisNumber)
				assert.Equal(t, "Pearl White", car.Color)
			},
		},
		{
			Name:           "invalid status",
			Path:           "/cars/" + second.ID.String(),
			Principal:      owner,
			Body:           map[string]any{"status": "scrapped"},
			ExpectedStatus: http.StatusBadRequest,
			ExpectedCode:   "VALIDATION_ERROR",
		},
	})

	testutil.RunHTTPTestCases(t, testutil.Endpoint{Method: http.MethodGet, Route: "/cars/:id", Handler: d.cars.Get}, []testutil.HTTPTestCase{
		{
			Name:           "own car",
			Path:           "/cars/" + first.ID.String(),
			Principal:      owner,
			ExpectedStatus: http.StatusOK,
		},
		{
			Name:           "another company cannot see it",
			Path:           "/cars/" + first.ID.String(),
			Principal:      other,
			ExpectedStatus: http.StatusNotFound,
			ExpectedCode:   "CAR_NOT_FOUND",
		},
		{
			Name:           "malformed id",
			Path:           "/cars/not-a-uuid",
			Principal:      owner,
			ExpectedStatus: http.StatusNotFound,
			ExpectedCode:   "NOT_FOUND",
		},
		{
			Name:           "unknown id",
			Path:           "/cars/" + uuid.NewString(),
			Principal:      owner,
			ExpectedStatus: http.StatusNotFound,
			ExpectedCode:   "CAR_NOT_FOUND",
		},
		{
			Name: "sub-user of the company",
			Path: "/cars/" + first.ID.String(),
			Principal: testutil.Principal(testutil.SubUserPrincipal(d.owner.CompanyID, identity.Access{
				CarManagement: true,
			})),
			ExpectedStatus: http.StatusOK,
		},
	})
}
