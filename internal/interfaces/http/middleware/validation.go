package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/dealerdesk/backend/internal/domain/inventory"
	"github.com/dealerdesk/backend/internal/domain/sales"
	"github.com/dealerdesk/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var setupOnce sync.Once

// SetupValidator configures gin's validator: errors name fields by their json
// tag, decimals validate as numbers, and the payment_method and batch_no tags
// are registered. Safe to call more than once.
func SetupValidator() {
	setupOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			}
			return name
		})
		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				f, _ := d.Float64()
				return f
			}
			return nil
		}, decimal.Decimal{})
		_ = v.RegisterValidation("payment_method", func(fl validator.FieldLevel) bool {
			return sales.PaymentMethodType(fl.Field().String()).IsValid()
		})
		_ = v.RegisterValidation("batch_no", func(fl validator.FieldLevel) bool {
			return inventory.ValidateBatchNo(strings.TrimSpace(fl.Field().String())) == nil
		})
	})
}

// ValidationDetails converts validator errors into per-field details
func ValidationDetails(err error) []dto.FieldDetail {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	details := make([]dto.FieldDetail, 0, len(verrs))
	for _, e := range verrs {
		details = append(details, dto.FieldDetail{Field: fieldPath(e), Message: validationMessage(e)})
	}
	return details
}

// HandleValidationError writes the 400 response for a failed bind
func HandleValidationError(c *gin.Context, err error) {
	if details := ValidationDetails(err); len(details) > 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewValidationErrorResponse(details))
		return
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		abortWithError(c, dto.ErrCodeInvalidJSON, "Request body is required")
	case errors.As(err, &typeErr):
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewValidationErrorResponse([]dto.FieldDetail{
			{Field: typeErr.Field, Message: "Must be a " + typeErr.Type.String()},
		}))
	case errors.As(err, &syntaxErr):
		abortWithError(c, dto.ErrCodeInvalidJSON, "Malformed JSON")
	default:
		abortWithError(c, dto.ErrCodeInvalidInput, err.Error())
	}
}

// fieldPath drops the top-level struct name from the namespace, so nested
// fields read as "buyer.name"
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return e.Field()
}

func validationMessage(e validator.FieldError) string {
	field := e.Field()
	switch e.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		if e.Kind() == reflect.String {
			return field + " must be at least " + e.Param() + " characters"
		}
		return field + " must be at least " + e.Param()
	case "max":
		if e.Kind() == reflect.String {
			return field + " must be at most " + e.Param() + " characters"
		}
		return field + " must be at most " + e.Param()
	case "len":
		return field + " must be exactly " + e.Param() + " characters"
	case "uuid":
		return field + " must be a valid UUID"
	case "oneof":
		return field + " must be one of: " + e.Param()
	case "gt":
		return field + " must be greater than " + e.Param()
	case "gte":
		return field + " must be greater than or equal to " + e.Param()
	case "numeric":
		return field + " must be numeric"
	case "payment_method":
		return field + " must be one of: Cash, Bank, Cheque, BankDeposit"
	case "batch_no":
		return field + " must be 1-50 letters, digits, '.', '_', '/' or '-'"
	}
	return field + " is invalid"
}
