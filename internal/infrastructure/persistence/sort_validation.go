package persistence

import (
	"strings"
	"unicode"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of column names.
// API field names in camelCase ("batchNo") are accepted and mapped to their
// column ("batch_no"). Returns defaultField when the input is empty or not allowed.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	column := toSnakeCase(trimmed)
	if allowedFields[column] {
		return column
	}
	return defaultField
}

func toSnakeCase(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1])) {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// CommonSortFields contains fields common to every table
var CommonSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
}

// CompanySortFields contains allowed sort fields for companies
var CompanySortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"company_name":  true,
	"owner_name":    true,
	"company_email": true,
	"status":        true,
}

// SubUserSortFields contains allowed sort fields for sub-users
var SubUserSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"email":      true,
	"status":     true,
}

// SiteUserSortFields contains allowed sort fields for site users
var SiteUserSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"email":      true,
}

// BatchSortFields contains allowed sort fields for batches
var BatchSortFields = map[string]bool{
	"id":               true,
	"created_at":       true,
	"updated_at":       true,
	"batch_no":         true,
	"arrival_date":     true,
	"total_cost":       true,
	"total_sale_price": true,
	"total_investment": true,
	"total_expense":    true,
	"profit":           true,
}

// CarSortFields contains allowed sort fields for cars
var CarSortFields = map[string]bool{
	"id":             true,
	"created_at":     true,
	"updated_at":     true,
	"batch_no":       true,
	"chassis_number": true,
	"make":           true,
	"model":          true,
	"year":           true,
	"mileage":        true,
	"status":         true,
}

// InvestorSortFields contains allowed sort fields for investors
var InvestorSortFields = map[string]bool{
	"id":               true,
	"created_at":       true,
	"updated_at":       true,
	"batch_no":         true,
	"name":             true,
	"invest_amount":    true,
	"amount_paid":      true,
	"remaining_amount": true,
	"investment_date":  true,
}

// CustomerSortFields contains allowed sort fields for customers
var CustomerSortFields = map[string]bool{
	"id":               true,
	"created_at":       true,
	"updated_at":       true,
	"buyer_name":       true,
	"chassis_number":   true,
	"sale_price":       true,
	"paid_amount":      true,
	"remaining_amount": true,
	"payment_status":   true,
	"sale_date":        true,
}
