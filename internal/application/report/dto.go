package report

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InventoryCounts counts batches and cars by state
type InventoryCounts struct {
	Batches     int64 `json:"batches"`
	Cars        int64 `json:"cars"`
	CarsInStock int64 `json:"carsInStock"`
	CarsSold    int64 `json:"carsSold"`
}

// ReceivablesSummary sums customer sales and what is still owed on them
type ReceivablesSummary struct {
	Customers   int64           `json:"customers"`
	SalesTotal  decimal.Decimal `json:"salesTotal"`
	Received    decimal.Decimal `json:"received"`
	Outstanding decimal.Decimal `json:"outstanding"`
}

// CapitalSummary sums investor capital and what is still to be paid back
type CapitalSummary struct {
	Investors int64           `json:"investors"`
	Invested  decimal.Decimal `json:"invested"`
	Paid      decimal.Decimal `json:"paid"`
	Remaining decimal.Decimal `json:"remaining"`
}

// DashboardSummary is the company overview shown on the dashboard
type DashboardSummary struct {
	CompanyID   uuid.UUID          `json:"companyId"`
	Inventory   InventoryCounts    `json:"inventory"`
	Receivables ReceivablesSummary `json:"receivables"`
	Capital     CapitalSummary     `json:"capital"`
}

// BatchProfitability reports the stored totals of one batch. MarginPercent is
// profit over sale price and is zero while nothing is sold.
type BatchProfitability struct {
	BatchID         uuid.UUID       `json:"batchId"`
	BatchNo         string          `json:"batchNo"`
	TotalCost       decimal.Decimal `json:"totalCost"`
	TotalSalePrice  decimal.Decimal `json:"totalSalePrice"`
	TotalInvestment decimal.Decimal `json:"totalInvestment"`
	TotalExpense    decimal.Decimal `json:"totalExpense"`
	Profit          decimal.Decimal `json:"profit"`
	MarginPercent   decimal.Decimal `json:"marginPercent"`
}
