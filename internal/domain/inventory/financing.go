package inventory

import (
	"github.com/dealerdesk/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// CostTriple is a foreign-currency cost line: the source amount, the exchange
// rate applied, and the resulting landed amount.
type CostTriple struct {
	Amount      decimal.Decimal
	Rate        decimal.Decimal
	TotalAmount decimal.Decimal
}

// Financing is the landed-cost breakdown of a car. Absent lines are zero.
type Financing struct {
	AuctionPrice     CostTriple
	AuctionFee       CostTriple
	InspectionFee    CostTriple
	RecycleFee       CostTriple
	RiksoFee         CostTriple
	ExportFreight    CostTriple
	InsuranceForeign CostTriple

	CustomsDuty      decimal.Decimal
	SalesTax         decimal.Decimal
	IncomeTax        decimal.Decimal
	RegulatoryDuty   decimal.Decimal
	PortCharges      decimal.Decimal
	ClearingCharges  decimal.Decimal
	LocalTransport   decimal.Decimal
	RepairCharges    decimal.Decimal
	RegistrationFee  decimal.Decimal
	AgentCommission  decimal.Decimal
	LocalInsurance   decimal.Decimal
	DocumentationFee decimal.Decimal
	Miscellaneous    decimal.Decimal
}

// Triples returns the seven foreign cost lines in a fixed order
func (f *Financing) Triples() []CostTriple {
	return []CostTriple{
		f.AuctionPrice,
		f.AuctionFee,
		f.InspectionFee,
		f.RecycleFee,
		f.RiksoFee,
		f.ExportFreight,
		f.InsuranceForeign,
	}
}

// FlatCosts returns the thirteen local cost lines in a fixed order
func (f *Financing) FlatCosts() []decimal.Decimal {
	return []decimal.Decimal{
		f.CustomsDuty,
		f.SalesTax,
		f.IncomeTax,
		f.RegulatoryDuty,
		f.PortCharges,
		f.ClearingCharges,
		f.LocalTransport,
		f.RepairCharges,
		f.RegistrationFee,
		f.AgentCommission,
		f.LocalInsurance,
		f.DocumentationFee,
		f.Miscellaneous,
	}
}

// TotalCost sums every triple's total amount and every flat cost.
// A nil breakdown costs zero.
func (f *Financing) TotalCost() decimal.Decimal {
	if f == nil {
		return decimal.Zero
	}
	total := decimal.Zero
	for _, t := range f.Triples() {
		total = total.Add(t.TotalAmount)
	}
	for _, v := range f.FlatCosts() {
		total = total.Add(v)
	}
	return total
}

// Validate rejects negative amounts
func (f *Financing) Validate() error {
	for _, t := range f.Triples() {
		if t.Amount.IsNegative() || t.Rate.IsNegative() || t.TotalAmount.IsNegative() {
			return shared.NewDomainError("INVALID_FINANCING", "Financing amounts cannot be negative")
		}
	}
	for _, v := range f.FlatCosts() {
		if v.IsNegative() {
			return shared.NewDomainError("INVALID_FINANCING", "Financing amounts cannot be negative")
		}
	}
	return nil
}
