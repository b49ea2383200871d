package models

import (
	"time"

	"github.com/dealerdesk/backend/internal/domain/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InvestorModel is the persistence model for an investor's stake in a batch.
type InvestorModel struct {
	AggregateModel
	CompanyID       uuid.UUID       `gorm:"type:uuid;not null;index:idx_investors_company_batch,priority:1"`
	BatchNo         string          `gorm:"type:varchar(50);not null;index:idx_investors_company_batch,priority:2"`
	Name            string          `gorm:"type:varchar(100);not null"`
	Phone           string          `gorm:"type:varchar(50)"`
	Email           string          `gorm:"type:varchar(200)"`
	InvestAmount    decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	AmountPaid      decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	RemainingAmount decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	InvestmentDate  time.Time       `gorm:"not null"`
	Note            string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (InvestorModel) TableName() string {
	return "investors"
}

// BeforeSave derives remaining_amount from the stored amounts on every create
// and update.
func (m *InvestorModel) BeforeSave(tx *gorm.DB) error {
	m.RemainingAmount = finance.RemainingOf(m.InvestAmount, m.AmountPaid)
	tx.Statement.SetColumn("RemainingAmount", m.RemainingAmount)
	return nil
}

// ToDomain converts the persistence model to a domain Investor.
func (m *InvestorModel) ToDomain() *finance.Investor {
	return &finance.Investor{
		TenantAggregateRoot: tenantRoot(&m.AggregateModel, m.CompanyID),
		BatchNo:             m.BatchNo,
		Name:                m.Name,
		Phone:               m.Phone,
		Email:               m.Email,
		InvestAmount:        m.InvestAmount,
		AmountPaid:          m.AmountPaid,
		RemainingAmount:     m.RemainingAmount,
		InvestmentDate:      m.InvestmentDate,
		Note:                m.Note,
	}
}

// FromDomain populates the persistence model from a domain Investor.
func (m *InvestorModel) FromDomain(i *finance.Investor) {
	m.FromDomainAggregateRoot(i.BaseAggregateRoot)
	m.CompanyID = i.CompanyID
	m.BatchNo = i.BatchNo
	m.Name = i.Name
	m.Phone = i.Phone
	m.Email = i.Email
	m.InvestAmount = i.InvestAmount
	m.AmountPaid = i.AmountPaid
	m.RemainingAmount = i.RemainingAmount
	m.InvestmentDate = i.InvestmentDate
	m.Note = i.Note
}

// InvestorModelFromDomain creates a new persistence model from a domain Investor.
func InvestorModelFromDomain(i *finance.Investor) *InvestorModel {
	m := &InvestorModel{}
	m.FromDomain(i)
	return m
}
