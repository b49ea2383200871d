package models

import (
	"github.com/dealerdesk/backend/internal/domain/identity"
	"github.com/dealerdesk/backend/internal/domain/shared"
)

// AdminModel is the persistence model for platform administrators.
type AdminModel struct {
	AggregateModel
	Name         string `gorm:"type:varchar(100);not null"`
	Email        string `gorm:"type:varchar(200);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
}

// TableName returns the table name for GORM
func (AdminModel) TableName() string {
	return "admins"
}

// ToDomain converts the persistence model to a domain Admin.
func (m *AdminModel) ToDomain() *identity.Admin {
	return &identity.Admin{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		Email:             m.Email,
		PasswordHash:      m.PasswordHash,
	}
}

// FromDomain populates the persistence model from a domain Admin.
func (m *AdminModel) FromDomain(a *identity.Admin) {
	m.FromDomainAggregateRoot(a.BaseAggregateRoot)
	m.Name = a.Name
	m.Email = a.Email
	m.PasswordHash = a.PasswordHash
}

// AdminModelFromDomain creates a new persistence model from a domain Admin.
func AdminModelFromDomain(a *identity.Admin) *AdminModel {
	m := &AdminModel{}
	m.FromDomain(a)
	return m
}

// CompanyModel is the persistence model for the Company tenant root.
type CompanyModel struct {
	AggregateModel
	OwnerName    string          `gorm:"type:varchar(100);not null"`
	CompanyName  string          `gorm:"type:varchar(100);not null"`
	CompanyEmail string          `gorm:"type:varchar(200);not null;uniqueIndex"`
	PasswordHash string          `gorm:"type:varchar(255);not null"`
	Status       identity.Status `gorm:"type:varchar(20);not null;default:'active';index"`
	PinHash      string          `gorm:"type:varchar(255)"`
	Phone        string          `gorm:"type:varchar(50)"`
	Address      string          `gorm:"type:text"`
	ImageKey     string          `gorm:"type:varchar(500)"`
	ImageURL     string          `gorm:"column:image_url;type:varchar(1000)"`
}

// TableName returns the table name for GORM
func (CompanyModel) TableName() string {
	return "companies"
}

// ToDomain converts the persistence model to a domain Company.
func (m *CompanyModel) ToDomain() *identity.Company {
	return &identity.Company{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		OwnerName:         m.OwnerName,
		CompanyName:       m.CompanyName,
		CompanyEmail:      m.CompanyEmail,
		PasswordHash:      m.PasswordHash,
		Status:            m.Status,
		PinHash:           m.PinHash,
		Phone:             m.Phone,
		Address:           m.Address,
		ImageKey:          m.ImageKey,
		ImageURL:          m.ImageURL,
	}
}

// FromDomain populates the persistence model from a domain Company.
func (m *CompanyModel) FromDomain(c *identity.Company) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.OwnerName = c.OwnerName
	m.CompanyName = c.CompanyName
	m.CompanyEmail = c.CompanyEmail
	m.PasswordHash = c.PasswordHash
	m.Status = c.Status
	m.PinHash = c.PinHash
	m.Phone = c.Phone
	m.Address = c.Address
	m.ImageKey = c.ImageKey
	m.ImageURL = c.ImageURL
}

// CompanyModelFromDomain creates a new persistence model from a domain Company.
func CompanyModelFromDomain(c *identity.Company) *CompanyModel {
	m := &CompanyModel{}
	m.FromDomain(c)
	return m
}

// AccessModel stores sub-user capability flags as one boolean column each.
type AccessModel struct {
	CarManagement    bool `gorm:"not null;default:false"`
	Analytics        bool `gorm:"not null;default:false"`
	Setting          bool `gorm:"not null;default:false"`
	SalesAndPayments bool `gorm:"not null;default:false"`
	Investors        bool `gorm:"not null;default:false"`
	DashboardUnits   bool `gorm:"not null;default:false"`
}

// SubUserModel is the persistence model for company staff accounts.
type SubUserModel struct {
	TenantAggregateModel
	Name         string          `gorm:"type:varchar(100);not null"`
	Email        string          `gorm:"type:varchar(200);not null;uniqueIndex"`
	PasswordHash string          `gorm:"type:varchar(255);not null"`
	Status       identity.Status `gorm:"type:varchar(20);not null;default:'active'"`
	Access       AccessModel     `gorm:"embedded;embeddedPrefix:access_"`
}

// TableName returns the table name for GORM
func (SubUserModel) TableName() string {
	return "sub_users"
}

// ToDomain converts the persistence model to a domain SubUser.
func (m *SubUserModel) ToDomain() *identity.SubUser {
	return &identity.SubUser{
		TenantAggregateRoot: m.ToDomainTenantAggregateRoot(),
		Name:                m.Name,
		Email:               m.Email,
		PasswordHash:        m.PasswordHash,
		Status:              m.Status,
		Access:              identity.Access(m.Access),
	}
}

// FromDomain populates the persistence model from a domain SubUser.
func (m *SubUserModel) FromDomain(u *identity.SubUser) {
	m.FromDomainTenantAggregateRoot(u.TenantAggregateRoot)
	m.Name = u.Name
	m.Email = u.Email
	m.PasswordHash = u.PasswordHash
	m.Status = u.Status
	m.Access = AccessModel(u.Access)
}

// SubUserModelFromDomain creates a new persistence model from a domain SubUser.
func SubUserModelFromDomain(u *identity.SubUser) *SubUserModel {
	m := &SubUserModel{}
	m.FromDomain(u)
	return m
}

// SiteUserModel is the persistence model for public-site accounts.
type SiteUserModel struct {
	AggregateModel
	Name         string `gorm:"type:varchar(100);not null"`
	Email        string `gorm:"type:varchar(200);not null;uniqueIndex"`
	Phone        string `gorm:"type:varchar(50)"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
}

// TableName returns the table name for GORM
func (SiteUserModel) TableName() string {
	return "site_users"
}

// ToDomain converts the persistence model to a domain SiteUser.
func (m *SiteUserModel) ToDomain() *identity.SiteUser {
	return &identity.SiteUser{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: m.BaseModel.ToDomain(),
			Version:    m.Version,
		},
		Name:         m.Name,
		Email:        m.Email,
		Phone:        m.Phone,
		PasswordHash: m.PasswordHash,
	}
}

// FromDomain populates the persistence model from a domain SiteUser.
func (m *SiteUserModel) FromDomain(u *identity.SiteUser) {
	m.FromDomainAggregateRoot(u.BaseAggregateRoot)
	m.Name = u.Name
	m.Email = u.Email
	m.Phone = u.Phone
	m.PasswordHash = u.PasswordHash
}
