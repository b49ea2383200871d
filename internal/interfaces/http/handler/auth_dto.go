package handler

import (
	"time"

	appidentity "github.com/dealerdesk/backend/internal/application/identity"
	"github.com/dealerdesk/backend/internal/domain/identity"
	"github.com/dealerdesk/backend/internal/interfaces/http/dto"
	"github.com/google/uuid"
)

// =====================
// Auth Request DTOs
// =====================

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=254"`
	Password string `json:"password" binding:"required,max=128"`
}

// RegisterCompanyRequest represents the public company registration body
type RegisterCompanyRequest struct {
	OwnerName   string `json:"ownerName" binding:"required,max=200"`
	CompanyName string `json:"companyName" binding:"required,max=200"`
	Email       string `json:"email" binding:"required,email,max=254"`
	Password    string `json:"password" binding:"required,min=8,max=72"`
	Phone       string `json:"phone" binding:"omitempty,max=50"`
	Address     string `json:"address" binding:"omitempty,max=500"`
}

func (r RegisterCompanyRequest) input() appidentity.CreateCompanyInput {
	return appidentity.CreateCompanyInput{
		OwnerName:   r.OwnerName,
		CompanyName: r.CompanyName,
		Email:       r.Email,
		Password:    r.Password,
		Phone:       r.Phone,
		Address:     r.Address,
	}
}

// PINRequest carries a company PIN
type PINRequest struct {
	PIN string `json:"pin" binding:"required,numeric,min=4,max=6"`
}

// =====================
// Auth Response DTOs
// =====================

// LoginResponse represents the response body for a successful login
type LoginResponse struct {
	Token     string                  `json:"token"`
	ExpiresAt time.Time               `json:"expiresAt"`
	Profile   *appidentity.ProfileDTO `json:"profile"`
}

// PINValidationResponse reports whether a PIN matched
type PINValidationResponse struct {
	Valid bool `json:"valid"`
}

// =====================
// Company DTOs
// =====================

// UpdateCompanyRequest carries a partial company update
type UpdateCompanyRequest struct {
	OwnerName   *string `json:"ownerName" binding:"omitempty,min=1,max=200"`
	CompanyName *string `json:"companyName" binding:"omitempty,min=1,max=200"`
	Email       *string `json:"email" binding:"omitempty,email,max=254"`
	Password    *string `json:"password" binding:"omitempty,min=8,max=72"`
	Phone       *string `json:"phone" binding:"omitempty,max=50"`
	Address     *string `json:"address" binding:"omitempty,max=500"`
}

func (r UpdateCompanyRequest) input() appidentity.UpdateCompanyInput {
	return appidentity.UpdateCompanyInput{
		OwnerName:   r.OwnerName,
		CompanyName: r.CompanyName,
		Email:       r.Email,
		Password:    r.Password,
		Phone:       r.Phone,
		Address:     r.Address,
	}
}

// CompanyStatusRequest sets a company's status
type CompanyStatusRequest struct {
	Status identity.Status `json:"status" binding:"required,oneof=active inactive"`
}

// CompanyListRequest holds company listing query parameters
type CompanyListRequest struct {
	dto.ListRequest
	Status identity.Status `form:"status" binding:"omitempty,oneof=active inactive"`
}

// =====================
// Sub-user DTOs
// =====================

// AccessRequest carries sub-user capability flags
type AccessRequest struct {
	CarManagement    bool `json:"carManagement"`
	Analytics        bool `json:"analytics"`
	Setting          bool `json:"setting"`
	SalesAndPayments bool `json:"salesAndPayments"`
	Investors        bool `json:"investors"`
	DashboardUnits   bool `json:"dashboardUnits"`
}

func (r AccessRequest) access() identity.Access {
	return identity.Access{
		CarManagement:    r.CarManagement,
		Analytics:        r.Analytics,
		Setting:          r.Setting,
		SalesAndPayments: r.SalesAndPayments,
		Investors:        r.Investors,
		DashboardUnits:   r.DashboardUnits,
	}
}

// CreateSubUserRequest creates a sub-user. companyId is only read for admin
// sessions; companies always create users of their own.
type CreateSubUserRequest struct {
	CompanyID *uuid.UUID    `json:"companyId"`
	Name      string        `json:"name" binding:"required,max=200"`
	Email     string        `json:"email" binding:"required,email,max=254"`
	Password  string        `json:"password" binding:"required,min=8,max=72"`
	Access    AccessRequest `json:"access"`
}

// UpdateSubUserRequest carries a partial sub-user update
type UpdateSubUserRequest struct {
	Name     *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Email    *string          `json:"email" binding:"omitempty,email,max=254"`
	Password *string          `json:"password" binding:"omitempty,min=8,max=72"`
	Status   *identity.Status `json:"status" binding:"omitempty,oneof=active inactive"`
	Access   *AccessRequest   `json:"access"`
}

func (r UpdateSubUserRequest) input() appidentity.UpdateSubUserInput {
	in := appidentity.UpdateSubUserInput{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Status:   r.Status,
	}
	if r.Access != nil {
		a := r.Access.access()
		in.Access = &a
	}
	return in
}

// SubUserListRequest holds sub-user listing query parameters
type SubUserListRequest struct {
	dto.ListRequest
	CompanyID string          `form:"companyId" binding:"omitempty,uuid"`
	Status    identity.Status `form:"status" binding:"omitempty,oneof=active inactive"`
}

// =====================
// Site user DTOs
// =====================

// RegisterSiteUserRequest is the public storefront sign-up body
type RegisterSiteUserRequest struct {
	Name     string `json:"name" binding:"required,max=200"`
	Email    string `json:"email" binding:"required,email,max=254"`
	Phone    string `json:"phone" binding:"omitempty,max=50"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}
