package identity

import "github.com/google/uuid"

// Role identifies the kind of principal behind a session
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleCompany Role = "company"
	RoleSubUser Role = "subuser"
)

// IsValid reports whether the role is one of the known roles
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleCompany, RoleSubUser:
		return true
	}
	return false
}

// Status is the lifecycle status shared by companies and sub-users
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// IsValid reports whether the status is known
func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

// AccessFlag names a single sub-user capability
type AccessFlag string

const (
	AccessCarManagement    AccessFlag = "carManagement"
	AccessAnalytics        AccessFlag = "analytics"
	AccessSetting          AccessFlag = "setting"
	AccessSalesAndPayments AccessFlag = "salesAndPayments"
	AccessInvestors        AccessFlag = "investors"
	AccessDashboardUnits   AccessFlag = "dashboardUnits"
)

// Access is the set of capability flags granted to a sub-user.
// It travels inside session tokens, hence the JSON tags.
type Access struct {
	CarManagement    bool `json:"carManagement"`
	Analytics        bool `json:"analytics"`
	Setting          bool `json:"setting"`
	SalesAndPayments bool `json:"salesAndPayments"`
	Investors        bool `json:"investors"`
	DashboardUnits   bool `json:"dashboardUnits"`
}

// FullAccess returns an Access value with every flag set
func FullAccess() Access {
	return Access{
		CarManagement:    true,
		Analytics:        true,
		Setting:          true,
		SalesAndPayments: true,
		Investors:        true,
		DashboardUnits:   true,
	}
}

// Has reports whether the given flag is granted. Unknown flags are never granted.
func (a Access) Has(flag AccessFlag) bool {
	switch flag {
	case AccessCarManagement:
		return a.CarManagement
	case AccessAnalytics:
		return a.Analytics
	case AccessSetting:
		return a.Setting
	case AccessSalesAndPayments:
		return a.SalesAndPayments
	case AccessInvestors:
		return a.Investors
	case AccessDashboardUnits:
		return a.DashboardUnits
	}
	return false
}

// Principal is the authenticated caller of a request, rebuilt from session claims.
// CompanyID is uuid.Nil for admins. For company sessions it is the company's own ID.
type Principal struct {
	ID        uuid.UUID
	Role      Role
	CompanyID uuid.UUID
	Access    Access
}

// IsAdmin reports whether the principal is a platform administrator
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// HasTenant reports whether the principal acts within a company
func (p Principal) HasTenant() bool {
	return p.CompanyID != uuid.Nil && (p.Role == RoleCompany || p.Role == RoleSubUser)
}

// Can reports whether the principal holds a capability. Company owners hold
// every capability; sub-users hold the flags granted to them; admins hold none,
// since tenant data is not theirs to edit.
func (p Principal) Can(flag AccessFlag) bool {
	switch p.Role {
	case RoleCompany:
		return true
	case RoleSubUser:
		return p.Access.Has(flag)
	}
	return false
}

// CanManageCompany reports whether the principal may act on the company's
// own settings: admins, the company itself, or a sub-user with the setting flag.
func (p Principal) CanManageCompany(companyID uuid.UUID) bool {
	switch p.Role {
	case RoleAdmin:
		return true
	case RoleCompany:
		return p.CompanyID == companyID
	case RoleSubUser:
		return p.CompanyID == companyID && p.Access.Setting
	}
	return false
}

// CanChangeCompanyCredentials reports whether the principal may change the
// company's login email, password or PIN. Sub-users never may, whatever
// their flags.
func (p Principal) CanChangeCompanyCredentials(companyID uuid.UUID) bool {
	switch p.Role {
	case RoleAdmin:
		return true
	case RoleCompany:
		return p.CompanyID == companyID
	}
	return false
}
