package router

import (
	"github.com/dealerdesk/backend/internal/domain/identity"
	"github.com/dealerdesk/backend/internal/interfaces/http/handler"
	"github.com/dealerdesk/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers are the HTTP handlers mounted under /api/v1
type Handlers struct {
	Auth     *handler.AuthHandler
	Company  *handler.CompanyHandler
	SubUser  *handler.SubUserHandler
	User     *handler.UserHandler
	Batch    *handler.BatchHandler
	Car      *handler.CarHandler
	Investor *handler.InvestorHandler
	Customer *handler.CustomerHandler
	Report   *handler.ReportHandler
	System   *handler.SystemHandler
}

// Guards is the middleware placed in front of API routes. Only Session is
// required; nil entries are skipped.
type Guards struct {
	Session       gin.HandlerFunc
	RateLimit     gin.HandlerFunc
	AuthRateLimit gin.HandlerFunc
	Profiling     gin.HandlerFunc
	// Idempotency guards money-moving writes against double submission
	Idempotency   gin.HandlerFunc

	// SessionCookie is the cookie SessionAuth reads; empty means the default
	SessionCookie string
}

// authenticated is the chain every signed-in route starts with
func (g Guards) authenticated(extra ...gin.HandlerFunc) []gin.HandlerFunc {
	return append([]gin.HandlerFunc{g.Session, g.RateLimit, g.Profiling}, extra...)
}

// admin is the chain of admin-only routes. Anonymous requests get a 404
// before the session check could answer 401.
func (g Guards) admin() []gin.HandlerFunc {
	return append([]gin.HandlerFunc{middleware.HideFromAnonymous(g.SessionCookie)}, g.authenticated(middleware.AdminOnly())...)
}

// tenant is the chain of company-scoped routes needing a capability flag
func (g Guards) tenant(flag identity.AccessFlag) []gin.HandlerFunc {
	return g.authenticated(middleware.RequireTenant(), middleware.RequireAccess(flag))
}

// Routes builds the domain groups of the API
func Routes(h Handlers, g Guards) []RouteRegistrar {
	companyOrAdmin := middleware.RequireRoles(identity.RoleCompany, identity.RoleAdmin)

	system := NewDomainGroup("system", "")
	system.GET("/ping", h.System.Ping)

	auth := NewDomainGroup("auth", "/auth")
	auth.POST("/login", g.AuthRateLimit, h.Auth.Login)
	auth.POST("/register", g.AuthRateLimit, h.Auth.Register)
	auth.POST("/logout", append(g.authenticated(), h.Auth.Logout)...)
	auth.GET("/me", append(g.authenticated(), h.Auth.Me)...)
	auth.POST("/validate-pin", append(g.authenticated(
		middleware.RequireRoles(identity.RoleCompany, identity.RoleSubUser),
	), h.Auth.ValidatePIN)...)

	batches := NewDomainGroup("batches", "/batches").Use(g.tenant(identity.AccessCarManagement)...)
	batches.GET("", h.Batch.List)
	batches.POST("", h.Batch.Create)
	batches.POST("/recalculate/total-cost", h.Batch.RecalculateTotalCost)
	batches.POST("/recalculate/total-sale-price", h.Batch.RecalculateTotalSalePrice)
	batches.POST("/recalculate/all", h.Batch.RecalculateAll)
	batches.GET("/:id", h.Batch.Get)
	batches.PUT("/:id", h.Batch.Update)
	batches.DELETE("/:id", h.Batch.Delete)
	batches.POST("/:id/total-cost", h.Batch.TotalCost)
	batches.POST("/:id/total-sale-price", h.Batch.TotalSalePrice)
	batches.POST("/:id/total-investment", h.Batch.TotalInvestment)
	batches.POST("/:id/total-expense", h.Batch.TotalExpense)
	batches.GET("/:id/expenses", h.Batch.ListExpenses)
	batches.POST("/:id/expenses", g.Idempotency, h.Batch.AddExpense)
	batches.DELETE("/:id/expenses/:expenseId", h.Batch.DeleteExpense)

	cars := NewDomainGroup("cars", "/cars").Use(g.tenant(identity.AccessCarManagement)...)
	cars.GET("", h.Car.List)
	cars.POST("", h.Car.Create)
	cars.GET("/:id", h.Car.Get)
	cars.PUT("/:id", h.Car.Update)
	cars.DELETE("/:id", h.Car.Delete)

	investors := NewDomainGroup("investors", "/investors").Use(g.tenant(identity.AccessInvestors)...)
	investors.GET("", h.Investor.List)
	investors.POST("", g.Idempotency, h.Investor.Create)
	investors.GET("/:id", h.Investor.Get)
	investors.PUT("/:id", h.Investor.Update)
	investors.DELETE("/:id", h.Investor.Delete)

	customers := NewDomainGroup("customers", "/customers").Use(g.tenant(identity.AccessSalesAndPayments)...)
	customers.GET("", h.Customer.List)
	customers.POST("", g.Idempotency, h.Customer.Create)
	customers.GET("/:id", h.Customer.Get)
	customers.PUT("/:id", h.Customer.Update)
	customers.DELETE("/:id", h.Customer.Delete)
	customers.GET("/:id/payments", h.Customer.ListPayments)
	customers.POST("/:id/payments", g.Idempotency, h.Customer.AddPayment)
	customers.PUT("/:id/payments/:paymentId", h.Customer.UpdatePayment)

	// Access to a single company is decided by the service: admins and the
	// company itself pass, sub-users need the setting flag.
	companies := NewDomainGroup("companies", "/companies")
	companies.GET("", append(g.admin(), h.Company.List)...)
	companies.POST("", append(g.admin(), h.Company.Create)...)
	companies.GET("/:id", append(g.authenticated(), h.Company.Get)...)
	companies.PUT("/:id", append(g.authenticated(), h.Company.Update)...)
	companies.DELETE("/:id", append(g.admin(), h.Company.Delete)...)
	companies.PATCH("/:id/status", append(g.admin(), h.Company.SetStatus)...)
	companies.POST("/:id/upload-image", append(g.authenticated(), h.Company.UploadImage)...)
	companies.PUT("/:id/pin", append(g.authenticated(), h.Company.ChangePIN)...)

	subUsers := NewDomainGroup("subusers", "/subusers").Use(g.authenticated()...)
	subUsers.GET("", companyOrAdmin, h.SubUser.List)
	subUsers.POST("", companyOrAdmin, h.SubUser.Create)
	subUsers.GET("/me", middleware.RequireRoles(identity.RoleSubUser), h.SubUser.Me)
	subUsers.GET("/:id", companyOrAdmin, h.SubUser.Get)
	subUsers.PUT("/:id", companyOrAdmin, h.SubUser.Update)
	subUsers.DELETE("/:id", companyOrAdmin, h.SubUser.Delete)

	users := NewDomainGroup("users", "/users")
	users.POST("/register", g.AuthRateLimit, h.User.Register)
	users.GET("", append(g.admin(), h.User.List)...)
	users.DELETE("/:id", append(g.admin(), h.User.Delete)...)

	admin := NewDomainGroup("admin", "/admin").Use(g.admin()...)
	admin.POST("/batches/recalculate/total-cost", h.Batch.AdminRecalculateTotalCost)
	admin.POST("/batches/recalculate/total-sale-price", h.Batch.AdminRecalculateTotalSalePrice)

	dashboard := NewDomainGroup("dashboard", "/dashboard").Use(g.tenant(identity.AccessDashboardUnits)...)
	dashboard.GET("/summary", h.Report.DashboardSummary)

	analytics := NewDomainGroup("analytics", "/analytics").Use(g.tenant(identity.AccessAnalytics)...)
	analytics.GET("/batches", h.Report.BatchProfitability)

	return []RouteRegistrar{
		system, auth, batches, cars, investors, customers,
		companies, subUsers, users, admin, dashboard, analytics,
	}
}
