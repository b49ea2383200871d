package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	appidentity "github.com/dealerdesk/backend/internal/application/identity"
	"github.com/dealerdesk/backend/internal/domain/identity"
	"github.com/dealerdesk/backend/internal/infrastructure/config"
	"github.com/dealerdesk/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	BaseHandler
	authService    *appidentity.AuthService
	companyService *appidentity.CompanyService
	cookies        sessionCookies
}

// NewAuthHandler creates a new auth handler. sessionTTL is the cookie max age
// and should match the token lifetime.
func NewAuthHandler(
	base BaseHandler,
	authService *appidentity.AuthService,
	companyService *appidentity.CompanyService,
	cookieCfg config.CookieConfig,
	sessionTTL time.Duration,
) *AuthHandler {
	return &AuthHandler{
		BaseHandler:    base,
		authService:    authService,
		companyService: companyService,
		cookies:        newSessionCookies(cookieCfg, sessionTTL),
	}
}

// Login godoc
// @ID           authLogin
// @Summary      Sign in
// @Description  Authenticates an admin, company or sub-user and sets the session cookie
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200 {object} APIResponse[LoginResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      429 {object} ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !h.bindJSON(c, &req) {
		return
	}

	result, err := h.authService.Login(c.Request.Context(), appidentity.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.cookies.set(c, result.Token, result.Principal)
	h.Success(c, LoginResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		Profile:   result.Profile,
	})
}

// Register godoc
// @ID           authRegister
// @Summary      Register a company
// @Description  Public self-registration of a dealership company
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterCompanyRequest true "Company details"
// @Success      201 {object} APIResponse[appidentity.CompanyDTO]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterCompanyRequest
	if !h.bindJSON(c, &req) {
		return
	}

	company, err := h.companyService.Register(c.Request.Context(), req.input())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, company)
}

// Logout godoc
// @ID           authLogout
// @Summary      Sign out
// @Description  Revokes the current session token and clears the session cookies
// @Tags         auth
// @Produce      json
// @Success      200 {object} MessageResponse
// @Failure      401 {object} ErrorResponse
// @Security     SessionCookie
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if claims := middleware.GetClaims(c); claims != nil {
		input := appidentity.LogoutInput{JTI: claims.ID}
		if claims.ExpiresAt != nil {
			input.ExpiresAt = claims.ExpiresAt.Time
		}
		if err := h.authService.Logout(c.Request.Context(), input); err != nil {
			h.HandleError(c, err)
			return
		}
	}

	h.cookies.clear(c)
	h.Message(c, "Logged out successfully")
}

// Me godoc
// @ID           authMe
// @Summary      Current session
// @Description  Returns the profile of the signed-in admin, company or sub-user
// @Tags         auth
// @Produce      json
// @Success      200 {object} APIResponse[appidentity.ProfileDTO]
// @Failure      401 {object} ErrorResponse
// @Security     SessionCookie
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	profile, err := h.authService.Me(c.Request.Context(), p)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, profile)
}

// ValidatePIN godoc
// @ID           authValidatePin
// @Summary      Validate the company PIN
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body PINRequest true "PIN"
// @Success      200 {object} APIResponse[PINValidationResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Security     SessionCookie
// @Router       /auth/validate-pin [post]
func (h *AuthHandler) ValidatePIN(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	var req PINRequest
	if !h.bindJSON(c, &req) {
		return
	}

	valid, err := h.authService.ValidatePIN(c.Request.Context(), p, req.PIN)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, PINValidationResponse{Valid: valid})
}

// sessionCookies writes the session cookie and, for sub-users, the readable
// cookie carrying their access flags
type sessionCookies struct {
	cfg    config.CookieConfig
	maxAge int
}

func newSessionCookies(cfg config.CookieConfig, ttl time.Duration) sessionCookies {
	if cfg.SessionName == "" {
		cfg.SessionName = middleware.DefaultSessionCookie
	}
	if cfg.AccessName == "" {
		cfg.AccessName = "subuser_access"
	}
	if cfg.Path == "" {
		cfg.Path = "/"
	}
	return sessionCookies{cfg: cfg, maxAge: int(ttl.Seconds())}
}

func (s sessionCookies) set(c *gin.Context, token string, p identity.Principal) {
	c.SetSameSite(parseSameSite(s.cfg.SameSite))
	c.SetCookie(s.cfg.SessionName, token, s.maxAge, s.cfg.Path, s.cfg.Domain, s.cfg.Secure, true)

	if p.Role != identity.RoleSubUser {
		return
	}
	flags, err := json.Marshal(p.Access)
	if err != nil {
		return
	}
	c.SetCookie(s.cfg.AccessName, string(flags), s.maxAge, s.cfg.Path, s.cfg.Domain, s.cfg.Secure, false)
}

func (s sessionCookies) clear(c *gin.Context) {
	c.SetSameSite(parseSameSite(s.cfg.SameSite))
	c.SetCookie(s.cfg.SessionName, "", -1, s.cfg.Path, s.cfg.Domain, s.cfg.Secure, true)
	c.SetCookie(s.cfg.AccessName, "", -1, s.cfg.Path, s.cfg.Domain, s.cfg.Secure, false)
}

func parseSameSite(v string) http.SameSite {
	switch strings.ToLower(v) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
