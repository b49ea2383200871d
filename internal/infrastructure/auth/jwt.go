package auth

import (
	"errors"
	"time"

	"github.com/dealerdesk/backend/internal/domain/identity"
	"github.com/dealerdesk/backend/internal/infrastructure/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Common errors
var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrInvalidClaims    = errors.New("invalid token claims")
	ErrTokenNotYetValid = errors.New("token is not yet valid")
	ErrTokenRevoked     = errors.New("token has been revoked")
)

// Claims are the session claims. CompanyID is empty for platform admins and
// Access is only present for sub-users.
type Claims struct {
	jwt.RegisteredClaims
	Role      identity.Role    `json:"role"`
	CompanyID string           `json:"companyId,omitempty"`
	Access    *identity.Access `json:"access,omitempty"`
}

// SessionToken is a signed session token and its expiry
type SessionToken struct {
	Token     string
	JTI       string
	ExpiresAt time.Time
}

// JWTService issues and validates session tokens
type JWTService struct {
	secret     []byte
	expiration time.Duration
	issuer     string
}

// NewJWTService creates a new JWT service
func NewJWTService(cfg config.JWTConfig) *JWTService {
	return &JWTService{
		secret:     []byte(cfg.Secret),
		expiration: cfg.Expiration,
		issuer:     cfg.Issuer,
	}
}

// Issue signs a session token for the principal
func (s *JWTService) Issue(p identity.Principal) (*SessionToken, error) {
	if p.ID == uuid.Nil || !p.Role.IsValid() {
		return nil, ErrInvalidClaims
	}
	now := time.Now()
	expiresAt := now.Add(s.expiration)
	jti := uuid.New().String()

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Issuer:    s.issuer,
			Subject:   p.ID.String(),
			Audience:  jwt.ClaimStrings{s.issuer},
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: p.Role,
	}
	if p.CompanyID != uuid.Nil {
		claims.CompanyID = p.CompanyID.String()
	}
	if p.Role == identity.RoleSubUser {
		access := p.Access
		claims.Access = &access
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, err
	}
	return &SessionToken{Token: token, JTI: jti, ExpiresAt: expiresAt}, nil
}

// Validate verifies the signature, the time claims and the role shape
func (s *JWTService) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		if errors.Is(err, jwt.ErrTokenNotValidYet) {
			return nil, ErrTokenNotYetValid
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidClaims
	}
	if _, err := claims.Principal(); err != nil {
		return nil, err
	}
	return claims, nil
}

// Principal converts the claims into the authenticated principal
func (c *Claims) Principal() (identity.Principal, error) {
	id, err := uuid.Parse(c.Subject)
	if err != nil || c.ID == "" || !c.Role.IsValid() {
		return identity.Principal{}, ErrInvalidClaims
	}
	p := identity.Principal{ID: id, Role: c.Role}

	if c.Role != identity.RoleAdmin {
		companyID, err := uuid.Parse(c.CompanyID)
		if err != nil || companyID == uuid.Nil {
			return identity.Principal{}, ErrInvalidClaims
		}
		p.CompanyID = companyID
	}
	switch c.Role {
	case identity.RoleCompany:
		p.Access = identity.FullAccess()
	case identity.RoleSubUser:
		if c.Access == nil {
			return identity.Principal{}, ErrInvalidClaims
		}
		p.Access = *c.Access
	}
	return p, nil
}

// GetIssuedAtTime returns the token's issued-at time as time.Time
func (c *Claims) GetIssuedAtTime() time.Time {
	if c.IssuedAt != nil {
		return c.IssuedAt.Time
	}
	return time.Time{}
}

// GetRemainingTTL returns the remaining time until the token expires
func (c *Claims) GetRemainingTTL() time.Duration {
	if c.ExpiresAt == nil {
		return 0
	}
	remaining := time.Until(c.ExpiresAt.Time)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Expiration returns the session lifetime
func (s *JWTService) Expiration() time.Duration {
	return s.expiration
}
