package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

// AdminClaims are the JWT claims carried by campaign administrator tokens.
type AdminClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

const RoleAdmin = "admin"

type contextKey string

const claimsContextKey contextKey = "admin_claims"

// WithClaims returns a context carrying the authenticated admin claims.
func WithClaims(ctx context.Context, claims *AdminClaims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// GetAdminClaims returns the claims set by the auth middleware, or nil when
// the request was not authenticated.
func GetAdminClaims(ctx context.Context) *AdminClaims {
	claims, _ := ctx.Value(claimsContextKey).(*AdminClaims)
	return claims
}
