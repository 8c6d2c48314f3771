package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"bloomwatch/reforesta/internal/auth"
)

// AuthMiddleware guards the admin routes. It expects a Bearer token signed
// with ADMIN_JWT_SECRET and an admin role claim.
func AuthMiddleware() func(http.Handler) http.Handler {
	secret := []byte(os.Getenv("ADMIN_JWT_SECRET"))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				http.Error(w, "Unauthorized. Missing bearer token", http.StatusUnauthorized)
				return
			}

			tokenText := strings.TrimPrefix(authHeader, "Bearer ")

			claims := &auth.AdminClaims{}
			token, err := jwt.ParseWithClaims(tokenText, claims, func(t *jwt.Token) (interface{}, error) {
				return secret, nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

			if err != nil || !token.Valid {
				http.Error(w, "Unauthorized. Invalid token", http.StatusUnauthorized)
				return
			}

			if claims.Role != auth.RoleAdmin {
				http.Error(w, "Forbidden. Admin role required", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithClaims(r.Context(), claims)))
		})
	}
}
