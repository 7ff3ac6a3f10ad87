package auth

import (
	"context"
	"net/http"
	domainauth "studiobooking/internal/core/domain/auth"
	c "studiobooking/internal/core/domain/common"
	"studiobooking/internal/core/domain/user"
	"studiobooking/internal/core/services/auth"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

const (
	AUTH_TOKEN_PREFIX  = "Bearer "
	AUTH_TOKEN_MAX_LEN = 1024
)

type tokenClaims struct {
	jwt.RegisteredClaims
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

func ParseToken(r *http.Request) (token string, ok bool) {
	header := r.Header.Get("authorization")
	if header == "" {
		return "", false
	}
	if !strings.HasPrefix(header, AUTH_TOKEN_PREFIX) {
		return "", false
	}
	token = strings.TrimPrefix(header, AUTH_TOKEN_PREFIX)
	if token == "" || len(token) > AUTH_TOKEN_MAX_LEN {
		return "", false
	}
	return token, true
}

// DecodeClaims verifies the signed token and extracts the caller identity.
// Expired or tampered tokens yield no claims, the request proceeds
// unauthenticated and the authorization gate answers for protected routes.
func DecodeClaims(tokenString string, secret []byte) (claims domainauth.Claims, ok bool) {
	parsed := &tokenClaims{}
	token, err := jwt.ParseWithClaims(
		tokenString,
		parsed,
		func(t *jwt.Token) (interface{}, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid {
		return claims, false
	}
	if parsed.Subject == "" {
		return claims, false
	}
	return domainauth.Claims{
		UserID:  user.ID(parsed.Subject),
		Email:   c.NewEmail(parsed.Email),
		IsAdmin: parsed.IsAdmin,
	}, true
}

func SetClaimsToContext(secret []byte) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token, ok := ParseToken(r); ok {
				if claims, ok := DecodeClaims(token, secret); ok {
					ctx := context.WithValue(r.Context(), auth.CONTEXT_CLAIMS_KEY, claims)
					r = r.WithContext(ctx)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
