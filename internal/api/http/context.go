package http

import (
	"context"
	"fmt"

	"propertyhub-backend/internal/domain"
	"propertyhub-backend/internal/security"
)

type contextKey int

const (
	claimsKey contextKey = iota
	requestIDKey
)

func withClaims(ctx context.Context, claims *security.UserClaims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext returns the token claims injected by the auth middleware
func ClaimsFromContext(ctx context.Context) (*security.UserClaims, bool) {
	claims, ok := ctx.Value(claimsKey).(*security.UserClaims)
	return claims, ok && claims != nil
}

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// authorizeTenant allows landlords and the tenant itself
func authorizeTenant(ctx context.Context, tenantID int32) error {
	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		return fmt.Errorf("%w: missing credentials", domain.ErrForbidden)
	}
	if claims.Role == domain.RoleLandlord {
		return nil
	}
	if claims.Role == domain.RoleTenant && claims.UserID == tenantID {
		return nil
	}
	return fmt.Errorf("%w: tenants may only access their own account", domain.ErrForbidden)
}
