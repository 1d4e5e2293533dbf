// Package middleware holds the HTTP middleware chain: identity extraction,
// request metrics and rate limiting.
package middleware

import (
	"context"
	"net/http"
	"strconv"
)

type contextKey string

const (
	userIDKey   contextKey = "userID"
	userRoleKey contextKey = "userRole"
)

// Header names the gateway sets after verifying the caller's token.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

// Staff roles allowed to drive the status pipeline.
const (
	RoleAdmin      = "ADMIN"
	RoleSuperAdmin = "SUPERADMIN"
)

// Auth copies the gateway identity headers into the request context.
// Requests without an identity pass through; handlers that need one reject
// them with 401.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if raw := r.Header.Get(HeaderUserID); raw != "" {
			if userID, err := strconv.ParseInt(raw, 10, 64); err == nil {
				ctx = context.WithValue(ctx, userIDKey, userID)
			}
		}
		if role := r.Header.Get(HeaderUserRole); role != "" {
			ctx = context.WithValue(ctx, userRoleKey, role)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID returns the authenticated user id from the context.
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

// GetUserRole returns the caller's role from the context.
func GetUserRole(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(userRoleKey).(string)
	return role, ok
}

// IsStaff reports whether the context carries a staff role.
func IsStaff(ctx context.Context) bool {
	role, ok := GetUserRole(ctx)
	return ok && (role == RoleAdmin || role == RoleSuperAdmin)
}
