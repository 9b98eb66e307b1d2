package utils

import (
	"context"
)

type contextKey string

const (
	AdminKey contextKey = "is_admin"
	TokenKey contextKey = "token"
)

// SetAdminContext marks the request as authenticated admin and keeps the
// session token around for logout
func SetAdminContext(ctx context.Context, token string) context.Context {
	ctx = context.WithValue(ctx, AdminKey, true)
	ctx = context.WithValue(ctx, TokenKey, token)
	return ctx
}

func IsAdminFromContext(ctx context.Context) bool {
	adminVal := ctx.Value(AdminKey)
	if adminVal == nil {
		return false
	}

	isAdmin, ok := adminVal.(bool)
	return ok && isAdmin
}

func GetTokenFromContext(ctx context.Context) (string, bool) {
	tokenVal := ctx.Value(TokenKey)
	if tokenVal == nil {
		return "", false
	}

	token, ok := tokenVal.(string)
	return token, ok
}
