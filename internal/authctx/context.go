package authctx

import (
	"context"

	"github.com/Hossam-elsheikh/lap-bonus/internal/model"
)

type ctxKey string

const (
	keyUID  ctxKey = "auth_uid"
	keyRole ctxKey = "auth_role"
)

// WithUID stores the verified caller uid.
func WithUID(ctx context.Context, uid string) context.Context {
	return context.WithValue(ctx, keyUID, uid)
}

// UID returns the caller uid if present.
func UID(ctx context.Context) string {
	v, _ := ctx.Value(keyUID).(string)
	return v
}

// WithRole stores the caller's resolved role.
func WithRole(ctx context.Context, role model.Role) context.Context {
	return context.WithValue(ctx, keyRole, role)
}

// Role returns the caller's role, defaulting to user when absent.
func Role(ctx context.Context) model.Role {
	if v, ok := ctx.Value(keyRole).(model.Role); ok {
		return v
	}
	return model.RoleUser
}
