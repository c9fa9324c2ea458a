package api

import (
	"context"

	"github.com/rlozano/blog-api/services"
)

type keyType string

const adminKey keyType = "admin"

// ctxWithAdmin adds verified admin claims to the context
func ctxWithAdmin(ctx context.Context, claims *services.TokenClaims) context.Context {
	return context.WithValue(ctx, adminKey, claims)
}

// adminFromCtx retrieves verified admin claims from the context
func adminFromCtx(ctx context.Context) (*services.TokenClaims, bool) {
	claims, ok := ctx.Value(adminKey).(*services.TokenClaims)
	return claims, ok
}
