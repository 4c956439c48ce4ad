package context

import (
	"context"

	"github.com/muhammadheryan/student-api/constant"
	"github.com/muhammadheryan/student-api/utils/credential"
)

func WithClaims(ctx context.Context, claims *credential.Claims) context.Context {
	return context.WithValue(ctx, constant.ClaimsKey, claims)
}

func GetClaims(ctx context.Context) (*credential.Claims, bool) {
	v := ctx.Value(constant.ClaimsKey)
	if v == nil {
		return nil, false
	}
	claims, ok := v.(*credential.Claims)
	return claims, ok && claims != nil
}
