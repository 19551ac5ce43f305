package middleware

import (
	"context"

	jwt "github.com/golang-jwt/jwt/v5"
)

func GetClaims(ctx context.Context) *jwt.RegisteredClaims {
	if v := ctx.Value(ClaimsKey); v != nil {
		if c, ok := v.(*jwt.RegisteredClaims); ok {
			return c
		}
	}
	return nil
}
