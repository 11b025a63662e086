package client

import (
	"context"
	"net/http"
)

type bearerKey struct{}

// WithBearerToken stores the caller's token so upstream requests made with
// ctx carry the same identity.
func WithBearerToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, bearerKey{}, token)
}

func setAuthorization(ctx context.Context, req *http.Request) {
	if token, _ := ctx.Value(bearerKey{}).(string); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}
