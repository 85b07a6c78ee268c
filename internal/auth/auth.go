// Package auth resolves the inbound bearer credential to a user identity.
// Every failure collapses into ErrUnauthenticated: a caller must not be able
// to tell a malformed header apart from an expired token.
package auth

import (
	"context"
	"errors"
	"strings"
)

var ErrUnauthenticated = errors.New("unauthenticated")

// Resolver turns a bearer token into a user id via the identity provider.
type Resolver interface {
	Resolve(ctx context.Context, token string) (string, error)
}

// TokenFromHeader extracts the token following a case-insensitive "Bearer "
// prefix. No network call happens here; a missing or malformed header is
// rejected immediately.
func TokenFromHeader(header string) (string, error) {
	const prefix = "bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", ErrUnauthenticated
	}
	token := strings.TrimSpace(header[len(prefix):])
	if token == "" {
		return "", ErrUnauthenticated
	}
	return token, nil
}
