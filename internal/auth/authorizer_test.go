package auth

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/metadata"

	"github.com/brunoqueiroz/curricula-admin/internal/common"
)

const testSecret = "test-secret"

func signedToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return tok
}

func ctxWithBearer(token string) context.Context {
	md := metadata.Pairs("authorization", "Bearer "+token)
	return metadata.NewIncomingContext(context.Background(), md)
}

func TestGuard(t *testing.T) {
	assert.NoError(t, Guard(context.Background(), Static{Admin: true}))
	assert.ErrorIs(t, Guard(context.Background(), Static{Admin: false}), common.ErrForbidden)
}

func TestJWTAuthorizerRoleClaim(t *testing.T) {
	a := NewJWTAuthorizer(testSecret, nil)
	ctx := ctxWithBearer(signedToken(t, testSecret, jwt.MapClaims{"role": "admin"}))

	assert.True(t, a.IsAdmin(ctx))
}

func TestJWTAuthorizerIsAdminClaim(t *testing.T) {
	a := NewJWTAuthorizer(testSecret, nil)
	ctx := ctxWithBearer(signedToken(t, testSecret, jwt.MapClaims{"is_admin": true}))

	assert.True(t, a.IsAdmin(ctx))
}

func TestJWTAuthorizerRejectsNonAdmin(t *testing.T) {
	a := NewJWTAuthorizer(testSecret, nil)
	ctx := ctxWithBearer(signedToken(t, testSecret, jwt.MapClaims{"role": "viewer"}))

	assert.False(t, a.IsAdmin(ctx))
	assert.ErrorIs(t, Guard(ctx, a), common.ErrForbidden)
}

func TestJWTAuthorizerRejectsWrongSecret(t *testing.T) {
	a := NewJWTAuthorizer(testSecret, nil)
	ctx := ctxWithBearer(signedToken(t, "other-secret", jwt.MapClaims{"role": "admin"}))

	assert.False(t, a.IsAdmin(ctx))
}

func TestJWTAuthorizerNoMetadata(t *testing.T) {
	a := NewJWTAuthorizer(testSecret, nil)

	assert.False(t, a.IsAdmin(context.Background()))
}

func TestJWTAuthorizerCachesVerdict(t *testing.T) {
	a := NewJWTAuthorizer(testSecret, nil)
	token := signedToken(t, testSecret, jwt.MapClaims{"role": "admin"})
	ctx := ctxWithBearer(token)

	require.True(t, a.IsAdmin(ctx))

	// Same token answers from the cache even if the secret rotates.
	a.secret = []byte("rotated")
	assert.True(t, a.IsAdmin(ctx))
}
