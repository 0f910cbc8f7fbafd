package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/grpc/metadata"
)

// JWTAuthorizer verifies an HMAC-signed bearer token from incoming gRPC
// metadata and checks its admin claim. Verdicts are cached per token string:
// the check is evaluated on first use and reused for the rest of the session.
type JWTAuthorizer struct {
	secret []byte
	logger *slog.Logger

	mu    sync.Mutex
	cache map[string]bool
}

func NewJWTAuthorizer(secret string, logger *slog.Logger) *JWTAuthorizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &JWTAuthorizer{
		secret: []byte(secret),
		logger: logger,
		cache:  make(map[string]bool),
	}
}

func (a *JWTAuthorizer) IsAdmin(ctx context.Context) bool {
	token := bearerFromContext(ctx)
	if token == "" {
		return false
	}

	a.mu.Lock()
	verdict, ok := a.cache[token]
	a.mu.Unlock()
	if ok {
		return verdict
	}

	verdict = a.verify(token)

	a.mu.Lock()
	a.cache[token] = verdict
	a.mu.Unlock()
	return verdict
}

func (a *JWTAuthorizer) verify(token string) bool {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil || !parsed.Valid {
		a.logger.Warn("auth.token_rejected", "error", err)
		return false
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}
	if role, _ := claims["role"].(string); role == "admin" {
		return true
	}
	if isAdmin, _ := claims["is_admin"].(bool); isAdmin {
		return true
	}
	return false
}

func bearerFromContext(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	vals := md.Get("authorization")
	if len(vals) == 0 {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(vals[0], "Bearer "))
}
