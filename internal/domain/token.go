package domain

import (
	"context"
	"time"
)

// DefaultTokenName is used when a client does not name its device.
const DefaultTokenName = "api-token"

// APIToken is the server-side record of an issued bearer token. Deleting it revokes the token.
type APIToken struct {
	ID         string
	UserID     int64
	Name       string
	CreatedAt  time.Time
	ExpiresAt  time.Time
	LastUsedAt *time.Time
}

// TokenClaims are the verified contents of a bearer token.
type TokenClaims struct {
	TokenID string
	UserID  int64
	Email   string
}

// Principal identifies the caller of an authenticated request.
type Principal struct {
	UserID  int64
	TokenID string
}

// TokenIssuer signs bearer tokens.
type TokenIssuer interface {
	Issue(tokenID string, userID int64, email string, expiry time.Duration) (string, error)
}

// TokenParser checks a token signature and expiry and returns its claims.
type TokenParser interface {
	Parse(token string) (*TokenClaims, error)
}

// TokenVerifier verifies a bearer token and returns the authenticated principal.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*Principal, error)
}

// TokenRepository defines storage for issued tokens.
type TokenRepository interface {
	Create(ctx context.Context, t *APIToken) error
	GetByID(ctx context.Context, id string) (*APIToken, error)
	Touch(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error
}

// AuthService issues, verifies and revokes bearer tokens.
type AuthService interface {
	TokenVerifier
	IssueToken(ctx context.Context, email, password, deviceName string) (string, error)
	Logout(ctx context.Context, tokenID string) error
}
