package identity

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// IDTokenClaims are the id token claims worth showing to the user
type IDTokenClaims struct {
	jwt.RegisteredClaims
	Name              string `json:"name,omitempty"`
	PreferredUsername string `json:"preferred_username,omitempty"`
	TenantID          string `json:"tid,omitempty"`
	ObjectID          string `json:"oid,omitempty"`
}

// ParseClaims decodes the id token without verifying it. The token came
// straight from the identity provider, this is only for display.
func ParseClaims(raw string) (*IDTokenClaims, error) {
	claims := &IDTokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil, fmt.Errorf("failed to parse id token: %w", err)
	}
	return claims, nil
}

// Expiry returns the zero time when the token has no exp claim
func (c *IDTokenClaims) Expiry() time.Time {
	if c.RegisteredClaims.ExpiresAt == nil {
		return time.Time{}
	}
	return c.RegisteredClaims.ExpiresAt.Time
}

// LogArgs flattens the claims into slog key/value pairs
func (c *IDTokenClaims) LogArgs() []any {
	args := []any{
		"name", c.Name,
		"preferred_username", c.PreferredUsername,
		"tenant_id", c.TenantID,
		"object_id", c.ObjectID,
		"issuer", c.Issuer,
	}
	if exp := c.Expiry(); !exp.IsZero() {
		args = append(args, "expires", exp.UTC().Format(time.RFC3339))
	}
	return args
}
