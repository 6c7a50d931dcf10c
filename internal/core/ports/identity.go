package ports

import (
	"context"

	"github.com/thushan/ctoken/internal/core/domain"
)

// IdentityProvider is the sign-in surface the application needs
type IdentityProvider interface {
	AcquireTokenSilent(ctx context.Context) (*domain.Token, error)
	AcquireTokenInteractive(ctx context.Context) (*domain.Token, error)
}

// TokenAcquirer hands back a usable token or an error, never an empty token
type TokenAcquirer interface {
	Acquire(ctx context.Context) (*domain.Token, error)
}
