package identity

import (
	"context"
	"errors"

	"github.com/thushan/ctoken/internal/core/domain"
	"github.com/thushan/ctoken/internal/core/ports"
	"github.com/thushan/ctoken/internal/logger"
)

// Acquirer runs silent sign-in and falls back to interactive sign-in once.
// There is no retry beyond that single fallback.
type Acquirer struct {
	provider ports.IdentityProvider
	logger   *logger.StyledLogger
}

var _ ports.TokenAcquirer = (*Acquirer)(nil)

func NewAcquirer(provider ports.IdentityProvider, log *logger.StyledLogger) *Acquirer {
	return &Acquirer{
		provider: provider,
		logger:   log,
	}
}

func (a *Acquirer) Acquire(ctx context.Context) (*domain.Token, error) {
	token, err := a.provider.AcquireTokenSilent(ctx)
	switch {
	case err == nil && token.IsValid():
		a.logger.InfoSuccess("Signed in silently", "username", token.Username)
		return token, nil
	case err == nil:
		err = domain.ErrEmptyToken
	}

	// a cancelled run should not pop a browser
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, &domain.AuthError{Stage: domain.TokenSourceSilent, Err: ctxErr}
	}

	if errors.Is(err, domain.ErrNoCachedAccount) {
		a.logger.Info("No cached account, signing in interactively")
	} else {
		a.logger.Warn("Silent sign-in failed, signing in interactively", "error", err)
	}

	token, err = a.provider.AcquireTokenInteractive(ctx)
	if err != nil {
		return nil, &domain.AuthError{Stage: domain.TokenSourceInteractive, Err: err}
	}
	if !token.IsValid() {
		return nil, &domain.AuthError{Stage: domain.TokenSourceInteractive, Err: domain.ErrEmptyToken}
	}

	a.logger.InfoSuccess("Signed in", "username", token.Username, "source", string(token.Source))
	return token, nil
}
