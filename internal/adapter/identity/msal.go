package identity

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/AzureAD/microsoft-authentication-library-for-go/apps/cache"
	"github.com/AzureAD/microsoft-authentication-library-for-go/apps/public"

	"github.com/thushan/ctoken/internal/config"
	"github.com/thushan/ctoken/internal/core/domain"
	"github.com/thushan/ctoken/internal/logger"
)

// publicClient is the slice of public.Client the provider uses
type publicClient interface {
	Accounts(ctx context.Context) ([]public.Account, error)
	AcquireTokenSilent(ctx context.Context, scopes []string, opts ...public.AcquireSilentOption) (public.AuthResult, error)
	AcquireTokenInteractive(ctx context.Context, scopes []string, opts ...public.AcquireInteractiveOption) (public.AuthResult, error)
	AcquireTokenByDeviceCode(ctx context.Context, scopes []string, opts ...public.AcquireByDeviceCodeOption) (public.DeviceCode, error)
}

// MSALProvider implements ports.IdentityProvider with the Microsoft
// Authentication Library public client flows
type MSALProvider struct {
	client      publicClient
	logger      *logger.StyledLogger
	out         io.Writer
	scopes      []string
	redirectURI string
	username    string
	flow        string

	// deviceCodeResult is swapped in tests, public.DeviceCode cannot be faked
	deviceCodeResult func(ctx context.Context, dc public.DeviceCode) (public.AuthResult, error)
}

// NewMSALProvider builds the public client. A nil tokenCache keeps tokens in
// memory only, so silent sign-in will not survive the process.
func NewMSALProvider(cfg config.AuthConfig, tokenCache cache.ExportReplace, out io.Writer, log *logger.StyledLogger) (*MSALProvider, error) {
	opts := []public.Option{public.WithAuthority(cfg.Authority)}
	if tokenCache != nil {
		opts = append(opts, public.WithCache(tokenCache))
	}

	client, err := public.New(cfg.ClientID, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create public client for %s: %w", cfg.Authority, err)
	}

	return newMSALProvider(client, cfg, out, log), nil
}

func newMSALProvider(client publicClient, cfg config.AuthConfig, out io.Writer, log *logger.StyledLogger) *MSALProvider {
	return &MSALProvider{
		client:      client,
		logger:      log,
		out:         out,
		scopes:      cfg.Scopes,
		redirectURI: cfg.RedirectURI,
		username:    cfg.Username,
		flow:        cfg.Flow,
		deviceCodeResult: func(ctx context.Context, dc public.DeviceCode) (public.AuthResult, error) {
			return dc.AuthenticationResult(ctx)
		},
	}
}

// AcquireTokenSilent uses the cached account matching the configured
// username, or the first cached account when none is configured.
func (p *MSALProvider) AcquireTokenSilent(ctx context.Context) (*domain.Token, error) {
	accounts, err := p.client.Accounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to read cached accounts: %w", err)
	}

	account, ok := p.pickAccount(accounts)
	if !ok {
		return nil, domain.ErrNoCachedAccount
	}

	p.logger.Debug("Using cached account", "username", account.PreferredUsername, "cached_accounts", len(accounts))

	result, err := p.client.AcquireTokenSilent(ctx, p.scopes, public.WithSilentAccount(account))
	if err != nil {
		return nil, err
	}
	return toToken(result, domain.TokenSourceSilent), nil
}

// AcquireTokenInteractive signs the user in through the browser, or with a
// device code when configured for headless use.
func (p *MSALProvider) AcquireTokenInteractive(ctx context.Context) (*domain.Token, error) {
	if p.flow == config.FlowDeviceCode {
		return p.acquireByDeviceCode(ctx)
	}

	var opts []public.AcquireInteractiveOption
	if p.redirectURI != "" {
		opts = append(opts, public.WithRedirectURI(p.redirectURI))
	}
	if p.username != "" {
		opts = append(opts, public.WithLoginHint(p.username))
	}

	p.logger.Info("Opening browser for sign-in", "scopes", strings.Join(p.scopes, " "))

	result, err := p.client.AcquireTokenInteractive(ctx, p.scopes, opts...)
	if err != nil {
		return nil, err
	}
	return toToken(result, domain.TokenSourceInteractive), nil
}

func (p *MSALProvider) acquireByDeviceCode(ctx context.Context) (*domain.Token, error) {
	dc, err := p.client.AcquireTokenByDeviceCode(ctx, p.scopes)
	if err != nil {
		return nil, fmt.Errorf("unable to start device code flow: %w", err)
	}

	fmt.Fprintln(p.out, dc.Result.Message)

	result, err := p.deviceCodeResult(ctx, dc)
	if err != nil {
		return nil, err
	}
	return toToken(result, domain.TokenSourceDeviceCode), nil
}

func (p *MSALProvider) pickAccount(accounts []public.Account) (public.Account, bool) {
	if len(accounts) == 0 {
		return public.Account{}, false
	}
	if p.username == "" {
		return accounts[0], true
	}
	for _, a := range accounts {
		if strings.EqualFold(a.PreferredUsername, p.username) {
			return a, true
		}
	}
	return public.Account{}, false
}

func toToken(result public.AuthResult, source domain.TokenSource) *domain.Token {
	return &domain.Token{
		IDToken:     result.IDToken.RawToken,
		AccessToken: result.AccessToken,
		Username:    result.Account.PreferredUsername,
		ExpiresOn:   result.ExpiresOn,
		Source:      source,
	}
}
