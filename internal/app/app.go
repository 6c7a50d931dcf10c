package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/thushan/ctoken/internal/adapter/customtranslator"
	"github.com/thushan/ctoken/internal/adapter/identity"
	"github.com/thushan/ctoken/internal/config"
	"github.com/thushan/ctoken/internal/core/domain"
	"github.com/thushan/ctoken/internal/core/ports"
	"github.com/thushan/ctoken/internal/logger"
	"github.com/thushan/ctoken/internal/util"
	"github.com/thushan/ctoken/pkg/format"
)

// Application signs in and walks the Custom Translator API once
type Application struct {
	config      *config.Config
	acquirer    ports.TokenAcquirer
	api         ports.TranslatorAPI
	printer     *Printer
	logger      *logger.StyledLogger
	now         func() time.Time
	waitForKey  func() error
	documentIDs []int
}

type Option func(*Application)

// WithClock fixes the time used for the model name
func WithClock(now func() time.Time) Option {
	return func(a *Application) {
		a.now = now
	}
}

// WithKeypressWait replaces the final "press any key" wait
func WithKeypressWait(wait func() error) Option {
	return func(a *Application) {
		a.waitForKey = wait
	}
}

// New validates the document ids up front so a typo fails before sign-in
func New(cfg *config.Config, acquirer ports.TokenAcquirer, api ports.TranslatorAPI, printer *Printer, log *logger.StyledLogger, opts ...Option) (*Application, error) {
	documentIDs, err := config.ParseDocumentIDs(cfg.Model.DocumentIDs)
	if err != nil {
		return nil, fmt.Errorf("model.document_ids: %w", err)
	}

	a := &Application{
		config:      cfg,
		acquirer:    acquirer,
		api:         api,
		printer:     printer,
		logger:      log,
		now:         time.Now,
		documentIDs: documentIDs,
	}
	a.waitForKey = func() error {
		return util.WaitForKeypress(os.Stdin, a.printer.out, exitPrompt)
	}

	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

type apiCall struct {
	title string
	path  string
}

func (a *Application) Run(ctx context.Context) error {
	token, err := a.acquirer.Acquire(ctx)
	if err != nil {
		return err
	}
	if !token.IsValid() {
		return domain.ErrEmptyToken
	}

	a.printer.Token(token.Bearer())
	a.logToken(token)

	a.printer.Line("Calling Custom Translator API to verify auth...")

	workspaceID := a.config.API.WorkspaceID
	pageIndex := a.config.API.PageIndex
	calls := []apiCall{
		{title: "Get workspace list", path: customtranslator.WorkspacesPath()},
		{title: "Get project list", path: customtranslator.ProjectsPath(workspaceID, pageIndex)},
		{title: "Get document list", path: customtranslator.DocumentsPath(workspaceID, pageIndex)},
	}

	for _, call := range calls {
		a.printer.Heading(call.title)
		resp, err := a.api.Get(ctx, token.Bearer(), call.path)
		if err != nil {
			return fmt.Errorf("%s: %w", call.title, err)
		}
		a.report(call.title, resp)
	}

	const createTitle = "Post Create Model and Train"
	a.printer.Heading(createTitle)

	request := BuildModelRequest(a.config.Model, a.documentIDs, a.now())
	a.logger.Info("Creating model", "name", request.Name, "project_id", request.ProjectID, "documents", len(request.DocumentIDs))

	resp, err := a.api.Post(ctx, token.Bearer(), a.config.API.ModelsPath, request)
	if err != nil {
		return fmt.Errorf("%s: %w", createTitle, err)
	}
	a.report(createTitle, resp)

	if a.config.Console.WaitForKey {
		a.printer.Line("")
		if err := a.waitForKey(); err != nil {
			a.logger.Warn("Unable to wait for keypress", "error", err)
		}
	}
	return nil
}

func (a *Application) report(title string, resp *domain.Response) {
	a.printer.Response(resp)

	args := append([]any{"call", title, "request_id", resp.RequestID}, summariseBody(resp.Body)...)
	a.logger.Debug("Response summary", args...)
}

func (a *Application) logToken(token *domain.Token) {
	a.logger.Info("Token details",
		"source", string(token.Source),
		"username", token.Username,
		"expires", format.TimeUntil(token.ExpiresOn, a.now()),
	)

	claims, err := identity.ParseClaims(token.IDToken)
	if err != nil {
		a.logger.Warn("Unable to decode id token claims", "error", err)
		return
	}
	a.logger.Debug("Id token claims", claims.LogArgs()...)
}
