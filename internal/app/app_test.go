package app

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thushan/ctoken/internal/config"
	"github.com/thushan/ctoken/internal/core/domain"
	"github.com/thushan/ctoken/internal/logger"
	"github.com/thushan/ctoken/theme"
)

type fakeAcquirer struct {
	token *domain.Token
	err   error
	calls int
}

func (f *fakeAcquirer) Acquire(ctx context.Context) (*domain.Token, error) {
	f.calls++
	return f.token, f.err
}

type recordedCall struct {
	body   any
	method string
	token  string
	path   string
}

type fakeAPI struct {
	failOn string
	calls  []recordedCall
}

func (f *fakeAPI) Get(ctx context.Context, token, path string) (*domain.Response, error) {
	return f.record(http.MethodGet, token, path, nil)
}

func (f *fakeAPI) Post(ctx context.Context, token, path string, body any) (*domain.Response, error) {
	return f.record(http.MethodPost, token, path, body)
}

func (f *fakeAPI) record(method, token, path string, body any) (*domain.Response, error) {
	f.calls = append(f.calls, recordedCall{method: method, token: token, path: path, body: body})
	if f.failOn != "" && strings.HasPrefix(path, f.failOn) {
		return nil, errors.New("connection refused")
	}
	return &domain.Response{
		StatusCode:  http.StatusOK,
		Description: "OK",
		Method:      method,
		Headers:     map[string][]string{"Content-Type": {"application/json"}},
		Body:        []byte(`{"path":"` + path + `"}`),
	}, nil
}

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Auth.ClientID = "client"
	cfg.API.WorkspaceID = "ws-1"
	cfg.API.PageIndex = 1
	cfg.Model.ProjectID = "proj-1"
	cfg.Model.DocumentIDs = "1,2,3"
	cfg.Console.WaitForKey = false
	return cfg
}

func newTestApp(t *testing.T, cfg *config.Config, acq *fakeAcquirer, api *fakeAPI, out *bytes.Buffer, opts ...Option) *Application {
	t.Helper()
	fixed := time.Date(2024, 3, 9, 14, 5, 7, 0, time.Local)
	opts = append([]Option{WithClock(func() time.Time { return fixed })}, opts...)

	a, err := New(cfg, acq, api, NewPrinter(out, theme.Default(), false), logger.NewDiscard(), opts...)
	require.NoError(t, err)
	return a
}

func TestRun_EndToEnd(t *testing.T) {
	acq := &fakeAcquirer{token: &domain.Token{IDToken: "T1", Source: domain.TokenSourceInteractive}}
	api := &fakeAPI{}
	var out bytes.Buffer

	require.NoError(t, newTestApp(t, testConfig(), acq, api, &out).Run(context.Background()))

	assert.Equal(t, 1, acq.calls)
	require.Len(t, api.calls, 4)

	assert.Equal(t, "workspaces", api.calls[0].path)
	assert.Equal(t, "projects?workspaceId=ws-1&pageIndex=1", api.calls[1].path)
	assert.Equal(t, "documents?workspaceId=ws-1&pageIndex=1", api.calls[2].path)
	assert.Equal(t, "models", api.calls[3].path)
	assert.Equal(t, http.MethodPost, api.calls[3].method)

	for _, c := range api.calls {
		assert.Equal(t, "T1", c.token)
	}

	req, ok := api.calls[3].body.(domain.ModelCreateRequest)
	require.True(t, ok)
	assert.Equal(t, "model-20240309-140507", req.Name)
	assert.Equal(t, "proj-1", req.ProjectID)
	assert.Equal(t, []int{1, 2, 3}, req.DocumentIDs)

	text := out.String()
	assert.Equal(t, 1, strings.Count(text, "T1"))
	assert.Equal(t, 1, strings.Count(text, tokenAcquiredMessage))
	assert.Equal(t, 4, strings.Count(text, "StatusCode: 200"))
	assert.Equal(t, 4, strings.Count(text, "Description: OK"))
	assert.Equal(t, 4, strings.Count(text, "Headers: Content-Type=application/json"))
	assert.Equal(t, 4, strings.Count(text, "Content: {"))

	order := []string{
		"Get workspace list",
		`Content: {"path":"workspaces"}`,
		"Get project list",
		`Content: {"path":"projects?workspaceId=ws-1&pageIndex=1"}`,
		"Get document list",
		`Content: {"path":"documents?workspaceId=ws-1&pageIndex=1"}`,
		"Post Create Model and Train",
		`Content: {"path":"models"}`,
	}
	last := -1
	for _, marker := range order {
		idx := strings.Index(text, marker)
		require.Greater(t, idx, last, "expected %q after previous block", marker)
		last = idx
	}
}

func TestRun_AcquireFailureMakesNoCalls(t *testing.T) {
	acq := &fakeAcquirer{err: &domain.AuthError{Stage: "interactive", Err: errors.New("cancelled")}}
	api := &fakeAPI{}
	var out bytes.Buffer

	err := newTestApp(t, testConfig(), acq, api, &out).Run(context.Background())

	var authErr *domain.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Empty(t, api.calls)
	assert.Empty(t, out.String())
}

func TestRun_EmptyTokenRejected(t *testing.T) {
	acq := &fakeAcquirer{token: &domain.Token{}}
	api := &fakeAPI{}
	var out bytes.Buffer

	err := newTestApp(t, testConfig(), acq, api, &out).Run(context.Background())

	require.ErrorIs(t, err, domain.ErrEmptyToken)
	assert.Empty(t, api.calls)
}

func TestRun_TransportErrorAborts(t *testing.T) {
	acq := &fakeAcquirer{token: &domain.Token{IDToken: "T1"}}
	api := &fakeAPI{failOn: "projects"}
	var out bytes.Buffer

	err := newTestApp(t, testConfig(), acq, api, &out).Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Get project list")
	assert.Len(t, api.calls, 2)
	assert.NotContains(t, out.String(), "Get document list")
}

func TestRun_WaitsForKeyWhenConfigured(t *testing.T) {
	tests := []struct {
		name      string
		waitOnKey bool
		waitErr   error
		wantCalls int
	}{
		{name: "enabled", waitOnKey: true, wantCalls: 1},
		{name: "disabled", waitOnKey: false, wantCalls: 0},
		{name: "wait error is not fatal", waitOnKey: true, waitErr: errors.New("bad tty"), wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Console.WaitForKey = tt.waitOnKey

			calls := 0
			wait := WithKeypressWait(func() error {
				calls++
				return tt.waitErr
			})

			var out bytes.Buffer
			a := newTestApp(t, cfg, &fakeAcquirer{token: &domain.Token{IDToken: "T1"}}, &fakeAPI{}, &out, wait)

			require.NoError(t, a.Run(context.Background()))
			assert.Equal(t, tt.wantCalls, calls)
		})
	}
}

func TestNew_RejectsMalformedDocumentIDs(t *testing.T) {
	cfg := testConfig()
	cfg.Model.DocumentIDs = "1,two,3"

	_, err := New(cfg, &fakeAcquirer{}, &fakeAPI{}, NewPrinter(&bytes.Buffer{}, theme.Default(), false), logger.NewDiscard())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "model.document_ids")
}
