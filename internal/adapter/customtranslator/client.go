package customtranslator

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/thushan/ctoken/internal/config"
	"github.com/thushan/ctoken/internal/core/constants"
	"github.com/thushan/ctoken/internal/core/domain"
	"github.com/thushan/ctoken/internal/core/ports"
	"github.com/thushan/ctoken/internal/logger"
	"github.com/thushan/ctoken/internal/util"
	"github.com/thushan/ctoken/internal/version"
	"github.com/thushan/ctoken/pkg/format"
)

const (
	MaxResponseSize = 10 * 1024 * 1024 // 10MB

	DefaultMaxIdleConnections = 4
	DefaultIdleConnTimeout    = 30 * time.Second
)

// Client makes single authenticated calls against the Custom Translator API
type Client struct {
	httpClient *http.Client
	logger     *logger.StyledLogger
	baseURL    string
}

var _ ports.TranslatorAPI = (*Client)(nil)

func NewClient(cfg config.APIConfig, log *logger.StyledLogger) *Client {
	return NewClientWithHTTP(cfg, &http.Client{
		Timeout: cfg.Timeout,
		Transport: &http.Transport{
			Proxy:           http.ProxyFromEnvironment,
			MaxIdleConns:    DefaultMaxIdleConnections,
			IdleConnTimeout: DefaultIdleConnTimeout,
		},
	}, log)
}

func NewClientWithHTTP(cfg config.APIConfig, httpClient *http.Client, log *logger.StyledLogger) *Client {
	return &Client{
		httpClient: httpClient,
		logger:     log,
		baseURL:    cfg.Endpoint,
	}
}

func (c *Client) Get(ctx context.Context, token, path string) (*domain.Response, error) {
	return c.do(ctx, http.MethodGet, token, util.ResolveURLPath(c.baseURL, path), nil)
}

// Post sends body encoded as JSON
func (c *Client) Post(ctx context.Context, token, path string, body any) (*domain.Response, error) {
	target := util.ResolveURLPath(c.baseURL, path)

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, &domain.APIError{Method: http.MethodPost, URL: target, Operation: "encode_body", Err: err}
	}
	return c.do(ctx, http.MethodPost, token, target, payload)
}

// do sends one request to the already resolved target URL
func (c *Client) do(ctx context.Context, method, token, target string, payload []byte) (*domain.Response, error) {
	requestID := util.GenerateRequestID()
	rlog := c.logger.WithRequestID(requestID)

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, &domain.APIError{Method: method, URL: target, Operation: "create_request", Err: err}
	}
	req.Header.Set(constants.HeaderAuthorization, constants.BearerPrefix+token)
	req.Header.Set(constants.HeaderAccept, constants.ContentTypeJSON)
	req.Header.Set(constants.HeaderUserAgent, version.UserAgent())
	req.Header.Set(constants.HeaderRequestID, requestID)
	if payload != nil {
		req.Header.Set(constants.HeaderContentType, constants.ContentTypeJSON)
	}

	rlog.Debug("Sending request", "method", method, "url", target, "body_size", format.Bytes(uint64(len(payload))))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.APIError{Method: method, URL: target, Operation: "http_request", Err: &NetworkError{URL: target, Err: err}}
	}
	defer func(Body io.ReadCloser) {
		// dont care about errors
		_ = Body.Close()
	}(resp.Body)

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize))
	if err != nil {
		return nil, &domain.APIError{Method: method, URL: target, Operation: "read_body", Err: &NetworkError{URL: target, Err: err}}
	}
	latency := time.Since(start)

	result := &domain.Response{
		Method:      method,
		URL:         target,
		RequestID:   requestID,
		StatusCode:  resp.StatusCode,
		Description: statusDescription(resp),
		Headers:     resp.Header.Clone(),
		Body:        data,
		Latency:     latency,
	}

	if result.IsSuccess() {
		rlog.InfoWithStatus(method+" "+target, resp.StatusCode,
			"latency", format.Duration(latency),
			"size", format.Bytes(uint64(len(data))),
		)
	} else {
		rlog.WarnWithContext(method, target, logger.LogContext{
			UserArgs: []any{
				"status", resp.StatusCode,
				"latency", format.Duration(latency),
			},
			DetailedArgs: []any{
				"size", format.Bytes(uint64(len(data))),
				"content_type", resp.Header.Get(constants.HeaderContentType),
			},
		})
	}

	return result, nil
}

// statusDescription is the reason phrase without the code, "OK" for "200 OK"
func statusDescription(resp *http.Response) string {
	if len(resp.Status) > 4 && resp.Status[3] == ' ' {
		return resp.Status[4:]
	}
	if resp.Status != "" {
		return resp.Status
	}
	return http.StatusText(resp.StatusCode)
}
