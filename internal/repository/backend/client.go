package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/NordCoder/testerdash/internal/obs"
	"github.com/NordCoder/testerdash/internal/obs/retry"
)

var (
	ErrStatus    = errors.New("backend: unexpected status")
	ErrMalformed = errors.New("backend: malformed response")
)

type Config struct {
	BaseURL       string
	Timeout       time.Duration // 0 keeps the transport default
	RetryAttempts int
	UserAgent     string
}

// Client talks to the read-only tester API. It is safe for concurrent use.
type Client struct {
	base   string
	http   *http.Client
	log    *zap.Logger
	policy retry.Policy
	ua     string
}

func New(cfg Config, log *zap.Logger) (*Client, error) {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", cfg.BaseURL)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		base:   strings.TrimRight(u.String(), "/"),
		http:   &http.Client{Timeout: cfg.Timeout, Transport: obs.HTTPTransport(nil)},
		log:    log,
		policy: retry.BackendPolicy(cfg.RetryAttempts, log),
		ua:     cfg.UserAgent,
	}, nil
}

// Health reports whether the tests listing answers.
func (c *Client) Health(ctx context.Context) error {
	var raw json.RawMessage
	return c.getJSON(ctx, "health", testsPath(), &raw)
}

func (c *Client) getJSON(ctx context.Context, op, path string, out any) error {
	start := time.Now()
	err := retry.Do(ctx, func() error { return c.fetch(ctx, path, out) }, c.policy)
	requestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	requests.WithLabelValues(op, outcome(err)).Inc()
	if err != nil {
		return fmt.Errorf("%s %s: %w", op, path, err)
	}
	return nil
}

func (c *Client) fetch(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", err, retry.ErrPermanent)
	}
	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)
	if c.ua != "" {
		req.Header.Set("User-Agent", c.ua)
	}

	log := obs.WithTrace(ctx, c.log).With(zap.String("request_id", reqID), zap.String("path", path))

	resp, err := c.http.Do(req)
	if err != nil {
		log.Debug("backend request failed", zap.Error(err))
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		log.Debug("backend status", zap.Int("status", resp.StatusCode))
		err := fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode)
		if resp.StatusCode < 500 {
			return fmt.Errorf("%w: %w", err, retry.ErrPermanent)
		}
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %w: %w", ErrMalformed, err, retry.ErrPermanent)
	}
	log.Debug("backend ok", zap.Int("status", resp.StatusCode))
	return nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrMalformed):
		return "malformed"
	case errors.Is(err, ErrStatus):
		return "status"
	default:
		return "transport"
	}
}

func testsPath() string { return "/api/tests/" }

func testPath(name string, parts ...string) string {
	var b strings.Builder
	b.WriteString("/api/tests/")
	b.WriteString(url.PathEscape(name))
	b.WriteByte('/')
	for _, p := range parts {
		b.WriteString(p)
		b.WriteByte('/')
	}
	return b.String()
}
