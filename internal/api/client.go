// Package api is the bearer-authenticated client for the UFC retail API. It
// is the single place remote collections are fetched from: pagination,
// sorting, filtering, bounded retry and error classification all live here so
// the assembler above it only sees typed results.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"ufcdash/internal/apierror"
	"ufcdash/internal/config"
	"ufcdash/internal/session"
)

// Client talks to the remote API. Every credential-gated call re-checks the
// session at the point of use; an expired credential never reaches the wire.
type Client struct {
	baseURL string
	http    *http.Client
	session *session.Manager

	retries int           // extra attempts after the first, transient errors only
	backoff time.Duration // fixed delay between attempts
	br      *breaker
}

func New(cfg *config.Config, sess *session.Manager) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.APIBaseURL, "/"),
		http:    &http.Client{Timeout: time.Duration(cfg.HTTPTimeoutSeconds) * time.Second},
		session: sess,
		retries: cfg.RetryAttempts,
		backoff: time.Duration(cfg.RetryBackoffMillis) * time.Millisecond,
		br:      newBreaker(),
	}
}

// Session exposes the injected manager so callers share one credential.
func (c *Client) Session() *session.Manager { return c.session }

// serverError is the error envelope the API returns on 4xx/5xx.
type serverError struct {
	Message string `json:"message"`
}

// bearer returns the current credential or a KindAuth error. Detecting expiry
// here purges the store, so the forced-logout transition happens exactly once.
func (c *Client) bearer(op string) (string, error) {
	s := c.session.Current()
	if !s.Valid() {
		c.session.Invalidate()
		return "", apierror.Auth(op, "session expired, please log in again", nil)
	}
	return s.Token(), nil
}

// get fetches path with bounded retry: up to c.retries extra attempts with a
// fixed backoff, transient failures only. The final failure surfaces as an
// explicit KindTransient error, never a silently empty result.
func (c *Client) get(ctx context.Context, op, path string, query url.Values, authed bool, out any) error {
	return c.withRetry(ctx, op, func() error {
		return c.do(ctx, op, http.MethodGet, path, query, nil, authed, out)
	})
}

// post sends body as JSON. idempotent marks requests safe to retry: the sale
// POST carries a client request id, the inventory POST upserts by product.
func (c *Client) post(ctx context.Context, op, path string, body, out any, authed, idempotent bool) error {
	call := func() error {
		return c.do(ctx, op, http.MethodPost, path, nil, body, authed, out)
	}
	if !idempotent {
		return call()
	}
	return c.withRetry(ctx, op, call)
}

func (c *Client) withRetry(ctx context.Context, op string, call func() error) error {
	var err error
	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			log.Debug().Str("op", op).Int("attempt", attempt+1).Msg("retrying request")
			select {
			case <-time.After(c.backoff):
			case <-ctx.Done():
				return apierror.Transient(op, "request cancelled", ctx.Err())
			}
		}
		err = call()
		if err == nil || apierror.KindOf(err) != apierror.KindTransient {
			return err
		}
	}
	return err
}

func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body any, authed bool, out any) error {
	if !c.br.allow() {
		return apierror.Transient(op, "service unavailable, backing off", nil)
	}

	var token string
	if authed {
		var err error
		if token, err = c.bearer(op); err != nil {
			return err
		}
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: marshal request: %w", op, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("%s: create request: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.br.failure()
		return apierror.Transient(op, "could not reach the server", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		c.br.failure()
		return apierror.Transient(op, "server error", fmt.Errorf("status %d", resp.StatusCode))
	}
	c.br.success()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		c.session.Invalidate()
		return apierror.Auth(op, "credential rejected, please log in again", nil)
	case resp.StatusCode >= 400:
		msg := "request rejected"
		var env serverError
		if decodeErr := json.NewDecoder(resp.Body).Decode(&env); decodeErr == nil && env.Message != "" {
			msg = env.Message
		}
		return &apierror.Error{Kind: apierror.KindValidation, Op: op, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apierror.Transient(op, "malformed server response", err)
	}
	return nil
}
