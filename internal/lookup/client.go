package lookup

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type Config struct {
	BaseURL         string // paid API root, no trailing slash
	AutocompleteURL string // empty means DefaultAutocompleteURL
	Timeout         time.Duration
}

// KeyFunc supplies the API key at call time (keyring-backed). Returning an
// empty key maps to ErrNotConfigured.
type KeyFunc func() (string, error)

type Client struct {
	cfg     Config
	hc      *http.Client
	key     KeyFunc
	limiter *HostLimiter
}

func New(cfg Config, key KeyFunc, limiter *HostLimiter) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 20 * time.Second
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Client{
		cfg:     cfg,
		hc:      &http.Client{Timeout: cfg.Timeout},
		key:     key,
		limiter: limiter,
	}
}

// postJSON issues one authenticated POST and decodes into out. Non-2xx
// responses are turned into the error taxonomy: 402+INSUFFICIENT_CREDITS
// becomes *InsufficientCreditsError, everything else a generic error with
// the server's message when it sent one.
func (c *Client) postJSON(ctx context.Context, path string, body any, out any) error {
	apiKey, err := c.key()
	if err != nil || strings.TrimSpace(apiKey) == "" {
		return ErrNotConfigured
	}

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-KEY", apiKey)
	req.Header.Set("User-Agent", "Prospector/1.0 (+local)")

	res, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("lookup request: %w", err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(res.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return decodeAPIError(res.StatusCode, raw)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeAPIError(status int, raw []byte) error {
	var eb errorBody
	_ = json.Unmarshal(raw, &eb)

	if status == http.StatusPaymentRequired && eb.ErrorCode == errCodeInsufficientCredits {
		bal := 0
		if eb.Balance != nil {
			bal = *eb.Balance
		}
		return &InsufficientCreditsError{Balance: bal}
	}

	msg := strings.TrimSpace(eb.Message)
	if msg == "" {
		msg = genericFailureMsg
	}
	return fmt.Errorf("%s (status %d)", msg, status)
}

// IsNotConfigured reports whether err is the missing-credential case.
func IsNotConfigured(err error) bool {
	return errors.Is(err, ErrNotConfigured)
}
