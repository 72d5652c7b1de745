// Package client is a typed Go SDK for the MusicBrainz Web Service v2.
//
// All requests funnel through a single throttled primitive that honors the
// service's X-RateLimit-Remaining / X-RateLimit-Reset response headers, so a
// single Client instance never hammers the service during a cooldown window.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultBaseURL is the production MusicBrainz Web Service endpoint.
const DefaultBaseURL = "https://musicbrainz.org/ws/2/"

// defaultUserAgent identifies this SDK per the MusicBrainz client etiquette.
const defaultUserAgent = "audioscout-musicbrainz-go/0.1.0 (https://github.com/audioscout/musicbrainz-go)"

//--------------------------------------------------------------------
// Debug transport wrapper
//--------------------------------------------------------------------

// debugTransport wraps an http.RoundTripper to log requests and responses
type debugTransport struct {
	base http.RoundTripper
}

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if os.Getenv("MBZ_DEBUG") == "true" || os.Getenv("DEBUG") == "true" {
		reqDump, err := httputil.DumpRequestOut(req, true)
		if err == nil {
			log.Debug().
				Str("method", req.Method).
				Str("url", req.URL.String()).
				Str("request_dump", string(reqDump)).
				Msg("HTTP request")
		}
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		if os.Getenv("MBZ_DEBUG") == "true" || os.Getenv("DEBUG") == "true" {
			log.Error().
				Err(err).
				Str("method", req.Method).
				Str("url", req.URL.String()).
				Msg("HTTP request failed")
		}
		return nil, err
	}

	if os.Getenv("MBZ_DEBUG") == "true" || os.Getenv("DEBUG") == "true" {
		respDump, err := httputil.DumpResponse(resp, true)
		if err == nil {
			log.Debug().
				Str("method", req.Method).
				Str("url", req.URL.String()).
				Int("status_code", resp.StatusCode).
				Str("response_dump", string(respDump)).
				Msg("HTTP response")
		}
	}

	return resp, nil
}

//--------------------------------------------------------------------
// Client
//--------------------------------------------------------------------

// Client talks to a MusicBrainz-compatible web service. It is safe for
// concurrent use; the only mutable state is the rate-limit gate, which is
// replaced wholesale when the service signals a cooldown.
type Client struct {
	baseURL *url.URL
	headers map[string]string
	http    *http.Client
	gate    *rateGate
}

// New constructs a Client with optional functional arguments. The base URL
// defaults to the production MusicBrainz endpoint; every request carries
// Accept: application/json and a User-Agent.
func New(opts ...Option) *Client {
	base, err := url.Parse(DefaultBaseURL)
	if err != nil {
		panic(err)
	}
	c := &Client{
		baseURL: base,
		headers: map[string]string{
			"Accept":     "application/json",
			"User-Agent": defaultUserAgent,
		},
		http: &http.Client{Timeout: 30 * time.Second},
		gate: newRateGate(),
	}

	// Enable debug logging if environment variable is set
	if os.Getenv("MBZ_DEBUG") == "true" || os.Getenv("DEBUG") == "true" {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}
	return c
}

// MustNew remains for compatibility but simply calls New.
func MustNew(opts ...Option) *Client {
	return New(opts...)
}

//--------------------------------------------------------------------
// Generic GET / POST
//--------------------------------------------------------------------

// Get issues a GET against endpoint resolved relative to the base URL and
// returns the decoded JSON body. Entries in query whose value is nil are
// dropped before serialization. A body matching the service's error envelope
// is translated into an *APIError; any other body is returned as-is.
func (c *Client) Get(ctx context.Context, endpoint string, query map[string]any) (json.RawMessage, error) {
	u := c.resolve(endpoint)
	u.RawQuery = encodeQuery(query)

	resp, err := c.do(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	return decodeBody(resp)
}

// Post issues a POST with the JSON-serialized body and no query string. The
// response is handled exactly like Get's.
func (c *Client) Post(ctx context.Context, endpoint string, body any) (json.RawMessage, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	u := c.resolve(endpoint)

	resp, err := c.do(ctx, http.MethodPost, u.String(), bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	return decodeBody(resp)
}

//--------------------------------------------------------------------
// Throttled request primitive
//--------------------------------------------------------------------

// do waits for the rate-limit gate, sends the request, and inspects the
// response's rate-limit headers before handing it back. Installing a cooldown
// only affects requests that have not yet passed their own gate check.
func (c *Client) do(ctx context.Context, method, rawurl string, body io.Reader) (*http.Response, error) {
	if err := c.gate.wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, rawurl, body)
	if err != nil {
		return nil, err
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	requestsTotal.WithLabelValues(method, statusClass(resp.StatusCode)).Inc()

	c.observeRateLimit(resp)
	return resp, nil
}

// observeRateLimit installs a cooldown when the service reports its quota is
// exhausted. Absence of either header is not a throttling signal; a reset
// time already in the past is ignored.
func (c *Client) observeRateLimit(resp *http.Response) {
	remaining := resp.Header.Get("X-RateLimit-Remaining")
	reset := resp.Header.Get("X-RateLimit-Reset")
	if remaining == "" || reset == "" {
		return
	}
	rem, err := strconv.Atoi(remaining)
	if err != nil || rem != 0 {
		return
	}
	secs, err := strconv.ParseInt(reset, 10, 64)
	if err != nil {
		return
	}
	d := time.Until(time.Unix(secs, 0))
	if d <= 0 {
		return
	}

	c.gate.hold(d)
	rateLimitHoldsTotal.Inc()
	log.Debug().
		Dur("cooldown", d).
		Int64("reset_unix", secs).
		Msg("rate limit exhausted; holding subsequent requests")
}

//--------------------------------------------------------------------
// Internal helpers
//--------------------------------------------------------------------

// resolve joins endpoint onto the base URL with relative resolution. The
// constructor guarantees the base path ends in "/" so simple joining works.
func (c *Client) resolve(endpoint string) *url.URL {
	return c.baseURL.ResolveReference(&url.URL{Path: endpoint})
}

// encodeQuery serializes query parameters, dropping nil values. Literal "+"
// survives escaping because MusicBrainz uses it as the separator inside inc
// lists.
func encodeQuery(query map[string]any) string {
	if len(query) == 0 {
		return ""
	}
	keys := make([]string, 0, len(query))
	for k, v := range query {
		if v == nil {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		v := strings.ReplaceAll(url.QueryEscape(fmt.Sprint(query[k])), "%2B", "+")
		parts = append(parts, url.QueryEscape(k)+"="+v)
	}
	return strings.Join(parts, "&")
}

// decodeBody reads the response body as JSON. Bodies matching the service's
// error envelope ({"error": "..."}) become *APIError; malformed JSON
// propagates unmodified; anything else is returned raw for the caller to
// shape.
func decodeBody(resp *http.Response) (json.RawMessage, error) {
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, err
	}
	if obj, ok := decoded.(map[string]any); ok {
		if msg, ok := obj["error"].(string); ok {
			apiErrorsTotal.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()
			return nil, &APIError{StatusCode: resp.StatusCode, Message: msg}
		}
	}
	return json.RawMessage(data), nil
}

func statusClass(code int) string {
	return strconv.Itoa(code/100) + "xx"
}
