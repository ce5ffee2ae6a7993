// Package chrono is an HTTP client for the timestamps endpoints of the
// Chrono API
package chrono

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/chrono-hq/chrono/internal/models"
)

const (
	maxResponseBytes      = 1 << 20
	defaultRequestTimeout = 30 * time.Second
	dateOnly              = "2006-01-02"

	// SessionCookie is the cookie that carries the caller's authentication.
	SessionCookie = "session"
)

// Client talks to a Chrono server on behalf of one authenticated user.
type Client struct {
	HTTPClient     *http.Client
	BaseURL        string
	Session        string
	UserAgent      string
	RequestTimeout time.Duration
}

// envelope is the response wrapper used by every Chrono endpoint.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// Start opens a new session for the caller.
func (c *Client) Start(ctx context.Context) (models.Session, error) {
	var s models.Session

	err := c.do(ctx, http.MethodPost, "timestamps", nil, nil, &s)

	return s, err
}

// Stop closes the session with the given id and returns it with its end
// time set.
func (c *Client) Stop(ctx context.Context, id int64) (models.Session, error) {
	var s models.Session

	err := c.do(ctx, http.MethodPatch, "timestamps/"+strconv.FormatInt(id, 10), nil, nil, &s)

	return s, err
}

// Latest returns the caller's most recent session, open or closed. It
// returns an error matching ErrNotFound when the caller has none.
func (c *Client) Latest(ctx context.Context) (models.Session, error) {
	var s models.Session

	err := c.do(ctx, http.MethodGet, "timestamps/latest", nil, nil, &s)

	return s, err
}

// Today returns the sessions the caller started today.
func (c *Client) Today(ctx context.Context) ([]models.Session, error) {
	var s []models.Session

	err := c.do(ctx, http.MethodGet, "timestamps/day", nil, nil, &s)

	return s, err
}

// Update corrects the bounds of a session. The server only allows this for
// privileged callers.
func (c *Client) Update(ctx context.Context, s models.Session) (models.Session, error) {
	form := url.Values{}
	form.Set("id", strconv.FormatInt(s.ID, 10))
	form.Set("user_id", strconv.FormatInt(s.UserID, 10))
	form.Set("start_time", s.StartTime.UTC().Format(time.RFC3339))

	if s.EndTime != nil {
		form.Set("end_time", s.EndTime.UTC().Format(time.RFC3339))
	} else {
		form.Set("end_time", "")
	}

	var updated models.Session

	err := c.do(ctx, http.MethodPut, "timestamps/"+strconv.FormatInt(s.ID, 10), nil, form, &updated)

	return updated, err
}

// InRange returns the caller's sessions started between start and end
// inclusive. The server reads startDate and endDate as UTC midnights with an
// exclusive end, so the query covers every UTC day touched by the range and
// the result is trimmed to [start, end].
func (c *Client) InRange(ctx context.Context, start, end time.Time) ([]models.Session, error) {
	from := start.UTC()
	to := end.UTC().AddDate(0, 0, 1)

	query := url.Values{}
	query.Set("startDate", from.Format(dateOnly))
	query.Set("endDate", to.Format(dateOnly))

	var s []models.Session

	if err := c.do(ctx, http.MethodGet, "timestamps", query, nil, &s); err != nil {
		return nil, err
	}

	return slices.DeleteFunc(s, func(sess models.Session) bool {
		return sess.StartTime.Before(start) || sess.StartTime.After(end)
	}), nil
}

// WorkHours returns the worked and expected hours for a year.
func (c *Client) WorkHours(ctx context.Context, year int) (models.WorkHours, error) {
	var w models.WorkHours

	err := c.do(ctx, http.MethodGet, "timestamps/worked/"+strconv.Itoa(year), nil, nil, &w)

	return w, err
}

func (c *Client) do(
	ctx context.Context,
	method, path string,
	query, form url.Values,
	out any,
) error {
	endpoint, err := buildAPIURL(c.BaseURL, path)
	if err != nil {
		return err
	}

	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	reqCtx, cancel := c.requestContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, method, endpoint, body)
	if err != nil {
		return errRequest.Fmt(method, path).Wrap(err)
	}

	req.Header.Set("Accept", "application/json")

	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	if c.Session != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: c.Session})
	}

	slog.DebugContext(ctx, "chrono request", slog.String("method", method), slog.String("path", path))

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return errRequest.Fmt(method, path).Wrap(err)
	}
	defer func() { _ = resp.Body.Close() }()

	return decodeResponse(resp, path, out)
}

// decodeResponse unwraps the response envelope. Error responses are turned
// into named errors carrying the server's message verbatim.
func decodeResponse(resp *http.Response, path string, out any) error {
	var env envelope

	decodeErr := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&env)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return statusError(resp.StatusCode, env.Message)
	}

	if decodeErr != nil && !errors.Is(decodeErr, io.EOF) {
		return errDecode.Fmt(path).Wrap(decodeErr)
	}

	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return errDecode.Fmt(path).Wrap(err)
	}

	return nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}

	return http.DefaultClient
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	timeout := c.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return context.WithTimeout(ctx, timeout)
}

func buildAPIURL(baseURL, path string) (string, error) {
	if baseURL == "" {
		return "", errInvalidBaseURL.Fmt("base url is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", errInvalidBaseURL.Fmt(err.Error())
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errInvalidBaseURL.Fmt("must use http or https")
	}

	if parsed.Host == "" {
		return "", errInvalidBaseURL.Fmt("host is required")
	}

	// resolve relative to the base path, not the host root
	if !strings.HasSuffix(parsed.Path, "/") {
		parsed.Path += "/"
	}

	endpoint, err := parsed.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parse api path: %w", err)
	}

	return endpoint.String(), nil
}
