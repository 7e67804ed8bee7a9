// Package api is a typed client for the habitrack REST API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	checkinDto "habitrack/internal/domains/checkin/model/dto"
	habitDto "habitrack/internal/domains/habit/model/dto"
	"habitrack/shared/constant"
	"habitrack/shared/date"

	"github.com/pkg/errors"
)

const (
	DefaultServerURL = "http://localhost:5000"

	defaultTimeout = 10 * time.Second
	maxBodySize    = 1 << 20
	apiPrefix      = "/api"
)

// Error is returned for every non-2xx response.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: unexpected status %d", e.StatusCode)
	}

	return e.Message
}

func IsNotFound(err error) bool {
	var apiErr *Error

	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

type Option func(*Client)

func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) { c.http = client }
}

func New(baseURL string, opts ...Option) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultServerURL
	}

	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) Health(ctx context.Context) (Health, error) {
	var out Health
	err := c.do(ctx, http.MethodGet, "/health", nil, nil, &out)

	return out, err
}

func (c *Client) ListHabits(ctx context.Context) ([]Habit, error) {
	var out []Habit
	err := c.do(ctx, http.MethodGet, "/habits", nil, nil, &out)

	return out, err
}

func (c *Client) CreateHabit(ctx context.Context, name, description string) (Habit, error) {
	var out Habit
	err := c.do(ctx, http.MethodPost, "/habits", nil, habitDto.CreateHabitRequest{
		Name:        name,
		Description: description,
	}, &out)

	return out, err
}

func (c *Client) GetHabit(ctx context.Context, id int64) (Habit, error) {
	var out Habit
	err := c.do(ctx, http.MethodGet, habitPath(id), nil, nil, &out)

	return out, err
}

func (c *Client) DeleteHabit(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, habitPath(id), nil, nil, nil)
}

// ListCheckins returns a habit's check-ins. Zero dates leave the bound open.
func (c *Client) ListCheckins(ctx context.Context, habitID int64, start, end date.Date) ([]Checkin, error) {
	query := url.Values{}
	if !start.IsZero() {
		query.Set("startDate", start.String())
	}

	if !end.IsZero() {
		query.Set("endDate", end.String())
	}

	var out []Checkin
	err := c.do(ctx, http.MethodGet, checkinPath(habitID), query, nil, &out)

	return out, err
}

func (c *Client) ListAllCheckins(ctx context.Context) ([]CheckinWithHabit, error) {
	var out []CheckinWithHabit
	err := c.do(ctx, http.MethodGet, "/checkins", nil, nil, &out)

	return out, err
}

func (c *Client) UpsertCheckin(ctx context.Context, habitID int64, day date.Date, status string) (Checkin, error) {
	var out Checkin
	err := c.do(ctx, http.MethodPost, checkinPath(habitID), nil, checkinDto.UpsertCheckinRequest{
		Date:   day.String(),
		Status: status,
	}, &out)

	return out, err
}

func (c *Client) DeleteCheckin(ctx context.Context, habitID int64, day date.Date) error {
	return c.do(ctx, http.MethodDelete, checkinPath(habitID)+"/"+day.String(), nil, nil, nil)
}

func (c *Client) Summary(ctx context.Context) (Summary, error) {
	var out Summary
	err := c.do(ctx, http.MethodGet, "/summary", nil, nil, &out)

	return out, err
}

func (c *Client) HabitSummary(ctx context.Context, habitID int64) (HabitSummary, error) {
	var out HabitSummary
	err := c.do(ctx, http.MethodGet, "/summary/habit/"+strconv.FormatInt(habitID, 10), nil, nil, &out)

	return out, err
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	target := c.baseURL + apiPrefix + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "api: encoding request")
		}

		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return errors.Wrap(err, "api: creating request")
	}

	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.apiKey != "" {
		req.Header.Set(constant.RequestHeaderAPIKey, c.apiKey)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "api: %s %s", method, path)
	}
	defer func() { _ = res.Body.Close() }()

	payload, err := io.ReadAll(io.LimitReader(res.Body, maxBodySize))
	if err != nil {
		return errors.Wrap(err, "api: reading response")
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return decodeError(res.StatusCode, payload)
	}

	if out == nil || len(payload) == 0 {
		return nil
	}

	if err = json.Unmarshal(payload, out); err != nil {
		return errors.Wrap(err, "api: decoding response")
	}

	return nil
}

func decodeError(status int, payload []byte) error {
	var body struct {
		Error string `json:"error"`
	}

	_ = json.Unmarshal(payload, &body)

	return &Error{StatusCode: status, Message: body.Error}
}

func habitPath(id int64) string {
	return "/habits/" + strconv.FormatInt(id, 10)
}

func checkinPath(habitID int64) string {
	return "/checkins/" + strconv.FormatInt(habitID, 10)
}
