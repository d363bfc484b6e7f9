// Package sis implements the client for the upstream Student Information
// System API. Every operation performs exactly one HTTP GET with the API
// key appended as a query parameter; there is no retry, backoff, or
// caching.
package sis

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/siscraper/catalog-api/internal/models"
	"github.com/siscraper/catalog-api/internal/query"
	"github.com/siscraper/catalog-api/pkg/config"
)

// Observer receives the outcome of each upstream call. Implemented by the
// metrics service; a nil observer disables instrumentation.
type Observer interface {
	ObserveUpstreamRequest(endpoint string, status int, duration time.Duration)
}

// Client talks to the upstream SIS API. The API key is loaded once at
// construction and read-only thereafter, so concurrent calls share it
// without coordination.
type Client struct {
	baseURL  string
	apiKey   string
	httpc    *http.Client
	logger   *zap.Logger
	observer Observer
}

// New builds a Client from the SIS configuration section.
func New(cfg config.SISConfig, logger *zap.Logger, observer Observer) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:   cfg.APIKey,
		httpc:    &http.Client{Timeout: cfg.Timeout},
		logger:   logger,
		observer: observer,
	}
}

// Schools fetches the school-codes list, passed through verbatim.
func (c *Client) Schools(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "schools", []string{"codes", "schools"}, "")
}

// Departments fetches the department-codes list for one school, passed
// through verbatim.
func (c *Client) Departments(ctx context.Context, school string) (json.RawMessage, error) {
	return c.get(ctx, "departments", []string{"codes", "departments", school}, "")
}

// Terms fetches the term-codes list, passed through verbatim.
func (c *Client) Terms(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "terms", []string{"codes", "terms"}, "")
}

// SearchCourses runs one course search. The response list is split into
// its elements so the decomposition engine can concatenate result lists
// without re-encoding individual course records.
func (c *Client) SearchCourses(ctx context.Context, req models.CourseSearchRequest) ([]json.RawMessage, error) {
	body, err := c.get(ctx, "search", nil, query.FormatCourseQuery(req))
	if err != nil {
		return nil, err
	}

	var courses []json.RawMessage
	if err := json.Unmarshal(body, &courses); err != nil {
		return nil, fmt.Errorf("decode course search response: %w", err)
	}
	return courses, nil
}

// CourseDetails fetches the detailed record for one course section in one
// term, passed through verbatim.
func (c *Client) CourseDetails(ctx context.Context, req models.TermedCourseDetailsRequest) (json.RawMessage, error) {
	return c.get(ctx, "details", query.CourseDetailsPath(req), "")
}

// CourseSections fetches the section records for one course, optionally
// narrowed to a term, passed through verbatim.
func (c *Client) CourseSections(ctx context.Context, req models.CourseDetailsRequest) (json.RawMessage, error) {
	return c.get(ctx, "sections", query.CourseSectionsPath(req), "")
}

// get performs the single GET attempt every operation boils down to.
// pathSegments extend the base URL; rawQuery is an unescaped fragment from
// the query formatter. The API key is always appended last.
func (c *Client) get(ctx context.Context, endpoint string, pathSegments []string, rawQuery string) (json.RawMessage, error) {
	u := c.baseURL
	for _, segment := range pathSegments {
		u += "/" + url.PathEscape(segment)
	}

	q := escapeQuery(rawQuery)
	if q != "" {
		q += "&"
	}
	u += "?" + q + "key=" + url.QueryEscape(c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", endpoint, err)
	}

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		c.observe(endpoint, 0, time.Since(start))
		return nil, fmt.Errorf("sis %s request: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	c.observe(endpoint, resp.StatusCode, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("read sis %s response: %w", endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("sis request failed",
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("sis %s request: unexpected status %d", endpoint, resp.StatusCode)
	}

	return json.RawMessage(body), nil
}

func (c *Client) observe(endpoint string, status int, duration time.Duration) {
	if c.observer != nil {
		c.observer.ObserveUpstreamRequest(endpoint, status, duration)
	}
}

// escapeQuery percent-encodes the keys and values of a formatter-produced
// query fragment while preserving its parameter order, which url.Values
// re-encoding would sort away.
func escapeQuery(rawQuery string) string {
	if rawQuery == "" {
		return ""
	}

	pairs := strings.Split(rawQuery, "&")
	escaped := make([]string, len(pairs))
	for i, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found {
			escaped[i] = url.QueryEscape(pair)
			continue
		}
		escaped[i] = url.QueryEscape(key) + "=" + url.QueryEscape(value)
	}
	return strings.Join(escaped, "&")
}
