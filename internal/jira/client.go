// Package jira is a minimal read-only client for the Jira Cloud REST API:
// issue discovery through JQL search and per-issue worklog retrieval. It is
// deliberately single-page — the report pipeline assumes one bounded page
// of candidate issues.
package jira

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hanbipark/worklog/internal/domain"
)

// Config holds connection settings for the Jira API.
type Config struct {
	BaseURL    string // e.g. "https://example.atlassian.net"
	Email      string
	APIToken   string
	TimeoutMs  int // per-request timeout
	MaxResults int // single-page bound for search and worklog calls
}

// Client talks to the Jira Cloud REST API v3.
type Client struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewClient creates a Jira API client. A nil observer disables call events.
func NewClient(cfg Config, observer Observer) *Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	if cfg.TimeoutMs <= 0 {
		cfg.TimeoutMs = 45000
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = 100
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Client{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// SearchWorklogIssues discovers the issues in a project holding at least
// one worklog by the author inside the inclusive date range, fetching only
// the fields the report pipeline needs.
func (c *Client) SearchWorklogIssues(ctx context.Context, project, author, startDate, endDate string) ([]domain.Issue, error) {
	jql := WorklogJQL(project, author, startDate, endDate)
	return c.SearchIssues(ctx, jql, []string{"key", "summary", "parent"})
}

// SearchIssues runs a JQL query and returns the first page of matching
// issues, restricted to the requested fields.
func (c *Client) SearchIssues(ctx context.Context, jql string, fields []string) ([]domain.Issue, error) {
	params := url.Values{}
	params.Set("jql", jql)
	params.Set("startAt", "0")
	params.Set("maxResults", strconv.Itoa(c.cfg.MaxResults))
	params.Set("fields", strings.Join(fields, ","))

	var resp searchResponse
	if err := c.get(ctx, "/rest/api/3/search", params, &resp, CallEvent{Operation: "search"}); err != nil {
		return nil, err
	}

	issues := make([]domain.Issue, 0, len(resp.Issues))
	for _, it := range resp.Issues {
		issues = append(issues, it.toDomain())
	}
	return issues, nil
}

// IssueWorklogs fetches the worklog entries of one issue. Entries missing a
// parseable start timestamp are dropped here; they can never aggregate.
func (c *Client) IssueWorklogs(ctx context.Context, issueKey, issueTitle string) ([]domain.WorklogEntry, error) {
	params := url.Values{}
	params.Set("startAt", "0")
	params.Set("maxResults", strconv.Itoa(c.cfg.MaxResults))

	var resp worklogResponse
	event := CallEvent{Operation: "worklogs", IssueKey: issueKey}
	if err := c.get(ctx, "/rest/api/3/issue/"+url.PathEscape(issueKey)+"/worklog", params, &resp, event); err != nil {
		return nil, err
	}

	entries := make([]domain.WorklogEntry, 0, len(resp.Worklogs))
	for _, w := range resp.Worklogs {
		if e, ok := w.toDomain(issueKey, issueTitle); ok {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any, event CallEvent) error {
	start := time.Now()
	event.RequestID = uuid.NewString()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	err := c.doGet(ctx, path, params, out)

	event.LatencyMs = time.Since(start).Milliseconds()
	event.Success = err == nil
	if err != nil {
		if ctx.Err() != nil {
			err = ErrTimeout
		} else if isConnectionError(err) {
			err = fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		event.ErrorCode = errorCode(err)
	}
	c.observer.OnCallComplete(event)
	return err
}

func (c *Client) doGet(ctx context.Context, path string, params url.Values, out any) error {
	reqURL := c.cfg.BaseURL + path + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.SetBasicAuth(c.cfg.Email, c.cfg.APIToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return &StatusError{StatusCode: resp.StatusCode, Body: truncate(string(body), 200)}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func isConnectionError(err error) bool {
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	var statusErr *StatusError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.As(err, &statusErr):
		return "HTTP_" + strconv.Itoa(statusErr.StatusCode)
	default:
		return "UNKNOWN"
	}
}
