package activityapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/KasumiMercury/primind-activity-timeline/internal/domain"
	"github.com/KasumiMercury/primind-activity-timeline/internal/observability/logging"
	"github.com/KasumiMercury/primind-activity-timeline/internal/observability/tracing"
)

const (
	activityPath = "/api/useractivity"
	// authCookie is the session cookie the activity endpoint authenticates with.
	authCookie = "auth_token"
)

// Client reads user activities from the document management REST API.
type Client struct {
	baseURL    string
	authToken  string
	httpClient *http.Client
}

var _ domain.ActivitySource = (*Client)(nil)

func NewClient(baseURL, authToken string) *Client {
	return &Client{
		baseURL:    baseURL,
		authToken:  authToken,
		httpClient: newHTTPClient(baseURL),
	}
}

// NewClientWithHTTPClient is NewClient with a caller supplied transport.
func NewClientWithHTTPClient(baseURL, authToken string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    baseURL,
		authToken:  authToken,
		httpClient: httpClient,
	}
}

func (c *Client) ListActivities(ctx context.Context, criteria domain.ActivityCriteria) (*domain.ActivityPage, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	u.Path = u.Path + activityPath
	u.RawQuery = queryFor(criteria).Encode()

	slog.DebugContext(ctx, "fetching user activities",
		slog.String("url", u.String()),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	requestID := logging.ValidateAndExtractRequestID(logging.RequestIDFromContext(ctx))
	req.Header.Set("x-request-id", requestID)
	if c.authToken != "" {
		req.AddCookie(&http.Cookie{Name: authCookie, Value: c.authToken})
	}
	tracing.InjectToHTTPRequest(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.ErrorContext(ctx, "failed to send request to activity endpoint",
			slog.String("url", u.String()),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.ErrorContext(ctx, "unexpected status code from activity endpoint",
			slog.String("url", u.String()),
			slog.Int("status_code", resp.StatusCode),
		)
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var listResp listResponse
	if err := json.Unmarshal(body, &listResp); err != nil {
		slog.ErrorContext(ctx, "failed to decode activity response",
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	page := listResp.toPage()

	slog.DebugContext(ctx, "fetched user activities",
		slog.Int("count", len(page.Activities)),
		slog.Int("total", page.Total),
	)

	return page, nil
}

func queryFor(criteria domain.ActivityCriteria) url.Values {
	q := url.Values{}
	if criteria.Limit > 0 {
		q.Set("limit", strconv.Itoa(criteria.Limit))
	}
	if criteria.Offset > 0 {
		q.Set("offset", strconv.Itoa(criteria.Offset))
	}
	q.Set("sort_column", strconv.Itoa(int(criteria.SortColumn)))
	q.Set("asc", strconv.FormatBool(criteria.Ascending))
	if criteria.ActivityType != "" {
		q.Set("activity_type", criteria.ActivityType)
	}
	if criteria.UserID != "" {
		q.Set("user_id", criteria.UserID)
	}
	if criteria.EntityID != "" {
		q.Set("entity_id", criteria.EntityID)
	}
	return q
}
