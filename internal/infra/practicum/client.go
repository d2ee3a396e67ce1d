// internal/infra/practicum/client.go
package practicum

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"homework_status_bot/internal/domain/homework"

	"github.com/sirupsen/logrus"
)

// DefaultEndpoint is the Practicum homework statuses API.
const DefaultEndpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"

const defaultTimeout = 30 * time.Second

// Client performs single requests to the homework statuses API. It never retries.
type Client struct {
	httpClient *http.Client
	endpoint   string
	token      string
	logger     *logrus.Entry
}

func NewClient(endpoint, token string, timeout time.Duration, logger *logrus.Entry) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint,
		token:      token,
		logger:     logger.WithField("component", "practicum_client"),
	}
}

// Endpoint returns the URL requests are sent to.
func (c *Client) Endpoint() string { return c.endpoint }

// Fetch requests status changes since fromDate (Unix seconds) and returns the
// decoded JSON body as is. The payload is not validated here.
func (c *Client) Fetch(ctx context.Context, fromDate int64) (any, error) {
	logCtx := c.logger.WithField("from_date", fromDate)
	logCtx.Debug("Requesting homework statuses")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, &homework.FetchError{Kind: homework.FetchUnreachable, Endpoint: c.endpoint, Err: err}
	}
	req.Header.Set("Authorization", "OAuth "+c.token)
	q := req.URL.Query()
	q.Set("from_date", strconv.FormatInt(fromDate, 10))
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logCtx.WithError(err).Errorf("Endpoint %s is unreachable", c.endpoint)
		return nil, &homework.FetchError{Kind: homework.FetchUnreachable, Endpoint: c.endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		logCtx.WithField("status_code", resp.StatusCode).Errorf("Endpoint %s responded with a non-success status", c.endpoint)
		return nil, &homework.FetchError{
			Kind:       homework.FetchBadStatus,
			Endpoint:   c.endpoint,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	var payload any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		logCtx.WithError(err).Error("Failed to decode API response")
		return nil, &homework.FetchError{Kind: homework.FetchMalformedBody, Endpoint: c.endpoint, Err: err}
	}
	return payload, nil
}
