// README: Quote client issues one GET /quote per submitted trip.
package quote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"busquote/internal/config"
)

var (
	// ErrRequest covers transport failures, non-2xx statuses and unparseable bodies.
	ErrRequest = errors.New("quote request failed")
	// ErrDataShape means the body parsed but lacks main_options or backups.
	ErrDataShape = errors.New("quote response malformed")
)

const maxBodyBytes = 4 << 20

type Client struct {
	baseURL string
	httpc   *http.Client
}

// NewClient builds a client for cfg.BaseURL. A nil httpc uses a plain
// http.Client, so only the transport's own defaults bound the call.
func NewClient(cfg config.QuoteConfig, httpc *http.Client) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = config.DefaultQuoteAPIBase
	}
	if httpc == nil {
		httpc = &http.Client{}
	}
	return &Client{baseURL: base, httpc: httpc}
}

// Fetch performs the request once. It never retries or caches.
func (c *Client) Fetch(ctx context.Context, req TripRequest) (*Response, error) {
	endpoint, err := url.Parse(c.baseURL + "/quote")
	if err != nil {
		return nil, fmt.Errorf("%w: base url: %v", ErrRequest, err)
	}
	endpoint.RawQuery = QueryParams(req).Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequest, err)
	}
	httpReq.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		log.Printf("[QUOTE] action=fetch zip=%s error=%v", req.ZipCode, err)
		return nil, fmt.Errorf("%w: %v", ErrRequest, err)
	}
	defer resp.Body.Close()

	log.Printf("[QUOTE] action=fetch zip=%s status=%d latency_ms=%.3f",
		req.ZipCode,
		resp.StatusCode,
		float64(time.Since(start).Microseconds())/1000.0,
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: status %s", ErrRequest, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrRequest, err)
	}
	return DecodeResponse(body)
}

// QueryParams maps a trip onto the service's query string. event_type is
// always sent, empty when unspecified.
func QueryParams(req TripRequest) url.Values {
	q := url.Values{}
	q.Set("zip_code", req.ZipCode)
	q.Set("passengers", strconv.Itoa(req.Passengers))
	q.Set("hours", strconv.Itoa(req.Hours))
	q.Set("date", req.Date)
	q.Set("event_type", req.EventType)
	return q
}
