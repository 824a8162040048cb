package trade

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/paiid/paiid/pkg/models"
)

// Client submits orders and reads positions through the proxy API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logrus.Entry
	now        func() time.Time
}

// NewClient creates a trade client for the given gateway base URL.
func NewClient(baseURL string, timeout time.Duration, log *logrus.Entry) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
		now:        time.Now,
	}
}

// submitResponse is the execution backend's acknowledgement.
type submitResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Submit validates the ticket and posts the resulting order. The order
// ID is generated client-side so retries stay idempotent on the backend.
func (c *Client) Submit(ctx context.Context, ticket Ticket) (models.Order, error) {
	order, err := ticket.Validate()
	if err != nil {
		return models.Order{}, err
	}

	order.ID = uuid.New().String()
	order.SubmittedAt = c.now()

	body, err := json.Marshal(order)
	if err != nil {
		return models.Order{}, fmt.Errorf("marshal order: %w", err)
	}

	path := "/api/proxy/api/trade/execute"
	if order.Mode == models.ModePaper {
		path = "/api/proxy/api/trade/paper"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return models.Order{}, fmt.Errorf("build order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.Order{}, fmt.Errorf("submit order: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		var ack submitResponse
		if json.NewDecoder(resp.Body).Decode(&ack) == nil && ack.Message != "" {
			return models.Order{}, fmt.Errorf("order rejected: %s", ack.Message)
		}
		return models.Order{}, fmt.Errorf("order rejected: status %d", resp.StatusCode)
	}

	c.log.WithFields(logrus.Fields{
		"order_id": order.ID,
		"symbol":   order.Symbol,
		"side":     order.Side,
		"mode":     order.Mode,
	}).Info("order submitted")

	return order, nil
}

// Positions fetches the open positions for the portfolio view.
func (c *Client) Positions(ctx context.Context) ([]models.Position, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/proxy/api/portfolio/positions", nil)
	if err != nil {
		return nil, fmt.Errorf("build positions request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch positions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch positions: status %d", resp.StatusCode)
	}

	var positions []models.Position
	if err := json.NewDecoder(resp.Body).Decode(&positions); err != nil {
		return nil, fmt.Errorf("decode positions: %w", err)
	}
	return positions, nil
}
