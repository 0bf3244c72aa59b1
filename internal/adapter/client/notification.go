package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/iho/txledger/internal/usecase"
)

// NotificationClient implements usecase.Notifier over HTTP. Deliveries are
// fire-and-forget; callers treat errors as record-only.
type NotificationClient struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

// NewNotificationClient creates a new NotificationClient.
func NewNotificationClient(baseURL string, timeout time.Duration) *NotificationClient {
	return &NotificationClient{
		baseURL:    baseURL,
		timeout:    timeout,
		httpClient: &http.Client{},
	}
}

type notifyRequest struct {
	TxnID     int64   `json:"txn_id"`
	Reference *string `json:"reference,omitempty"`
	Status    string  `json:"status"`
}

// Notify delivers one notification.
func (c *NotificationClient) Notify(ctx context.Context, n usecase.Notification) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(notifyRequest{
		TxnID:     n.TxnID,
		Reference: n.Reference,
		Status:    n.Status,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/notify", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("notification service returned status %d", resp.StatusCode)
	}

	return nil
}
