package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"
)

const defaultDispatchTimeout = 5 * time.Second

// HTTPDispatcher posts domain events to the notification service.
//
// Supported env vars:
//   - NOTIFICATION_SERVICE_URL (empty disables dispatching; events are logged
//     and dropped, which is acceptable because delivery is best-effort)

type HTTPDispatcher struct {
	client  *http.Client
	baseURL string
}

var _ interfaces.INotificationDispatcher = (*HTTPDispatcher)(nil)

func NewHTTPDispatcher() *HTTPDispatcher {
	return &HTTPDispatcher{
		client:  &http.Client{Timeout: defaultDispatchTimeout},
		baseURL: os.Getenv("NOTIFICATION_SERVICE_URL"),
	}
}

func (d *HTTPDispatcher) Dispatch(ctx context.Context, e entities.DomainEvent) error {
	if d.baseURL == "" {
		log.Printf("[notification][dispatcher] no NOTIFICATION_SERVICE_URL configured; dropping event kind=%s receiver=%s", e.Kind, e.ReceiverID)
		return nil
	}

	body, err := json.Marshal(e)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.baseURL+"/notifications", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("notification service returned %d", resp.StatusCode)
	}
	return nil
}
