package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	localSubscription = "projects/local/subscriptions/order-events-push"
	pushTimeout       = 30 * time.Second
)

// httpPush delivers messages the way a Pub/Sub push subscription would,
// synchronously, so a worker failure surfaces to the publisher.
type httpPush struct {
	endpoint string
	client   *http.Client
}

func newHTTPPush(endpoint string) *httpPush {
	return &httpPush{
		endpoint: endpoint,
		client:   &http.Client{Timeout: pushTimeout},
	}
}

func (t *httpPush) send(ctx context.Context, msg *message) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", errors.WithStack(err)
	}

	var envelope Envelope
	envelope.Subscription = localSubscription
	envelope.Message.Data = msg.data
	envelope.Message.Attributes = msg.attributes
	envelope.Message.MessageID = id.String()
	envelope.Message.OrderingKey = msg.orderingKey
	envelope.Message.PublishTime = time.Now().UTC().Format(time.RFC3339Nano)

	body, err := json.Marshal(&envelope)
	if err != nil {
		return "", errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.WithStack(err)
	}
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if requestID := msg.attributes["request_id"]; requestID != "" {
		req.Header.Set(echo.HeaderXRequestID, requestID)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "push to worker failed")
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", errors.Errorf("worker answered %d", resp.StatusCode)
	}

	return envelope.Message.MessageID, nil
}

func (t *httpPush) close() error {
	t.client.CloseIdleConnections()

	return nil
}
