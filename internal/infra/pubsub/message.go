// Package pubsub publishes order events. In production they go to a Google
// Pub/Sub topic whose push subscription targets the worker; locally the same
// push envelope is POSTed to the worker directly.
package pubsub

import (
	"encoding/json"

	"crave/internal/domain/entity"

	"github.com/pkg/errors"
)

// Envelope is the body of a Pub/Sub push request. The worker decodes it for
// both providers.
type Envelope struct {
	Message struct {
		Data        []byte            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		OrderingKey string            `json:"orderingKey,omitempty"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// message is what a transport sends: the event payload plus the attributes
// subscribers filter and trace on. Events of one order share an ordering key.
type message struct {
	data        []byte
	attributes  map[string]string
	orderingKey string
}

func newMessage(event *entity.OrderEvent) (*message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode order event")
	}

	attributes := map[string]string{
		"event_type":   string(event.Type),
		"order_id":     event.OrderID,
		"order_number": event.OrderNumber,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return &message{data: data, attributes: attributes, orderingKey: event.OrderID}, nil
}
