package service

import (
	"context"
)

// PushMessage is one notification addressed to a set of device tokens.
type PushMessage struct {
	Tokens []string
	Title  string
	Body   string
	Data   map[string]string
}

// PushReport tallies a fan-out. InvalidTokens lists tokens the provider no
// longer recognises; their devices should be deactivated.
type PushReport struct {
	Sent          int
	Failed        int
	InvalidTokens []string
}

// NotificationService delivers push notifications to customer devices.
type NotificationService interface {
	// Push sends msg to every token. Rejections of individual tokens are
	// counted in the report, an error means the provider could not be reached.
	Push(ctx context.Context, msg *PushMessage) (*PushReport, error)
}
