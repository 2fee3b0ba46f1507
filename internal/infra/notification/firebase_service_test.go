package notification

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"crave/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	batches  [][]string
	single   []string
	sendErr  error
	rejected map[string]bool
}

func (f *fakeClient) Send(_ context.Context, msg *messaging.Message) (string, error) {
	f.single = append(f.single, msg.Token)
	if f.sendErr != nil {
		return "", f.sendErr
	}

	return "projects/p/messages/1", nil
}

func (f *fakeClient) SendEachForMulticast(_ context.Context, msg *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	f.batches = append(f.batches, msg.Tokens)

	resp := &messaging.BatchResponse{Responses: make([]*messaging.SendResponse, len(msg.Tokens))}
	for i, token := range msg.Tokens {
		if f.rejected[token] {
			// A plain error classifies as neither invalid nor unregistered.
			resp.Responses[i] = &messaging.SendResponse{Error: errors.New("rejected")}
			resp.FailureCount++

			continue
		}
		resp.Responses[i] = &messaging.SendResponse{Success: true}
		resp.SuccessCount++
	}

	return resp, nil
}

func newTestService(client fcmClient) *firebaseService {
	return &firebaseService{client: client, logger: slog.New(slog.DiscardHandler)}
}

func TestFirebaseService_Push_Chunks(t *testing.T) {
	client := &fakeClient{}
	svc := newTestService(client)

	tokens := make([]string, 1201)
	for i := range tokens {
		tokens[i] = fmt.Sprintf("token-%d", i)
	}

	report, err := svc.Push(context.Background(), &service.PushMessage{Tokens: tokens, Title: "Order shipped", Body: "ORD-1 is on its way"})
	require.NoError(t, err)

	assert.Equal(t, 1201, report.Sent)
	assert.Zero(t, report.Failed)
	assert.Empty(t, report.InvalidTokens)
	require.Len(t, client.batches, 3)
	assert.Len(t, client.batches[0], 500)
	assert.Len(t, client.batches[2], 201)
	assert.Empty(t, client.single)
}

func TestFirebaseService_Push_CountsRejections(t *testing.T) {
	client := &fakeClient{rejected: map[string]bool{"token-b": true}}
	svc := newTestService(client)

	report, err := svc.Push(context.Background(), &service.PushMessage{Tokens: []string{"token-a", "token-b"}})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Sent)
	assert.Equal(t, 1, report.Failed)
	assert.Empty(t, report.InvalidTokens)
}

func TestFirebaseService_Push_SingleToken(t *testing.T) {
	tests := []struct {
		name       string
		sendErr    error
		wantSent   int
		wantFailed int
	}{
		{name: "delivered", wantSent: 1},
		{name: "rejected", sendErr: errors.New("bad request"), wantFailed: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{sendErr: tt.sendErr}
			svc := newTestService(client)

			report, err := svc.Push(context.Background(), &service.PushMessage{Tokens: []string{"only"}})
			require.NoError(t, err)

			assert.Equal(t, tt.wantSent, report.Sent)
			assert.Equal(t, tt.wantFailed, report.Failed)
			assert.Equal(t, []string{"only"}, client.single)
			assert.Empty(t, client.batches)
		})
	}
}

func TestFirebaseService_Push_NoTokens(t *testing.T) {
	client := &fakeClient{}
	svc := newTestService(client)

	report, err := svc.Push(context.Background(), &service.PushMessage{})
	require.NoError(t, err)
	assert.Zero(t, report.Sent)
	assert.Empty(t, client.batches)
	assert.Empty(t, client.single)
}

func TestNoopNotifier_Push(t *testing.T) {
	n := &noopNotifier{logger: slog.New(slog.DiscardHandler)}

	report, err := n.Push(context.Background(), &service.PushMessage{Tokens: []string{"a", "b"}})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Sent)
}
