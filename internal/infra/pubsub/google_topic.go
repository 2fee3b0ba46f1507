package pubsub

import (
	"context"
	"fmt"

	"cloud.google.com/go/pubsub/v2"
	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

type googleTopic struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
}

// newGoogleTopic fails fast when the topic does not exist, so a typo in the
// config stops startup instead of losing every event.
func newGoogleTopic(ctx context.Context, projectID, topicID string) (*googleTopic, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pubsub client")
	}

	topic := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "topic %s is not available", topic)
	}

	publisher := client.Publisher(topicID)
	publisher.EnableMessageOrdering = true

	return &googleTopic{client: client, publisher: publisher}, nil
}

func (t *googleTopic) send(ctx context.Context, msg *message) (string, error) {
	id, err := t.publisher.Publish(ctx, &pubsub.Message{
		Data:        msg.data,
		Attributes:  msg.attributes,
		OrderingKey: msg.orderingKey,
	}).Get(ctx)
	if err != nil {
		// the ordering key stays paused after a failure until resumed
		t.publisher.ResumePublish(msg.orderingKey)

		return "", errors.WithStack(err)
	}

	return id, nil
}

func (t *googleTopic) close() error {
	t.publisher.Stop()

	return errors.WithStack(t.client.Close())
}
