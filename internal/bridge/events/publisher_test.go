package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariel-systems/ariel-bridge/common/logging"
	"github.com/ariel-systems/ariel-bridge/common/messaging"
	"github.com/ariel-systems/ariel-bridge/internal/bridge/activity"
)

// fakeBroker captures PublishJSON calls.
type fakeBroker struct {
	connected bool
	publishes []fakePublish
	fail      bool
}

type fakePublish struct {
	subject string
	data    []byte
}

func (f *fakeBroker) Publish(ctx context.Context, subject string, data []byte) error {
	if f.fail {
		return errors.New("broker down")
	}
	f.publishes = append(f.publishes, fakePublish{subject: subject, data: data})
	return nil
}

func (f *fakeBroker) PublishJSON(ctx context.Context, subject string, data interface{}) error {
	encoded, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return f.Publish(ctx, subject, encoded)
}

func (f *fakeBroker) Subscribe(subject string, handler messaging.MessageHandler) (messaging.Subscription, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeBroker) IsConnected() bool { return f.connected }
func (f *fakeBroker) Close() error      { return nil }

func TestPublisher_PublishesActivityEvent(t *testing.T) {
	broker := &fakeBroker{connected: true}
	p := NewPublisher(broker, "affiliate", logging.Default())

	rec := activity.Record{Type: activity.TypeOptimizeTriggered, Payload: map[string]any{"campaign": "X"}, Timestamp: 123}
	p.Publish(context.Background(), rec)

	require.Len(t, broker.publishes, 1)
	assert.Equal(t, "ariel.activity.affiliate", broker.publishes[0].subject)

	var event ActivityEvent
	require.NoError(t, json.Unmarshal(broker.publishes[0].data, &event))
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "affiliate", event.Domain)
	assert.Equal(t, rec, event.Record)
}

func TestPublisher_NoopWithoutBroker(t *testing.T) {
	p := NewPublisher(nil, "neural", logging.Default())
	assert.NotPanics(t, func() {
		p.Publish(context.Background(), activity.Record{Type: activity.TypeMetricsServed})
	})
}

func TestPublisher_NoopWhenDisconnected(t *testing.T) {
	broker := &fakeBroker{connected: false}
	p := NewPublisher(broker, "neural", logging.Default())

	p.Publish(context.Background(), activity.Record{Type: activity.TypeMetricsServed})
	assert.Empty(t, broker.publishes)
}

func TestPublisher_SwallowsPublishErrors(t *testing.T) {
	broker := &fakeBroker{connected: true, fail: true}
	p := NewPublisher(broker, "neural", logging.Default())

	// Broadcast failures must never surface to the request path.
	assert.NotPanics(t, func() {
		p.Publish(context.Background(), activity.Record{Type: activity.TypeMetricsServed})
	})
}
