package rabbitmq_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/MichalMitros/price-monitor/internal/platform/rabbitmq"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegrationPublishAndConsume(t *testing.T) {
	url := os.Getenv("RABBITMQ_URL")
	if url == "" {
		t.Skip("RABBITMQ_URL is not set")
	}

	conn, err := amqp.Dial(url)
	require.NoError(t, err, "can't dial RabbitMQ")
	t.Cleanup(func() { _ = conn.Close() })

	suffix := uuid.NewString()
	queue := "price-monitor.test." + suffix
	routingKey := "pm.test." + suffix

	mq, err := rabbitmq.NewRabbitMQ(conn, "price-monitor.test")
	require.NoError(t, err, "should open channel and declare exchange")
	require.NoError(t, mq.BindQueue(queue, routingKey), "should bind queue")
	require.NoError(t, mq.SetPrefetch(1), "should set prefetch")

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	received := make(chan []byte, 2)
	errs, err := mq.Consume(ctx, queue, func(_ context.Context, message []byte) error {
		received <- message
		if string(message) == "bad" {
			return errors.New("bad message")
		}
		return nil
	})
	require.NoError(t, err, "should start consuming")

	require.NoError(t, mq.Publish(ctx, routingKey, []byte("bad")))
	require.NoError(t, mq.Publish(ctx, routingKey, []byte(`{"productId":1}`)))

	select {
	case err := <-errs:
		assert.EqualError(t, err, "bad message", "should push handler error")
	case <-time.After(5 * time.Second):
		t.Fatal("handler error not pushed")
	}

	assert.Equal(t, []byte("bad"), <-received)
	assert.Equal(t, []byte(`{"productId":1}`), <-received)

	cancel()
	select {
	case <-mq.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("consumer didn't stop after cancel")
	}
}
