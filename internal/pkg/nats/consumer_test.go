package nats

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	natsserver "github.com/nats-io/nats-server/v2/test"
)

var testNatsURL = "nats://127.0.0.1:8370"

func TestMain(m *testing.M) {
	opts := natsserver.DefaultTestOptions
	opts.Port = 8370
	testNatsServer := natsserver.RunServer(&opts)
	code := m.Run()
	testNatsServer.Shutdown()
	os.Exit(code)
}

func TestConsumer_ReceivesPublishedMessages(t *testing.T) {
	client, err := NewClient(testNatsURL)
	require.NoError(t, err, "Failed to connect to NATS server")
	defer client.Close()

	received := make(chan []byte, 1)
	consumer, err := NewConsumer(client, "test.consumer.plain", "", func(data []byte) error {
		received <- data
		return nil
	})
	require.NoError(t, err)
	defer consumer.Stop()

	require.NoError(t, client.Publish("test.consumer.plain", []byte(`{"hello":"world"}`)))

	select {
	case data := <-received:
		assert.JSONEq(t, `{"hello":"world"}`, string(data))
	case <-time.After(2 * time.Second):
		t.Fatal("Did not receive published message")
	}
}

func TestConsumer_QueueGroupDeliversToOneMember(t *testing.T) {
	client, err := NewClient(testNatsURL)
	require.NoError(t, err, "Failed to connect to NATS server")
	defer client.Close()

	received := make(chan string, 2)
	first, err := NewConsumer(client, "test.consumer.queued", "workers", func(data []byte) error {
		received <- "first"
		return nil
	})
	require.NoError(t, err)
	defer first.Stop()

	second, err := NewConsumer(client, "test.consumer.queued", "workers", func(data []byte) error {
		received <- "second"
		return nil
	})
	require.NoError(t, err)
	defer second.Stop()

	require.NoError(t, client.Publish("test.consumer.queued", []byte("job")))

	select {
	case <-received:
	case <-time.After(2 * time.Second):
		t.Fatal("Did not receive published message")
	}

	// the queue group balances: exactly one member handles each message
	select {
	case member := <-received:
		t.Fatalf("message delivered to both queue members, second was %s", member)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestConsumer_StopUnsubscribes(t *testing.T) {
	client, err := NewClient(testNatsURL)
	require.NoError(t, err, "Failed to connect to NATS server")
	defer client.Close()

	received := make(chan []byte, 1)
	consumer, err := NewConsumer(client, "test.consumer.stopped", "", func(data []byte) error {
		received <- data
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, consumer.Stop())

	require.NoError(t, client.Publish("test.consumer.stopped", []byte("late")))

	select {
	case <-received:
		t.Fatal("stopped consumer still received a message")
	case <-time.After(200 * time.Millisecond):
	}
}
