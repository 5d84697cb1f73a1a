package workers

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"cloud.google.com/go/pubsub/v2/pstest"
	"github.com/agentauri/agentindex/internal/domain"
	"github.com/cleitonmarx/symbiont"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	testProjectID      = "agentindex-test"
	testSubscriptionID = "agent-events-indexer"
)

// testBroker is an in-memory Pub/Sub server with one topic and one subscription.
type testBroker struct {
	client    *pubsubV2.Client
	topicName string
}

func newTestBroker(t *testing.T, ctx context.Context) testBroker {
	t.Helper()

	server := pstest.NewServer()
	t.Cleanup(func() { server.Close() }) //nolint:errcheck

	conn, err := grpc.NewClient(server.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() }) //nolint:errcheck

	client, err := pubsubV2.NewClient(ctx, testProjectID, option.WithGRPCConn(conn))
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() }) //nolint:errcheck

	topic, err := client.TopicAdminClient.CreateTopic(ctx, &pubsubpb.Topic{
		Name: "projects/" + testProjectID + "/topics/agent-events",
	})
	require.NoError(t, err)

	_, err = client.SubscriptionAdminClient.CreateSubscription(ctx, &pubsubpb.Subscription{
		Name:  "projects/" + testProjectID + "/subscriptions/" + testSubscriptionID,
		Topic: topic.GetName(),
	})
	require.NoError(t, err)

	return testBroker{client: client, topicName: topic.GetName()}
}

// publish sends each payload and waits until the server acknowledges it.
func (b testBroker) publish(t *testing.T, ctx context.Context, payloads ...[]byte) {
	t.Helper()

	publisher := b.client.Publisher(b.topicName)
	defer publisher.Stop()
	for _, payload := range payloads {
		_, err := publisher.Publish(ctx, &pubsubV2.Message{Data: payload}).Get(ctx)
		require.NoError(t, err)
	}
}

func eventPayload(t *testing.T, event domain.AgentEvent) []byte {
	t.Helper()
	data, err := json.Marshal(event)
	require.NoError(t, err)
	return data
}

// start runs r until the returned cancel func is called; done is closed when Run returns.
func start(t *testing.T, ctx context.Context, r symbiont.Runnable) (cancel context.CancelFunc, done <-chan struct{}) {
	t.Helper()

	runCtx, cancel := context.WithCancel(ctx)
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		if err := r.Run(runCtx); err != nil {
			t.Errorf("runnable returned error: %v", err)
		}
	}()
	return cancel, stopped
}

func waitStopped(t *testing.T, done <-chan struct{}) {
	t.Helper()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("runnable did not shut down in time")
	}
}

// waitFlushes blocks until n batch flushes are signalled.
func waitFlushes(t *testing.T, signal <-chan struct{}, n int, timeout time.Duration) {
	t.Helper()

	deadline := time.After(timeout)
	for got := 0; got < n; got++ {
		select {
		case <-signal:
		case <-deadline:
			t.Fatalf("timeout waiting for batch flushes; got %d, expected %d", got, n)
		}
	}
}
