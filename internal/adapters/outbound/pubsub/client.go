// Package pubsub provides the Google Cloud Pub/Sub client used to consume agent registry events.
package pubsub

import (
	"context"
	"fmt"
	"log"
	"time"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/cleitonmarx/symbiont/depend"
)

// SubscriptionName returns the fully qualified name of a subscription.
func SubscriptionName(projectID, subscriptionID string) string {
	return "projects/" + projectID + "/subscriptions/" + subscriptionID
}

// InitClient creates the Pub/Sub client that consumes agent registry events.
// The client honours PUBSUB_EMULATOR_HOST for local runs.
//
// When SubscriptionID is set, startup fails unless the subscription exists,
// so a misconfigured deployment does not sit idle.
type InitClient struct {
	Logger         *log.Logger `resolve:""`
	ProjectID      string      `config:"PUBSUB_PROJECT_ID"`
	SubscriptionID string      `config:"PUBSUB_AGENT_SUBSCRIPTION_ID" default:"-"`
	client         *pubsubV2.Client
}

// Initialize registers the *pubsub.Client in the dependency container.
func (i *InitClient) Initialize(ctx context.Context) (context.Context, error) {
	if i.client == nil {
		client, err := pubsubV2.NewClient(ctx, i.ProjectID)
		if err != nil {
			return ctx, fmt.Errorf("failed to create pubsub client for project %s: %w", i.ProjectID, err)
		}
		i.client = client
	}

	if i.SubscriptionID != "" && i.SubscriptionID != "-" {
		if err := i.verifySubscription(ctx); err != nil {
			return ctx, err
		}
	}

	depend.Register(i.client)
	return ctx, nil
}

func (i *InitClient) verifySubscription(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	name := SubscriptionName(i.client.Project(), i.SubscriptionID)
	sub, err := i.client.SubscriptionAdminClient.GetSubscription(ctx, &pubsubpb.GetSubscriptionRequest{
		Subscription: name,
	})
	if err != nil {
		return fmt.Errorf("agent events subscription %s is not available: %w", name, err)
	}
	if i.Logger != nil {
		i.Logger.Printf("InitClient: consuming %s from %s", sub.GetName(), sub.GetTopic())
	}
	return nil
}

// Close closes the client.
func (i *InitClient) Close() {
	if i.client == nil {
		return
	}
	if err := i.client.Close(); err != nil && i.Logger != nil {
		i.Logger.Printf("InitClient: failed to close pubsub client: %v", err)
	}
}
