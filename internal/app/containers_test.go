//go:build integration

package app

import (
	"context"
	"log"
	"os"
	"time"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/testcontainers/testcontainers-go/modules/compose"
	"github.com/testcontainers/testcontainers-go/wait"
)

type initDockerCompose struct {
	compose *compose.DockerCompose
}

func (i *initDockerCompose) Initialize(ctx context.Context) (context.Context, error) {
	dc, err := compose.NewDockerCompose("../../docker-compose.deps.yml")
	if err != nil {
		return ctx, err
	}
	i.compose = dc

	err = i.compose.
		WaitForService("postgres", wait.NewLogStrategy(
			"database system is ready to accept connections",
		).WithOccurrence(2)).
		WaitForService("redis", wait.NewLogStrategy(
			"Ready to accept connections",
		)).
		WaitForService("vault", wait.NewLogStrategy(
			"Vault server started!",
		)).
		WaitForService("pubsub", wait.NewLogStrategy(
			"Server started",
		)).
		Up(ctx, compose.Wait(true))
	if err != nil {
		return ctx, err
	}
	return ctx, nil
}

func (i initDockerCompose) Close() {
	if i.compose != nil {
		cancelCtx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()

		err := i.compose.Down(
			cancelCtx,
			compose.RemoveOrphans(true),
			compose.RemoveVolumes(true),
			compose.RemoveImages(compose.RemoveImagesLocal),
		)
		if err != nil {
			log.Printf("failed to stop docker compose: %v", err)
		}
	}
}

// initEnvVars exports envVars for the lifetime of the app.
type initEnvVars struct {
	envVars map[string]string
}

func (i *initEnvVars) Initialize(ctx context.Context) (context.Context, error) {
	for key, value := range i.envVars {
		os.Setenv(key, value) //nolint:errcheck
	}
	return ctx, nil
}

func (i *initEnvVars) Close() {
	for key := range i.envVars {
		os.Unsetenv(key) //nolint:errcheck
	}
}

// initPubSubTopology creates the agent events topic and subscription on the emulator.
type initPubSubTopology struct {
	projectID      string
	topicID        string
	subscriptionID string
}

func (i initPubSubTopology) Initialize(ctx context.Context) (context.Context, error) {
	client, err := pubsubV2.NewClient(ctx, i.projectID)
	if err != nil {
		return ctx, err
	}
	defer client.Close() //nolint:errcheck

	topic, err := client.TopicAdminClient.CreateTopic(ctx, &pubsubpb.Topic{
		Name: "projects/" + i.projectID + "/topics/" + i.topicID,
	})
	if err != nil {
		return ctx, err
	}

	_, err = client.SubscriptionAdminClient.CreateSubscription(ctx, &pubsubpb.Subscription{
		Name:  "projects/" + i.projectID + "/subscriptions/" + i.subscriptionID,
		Topic: topic.GetName(),
	})
	return ctx, err
}
