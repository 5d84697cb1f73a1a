// Package workers hosts the background runnables of the service.
package workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/pubsub/v2"
	"github.com/agentauri/agentindex/internal/domain"
	"github.com/agentauri/agentindex/internal/usecases"
)

// AgentEventSubscriber consumes agent registry events from Pub/Sub and refreshes
// the embedding of every agent they name.
//
// Events are batched for Interval or until BatchSize messages arrive, and events
// for the same agent within a batch are reindexed once.
type AgentEventSubscriber struct {
	Logger              *log.Logger           `resolve:""`
	Client              *pubsub.Client        `resolve:""`
	ReindexAgent        usecases.ReindexAgent `resolve:""`
	Interval            time.Duration         `config:"AGENT_EVENTS_BATCH_INTERVAL" default:"2s"`
	BatchSize           int                   `config:"AGENT_EVENTS_BATCH_SIZE" default:"50"`
	SubscriptionID      string                `config:"PUBSUB_AGENT_SUBSCRIPTION_ID"`
	workerExecutionChan chan struct{}
}

// Run starts the subscriber worker.
func (s AgentEventSubscriber) Run(ctx context.Context) error {
	s.Logger.Println("AgentEventSubscriber: running...")

	batchSize := s.BatchSize
	if batchSize <= 0 {
		batchSize = 1
	}

	eventCh := make(chan *pubsub.Message, batchSize*2)
	subscriberErrCh := make(chan error, 1)

	go func() {
		err := s.Client.Subscriber(s.SubscriptionID).Receive(ctx, func(ctx context.Context, msg *pubsub.Message) {
			select {
			case eventCh <- msg:
			case <-ctx.Done():
				msg.Nack()
			}
		})
		if err != nil {
			subscriberErrCh <- err
		}
	}()

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	var batch []*pubsub.Message

	for {
		select {
		case <-ctx.Done():
			for _, msg := range batch {
				msg.Nack()
			}
			s.Logger.Println("AgentEventSubscriber: stopping...")
			return nil

		case err := <-subscriberErrCh:
			return fmt.Errorf("receive agent events: %w", err)

		case msg := <-eventCh:
			batch = append(batch, msg)
			if len(batch) >= batchSize {
				s.flush(ctx, batch)
				batch = nil
			}

		case <-ticker.C:
			if len(batch) > 0 {
				s.flush(ctx, batch)
				batch = nil
			}
		}
	}
}

type agentKey struct {
	chainID int64
	agentID string
}

type pendingAgent struct {
	event    domain.AgentEvent
	messages []*pubsub.Message
}

func (s AgentEventSubscriber) flush(ctx context.Context, batch []*pubsub.Message) {
	s.Logger.Printf("AgentEventSubscriber: processing batch size=%d", len(batch))

	var order []agentKey
	pending := map[agentKey]*pendingAgent{}

	for _, msg := range batch {
		var event domain.AgentEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			s.Logger.Printf("AgentEventSubscriber: dropping malformed message %s: %v", msg.ID, err)
			msg.Ack()
			continue
		}
		if !event.TriggersReindex() {
			msg.Ack()
			continue
		}

		key := agentKey{chainID: event.ChainID, agentID: event.AgentID}
		p, ok := pending[key]
		if !ok {
			p = &pendingAgent{event: event}
			pending[key] = p
			order = append(order, key)
		}
		p.messages = append(p.messages, msg)
	}

	for _, key := range order {
		p := pending[key]
		err := s.ReindexAgent.Execute(ctx, p.event)
		settle(p.messages, s.shouldRedeliver(err))
	}

	if s.workerExecutionChan != nil {
		s.workerExecutionChan <- struct{}{}
	}
}

// shouldRedeliver reports whether a failed reindex is worth another attempt.
// Invalid events are dropped; agents not yet visible in the indexer are retried.
func (s AgentEventSubscriber) shouldRedeliver(err error) bool {
	if err == nil {
		return false
	}

	var validationErr *domain.ValidationErr
	if errors.As(err, &validationErr) {
		s.Logger.Printf("AgentEventSubscriber: dropping invalid event: %v", err)
		return false
	}

	s.Logger.Printf("AgentEventSubscriber: reindex failed, redelivering: %v", err)
	return true
}

func settle(messages []*pubsub.Message, redeliver bool) {
	for _, msg := range messages {
		if redeliver {
			msg.Nack()
		} else {
			msg.Ack()
		}
	}
}
