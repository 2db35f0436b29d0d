package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/chatsync/internal/logging"
	"github.com/redis/go-redis/v9"
)

const Channel = "chatsync:should_sync"

// RedisBroker relays events between server instances. Publish sends to
// Redis only; every instance, the sender included, delivers to its local
// Hub from Run.
type RedisBroker struct {
	client *redis.Client
	hub    *Hub
	log    logging.Logger
	ready  chan struct{}
}

func NewRedisBroker(client *redis.Client, hub *Hub, log logging.Logger) *RedisBroker {
	return &RedisBroker{
		client: client,
		hub:    hub,
		log:    log.With("module", "notify.redis"),
		ready:  make(chan struct{}),
	}
}

func (b *RedisBroker) Publish(ctx context.Context, ev Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	if err := b.client.Publish(ctx, Channel, payload).Err(); err != nil {
		return fmt.Errorf("redis publish: %w", err)
	}
	return nil
}

// Ready is closed once Run has subscribed.
func (b *RedisBroker) Ready() <-chan struct{} {
	return b.ready
}

// Run forwards events from Redis to the local hub until ctx is done.
func (b *RedisBroker) Run(ctx context.Context) error {
	pubsub := b.client.Subscribe(ctx, Channel)
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("redis subscribe: %w", err)
	}
	close(b.ready)

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			var ev Event
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				b.log.Warn(ctx, "dropping malformed event", "error", err)
				continue
			}
			_ = b.hub.Publish(ctx, ev)
		}
	}
}
