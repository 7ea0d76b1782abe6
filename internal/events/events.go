package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"envportal/config"
	"envportal/internal/database"
	"envportal/internal/logger"

	"github.com/valkey-io/valkey-go"
)

type Event struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Channel   string         `json:"channel,omitempty"`
	UserID    string         `json:"userId,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// EventBus fans events out over Valkey pub/sub so admin dashboards see new
// submissions without polling.
type EventBus struct {
	client database.CacheClient
	log    logger.Logger

	mu      sync.Mutex
	cancels []context.CancelFunc
	wg      sync.WaitGroup
}

func New(client database.CacheClient, config config.Config) *EventBus {
	return &EventBus{
		client: client,
		log:    logger.New("events"),
	}
}

func (b *EventBus) Publish(channel string, event Event) error {
	log := b.log.Function("Publish")

	raw, err := json.Marshal(event)
	if err != nil {
		return log.Err("failed to marshal event", err, "channel", channel)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cmd := b.client.B().Publish().Channel(channel).Message(string(raw)).Build()
	if err := b.client.Do(ctx, cmd).Error(); err != nil {
		return log.Err("failed to publish event", err, "channel", channel)
	}

	return nil
}

// Subscribe delivers each event on channel to fn from a dedicated goroutine
// until Close is called.
func (b *EventBus) Subscribe(channel string, fn func(Event)) {
	log := b.log.Function("Subscribe")

	ctx, cancel := context.WithCancel(context.Background())
	b.mu.Lock()
	b.cancels = append(b.cancels, cancel)
	b.mu.Unlock()

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()

		cmd := b.client.B().Subscribe().Channel(channel).Build()
		err := b.client.Receive(ctx, cmd, func(msg valkey.PubSubMessage) {
			var event Event
			if err := json.Unmarshal([]byte(msg.Message), &event); err != nil {
				log.Er("failed to unmarshal event", err, "channel", channel)
				return
			}
			fn(event)
		})
		if err != nil && ctx.Err() == nil {
			log.Er("subscription terminated", err, "channel", channel)
		}
	}()
}

func (b *EventBus) Close() error {
	b.mu.Lock()
	for _, cancel := range b.cancels {
		cancel()
	}
	b.cancels = nil
	b.mu.Unlock()

	b.wg.Wait()
	return nil
}
