package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"go-marketplace-backend/internal/domain"
	"go-marketplace-backend/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const redisChannelPrefix = "chat:messages:"

// HubPublisher delivers to subscribers connected to this process.
type HubPublisher struct {
	hub *Hub
}

func NewHubPublisher(hub *Hub) *HubPublisher {
	return &HubPublisher{hub: hub}
}

func (p *HubPublisher) Publish(_ context.Context, msg *domain.ChatMessage) error {
	n := p.hub.Deliver(msg.ReceiverID, Event{Type: EventChatMessage, Data: msg})
	logger.Log.Debug("chat message published", "topic", Topic(msg.ReceiverID), "delivered", n)
	return nil
}

// RedisPublisher fans messages out through Redis so that a receiver connected
// to any instance gets them. Every instance runs a Relay.
type RedisPublisher struct {
	client *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client}
}

func redisChannel(userID int64) string {
	return redisChannelPrefix + strconv.FormatInt(userID, 10)
}

func (p *RedisPublisher) Publish(ctx context.Context, msg *domain.ChatMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return p.client.Publish(ctx, redisChannel(msg.ReceiverID), payload).Err()
}

// Relay forwards Redis chat messages into the local hub.
type Relay struct {
	client *redis.Client
	hub    *Hub
}

func NewRelay(client *redis.Client, hub *Hub) *Relay {
	return &Relay{client: client, hub: hub}
}

// Run blocks until ctx is cancelled.
func (r *Relay) Run(ctx context.Context) {
	pubsub := r.client.PSubscribe(ctx, redisChannelPrefix+"*")
	defer pubsub.Close()

	logger.Log.Info("chat relay subscribed", "pattern", redisChannelPrefix+"*")

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case m, ok := <-ch:
			if !ok {
				return
			}
			r.forward(m.Channel, m.Payload)
		}
	}
}

func (r *Relay) forward(channel, payload string) {
	receiverID, err := parseRedisChannel(channel)
	if err != nil {
		logger.Log.Warn("chat relay: bad channel", "channel", channel, "error", err)
		return
	}

	var msg domain.ChatMessage
	if err := json.Unmarshal([]byte(payload), &msg); err != nil {
		logger.Log.Warn("chat relay: bad payload", "channel", channel, "error", err)
		return
	}

	r.hub.Deliver(receiverID, Event{Type: EventChatMessage, Data: &msg})
}

func parseRedisChannel(channel string) (int64, error) {
	rest, ok := strings.CutPrefix(channel, redisChannelPrefix)
	if !ok {
		return 0, fmt.Errorf("unexpected channel %q", channel)
	}
	return strconv.ParseInt(rest, 10, 64)
}
