package notification

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"payment_processor/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

type publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisNotifier publishes payment confirmations on a Redis channel. The
// mailer or push service subscribed to it owns delivery.
type RedisNotifier struct {
	client  publisher
	channel string
}

var _ interfaces.INotifier = (*RedisNotifier)(nil)

func NewRedisNotifier(client *redis.Client, channel string) *RedisNotifier {
	return &RedisNotifier{client: client, channel: channel}
}

func (n *RedisNotifier) Notify(ctx context.Context, userID string, amount decimal.Decimal, currency string) error {
	msg := NewConfirmation(userID, amount, currency, time.Now())
	b, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	receivers, err := n.client.Publish(ctx, n.channel, b).Result()
	if err != nil {
		log.Printf("[payment][notifier] publish failed channel=%s user_id=%s err=%v", n.channel, userID, err)
		return err
	}
	if receivers == 0 {
		log.Printf("[payment][notifier] no subscribers channel=%s user_id=%s", n.channel, userID)
	}
	return nil
}
