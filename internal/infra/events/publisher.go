package events

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Publisher публикует события бронирований для внешних коллабораторов.
// Публикация не участвует в транзакции коммита: бронирование первично,
// потерянное событие допустимо, потерянное бронирование - нет
type Publisher interface {
	PublishBookingCreated(ctx context.Context, event BookingCreated)
	PublishBookingStatusChanged(ctx context.Context, event BookingStatusChanged)
}

// RedisPublisher публикует события в каналы Redis Pub/Sub
type RedisPublisher struct {
	client *redis.Client
	log    Logger
}

// NewRedisPublisher создает новый экземпляр publisher поверх Redis
func NewRedisPublisher(client *redis.Client, log Logger) *RedisPublisher {
	return &RedisPublisher{client: client, log: log}
}

// PublishBookingCreated публикует событие BookingCreated
func (p *RedisPublisher) PublishBookingCreated(ctx context.Context, event BookingCreated) {
	p.publish(ctx, ChannelBookingCreated, event)
}

// PublishBookingStatusChanged публикует событие BookingStatusChanged
func (p *RedisPublisher) PublishBookingStatusChanged(ctx context.Context, event BookingStatusChanged) {
	p.publish(ctx, ChannelBookingStatusChanged, event)
}

// publish сериализует событие в JSON и отправляет в канал
// Ошибки публикации логируются, но не возвращаются вызывающему:
// доставка событий - best effort
func (p *RedisPublisher) publish(ctx context.Context, channel string, event interface{}) {
	payload, err := json.Marshal(event)
	if err != nil {
		p.log.Error("events: failed to marshal event for channel %s: %v", channel, err)
		return
	}

	if err := p.client.Publish(ctx, channel, payload).Err(); err != nil {
		p.log.Error("events: failed to publish to channel %s: %v", channel, err)
		return
	}

	p.log.Info("events: published to channel %s: %s", channel, string(payload))
}

// NopPublisher заглушка, используется когда Redis выключен в конфигурации
type NopPublisher struct{}

// NewNopPublisher создает publisher без побочных эффектов
func NewNopPublisher() *NopPublisher {
	return &NopPublisher{}
}

func (p *NopPublisher) PublishBookingCreated(ctx context.Context, event BookingCreated) {}

func (p *NopPublisher) PublishBookingStatusChanged(ctx context.Context, event BookingStatusChanged) {
}

var _ Publisher = (*RedisPublisher)(nil)
var _ Publisher = (*NopPublisher)(nil)
