package kafka

import (
	"context"
	"time"

	"github.com/reusemart/consignment-service/config"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

const maxRetries = 3

type Producer struct {
	conn    *kafka.Conn
	backoff time.Duration
}

func CreateKafkaProducer(config *config.Config) (*Producer, error) {
	conn, err := kafka.DialLeader(context.Background(), "tcp", config.KafkaConfig.BrokerAddress, config.KafkaConfig.BrokerTopic, config.KafkaConfig.BrokerPartition)
	if err != nil {
		return nil, err
	}

	return &Producer{conn: conn, backoff: time.Second}, nil
}

// Publish writes one message, retrying with a growing backoff. A nil Producer
// drops the message, which lets the service run without a broker.
func (p *Producer) Publish(ctx context.Context, key string, value []byte) (err error) {
	if p == nil || p.conn == nil {
		log.Ctx(ctx).Debug().Str("component", "Publish").Str("key", key).Msg("no broker configured, event dropped")
		return nil
	}

	for i := 0; i < maxRetries; i++ {
		p.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
		_, err = p.conn.WriteMessages(kafka.Message{
			Key:   []byte(key),
			Value: value,
		})
		if err == nil {
			return nil
		}

		log.Error().Err(err).Str("component", "Publish").Int("attempt", i+1).Msg("")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(p.backoff * time.Duration(i+1)):
		}
	}

	return err
}

func (p *Producer) Close() error {
	if p == nil || p.conn == nil {
		return nil
	}
	return p.conn.Close()
}
