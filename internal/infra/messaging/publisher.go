package messaging

import (
	"context"

	"seckill-guard/internal/pkg/config"
	"seckill-guard/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=publisher.go -destination=../../../tests/mock/messaging/publisher.go -package=messagingmock

type Publisher interface {
	Publish(ctx context.Context, topic, key string, value []byte) error
	Close() error
}

type KafkaPublisher struct {
	writer *kafka.Writer
}

var ErrNoBrokers = errs.New("kafka brokers are not configured")

func NewKafkaPublisher(cfg config.KafkaConfig) (*KafkaPublisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, ErrNoBrokers
	}
	w := &kafka.Writer{
		Addr: kafka.TCP(cfg.Brokers...),
		// Same key, same partition: events of one voucher stay ordered.
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		WriteTimeout:           cfg.WriteTimeout,
		AllowAutoTopicCreation: true,
	}
	return &KafkaPublisher{writer: w}, nil
}

func (p *KafkaPublisher) Publish(ctx context.Context, topic, key string, value []byte) error {
	err := p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: value,
	})
	if err != nil {
		return errs.Mark(errs.Wrapf(err, "publish to %s", topic), errs.ErrTransientStore)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
