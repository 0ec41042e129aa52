// Package messaging 負責向事件總線發布領域事件。
package messaging

import (
	"context"

	"github.com/segmentio/kafka-go"
)

// Publisher 定義事件發布的介面。
// 對呼叫端來說這是盡力而為的操作：發布失敗不會影響已完成的資料庫寫入。
type Publisher interface {
	Publish(ctx context.Context, topic string, payload []byte) error
}

// KafkaProducer 透過 kafka-go 將事件寫入 Kafka
type KafkaProducer struct {
	writer *kafka.Writer
}

func NewKafkaProducer(brokers []string) *KafkaProducer {
	return &KafkaProducer{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		},
	}
}

func (p *KafkaProducer) Publish(ctx context.Context, topic string, payload []byte) error {
	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Value: payload,
	})
}

func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}
