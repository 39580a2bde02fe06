package kafka

import (
	"context"
	"encoding/json"
	"strconv"

	"hr-admin/internal/events"

	"github.com/segmentio/kafka-go"
)

type AuditPublisher interface {
	PublishAdminAction(ctx context.Context, event events.AdminActionEvent) error
}

// NoopPublisher dipakai saat broker Kafka tidak dikonfigurasi;
// console tetap jalan penuh tanpa audit stream.
type NoopPublisher struct{}

func (NoopPublisher) PublishAdminAction(context.Context, events.AdminActionEvent) error {
	return nil
}

type kafkaAuditPublisher struct {
	writer *kafka.Writer
}

func NewWriter(brokers []string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Balancer: &kafka.LeastBytes{},
	}
}

func NewAuditPublisher(writer *kafka.Writer) AuditPublisher {
	return &kafkaAuditPublisher{writer: writer}
}

func (p *kafkaAuditPublisher) PublishAdminAction(
	ctx context.Context,
	event events.AdminActionEvent,
) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: events.AdminActionTopic,
		Key:   []byte(event.Entity + "-" + strconv.FormatInt(event.EntityID, 10)),
		Value: payload,
	})
}
