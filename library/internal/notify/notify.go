package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	cb "github.com/bookhaven/library-service/pkg/circuit_breaker"
	"github.com/bookhaven/library-service/pkg/kafka"
)

// Publisher emits member notifications to the notifications topic. Delivery to
// the mail relay happens downstream of the topic.
type Publisher struct {
	producer sarama.SyncProducer
	breaker  cb.CircuitBreaker
	log      *zap.Logger
}

func New(producer sarama.SyncProducer, log *zap.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		breaker:  cb.New(20, 30*time.Second, 0.5, 5),
		log:      log.Named("notify"),
	}
}

func (p *Publisher) Send(_ context.Context, recipient, subject, body string) error {
	event := kafka.EventNotification{
		Timestamp: time.Now().UTC(),
		Recipient: recipient,
		Subject:   subject,
		Body:      body,
	}
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.breaker.Call(func() error {
		msg := &sarama.ProducerMessage{Topic: kafka.NotificationTopic, Value: sarama.StringEncoder(data)}
		if _, _, err := p.producer.SendMessage(msg); err != nil {
			p.log.Error("SendMessage", zap.String("subject", subject), zap.Error(err))
			return err
		}
		return nil
	})
}
