package service

import (
	"encoding/json"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/perpusid/perpustakaan-service/internal/model"
	"github.com/perpusid/perpustakaan-service/pkg/kafka"
)

// Publisher feeds loan lifecycle transitions to interested consumers.
// Publishing is best-effort: a broker outage must never fail the loan
// operation that triggered the event.
type Publisher interface {
	PublishLoanEvent(ev model.LoanEvent)
}

type kafkaPublisher struct {
	producer sarama.SyncProducer
	log      *zap.Logger
}

func NewKafkaPublisher(producer sarama.SyncProducer, log *zap.Logger) Publisher {
	return &kafkaPublisher{
		producer: producer,
		log:      log.Named("events"),
	}
}

func (p *kafkaPublisher) PublishLoanEvent(ev model.LoanEvent) {
	ev.EventID = uuid.NewString()
	data, err := json.Marshal(ev)
	if err != nil {
		p.log.Error("marshal loan event", zap.Error(err))
		return
	}
	msg := &sarama.ProducerMessage{
		Topic: kafka.LoanEventsTopic,
		Key:   sarama.StringEncoder(ev.LoanID),
		Value: sarama.ByteEncoder(data),
	}
	if _, _, err := p.producer.SendMessage(msg); err != nil {
		p.log.Error("publish loan event", zap.String("type", string(ev.Type)), zap.Error(err))
	}
}

type noopPublisher struct{}

// NewNoopPublisher stands in when no brokers are configured.
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) PublishLoanEvent(model.LoanEvent) {}
