package events

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/mesadeayuda/helpdesk-service/internal/model"
)

const (
	TicketCreated       = "ticket.created"
	TicketResponseAdded = "ticket.response_added"
	TicketStatusChanged = "ticket.status_changed"
	TicketReplayed      = "ticket.replayed"
)

// TicketEventProducer is what the service layer sees; the nil-safe Producer
// below is the default implementation, fakes cover it in tests.
type TicketEventProducer interface {
	ProduceTicketEvent(ctx context.Context, event string, payload map[string]interface{})
}

// Producer writes ticket events to a Kafka topic, best-effort: a broker
// failure is logged and never surfaces to the API call that caused it.
type Producer struct {
	writer *kafka.Writer
	topic  string
}

// NewProducer returns a producer. With no brokers or topic configured all
// methods are no-ops.
func NewProducer(brokers []string, topic string) *Producer {
	if len(brokers) == 0 || topic == "" {
		return &Producer{}
	}
	return &Producer{
		topic: topic,
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 10 * time.Millisecond,
		},
	}
}

func (p *Producer) ProduceTicketEvent(ctx context.Context, event string, payload map[string]interface{}) {
	if p.writer == nil {
		return
	}
	msg := map[string]interface{}{"event": event}
	for k, v := range payload {
		msg[k] = v
	}
	body, err := json.Marshal(msg)
	if err != nil {
		log.Printf("events: marshal ticket event: %v", err)
		return
	}
	if err := p.writer.WriteMessages(ctx, kafka.Message{Key: []byte(event), Value: body}); err != nil {
		log.Printf("events: write ticket event: %v", err)
	}
}

func (p *Producer) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

// TicketPayload flattens a ticket into the shape downstream consumers read.
func TicketPayload(t *model.Ticket) map[string]interface{} {
	payload := map[string]interface{}{
		"ticket_id":        t.ID,
		"user_id":          t.UserID,
		"asunto":           t.Asunto,
		"status":           string(t.Status),
		"priority":         string(t.Priority),
		"tipo_problema_id": t.TipoProblemaID,
	}
	if t.AreaID != nil {
		payload["area_id"] = *t.AreaID
	}
	if t.ProyectoID != nil {
		payload["proyecto_id"] = *t.ProyectoID
	}
	return payload
}
