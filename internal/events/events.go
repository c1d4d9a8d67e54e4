// Package events publishes answered-query notifications.
package events

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

// DefaultSubject is the NATS subject query events are published on.
const DefaultSubject = "flight.assistant.queries"

// QueryEvent describes one answered prompt.
type QueryEvent struct {
	ID         uuid.UUID `json:"id"`
	Prompt     string    `json:"prompt"`
	Function   string    `json:"function,omitempty"`
	ReplyType  string    `json:"reply_type"`
	HTTPStatus int       `json:"http_status"`
	LatencyMS  int64     `json:"latency_ms"`
	Timestamp  time.Time `json:"timestamp"`
}

// Publisher delivers query events.
type Publisher interface {
	Publish(event QueryEvent) error
	Close()
}

// msgPublisher is the part of *nats.Conn used here.
type msgPublisher interface {
	Publish(subj string, data []byte) error
}

// NATSPublisher sends events as JSON to a NATS subject.
type NATSPublisher struct {
	conn    msgPublisher
	subject string
	close   func()
}

// Connect dials the NATS server at url. The connection keeps retrying in the
// background if the server is not up yet.
func Connect(url, subject string) (*NATSPublisher, error) {
	nc, err := nats.Connect(url,
		nats.Name("flight-assistant"),
		nats.Timeout(10*time.Second),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(3*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Printf("[Events] Disconnected from NATS: %v", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Printf("[Events] Reconnected to NATS at %s", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS at %s: %w", url, err)
	}
	log.Printf("[Events] Connected to NATS at %s, publishing on %s", url, subject)
	return newNATSPublisher(nc, subject, nc.Close), nil
}

func newNATSPublisher(conn msgPublisher, subject string, closeFn func()) *NATSPublisher {
	if subject == "" {
		subject = DefaultSubject
	}
	if closeFn == nil {
		closeFn = func() {}
	}
	return &NATSPublisher{conn: conn, subject: subject, close: closeFn}
}

// Publish marshals event and sends it.
func (p *NATSPublisher) Publish(event QueryEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal query event: %w", err)
	}
	if err := p.conn.Publish(p.subject, data); err != nil {
		return fmt.Errorf("failed to publish query event to %s: %w", p.subject, err)
	}
	return nil
}

func (p *NATSPublisher) Close() { p.close() }

// Nop discards every event.
type Nop struct{}

func (Nop) Publish(QueryEvent) error { return nil }
func (Nop) Close()                   {}
