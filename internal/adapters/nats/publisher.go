package natsadapter

import (
	"context"
	"encoding/json"

	nats "github.com/nats-io/nats.go"
)

// EventPublisher announces completed registrations to interested services.
type EventPublisher interface {
	UserRegistered(ctx context.Context, userID, email, userType string) error
}

type publisher struct {
	conn    *nats.Conn
	subject string
}

func NewPublisher(conn *nats.Conn, subject string) EventPublisher {
	return &publisher{conn: conn, subject: subject}
}

func (p *publisher) UserRegistered(_ context.Context, userID, email, userType string) error {
	payload := map[string]string{"user_id": userID, "email": email, "user_type": userType}
	data, _ := json.Marshal(payload)
	return p.conn.Publish(p.subject, data)
}
