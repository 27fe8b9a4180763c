package events

import "time"

const TopicTransactionCompleted = "transaction_completed"

// TransactionCompleted is emitted after a transaction commits.
type TransactionCompleted struct {
	TransactionID string    `json:"transaction_id"`
	UserID        string    `json:"user_id"`
	Amount        string    `json:"amount"`
	Type          string    `json:"type"`
	Date          time.Time `json:"date"`
}

type Publisher interface {
	Publish(topic string, event any) error
}

// NoopPublisher satisfies Publisher when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(string, any) error { return nil }
