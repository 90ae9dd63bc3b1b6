package amqp

import (
	"encoding/json"
	"time"

	"mindful/internal/kv"
	"mindful/internal/ledger"
)

// ChangeMessage announces that one journal field was written. It carries no
// data; consumers re-read the key from the shared store.
type ChangeMessage struct {
	Key       string    `json:"key"`
	Field     kv.Field  `json:"field"`
	Op        ledger.Op `json:"op"`
	Timestamp time.Time `json:"timestamp"`
}

// NewChangeMessage creates a message for a journal change
func NewChangeMessage(c ledger.Change) *ChangeMessage {
	ts := c.At
	if ts.IsZero() {
		ts = time.Now()
	}
	return &ChangeMessage{
		Key:       c.Key,
		Field:     c.Field,
		Op:        c.Op,
		Timestamp: ts,
	}
}

// ToJSON converts the message to JSON bytes
func (m *ChangeMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ChangeMessageFromJSON creates a message from JSON bytes
func ChangeMessageFromJSON(data []byte) (*ChangeMessage, error) {
	var msg ChangeMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
