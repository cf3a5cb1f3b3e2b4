package websocket

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventType represents the kind of change an event announces
type EventType string

const (
	EventTypeReloaded EventType = "reloaded"
)

// EntityType represents the entity the event is about
type EntityType string

const (
	EntityTypeLedger EntityType = "ledger"
)

// Event represents a WebSocket event message sent to clients
// Format: { type, entity, payload, timestamp }
type Event struct {
	Type      string      `json:"type"`      // Combined type e.g. "ledger.reloaded"
	Entity    EntityType  `json:"entity"`    // Entity type e.g. "ledger"
	Payload   interface{} `json:"payload"`   // Event data
	Timestamp time.Time   `json:"timestamp"` // Event timestamp
}

// NewEvent creates a new event with the given type, entity, and payload
func NewEvent(eventType EventType, entityType EntityType, payload interface{}) Event {
	return Event{
		Type:      fmt.Sprintf("%s.%s", entityType, eventType),
		Entity:    entityType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON serializes the event to JSON bytes
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// LedgerReloadedPayload carries the outcome of a successful intake batch.
type LedgerReloadedPayload struct {
	BatchID     string `json:"batchId"`
	RecordCount int    `json:"recordCount"`
}

// LedgerReloaded creates a ledger.reloaded event
func LedgerReloaded(batchID string, recordCount int) Event {
	return NewEvent(EventTypeReloaded, EntityTypeLedger, LedgerReloadedPayload{
		BatchID:     batchID,
		RecordCount: recordCount,
	})
}
