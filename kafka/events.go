package kafka

import "time"

// CatalogChangedEvent signals that a catalog record was created, updated or
// deleted. Consumers use it to refresh cached catalog snapshots.
type CatalogChangedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Kind      string    `json:"kind"`
	Action    string    `json:"action"`
	RecordID  string    `json:"record_id"`
	Timestamp time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeProductCreated  = "catalog.product.created"
	EventTypeProductUpdated  = "catalog.product.updated"
	EventTypeProductDeleted  = "catalog.product.deleted"
	EventTypeRoasteryCreated = "catalog.roastery.created"
	EventTypeRoasteryDeleted = "catalog.roastery.deleted"
	EventTypeCoffeeCreated   = "catalog.coffee.created"
)

// Kafka topics
const (
	TopicCatalogEvents = "catalog-events"
)

// eventTypeFor maps a record kind and action to the published event type. The
// standard_coffee kind is shortened to coffee on the wire.
func eventTypeFor(kind, action string) string {
	if kind == "standard_coffee" {
		kind = "coffee"
	}
	return "catalog." + kind + "." + action
}
