package models

// IdeaCreatedEvent is published to Kafka after an idea is stored.
type IdeaCreatedEvent struct {
	EventID   string `json:"event_id"`  // Unique event identifier
	IdeaID    string `json:"idea_id"`   // Identifier of the new idea, also the message key
	Owner     string `json:"owner"`     // Username of the owner
	Title     string `json:"title"`     // Idea title
	Timestamp int64  `json:"timestamp"` // Unix timestamp (seconds) of creation
}
