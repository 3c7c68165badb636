package infrastructure

import (
	"fmt"

	"crapstable/domain/events"
)

// EventSubjectMapper handles mapping between domain events and NATS subjects
type EventSubjectMapper struct{}

// NewEventSubjectMapper creates a new event subject mapper
func NewEventSubjectMapper() *EventSubjectMapper {
	return &EventSubjectMapper{}
}

// MapEventToSubject converts a domain event to its corresponding NATS subject
func (m *EventSubjectMapper) MapEventToSubject(event events.Event) string {
	switch event.Type() {
	case events.EventTypeBetPlaced:
		return "craps.table.bet_placed"
	case events.EventTypeRollProcessed:
		return "craps.table.roll_processed"
	case events.EventTypeBetResolved:
		return "craps.table.bet_resolved"
	case events.EventTypePhaseChanged:
		return "craps.table.phase_changed"
	default:
		// Fallback for unknown event types
		return fmt.Sprintf("unknown.%s", event.Type())
	}
}

// MapSubjectToEventType converts a NATS subject back to an event type
func (m *EventSubjectMapper) MapSubjectToEventType(subject string) events.EventType {
	switch subject {
	case "craps.table.bet_placed":
		return events.EventTypeBetPlaced
	case "craps.table.roll_processed":
		return events.EventTypeRollProcessed
	case "craps.table.bet_resolved":
		return events.EventTypeBetResolved
	case "craps.table.phase_changed":
		return events.EventTypePhaseChanged
	default:
		return events.EventType(subject)
	}
}

// GetAllSubjects returns all subjects that this service publishes to
func (m *EventSubjectMapper) GetAllSubjects() []string {
	return []string{
		"craps.table.bet_placed",
		"craps.table.roll_processed",
		"craps.table.bet_resolved",
		"craps.table.phase_changed",
	}
}
