package events

import "time"

// Event is the contract for all domain events published to the bus.
type Event interface {
	// EventType returns the unique code, e.g. "ENROLLMENT_COMPLETED".
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Event type codes used across the service.
const (
	TypeUserRegistered      = "USER_REGISTERED"
	TypeEnrollmentCreated   = "ENROLLMENT_CREATED"
	TypeEnrollmentCompleted = "ENROLLMENT_COMPLETED"
	TypeCertificateIssued   = "CERTIFICATE_ISSUED"
	TypeLeadCaptured        = "LEAD_CAPTURED"
)
