package model

import "rooming/shared/model"

const (
	TableName  = "events"
	EntityName = "event"

	FieldID          = "event_id"
	FieldEventName   = "event_name"
	FieldDescription = "description"
)

type Event struct {
	ID          int64   `db:"event_id" insert:"-"`
	EventName   string  `db:"event_name"`
	Description *string `db:"description"`
	model.Metadata
}

// EventSummary is an event with the number of rooming lists and bookings that reference it.
type EventSummary struct {
	Event
	RoomingListCount int64 `db:"rooming_list_count"`
	BookingCount     int64 `db:"booking_count"`
}
