package dto

import (
	"rooming/internal/domains/event/model"
	gDto "rooming/shared/dto"
)

type CreateEventRequest struct {
	EventName   string  `json:"eventName"   validate:"required,notblank,max=255"`
	Description *string `json:"description" validate:"omitempty"`
}

func (c *CreateEventRequest) ToModel() model.Event {
	return model.Event{
		EventName:   c.EventName,
		Description: c.Description,
	}
}

// UpdateEventRequest only touches the fields that are present in the body.
type UpdateEventRequest struct {
	EventName   *string `db:"event_name"  json:"eventName"   validate:"omitempty,notblank,max=255"`
	Description *string `db:"description" json:"description" validate:"omitempty"`
}

func (u *UpdateEventRequest) IsEmpty() bool {
	return u.EventName == nil && u.Description == nil
}

type EventResponse struct {
	ID          int64   `json:"eventId"`
	EventName   string  `json:"eventName"`
	Description *string `json:"description"`
	gDto.Metadata
}

func (r *EventResponse) FromModel(event model.Event) {
	r.ID = event.ID
	r.EventName = event.EventName
	r.Description = event.Description
	r.Metadata.FromModel(event.Metadata)
}

type EventSummaryResponse struct {
	EventResponse
	RoomingListCount int64 `json:"roomingListCount"`
	BookingCount     int64 `json:"bookingCount"`
}

func (r *EventSummaryResponse) FromModel(summary model.EventSummary) {
	r.EventResponse.FromModel(summary.Event)
	r.RoomingListCount = summary.RoomingListCount
	r.BookingCount = summary.BookingCount
}

func FromSummaries(summaries []model.EventSummary) []EventSummaryResponse {
	res := make([]EventSummaryResponse, len(summaries))

	for i, summary := range summaries {
		res[i].FromModel(summary)
	}

	return res
}
