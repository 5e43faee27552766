package model

import (
	"rooming/shared/model"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID               = "booking_id"
	FieldHotelID          = "hotel_id"
	FieldEventID          = "event_id"
	FieldGuestName        = "guest_name"
	FieldGuestPhoneNumber = "guest_phone_number"
	FieldGuestEmail       = "guest_email"
	FieldCheckInDate      = "check_in_date"
	FieldCheckOutDate     = "check_out_date"

	FieldEventName = "event_name"
	EventTableName = "events"
)

type Booking struct {
	ID               int64     `db:"booking_id" insert:"-"`
	HotelID          int64     `db:"hotel_id"`
	EventID          int64     `db:"event_id"`
	GuestName        string    `db:"guest_name"`
	GuestPhoneNumber *string   `db:"guest_phone_number"`
	GuestEmail       *string   `db:"guest_email"`
	CheckInDate      time.Time `db:"check_in_date"`
	CheckOutDate     time.Time `db:"check_out_date"`
	EventName        *string   `db:"event_name" table:"events"`
	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return "LEFT JOIN events ON events.event_id = bookings.event_id"
}
