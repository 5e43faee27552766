package model

import (
	bookingModel "rooming/internal/domains/booking/model"
	"rooming/shared/model"
)

const (
	TableName  = "rooming_list_bookings"
	EntityName = "rooming_list_booking"

	FieldID            = "id"
	FieldRoomingListID = "rooming_list_id"
	FieldBookingID     = "booking_id"
)

type RoomingListBooking struct {
	ID            int64 `db:"id" insert:"-"`
	RoomingListID int64 `db:"rooming_list_id"`
	BookingID     int64 `db:"booking_id"`
	model.Metadata
}

// LinkedBooking is a booking tagged with the rooming list it was fetched for.
type LinkedBooking struct {
	RoomingListID int64 `db:"rooming_list_id"`
	bookingModel.Booking
}

// GroupByRoomingList buckets linked bookings by rooming list, keeping row order.
func GroupByRoomingList(linked []LinkedBooking) map[int64][]bookingModel.Booking {
	grouped := make(map[int64][]bookingModel.Booking)

	for _, row := range linked {
		grouped[row.RoomingListID] = append(grouped[row.RoomingListID], row.Booking)
	}

	return grouped
}
