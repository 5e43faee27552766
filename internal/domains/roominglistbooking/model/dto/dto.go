package dto

import (
	"rooming/internal/domains/roominglistbooking/model"
	gDto "rooming/shared/dto"
)

type LinkResponse struct {
	ID            int64 `json:"id"`
	RoomingListID int64 `json:"roomingListId"`
	BookingID     int64 `json:"bookingId"`
	gDto.Metadata
}

func (r *LinkResponse) FromModel(link model.RoomingListBooking) {
	r.ID = link.ID
	r.RoomingListID = link.RoomingListID
	r.BookingID = link.BookingID
	r.Metadata.FromModel(link.Metadata)
}
