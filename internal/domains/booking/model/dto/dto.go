package dto

import (
	"rooming/internal/domains/booking/model"
	"rooming/shared"
	gDto "rooming/shared/dto"
	"rooming/shared/failure"
	"time"
)

const errDateOrder = "checkOutDate must be after checkInDate"

type CreateBookingRequest struct {
	HotelID          int64   `json:"hotelId"          validate:"required,gt=0"`
	EventID          int64   `json:"eventId"          validate:"required,gt=0"`
	GuestName        string  `json:"guestName"        validate:"required,notblank,max=255"`
	GuestPhoneNumber *string `json:"guestPhoneNumber" validate:"omitempty,max=20"`
	GuestEmail       *string `json:"guestEmail"       validate:"omitempty,email,max=255"`
	CheckInDate      string  `json:"checkInDate"      validate:"required,date"`
	CheckOutDate     string  `json:"checkOutDate"     validate:"required,date"`
}

// ToModel parses the stay dates and rejects a check-out that is not after check-in.
func (c *CreateBookingRequest) ToModel() (model.Booking, error) {
	checkIn, checkOut, err := parseStay(c.CheckInDate, c.CheckOutDate)
	if err != nil {
		return model.Booking{}, err
	}

	return model.Booking{
		HotelID:          c.HotelID,
		EventID:          c.EventID,
		GuestName:        c.GuestName,
		GuestPhoneNumber: c.GuestPhoneNumber,
		GuestEmail:       c.GuestEmail,
		CheckInDate:      checkIn,
		CheckOutDate:     checkOut,
	}, nil
}

type UpdateBookingRequest struct {
	HotelID          *int64  `db:"hotel_id"           json:"hotelId"          validate:"omitempty,gt=0"`
	EventID          *int64  `db:"event_id"           json:"eventId"          validate:"omitempty,gt=0"`
	GuestName        *string `db:"guest_name"         json:"guestName"        validate:"omitempty,notblank,max=255"`
	GuestPhoneNumber *string `db:"guest_phone_number" json:"guestPhoneNumber" validate:"omitempty,max=20"`
	GuestEmail       *string `db:"guest_email"        json:"guestEmail"       validate:"omitempty,email,max=255"`
	CheckInDate      *string `db:"-"                  json:"checkInDate"      validate:"omitempty,date"`
	CheckOutDate     *string `db:"-"                  json:"checkOutDate"     validate:"omitempty,date"`
}

func (u *UpdateBookingRequest) IsEmpty() bool {
	return *u == UpdateBookingRequest{}
}

// ToFields merges the supplied dates over the stored booking, checks the stay
// is still ordered and returns the column map to update.
func (u *UpdateBookingRequest) ToFields(current model.Booking) (map[string]any, error) {
	fields := shared.TransformFields(*u)

	checkIn, checkOut := current.CheckInDate, current.CheckOutDate

	if u.CheckInDate != nil {
		date, err := shared.ParseDate(*u.CheckInDate)
		if err != nil {
			return nil, failure.BadRequest(err)
		}

		checkIn = date
		fields[model.FieldCheckInDate] = date
	}

	if u.CheckOutDate != nil {
		date, err := shared.ParseDate(*u.CheckOutDate)
		if err != nil {
			return nil, failure.BadRequest(err)
		}

		checkOut = date
		fields[model.FieldCheckOutDate] = date
	}

	if !checkOut.After(checkIn) {
		return nil, failure.BadRequestFromString(errDateOrder)
	}

	return fields, nil
}

func parseStay(checkInDate, checkOutDate string) (checkIn, checkOut time.Time, err error) {
	checkIn, err = shared.ParseDate(checkInDate)
	if err != nil {
		return checkIn, checkOut, failure.BadRequest(err)
	}

	checkOut, err = shared.ParseDate(checkOutDate)
	if err != nil {
		return checkIn, checkOut, failure.BadRequest(err)
	}

	if !checkOut.After(checkIn) {
		return checkIn, checkOut, failure.BadRequestFromString(errDateOrder)
	}

	return checkIn, checkOut, nil
}

// ListBookingsRequest holds the list filters read from the query string.
type ListBookingsRequest struct {
	Search   string `json:"search"`
	Status   string `json:"status"`
	DateFrom string `json:"dateFrom"`
	DateTo   string `json:"dateTo"`
	gDto.QueryParams
}

type BookingResponse struct {
	ID               int64   `json:"bookingId"`
	HotelID          int64   `json:"hotelId"`
	EventID          int64   `json:"eventId"`
	EventName        *string `json:"eventName,omitempty"`
	GuestName        string  `json:"guestName"`
	GuestPhoneNumber *string `json:"guestPhoneNumber"`
	GuestEmail       *string `json:"guestEmail"`
	CheckInDate      string  `json:"checkInDate"`
	CheckOutDate     string  `json:"checkOutDate"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID
	r.HotelID = booking.HotelID
	r.EventID = booking.EventID
	r.EventName = booking.EventName
	r.GuestName = booking.GuestName
	r.GuestPhoneNumber = booking.GuestPhoneNumber
	r.GuestEmail = booking.GuestEmail
	r.CheckInDate = shared.FormatDate(booking.CheckInDate)
	r.CheckOutDate = shared.FormatDate(booking.CheckOutDate)
	r.Metadata.FromModel(booking.Metadata)
}

func FromModels(bookings []model.Booking) []BookingResponse {
	res := make([]BookingResponse, len(bookings))

	for i, booking := range bookings {
		res[i].FromModel(booking)
	}

	return res
}
