package model

import "time"

// Seed rows carry their identifiers explicitly, unlike the domain models whose ids are generated.
const (
	EventTableName       = "events"
	BookingTableName     = "bookings"
	RoomingListTableName = "rooming_lists"
	LinkTableName        = "rooming_list_bookings"
)

type SeedEvent struct {
	ID          int64   `db:"event_id"`
	EventName   string  `db:"event_name"`
	Description *string `db:"description"`
}

type SeedBooking struct {
	ID               int64     `db:"booking_id"`
	HotelID          int64     `db:"hotel_id"`
	EventID          int64     `db:"event_id"`
	GuestName        string    `db:"guest_name"`
	GuestPhoneNumber *string   `db:"guest_phone_number"`
	GuestEmail       *string   `db:"guest_email"`
	CheckInDate      time.Time `db:"check_in_date"`
	CheckOutDate     time.Time `db:"check_out_date"`
}

type SeedRoomingList struct {
	ID            int64     `db:"rooming_list_id"`
	EventID       int64     `db:"event_id"`
	HotelID       int64     `db:"hotel_id"`
	RfpName       string    `db:"rfp_name"`
	CutOffDate    time.Time `db:"cut_off_date"`
	Status        string    `db:"status"`
	AgreementType string    `db:"agreement_type"`
}

type SeedLink struct {
	RoomingListID int64 `db:"rooming_list_id"`
	BookingID     int64 `db:"booking_id"`
}

// Dataset is everything one load writes, in insert order.
type Dataset struct {
	Events       []SeedEvent
	Bookings     []SeedBooking
	RoomingLists []SeedRoomingList
	Links        []SeedLink
}

type Counts struct {
	Events              int `db:"events"                json:"events"`
	Bookings            int `db:"bookings"              json:"bookings"`
	RoomingLists        int `db:"rooming_lists"         json:"roomingLists"`
	RoomingListBookings int `db:"rooming_list_bookings" json:"roomingListBookings"`
}

func (d Dataset) Counts() Counts {
	return Counts{
		Events:              len(d.Events),
		Bookings:            len(d.Bookings),
		RoomingLists:        len(d.RoomingLists),
		RoomingListBookings: len(d.Links),
	}
}
