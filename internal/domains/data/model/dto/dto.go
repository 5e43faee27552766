package dto

import (
	"cmp"
	"encoding/json"
	"fmt"
	"rooming/internal/domains/data/model"
	"rooming/shared"
	"rooming/shared/constant"
	"slices"
	"strings"

	"github.com/hashicorp/go-multierror"
)

const (
	FileEvents       = "events.json"
	FileBookings     = "bookings.json"
	FileRoomingLists = "rooming-lists.json"
	FileLinks        = "rooming-list-bookings.json"
)

type EventSource struct {
	EventID     int64   `json:"eventId"`
	EventName   string  `json:"eventName"`
	Description *string `json:"description"`
}

type BookingSource struct {
	BookingID        int64   `json:"bookingId"`
	HotelID          int64   `json:"hotelId"`
	EventID          int64   `json:"eventId"`
	GuestName        string  `json:"guestName"`
	GuestPhoneNumber *string `json:"guestPhoneNumber"`
	GuestEmail       *string `json:"guestEmail"`
	CheckInDate      string  `json:"checkInDate"`
	CheckOutDate     string  `json:"checkOutDate"`
}

type RoomingListSource struct {
	RoomingListID int64  `json:"roomingListId"`
	EventID       int64  `json:"eventId"`
	EventName     string `json:"eventName"`
	HotelID       int64  `json:"hotelId"`
	RfpName       string `json:"rfpName"`
	CutOffDate    string `json:"cutOffDate"`
	Status        string `json:"status"`
	AgreementType string `json:"agreementType"`
}

// UnmarshalJSON accepts the snake_case agreement_type key used by older exports.
func (r *RoomingListSource) UnmarshalJSON(data []byte) error {
	type alias RoomingListSource

	payload := struct {
		alias
		LegacyAgreementType string `json:"agreement_type"`
	}{}

	if err := json.Unmarshal(data, &payload); err != nil {
		return err //nolint:wrapcheck
	}

	*r = RoomingListSource(payload.alias)

	if r.AgreementType == "" {
		r.AgreementType = payload.LegacyAgreementType
	}

	return nil
}

type LinkSource struct {
	RoomingListID int64 `json:"roomingListId"`
	BookingID     int64 `json:"bookingId"`
}

// Sources holds the decoded documents. Events is nil when events.json is absent.
type Sources struct {
	Events       []EventSource
	Bookings     []BookingSource
	RoomingLists []RoomingListSource
	Links        []LinkSource
}

// ToDataset validates every row and reports all problems at once.
func (s Sources) ToDataset() (model.Dataset, error) {
	var (
		dataset model.Dataset
		errs    *multierror.Error
	)

	for i, src := range s.Bookings {
		booking, err := src.toSeed()
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s[%d]: %w", FileBookings, i, err))

			continue
		}

		dataset.Bookings = append(dataset.Bookings, booking)
	}

	for i, src := range s.RoomingLists {
		roomingList, err := src.toSeed()
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s[%d]: %w", FileRoomingLists, i, err))

			continue
		}

		dataset.RoomingLists = append(dataset.RoomingLists, roomingList)
	}

	for i, src := range s.Links {
		if src.RoomingListID <= 0 || src.BookingID <= 0 {
			errs = multierror.Append(errs, fmt.Errorf("%s[%d]: roomingListId and bookingId are required", FileLinks, i))

			continue
		}

		dataset.Links = append(dataset.Links, model.SeedLink{RoomingListID: src.RoomingListID, BookingID: src.BookingID})
	}

	dataset.Events = s.deriveEvents()

	return dataset, errs.ErrorOrNil()
}

// deriveEvents uses events.json when present. Otherwise every event id referenced by a
// rooming list (named after its eventName) or a booking (named "Event <id>") becomes an event.
func (s Sources) deriveEvents() []model.SeedEvent {
	if s.Events != nil {
		events := make([]model.SeedEvent, 0, len(s.Events))
		for _, src := range s.Events {
			events = append(events, model.SeedEvent{ID: src.EventID, EventName: src.EventName, Description: src.Description})
		}

		return events
	}

	names := map[int64]string{}

	for _, roomingList := range s.RoomingLists {
		if _, ok := names[roomingList.EventID]; !ok && strings.TrimSpace(roomingList.EventName) != "" {
			names[roomingList.EventID] = roomingList.EventName
		}
	}

	for _, booking := range s.Bookings {
		if _, ok := names[booking.EventID]; !ok {
			names[booking.EventID] = fmt.Sprintf("Event %d", booking.EventID)
		}
	}

	for _, roomingList := range s.RoomingLists {
		if _, ok := names[roomingList.EventID]; !ok {
			names[roomingList.EventID] = fmt.Sprintf("Event %d", roomingList.EventID)
		}
	}

	events := make([]model.SeedEvent, 0, len(names))
	for id, name := range names {
		events = append(events, model.SeedEvent{ID: id, EventName: name})
	}

	slices.SortFunc(events, func(a, b model.SeedEvent) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return events
}

func (b BookingSource) toSeed() (model.SeedBooking, error) {
	if b.BookingID <= 0 || b.HotelID <= 0 || b.EventID <= 0 || strings.TrimSpace(b.GuestName) == "" {
		return model.SeedBooking{}, fmt.Errorf("bookingId, hotelId, eventId and guestName are required")
	}

	checkIn, err := shared.ParseDate(b.CheckInDate)
	if err != nil {
		return model.SeedBooking{}, fmt.Errorf("checkInDate: %w", err)
	}

	checkOut, err := shared.ParseDate(b.CheckOutDate)
	if err != nil {
		return model.SeedBooking{}, fmt.Errorf("checkOutDate: %w", err)
	}

	if !checkOut.After(checkIn) {
		return model.SeedBooking{}, fmt.Errorf("checkOutDate must be after checkInDate")
	}

	return model.SeedBooking{
		ID:               b.BookingID,
		HotelID:          b.HotelID,
		EventID:          b.EventID,
		GuestName:        b.GuestName,
		GuestPhoneNumber: b.GuestPhoneNumber,
		GuestEmail:       b.GuestEmail,
		CheckInDate:      checkIn,
		CheckOutDate:     checkOut,
	}, nil
}

func (r RoomingListSource) toSeed() (model.SeedRoomingList, error) {
	if r.RoomingListID <= 0 || r.EventID <= 0 || r.HotelID <= 0 || strings.TrimSpace(r.RfpName) == "" {
		return model.SeedRoomingList{}, fmt.Errorf("roomingListId, eventId, hotelId and rfpName are required")
	}

	cutOff, err := shared.ParseDate(r.CutOffDate)
	if err != nil {
		return model.SeedRoomingList{}, fmt.Errorf("cutOffDate: %w", err)
	}

	status := r.Status
	if status == "" {
		status = constant.RoomingStatusActive
	}

	if !slices.Contains(constant.RoomingStatuses, status) {
		return model.SeedRoomingList{}, fmt.Errorf("status %q must be one of: %s", status, strings.Join(constant.RoomingStatuses, ", "))
	}

	if !slices.Contains(constant.AgreementTypes, r.AgreementType) {
		return model.SeedRoomingList{}, fmt.Errorf("agreementType %q must be one of: %s", r.AgreementType, strings.Join(constant.AgreementTypes, ", "))
	}

	return model.SeedRoomingList{
		ID:            r.RoomingListID,
		EventID:       r.EventID,
		HotelID:       r.HotelID,
		RfpName:       r.RfpName,
		CutOffDate:    cutOff,
		Status:        status,
		AgreementType: r.AgreementType,
	}, nil
}

type LoadResponse struct {
	Summary model.Counts      `json:"summary"`
	Files   map[string]string `json:"files"`
	Source  string            `json:"source"`
}
