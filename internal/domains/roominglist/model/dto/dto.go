package dto

import (
	"encoding/json"
	bookingDto "rooming/internal/domains/booking/model/dto"
	"rooming/internal/domains/roominglist/model"
	"rooming/shared"
	"rooming/shared/constant"
	gDto "rooming/shared/dto"
	"rooming/shared/failure"
	"slices"
)

type CreateRoomingListRequest struct {
	EventID       int64   `json:"eventId"       validate:"required,gt=0"`
	HotelID       int64   `json:"hotelId"       validate:"required,gt=0"`
	RfpName       string  `json:"rfpName"       validate:"required,notblank,max=255"`
	CutOffDate    string  `json:"cutOffDate"    validate:"required,date"`
	Status        string  `json:"status"        validate:"omitempty,rooming_status"`
	AgreementType string  `json:"agreementType" validate:"required,agreement_type"`
	BookingIDs    []int64 `json:"bookingIds"    validate:"omitempty,dive,gt=0"`
}

// UnmarshalJSON also accepts the snake_case agreement_type key older clients send.
func (c *CreateRoomingListRequest) UnmarshalJSON(data []byte) error {
	type alias CreateRoomingListRequest

	payload := struct {
		alias
		LegacyAgreementType string `json:"agreement_type"`
	}{}

	if err := json.Unmarshal(data, &payload); err != nil {
		return err //nolint:wrapcheck
	}

	*c = CreateRoomingListRequest(payload.alias)

	if c.AgreementType == "" {
		c.AgreementType = payload.LegacyAgreementType
	}

	return nil
}

func (c *CreateRoomingListRequest) ToModel() (model.RoomingList, error) {
	cutOffDate, err := shared.ParseDate(c.CutOffDate)
	if err != nil {
		return model.RoomingList{}, failure.BadRequest(err)
	}

	status := c.Status
	if status == "" {
		status = constant.RoomingStatusActive
	}

	return model.RoomingList{
		EventID:       c.EventID,
		HotelID:       c.HotelID,
		RfpName:       c.RfpName,
		CutOffDate:    cutOffDate,
		Status:        status,
		AgreementType: c.AgreementType,
	}, nil
}

// UniqueBookingIDs reports whether every booking id in the payload appears once.
func (c *CreateRoomingListRequest) UniqueBookingIDs() bool {
	sorted := slices.Clone(c.BookingIDs)
	slices.Sort(sorted)

	return len(slices.Compact(sorted)) == len(c.BookingIDs)
}

type UpdateRoomingListRequest struct {
	EventID       *int64  `db:"event_id"       json:"eventId"       validate:"omitempty,gt=0"`
	HotelID       *int64  `db:"hotel_id"       json:"hotelId"       validate:"omitempty,gt=0"`
	RfpName       *string `db:"rfp_name"       json:"rfpName"       validate:"omitempty,notblank,max=255"`
	CutOffDate    *string `db:"-"              json:"cutOffDate"    validate:"omitempty,date"`
	Status        *string `db:"status"         json:"status"        validate:"omitempty,rooming_status"`
	AgreementType *string `db:"agreement_type" json:"agreementType" validate:"omitempty,agreement_type"`
}

func (u *UpdateRoomingListRequest) UnmarshalJSON(data []byte) error {
	type alias UpdateRoomingListRequest

	payload := struct {
		alias
		LegacyAgreementType *string `json:"agreement_type"`
	}{}

	if err := json.Unmarshal(data, &payload); err != nil {
		return err //nolint:wrapcheck
	}

	*u = UpdateRoomingListRequest(payload.alias)

	if u.AgreementType == nil {
		u.AgreementType = payload.LegacyAgreementType
	}

	return nil
}

func (u *UpdateRoomingListRequest) IsEmpty() bool {
	return *u == UpdateRoomingListRequest{}
}

func (u *UpdateRoomingListRequest) ToFields() (map[string]any, error) {
	fields := shared.TransformFields(*u)

	if u.CutOffDate != nil {
		date, err := shared.ParseDate(*u.CutOffDate)
		if err != nil {
			return nil, failure.BadRequest(err)
		}

		fields[model.FieldCutOffDate] = date
	}

	return fields, nil
}

type ListRoomingListsRequest struct {
	Search string `json:"search"`
	Status string `json:"status"`
	gDto.QueryParams
}

type RoomingListResponse struct {
	ID            int64   `json:"roomingListId"`
	EventID       int64   `json:"eventId"`
	EventName     *string `json:"eventName,omitempty"`
	HotelID       int64   `json:"hotelId"`
	RfpName       string  `json:"rfpName"`
	CutOffDate    string  `json:"cutOffDate"`
	Status        string  `json:"status"`
	AgreementType string  `json:"agreementType"`
	gDto.Metadata
}

func (r *RoomingListResponse) FromModel(roomingList model.RoomingList) {
	r.ID = roomingList.ID
	r.EventID = roomingList.EventID
	r.EventName = roomingList.EventName
	r.HotelID = roomingList.HotelID
	r.RfpName = roomingList.RfpName
	r.CutOffDate = shared.FormatDate(roomingList.CutOffDate)
	r.Status = roomingList.Status
	r.AgreementType = roomingList.AgreementType
	r.Metadata.FromModel(roomingList.Metadata)
}

func FromModels(roomingLists []model.RoomingList) []RoomingListResponse {
	res := make([]RoomingListResponse, len(roomingLists))

	for i, roomingList := range roomingLists {
		res[i].FromModel(roomingList)
	}

	return res
}

// RoomingListWithBookingsResponse nests the bookings linked to the rooming list.
type RoomingListWithBookingsResponse struct {
	RoomingListResponse
	BookingCount int                          `json:"bookingCount"`
	Bookings     []bookingDto.BookingResponse `json:"bookings"`
}

func (r *RoomingListWithBookingsResponse) FromModel(roomingList model.RoomingList, bookings []bookingDto.BookingResponse) {
	r.RoomingListResponse.FromModel(roomingList)

	if bookings == nil {
		bookings = []bookingDto.BookingResponse{}
	}

	r.Bookings = bookings
	r.BookingCount = len(bookings)
}
