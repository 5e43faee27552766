package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"rooming/internal/domains/data/model"
	"rooming/internal/domains/data/model/dto"
)

func TestRoomingListSource_LegacyAgreementType(t *testing.T) {
	var rows []dto.RoomingListSource

	err := json.Unmarshal([]byte(`[
		{"roomingListId": 1, "agreement_type": "leisure"},
		{"roomingListId": 2, "agreementType": "staff", "agreement_type": "artist"}
	]`), &rows)
	assert.NoError(t, err)
	assert.Equal(t, "leisure", rows[0].AgreementType)
	assert.Equal(t, "staff", rows[1].AgreementType)
}

func TestSources_ToDataset(t *testing.T) {
	sources := dto.Sources{
		Bookings: []dto.BookingSource{
			{BookingID: 1, HotelID: 10, EventID: 1, GuestName: "Ann", CheckInDate: "2025-09-01", CheckOutDate: "2025-09-03"},
			{BookingID: 2, HotelID: 10, EventID: 3, GuestName: "Bob", CheckInDate: "2025-09-01", CheckOutDate: "2025-09-02"},
		},
		RoomingLists: []dto.RoomingListSource{
			{RoomingListID: 5, EventID: 1, EventName: "Rolling Loud", HotelID: 10, RfpName: "RL-1", CutOffDate: "2025-08-01", AgreementType: "artist"},
		},
		Links: []dto.LinkSource{{RoomingListID: 5, BookingID: 1}},
	}

	dataset, err := sources.ToDataset()
	assert.NoError(t, err)

	assert.Equal(t, model.Counts{Events: 2, Bookings: 2, RoomingLists: 1, RoomingListBookings: 1}, dataset.Counts())
	assert.Equal(t, []model.SeedEvent{{ID: 1, EventName: "Rolling Loud"}, {ID: 3, EventName: "Event 3"}}, dataset.Events)
	assert.Equal(t, "Active", dataset.RoomingLists[0].Status)
	assert.True(t, dataset.Bookings[0].CheckInDate.Equal(time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)))
}

func TestSources_ToDatasetPrefersEventsDocument(t *testing.T) {
	description := "Miami"

	dataset, err := dto.Sources{
		Events:   []dto.EventSource{{EventID: 7, EventName: "Ultra", Description: &description}},
		Bookings: []dto.BookingSource{{BookingID: 1, HotelID: 1, EventID: 7, GuestName: "Ann", CheckInDate: "2025-03-01", CheckOutDate: "2025-03-02"}},
	}.ToDataset()

	assert.NoError(t, err)
	assert.Equal(t, []model.SeedEvent{{ID: 7, EventName: "Ultra", Description: &description}}, dataset.Events)
}

func TestSources_ToDatasetReportsEveryBadRow(t *testing.T) {
	_, err := dto.Sources{
		Bookings: []dto.BookingSource{
			{BookingID: 1, HotelID: 1, EventID: 1, GuestName: "Ann", CheckInDate: "2025-03-05", CheckOutDate: "2025-03-02"},
		},
		RoomingLists: []dto.RoomingListSource{
			{RoomingListID: 1, EventID: 1, HotelID: 1, RfpName: "x", CutOffDate: "2025-01-01", Status: "completed", AgreementType: "staff"},
			{RoomingListID: 2, EventID: 1, HotelID: 1, RfpName: "y", CutOffDate: "2025-01-01", AgreementType: "Group Contract"},
		},
		Links: []dto.LinkSource{{BookingID: 1}},
	}.ToDataset()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "bookings.json[0]")
	assert.Contains(t, err.Error(), "rooming-lists.json[0]")
	assert.Contains(t, err.Error(), "rooming-lists.json[1]")
	assert.Contains(t, err.Error(), "rooming-list-bookings.json[0]")
}
