package model_test

import (
	"testing"

	bookingModel "rooming/internal/domains/booking/model"
	"rooming/internal/domains/roominglistbooking/model"

	"github.com/stretchr/testify/assert"
)

func TestGroupByRoomingList(t *testing.T) {
	linked := []model.LinkedBooking{
		{RoomingListID: 1, Booking: bookingModel.Booking{ID: 10}},
		{RoomingListID: 2, Booking: bookingModel.Booking{ID: 11}},
		{RoomingListID: 1, Booking: bookingModel.Booking{ID: 12}},
	}

	grouped := model.GroupByRoomingList(linked)

	assert.Len(t, grouped, 2)
	assert.Equal(t, []int64{10, 12}, []int64{grouped[1][0].ID, grouped[1][1].ID})
	assert.Equal(t, int64(11), grouped[2][0].ID)
	assert.Empty(t, grouped[3])
}
