package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"rooming/config"
	"rooming/infras/otel/mocks"
	"rooming/infras/postgres"
	postgresMocks "rooming/infras/postgres/mocks"
	bookingMocks "rooming/internal/domains/booking/mocks"
	"rooming/internal/domains/booking/model"
	"rooming/internal/domains/booking/model/dto"
	"rooming/internal/domains/booking/service"
	eventMocks "rooming/internal/domains/event/mocks"
	roomingListMocks "rooming/internal/domains/roominglist/mocks"
	roomingListModel "rooming/internal/domains/roominglist/model"
	linkMocks "rooming/internal/domains/roominglistbooking/mocks"
	linkModel "rooming/internal/domains/roominglistbooking/model"
	activityMocks "rooming/shared/activity/mocks"
	cacheMocks "rooming/shared/cache/mocks"
	gDto "rooming/shared/dto"
	"rooming/shared/failure"
)

type fixture struct {
	repo            *bookingMocks.MockBooking
	eventRepo       *eventMocks.MockEvent
	roomingListRepo *roomingListMocks.MockRoomingList
	linkRepo        *linkMocks.MockRoomingListBooking
	transactor      *postgresMocks.MockTransactor
	cache           *cacheMocks.MockRedisCache
	publisher       *activityMocks.MockPublisher
	svc             service.Booking
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		repo:            bookingMocks.NewMockBooking(ctrl),
		eventRepo:       eventMocks.NewMockEvent(ctrl),
		roomingListRepo: roomingListMocks.NewMockRoomingList(ctrl),
		linkRepo:        linkMocks.NewMockRoomingListBooking(ctrl),
		transactor:      postgresMocks.NewMockTransactor(ctrl),
		cache:           cacheMocks.NewMockRedisCache(ctrl),
		publisher:       activityMocks.NewMockPublisher(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 300

	f.svc = service.New(f.repo, f.eventRepo, f.roomingListRepo, f.linkRepo, f.transactor, cfg, f.cache, f.publisher, mocks.NewOtel())

	return f
}

func (f fixture) runTxInline() {
	f.transactor.EXPECT().WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn postgres.TxFunc) error {
			return fn(ctx, nil)
		})
}

func day(value string) time.Time {
	date, _ := time.Parse(time.DateOnly, value)

	return date
}

func TestBookingService_List(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.ListBookingsRequest
		setupMock func(f fixture)
		wantCode  int
		wantWhere string
		wantSort  gDto.QueryParams
	}{
		{
			name:     "unknown status",
			req:      dto.ListBookingsRequest{Status: "pending"},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "malformed dateFrom",
			req:      dto.ListBookingsRequest{DateFrom: "01/02/2025"},
			wantCode: http.StatusBadRequest,
		},
		{
			name:      "search and date range with sort",
			req:       dto.ListBookingsRequest{Search: "ann", DateFrom: "2025-01-01", DateTo: "2025-02-01", QueryParams: gDto.QueryParams{SortBy: "guestName", SortDir: gDto.SortDirDesc}},
			wantWhere: "LOWER(bookings.guest_name) LIKE LOWER(:search_guest_name)",
			wantSort:  gDto.QueryParams{SortBy: "bookings.guest_name", SortDir: gDto.SortDirDesc},
		},
		{
			name:      "status filter uses linked rooming lists",
			req:       dto.ListBookingsRequest{Status: "Closed", QueryParams: gDto.QueryParams{SortBy: "hotel"}},
			wantWhere: "rooming_lists.status = :status",
			wantSort:  gDto.QueryParams{SortBy: "bookings.booking_id", SortDir: gDto.SortDirAsc},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			if tt.wantCode == 0 {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
				f.repo.EXPECT().GetAll(gomock.Any(), tt.wantSort, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Booking, error) {
						where, _ := filter.GetWhereClause()
						assert.Contains(t, where, tt.wantWhere)

						return []model.Booking{{ID: 1, GuestName: "Ann"}}, nil
					})
				f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 300).Return(nil)
			}

			res, err := f.svc.List(context.Background(), tt.req)

			if tt.wantCode != 0 {
				assert.True(t, failure.IsCode(err, tt.wantCode), err)

				return
			}

			assert.NoError(t, err)
			assert.Len(t, res, 1)
		})
	}
}

func TestBookingService_Create(t *testing.T) {
	valid := dto.CreateBookingRequest{
		HotelID:      1,
		EventID:      2,
		GuestName:    "Ann",
		CheckInDate:  "2025-09-01",
		CheckOutDate: "2025-09-04",
	}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "check-out before check-in",
			req: func() dto.CreateBookingRequest {
				req := valid
				req.CheckOutDate = "2025-08-30"

				return req
			}(),
			setupMock: func(fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "event missing",
			req:  valid,
			setupMock: func(f fixture) {
				f.eventRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "event removed during insert",
			req:  valid,
			setupMock: func(f fixture) {
				f.eventRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().InsertReturning(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, fmt.Errorf("insert: %w", &pq.Error{Code: "23503"}))
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "created",
			req:  valid,
			setupMock: func(f fixture) {
				f.eventRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().InsertReturning(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking) (model.Booking, error) {
						assert.True(t, booking.CheckInDate.Equal(day("2025-09-01")))
						booking.ID = 11

						return booking, nil
					})
				f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil)
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{ID: 11, GuestName: "Ann", CheckInDate: day("2025-09-01")}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Create(context.Background(), tt.req)

			if tt.wantCode != 0 {
				assert.True(t, failure.IsCode(err, tt.wantCode), err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, int64(11), res.ID)
			assert.Equal(t, "2025-09-01", res.CheckInDate)
		})
	}
}

func TestBookingService_Update(t *testing.T) {
	stored := model.Booking{ID: 5, EventID: 2, CheckInDate: day("2025-09-01"), CheckOutDate: day("2025-09-04")}
	lateCheckIn := "2025-09-10"
	newEvent := int64(9)

	tests := []struct {
		name      string
		req       dto.UpdateBookingRequest
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name:      "empty update",
			req:       dto.UpdateBookingRequest{},
			setupMock: func(fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "single date inverts merged stay",
			req:  dto.UpdateBookingRequest{CheckInDate: &lateCheckIn},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "new event missing",
			req:  dto.UpdateBookingRequest{EventID: &newEvent},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
				f.eventRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "booking missing",
			req:  dto.UpdateBookingRequest{EventID: &newEvent},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "moves to another event",
			req:  dto.UpdateBookingRequest{EventID: &newEvent},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
				f.eventRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().Update(gomock.Any(), map[string]any{model.FieldEventID: newEvent}, gomock.Any()).Return(nil)
				f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil)
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{ID: 5, EventID: newEvent}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Update(context.Background(), tt.req, 5)

			if tt.wantCode != 0 {
				assert.True(t, failure.IsCode(err, tt.wantCode), err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, newEvent, res.EventID)
		})
	}
}

func TestBookingService_Delete(t *testing.T) {
	t.Run("missing booking", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		_, err := f.svc.Delete(context.Background(), 5)
		assert.True(t, failure.IsCode(err, http.StatusNotFound))
	})

	t.Run("links removed before the booking", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{ID: 5, GuestName: "Ann"}, nil)
		f.runTxInline()
		gomock.InOrder(
			f.linkRepo.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(2), nil),
			f.repo.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil),
		)
		f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil)
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any())

		res, err := f.svc.Delete(context.Background(), 5)
		assert.NoError(t, err)
		assert.Equal(t, "Ann", res.GuestName)
	})

	t.Run("failure inside transaction", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{ID: 5}, nil)
		f.runTxInline()
		f.linkRepo.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("db down"))

		_, err := f.svc.Delete(context.Background(), 5)
		assert.Error(t, err)
	})
}

func TestBookingService_ListRoomingLists(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	f.roomingListRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]roomingListModel.RoomingList, error) {
			assert.Equal(t, "rooming_lists.cut_off_date", params.SortBy)

			_, args := filter.GetWhereClause()
			assert.Equal(t, int64(5), args["booking_id"])

			return []roomingListModel.RoomingList{{ID: 1}, {ID: 2}}, nil
		})

	res, err := f.svc.ListRoomingLists(context.Background(), 5)
	assert.NoError(t, err)
	assert.Len(t, res, 2)
}

func TestBookingService_Link(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "booking missing",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "rooming list missing",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.roomingListRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "already linked",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.roomingListRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.linkRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "concurrent duplicate",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.roomingListRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.linkRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.linkRepo.EXPECT().InsertReturning(gomock.Any(), gomock.Any()).
					Return(linkModel.RoomingListBooking{}, fmt.Errorf("insert: %w", &pq.Error{Code: "23505"}))
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "linked",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.roomingListRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.linkRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.linkRepo.EXPECT().InsertReturning(gomock.Any(), linkModel.RoomingListBooking{RoomingListID: 3, BookingID: 5}).
					Return(linkModel.RoomingListBooking{ID: 8, RoomingListID: 3, BookingID: 5}, nil)
				f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil)
				f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Link(context.Background(), 5, 3)

			if tt.wantCode != 0 {
				assert.True(t, failure.IsCode(err, tt.wantCode), err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, int64(8), res.ID)
		})
	}
}

func TestBookingService_Unlink(t *testing.T) {
	f := newFixture(t)

	f.linkRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(0), nil)
	assert.True(t, failure.IsCode(f.svc.Unlink(context.Background(), 5, 3), http.StatusNotFound))

	f.linkRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(1), nil)
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil)
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any())
	assert.NoError(t, f.svc.Unlink(context.Background(), 5, 3))
}
