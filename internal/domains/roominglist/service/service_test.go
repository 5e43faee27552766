package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"rooming/config"
	"rooming/infras/otel/mocks"
	"rooming/infras/postgres"
	postgresMocks "rooming/infras/postgres/mocks"
	bookingMocks "rooming/internal/domains/booking/mocks"
	bookingModel "rooming/internal/domains/booking/model"
	eventMocks "rooming/internal/domains/event/mocks"
	roomingListMocks "rooming/internal/domains/roominglist/mocks"
	"rooming/internal/domains/roominglist/model"
	"rooming/internal/domains/roominglist/model/dto"
	"rooming/internal/domains/roominglist/service"
	linkMocks "rooming/internal/domains/roominglistbooking/mocks"
	linkModel "rooming/internal/domains/roominglistbooking/model"
	activityMocks "rooming/shared/activity/mocks"
	cacheMocks "rooming/shared/cache/mocks"
	gDto "rooming/shared/dto"
	"rooming/shared/failure"
)

type fixture struct {
	repo        *roomingListMocks.MockRoomingList
	eventRepo   *eventMocks.MockEvent
	bookingRepo *bookingMocks.MockBooking
	linkRepo    *linkMocks.MockRoomingListBooking
	transactor  *postgresMocks.MockTransactor
	cache       *cacheMocks.MockRedisCache
	publisher   *activityMocks.MockPublisher
	svc         service.RoomingList
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		repo:        roomingListMocks.NewMockRoomingList(ctrl),
		eventRepo:   eventMocks.NewMockEvent(ctrl),
		bookingRepo: bookingMocks.NewMockBooking(ctrl),
		linkRepo:    linkMocks.NewMockRoomingListBooking(ctrl),
		transactor:  postgresMocks.NewMockTransactor(ctrl),
		cache:       cacheMocks.NewMockRedisCache(ctrl),
		publisher:   activityMocks.NewMockPublisher(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 300

	f.svc = service.New(f.repo, f.eventRepo, f.bookingRepo, f.linkRepo, f.transactor, cfg, f.cache, f.publisher, mocks.NewOtel())

	return f
}

func (f fixture) runTxInline() {
	f.transactor.EXPECT().WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn postgres.TxFunc) error {
			return fn(ctx, nil)
		})
}

func TestRoomingListService_List(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.List(context.Background(), dto.ListRoomingListsRequest{Status: "completed"})
		assert.True(t, failure.IsCode(err, http.StatusBadRequest))
	})

	t.Run("bookings are fetched once and grouped", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		f.repo.EXPECT().GetAll(gomock.Any(), gDto.QueryParams{SortBy: "rooming_lists.cut_off_date", SortDir: gDto.SortDirDesc}, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.RoomingList, error) {
				where, args := filter.GetWhereClause()
				assert.Contains(t, where, "rooming_lists.status = :status")
				assert.Contains(t, where, "LOWER(rooming_lists.rfp_name) LIKE LOWER(:search_rfp_name)")
				assert.Equal(t, "Active", args["status"])

				return []model.RoomingList{{ID: 1}, {ID: 2}}, nil
			})
		f.linkRepo.EXPECT().ListBookings(gomock.Any(), []int64{1, 2}).Return([]linkModel.LinkedBooking{
			{RoomingListID: 1, Booking: bookingModel.Booking{ID: 10}},
			{RoomingListID: 1, Booking: bookingModel.Booking{ID: 11}},
		}, nil)
		f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 300).Return(nil)

		res, err := f.svc.List(context.Background(), dto.ListRoomingListsRequest{
			Status:      "Active",
			Search:      "rfp",
			QueryParams: gDto.QueryParams{SortBy: "cutOffDate", SortDir: gDto.SortDirDesc},
		})
		assert.NoError(t, err)
		assert.Len(t, res, 2)
		assert.Equal(t, 2, res[0].BookingCount)
		assert.Equal(t, 0, res[1].BookingCount)
		assert.NotNil(t, res[1].Bookings)
	})
}

func TestRoomingListService_Get(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RoomingList{}, nil)

	_, err := f.svc.Get(context.Background(), 1)
	assert.True(t, failure.IsCode(err, http.StatusNotFound))

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RoomingList{ID: 1, RfpName: "ACL"}, nil)
	f.linkRepo.EXPECT().ListBookings(gomock.Any(), []int64{1}).Return(nil, nil)

	res, err := f.svc.Get(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, "ACL", res.RfpName)
	assert.Empty(t, res.Bookings)
}

func TestRoomingListService_Create(t *testing.T) {
	valid := dto.CreateRoomingListRequest{
		EventID:       1,
		HotelID:       2,
		RfpName:       "ACL-2025",
		CutOffDate:    "2025-09-30",
		AgreementType: "staff",
		BookingIDs:    []int64{4, 5},
	}

	tests := []struct {
		name      string
		req       dto.CreateRoomingListRequest
		setupMock func(f fixture)
		wantCode  int
		wantErr   bool
	}{
		{
			name: "duplicate booking ids",
			req: func() dto.CreateRoomingListRequest {
				req := valid
				req.BookingIDs = []int64{4, 4}

				return req
			}(),
			setupMock: func(fixture) {},
			wantCode:  http.StatusConflict,
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
			name: "booking missing",
			req:  valid,
			setupMock: func(f fixture) {
				f.eventRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.bookingRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "link insert fails and rolls back",
			req:  valid,
			setupMock: func(f fixture) {
				f.eventRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.bookingRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
				f.runTxInline()
				f.repo.EXPECT().InsertReturningTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.RoomingList{ID: 9}, nil)
				f.linkRepo.EXPECT().InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			wantErr: true,
		},
		{
			name: "created with links",
			req:  valid,
			setupMock: func(f fixture) {
				f.eventRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.bookingRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
				f.runTxInline()
				f.repo.EXPECT().InsertReturningTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ any, roomingList model.RoomingList) (model.RoomingList, error) {
						assert.Equal(t, "Active", roomingList.Status)
						assert.True(t, roomingList.CutOffDate.Equal(time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC)))
						roomingList.ID = 9

						return roomingList, nil
					})
				f.linkRepo.EXPECT().InsertBulkTx(gomock.Any(), gomock.Any(), []linkModel.RoomingListBooking{
					{RoomingListID: 9, BookingID: 4},
					{RoomingListID: 9, BookingID: 5},
				}).Return(nil)
				f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil)
				f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any())
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RoomingList{ID: 9, Status: "Active"}, nil)
				f.linkRepo.EXPECT().ListBookings(gomock.Any(), []int64{9}).Return([]linkModel.LinkedBooking{
					{RoomingListID: 9, Booking: bookingModel.Booking{ID: 4}},
					{RoomingListID: 9, Booking: bookingModel.Booking{ID: 5}},
				}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Create(context.Background(), tt.req)

			switch {
			case tt.wantCode != 0:
				assert.True(t, failure.IsCode(err, tt.wantCode), err)
			case tt.wantErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
				assert.Equal(t, int64(9), res.ID)
				assert.Equal(t, 2, res.BookingCount)
			}
		})
	}
}

func TestRoomingListService_Update(t *testing.T) {
	closed := "Closed"

	t.Run("empty update", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Update(context.Background(), dto.UpdateRoomingListRequest{}, 1)
		assert.True(t, failure.IsCode(err, http.StatusBadRequest))
	})

	t.Run("status changed", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RoomingList{ID: 1, Status: "Active"}, nil)
		f.repo.EXPECT().Update(gomock.Any(), map[string]any{model.FieldStatus: closed}, gomock.Any()).Return(nil)
		f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RoomingList{ID: 1, Status: closed}, nil)
		f.linkRepo.EXPECT().ListBookings(gomock.Any(), []int64{1}).Return(nil, nil)

		res, err := f.svc.Update(context.Background(), dto.UpdateRoomingListRequest{Status: &closed}, 1)
		assert.NoError(t, err)
		assert.Equal(t, closed, res.Status)
	})
}

func TestRoomingListService_Delete(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RoomingList{}, nil)

		_, err := f.svc.Delete(context.Background(), 1)
		assert.True(t, failure.IsCode(err, http.StatusNotFound))
	})

	t.Run("links then rooming list", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RoomingList{ID: 1, RfpName: "ACL"}, nil)
		f.runTxInline()
		gomock.InOrder(
			f.linkRepo.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(3), nil),
			f.repo.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil),
		)
		f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil)
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any())

		res, err := f.svc.Delete(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, "ACL", res.RfpName)
	})
}

func TestRoomingListService_ListBookings(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

	_, err := f.svc.ListBookings(context.Background(), 1)
	assert.True(t, failure.IsCode(err, http.StatusNotFound))

	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	f.bookingRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]bookingModel.Booking, error) {
			assert.Equal(t, "bookings.check_in_date", params.SortBy)

			_, args := filter.GetWhereClause()
			assert.Equal(t, int64(1), args["rooming_list_id"])

			return []bookingModel.Booking{{ID: 4}}, nil
		})

	res, err := f.svc.ListBookings(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, res, 1)
}
