package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"rooming/config"
	"rooming/infras/otel/mocks"
	eventMocks "rooming/internal/domains/event/mocks"
	"rooming/internal/domains/event/model"
	"rooming/internal/domains/event/model/dto"
	"rooming/internal/domains/event/service"
	roomingListMocks "rooming/internal/domains/roominglist/mocks"
	roomingListModel "rooming/internal/domains/roominglist/model"
	activityMocks "rooming/shared/activity/mocks"
	cacheMocks "rooming/shared/cache/mocks"
	"rooming/shared/failure"
)

type fixture struct {
	repo            *eventMocks.MockEvent
	roomingListRepo *roomingListMocks.MockRoomingList
	cache           *cacheMocks.MockRedisCache
	publisher       *activityMocks.MockPublisher
	svc             service.Event
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		repo:            eventMocks.NewMockEvent(ctrl),
		roomingListRepo: roomingListMocks.NewMockRoomingList(ctrl),
		cache:           cacheMocks.NewMockRedisCache(ctrl),
		publisher:       activityMocks.NewMockPublisher(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 300

	f.svc = service.New(f.repo, f.roomingListRepo, cfg, f.cache, f.publisher, mocks.NewOtel())

	return f
}

func TestEventService_List(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantLen   int
		wantErr   bool
	}{
		{
			name: "cache hit skips the database",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), "dataset:events:list", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						res, _ := value.(*[]dto.EventSummaryResponse)
						*res = []dto.EventSummaryResponse{{RoomingListCount: 2}}

						return nil
					})
			},
			wantLen: 1,
		},
		{
			name: "cache miss loads and stores",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
				f.repo.EXPECT().ListWithCounts(gomock.Any()).Return([]model.EventSummary{
					{Event: model.Event{ID: 1, EventName: "Rolling Loud"}, RoomingListCount: 2, BookingCount: 5},
					{Event: model.Event{ID: 2, EventName: "Ultra"}},
				}, nil)
				f.cache.EXPECT().Save(gomock.Any(), "dataset:events:list", gomock.Any(), 300).Return(nil)
			},
			wantLen: 2,
		},
		{
			name: "repository error",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
				f.repo.EXPECT().ListWithCounts(gomock.Any()).Return(nil, errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.List(context.Background())

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Len(t, res, tt.wantLen)
		})
	}
}

func TestEventService_Get(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Event{ID: 4, EventName: "Coachella"}, nil)

	res, err := f.svc.Get(context.Background(), 4)
	assert.NoError(t, err)
	assert.Equal(t, int64(4), res.ID)
	assert.Equal(t, "Coachella", res.EventName)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Event{}, nil)

	_, err = f.svc.Get(context.Background(), 99)
	assert.True(t, failure.IsCode(err, http.StatusNotFound))
}

func TestEventService_Create(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().InsertReturning(gomock.Any(), model.Event{EventName: "Lollapalooza"}).
		Return(model.Event{ID: 10, EventName: "Lollapalooza"}, nil)
	f.cache.EXPECT().Clear(gomock.Any(), "dataset:*").Return(nil)

	res, err := f.svc.Create(context.Background(), dto.CreateEventRequest{EventName: "Lollapalooza"})
	assert.NoError(t, err)
	assert.Equal(t, int64(10), res.ID)

	f.repo.EXPECT().InsertReturning(gomock.Any(), gomock.Any()).Return(model.Event{}, errors.New("db down"))

	_, err = f.svc.Create(context.Background(), dto.CreateEventRequest{EventName: "Broken"})
	assert.Error(t, err)
}

func TestEventService_Update(t *testing.T) {
	name := "Renamed"

	tests := []struct {
		name      string
		req       dto.UpdateEventRequest
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name:      "empty body",
			req:       dto.UpdateEventRequest{},
			setupMock: func(fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "missing event",
			req:  dto.UpdateEventRequest{EventName: &name},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Event{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "renames and returns the stored row",
			req:  dto.UpdateEventRequest{EventName: &name},
			setupMock: func(f fixture) {
				gomock.InOrder(
					f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Event{ID: 1, EventName: "Old"}, nil),
					f.repo.EXPECT().Update(gomock.Any(), map[string]any{model.FieldEventName: name}, gomock.Any()).Return(nil),
					f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Event{ID: 1, EventName: name}, nil),
				)
				f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Update(context.Background(), tt.req, 1)

			if tt.wantCode != 0 {
				assert.True(t, failure.IsCode(err, tt.wantCode), err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, name, res.EventName)
		})
	}
}

func TestEventService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantCode  int
		wantErr   bool
	}{
		{
			name: "missing event",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Event{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "rooming lists still reference the event",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Event{ID: 1}, nil)
				f.roomingListRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "bookings still reference the event",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Event{ID: 1}, nil)
				f.roomingListRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).
					Return(int64(0), fmt.Errorf("failed to delete data: %w", &pq.Error{Code: "23503"}))
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "removed concurrently",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Event{ID: 1}, nil)
				f.roomingListRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(0), nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "deleted",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Event{ID: 1, EventName: "Gone"}, nil)
				f.roomingListRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(1), nil)
				f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil)
				f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any())
			},
		},
		{
			name: "reference check fails",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Event{ID: 1}, nil)
				f.roomingListRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Delete(context.Background(), 1)

			switch {
			case tt.wantCode != 0:
				assert.True(t, failure.IsCode(err, tt.wantCode), err)
			case tt.wantErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
				assert.Equal(t, "Gone", res.EventName)
			}
		})
	}
}

func TestEventService_ListRoomingLists(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

	_, err := f.svc.ListRoomingLists(context.Background(), 3)
	assert.True(t, failure.IsCode(err, http.StatusNotFound))

	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	f.roomingListRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]roomingListModel.RoomingList{{ID: 7, EventID: 3, Status: "Active"}}, nil)

	res, err := f.svc.ListRoomingLists(context.Background(), 3)
	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, int64(7), res[0].ID)
}
