package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"rooming/config"
	"rooming/infras/otel/mocks"
	"rooming/infras/postgres"
	postgresMocks "rooming/infras/postgres/mocks"
	dataMocks "rooming/internal/domains/data/mocks"
	"rooming/internal/domains/data/model"
	"rooming/internal/domains/data/model/dto"
	"rooming/internal/domains/data/service"
	"rooming/internal/domains/data/source"
	activityMocks "rooming/shared/activity/mocks"
	cacheMocks "rooming/shared/cache/mocks"
	"rooming/shared/failure"
)

const (
	bookingsJSON = `[
		{"bookingId": 1, "hotelId": 100, "eventId": 1, "guestName": "Ada", "checkInDate": "2025-09-01", "checkOutDate": "2025-09-03"},
		{"bookingId": 2, "hotelId": 100, "eventId": 2, "guestName": "Linus", "checkInDate": "2025-09-02", "checkOutDate": "2025-09-05"}
	]`
	roomingListsJSON = `[
		{"roomingListId": 1, "eventId": 1, "eventName": "Rolling Loud", "hotelId": 100, "rfpName": "ACL-2025", "cutOffDate": "2025-08-20", "status": "Active", "agreementType": "artist"}
	]`
	linksJSON = `[{"roomingListId": 1, "bookingId": 1}]`
)

type fixture struct {
	repo       *dataMocks.MockData
	loader     *dataMocks.MockLoader
	transactor *postgresMocks.MockTransactor
	cache      *cacheMocks.MockRedisCache
	publisher  *activityMocks.MockPublisher
	svc        service.Data
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		repo:       dataMocks.NewMockData(ctrl),
		loader:     dataMocks.NewMockLoader(ctrl),
		transactor: postgresMocks.NewMockTransactor(ctrl),
		cache:      cacheMocks.NewMockRedisCache(ctrl),
		publisher:  activityMocks.NewMockPublisher(ctrl),
	}

	f.svc = service.New(f.repo, f.loader, f.transactor, &config.Config{}, f.cache, f.publisher, mocks.NewOtel())

	return f
}

func (f fixture) expectTx() {
	f.transactor.EXPECT().WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn postgres.TxFunc) error {
			return fn(ctx, nil)
		})
}

func (f fixture) expectDocuments(documents map[string]string) {
	f.loader.EXPECT().Read(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, name string) ([]byte, error) {
			raw, ok := documents[name]
			if !ok {
				return nil, source.ErrNotFound
			}

			return []byte(raw), nil
		}).AnyTimes()
}

func defaultDocuments() map[string]string {
	return map[string]string{
		dto.FileBookings:     bookingsJSON,
		dto.FileRoomingLists: roomingListsJSON,
		dto.FileLinks:        linksJSON,
	}
}

func TestDataService_InsertSampleData(t *testing.T) {
	tests := []struct {
		name      string
		documents map[string]string
		setupMock func(f fixture)
		check     func(t *testing.T, res dto.LoadResponse)
		wantCode  int
		wantErr   bool
	}{
		{
			name:      "loads and derives events",
			documents: defaultDocuments(),
			setupMock: func(f fixture) {
				f.expectTx()
				f.repo.EXPECT().ClearTx(gomock.Any(), gomock.Any()).Return(nil)
				f.repo.EXPECT().InsertDatasetTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, dataset model.Dataset) error {
						assert.Len(t, dataset.Events, 2)
						assert.Equal(t, "Rolling Loud", dataset.Events[0].EventName)
						assert.Equal(t, "Event 2", dataset.Events[1].EventName)

						return nil
					})
				f.repo.EXPECT().SyncSequencesTx(gomock.Any(), gomock.Any()).Return(nil)
				f.loader.EXPECT().Location().Return("file://data")
				f.cache.EXPECT().Clear(gomock.Any(), "dataset:*").Return(nil)
				f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any())
			},
			check: func(t *testing.T, res dto.LoadResponse) {
				assert.Equal(t, model.Counts{Events: 2, Bookings: 2, RoomingLists: 1, RoomingListBookings: 1}, res.Summary)
				assert.Equal(t, "file://data", res.Source)
				assert.NotContains(t, res.Files, "events")
			},
		},
		{
			name: "explicit events document wins",
			documents: map[string]string{
				dto.FileEvents:       `[{"eventId": 1, "eventName": "Ultra"}, {"eventId": 2, "eventName": "Coachella"}]`,
				dto.FileBookings:     bookingsJSON,
				dto.FileRoomingLists: roomingListsJSON,
				dto.FileLinks:        linksJSON,
			},
			setupMock: func(f fixture) {
				f.expectTx()
				f.repo.EXPECT().ClearTx(gomock.Any(), gomock.Any()).Return(nil)
				f.repo.EXPECT().InsertDatasetTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, dataset model.Dataset) error {
						assert.Equal(t, "Ultra", dataset.Events[0].EventName)

						return nil
					})
				f.repo.EXPECT().SyncSequencesTx(gomock.Any(), gomock.Any()).Return(nil)
				f.loader.EXPECT().Location().Return("s3://bucket/data")
				f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil)
				f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any())
			},
			check: func(t *testing.T, res dto.LoadResponse) {
				assert.Equal(t, dto.FileEvents, res.Files["events"])
			},
		},
		{
			name:      "missing required document",
			documents: map[string]string{dto.FileBookings: bookingsJSON},
			setupMock: func(fixture) {},
			wantCode:  http.StatusBadRequest,
			wantErr:   true,
		},
		{
			name: "malformed document",
			documents: map[string]string{
				dto.FileBookings:     `{"bookingId":`,
				dto.FileRoomingLists: roomingListsJSON,
				dto.FileLinks:        linksJSON,
			},
			setupMock: func(fixture) {},
			wantCode:  http.StatusBadRequest,
			wantErr:   true,
		},
		{
			name: "invalid rows are rejected before touching the database",
			documents: map[string]string{
				dto.FileBookings:     `[{"bookingId": 1, "hotelId": 1, "eventId": 1, "guestName": "Ada", "checkInDate": "2025-09-03", "checkOutDate": "2025-09-01"}]`,
				dto.FileRoomingLists: `[{"roomingListId": 1, "eventId": 1, "hotelId": 1, "rfpName": "X", "cutOffDate": "2025-08-01", "agreementType": "vip"}]`,
				dto.FileLinks:        linksJSON,
			},
			setupMock: func(fixture) {},
			wantCode:  http.StatusBadRequest,
			wantErr:   true,
		},
		{
			name:      "dangling link rolls back",
			documents: defaultDocuments(),
			setupMock: func(f fixture) {
				f.expectTx()
				f.repo.EXPECT().ClearTx(gomock.Any(), gomock.Any()).Return(nil)
				f.repo.EXPECT().InsertDatasetTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(fmt.Errorf("insert: %w", &pq.Error{Code: "23503"}))
			},
			wantCode: http.StatusBadRequest,
			wantErr:  true,
		},
		{
			name:      "duplicate rows roll back",
			documents: defaultDocuments(),
			setupMock: func(f fixture) {
				f.expectTx()
				f.repo.EXPECT().ClearTx(gomock.Any(), gomock.Any()).Return(nil)
				f.repo.EXPECT().InsertDatasetTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(fmt.Errorf("insert: %w", &pq.Error{Code: "23505"}))
			},
			wantCode: http.StatusBadRequest,
			wantErr:  true,
		},
		{
			name:      "database failure",
			documents: defaultDocuments(),
			setupMock: func(f fixture) {
				f.expectTx()
				f.repo.EXPECT().ClearTx(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
			},
			wantCode: http.StatusInternalServerError,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.expectDocuments(tt.documents)
			tt.setupMock(f)

			res, err := f.svc.InsertSampleData(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)

			if tt.check != nil {
				tt.check(t, res)
			}
		})
	}
}

func TestDataService_ClearAllData(t *testing.T) {
	t.Run("clears and invalidates", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx()
		f.repo.EXPECT().ClearTx(gomock.Any(), gomock.Any()).Return(nil)
		f.cache.EXPECT().Clear(gomock.Any(), "dataset:*").Return(nil)
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any())

		assert.NoError(t, f.svc.ClearAllData(context.Background()))
	})

	t.Run("failure keeps caches", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx()
		f.repo.EXPECT().ClearTx(gomock.Any(), gomock.Any()).Return(errors.New("locked"))

		assert.Error(t, f.svc.ClearAllData(context.Background()))
	})
}

func TestDataService_Status(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().Counts(gomock.Any()).Return(model.Counts{Events: 3, Bookings: 10}, nil)

	res, err := f.svc.Status(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 3, res.Events)

	f.repo.EXPECT().Counts(gomock.Any()).Return(model.Counts{}, errors.New("down"))

	_, err = f.svc.Status(context.Background())
	assert.Error(t, err)
}
