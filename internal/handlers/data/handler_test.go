package data_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	otelMocks "rooming/infras/otel/mocks"
	dataMocks "rooming/internal/domains/data/mocks"
	"rooming/internal/domains/data/model"
	"rooming/internal/domains/data/model/dto"
	"rooming/internal/handlers/data"
	"rooming/shared/failure"
)

func newRouter(t *testing.T) (*dataMocks.MockDataService, http.Handler) {
	ctrl := gomock.NewController(t)
	svc := dataMocks.NewMockDataService(ctrl)

	handler := data.New(svc, otelMocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func TestHandler_InsertSampleData(t *testing.T) {
	for _, target := range []string{"/data/insert", "/data/insert-sample-data"} {
		t.Run(target, func(t *testing.T) {
			svc, router := newRouter(t)
			svc.EXPECT().InsertSampleData(gomock.Any()).Return(dto.LoadResponse{
				Summary: model.Counts{Events: 3, Bookings: 5, RoomingLists: 3, RoomingListBookings: 5},
			}, nil)

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, target, nil))

			assert.Equal(t, http.StatusOK, recorder.Code)
			assert.Contains(t, recorder.Body.String(), `"roomingListBookings":5`)
		})
	}

	t.Run("missing document", func(t *testing.T) {
		svc, router := newRouter(t)
		svc.EXPECT().InsertSampleData(gomock.Any()).Return(dto.LoadResponse{}, failure.BadRequestFromString("bookings.json not found"))

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/data/insert", nil))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.JSONEq(t, `{"error":"bookings.json not found"}`, recorder.Body.String())
	})
}

func TestHandler_ClearAllData(t *testing.T) {
	for _, target := range []string{"/data/clear", "/data/clear-all"} {
		t.Run(target, func(t *testing.T) {
			svc, router := newRouter(t)
			svc.EXPECT().ClearAllData(gomock.Any()).Return(nil)

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, target, nil))

			assert.Equal(t, http.StatusOK, recorder.Code)
			assert.Contains(t, recorder.Body.String(), "All data cleared successfully")
		})
	}
}

func TestHandler_GetStatus(t *testing.T) {
	svc, router := newRouter(t)
	svc.EXPECT().Status(gomock.Any()).Return(model.Counts{}, errors.New("connection refused"))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/data/status", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, recorder.Body.String())
}
