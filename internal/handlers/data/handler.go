package data

import (
	"net/http"
	"rooming/infras/otel"
	"rooming/internal/domains/data/model"
	"rooming/internal/domains/data/model/dto"
	"rooming/internal/domains/data/service"
	"rooming/shared/constant"
	"rooming/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Data
	otel    otel.Otel
}

func New(service service.Data, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/data", func(routerGroup chi.Router) {
		routerGroup.Post("/insert", handler.InsertSampleData)
		routerGroup.Post("/insert-sample-data", handler.InsertSampleData)
		routerGroup.Delete("/clear", handler.ClearAllData)
		routerGroup.Delete("/clear-all", handler.ClearAllData)
		routerGroup.Get("/status", handler.GetStatus)
	})
}

// InsertSampleData replaces all events, bookings and rooming lists with the sample documents.
// @Summary Load sample data
// @Tags Data
// @Produce json
// @Success 200 {object} response.Success[dto.LoadResponse]
// @Failure 400 {object} response.Error
// @Router /api/data/insert [post]
// @Router /api/data/insert-sample-data [post]
// @Security BearerAuth
func (handler *Handler) InsertSampleData(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".InsertSampleData")
	defer scope.End()

	var (
		res dto.LoadResponse
		err error
	)

	res, err = handler.service.InsertSampleData(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to insert sample data")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)
	scope.AddEvent("Sample data loaded by user " + user)

	response.WithMessageAndData(w, http.StatusOK, "Sample data inserted successfully from JSON files", res)
}

// ClearAllData
// @Summary Delete all events, bookings and rooming lists
// @Tags Data
// @Produce json
// @Success 200 {object} response.Success[any]
// @Router /api/data/clear [delete]
// @Router /api/data/clear-all [delete]
// @Security BearerAuth
func (handler *Handler) ClearAllData(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ClearAllData")
	defer scope.End()

	if err := handler.service.ClearAllData(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to clear data")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)
	scope.AddEvent("Data cleared by user " + user)

	response.WithMessage(w, http.StatusOK, "All data cleared successfully")
}

// GetStatus
// @Summary Row counts of the business tables
// @Tags Data
// @Produce json
// @Success 200 {object} response.Success[model.Counts]
// @Router /api/data/status [get]
// @Security BearerAuth
func (handler *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStatus")
	defer scope.End()

	var (
		counts model.Counts
		err    error
	)

	counts, err = handler.service.Status(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get data status")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, counts)
}
