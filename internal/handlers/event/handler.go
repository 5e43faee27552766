package event

import (
	"net/http"
	"rooming/infras/otel"
	"rooming/internal/domains/event/model/dto"
	"rooming/internal/domains/event/service"
	roomingListDto "rooming/internal/domains/roominglist/model/dto"
	"rooming/shared"
	"rooming/shared/constant"
	"rooming/shared/validator"
	"rooming/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Event
	otel    otel.Otel
}

func New(service service.Event, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/events", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetEvents)
		routerGroup.Post("/", handler.CreateEvent)
		routerGroup.Get("/{id}", handler.GetEventByID)
		routerGroup.Put("/{id}", handler.UpdateEvent)
		routerGroup.Delete("/{id}", handler.DeleteEvent)
		routerGroup.Get("/{id}/rooming-lists", handler.GetEventRoomingLists)
	})
}

// GetEvents lists every event with its rooming list and booking counts.
// @Summary List events
// @Tags Event
// @Produce json
// @Success 200 {object} response.Success[[]dto.EventSummaryResponse]
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/events [get]
// @Security BearerAuth
func (handler *Handler) GetEvents(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEvents")
	defer scope.End()

	events, err := handler.service.List(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get events")

		response.WithError(w, err)

		return
	}

	response.WithList(w, http.StatusOK, events, len(events))
}

// GetEventByID
// @Summary Get an event
// @Tags Event
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} response.Success[dto.EventResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/events/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetEventByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEventByID")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID), "event id")
	if err != nil {
		response.WithError(w, err)

		return
	}

	event, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("event_id", id).Msg("failed to get event")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, event)
}

// CreateEvent
// @Summary Create an event
// @Tags Event
// @Accept json
// @Produce json
// @Param request body dto.CreateEventRequest true "Event"
// @Success 201 {object} response.Success[dto.EventResponse]
// @Failure 400 {object} response.Error
// @Router /api/events [post]
// @Security BearerAuth
func (handler *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateEvent")
	defer scope.End()

	req := dto.CreateEventRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	event, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create event")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Event created")

	response.WithMessageAndData(w, http.StatusCreated, "Event created", event)
}

// UpdateEvent
// @Summary Update an event
// @Tags Event
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param request body dto.UpdateEventRequest true "Fields to change"
// @Success 200 {object} response.Success[dto.EventResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/events/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateEvent")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID), "event id")
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.UpdateEventRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	event, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("event_id", id).Msg("failed to update event")

		response.WithError(w, err)

		return
	}

	response.WithMessageAndData(w, http.StatusOK, "Event updated", event)
}

// DeleteEvent refuses events that still own rooming lists.
// @Summary Delete an event
// @Tags Event
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} response.Success[dto.EventResponse]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /api/events/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteEvent")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID), "event id")
	if err != nil {
		response.WithError(w, err)

		return
	}

	event, err := handler.service.Delete(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("event_id", id).Msg("failed to delete event")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)
	scope.AddEvent("Event deleted by user " + user)

	response.WithMessageAndData(w, http.StatusOK, "Event deleted", event)
}

// GetEventRoomingLists
// @Summary List the rooming lists of an event
// @Tags Event
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} response.Success[[]roomingListDto.RoomingListResponse]
// @Failure 404 {object} response.Error
// @Router /api/events/{id}/rooming-lists [get]
// @Security BearerAuth
func (handler *Handler) GetEventRoomingLists(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEventRoomingLists")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID), "event id")
	if err != nil {
		response.WithError(w, err)

		return
	}

	var roomingLists []roomingListDto.RoomingListResponse

	roomingLists, err = handler.service.ListRoomingLists(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("event_id", id).Msg("failed to get event rooming lists")

		response.WithError(w, err)

		return
	}

	response.WithList(w, http.StatusOK, roomingLists, len(roomingLists))
}
