package roominglist

import (
	"net/http"
	"rooming/infras/otel"
	bookingDto "rooming/internal/domains/booking/model/dto"
	"rooming/internal/domains/roominglist/model/dto"
	"rooming/internal/domains/roominglist/service"
	"rooming/shared"
	"rooming/shared/constant"
	"rooming/shared/validator"
	"rooming/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.RoomingList
	otel    otel.Otel
}

func New(service service.RoomingList, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooming-lists", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRoomingLists)
		routerGroup.Post("/", handler.CreateRoomingList)
		routerGroup.Get("/{id}", handler.GetRoomingListByID)
		routerGroup.Put("/{id}", handler.UpdateRoomingList)
		routerGroup.Delete("/{id}", handler.DeleteRoomingList)
		routerGroup.Get("/{id}/bookings", handler.GetRoomingListBookings)
	})
}

// GetRoomingLists lists rooming lists with their bookings embedded.
// @Summary List rooming lists
// @Tags RoomingList
// @Produce json
// @Param search query string false "Matches event name or RFP name"
// @Param status query string false "Active, Closed or Cancelled"
// @Param sortBy query string false "cutOffDate"
// @Param sortOrder query string false "ASC or DESC"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Success[[]dto.RoomingListWithBookingsResponse]
// @Failure 400 {object} response.Error
// @Router /api/rooming-lists [get]
// @Security BearerAuth
func (handler *Handler) GetRoomingLists(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomingLists")
	defer scope.End()

	query := r.URL.Query()

	req := dto.ListRoomingListsRequest{
		Search: query.Get(constant.RequestParamSearch),
		Status: query.Get(constant.RequestParamStatus),
	}
	req.FromRequest(r, false)

	roomingLists, err := handler.service.List(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooming lists")

		response.WithError(w, err)

		return
	}

	response.WithList(w, http.StatusOK, roomingLists, len(roomingLists))
}

// GetRoomingListByID
// @Summary Get a rooming list
// @Tags RoomingList
// @Produce json
// @Param id path int true "Rooming list ID"
// @Success 200 {object} response.Success[dto.RoomingListWithBookingsResponse]
// @Failure 404 {object} response.Error
// @Router /api/rooming-lists/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetRoomingListByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomingListByID")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID), "rooming list id")
	if err != nil {
		response.WithError(w, err)

		return
	}

	roomingList, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("rooming_list_id", id).Msg("failed to get rooming list")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, roomingList)
}

// CreateRoomingList creates the list and links the given bookings in one transaction.
// @Summary Create a rooming list
// @Tags RoomingList
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomingListRequest true "Rooming list"
// @Success 201 {object} response.Success[dto.RoomingListWithBookingsResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /api/rooming-lists [post]
// @Security BearerAuth
func (handler *Handler) CreateRoomingList(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoomingList")
	defer scope.End()

	req := dto.CreateRoomingListRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	roomingList, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create rooming list")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)
	scope.AddEvent("Rooming list created by user " + user)

	response.WithMessageAndData(w, http.StatusCreated, "Rooming list created successfully", roomingList)
}

// UpdateRoomingList
// @Summary Update a rooming list
// @Tags RoomingList
// @Accept json
// @Produce json
// @Param id path int true "Rooming list ID"
// @Param request body dto.UpdateRoomingListRequest true "Fields to change"
// @Success 200 {object} response.Success[dto.RoomingListWithBookingsResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/rooming-lists/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateRoomingList(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoomingList")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID), "rooming list id")
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.UpdateRoomingListRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	roomingList, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("rooming_list_id", id).Msg("failed to update rooming list")

		response.WithError(w, err)

		return
	}

	response.WithMessageAndData(w, http.StatusOK, "Rooming list updated successfully", roomingList)
}

// DeleteRoomingList
// @Summary Delete a rooming list
// @Tags RoomingList
// @Produce json
// @Param id path int true "Rooming list ID"
// @Success 200 {object} response.Success[dto.RoomingListResponse]
// @Failure 404 {object} response.Error
// @Router /api/rooming-lists/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRoomingList(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoomingList")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID), "rooming list id")
	if err != nil {
		response.WithError(w, err)

		return
	}

	roomingList, err := handler.service.Delete(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("rooming_list_id", id).Msg("failed to delete rooming list")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)
	scope.AddEvent("Rooming list deleted by user " + user)

	response.WithMessageAndData(w, http.StatusOK, "Rooming list deleted successfully", roomingList)
}

// GetRoomingListBookings
// @Summary List the bookings of a rooming list
// @Tags RoomingList
// @Produce json
// @Param id path int true "Rooming list ID"
// @Success 200 {object} response.Success[[]bookingDto.BookingResponse]
// @Failure 404 {object} response.Error
// @Router /api/rooming-lists/{id}/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetRoomingListBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomingListBookings")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID), "rooming list id")
	if err != nil {
		response.WithError(w, err)

		return
	}

	var bookings []bookingDto.BookingResponse

	bookings, err = handler.service.ListBookings(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("rooming_list_id", id).Msg("failed to get rooming list bookings")

		response.WithError(w, err)

		return
	}

	response.WithList(w, http.StatusOK, bookings, len(bookings))
}
