package booking

import (
	"net/http"
	"rooming/infras/otel"
	"rooming/internal/domains/booking/model/dto"
	"rooming/internal/domains/booking/service"
	roomingListDto "rooming/internal/domains/roominglist/model/dto"
	linkDto "rooming/internal/domains/roominglistbooking/model/dto"
	"rooming/shared"
	"rooming/shared/constant"
	"rooming/shared/validator"
	"rooming/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Put("/{id}", handler.UpdateBooking)
		routerGroup.Delete("/{id}", handler.DeleteBooking)
		routerGroup.Get("/{id}/rooming-lists", handler.GetBookingRoomingLists)
		routerGroup.Post("/{id}/rooming-lists/{roomingListId}", handler.LinkRoomingList)
		routerGroup.Delete("/{id}/rooming-lists/{roomingListId}", handler.UnlinkRoomingList)
	})
}

// GetBookings lists bookings. Pagination applies only when page or limit is given.
// @Summary List bookings
// @Tags Booking
// @Produce json
// @Param search query string false "Matches guest name, guest email or event name"
// @Param status query string false "Only bookings linked to a rooming list with this status"
// @Param dateFrom query string false "Earliest check-in date (YYYY-MM-DD)"
// @Param dateTo query string false "Latest check-out date (YYYY-MM-DD)"
// @Param sortBy query string false "checkInDate or guestName"
// @Param sortOrder query string false "ASC or DESC"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Success[[]dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Router /api/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	query := r.URL.Query()

	req := dto.ListBookingsRequest{
		Search:   query.Get(constant.RequestParamSearch),
		Status:   query.Get(constant.RequestParamStatus),
		DateFrom: query.Get(constant.RequestParamDateFrom),
		DateTo:   query.Get(constant.RequestParamDateTo),
	}
	req.FromRequest(r, false)

	bookings, err := handler.service.List(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	response.WithList(w, http.StatusOK, bookings, len(bookings))
}

// GetBookingByID
// @Summary Get a booking
// @Tags Booking
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} response.Success[dto.BookingResponse]
// @Failure 404 {object} response.Error
// @Router /api/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID), "booking id")
	if err != nil {
		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("booking_id", id).Msg("failed to get booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// CreateBooking
// @Summary Create a booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Booking"
// @Success 201 {object} response.Success[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)
	scope.AddEvent("Booking created by user " + user)

	response.WithMessageAndData(w, http.StatusCreated, "Created", booking)
}

// UpdateBooking
// @Summary Update a booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param request body dto.UpdateBookingRequest true "Fields to change"
// @Success 200 {object} response.Success[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/bookings/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID), "booking id")
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.UpdateBookingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("booking_id", id).Msg("failed to update booking")

		response.WithError(w, err)

		return
	}

	response.WithMessageAndData(w, http.StatusOK, "Updated", booking)
}

// DeleteBooking removes the booking together with its rooming list links.
// @Summary Delete a booking
// @Tags Booking
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} response.Success[dto.BookingResponse]
// @Failure 404 {object} response.Error
// @Router /api/bookings/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID), "booking id")
	if err != nil {
		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Delete(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("booking_id", id).Msg("failed to delete booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)
	scope.AddEvent("Booking deleted by user " + user)

	response.WithMessageAndData(w, http.StatusOK, "Deleted", booking)
}

// GetBookingRoomingLists
// @Summary List the rooming lists a booking belongs to
// @Tags Booking
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} response.Success[[]roomingListDto.RoomingListResponse]
// @Failure 404 {object} response.Error
// @Router /api/bookings/{id}/rooming-lists [get]
// @Security BearerAuth
func (handler *Handler) GetBookingRoomingLists(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingRoomingLists")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID), "booking id")
	if err != nil {
		response.WithError(w, err)

		return
	}

	var roomingLists []roomingListDto.RoomingListResponse

	roomingLists, err = handler.service.ListRoomingLists(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("booking_id", id).Msg("failed to get booking rooming lists")

		response.WithError(w, err)

		return
	}

	response.WithList(w, http.StatusOK, roomingLists, len(roomingLists))
}

// LinkRoomingList
// @Summary Add a booking to a rooming list
// @Tags Booking
// @Produce json
// @Param id path int true "Booking ID"
// @Param roomingListId path int true "Rooming list ID"
// @Success 200 {object} response.Success[linkDto.LinkResponse]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /api/bookings/{id}/rooming-lists/{roomingListId} [post]
// @Security BearerAuth
func (handler *Handler) LinkRoomingList(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".LinkRoomingList")
	defer scope.End()

	bookingID, roomingListID, err := linkParams(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	var link linkDto.LinkResponse

	link, err = handler.service.Link(ctx, bookingID, roomingListID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("booking_id", bookingID).Int64("rooming_list_id", roomingListID).Msg("failed to link booking")

		response.WithError(w, err)

		return
	}

	response.WithMessageAndData(w, http.StatusOK, "Linked successfully", link)
}

// UnlinkRoomingList
// @Summary Remove a booking from a rooming list
// @Tags Booking
// @Produce json
// @Param id path int true "Booking ID"
// @Param roomingListId path int true "Rooming list ID"
// @Success 200 {object} response.Success[any]
// @Failure 404 {object} response.Error
// @Router /api/bookings/{id}/rooming-lists/{roomingListId} [delete]
// @Security BearerAuth
func (handler *Handler) UnlinkRoomingList(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UnlinkRoomingList")
	defer scope.End()

	bookingID, roomingListID, err := linkParams(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err := handler.service.Unlink(ctx, bookingID, roomingListID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("booking_id", bookingID).Int64("rooming_list_id", roomingListID).Msg("failed to unlink booking")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Unlinked successfully")
}

func linkParams(r *http.Request) (bookingID, roomingListID int64, err error) {
	bookingID, err = shared.ParseID(chi.URLParam(r, constant.RequestParamID), "booking id")
	if err != nil {
		return 0, 0, err
	}

	roomingListID, err = shared.ParseID(chi.URLParam(r, constant.RequestParamRoomingListID), "rooming list id")
	if err != nil {
		return 0, 0, err
	}

	return bookingID, roomingListID, nil
}
