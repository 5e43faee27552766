package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"fmt"
	"rooming/config"
	"rooming/infras/otel"
	"rooming/infras/postgres"
	"rooming/internal/domains/booking/model"
	"rooming/internal/domains/booking/model/dto"
	"rooming/internal/domains/booking/repository"
	eventModel "rooming/internal/domains/event/model"
	eventRepo "rooming/internal/domains/event/repository"
	roomingListModel "rooming/internal/domains/roominglist/model"
	roomingListDto "rooming/internal/domains/roominglist/model/dto"
	roomingListRepo "rooming/internal/domains/roominglist/repository"
	linkModel "rooming/internal/domains/roominglistbooking/model"
	linkDto "rooming/internal/domains/roominglistbooking/model/dto"
	linkRepo "rooming/internal/domains/roominglistbooking/repository"
	"rooming/shared"
	"rooming/shared/activity"
	"rooming/shared/cache"
	"rooming/shared/constant"
	gDto "rooming/shared/dto"
	"rooming/shared/failure"
	"slices"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	errBookingNotFound     = "Booking not found"
	errEventNotFound       = "Event not found"
	errRoomingListNotFound = "Rooming list not found"
	errAlreadyLinked       = "Booking is already linked to this rooming list"
	errLinkNotFound        = "Booking is not linked to this rooming list"
)

// statusExistsQuery matches bookings linked to at least one rooming list in the given status.
const statusExistsQuery = `EXISTS (
	SELECT 1 FROM rooming_list_bookings
	JOIN rooming_lists ON rooming_lists.rooming_list_id = rooming_list_bookings.rooming_list_id
	WHERE rooming_list_bookings.booking_id = bookings.booking_id AND rooming_lists.status = :status)`

const linkedRoomingListsQuery = `EXISTS (
	SELECT 1 FROM rooming_list_bookings
	WHERE rooming_list_bookings.rooming_list_id = rooming_lists.rooming_list_id
	AND rooming_list_bookings.booking_id = :booking_id)`

var (
	cachePrefixBookings = shared.BuildCacheKey(constant.CacheKeyDataset, "bookings")

	sortColumns = map[string]string{
		"checkInDate": model.TableName + "." + model.FieldCheckInDate,
		"guestName":   model.TableName + "." + model.FieldGuestName,
	}
	defaultSort = model.TableName + "." + model.FieldID
)

type Booking interface {
	List(ctx context.Context, req dto.ListBookingsRequest) ([]dto.BookingResponse, error)
	Get(ctx context.Context, id int64) (dto.BookingResponse, error)
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id int64) (dto.BookingResponse, error)
	Delete(ctx context.Context, id int64) (dto.BookingResponse, error)
	ListRoomingLists(ctx context.Context, id int64) ([]roomingListDto.RoomingListResponse, error)
	Link(ctx context.Context, bookingID, roomingListID int64) (linkDto.LinkResponse, error)
	Unlink(ctx context.Context, bookingID, roomingListID int64) error
}

type serviceImpl struct {
	repo            repository.Booking
	eventRepo       eventRepo.Event
	roomingListRepo roomingListRepo.RoomingList
	linkRepo        linkRepo.RoomingListBooking
	transactor      postgres.Transactor
	cfg             *config.Config
	cache           cache.RedisCache
	publisher       activity.Publisher
	otel            otel.Otel
}

func New(
	repo repository.Booking,
	eventRepo eventRepo.Event,
	roomingListRepo roomingListRepo.RoomingList,
	linkRepo linkRepo.RoomingListBooking,
	transactor postgres.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	publisher activity.Publisher,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:            repo,
		eventRepo:       eventRepo,
		roomingListRepo: roomingListRepo,
		linkRepo:        linkRepo,
		transactor:      transactor,
		cfg:             cfg,
		cache:           cache,
		publisher:       publisher,
		otel:            otel,
	}
}

func (s *serviceImpl) List(ctx context.Context, req dto.ListBookingsRequest) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.List")
	defer scope.End()
	defer scope.TraceIfError(&err)

	filter, err := buildListFilter(req)
	if err != nil {
		return nil, err
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cachePrefixBookings, req)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	params := req.QueryParams.Sanitize(sortColumns, defaultSort)

	bookings, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to list bookings")

		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	res = dto.FromModels(bookings)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Msg("failed to save bookings to cache")
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	booking, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	booking, err := req.ToModel()
	if err != nil {
		return res, err
	}

	if err = s.ensureEvent(ctx, booking.EventID); err != nil {
		return res, err
	}

	created, err := s.repo.InsertReturning(ctx, booking)
	if err != nil {
		if shared.IsForeignKeyViolation(err) {
			return res, failure.NotFound(errEventNotFound)
		}

		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyDataset)

	return s.Get(ctx, created.ID)
}

// Update validates the stay against the merged dates, so a single supplied date cannot invert it.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id int64) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Update")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if req.IsEmpty() {
		return res, failure.EmptyUpdate
	}

	current, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	fields, err := req.ToFields(current)
	if err != nil {
		return res, err
	}

	if req.EventID != nil && *req.EventID != current.EventID {
		if err = s.ensureEvent(ctx, *req.EventID); err != nil {
			return res, err
		}
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		if shared.IsForeignKeyViolation(err) {
			return res, failure.NotFound(errEventNotFound)
		}

		log.Error().Err(err).Msg("failed to update booking")

		return res, fmt.Errorf("failed to update booking: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyDataset)

	return s.Get(ctx, id)
}

// Delete drops the booking's rooming list links and the booking in one transaction.
func (s *serviceImpl) Delete(ctx context.Context, id int64) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Delete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	booking, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	err = s.transactor.WithTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		if _, err := s.linkRepo.DeleteTx(ctx, tx, shared.FilterByID(id, linkModel.FieldBookingID, linkModel.TableName)); err != nil {
			return fmt.Errorf("failed to unlink booking: %w", err)
		}

		affected, err := s.repo.DeleteTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			return fmt.Errorf("failed to delete booking: %w", err)
		}

		if affected == 0 {
			return failure.NotFound(errBookingNotFound)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Int64("bookingId", id).Msg("failed to delete booking")

		return res, err
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyDataset)
	s.publisher.Publish(ctx, activity.Activity{Type: activity.BookingDeleted, EntityID: id})

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) ListRoomingLists(ctx context.Context, id int64) (res []roomingListDto.RoomingListResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ListRoomingLists")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if err = s.ensureBooking(ctx, id); err != nil {
		return nil, err
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Value:    linkedRoomingListsQuery,
				Operator: gDto.FilterPlainQuery,
				Args:     map[string]any{linkModel.FieldBookingID: id},
			},
		},
	}

	params := gDto.QueryParams{
		SortBy:  roomingListModel.TableName + "." + roomingListModel.FieldCutOffDate,
		SortDir: gDto.SortDirAsc,
	}

	roomingLists, err := s.roomingListRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to list rooming lists of booking")

		return nil, fmt.Errorf("failed to list rooming lists of booking: %w", err)
	}

	return roomingListDto.FromModels(roomingLists), nil
}

// Link associates a booking with a rooming list. Duplicate pairs are a conflict,
// whether caught by the pre-check or by the unique constraint under a race.
func (s *serviceImpl) Link(ctx context.Context, bookingID, roomingListID int64) (res linkDto.LinkResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Link")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if err = s.ensureBooking(ctx, bookingID); err != nil {
		return res, err
	}

	exist, err := s.roomingListRepo.Exist(ctx, shared.FilterByID(roomingListID, roomingListModel.FieldID, roomingListModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if rooming list exists")

		return res, fmt.Errorf("failed to check if rooming list exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound(errRoomingListNotFound)
	}

	pair := linkFilter(bookingID, roomingListID)

	linked, err := s.linkRepo.Exist(ctx, pair)
	if err != nil {
		log.Error().Err(err).Msg("failed to check existing link")

		return res, fmt.Errorf("failed to check existing link: %w", err)
	}

	if linked {
		return res, failure.Conflict(errAlreadyLinked)
	}

	link, err := s.linkRepo.InsertReturning(ctx, linkModel.RoomingListBooking{RoomingListID: roomingListID, BookingID: bookingID})
	if err != nil {
		if shared.IsUniqueViolation(err) {
			return res, failure.Conflict(errAlreadyLinked)
		}

		log.Error().Err(err).Msg("failed to link booking")

		return res, fmt.Errorf("failed to link booking: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyDataset)
	s.publisher.Publish(ctx, activity.Activity{
		Type:       activity.BookingLinked,
		EntityID:   bookingID,
		Attributes: map[string]any{"roomingListId": roomingListID},
	})

	res.FromModel(link)

	return res, nil
}

func (s *serviceImpl) Unlink(ctx context.Context, bookingID, roomingListID int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Unlink")
	defer scope.End()
	defer scope.TraceIfError(&err)

	affected, err := s.linkRepo.Delete(ctx, linkFilter(bookingID, roomingListID))
	if err != nil {
		log.Error().Err(err).Msg("failed to unlink booking")

		return fmt.Errorf("failed to unlink booking: %w", err)
	}

	if affected == 0 {
		return failure.NotFound(errLinkNotFound)
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyDataset)
	s.publisher.Publish(ctx, activity.Activity{
		Type:       activity.BookingUnlinked,
		EntityID:   bookingID,
		Attributes: map[string]any{"roomingListId": roomingListID},
	})

	return nil
}

func (s *serviceImpl) get(ctx context.Context, id int64) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return booking, failure.NotFound(errBookingNotFound)
	}

	return booking, nil
}

func (s *serviceImpl) ensureBooking(ctx context.Context, id int64) error {
	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		return failure.NotFound(errBookingNotFound)
	}

	return nil
}

func (s *serviceImpl) ensureEvent(ctx context.Context, id int64) error {
	exist, err := s.eventRepo.Exist(ctx, shared.FilterByID(id, eventModel.FieldID, eventModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if event exists")

		return fmt.Errorf("failed to check if event exists: %w", err)
	}

	if !exist {
		return failure.NotFound(errEventNotFound)
	}

	return nil
}

func linkFilter(bookingID, roomingListID int64) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: linkModel.FieldBookingID, Value: bookingID, Operator: gDto.FilterOperatorEq, Table: linkModel.TableName},
			gDto.Filter{Field: linkModel.FieldRoomingListID, Value: roomingListID, Operator: gDto.FilterOperatorEq, Table: linkModel.TableName},
		},
	}
}

func buildListFilter(req dto.ListBookingsRequest) (gDto.FilterGroup, error) {
	filter := gDto.FilterGroup{}

	if search := strings.TrimSpace(req.Search); search != "" {
		filter.Filters = append(filter.Filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{ArgName: "search_guest_name", Field: model.FieldGuestName, Value: search, Operator: gDto.FilterOperatorLike, Table: model.TableName},
				gDto.Filter{ArgName: "search_guest_email", Field: model.FieldGuestEmail, Value: search, Operator: gDto.FilterOperatorLike, Table: model.TableName},
				gDto.Filter{ArgName: "search_event_name", Field: model.FieldEventName, Value: search, Operator: gDto.FilterOperatorLike, Table: model.EventTableName},
			},
		})
	}

	if req.Status != "" {
		if !slices.Contains(constant.RoomingStatuses, req.Status) {
			return filter, failure.BadRequestFromString("status must be one of: " + strings.Join(constant.RoomingStatuses, ", "))
		}

		filter.Filters = append(filter.Filters, gDto.Filter{
			Value:    statusExistsQuery,
			Operator: gDto.FilterPlainQuery,
			Args:     map[string]any{roomingListModel.FieldStatus: req.Status},
		})
	}

	if req.DateFrom != "" {
		dateFrom, err := shared.ParseDate(req.DateFrom)
		if err != nil {
			return filter, failure.BadRequest(fmt.Errorf("dateFrom: %w", err))
		}

		filter.Filters = append(filter.Filters, gDto.Filter{
			ArgName: "date_from", Field: model.FieldCheckInDate, Value: dateFrom, Operator: gDto.FilterOperatorGreaterEq, Table: model.TableName,
		})
	}

	if req.DateTo != "" {
		dateTo, err := shared.ParseDate(req.DateTo)
		if err != nil {
			return filter, failure.BadRequest(fmt.Errorf("dateTo: %w", err))
		}

		filter.Filters = append(filter.Filters, gDto.Filter{
			ArgName: "date_to", Field: model.FieldCheckOutDate, Value: dateTo, Operator: gDto.FilterOperatorLessEq, Table: model.TableName,
		})
	}

	return filter, nil
}
