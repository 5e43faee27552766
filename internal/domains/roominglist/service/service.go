package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=RoomingList=MockRoomingListService

import (
	"context"
	"fmt"
	"rooming/config"
	"rooming/infras/otel"
	"rooming/infras/postgres"
	bookingModel "rooming/internal/domains/booking/model"
	bookingDto "rooming/internal/domains/booking/model/dto"
	bookingRepo "rooming/internal/domains/booking/repository"
	eventModel "rooming/internal/domains/event/model"
	eventRepo "rooming/internal/domains/event/repository"
	"rooming/internal/domains/roominglist/model"
	"rooming/internal/domains/roominglist/model/dto"
	"rooming/internal/domains/roominglist/repository"
	linkModel "rooming/internal/domains/roominglistbooking/model"
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
	errRoomingListNotFound = "Rooming list not found"
	errEventNotFound       = "Event not found"
	errBookingsNotFound    = "One or more bookings not found"
	errDuplicateBookingIDs = "bookingIds contains duplicate booking ids"
)

const linkedBookingsQuery = `EXISTS (
	SELECT 1 FROM rooming_list_bookings
	WHERE rooming_list_bookings.booking_id = bookings.booking_id
	AND rooming_list_bookings.rooming_list_id = :rooming_list_id)`

var (
	cachePrefixRoomingLists = shared.BuildCacheKey(constant.CacheKeyDataset, "rooming-lists")

	sortColumns = map[string]string{
		"cutOffDate": model.TableName + "." + model.FieldCutOffDate,
	}
	defaultSort = model.TableName + "." + model.FieldID
)

type RoomingList interface {
	List(ctx context.Context, req dto.ListRoomingListsRequest) ([]dto.RoomingListWithBookingsResponse, error)
	Get(ctx context.Context, id int64) (dto.RoomingListWithBookingsResponse, error)
	Create(ctx context.Context, req dto.CreateRoomingListRequest) (dto.RoomingListWithBookingsResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomingListRequest, id int64) (dto.RoomingListWithBookingsResponse, error)
	Delete(ctx context.Context, id int64) (dto.RoomingListResponse, error)
	ListBookings(ctx context.Context, id int64) ([]bookingDto.BookingResponse, error)
}

type serviceImpl struct {
	repo        repository.RoomingList
	eventRepo   eventRepo.Event
	bookingRepo bookingRepo.Booking
	linkRepo    linkRepo.RoomingListBooking
	transactor  postgres.Transactor
	cfg         *config.Config
	cache       cache.RedisCache
	publisher   activity.Publisher
	otel        otel.Otel
}

func New(
	repo repository.RoomingList,
	eventRepo eventRepo.Event,
	bookingRepo bookingRepo.Booking,
	linkRepo linkRepo.RoomingListBooking,
	transactor postgres.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	publisher activity.Publisher,
	otel otel.Otel,
) RoomingList {
	return &serviceImpl{
		repo:        repo,
		eventRepo:   eventRepo,
		bookingRepo: bookingRepo,
		linkRepo:    linkRepo,
		transactor:  transactor,
		cfg:         cfg,
		cache:       cache,
		publisher:   publisher,
		otel:        otel,
	}
}

// List returns the matching rooming lists, each with its bookings loaded in a single batched query.
func (s *serviceImpl) List(ctx context.Context, req dto.ListRoomingListsRequest) (res []dto.RoomingListWithBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".rooming_list.List")
	defer scope.End()
	defer scope.TraceIfError(&err)

	filter, err := buildListFilter(req)
	if err != nil {
		return nil, err
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cachePrefixRoomingLists, req)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for rooming lists")

		return res, nil
	}

	roomingLists, err := s.repo.GetAll(ctx, req.QueryParams.Sanitize(sortColumns, defaultSort), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to list rooming lists")

		return nil, fmt.Errorf("failed to list rooming lists: %w", err)
	}

	res, err = s.withBookings(ctx, roomingLists)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Msg("failed to save rooming lists to cache")
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.RoomingListWithBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".rooming_list.Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	roomingList, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	items, err := s.withBookings(ctx, []model.RoomingList{roomingList})
	if err != nil {
		return res, err
	}

	return items[0], nil
}

// Create inserts the rooming list and its booking links atomically.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomingListRequest) (res dto.RoomingListWithBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".rooming_list.Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if !req.UniqueBookingIDs() {
		return res, failure.Conflict(errDuplicateBookingIDs)
	}

	roomingList, err := req.ToModel()
	if err != nil {
		return res, err
	}

	if err = s.ensureEvent(ctx, roomingList.EventID); err != nil {
		return res, err
	}

	if err = s.ensureBookings(ctx, req.BookingIDs); err != nil {
		return res, err
	}

	var created model.RoomingList

	err = s.transactor.WithTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		created, err = s.repo.InsertReturningTx(ctx, tx, roomingList)
		if err != nil {
			return fmt.Errorf("failed to insert rooming list: %w", err)
		}

		links := make([]linkModel.RoomingListBooking, len(req.BookingIDs))
		for i, bookingID := range req.BookingIDs {
			links[i] = linkModel.RoomingListBooking{RoomingListID: created.ID, BookingID: bookingID}
		}

		if err = s.linkRepo.InsertBulkTx(ctx, tx, links); err != nil {
			return fmt.Errorf("failed to link bookings: %w", err)
		}

		return nil
	})
	if err != nil {
		switch {
		case shared.IsUniqueViolation(err):
			return res, failure.Conflict(errDuplicateBookingIDs)
		case shared.IsForeignKeyViolation(err):
			return res, failure.NotFound(errBookingsNotFound)
		}

		log.Error().Err(err).Msg("failed to create rooming list")

		return res, fmt.Errorf("failed to create rooming list: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyDataset)
	s.publisher.Publish(ctx, activity.Activity{
		Type:       activity.RoomingListCreated,
		EntityID:   created.ID,
		Attributes: map[string]any{"eventId": created.EventID, "bookingIds": req.BookingIDs},
	})

	return s.Get(ctx, created.ID)
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomingListRequest, id int64) (res dto.RoomingListWithBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".rooming_list.Update")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if req.IsEmpty() {
		return res, failure.EmptyUpdate
	}

	current, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	fields, err := req.ToFields()
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

		log.Error().Err(err).Msg("failed to update rooming list")

		return res, fmt.Errorf("failed to update rooming list: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyDataset)

	return s.Get(ctx, id)
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (res dto.RoomingListResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".rooming_list.Delete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	roomingList, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	err = s.transactor.WithTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		if _, err := s.linkRepo.DeleteTx(ctx, tx, shared.FilterByID(id, linkModel.FieldRoomingListID, linkModel.TableName)); err != nil {
			return fmt.Errorf("failed to unlink bookings: %w", err)
		}

		affected, err := s.repo.DeleteTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			return fmt.Errorf("failed to delete rooming list: %w", err)
		}

		if affected == 0 {
			return failure.NotFound(errRoomingListNotFound)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Int64("roomingListId", id).Msg("failed to delete rooming list")

		return res, err
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyDataset)
	s.publisher.Publish(ctx, activity.Activity{Type: activity.RoomingListDeleted, EntityID: id})

	res.FromModel(roomingList)

	return res, nil
}

func (s *serviceImpl) ListBookings(ctx context.Context, id int64) (res []bookingDto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".rooming_list.ListBookings")
	defer scope.End()
	defer scope.TraceIfError(&err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if rooming list exists")

		return nil, fmt.Errorf("failed to check if rooming list exists: %w", err)
	}

	if !exist {
		return nil, failure.NotFound(errRoomingListNotFound)
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Value:    linkedBookingsQuery,
				Operator: gDto.FilterPlainQuery,
				Args:     map[string]any{linkModel.FieldRoomingListID: id},
			},
		},
	}

	params := gDto.QueryParams{
		SortBy:  bookingModel.TableName + "." + bookingModel.FieldCheckInDate,
		SortDir: gDto.SortDirAsc,
	}

	bookings, err := s.bookingRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to list bookings of rooming list")

		return nil, fmt.Errorf("failed to list bookings of rooming list: %w", err)
	}

	return bookingDto.FromModels(bookings), nil
}

func (s *serviceImpl) get(ctx context.Context, id int64) (model.RoomingList, error) {
	roomingList, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooming list")

		return roomingList, fmt.Errorf("failed to get rooming list: %w", err)
	}

	if roomingList.ID == 0 {
		return roomingList, failure.NotFound(errRoomingListNotFound)
	}

	return roomingList, nil
}

func (s *serviceImpl) withBookings(ctx context.Context, roomingLists []model.RoomingList) ([]dto.RoomingListWithBookingsResponse, error) {
	ids := make([]int64, len(roomingLists))
	for i, roomingList := range roomingLists {
		ids[i] = roomingList.ID
	}

	linked, err := s.linkRepo.ListBookings(ctx, ids)
	if err != nil {
		log.Error().Err(err).Msg("failed to load bookings of rooming lists")

		return nil, fmt.Errorf("failed to load bookings of rooming lists: %w", err)
	}

	grouped := linkModel.GroupByRoomingList(linked)

	res := make([]dto.RoomingListWithBookingsResponse, len(roomingLists))
	for i, roomingList := range roomingLists {
		res[i].FromModel(roomingList, bookingDto.FromModels(grouped[roomingList.ID]))
	}

	return res, nil
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

func (s *serviceImpl) ensureBookings(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: bookingModel.FieldID, Value: ids, Operator: gDto.FilterOperatorIn, Table: bookingModel.TableName},
		},
	}

	count, err := s.bookingRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return fmt.Errorf("failed to count bookings: %w", err)
	}

	if count != len(ids) {
		return failure.NotFound(errBookingsNotFound)
	}

	return nil
}

func buildListFilter(req dto.ListRoomingListsRequest) (gDto.FilterGroup, error) {
	filter := gDto.FilterGroup{}

	if req.Status != "" {
		if !slices.Contains(constant.RoomingStatuses, req.Status) {
			return filter, failure.BadRequestFromString("status must be one of: " + strings.Join(constant.RoomingStatuses, ", "))
		}

		filter.Filters = append(filter.Filters, gDto.Filter{
			Field: model.FieldStatus, Value: req.Status, Operator: gDto.FilterOperatorEq, Table: model.TableName,
		})
	}

	if search := strings.TrimSpace(req.Search); search != "" {
		filter.Filters = append(filter.Filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{ArgName: "search_event_name", Field: model.FieldEventName, Value: search, Operator: gDto.FilterOperatorLike, Table: model.EventTableName},
				gDto.Filter{ArgName: "search_rfp_name", Field: model.FieldRfpName, Value: search, Operator: gDto.FilterOperatorLike, Table: model.TableName},
				gDto.Filter{ArgName: "search_agreement_type", Field: model.FieldAgreementType, Value: search, Operator: gDto.FilterOperatorLike, Table: model.TableName},
			},
		})
	}

	return filter, nil
}
