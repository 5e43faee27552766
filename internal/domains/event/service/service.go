package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Event=MockEventService

import (
	"context"
	"fmt"
	"rooming/config"
	"rooming/infras/otel"
	"rooming/internal/domains/event/model"
	"rooming/internal/domains/event/model/dto"
	"rooming/internal/domains/event/repository"
	roomingListModel "rooming/internal/domains/roominglist/model"
	roomingListDto "rooming/internal/domains/roominglist/model/dto"
	roomingListRepo "rooming/internal/domains/roominglist/repository"
	"rooming/shared"
	"rooming/shared/activity"
	"rooming/shared/cache"
	"rooming/shared/constant"
	gDto "rooming/shared/dto"
	"rooming/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	errEventNotFound       = "Event not found"
	errEventHasRoomingList = "Cannot delete event with existing rooming lists"
	errEventReferenced     = "Cannot delete event that is still referenced by bookings"
)

var cacheListEvents = shared.BuildCacheKey(constant.CacheKeyDataset, "events", "list")

type Event interface {
	List(ctx context.Context) ([]dto.EventSummaryResponse, error)
	Get(ctx context.Context, id int64) (dto.EventResponse, error)
	Create(ctx context.Context, req dto.CreateEventRequest) (dto.EventResponse, error)
	Update(ctx context.Context, req dto.UpdateEventRequest, id int64) (dto.EventResponse, error)
	Delete(ctx context.Context, id int64) (dto.EventResponse, error)
	ListRoomingLists(ctx context.Context, id int64) ([]roomingListDto.RoomingListResponse, error)
}

type serviceImpl struct {
	repo            repository.Event
	roomingListRepo roomingListRepo.RoomingList
	cfg             *config.Config
	cache           cache.RedisCache
	publisher       activity.Publisher
	otel            otel.Otel
}

func New(repo repository.Event, roomingListRepo roomingListRepo.RoomingList, cfg *config.Config, cache cache.RedisCache, publisher activity.Publisher, otel otel.Otel) Event {
	return &serviceImpl{
		repo:            repo,
		roomingListRepo: roomingListRepo,
		cfg:             cfg,
		cache:           cache,
		publisher:       publisher,
		otel:            otel,
	}
}

func (s *serviceImpl) List(ctx context.Context) (res []dto.EventSummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".event.List")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if err = s.cache.Get(ctx, cacheListEvents, &res); err == nil {
		log.Debug().Str("cacheKey", cacheListEvents).Msg("cache hit for events")

		return res, nil
	}

	summaries, err := s.repo.ListWithCounts(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list events")

		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	res = dto.FromSummaries(summaries)

	if err := s.cache.Save(ctx, cacheListEvents, res, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Msg("failed to save events to cache")
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.EventResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".event.Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	event, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(event)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateEventRequest) (res dto.EventResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".event.Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	created, err := s.repo.InsertReturning(ctx, req.ToModel())
	if err != nil {
		log.Error().Err(err).Msg("failed to create event")

		return res, fmt.Errorf("failed to create event: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyDataset)

	res.FromModel(created)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateEventRequest, id int64) (res dto.EventResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".event.Update")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if req.IsEmpty() {
		return res, failure.EmptyUpdate
	}

	if _, err = s.get(ctx, id); err != nil {
		return res, err
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	if err = s.repo.Update(ctx, shared.TransformFields(req), filter); err != nil {
		log.Error().Err(err).Msg("failed to update event")

		return res, fmt.Errorf("failed to update event: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyDataset)

	return s.Get(ctx, id)
}

// Delete refuses to remove an event that rooming lists or bookings still point at.
func (s *serviceImpl) Delete(ctx context.Context, id int64) (res dto.EventResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".event.Delete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	event, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	referenced, err := s.roomingListRepo.Exist(ctx, shared.FilterByID(id, roomingListModel.FieldEventID, roomingListModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check rooming lists of event")

		return res, fmt.Errorf("failed to check rooming lists of event: %w", err)
	}

	if referenced {
		return res, failure.Conflict(errEventHasRoomingList)
	}

	affected, err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		if shared.IsForeignKeyViolation(err) {
			return res, failure.Conflict(errEventReferenced)
		}

		log.Error().Err(err).Msg("failed to delete event")

		return res, fmt.Errorf("failed to delete event: %w", err)
	}

	if affected == 0 {
		return res, failure.NotFound(errEventNotFound)
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyDataset)
	s.publisher.Publish(ctx, activity.Activity{Type: activity.EventDeleted, EntityID: id})

	res.FromModel(event)

	return res, nil
}

func (s *serviceImpl) ListRoomingLists(ctx context.Context, id int64) (res []roomingListDto.RoomingListResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".event.ListRoomingLists")
	defer scope.End()
	defer scope.TraceIfError(&err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if event exists")

		return nil, fmt.Errorf("failed to check if event exists: %w", err)
	}

	if !exist {
		return nil, failure.NotFound(errEventNotFound)
	}

	params := gDto.QueryParams{
		SortBy:  fmt.Sprintf("%s.%s", roomingListModel.TableName, roomingListModel.FieldCutOffDate),
		SortDir: gDto.SortDirAsc,
	}

	roomingLists, err := s.roomingListRepo.GetAll(ctx, params, shared.FilterByID(id, roomingListModel.FieldEventID, roomingListModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to list rooming lists of event")

		return nil, fmt.Errorf("failed to list rooming lists of event: %w", err)
	}

	return roomingListDto.FromModels(roomingLists), nil
}

func (s *serviceImpl) get(ctx context.Context, id int64) (model.Event, error) {
	event, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get event")

		return event, fmt.Errorf("failed to get event: %w", err)
	}

	if event.ID == 0 {
		return event, failure.NotFound(errEventNotFound)
	}

	return event, nil
}
