package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Data=MockDataService

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"rooming/config"
	"rooming/infras/otel"
	"rooming/infras/postgres"
	"rooming/internal/domains/data/model"
	"rooming/internal/domains/data/model/dto"
	"rooming/internal/domains/data/repository"
	"rooming/internal/domains/data/source"
	"rooming/shared"
	"rooming/shared/activity"
	"rooming/shared/cache"
	"rooming/shared/constant"
	"rooming/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	errDanglingReference = "sample data references an event, booking or rooming list that is not in the dataset"
	errDuplicateRow      = "sample data contains duplicate identifiers or links"
)

type Data interface {
	InsertSampleData(ctx context.Context) (dto.LoadResponse, error)
	ClearAllData(ctx context.Context) error
	Status(ctx context.Context) (model.Counts, error)
}

type serviceImpl struct {
	repo       repository.Data
	loader     source.Loader
	transactor postgres.Transactor
	cfg        *config.Config
	cache      cache.RedisCache
	publisher  activity.Publisher
	otel       otel.Otel
}

func New(
	repo repository.Data,
	loader source.Loader,
	transactor postgres.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	publisher activity.Publisher,
	otel otel.Otel,
) Data {
	return &serviceImpl{
		repo:       repo,
		loader:     loader,
		transactor: transactor,
		cfg:        cfg,
		cache:      cache,
		publisher:  publisher,
		otel:       otel,
	}
}

// InsertSampleData replaces every business row with the source documents. Running it
// twice leaves the same rows behind, and any failure leaves the previous data untouched.
func (s *serviceImpl) InsertSampleData(ctx context.Context) (res dto.LoadResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".data.InsertSampleData")
	defer scope.End()
	defer scope.TraceIfError(&err)

	sources, err := s.readSources(ctx)
	if err != nil {
		return res, err
	}

	dataset, err := sources.ToDataset()
	if err != nil {
		return res, failure.BadRequest(err)
	}

	err = s.transactor.WithTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		if err := s.repo.ClearTx(ctx, tx); err != nil {
			return err //nolint:wrapcheck
		}

		if err := s.repo.InsertDatasetTx(ctx, tx, dataset); err != nil {
			return err //nolint:wrapcheck
		}

		return s.repo.SyncSequencesTx(ctx, tx) //nolint:wrapcheck
	})
	if err != nil {
		switch {
		case shared.IsForeignKeyViolation(err):
			return res, failure.BadRequestFromString(errDanglingReference)
		case shared.IsUniqueViolation(err):
			return res, failure.BadRequestFromString(errDuplicateRow)
		}

		log.Error().Err(err).Msg("failed to load sample data")

		return res, fmt.Errorf("failed to load sample data: %w", err)
	}

	res.Summary = dataset.Counts()
	res.Source = s.loader.Location()
	res.Files = map[string]string{
		"bookings":            dto.FileBookings,
		"roomingLists":        dto.FileRoomingLists,
		"roomingListBookings": dto.FileLinks,
	}

	if sources.Events != nil {
		res.Files["events"] = dto.FileEvents
	}

	log.Info().Interface("summary", res.Summary).Str("source", res.Source).Msg("sample data loaded")

	shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyDataset)
	s.publisher.Publish(ctx, activity.Activity{
		Type: activity.DataLoaded,
		Attributes: map[string]any{
			"events":              res.Summary.Events,
			"bookings":            res.Summary.Bookings,
			"roomingLists":        res.Summary.RoomingLists,
			"roomingListBookings": res.Summary.RoomingListBookings,
		},
	})

	return res, nil
}

func (s *serviceImpl) ClearAllData(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".data.ClearAllData")
	defer scope.End()
	defer scope.TraceIfError(&err)

	err = s.transactor.WithTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		return s.repo.ClearTx(ctx, tx) //nolint:wrapcheck
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to clear data")

		return fmt.Errorf("failed to clear data: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyDataset)
	s.publisher.Publish(ctx, activity.Activity{Type: activity.DataCleared})

	return nil
}

func (s *serviceImpl) Status(ctx context.Context) (res model.Counts, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".data.Status")
	defer scope.End()
	defer scope.TraceIfError(&err)

	res, err = s.repo.Counts(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get data status")

		return res, fmt.Errorf("failed to get data status: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) readSources(ctx context.Context) (sources dto.Sources, err error) {
	if _, err = s.decode(ctx, dto.FileBookings, &sources.Bookings, false); err != nil {
		return sources, err
	}

	if _, err = s.decode(ctx, dto.FileRoomingLists, &sources.RoomingLists, false); err != nil {
		return sources, err
	}

	if _, err = s.decode(ctx, dto.FileLinks, &sources.Links, false); err != nil {
		return sources, err
	}

	found, err := s.decode(ctx, dto.FileEvents, &sources.Events, true)
	if err != nil {
		return sources, err
	}

	if found && sources.Events == nil {
		sources.Events = []dto.EventSource{}
	}

	return sources, nil
}

// decode reads one document. A missing optional document reports found=false without error.
func (s *serviceImpl) decode(ctx context.Context, name string, target any, optional bool) (found bool, err error) {
	raw, err := s.loader.Read(ctx, name)
	if err != nil {
		if errors.Is(err, source.ErrNotFound) {
			if optional {
				return false, nil
			}

			return false, failure.BadRequestFromString(name + " not found")
		}

		log.Error().Err(err).Str("document", name).Msg("failed to read source document")

		return false, fmt.Errorf("failed to read %s: %w", name, err)
	}

	if err := json.Unmarshal(raw, target); err != nil {
		return false, failure.BadRequestFromString(fmt.Sprintf("invalid JSON in %s: %v", name, err))
	}

	return true, nil
}
