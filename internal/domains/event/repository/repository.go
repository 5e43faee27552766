package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"rooming/infras/otel"
	"rooming/infras/postgres"
	"rooming/internal/domains/event/model"
	"rooming/shared/constant"
	gDto "rooming/shared/dto"
	"rooming/shared/logger"
	gRepo "rooming/shared/repository"
)

const listWithCountsQuery = `
SELECT
	events.event_id,
	events.event_name,
	events.description,
	events.created_at,
	COUNT(DISTINCT rooming_lists.rooming_list_id) AS rooming_list_count,
	COUNT(DISTINCT bookings.booking_id) AS booking_count
FROM events
LEFT JOIN rooming_lists ON rooming_lists.event_id = events.event_id
LEFT JOIN bookings ON bookings.event_id = events.event_id
GROUP BY events.event_id
ORDER BY events.created_at DESC, events.event_id DESC`

type Event interface {
	InsertReturning(ctx context.Context, model model.Event) (model.Event, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Event, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) (int64, error)
	ListWithCounts(ctx context.Context) ([]model.EventSummary, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Event]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Event {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Event](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// ListWithCounts returns every event, newest first, with derived reference counts.
func (r *repositoryImpl) ListWithCounts(ctx context.Context) ([]model.EventSummary, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".event.ListWithCounts")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, listWithCountsQuery)

	summaries := []model.EventSummary{}

	if err := r.db.Read.SelectContext(ctx, &summaries, listWithCountsQuery); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list events with counts: %w", err)
	}

	return summaries, nil
}
