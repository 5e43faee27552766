package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"rooming/infras/otel"
	"rooming/infras/postgres"
	bookingModel "rooming/internal/domains/booking/model"
	"rooming/internal/domains/roominglistbooking/model"
	"rooming/shared/constant"
	gDto "rooming/shared/dto"
	"rooming/shared/logger"
	gRepo "rooming/shared/repository"

	"github.com/jmoiron/sqlx"
)

type RoomingListBooking interface {
	InsertReturning(ctx context.Context, model model.RoomingListBooking) (model.RoomingListBooking, error)
	InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []model.RoomingListBooking) error
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) (int64, error)
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (int64, error)
	ListBookings(ctx context.Context, roomingListIDs []int64) ([]model.LinkedBooking, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.RoomingListBooking]
	bookings gRepo.Repository[bookingModel.Booking]
	db       *postgres.Connection
	otel     otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) RoomingListBooking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.RoomingListBooking](model.EntityName, model.TableName, model.FieldID, db, otel),
		bookings:   gRepo.NewRepository[bookingModel.Booking](bookingModel.EntityName, bookingModel.TableName, bookingModel.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// ListBookings loads the bookings of every given rooming list in one query,
// ordered by check-in date. Callers group the rows with model.GroupByRoomingList.
func (r *repositoryImpl) ListBookings(ctx context.Context, roomingListIDs []int64) ([]model.LinkedBooking, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".rooming_list_booking.ListBookings")
	defer scope.End()

	linked := []model.LinkedBooking{}

	if len(roomingListIDs) == 0 {
		return linked, nil
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomingListID,
				Value:    roomingListIDs,
				Operator: gDto.FilterOperatorIn,
				Table:    model.TableName,
			},
		},
	}

	where, args := r.BuildWhereClause(ctx, filter)

	query := fmt.Sprintf(
		"SELECT %s.%s, %s FROM %s JOIN %s ON %s.%s = %s.%s %s %s ORDER BY %s.%s, %s.%s",
		model.TableName, model.FieldRoomingListID,
		r.bookings.SelectColumns(ctx),
		model.TableName,
		bookingModel.TableName, bookingModel.TableName, bookingModel.FieldID, model.TableName, model.FieldBookingID,
		r.bookings.Join(),
		where,
		bookingModel.TableName, bookingModel.FieldCheckInDate,
		bookingModel.TableName, bookingModel.FieldID,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := r.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	if err = prepare.SelectContext(ctx, &linked, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list linked bookings: %w", err)
	}

	return linked, nil
}
