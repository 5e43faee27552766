package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"rooming/infras/otel"
	"rooming/infras/postgres"
	"rooming/internal/domains/data/model"
	"rooming/shared/constant"
	"rooming/shared/logger"
	gRepo "rooming/shared/repository"

	"github.com/jmoiron/sqlx"
)

const countsQuery = `
SELECT
	(SELECT COUNT(*) FROM events) AS events,
	(SELECT COUNT(*) FROM bookings) AS bookings,
	(SELECT COUNT(*) FROM rooming_lists) AS rooming_lists,
	(SELECT COUNT(*) FROM rooming_list_bookings) AS rooming_list_bookings`

type sequence struct {
	table  string
	column string
}

// sequences lists the identity columns in child to parent order, which is also the delete order.
var sequences = []sequence{
	{table: model.LinkTableName, column: "id"},
	{table: model.RoomingListTableName, column: "rooming_list_id"},
	{table: model.BookingTableName, column: "booking_id"},
	{table: model.EventTableName, column: "event_id"},
}

type Data interface {
	ClearTx(ctx context.Context, sqltx *sqlx.Tx) error
	InsertDatasetTx(ctx context.Context, sqltx *sqlx.Tx, dataset model.Dataset) error
	SyncSequencesTx(ctx context.Context, sqltx *sqlx.Tx) error
	Counts(ctx context.Context) (model.Counts, error)
}

type repositoryImpl struct {
	events       gRepo.Repository[model.SeedEvent]
	bookings     gRepo.Repository[model.SeedBooking]
	roomingLists gRepo.Repository[model.SeedRoomingList]
	links        gRepo.Repository[model.SeedLink]
	db           *postgres.Connection
	otel         otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Data {
	return &repositoryImpl{
		events:       gRepo.NewRepository[model.SeedEvent]("seed_event", model.EventTableName, "event_id", db, otel),
		bookings:     gRepo.NewRepository[model.SeedBooking]("seed_booking", model.BookingTableName, "booking_id", db, otel),
		roomingLists: gRepo.NewRepository[model.SeedRoomingList]("seed_rooming_list", model.RoomingListTableName, "rooming_list_id", db, otel),
		links:        gRepo.NewRepository[model.SeedLink]("seed_rooming_list_booking", model.LinkTableName, "id", db, otel),
		db:           db,
		otel:         otel,
	}
}

// ClearTx deletes every business row, children first, and restarts the identity sequences at 1.
func (r *repositoryImpl) ClearTx(ctx context.Context, sqltx *sqlx.Tx) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".data.ClearTx")
	defer scope.End()
	defer scope.TraceIfError(&err)

	for _, seq := range sequences {
		if _, err = sqltx.ExecContext(ctx, "DELETE FROM "+seq.table); err != nil {
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to clear %s: %w", seq.table, err)
		}
	}

	for _, seq := range sequences {
		query := fmt.Sprintf("SELECT setval(pg_get_serial_sequence('%s', '%s'), 1, false)", seq.table, seq.column)

		if _, err = sqltx.ExecContext(ctx, query); err != nil {
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to reset sequence of %s: %w", seq.table, err)
		}
	}

	return nil
}

// InsertDatasetTx writes the dataset parents first so every foreign key resolves.
func (r *repositoryImpl) InsertDatasetTx(ctx context.Context, sqltx *sqlx.Tx, dataset model.Dataset) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".data.InsertDatasetTx")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if err = r.events.InsertBulkTx(ctx, sqltx, dataset.Events); err != nil {
		return err //nolint:wrapcheck
	}

	if err = r.bookings.InsertBulkTx(ctx, sqltx, dataset.Bookings); err != nil {
		return err //nolint:wrapcheck
	}

	if err = r.roomingLists.InsertBulkTx(ctx, sqltx, dataset.RoomingLists); err != nil {
		return err //nolint:wrapcheck
	}

	return r.links.InsertBulkTx(ctx, sqltx, dataset.Links) //nolint:wrapcheck
}

// SyncSequencesTx moves each identity sequence past the highest id loaded with explicit values.
func (r *repositoryImpl) SyncSequencesTx(ctx context.Context, sqltx *sqlx.Tx) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".data.SyncSequencesTx")
	defer scope.End()
	defer scope.TraceIfError(&err)

	for _, seq := range sequences {
		query := fmt.Sprintf(
			"SELECT setval(pg_get_serial_sequence('%[1]s', '%[2]s'), COALESCE(MAX(%[2]s), 0) + 1, false) FROM %[1]s",
			seq.table, seq.column,
		)

		if _, err = sqltx.ExecContext(ctx, query); err != nil {
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to sync sequence of %s: %w", seq.table, err)
		}
	}

	return nil
}

func (r *repositoryImpl) Counts(ctx context.Context) (counts model.Counts, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".data.Counts")
	defer scope.End()
	defer scope.TraceIfError(&err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, countsQuery)

	if err = r.db.Read.GetContext(ctx, &counts, countsQuery); err != nil {
		logger.ErrorWithStack(err)

		return counts, fmt.Errorf("failed to count rows: %w", err)
	}

	return counts, nil
}
