package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"rooming/infras/otel"
	"rooming/infras/postgres"
	"rooming/internal/domains/roominglist/model"
	gDto "rooming/shared/dto"
	gRepo "rooming/shared/repository"

	"github.com/jmoiron/sqlx"
)

type RoomingList interface {
	InsertReturningTx(ctx context.Context, sqltx *sqlx.Tx, model model.RoomingList) (model.RoomingList, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RoomingList, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RoomingList, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.RoomingList]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) RoomingList {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.RoomingList](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
