package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"petstay/infras/otel"
	"petstay/infras/postgres"
	"petstay/internal/domains/room/model"
	"petstay/shared/constant"
	gDto "petstay/shared/dto"
	gRepo "petstay/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Room interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateIf(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateIfTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	InsertMissing(ctx context.Context, rooms []model.Room) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

// InsertMissing inserts rooms whose number is not taken yet and returns how many were created.
// Concurrent seeders converge on the same inventory through the room_number unique key.
func (r *repositoryImpl) InsertMissing(ctx context.Context, rooms []model.Room) (int, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.InsertMissing")
	defer scope.End()

	created, err := r.InsertIgnoring(ctx, rooms, model.FieldRoomNumber)
	if err != nil {
		return 0, fmt.Errorf("failed to insert rooms: %w", err)
	}

	scope.SetAttribute("rooms.created", created)

	return created, nil
}
