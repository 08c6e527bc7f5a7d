package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"petstay/infras/otel"
	"petstay/infras/postgres"
	"petstay/internal/domains/booking/model"
	gDto "petstay/shared/dto"
	gRepo "petstay/shared/repository"

	"github.com/jmoiron/sqlx"
)

// Booking reads and writes the bookings table. State changes that must agree with the
// rooms table go through UpdateIf so a stale precondition fails instead of overwriting.
type Booking interface {
	Insert(ctx context.Context, booking model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateIf(ctx context.Context, mod map[string]any, filter gDto.FilterGroup) error
	UpdateIfTx(ctx context.Context, sqltx *sqlx.Tx, mod map[string]any, filter gDto.FilterGroup) error
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	repo := gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel)

	return &repo
}
