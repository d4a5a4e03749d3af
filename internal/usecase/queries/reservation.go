package queries

import (
	"context"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListPending(ctx context.Context) ([]*ReservationListItem, error)
	ListDecided(ctx context.Context) ([]*ReservationListItem, error)
}

type ReservationViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindPending(ctx context.Context) ([]*ReservationListItem, error)
	FindDecided(ctx context.Context) ([]*ReservationListItem, error)
}

type reservationQueriesImpl struct {
	repo ReservationViewRepo
}

func NewReservationQueries(repo ReservationViewRepo) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *reservationQueriesImpl) ListPending(ctx context.Context) ([]*ReservationListItem, error) {
	return q.repo.FindPending(ctx)
}

func (q *reservationQueriesImpl) ListDecided(ctx context.Context) ([]*ReservationListItem, error) {
	return q.repo.FindDecided(ctx)
}
