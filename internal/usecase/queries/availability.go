package queries

import "context"

type AvailabilityQueries interface {
	Summary(ctx context.Context) ([]*AvailabilityItem, error)
}

type VehicleViewRepo interface {
	AvailabilitySummary(ctx context.Context) ([]*AvailabilityItem, error)
}

type availabilityQueriesImpl struct {
	repo VehicleViewRepo
}

func NewAvailabilityQueries(repo VehicleViewRepo) AvailabilityQueries {
	return &availabilityQueriesImpl{repo: repo}
}

func (q *availabilityQueriesImpl) Summary(ctx context.Context) ([]*AvailabilityItem, error) {
	return q.repo.AvailabilitySummary(ctx)
}
