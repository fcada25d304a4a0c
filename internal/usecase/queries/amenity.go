package queries

import (
	"context"

	"studyspot/internal/domain/amenity"
)

type AmenityReadStore interface {
	AllAmenities(ctx context.Context) ([]amenity.Amenity, error)
}

type AmenityQueries interface {
	List(ctx context.Context) ([]amenity.Amenity, error)
}

type amenityQueriesImpl struct {
	store AmenityReadStore
}

func NewAmenityQueries(store AmenityReadStore) AmenityQueries {
	return &amenityQueriesImpl{store: store}
}

func (q *amenityQueriesImpl) List(ctx context.Context) ([]amenity.Amenity, error) {
	return q.store.AllAmenities(ctx)
}
