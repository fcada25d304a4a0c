package queries

import (
	"context"

	"studyspot/internal/domain/review"
)

type ReviewReadStore interface {
	AllReviews(ctx context.Context) ([]review.Review, error)
	ReviewsBySpace(ctx context.Context, spaceID int64) ([]review.Review, error)
}

type ReviewQueries interface {
	List(ctx context.Context, studySpaceID *int64) ([]review.Review, error)
}

type reviewQueriesImpl struct {
	store ReviewReadStore
}

func NewReviewQueries(store ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{store: store}
}

func (q *reviewQueriesImpl) List(ctx context.Context, studySpaceID *int64) ([]review.Review, error) {
	if studySpaceID != nil {
		return q.store.ReviewsBySpace(ctx, *studySpaceID)
	}
	return q.store.AllReviews(ctx)
}
