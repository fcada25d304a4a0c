package queries

import (
	"context"

	"studyspot/internal/domain/studyspace"
	"studyspot/internal/infra"
	"studyspot/internal/pkg/errs"
)

type StudySpaceReadStore interface {
	AllStudySpaces(ctx context.Context) ([]studyspace.WithAmenities, error)
	GetDecoratedSpaceByID(ctx context.Context, id int64) (*studyspace.WithAmenities, error)
	SearchStudySpaces(ctx context.Context, query string, filters []string) ([]studyspace.WithAmenities, error)
}

type StudySpaceQueries interface {
	Search(ctx context.Context, query string, filters []string) ([]studyspace.WithAmenities, error)
	GetByID(ctx context.Context, id int64) (*studyspace.WithAmenities, error)
}

type studySpaceQueriesImpl struct {
	store StudySpaceReadStore
}

func NewStudySpaceQueries(store StudySpaceReadStore) StudySpaceQueries {
	return &studySpaceQueriesImpl{store: store}
}

func (q *studySpaceQueriesImpl) Search(ctx context.Context, query string, filters []string) ([]studyspace.WithAmenities, error) {
	return q.store.SearchStudySpaces(ctx, query, filters)
}

func (q *studySpaceQueriesImpl) GetByID(ctx context.Context, id int64) (*studyspace.WithAmenities, error) {
	sp, err := q.store.GetDecoratedSpaceByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrStudySpaceNotFound)
		}
		return nil, err
	}
	return sp, nil
}
