package commands

import (
	"context"

	domreview "studyspot/internal/domain/review"
	"studyspot/internal/infra"
	"studyspot/internal/pkg/errs"
)

type CreateReviewRequest struct {
	UserID       *int64
	StudySpaceID int64
	Rating       int
	Comment      string
}

type ReviewCommands interface {
	Create(ctx context.Context, req CreateReviewRequest) (*domreview.Review, error)
}

type reviewCommandsImpl struct {
	store ReviewStore
}

func NewReviewCommands(store ReviewStore) ReviewCommands {
	return &reviewCommandsImpl{store: store}
}

func (uc *reviewCommandsImpl) Create(ctx context.Context, req CreateReviewRequest) (*domreview.Review, error) {
	rating, err := domreview.NewRating(req.Rating)
	if err != nil {
		return nil, err
	}

	if _, err := uc.store.GetStudySpaceByID(ctx, req.StudySpaceID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrStudySpaceNotFound)
		}
		return nil, err
	}

	return uc.store.CreateReview(ctx, domreview.Review{
		UserID:       req.UserID,
		StudySpaceID: req.StudySpaceID,
		Rating:       rating.Value(),
		Comment:      req.Comment,
	})
}
