package commands

import (
	"context"

	"studyspot/internal/domain/studyspace"
	"studyspot/internal/infra"
	"studyspot/internal/pkg/errs"
)

type CreateStudySpaceRequest struct {
	Name           string
	Address        string
	Description    string
	ImageURL       string
	TotalSeats     int
	AvailableSeats *int
	OpeningHours   string
	Latitude       string
	Longitude      string
}

type StudySpaceCommands interface {
	Create(ctx context.Context, req CreateStudySpaceRequest) (*studyspace.StudySpace, error)
	SetAvailability(ctx context.Context, id int64, availableSeats int) (*studyspace.StudySpace, error)
}

type studySpaceCommandsImpl struct {
	store StudySpaceStore
}

func NewStudySpaceCommands(store StudySpaceStore) StudySpaceCommands {
	return &studySpaceCommandsImpl{store: store}
}

// Create fills admin-facing defaults before storage: availableSeats defaults
// to totalSeats, imageUrl and openingHours fall back to fixed values. The
// availableSeats bound is validated here because the store accepts any shape.
func (uc *studySpaceCommandsImpl) Create(ctx context.Context, req CreateStudySpaceRequest) (*studyspace.StudySpace, error) {
	if req.TotalSeats <= 0 {
		return nil, errs.ErrInvalidTotalSeats
	}

	availableSeats := req.TotalSeats
	if req.AvailableSeats != nil {
		availableSeats = *req.AvailableSeats
	}
	if availableSeats < 0 || availableSeats > req.TotalSeats {
		return nil, errs.ErrSeatsOutOfRange
	}

	imageURL := req.ImageURL
	if imageURL == "" {
		imageURL = studyspace.DefaultImageURL
	}

	return uc.store.CreateStudySpace(ctx, studyspace.StudySpace{
		Name:           req.Name,
		Address:        req.Address,
		Description:    req.Description,
		ImageURL:       imageURL,
		TotalSeats:     req.TotalSeats,
		AvailableSeats: availableSeats,
		OpeningHours:   req.OpeningHours,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
	})
}

// SetAvailability enforces 0 <= value <= totalSeats before the direct
// overwrite. The store-level UpdateAvailability trusts its caller, so the
// bound lives here at the boundary.
func (uc *studySpaceCommandsImpl) SetAvailability(ctx context.Context, id int64, availableSeats int) (*studyspace.StudySpace, error) {
	sp, err := uc.store.GetStudySpaceByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrStudySpaceNotFound)
		}
		return nil, err
	}

	if availableSeats < 0 || availableSeats > sp.TotalSeats {
		return nil, errs.ErrSeatsOutOfRange
	}

	return uc.store.UpdateAvailability(ctx, id, availableSeats)
}
