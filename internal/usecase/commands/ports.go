package commands

import (
	"context"

	"studyspot/internal/domain/amenity"
	"studyspot/internal/domain/booking"
	"studyspot/internal/domain/review"
	"studyspot/internal/domain/studyspace"
	"studyspot/internal/domain/user"
)

// Write-side ports implemented by the in-memory store.

type StudySpaceStore interface {
	CreateStudySpace(ctx context.Context, in studyspace.StudySpace) (*studyspace.StudySpace, error)
	GetStudySpaceByID(ctx context.Context, id int64) (*studyspace.StudySpace, error)
	UpdateAvailability(ctx context.Context, id int64, availableSeats int) (*studyspace.StudySpace, error)
	AddAmenityToSpace(ctx context.Context, assoc amenity.Association) (*amenity.Association, error)
}

type BookingStore interface {
	GetStudySpaceByID(ctx context.Context, id int64) (*studyspace.StudySpace, error)
	CreateBooking(ctx context.Context, in booking.Booking) (*booking.Booking, error)
}

type ReviewStore interface {
	GetStudySpaceByID(ctx context.Context, id int64) (*studyspace.StudySpace, error)
	CreateReview(ctx context.Context, in review.Review) (*review.Review, error)
}

type UserStore interface {
	CreateUser(ctx context.Context, in user.User) (*user.User, error)
	GetUserByUsername(ctx context.Context, username string) (*user.User, error)
	GetUserByEmail(ctx context.Context, email string) (*user.User, error)
}
