package studyspace

import (
	"time"

	"studyspot/internal/domain/amenity"
)

const (
	DefaultOpeningHours = "9:00 AM - 9:00 PM"
	DefaultImageURL     = "https://images.unsplash.com/photo-1541829070764-84a7d30dd3f3"
)

// StudySpace is a bookable physical location with a total and currently
// available seat count. AvailableSeats always satisfies
// 0 <= AvailableSeats <= TotalSeats for records created through the
// usecase layer; the store itself trusts its input.
type StudySpace struct {
	ID             int64
	Name           string
	Address        string
	Description    string
	ImageURL       string
	TotalSeats     int
	AvailableSeats int
	OpeningHours   string
	Latitude       string
	Longitude      string
	CreatedAt      time.Time
}

// WithAmenities is the decorated read-path view of a study space:
// resolved amenities, average rating and review count.
type WithAmenities struct {
	StudySpace
	Amenities     []amenity.Amenity
	AverageRating float64
	TotalReviews  int
}
