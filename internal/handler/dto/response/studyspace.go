package response

import (
	"time"

	"studyspot/internal/domain/studyspace"

	"github.com/jinzhu/copier"
)

type StudySpaceResponse struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Address        string    `json:"address"`
	Description    string    `json:"description"`
	ImageURL       string    `json:"imageUrl"`
	TotalSeats     int       `json:"totalSeats"`
	AvailableSeats int       `json:"availableSeats"`
	OpeningHours   string    `json:"openingHours"`
	Latitude       string    `json:"latitude,omitempty"`
	Longitude      string    `json:"longitude,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

type DecoratedStudySpaceResponse struct {
	StudySpaceResponse
	Amenities     []AmenityResponse `json:"amenities"`
	AverageRating float64           `json:"averageRating"`
	TotalReviews  int               `json:"totalReviews"`
}

func FromStudySpace(sp *studyspace.StudySpace) *StudySpaceResponse {
	var resp StudySpaceResponse
	_ = copier.Copy(&resp, sp)
	return &resp
}

func FromDecoratedSpace(sp *studyspace.WithAmenities) *DecoratedStudySpaceResponse {
	resp := DecoratedStudySpaceResponse{
		StudySpaceResponse: *FromStudySpace(&sp.StudySpace),
		Amenities:          FromAmenities(sp.Amenities),
		AverageRating:      sp.AverageRating,
		TotalReviews:       sp.TotalReviews,
	}
	return &resp
}

func FromDecoratedSpaces(spaces []studyspace.WithAmenities) []*DecoratedStudySpaceResponse {
	out := make([]*DecoratedStudySpaceResponse, len(spaces))
	for i := range spaces {
		out[i] = FromDecoratedSpace(&spaces[i])
	}
	return out
}
