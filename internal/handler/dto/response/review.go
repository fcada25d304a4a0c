package response

import (
	"time"

	"studyspot/internal/domain/review"

	"github.com/jinzhu/copier"
)

type ReviewResponse struct {
	ID           int64     `json:"id"`
	UserID       *int64    `json:"userId"`
	StudySpaceID int64     `json:"studySpaceId"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func FromReview(r *review.Review) *ReviewResponse {
	var resp ReviewResponse
	_ = copier.Copy(&resp, r)
	return &resp
}

func FromReviews(items []review.Review) []*ReviewResponse {
	out := make([]*ReviewResponse, len(items))
	for i := range items {
		out[i] = FromReview(&items[i])
	}
	return out
}
