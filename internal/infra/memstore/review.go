package memstore

import (
	"context"

	"studyspot/internal/domain/review"
)

func (s *Store) CreateReview(_ context.Context, in review.Review) (*review.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	in.ID = s.nextReviewID
	s.nextReviewID++
	in.CreatedAt = s.clock.Now()

	s.reviews[in.ID] = in
	s.reviewIDs = append(s.reviewIDs, in.ID)
	return &in, nil
}

func (s *Store) AllReviews(_ context.Context) ([]review.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]review.Review, 0, len(s.reviewIDs))
	for _, id := range s.reviewIDs {
		out = append(out, s.reviews[id])
	}
	return out, nil
}

func (s *Store) ReviewsBySpace(_ context.Context, spaceID int64) ([]review.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []review.Review{}
	for _, id := range s.reviewIDs {
		if r := s.reviews[id]; r.StudySpaceID == spaceID {
			out = append(out, r)
		}
	}
	return out, nil
}

// AverageRatingBySpace is 0 for a space with no reviews, otherwise the mean
// rounded to one decimal place.
func (s *Store) AverageRatingBySpace(_ context.Context, spaceID int64) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.averageRatingLocked(spaceID), nil
}
