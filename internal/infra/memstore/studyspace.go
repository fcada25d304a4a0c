package memstore

import (
	"context"
	"math"

	"studyspot/internal/domain/amenity"
	"studyspot/internal/domain/studyspace"
	"studyspot/internal/infra"
)

// CreateStudySpace assigns the next id and createdAt and fills defaults for
// optional fields left unset (openingHours). Latitude/longitude stay empty
// when not provided. No validation happens here; the usecase layer already
// performed it.
func (s *Store) CreateStudySpace(_ context.Context, in studyspace.StudySpace) (*studyspace.StudySpace, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	in.ID = s.nextSpaceID
	s.nextSpaceID++
	in.CreatedAt = s.clock.Now()
	if in.OpeningHours == "" {
		in.OpeningHours = studyspace.DefaultOpeningHours
	}

	s.spaces[in.ID] = in
	s.spaceIDs = append(s.spaceIDs, in.ID)
	return &in, nil
}

// GetStudySpaceByID returns the raw record without decoration.
func (s *Store) GetStudySpaceByID(_ context.Context, id int64) (*studyspace.StudySpace, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sp, ok := s.spaces[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "study space not found")
	}
	return &sp, nil
}

// GetDecoratedSpaceByID returns the space with its resolved amenities,
// average rating and review count.
func (s *Store) GetDecoratedSpaceByID(_ context.Context, id int64) (*studyspace.WithAmenities, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sp, ok := s.spaces[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "study space not found")
	}
	v := s.decorateLocked(sp)
	return &v, nil
}

// AllStudySpaces returns every space decorated, in insertion order.
func (s *Store) AllStudySpaces(_ context.Context) ([]studyspace.WithAmenities, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]studyspace.WithAmenities, 0, len(s.spaceIDs))
	for _, id := range s.spaceIDs {
		out = append(out, s.decorateLocked(s.spaces[id]))
	}
	return out, nil
}

// UpdateAvailability overwrites availableSeats unconditionally after
// checking the space exists. The 0 <= value <= totalSeats bound is enforced
// by the admin usecase before this is called, not here; the booking path
// clamps on its own.
func (s *Store) UpdateAvailability(_ context.Context, id int64, availableSeats int) (*studyspace.StudySpace, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.updateAvailabilityLocked(id, availableSeats)
}

func (s *Store) updateAvailabilityLocked(id int64, availableSeats int) (*studyspace.StudySpace, error) {
	sp, ok := s.spaces[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "study space not found")
	}
	sp.AvailableSeats = availableSeats
	s.spaces[id] = sp
	return &sp, nil
}

// decorateLocked composes the read-path view from the base collections.
// Amenity resolution follows association insertion order and does not
// deduplicate. Callers must hold at least a read lock.
func (s *Store) decorateLocked(sp studyspace.StudySpace) studyspace.WithAmenities {
	return studyspace.WithAmenities{
		StudySpace:    sp,
		Amenities:     s.amenitiesBySpaceLocked(sp.ID),
		AverageRating: s.averageRatingLocked(sp.ID),
		TotalReviews:  s.reviewCountLocked(sp.ID),
	}
}

func (s *Store) amenitiesBySpaceLocked(spaceID int64) []amenity.Amenity {
	out := []amenity.Amenity{}
	for _, assoc := range s.assocs {
		if assoc.StudySpaceID != spaceID {
			continue
		}
		if a, ok := s.amenities[assoc.AmenityID]; ok {
			out = append(out, a)
		}
	}
	return out
}

// averageRatingLocked is exactly 0 when the space has no reviews, otherwise
// the mean rounded to one decimal place.
func (s *Store) averageRatingLocked(spaceID int64) float64 {
	sum, count := 0, 0
	for _, id := range s.reviewIDs {
		if r := s.reviews[id]; r.StudySpaceID == spaceID {
			sum += r.Rating
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return math.Round(float64(sum)/float64(count)*10) / 10
}

func (s *Store) reviewCountLocked(spaceID int64) int {
	count := 0
	for _, id := range s.reviewIDs {
		if s.reviews[id].StudySpaceID == spaceID {
			count++
		}
	}
	return count
}
