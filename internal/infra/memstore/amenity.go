package memstore

import (
	"context"

	"studyspot/internal/domain/amenity"
)

func (s *Store) CreateAmenity(_ context.Context, in amenity.Amenity) (*amenity.Amenity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	in.ID = s.nextAmenityID
	s.nextAmenityID++

	s.amenities[in.ID] = in
	s.amenIDs = append(s.amenIDs, in.ID)
	return &in, nil
}

func (s *Store) AllAmenities(_ context.Context) ([]amenity.Amenity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]amenity.Amenity, 0, len(s.amenIDs))
	for _, id := range s.amenIDs {
		out = append(out, s.amenities[id])
	}
	return out, nil
}

// AddAmenityToSpace appends an association record. The pair is not checked
// for uniqueness; duplicates surface as duplicate entries on the decorated
// view.
func (s *Store) AddAmenityToSpace(_ context.Context, assoc amenity.Association) (*amenity.Association, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.assocs = append(s.assocs, assoc)
	return &assoc, nil
}

// AmenitiesBySpace resolves the amenities associated with a space in
// association insertion order.
func (s *Store) AmenitiesBySpace(_ context.Context, spaceID int64) ([]amenity.Amenity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.amenitiesBySpaceLocked(spaceID), nil
}
