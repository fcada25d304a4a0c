package memstore

import (
	"context"
	"strings"

	"studyspot/internal/domain/studyspace"
)

// SearchStudySpaces filters spaces by a case-insensitive substring match on
// name or address, decorates the survivors, then keeps only spaces whose
// resolved amenities satisfy every required filter name. Filter matching is
// substring containment, intentionally loose ("Wi-Fi" matches "Free Wi-Fi").
// An empty query keeps all spaces; a filter that matches nothing yields an
// empty result rather than an error. No ordering is imposed beyond insertion
// order; sorting is a presentation concern.
func (s *Store) SearchStudySpaces(_ context.Context, query string, filters []string) ([]studyspace.WithAmenities, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lowerQuery := strings.ToLower(query)

	out := []studyspace.WithAmenities{}
	for _, id := range s.spaceIDs {
		sp := s.spaces[id]
		if query != "" &&
			!strings.Contains(strings.ToLower(sp.Name), lowerQuery) &&
			!strings.Contains(strings.ToLower(sp.Address), lowerQuery) {
			continue
		}

		decorated := s.decorateLocked(sp)
		if !satisfiesFilters(decorated, filters) {
			continue
		}
		out = append(out, decorated)
	}
	return out, nil
}

func satisfiesFilters(sp studyspace.WithAmenities, filters []string) bool {
	for _, filter := range filters {
		lowerFilter := strings.ToLower(filter)
		matched := false
		for _, a := range sp.Amenities {
			if strings.Contains(strings.ToLower(a.Name), lowerFilter) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}
