package memstore

import (
	"context"
	"fmt"

	"studyspot/internal/domain/amenity"
	"studyspot/internal/domain/review"
	"studyspot/internal/domain/studyspace"
	"studyspot/internal/pkg/errs"
)

// Seed populates the store with the fixed launch catalog. Amenities are
// created first because the space associations reference the ids assigned
// here. A partial seed leaves the store usable; the caller decides whether
// to log and continue.
func (s *Store) Seed(ctx context.Context) error {
	amenityIDs, err := s.seedAmenities(ctx)
	if err != nil {
		return errs.Wrap(err, "seeding amenities")
	}
	if err := s.seedStudySpaces(ctx, amenityIDs); err != nil {
		return errs.Wrap(err, "seeding study spaces")
	}
	return nil
}

func (s *Store) seedAmenities(ctx context.Context) ([]int64, error) {
	defaults := []amenity.Amenity{
		{Name: "Free Wi-Fi", Icon: "wifi"},
		{Name: "Power Outlets", Icon: "plug"},
		{Name: "Café", Icon: "coffee"},
		{Name: "Quiet Zone", Icon: "volume-mute"},
		{Name: "Group-friendly", Icon: "users"},
		{Name: "Outdoor", Icon: "tree"},
		{Name: "Tech", Icon: "laptop"},
		{Name: "Historical", Icon: "history"},
	}

	ids := make([]int64, 0, len(defaults))
	for _, a := range defaults {
		created, err := s.CreateAmenity(ctx, a)
		if err != nil {
			return nil, err
		}
		ids = append(ids, created.ID)
	}
	return ids, nil
}

func (s *Store) seedStudySpaces(ctx context.Context, amenityIDs []int64) error {
	spaces := []studyspace.StudySpace{
		{
			Name:           "Central Library",
			Address:        "123 University Ave, Indore",
			Description:    "A large library with individual study cubicles and group tables. Perfect for long study sessions.",
			ImageURL:       "/images/study-spaces/library1.jpg",
			TotalSeats:     120,
			AvailableSeats: 76,
			OpeningHours:   "8:00 AM - 10:00 PM",
			Latitude:       "22.7196",
			Longitude:      "75.8577",
		},
		{
			Name:           "The Bookworm Café",
			Address:        "45 Park Street, Indore",
			Description:    "A cozy café with a great selection of books and comfortable seating. Great for casual study sessions.",
			ImageURL:       "/images/study-spaces/cafe1.jpg",
			TotalSeats:     30,
			AvailableSeats: 8,
			OpeningHours:   "7:30 AM - 9:00 PM",
			Latitude:       "22.7256",
			Longitude:      "75.8818",
		},
		{
			Name:           "Startup Hub Co-working",
			Address:        "78 Tech Park, Indore",
			Description:    "Modern co-working space with high-speed internet and 24/7 access. Ideal for tech enthusiasts.",
			ImageURL:       "/images/study-spaces/coworking1.jpg",
			TotalSeats:     45,
			AvailableSeats: 0,
			OpeningHours:   "24/7",
			Latitude:       "22.7522",
			Longitude:      "75.8932",
		},
		{
			Name:           "City Museum Reading Room",
			Address:        "30 Cultural District, Indore",
			Description:    "A quiet reading room within the historic city museum. Surrounded by art and history.",
			ImageURL:       "/images/study-spaces/library2.jpg",
			TotalSeats:     35,
			AvailableSeats: 24,
			OpeningHours:   "10:00 AM - 6:00 PM",
			Latitude:       "22.7099",
			Longitude:      "75.8563",
		},
		{
			Name:           "TechNest Collaborative Space",
			Address:        "55 Innovation Ave, Indore",
			Description:    "Tech-focused collaborative environment with smart boards and presentation facilities.",
			ImageURL:       "/images/study-spaces/coworking2.jpg",
			TotalSeats:     40,
			AvailableSeats: 18,
			OpeningHours:   "8:00 AM - 10:00 PM",
			Latitude:       "22.7404",
			Longitude:      "75.8839",
		},
		{
			Name:           "Green Garden Study Center",
			Address:        "12 Botanical Garden Road, Indore",
			Description:    "Study amidst nature in this beautiful garden setting with outdoor and indoor seating options.",
			ImageURL:       "/images/study-spaces/garden1.jpg",
			TotalSeats:     25,
			AvailableSeats: 5,
			OpeningHours:   "9:00 AM - 6:00 PM",
			Latitude:       "22.7618",
			Longitude:      "75.8877",
		},
	}

	// Indexes into amenityIDs, matching the seeded amenity order above.
	amenitiesBySpace := map[string][]int{
		"Central Library":              {0, 1, 3}, // Wi-Fi, Power Outlets, Quiet Zone
		"The Bookworm Café":            {0, 2, 4}, // Wi-Fi, Café, Group-friendly
		"Startup Hub Co-working":       {0, 1, 2}, // Wi-Fi, Power Outlets, Café
		"City Museum Reading Room":     {0, 3, 7}, // Wi-Fi, Quiet Zone, Historical
		"TechNest Collaborative Space": {0, 4, 6}, // Wi-Fi, Group-friendly, Tech
		"Green Garden Study Center":    {0, 2, 5}, // Wi-Fi, Café, Outdoor
	}

	sampleRatings := []int{4, 5, 3, 4, 5}

	for _, sp := range spaces {
		created, err := s.CreateStudySpace(ctx, sp)
		if err != nil {
			return err
		}

		for _, idx := range amenitiesBySpace[sp.Name] {
			_, err := s.AddAmenityToSpace(ctx, amenity.Association{
				StudySpaceID: created.ID,
				AmenityID:    amenityIDs[idx],
			})
			if err != nil {
				return err
			}
		}

		for i, rating := range sampleRatings {
			_, err := s.CreateReview(ctx, review.Review{
				StudySpaceID: created.ID,
				Rating:       rating,
				Comment:      fmt.Sprintf("This is a sample review %d for %s.", i+1, sp.Name),
			})
			if err != nil {
				return err
			}
		}
	}
	return nil
}
