package builder

import (
	"studyspot/internal/domain/studyspace"
)

// StudySpaceBuilder assembles study space inputs for tests. Defaults mirror a
// typical catalog entry; override what the case under test cares about.
type StudySpaceBuilder struct {
	space studyspace.StudySpace
}

func NewStudySpaceBuilder() *StudySpaceBuilder {
	return &StudySpaceBuilder{
		space: studyspace.StudySpace{
			Name:           "Central Library",
			Address:        "123 University Ave, Indore",
			Description:    "A large library with individual study cubicles and group tables.",
			ImageURL:       "/images/study-spaces/library1.jpg",
			TotalSeats:     120,
			AvailableSeats: 76,
			OpeningHours:   "8:00 AM - 10:00 PM",
		},
	}
}

func (b *StudySpaceBuilder) WithName(name string) *StudySpaceBuilder {
	b.space.Name = name
	return b
}

func (b *StudySpaceBuilder) WithAddress(address string) *StudySpaceBuilder {
	b.space.Address = address
	return b
}

func (b *StudySpaceBuilder) WithSeats(total, available int) *StudySpaceBuilder {
	b.space.TotalSeats = total
	b.space.AvailableSeats = available
	return b
}

func (b *StudySpaceBuilder) WithOpeningHours(hours string) *StudySpaceBuilder {
	b.space.OpeningHours = hours
	return b
}

func (b *StudySpaceBuilder) Build() studyspace.StudySpace {
	return b.space
}
