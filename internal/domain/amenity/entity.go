package amenity

// Amenity is a named feature a study space may offer. Icon is an opaque
// identifier consumed by the client.
type Amenity struct {
	ID   int64
	Name string
	Icon string
}

// Association links a study space to an amenity. It is a pure association
// record with no id of its own; the pair is not required to be unique.
type Association struct {
	StudySpaceID int64
	AmenityID    int64
}
