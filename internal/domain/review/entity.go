package review

import "time"

// Review is a 1-5 rating plus optional comment attached to a study space.
// UserID is nil for anonymous reviews.
type Review struct {
	ID           int64
	UserID       *int64
	StudySpaceID int64
	Rating       int
	Comment      string
	CreatedAt    time.Time
}
