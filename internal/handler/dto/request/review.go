package request

import "studyspot/internal/usecase/commands"

type CreateReviewRequest struct {
	UserID       *int64 `json:"userId"`
	StudySpaceID int64  `json:"studySpaceId" binding:"required"`
	Rating       int    `json:"rating" binding:"required,min=1,max=5"`
	Comment      string `json:"comment"`
}

func (r *CreateReviewRequest) ToCommand() commands.CreateReviewRequest {
	return commands.CreateReviewRequest{
		UserID:       r.UserID,
		StudySpaceID: r.StudySpaceID,
		Rating:       r.Rating,
		Comment:      r.Comment,
	}
}
