package request

import "studyspot/internal/usecase/commands"

type CreateBookingRequest struct {
	UserID        *int64 `json:"userId"`
	StudySpaceID  int64  `json:"studySpaceId" binding:"required"`
	Date          string `json:"date" binding:"required"`
	TimeSlot      string `json:"timeSlot" binding:"required"`
	NumberOfSeats int    `json:"numberOfSeats" binding:"required,min=1"`
	Notes         string `json:"notes"`
}

func (r *CreateBookingRequest) ToCommand() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		UserID:        r.UserID,
		StudySpaceID:  r.StudySpaceID,
		Date:          r.Date,
		TimeSlot:      r.TimeSlot,
		NumberOfSeats: r.NumberOfSeats,
		Notes:         r.Notes,
	}
}
