package request

import "studyspot/internal/usecase/commands"

type CreateStudySpaceRequest struct {
	Name           string `json:"name" binding:"required"`
	Address        string `json:"address" binding:"required"`
	Description    string `json:"description"`
	ImageURL       string `json:"imageUrl"`
	TotalSeats     int    `json:"totalSeats" binding:"required"`
	AvailableSeats *int   `json:"availableSeats"`
	OpeningHours   string `json:"openingHours"`
	Latitude       string `json:"latitude"`
	Longitude      string `json:"longitude"`
}

func (r *CreateStudySpaceRequest) ToCommand() commands.CreateStudySpaceRequest {
	return commands.CreateStudySpaceRequest{
		Name:           r.Name,
		Address:        r.Address,
		Description:    r.Description,
		ImageURL:       r.ImageURL,
		TotalSeats:     r.TotalSeats,
		AvailableSeats: r.AvailableSeats,
		OpeningHours:   r.OpeningHours,
		Latitude:       r.Latitude,
		Longitude:      r.Longitude,
	}
}

// AvailableSeats is a pointer so an explicit 0 survives binding.
type UpdateAvailabilityRequest struct {
	AvailableSeats *int `json:"availableSeats" binding:"required"`
}
