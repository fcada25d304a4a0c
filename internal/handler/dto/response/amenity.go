package response

import "studyspot/internal/domain/amenity"

type AmenityResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

func FromAmenities(items []amenity.Amenity) []AmenityResponse {
	out := make([]AmenityResponse, len(items))
	for i, a := range items {
		out[i] = AmenityResponse{ID: a.ID, Name: a.Name, Icon: a.Icon}
	}
	return out
}
