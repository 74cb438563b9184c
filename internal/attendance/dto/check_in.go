package dto

// Latitude and longitude are pointers so that a missing field is
// distinguishable from a genuine zero coordinate.
type CheckInInput struct {
	Latitude  *float64 `json:"latitude" form:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude" form:"longitude" validate:"omitempty,min=-180,max=180"`
	Notes     string   `json:"notes" form:"notes"`
}
