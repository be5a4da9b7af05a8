package request

type UpdateProfileRequest struct {
	DisplayName  string  `json:"display_name" binding:"required"`
	WorkshopName *string `json:"workshop_name,omitempty"`
	CurrentPlate *string `json:"current_plate,omitempty"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}
