package dto

type UpdateProfileRequest struct {
	Name                    string   `json:"name,omitempty"`
	Phone                   string   `json:"phone,omitempty"`
	IsDriver                *bool    `json:"is_driver,omitempty"`
	PreferredPaymentMethods []string `json:"preferred_payment_methods,omitempty"`
}

type UpdateAvatarRequest struct {
	ProfilePicture string `json:"profile_picture"`
}
