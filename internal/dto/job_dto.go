package dto

type CreateJobInput struct {
	Title       string `json:"title" validate:"required"`
	Type        string `json:"type" validate:"required"`
	Location    string `json:"location" validate:"required"`
	Description string `json:"description" validate:"required"`
	Status      string `json:"status" validate:"omitempty,oneof=Open Closed"`
}

type UpdateJobInput struct {
	Title       *string `json:"title,omitempty"`
	Type        *string `json:"type,omitempty"`
	Location    *string `json:"location,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=Open Closed"`
}
