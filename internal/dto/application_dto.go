package dto

type CreateApplicationInput struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required"`
	Resume      string `json:"resume" validate:"omitempty"`
	CoverLetter string `json:"coverLetter" validate:"omitempty"`
	JobID       string `json:"jobId" validate:"required,uuid"`
}

type UpdateApplicationStatusInput struct {
	Status string `json:"status" validate:"required,oneof=Pending Accepted Rejected"`
}
