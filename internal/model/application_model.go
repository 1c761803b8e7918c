package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ApplicationStatusPending  = "Pending"
	ApplicationStatusAccepted = "Accepted"
	ApplicationStatusRejected = "Rejected"
)

type Application struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Email       string    `gorm:"type:varchar(255);not null" json:"email"`
	Phone       string    `gorm:"type:varchar(50);not null" json:"phone"`
	Resume      string    `gorm:"type:varchar(500)" json:"resume"` // URL or file path
	CoverLetter string    `gorm:"type:text" json:"coverLetter"`
	JobID       uuid.UUID `gorm:"type:uuid;not null;index" json:"jobId"`
	Job         *Job      `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"job,omitempty"`
	Status      string    `gorm:"type:varchar(20);default:Pending" json:"status"` // Pending | Accepted | Rejected
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (a *Application) TableName() string {
	return "applications"
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
