package repository

import (
	"github.com/hafizhramadhan/company-profile-api/internal/model"
	"gorm.io/gorm"
)

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db}
}

// withJob narrows the eager-loaded parent to the fields the admin
// panel renders.
func withJob(db *gorm.DB) *gorm.DB {
	return db.Select("id", "title")
}

func (r *ApplicationRepository) List(page, limit int) ([]model.Application, int64, error) {
	var total int64
	if err := r.db.Model(&model.Application{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	applications := make([]model.Application, 0, limit)
	offset := (page - 1) * limit
	err := r.db.Preload("Job", withJob).
		Order("created_at ASC, id ASC").Offset(offset).Limit(limit).
		Find(&applications).Error
	return applications, total, err
}

func (r *ApplicationRepository) FindByID(id string) (*model.Application, error) {
	var application model.Application
	err := r.db.Preload("Job", withJob).First(&application, "id = ?", id).Error
	return &application, err
}

func (r *ApplicationRepository) Create(application *model.Application) error {
	return r.db.Create(application).Error
}

func (r *ApplicationRepository) UpdateStatus(id, status string) (*model.Application, error) {
	var application model.Application
	if err := r.db.First(&application, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&application).Update("status", status).Error; err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

func (r *ApplicationRepository) Delete(id string) error {
	res := r.db.Delete(&model.Application{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ApplicationRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Application{}).Count(&count).Error
	return count, err
}
