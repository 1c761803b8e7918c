package repository

import (
	"github.com/hafizhramadhan/company-profile-api/internal/model"
	"gorm.io/gorm"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db}
}

func (r *ServiceRepository) List(page, limit int) ([]model.Service, int64, error) {
	var total int64
	if err := r.db.Model(&model.Service{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	services := make([]model.Service, 0, limit)
	offset := (page - 1) * limit
	err := r.db.Order("created_at ASC, id ASC").Offset(offset).Limit(limit).Find(&services).Error
	return services, total, err
}

func (r *ServiceRepository) FindByID(id string) (*model.Service, error) {
	var service model.Service
	err := r.db.First(&service, "id = ?", id).Error
	return &service, err
}

func (r *ServiceRepository) Create(service *model.Service) error {
	return r.db.Create(service).Error
}

func (r *ServiceRepository) Update(id string, updates map[string]any) (*model.Service, error) {
	var service model.Service
	if err := r.db.First(&service, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := r.db.Model(&service).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return &service, nil
}

func (r *ServiceRepository) Delete(id string) error {
	res := r.db.Delete(&model.Service{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ServiceRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Service{}).Count(&count).Error
	return count, err
}
