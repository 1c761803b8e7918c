package repository

import (
	"github.com/hafizhramadhan/company-profile-api/internal/model"
	"gorm.io/gorm"
)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db}
}

func (r *ContactRepository) List(page, limit int) ([]model.Contact, int64, error) {
	var total int64
	if err := r.db.Model(&model.Contact{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	contacts := make([]model.Contact, 0, limit)
	offset := (page - 1) * limit
	err := r.db.Order("created_at ASC, id ASC").Offset(offset).Limit(limit).Find(&contacts).Error
	return contacts, total, err
}

func (r *ContactRepository) FindByID(id string) (*model.Contact, error) {
	var contact model.Contact
	err := r.db.First(&contact, "id = ?", id).Error
	return &contact, err
}

func (r *ContactRepository) Create(contact *model.Contact) error {
	return r.db.Create(contact).Error
}

func (r *ContactRepository) Update(id string, updates map[string]any) (*model.Contact, error) {
	var contact model.Contact
	if err := r.db.First(&contact, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := r.db.Model(&contact).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return &contact, nil
}

func (r *ContactRepository) Delete(id string) error {
	res := r.db.Delete(&model.Contact{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ContactRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Contact{}).Count(&count).Error
	return count, err
}
