package repository

import (
	"time"

	"github.com/hafizhramadhan/company-profile-api/internal/model"
	"gorm.io/gorm"
)

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db}
}

func (r *AdminRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Admin{}).Count(&count).Error
	return count, err
}

func (r *AdminRepository) FindByID(id string) (*model.Admin, error) {
	var admin model.Admin
	err := r.db.First(&admin, "id = ?", id).Error
	return &admin, err
}

func (r *AdminRepository) FindActiveByEmail(email string) (*model.Admin, error) {
	var admin model.Admin
	err := r.db.First(&admin, "email = ? AND is_active = ?", email, true).Error
	return &admin, err
}

// FindByUsernameOrEmail is the duplicate check used before creating
// an admin.
func (r *AdminRepository) FindByUsernameOrEmail(username, email string) (*model.Admin, error) {
	var admin model.Admin
	err := r.db.First(&admin, "username = ? OR email = ?", username, email).Error
	return &admin, err
}

func (r *AdminRepository) GetAll() ([]model.Admin, error) {
	admins := make([]model.Admin, 0)
	err := r.db.Order("created_at DESC, id DESC").Find(&admins).Error
	return admins, err
}

func (r *AdminRepository) Create(admin *model.Admin) error {
	return r.db.Create(admin).Error
}

func (r *AdminRepository) Update(id string, updates map[string]any) (*model.Admin, error) {
	var admin model.Admin
	if err := r.db.First(&admin, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := r.db.Model(&admin).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return &admin, nil
}

func (r *AdminRepository) UpdateLastLogin(id string, at time.Time) error {
	return r.db.Model(&model.Admin{}).Where("id = ?", id).Update("last_login", at).Error
}

func (r *AdminRepository) Delete(id string) error {
	res := r.db.Delete(&model.Admin{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
