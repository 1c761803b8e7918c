package repository

import (
	"time"

	"github.com/hafizhramadhan/company-profile-api/internal/model"
	"gorm.io/gorm"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db}
}

func (r *ProjectRepository) List(page, limit int) ([]model.Project, int64, error) {
	var total int64
	if err := r.db.Model(&model.Project{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	projects := make([]model.Project, 0, limit)
	offset := (page - 1) * limit
	err := r.db.Order("created_at ASC, id ASC").Offset(offset).Limit(limit).Find(&projects).Error
	return projects, total, err
}

func (r *ProjectRepository) FindByID(id string) (*model.Project, error) {
	var project model.Project
	err := r.db.First(&project, "id = ?", id).Error
	return &project, err
}

func (r *ProjectRepository) Create(project *model.Project) error {
	return r.db.Create(project).Error
}

func (r *ProjectRepository) Update(id string, updates map[string]any) (*model.Project, error) {
	var project model.Project
	if err := r.db.First(&project, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := r.db.Model(&project).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return &project, nil
}

func (r *ProjectRepository) Delete(id string) error {
	res := r.db.Delete(&model.Project{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ProjectRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Project{}).Count(&count).Error
	return count, err
}

func (r *ProjectRepository) CreationTimes(since time.Time) ([]time.Time, error) {
	var times []time.Time
	err := r.db.Model(&model.Project{}).Where("created_at >= ?", since).Pluck("created_at", &times).Error
	return times, err
}
