package repository

import (
	"time"

	"github.com/hafizhramadhan/company-profile-api/internal/model"
	"gorm.io/gorm"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db}
}

func (r *JobRepository) List(page, limit int) ([]model.Job, int64, error) {
	var total int64
	if err := r.db.Model(&model.Job{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	jobs := make([]model.Job, 0, limit)
	offset := (page - 1) * limit
	err := r.db.Order("created_at ASC, id ASC").Offset(offset).Limit(limit).Find(&jobs).Error
	return jobs, total, err
}

func (r *JobRepository) FindByID(id string) (*model.Job, error) {
	var job model.Job
	err := r.db.First(&job, "id = ?", id).Error
	return &job, err
}

func (r *JobRepository) Create(job *model.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepository) Update(id string, updates map[string]any) (*model.Job, error) {
	var job model.Job
	if err := r.db.First(&job, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := r.db.Model(&job).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return &job, nil
}

// Delete removes the job and its applications in one transaction.
func (r *JobRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.Application{}, "job_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Job{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *JobRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Job{}).Count(&count).Error
	return count, err
}

func (r *JobRepository) CreationTimes(since time.Time) ([]time.Time, error) {
	var times []time.Time
	err := r.db.Model(&model.Job{}).Where("created_at >= ?", since).Pluck("created_at", &times).Error
	return times, err
}
