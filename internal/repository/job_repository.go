package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"realty-service/internal/apperr"
	"realty-service/internal/model"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

// ListActive returns the postings shown on the public careers page.
func (r *JobRepository) ListActive(ctx context.Context) ([]model.Job, error) {
	var jobs []model.Job
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("JobRepository.ListActive: %w", err)
	}
	return jobs, nil
}

// ListAll returns every posting, inactive ones included, for the back office.
func (r *JobRepository) ListAll(ctx context.Context) ([]model.Job, error) {
	var jobs []model.Job
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("JobRepository.ListAll: %w", err)
	}
	return jobs, nil
}

func (r *JobRepository) GetByID(ctx context.Context, id uint) (*model.Job, error) {
	var j model.Job
	err := r.db.WithContext(ctx).First(&j, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("JobRepository.GetByID: %w", err)
	}
	return &j, nil
}

func (r *JobRepository) Create(ctx context.Context, j *model.Job) error {
	if err := r.db.WithContext(ctx).Create(j).Error; err != nil {
		return fmt.Errorf("JobRepository.Create: %w", err)
	}
	return nil
}

func (r *JobRepository) Update(ctx context.Context, j *model.Job) error {
	if err := r.db.WithContext(ctx).Save(j).Error; err != nil {
		return fmt.Errorf("JobRepository.Update: %w", err)
	}
	return nil
}

func (r *JobRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Job{}, id)
	if res.Error != nil {
		return fmt.Errorf("JobRepository.Delete: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
