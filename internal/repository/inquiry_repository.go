package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"realty-service/internal/apperr"
	"realty-service/internal/model"
)

type InquiryRepository struct {
	db *gorm.DB
}

func NewInquiryRepository(db *gorm.DB) *InquiryRepository {
	return &InquiryRepository{db: db}
}

func (r *InquiryRepository) Create(ctx context.Context, in *model.Inquiry) error {
	if err := r.db.WithContext(ctx).Create(in).Error; err != nil {
		return fmt.Errorf("InquiryRepository.Create: %w", err)
	}
	return nil
}

// List returns a page of inquiries, newest first, with the total count.
func (r *InquiryRepository) List(ctx context.Context, limit, offset int) ([]model.Inquiry, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Inquiry{}).Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("InquiryRepository.List: count: %w", err)
	}

	var rows []model.Inquiry
	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("InquiryRepository.List: %w", err)
	}
	return rows, total, nil
}

func (r *InquiryRepository) GetByID(ctx context.Context, id uint) (*model.Inquiry, error) {
	var in model.Inquiry
	err := r.db.WithContext(ctx).First(&in, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("InquiryRepository.GetByID: %w", err)
	}
	return &in, nil
}

// MarkResolved flips the resolved flag on an inquiry.
func (r *InquiryRepository) MarkResolved(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).
		Model(&model.Inquiry{}).
		Where("id = ?", id).
		Update("resolved", true)
	if res.Error != nil {
		return fmt.Errorf("InquiryRepository.MarkResolved: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *InquiryRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Inquiry{}, id)
	if res.Error != nil {
		return fmt.Errorf("InquiryRepository.Delete: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
