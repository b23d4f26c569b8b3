package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"realty-service/internal/apperr"
	"realty-service/internal/model"
	"realty-service/internal/search"
	"realty-service/internal/slug"
)

type ListingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

// Search runs the filter against the listings table and returns the page of
// rows plus the total match count. Ordering is fixed newest-first.
func (r *ListingRepository) Search(ctx context.Context, f search.Filter) ([]model.Listing, int64, error) {
	q := f.Apply(r.db.WithContext(ctx).Model(&model.Listing{})).Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("ListingRepository.Search: count: %w", err)
	}

	var rows []model.Listing
	err := q.Order("created_at DESC").
		Limit(f.Limit).
		Offset(f.Offset()).
		Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("ListingRepository.Search: %w", err)
	}
	return rows, total, nil
}

func (r *ListingRepository) GetByID(ctx context.Context, id uint) (*model.Listing, error) {
	var l model.Listing
	err := r.db.WithContext(ctx).First(&l, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ListingRepository.GetByID: %w", err)
	}
	return &l, nil
}

func (r *ListingRepository) GetBySlug(ctx context.Context, s string) (*model.Listing, error) {
	var l model.Listing
	err := r.db.WithContext(ctx).Where("slug = ?", s).First(&l).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ListingRepository.GetBySlug: %w", err)
	}
	return &l, nil
}

// SlugExists reports whether another listing already holds s. excludeID
// skips the listing being updated; pass 0 on create.
func (r *ListingRepository) SlugExists(ctx context.Context, s string, excludeID uint) (bool, error) {
	q := r.db.WithContext(ctx).Model(&model.Listing{}).Where("slug = ?", s)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("ListingRepository.SlugExists: %w", err)
	}
	return count > 0, nil
}

// ReserveSlug derives a slug from title and probes storage until it finds
// one no other listing holds, appending -1, -2, ... on collisions. The
// returned slug is collision-free at the time of the check; the unique
// index plus the duplicate-key retry in the service close the remaining
// race window.
func (r *ListingRepository) ReserveSlug(ctx context.Context, title string, excludeID uint) (string, error) {
	base := slug.Make(title)
	if base == "" {
		return "", apperr.Validation("title", "must contain at least one letter or digit")
	}
	candidate := base
	for counter := 1; ; counter++ {
		taken, err := r.SlugExists(ctx, candidate, excludeID)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
	}
}

func (r *ListingRepository) Create(ctx context.Context, l *model.Listing) error {
	if err := r.db.WithContext(ctx).Create(l).Error; err != nil {
		return fmt.Errorf("ListingRepository.Create: %w", err)
	}
	return nil
}

func (r *ListingRepository) Update(ctx context.Context, l *model.Listing) error {
	if err := r.db.WithContext(ctx).Save(l).Error; err != nil {
		return fmt.Errorf("ListingRepository.Update: %w", err)
	}
	return nil
}

func (r *ListingRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Listing{}, id)
	if res.Error != nil {
		return fmt.Errorf("ListingRepository.Delete: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// DeleteByIDs removes every listing in ids and returns how many rows went.
func (r *ListingRepository) DeleteByIDs(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Delete(&model.Listing{}, ids)
	if res.Error != nil {
		return 0, fmt.Errorf("ListingRepository.DeleteByIDs: %w", res.Error)
	}
	return res.RowsAffected, nil
}
