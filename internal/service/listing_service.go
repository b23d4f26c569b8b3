package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"realty-service/internal/apperr"
	"realty-service/internal/model"
	"realty-service/internal/repository"
)

// maxSlugRetries bounds how many duplicate-key losses a single write will
// absorb before giving up with a conflict. Each retry re-probes storage, so
// hitting the bound means the same title is being created concurrently at
// an unreasonable rate.
const maxSlugRetries = 5

// ListingService owns the write path for listings: field validation, slug
// assignment, and the retry loop around the unique index.
type ListingService struct {
	repo *repository.ListingRepository
}

func NewListingService(repo *repository.ListingRepository) *ListingService {
	return &ListingService{repo: repo}
}

// ListingPatch is a partial update; nil fields are left untouched.
type ListingPatch struct {
	Title           *string
	Description     *string
	Address         *string
	Region          *string
	PropertyType    *string
	TransactionType *string
	Furnishing      *string
	Price           *float64
	Area            *float64
	BHK             *int
	Floor           *int
	TotalFloors     *int
	Latitude        *float64
	Longitude       *float64
	Amenities       []string
	Images          []string
	NearbyPlaces    datatypes.JSONMap
	Featured        *bool
	Status          *string
}

// Create validates l, assigns a unique slug derived from the title and
// persists the listing. The slug is always computed here, never trusted
// from the caller. When a concurrent create wins the race for the same
// slug the unique index rejects the insert and the whole reserve+insert is
// retried with a fresh probe.
func (s *ListingService) Create(ctx context.Context, l *model.Listing) error {
	if l.Status == "" {
		l.Status = model.StatusActive
	}
	if err := validateListing(l); err != nil {
		return err
	}

	for attempt := 0; attempt < maxSlugRetries; attempt++ {
		slugVal, err := s.repo.ReserveSlug(ctx, l.Title, 0)
		if err != nil {
			return err
		}
		l.Slug = slugVal

		err = s.repo.Create(ctx, l)
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
	}
	return apperr.ErrSlugConflict
}

// Update applies a partial patch to the listing with the given id. The slug
// is recomputed only when the patch carries a title that differs from the
// stored one; resubmitting the same title leaves the slug alone.
func (s *ListingService) Update(ctx context.Context, id uint, patch ListingPatch) (*model.Listing, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	titleChanged := patch.Title != nil && *patch.Title != l.Title
	applyPatch(l, patch)

	if err := validateListing(l); err != nil {
		return nil, err
	}

	if !titleChanged {
		if err := s.repo.Update(ctx, l); err != nil {
			return nil, err
		}
		return l, nil
	}

	for attempt := 0; attempt < maxSlugRetries; attempt++ {
		slugVal, err := s.repo.ReserveSlug(ctx, l.Title, l.ID)
		if err != nil {
			return nil, err
		}
		l.Slug = slugVal

		err = s.repo.Update(ctx, l)
		if err == nil {
			return l, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
	}
	return nil, apperr.ErrSlugConflict
}

func applyPatch(l *model.Listing, p ListingPatch) {
	if p.Title != nil {
		l.Title = *p.Title
	}
	if p.Description != nil {
		l.Description = *p.Description
	}
	if p.Address != nil {
		l.Address = *p.Address
	}
	if p.Region != nil {
		l.Region = *p.Region
	}
	if p.PropertyType != nil {
		l.PropertyType = *p.PropertyType
	}
	if p.TransactionType != nil {
		l.TransactionType = *p.TransactionType
	}
	if p.Furnishing != nil {
		l.Furnishing = *p.Furnishing
	}
	if p.Price != nil {
		l.Price = *p.Price
	}
	if p.Area != nil {
		l.Area = *p.Area
	}
	if p.BHK != nil {
		l.BHK = *p.BHK
	}
	if p.Floor != nil {
		l.Floor = *p.Floor
	}
	if p.TotalFloors != nil {
		l.TotalFloors = *p.TotalFloors
	}
	if p.Latitude != nil {
		l.Latitude = *p.Latitude
	}
	if p.Longitude != nil {
		l.Longitude = *p.Longitude
	}
	if p.Amenities != nil {
		l.Amenities = p.Amenities
	}
	if p.Images != nil {
		l.Images = p.Images
	}
	if p.NearbyPlaces != nil {
		l.NearbyPlaces = p.NearbyPlaces
	}
	if p.Featured != nil {
		l.Featured = *p.Featured
	}
	if p.Status != nil {
		l.Status = *p.Status
	}
}

func validateListing(l *model.Listing) error {
	if strings.TrimSpace(l.Title) == "" {
		return apperr.Validation("title", "is required")
	}
	if l.Region == "" || !model.ValidRegion(l.Region) {
		return apperr.Validation("region", "must be one of the known regions")
	}
	if !model.ValidTransactionType(l.TransactionType) {
		return apperr.Validation("transactionType", "must be Rent, Sell or Sold")
	}
	if l.Furnishing != "" && !model.ValidFurnishing(l.Furnishing) {
		return apperr.Validation("furnishing", "must be Furnished, Semi-Furnished or Unfurnished")
	}
	if !model.ValidStatus(l.Status) {
		return apperr.Validation("status", "must be Active or Inactive")
	}
	if l.Price <= 0 {
		return apperr.Validation("price", "must be positive")
	}
	if l.Area <= 0 {
		return apperr.Validation("area", "must be positive")
	}
	if l.BHK < 1 {
		return apperr.Validation("bhk", "must be a positive integer")
	}
	return nil
}
