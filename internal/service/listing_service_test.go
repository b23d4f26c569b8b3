package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"realty-service/internal/apperr"
	"realty-service/internal/model"
	"realty-service/internal/repository"
)

func setupService(t *testing.T) *ListingService {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Listing{}))
	return NewListingService(repository.NewListingRepository(db))
}

func validListing(title string) *model.Listing {
	return &model.Listing{
		Title:           title,
		Region:          "Vasundhara",
		TransactionType: model.TransactionSell,
		Price:           2500000,
		Area:            1200,
		BHK:             3,
	}
}

func TestCreateAssignsSlug(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	l := validListing("Sunset Apartments")
	require.NoError(t, svc.Create(ctx, l))
	assert.Equal(t, "sunset-apartments", l.Slug)
	assert.Equal(t, model.StatusActive, l.Status)
	assert.NotZero(t, l.ID)
}

func TestCreateDuplicateTitleSuffixes(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	first := validListing("Sunset Apartments")
	second := validListing("Sunset Apartments")
	require.NoError(t, svc.Create(ctx, first))
	require.NoError(t, svc.Create(ctx, second))

	assert.Equal(t, "sunset-apartments", first.Slug)
	assert.Equal(t, "sunset-apartments-1", second.Slug)
}

func TestCreateIgnoresClientSlug(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	l := validListing("Sunset Apartments")
	l.Slug = "hand-picked-slug"
	require.NoError(t, svc.Create(ctx, l))
	assert.Equal(t, "sunset-apartments", l.Slug)
}

func TestUpdateUnchangedTitleKeepsSlug(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	first := validListing("Sunset Apartments")
	second := validListing("Sunset Apartments")
	require.NoError(t, svc.Create(ctx, first))
	require.NoError(t, svc.Create(ctx, second))
	require.Equal(t, "sunset-apartments-1", second.Slug)

	// Resubmitting the same title must not re-slug; otherwise the second
	// listing would churn to sunset-apartments-2 on every save.
	title := "Sunset Apartments"
	updated, err := svc.Update(ctx, second.ID, ListingPatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "sunset-apartments-1", updated.Slug)
}

func TestUpdateChangedTitleReslugs(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	l := validListing("Sunset Apartments")
	require.NoError(t, svc.Create(ctx, l))

	title := "Sunrise Apartments"
	updated, err := svc.Update(ctx, l.ID, ListingPatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "sunrise-apartments", updated.Slug)
}

func TestUpdatePartialPatch(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	l := validListing("Sunset Apartments")
	l.Description = "original description"
	require.NoError(t, svc.Create(ctx, l))

	price := 3500000.0
	updated, err := svc.Update(ctx, l.ID, ListingPatch{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 3500000.0, updated.Price)
	assert.Equal(t, "original description", updated.Description)
	assert.Equal(t, "sunset-apartments", updated.Slug)
}

func TestUpdateMissingListing(t *testing.T) {
	svc := setupService(t)
	_, err := svc.Update(context.Background(), 404, ListingPatch{})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCreateValidation(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	cases := map[string]*model.Listing{
		"empty title": func() *model.Listing {
			l := validListing("   ")
			return l
		}(),
		"symbol-only title": validListing("!!!"),
		"unknown region": func() *model.Listing {
			l := validListing("Nice Flat")
			l.Region = "Atlantis"
			return l
		}(),
		"bad transaction type": func() *model.Listing {
			l := validListing("Nice Flat")
			l.TransactionType = "Lease"
			return l
		}(),
		"bad furnishing": func() *model.Listing {
			l := validListing("Nice Flat")
			l.Furnishing = "Partly"
			return l
		}(),
		"zero price": func() *model.Listing {
			l := validListing("Nice Flat")
			l.Price = 0
			return l
		}(),
		"negative area": func() *model.Listing {
			l := validListing("Nice Flat")
			l.Area = -10
			return l
		}(),
		"zero bhk": func() *model.Listing {
			l := validListing("Nice Flat")
			l.BHK = 0
			return l
		}(),
	}

	for name, l := range cases {
		err := svc.Create(ctx, l)
		require.Error(t, err, name)
		assert.True(t, apperr.IsValidation(err), "%s: expected ValidationError, got %v", name, err)
	}
}

func TestUpdateValidation(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	l := validListing("Sunset Apartments")
	require.NoError(t, svc.Create(ctx, l))

	badStatus := "Archived"
	_, err := svc.Update(ctx, l.ID, ListingPatch{Status: &badStatus})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}
