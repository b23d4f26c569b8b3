package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"realty-service/internal/middleware"
	"realty-service/internal/model"
	"realty-service/internal/repository"
	"realty-service/internal/service"
)

const testSecret = "test-secret"

func setupRouter(t *testing.T) (*gin.Engine, *repository.ListingRepository) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Listing{}))

	repo := repository.NewListingRepository(db)
	svc := service.NewListingService(repo)

	r := gin.New()
	api := r.Group("/api")
	admin := api.Group("/")
	admin.Use(middleware.AdminOnly(testSecret))
	NewListingHandler(repo, svc).RegisterRoutes(api, admin)
	return r, repo
}

func adminToken(t *testing.T) string {
	claims := jwt.MapClaims{
		"sub":  1,
		"role": model.RoleAdmin,
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func createPayload(title string) []byte {
	body, _ := json.Marshal(map[string]interface{}{
		"title":           title,
		"region":          "Vasundhara",
		"transactionType": "Sell",
		"price":           2500000,
		"area":            1200,
		"bhk":             3,
		"amenities":       []string{"Gym", "Pool"},
	})
	return body
}

func doCreate(t *testing.T, r *gin.Engine, title string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/listings", bytes.NewReader(createPayload(title)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+adminToken(t))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSearchRejectsBadParams(t *testing.T) {
	r, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/listings?bhk=three", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "bhk", body["field"])
}

func TestSearchReturnsPageEnvelope(t *testing.T) {
	r, _ := setupRouter(t)
	require.Equal(t, http.StatusCreated, doCreate(t, r, "Luxury Villa").Code)

	req := httptest.NewRequest(http.MethodGet, "/api/listings?search=villa", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var page struct {
		Data  []model.Listing `json:"data"`
		Total int64           `json:"total"`
		Page  int             `json:"page"`
		Pages int             `json:"pages"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, int64(1), page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 1, page.Pages)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "luxury-villa", page.Data[0].Slug)
}

func TestCreateRequiresToken(t *testing.T) {
	r, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/listings", bytes.NewReader(createPayload("No Auth")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateAndDetailBySlug(t *testing.T) {
	r, _ := setupRouter(t)

	w := doCreate(t, r, "Sunset Apartments")
	require.Equal(t, http.StatusCreated, w.Code)
	var created model.Listing
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "sunset-apartments", created.Slug)

	// Same title again gets the suffixed slug.
	w = doCreate(t, r, "Sunset Apartments")
	require.Equal(t, http.StatusCreated, w.Code)
	var second model.Listing
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
	assert.Equal(t, "sunset-apartments-1", second.Slug)

	req := httptest.NewRequest(http.MethodGet, "/api/listings/sunset-apartments-1", nil)
	detail := httptest.NewRecorder()
	r.ServeHTTP(detail, req)
	require.Equal(t, http.StatusOK, detail.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/listings/no-such-slug", nil)
	missing := httptest.NewRecorder()
	r.ServeHTTP(missing, req)
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestCreateRejectsInvalidRegion(t *testing.T) {
	r, _ := setupRouter(t)

	body, _ := json.Marshal(map[string]interface{}{
		"title":           "Nice Flat",
		"region":          "Atlantis",
		"transactionType": "Sell",
		"price":           2500000,
		"area":            1200,
		"bhk":             3,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/listings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+adminToken(t))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "region", resp["field"])
}

func TestBulkDelete(t *testing.T) {
	r, repo := setupRouter(t)

	require.Equal(t, http.StatusCreated, doCreate(t, r, "First Flat").Code)
	require.Equal(t, http.StatusCreated, doCreate(t, r, "Second Flat").Code)

	first, err := repo.GetBySlug(context.Background(), "first-flat")
	require.NoError(t, err)

	body, _ := json.Marshal(map[string]interface{}{"ids": []uint{first.ID}})
	req := httptest.NewRequest(http.MethodPost, "/api/listings/bulk-delete", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+adminToken(t))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]int64
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp["deleted"])
}

func TestRegionsEndpoint(t *testing.T) {
	r, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/regions", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string][]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, model.Regions, resp["regions"])
}
