package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"realty-service/internal/model"
	"realty-service/internal/repository"
	"realty-service/internal/search"
	"realty-service/internal/service"
)

// ListingHandler manages the catalog endpoints: public search and detail,
// admin create/update/delete.
type ListingHandler struct {
	Repo *repository.ListingRepository
	Svc  *service.ListingService
}

func NewListingHandler(repo *repository.ListingRepository, svc *service.ListingService) *ListingHandler {
	return &ListingHandler{Repo: repo, Svc: svc}
}

// RegisterRoutes wires the public catalog routes onto api and the write
// routes onto admin (which carries the JWT guard).
func (h *ListingHandler) RegisterRoutes(api, admin *gin.RouterGroup) {
	api.GET("/listings", h.Search)
	api.GET("/listings/:slug", h.GetBySlug)
	api.GET("/regions", h.Regions)

	admin.POST("/listings", h.Create)
	admin.PUT("/listings/:id", h.Update)
	admin.DELETE("/listings/:id", h.Delete)
	admin.POST("/listings/bulk-delete", h.BulkDelete)
}

// GET /api/listings?region=...&transactionType=...&minPrice=...&page=...
func (h *ListingHandler) Search(c *gin.Context) {
	params := map[string]string{}
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}

	f, err := search.ParseParams(params)
	if err != nil {
		writeError(c, err)
		return
	}

	rows, total, err := h.Repo.Search(c.Request.Context(), f)
	if err != nil {
		writeError(c, err)
		return
	}
	if rows == nil {
		rows = []model.Listing{}
	}

	page, err := search.NewPage(rows, total, f.Page, f.Limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GET /api/listings/:slug
func (h *ListingHandler) GetBySlug(c *gin.Context) {
	listing, err := h.Repo.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, listing)
}

// GET /api/regions
func (h *ListingHandler) Regions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"regions": model.Regions})
}

// CreateListingRequestDTO carries the fields a client may set on create.
// Slug is deliberately absent; it is always derived server-side.
type CreateListingRequestDTO struct {
	Title           string                 `json:"title" binding:"required"`
	Description     string                 `json:"description"`
	Address         string                 `json:"address"`
	Region          string                 `json:"region" binding:"required"`
	PropertyType    string                 `json:"propertyType"`
	TransactionType string                 `json:"transactionType" binding:"required"`
	Furnishing      string                 `json:"furnishing"`
	Price           float64                `json:"price" binding:"required"`
	Area            float64                `json:"area" binding:"required"`
	BHK             int                    `json:"bhk" binding:"required"`
	Floor           int                    `json:"floor"`
	TotalFloors     int                    `json:"totalFloors"`
	Latitude        float64                `json:"latitude"`
	Longitude       float64                `json:"longitude"`
	Amenities       []string               `json:"amenities"`
	Images          []string               `json:"images"`
	NearbyPlaces    map[string]interface{} `json:"nearbyPlaces"`
	Featured        bool                   `json:"featured"`
	Status          string                 `json:"status"`
}

// POST /api/listings
func (h *ListingHandler) Create(c *gin.Context) {
	var req CreateListingRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	listing := &model.Listing{
		Title:           req.Title,
		Description:     req.Description,
		Address:         req.Address,
		Region:          req.Region,
		PropertyType:    req.PropertyType,
		TransactionType: req.TransactionType,
		Furnishing:      req.Furnishing,
		Price:           req.Price,
		Area:            req.Area,
		BHK:             req.BHK,
		Floor:           req.Floor,
		TotalFloors:     req.TotalFloors,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		Amenities:       req.Amenities,
		Images:          req.Images,
		NearbyPlaces:    datatypes.JSONMap(req.NearbyPlaces),
		Featured:        req.Featured,
		Status:          req.Status,
	}

	if err := h.Svc.Create(c.Request.Context(), listing); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, listing)
}

// UpdateListingRequestDTO is a partial update; only the fields present in
// the JSON body are applied.
type UpdateListingRequestDTO struct {
	Title           *string                `json:"title"`
	Description     *string                `json:"description"`
	Address         *string                `json:"address"`
	Region          *string                `json:"region"`
	PropertyType    *string                `json:"propertyType"`
	TransactionType *string                `json:"transactionType"`
	Furnishing      *string                `json:"furnishing"`
	Price           *float64               `json:"price"`
	Area            *float64               `json:"area"`
	BHK             *int                   `json:"bhk"`
	Floor           *int                   `json:"floor"`
	TotalFloors     *int                   `json:"totalFloors"`
	Latitude        *float64               `json:"latitude"`
	Longitude       *float64               `json:"longitude"`
	Amenities       []string               `json:"amenities"`
	Images          []string               `json:"images"`
	NearbyPlaces    map[string]interface{} `json:"nearbyPlaces"`
	Featured        *bool                  `json:"featured"`
	Status          *string                `json:"status"`
}

// PUT /api/listings/:id
func (h *ListingHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req UpdateListingRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	patch := service.ListingPatch{
		Title:           req.Title,
		Description:     req.Description,
		Address:         req.Address,
		Region:          req.Region,
		PropertyType:    req.PropertyType,
		TransactionType: req.TransactionType,
		Furnishing:      req.Furnishing,
		Price:           req.Price,
		Area:            req.Area,
		BHK:             req.BHK,
		Floor:           req.Floor,
		TotalFloors:     req.TotalFloors,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		Amenities:       req.Amenities,
		Images:          req.Images,
		NearbyPlaces:    datatypes.JSONMap(req.NearbyPlaces),
		Featured:        req.Featured,
		Status:          req.Status,
	}

	listing, err := h.Svc.Update(c.Request.Context(), uint(id), patch)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, listing)
}

// DELETE /api/listings/:id
func (h *ListingHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.Repo.Delete(c.Request.Context(), uint(id)); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// BulkDeleteRequestDTO carries the id list for bulk removal.
type BulkDeleteRequestDTO struct {
	IDs []uint `json:"ids" binding:"required,min=1"`
}

// POST /api/listings/bulk-delete
func (h *ListingHandler) BulkDelete(c *gin.Context) {
	var req BulkDeleteRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	deleted, err := h.Repo.DeleteByIDs(c.Request.Context(), req.IDs)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
