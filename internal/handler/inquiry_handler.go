package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"realty-service/internal/apperr"
	"realty-service/internal/model"
	"realty-service/internal/repository"
	"realty-service/internal/search"
)

// InquiryHandler takes contact-form submissions from visitors and lets the
// back office review them.
type InquiryHandler struct {
	Repo     *repository.InquiryRepository
	Listings *repository.ListingRepository
}

func NewInquiryHandler(repo *repository.InquiryRepository, listings *repository.ListingRepository) *InquiryHandler {
	return &InquiryHandler{Repo: repo, Listings: listings}
}

func (h *InquiryHandler) RegisterRoutes(api, admin *gin.RouterGroup) {
	api.POST("/inquiries", h.Create)

	admin.GET("/admin/inquiries", h.List)
	admin.PUT("/admin/inquiries/:id/resolve", h.Resolve)
	admin.DELETE("/admin/inquiries/:id", h.Delete)
}

// InquiryRequestDTO is the public contact-form payload.
type InquiryRequestDTO struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	Message   string `json:"message" binding:"required"`
	ListingID *uint  `json:"listingId"`
}

// POST /api/inquiries
func (h *InquiryHandler) Create(c *gin.Context) {
	var req InquiryRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if req.ListingID != nil {
		if _, err := h.Listings.GetByID(c.Request.Context(), *req.ListingID); err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "listing does not exist", "field": "listingId"})
				return
			}
			writeError(c, err)
			return
		}
	}

	inquiry := &model.Inquiry{
		Reference: uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
		ListingID: req.ListingID,
	}

	if err := h.Repo.Create(c.Request.Context(), inquiry); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"reference": inquiry.Reference})
}

// GET /api/admin/inquiries?limit=...&page=...
func (h *InquiryHandler) List(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer", "field": "limit"})
		return
	}
	pageNum, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || pageNum < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page must be a positive integer", "field": "page"})
		return
	}

	rows, total, err := h.Repo.List(c.Request.Context(), limit, (pageNum-1)*limit)
	if err != nil {
		writeError(c, err)
		return
	}
	if rows == nil {
		rows = []model.Inquiry{}
	}

	page, err := search.NewPage(rows, total, pageNum, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// PUT /api/admin/inquiries/:id/resolve
func (h *InquiryHandler) Resolve(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.Repo.MarkResolved(c.Request.Context(), uint(id)); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "resolved"})
}

// DELETE /api/admin/inquiries/:id
func (h *InquiryHandler) Delete(c *gin.Context) {
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
