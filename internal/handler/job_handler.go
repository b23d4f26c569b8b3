package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"realty-service/internal/model"
	"realty-service/internal/repository"
)

// JobHandler serves the public careers board and its back-office CRUD.
type JobHandler struct {
	Repo *repository.JobRepository
}

func NewJobHandler(repo *repository.JobRepository) *JobHandler {
	return &JobHandler{Repo: repo}
}

func (h *JobHandler) RegisterRoutes(api, admin *gin.RouterGroup) {
	api.GET("/jobs", h.ListActive)

	admin.GET("/admin/jobs", h.ListAll)
	admin.POST("/jobs", h.Create)
	admin.PUT("/jobs/:id", h.Update)
	admin.DELETE("/jobs/:id", h.Delete)
}

// GET /api/jobs
func (h *JobHandler) ListActive(c *gin.Context) {
	jobs, err := h.Repo.ListActive(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if jobs == nil {
		jobs = []model.Job{}
	}
	c.JSON(http.StatusOK, jobs)
}

// GET /api/admin/jobs
func (h *JobHandler) ListAll(c *gin.Context) {
	jobs, err := h.Repo.ListAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if jobs == nil {
		jobs = []model.Job{}
	}
	c.JSON(http.StatusOK, jobs)
}

// JobRequestDTO is the payload for creating or replacing a posting.
type JobRequestDTO struct {
	Title       string `json:"title" binding:"required"`
	Department  string `json:"department"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Active      *bool  `json:"active"`
}

// POST /api/jobs
func (h *JobHandler) Create(c *gin.Context) {
	var req JobRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if req.Type == "" {
		req.Type = model.JobFullTime
	}
	if !model.ValidJobType(req.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be Full-Time, Part-Time or Contract", "field": "type"})
		return
	}

	job := &model.Job{
		Title:       req.Title,
		Department:  req.Department,
		Location:    req.Location,
		Type:        req.Type,
		Description: req.Description,
		Active:      true,
	}
	if req.Active != nil {
		job.Active = *req.Active
	}

	if err := h.Repo.Create(c.Request.Context(), job); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

// PUT /api/jobs/:id
func (h *JobHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req JobRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	job, err := h.Repo.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		writeError(c, err)
		return
	}

	job.Title = req.Title
	job.Department = req.Department
	job.Location = req.Location
	job.Description = req.Description
	if req.Type != "" {
		if !model.ValidJobType(req.Type) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "type must be Full-Time, Part-Time or Contract", "field": "type"})
			return
		}
		job.Type = req.Type
	}
	if req.Active != nil {
		job.Active = *req.Active
	}

	if err := h.Repo.Update(c.Request.Context(), job); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// DELETE /api/jobs/:id
func (h *JobHandler) Delete(c *gin.Context) {
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
