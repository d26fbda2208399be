package community

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/liliang-cn/datagenie/internal/domain"
	"github.com/liliang-cn/datagenie/internal/service"
)

// Handler handles catalog and community API requests
type Handler struct {
	communityService *service.CommunityService
}

// NewHandler creates a new community handler
func NewHandler(communityService *service.CommunityService) *Handler {
	return &Handler{communityService: communityService}
}

// RegisterRoutes registers catalog and community routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	datasets := r.Group("/datasets")
	{
		datasets.GET("", h.ListDatasets)
		datasets.GET("/search", h.SearchDatasets)
		datasets.GET("/:id", h.GetDataset)
		datasets.GET("/:id/rating", h.GetRating)
		datasets.POST("/:id/download", h.RecordDownload)
	}

	reviews := r.Group("/reviews")
	{
		reviews.GET("", h.ListReviews)
		reviews.POST("", h.AddReview)
	}

	r.GET("/usecases", h.ListUseCases)
}

// ListDatasets returns the full catalog
func (h *Handler) ListDatasets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"datasets": h.communityService.Datasets()})
}

// SearchDatasets filters the catalog by comma-separated tags
func (h *Handler) SearchDatasets(c *gin.Context) {
	raw := c.Query("tags")
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}

	c.JSON(http.StatusOK, gin.H{"datasets": h.communityService.SearchDatasets(tags)})
}

// GetDataset returns one catalog entry
func (h *Handler) GetDataset(c *gin.Context) {
	ds, err := h.communityService.Dataset(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "dataset not found"})
		return
	}

	c.JSON(http.StatusOK, ds)
}

// GetRating returns the rating aggregate and average for a dataset
func (h *Handler) GetRating(c *gin.Context) {
	rating, average := h.communityService.DatasetRating(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{
		"average": average,
		"count":   rating.Count,
	})
}

// RecordDownload bumps the download counter for a dataset
func (h *Handler) RecordDownload(c *gin.Context) {
	count, err := h.communityService.RecordDownload(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "dataset not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"downloads": count})
}

// ListReviews lists reviews, optionally filtered by ?dataset=
func (h *Handler) ListReviews(c *gin.Context) {
	reviews := h.communityService.Reviews(c.Query("dataset"))
	if reviews == nil {
		reviews = []domain.Review{}
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// AddReview appends a community review
func (h *Handler) AddReview(c *gin.Context) {
	var req domain.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.communityService.AddReview(domain.Review{
		DatasetID: req.DatasetID,
		Stars:     req.Stars,
		Title:     req.Title,
		Body:      req.Body,
		Author:    req.Author,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "dataset not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "ok"})
}

// ListUseCases returns the demo success stories
func (h *Handler) ListUseCases(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"usecases": h.communityService.UseCases()})
}
