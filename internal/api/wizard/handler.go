package wizard

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/liliang-cn/datagenie/internal/domain"
	"github.com/liliang-cn/datagenie/internal/service"
)

// Handler handles wizard API requests
type Handler struct {
	wizardService *service.WizardService
}

// NewHandler creates a new wizard handler
func NewHandler(wizardService *service.WizardService) *Handler {
	return &Handler{wizardService: wizardService}
}

// RegisterRoutes registers wizard routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("", h.CreateProblem)
	r.GET("/active", h.GetActiveProblem)
	r.GET("/:id", h.GetProblem)
	r.GET("/:id/questions", h.GetQuestions)
	r.PUT("/:id/answers", h.UpdateAnswer)
}

// CreateProblem starts a new session from a problem description
func (h *Handler) CreateProblem(c *gin.Context) {
	var req domain.CreateProblemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp := h.wizardService.CreateProblem(req.Problem)
	c.JSON(http.StatusCreated, resp)
}

// GetActiveProblem returns the session the active pointer names
func (h *Handler) GetActiveProblem(c *gin.Context) {
	resp, err := h.wizardService.ActiveProblem()
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no active problem"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetProblem returns one session by id
func (h *Handler) GetProblem(c *gin.Context) {
	resp, err := h.wizardService.Problem(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "problem not found"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetQuestions returns the follow-up sequence for a session's intent
func (h *Handler) GetQuestions(c *gin.Context) {
	questions, err := h.wizardService.Questions(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "problem not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"questions": questions})
}

// UpdateAnswer writes one answer and returns the refreshed session view
func (h *Handler) UpdateAnswer(c *gin.Context) {
	var req domain.UpdateAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.wizardService.UpdateAnswer(c.Param("id"), req.Key, req.Value)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "problem not found"})
		case errors.Is(err, domain.ErrInvalidAnswerKey):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
