package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pagecraft/backend/internal/domain"
)

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	store domain.PageStore
}

// NewHandler creates a new HTTP handler over a page store.
func NewHandler(store domain.PageStore) *Handler {
	return &Handler{store: store}
}

// HealthCheck returns the health status of the API.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "pagecraft-backend",
		"version": "1.0.0",
	})
}

// GetData returns every generated artifact in one payload.
func (h *Handler) GetData(c *gin.Context) {
	result, err := h.store.LoadRun(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"questions":     result.Questions,
		"faq":           result.FAQ,
		"product_pages": result.ProductPages,
		"comparison":    result.Comparison,
	})
}

// GetQuestions returns the generated question bank.
func (h *Handler) GetQuestions(c *gin.Context) {
	result, err := h.store.LoadRun(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "questions": result.Questions})
}

// GetFAQ returns the generated FAQ page.
func (h *Handler) GetFAQ(c *gin.Context) {
	result, err := h.store.LoadRun(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "faq": result.FAQ})
}

// GetProductPage returns one generated product page by 1-based index.
func (h *Handler) GetProductPage(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 1 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "index must be a positive integer",
		})
		return
	}

	result, err := h.store.LoadRun(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if index > len(result.ProductPages) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "product page not found",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "product_page": result.ProductPages[index-1]})
}

// GetComparison returns the generated comparison page.
func (h *Handler) GetComparison(c *gin.Context) {
	result, err := h.store.LoadRun(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if result.Comparison == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "no comparison was generated for this run",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "comparison": result.Comparison})
}

// respondError maps store errors to HTTP responses. Missing artifacts are a
// 404 with a hint, not a server error.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, domain.ErrPageNotFound) {
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{
		"success": false,
		"error":   err.Error(),
	})
}
