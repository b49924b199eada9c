package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/MAyankprine20001/Penta-Cabs/models"
	"github.com/MAyankprine20001/Penta-Cabs/repository"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type SEOController struct {
	Repo repository.SEORepo
}

func NewSEOController(repo repository.SEORepo) *SEOController {
	return &SEOController{Repo: repo}
}

// ListEntries handles GET /api/seo.
func (sc *SEOController) ListEntries(c *gin.Context) {
	entries, err := sc.Repo.List(c.Request.Context())
	if err != nil {
		zap.L().Error("SEO list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch SEO data"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": entries})
}

// GetEntry handles GET /api/seo/:page.
func (sc *SEOController) GetEntry(c *gin.Context) {
	entry, err := sc.Repo.Get(c.Request.Context(), c.Param("page"))
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "SEO data not found for this page"})
		return
	}
	if err != nil {
		zap.L().Error("SEO fetch failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch SEO data"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": entry})
}

type seoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
}

// UpsertEntry handles PUT /api/seo/:page. Creates the entry if the page has
// no metadata yet.
func (sc *SEOController) UpsertEntry(c *gin.Context) {
	var req seoRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Title is required"})
		return
	}

	entry := models.SEOEntry{
		Page:        c.Param("page"),
		Title:       req.Title,
		Description: req.Description,
		Keywords:    req.Keywords,
		UpdatedAt:   time.Now().UTC(),
	}
	if err := sc.Repo.Upsert(c.Request.Context(), &entry); err != nil {
		zap.L().Error("SEO upsert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save SEO data"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "SEO data saved successfully", "data": entry})
}

// DeleteEntry handles DELETE /api/seo/:page.
func (sc *SEOController) DeleteEntry(c *gin.Context) {
	deleted, err := sc.Repo.Delete(c.Request.Context(), c.Param("page"))
	if err != nil {
		zap.L().Error("SEO delete failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete SEO data"})
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "SEO data not found for this page"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "SEO data deleted successfully"})
}
