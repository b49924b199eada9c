package controllers

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/MAyankprine20001/Penta-Cabs/repository"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// parsePageLimit reads ?page= and ?limit= with the original defaults (1, 10).
func parsePageLimit(c *gin.Context) (page, limit, skip int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err = strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		limit = 10
	}
	return page, limit, (page - 1) * limit
}

// buildPagination shapes the pagination block used by the catalog listings.
// totalField is the legacy name of the total count ("totalServices",
// "totalRoutes", ...), preserved per endpoint.
func buildPagination(total int64, page, limit int, totalField string) gin.H {
	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	return gin.H{
		"currentPage": page,
		"totalPages":  totalPages,
		totalField:    total,
		"hasNext":     page < totalPages,
		"hasPrev":     page > 1,
	}
}

// respondRepoError maps repository failures to the original error responses:
// bad ids and missing documents get the caller-facing message, everything
// else is logged and hidden behind a 500.
func respondRepoError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, repository.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": notFoundMsg})
	case errors.Is(err, mongo.ErrNoDocuments):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
	default:
		zap.L().Error("Repository error", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
	}
}
