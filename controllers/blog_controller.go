package controllers

import (
	"errors"
	"net/http"
	"regexp"
	"time"

	"github.com/MAyankprine20001/Penta-Cabs/models"
	"github.com/MAyankprine20001/Penta-Cabs/repository"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type BlogController struct {
	Repo repository.BlogRepo
}

func NewBlogController(repo repository.BlogRepo) *BlogController {
	return &BlogController{Repo: repo}
}

var htmlTagRe = regexp.MustCompile(`<[^>]*>`)

// deriveExcerpt strips markup from the content and truncates it the way the
// admin dashboard expects.
func deriveExcerpt(content string) string {
	plain := htmlTagRe.ReplaceAllString(content, "")
	runes := []rune(plain)
	if len(runes) > 150 {
		runes = runes[:150]
	}
	return string(runes) + "..."
}

// ListBlogs handles GET /blogs with status filter, search and pagination.
func (bc *BlogController) ListBlogs(c *gin.Context) {
	page, limit, skip := parsePageLimit(c)
	status := c.Query("status")
	search := c.Query("search")

	blogs, total, err := bc.Repo.List(c.Request.Context(), status, search, limit, skip)
	if err != nil {
		zap.L().Error("Blog list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch blogs"})
		return
	}

	totalPages := (total + int64(limit) - 1) / int64(limit)
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"data":        blogs,
		"total":       total,
		"totalPages":  totalPages,
		"currentPage": page,
		"limit":       limit,
	})
}

// GetBlog handles GET /blogs/:id.
func (bc *BlogController) GetBlog(c *gin.Context) {
	blog, err := bc.Repo.FindByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Blog post not found"})
		return
	}
	if err != nil {
		zap.L().Error("Blog fetch failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch blog"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": blog})
}

type blogRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Excerpt string   `json:"excerpt"`
	Author  string   `json:"author"`
	Status  string   `json:"status"`
	Tags    []string `json:"tags"`
}

// CreateBlog handles POST /blogs.
func (bc *BlogController) CreateBlog(c *gin.Context) {
	var req blogRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Title == "" || req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Title and content are required"})
		return
	}

	now := time.Now().UTC()
	blog := models.Blog{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Content:   req.Content,
		Excerpt:   req.Excerpt,
		Author:    req.Author,
		Status:    req.Status,
		Tags:      req.Tags,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if blog.Excerpt == "" {
		blog.Excerpt = deriveExcerpt(req.Content)
	}
	if blog.Author == "" {
		blog.Author = "Admin"
	}
	if blog.Status == "" {
		blog.Status = models.BlogDraft
	}
	if blog.Tags == nil {
		blog.Tags = []string{}
	}
	if blog.Status == models.BlogPublished {
		blog.PublishedAt = now.Format("2006-01-02")
	}

	if err := bc.Repo.Insert(c.Request.Context(), &blog); err != nil {
		zap.L().Error("Blog insert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create blog post"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Blog post created successfully",
		"data":    blog,
	})
}

// UpdateBlog handles PUT /blogs/:id. Empty fields keep their stored values,
// matching the original dashboard behavior.
func (bc *BlogController) UpdateBlog(c *gin.Context) {
	var req blogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	existing, err := bc.Repo.FindByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Blog post not found"})
		return
	}
	if err != nil {
		zap.L().Error("Blog fetch failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update blog post"})
		return
	}

	updates := map[string]interface{}{}
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Content != "" {
		updates["content"] = req.Content
	}
	if req.Excerpt != "" {
		updates["excerpt"] = req.Excerpt
	}
	if req.Author != "" {
		updates["author"] = req.Author
	}
	if req.Tags != nil {
		updates["tags"] = req.Tags
	}
	if req.Status != "" {
		updates["status"] = req.Status
		if req.Status == models.BlogPublished && existing.Status != models.BlogPublished {
			updates["publishedAt"] = time.Now().UTC().Format("2006-01-02")
		}
	}

	blog, err := bc.Repo.Update(c.Request.Context(), c.Param("id"), updates)
	if err != nil {
		zap.L().Error("Blog update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update blog post"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Blog post updated successfully",
		"data":    blog,
	})
}

// DeleteBlog handles DELETE /blogs/:id.
func (bc *BlogController) DeleteBlog(c *gin.Context) {
	deleted, err := bc.Repo.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		zap.L().Error("Blog delete failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete blog post"})
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Blog post not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Blog post deleted successfully"})
}

type blogStatusRequest struct {
	Status string `json:"status"`
}

// ToggleStatus handles PATCH /blogs/:id/status (publish/unpublish).
func (bc *BlogController) ToggleStatus(c *gin.Context) {
	var req blogStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || (req.Status != models.BlogDraft && req.Status != models.BlogPublished) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid status"})
		return
	}

	updates := map[string]interface{}{"status": req.Status}
	if req.Status == models.BlogPublished {
		updates["publishedAt"] = time.Now().UTC().Format("2006-01-02")
	}

	blog, err := bc.Repo.Update(c.Request.Context(), c.Param("id"), updates)
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Blog post not found"})
		return
	}
	if err != nil {
		zap.L().Error("Blog status update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update blog status"})
		return
	}

	msg := "Blog post unpublished successfully"
	if req.Status == models.BlogPublished {
		msg = "Blog post published successfully"
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": msg, "data": blog})
}
