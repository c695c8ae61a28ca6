package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"blogcms/api/internal/middleware"
	"blogcms/api/internal/models"
	"blogcms/api/internal/repository"
	"blogcms/api/internal/service"
)

type blogResponse struct {
	ID         string        `json:"id"`
	Title      string        `json:"title"`
	Content    string        `json:"content,omitempty"`
	Author     blogAuthor    `json:"author"`
	Category   blogCategory  `json:"category"`
	Status     string        `json:"status"`
	Featured   bool          `json:"featured"`
	Views      int64         `json:"views"`
	CoverImage string        `json:"coverImage"`
	Date       time.Time     `json:"date"`
}

type blogAuthor struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type blogCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func newBlogResponse(item models.BlogListItem, withContent bool) blogResponse {
	resp := blogResponse{
		ID:         item.ID,
		Title:      item.Title,
		Author:     blogAuthor{ID: item.AuthorID, Name: item.AuthorName, Email: item.AuthorEmail},
		Category:   blogCategory{ID: item.CategoryID, Name: item.CategoryName, Slug: item.CategorySlug},
		Status:     string(item.Status),
		Featured:   item.Featured,
		Views:      item.Views,
		CoverImage: item.CoverImage,
		Date:       item.CreatedAt,
	}
	if withContent {
		resp.Content = item.Content
	}
	return resp
}

type createBlogRequest struct {
	Title      string `json:"title" binding:"required"`
	Content    string `json:"content" binding:"required"`
	CategoryID string `json:"categoryId" binding:"required"`
	Featured   bool   `json:"featured"`
	CoverImage string `json:"coverImage"`
}

func (h HandlerSet) createBlog(c *gin.Context, draft bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Please authenticate"})
		return
	}

	var req createBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := service.BlogInput{
		Title:      req.Title,
		Content:    req.Content,
		CategoryID: req.CategoryID,
		AuthorID:   user.ID,
		Featured:   req.Featured,
		CoverImage: req.CoverImage,
	}

	var (
		blog models.Blog
		err  error
	)
	if draft {
		blog, err = h.blogService.SaveDraft(c.Request.Context(), input)
	} else {
		blog, err = h.blogService.Create(c.Request.Context(), input)
	}
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"blog": gin.H{
		"id":     blog.ID,
		"title":  blog.Title,
		"status": blog.Status,
	}})
}

func (h HandlerSet) CreateBlog(c *gin.Context) {
	h.createBlog(c, false)
}

func (h HandlerSet) SaveBlogDraft(c *gin.Context) {
	h.createBlog(c, true)
}

func (h HandlerSet) GetBlog(c *gin.Context) {
	item, err := h.blogService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"blog": newBlogResponse(item, true)})
}

func (h HandlerSet) IncrementBlogViews(c *gin.Context) {
	item, err := h.blogService.IncrementViews(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"blog": newBlogResponse(item, true)})
}

func (h HandlerSet) PublishBlog(c *gin.Context) {
	blog, err := h.blogService.Publish(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"blog": gin.H{
		"id":     blog.ID,
		"status": blog.Status,
	}})
}

type updateBlogRequest struct {
	Title      *string `json:"title"`
	Content    *string `json:"content"`
	CategoryID *string `json:"categoryId"`
	Featured   *bool   `json:"featured"`
	CoverImage *string `json:"coverImage"`
}

func (h HandlerSet) UpdateBlog(c *gin.Context) {
	var req updateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	blog, err := h.blogService.Update(c.Request.Context(), c.Param("id"), service.UpdateBlogInput{
		Title:      req.Title,
		Content:    req.Content,
		CategoryID: req.CategoryID,
		Featured:   req.Featured,
		CoverImage: req.CoverImage,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"blog": gin.H{
		"id":    blog.ID,
		"title": blog.Title,
	}})
}

func (h HandlerSet) DeleteBlog(c *gin.Context) {
	if err := h.blogService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListBlogs supports pagination, title search, category/status/featured and
// date-range filters, and `field:order` sorting.
func (h HandlerSet) ListBlogs(c *gin.Context) {
	filter := repository.BlogFilter{
		Search:     c.Query("search"),
		CategoryID: c.Query("categoryId"),
		Status:     c.Query("status"),
	}

	if featured := c.Query("featured"); featured != "" {
		if v, err := strconv.ParseBool(featured); err == nil {
			filter.Featured = &v
		}
	}
	if from := c.Query("createdAtFrom"); from != "" {
		if t, err := time.Parse(time.RFC3339, from); err == nil {
			filter.CreatedFrom = &t
		}
	}
	if to := c.Query("createdAtTo"); to != "" {
		if t, err := time.Parse(time.RFC3339, to); err == nil {
			filter.CreatedTo = &t
		}
	}

	sortBy := c.DefaultQuery("sortBy", "createdAt")
	order := c.DefaultQuery("orderBy", "desc")
	if parts := strings.SplitN(sortBy, ":", 2); len(parts) == 2 {
		sortBy, order = parts[0], parts[1]
	}
	filter.SortBy = sortBy
	filter.Order = order

	page := 1
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 && v <= 100 {
		filter.Limit = v
	}

	result, err := h.blogService.List(c.Request.Context(), filter, page)
	if err != nil {
		h.respondError(c, err)
		return
	}

	blogs := make([]blogResponse, 0, len(result.Items))
	for _, item := range result.Items {
		blogs = append(blogs, newBlogResponse(item, false))
	}

	c.JSON(http.StatusOK, gin.H{
		"blogs":        blogs,
		"page":         result.Page,
		"limit":        result.Limit,
		"totalPages":   result.TotalPages,
		"totalResults": result.TotalResults,
	})
}
