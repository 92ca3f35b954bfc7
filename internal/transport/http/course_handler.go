package handlers

import (
	"net/http"
	"strconv"

	"coursemarket/internal/application/usecase"
	"coursemarket/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CourseHandler struct {
	catalog *usecase.CatalogUseCase
	reviews *usecase.ReviewUseCase
}

func NewCourseHandler(catalog *usecase.CatalogUseCase, reviews *usecase.ReviewUseCase) *CourseHandler {
	return &CourseHandler{catalog: catalog, reviews: reviews}
}

func (h *CourseHandler) List(c *gin.Context) {
	search := c.Query("search")
	category := c.Query("category")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	courses, total, err := h.catalog.List(c, search, category, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch courses"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"courses": courses,
		"total":   total,
	})
}

func (h *CourseHandler) GetOne(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course id"})
		return
	}

	course, err := h.catalog.GetByID(c, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, course)
}

func (h *CourseHandler) ListReviews(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course id"})
		return
	}

	reviews, err := h.reviews.ListByCourse(c, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *CourseHandler) Create(c *gin.Context) {
	var req struct {
		Title           string  `json:"title" binding:"required"`
		Description     string  `json:"description"`
		LongDescription string  `json:"long_description"`
		Price           int     `json:"price" binding:"min=0"`
		Category        string  `json:"category"`
		ImageURL        string  `json:"image_url"`
		TotalLectures   int     `json:"total_lectures" binding:"min=0"`
		DurationHours   float64 `json:"duration_hours" binding:"min=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	course := &domain.Course{
		Title:           req.Title,
		Description:     req.Description,
		LongDescription: req.LongDescription,
		Price:           req.Price,
		Category:        req.Category,
		ImageURL:        req.ImageURL,
		TotalLectures:   req.TotalLectures,
		DurationHours:   req.DurationHours,
	}
	if err := h.catalog.Create(c, course); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create course"})
		return
	}

	c.JSON(http.StatusCreated, course)
}

func (h *CourseHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course id"})
		return
	}

	if err := h.catalog.Delete(c, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete course"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Course deleted"})
}
