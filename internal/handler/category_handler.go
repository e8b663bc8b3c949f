package handler

import (
	"net/http"

	"evently/internal/service"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	service service.CategoryService
}

func NewCategoryHandler(service service.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

func (h *CategoryHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("categories", h.List)
		router.POST("categories", h.Create)
	}
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req CreateCategoryRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	created, err := h.service.Create(c, req.Name)
	if err != nil {
		handleError(c, err, "CreateCategory")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.service.List(c)
	if err != nil {
		handleError(c, err, "ListCategories")
		return
	}
	c.JSON(http.StatusOK, categories)
}
