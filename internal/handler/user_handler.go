package handler

import (
	"net/http"

	"evently/internal/model"
	"evently/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) RegisterRoutes(r *gin.Engine) {
	// Mounted apart from /users/:id/... so the clerk id (an opaque
	// string) never shares a segment with numeric user ids.
	router := r.Group("/api/v1")
	{
		router.POST("clerk/users", h.Create)
		router.GET("clerk/users/:clerkId", h.GetByClerkID)
		router.PUT("clerk/users/:clerkId", h.UpdateByClerkID)
		router.DELETE("clerk/users/:clerkId", h.DeleteByClerkID)
	}
}

// CreateUserRequest mirrors the identity provider's webhook payload.
type CreateUserRequest struct {
	ClerkID   string  `json:"clerk_id" binding:"required"`
	Email     string  `json:"email" binding:"required,email"`
	Username  string  `json:"username" binding:"required"`
	FirstName string  `json:"first_name" binding:"required"`
	LastName  *string `json:"last_name"`
	Photo     string  `json:"photo" binding:"required"`
}

type UpdateUserRequest struct {
	Username  *string `json:"username"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Photo     *string `json:"photo"`
}

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	user := &model.User{
		ClerkID:   req.ClerkID,
		Email:     req.Email,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Photo:     req.Photo,
	}
	created, err := h.service.Create(c, user)
	if err != nil {
		handleError(c, err, "CreateUser")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *UserHandler) GetByClerkID(c *gin.Context) {
	user, err := h.service.GetByClerkID(c, c.Param("clerkId"))
	if err != nil {
		handleError(c, err, "GetUserByClerkID")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdateByClerkID(c *gin.Context) {
	var req UpdateUserRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	if req.Username == nil && req.FirstName == nil && req.LastName == nil && req.Photo == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one field is required"})
		return
	}
	updated, err := h.service.Update(c, c.Param("clerkId"), model.UpdateUserParams{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Photo:     req.Photo,
	})
	if err != nil {
		handleError(c, err, "UpdateUser")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *UserHandler) DeleteByClerkID(c *gin.Context) {
	if err := h.service.Delete(c, c.Param("clerkId")); err != nil {
		handleError(c, err, "DeleteUser")
		return
	}
	c.Status(http.StatusNoContent)
}
