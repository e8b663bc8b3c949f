package handler

import (
	"net/http"
	"strconv"

	"evently/internal/model"
	"evently/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	service      service.OrderService
	eventService service.EventService
}

func NewOrderHandler(service service.OrderService, eventService service.EventService) *OrderHandler {
	return &OrderHandler{service: service, eventService: eventService}
}

func (h *OrderHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("orders", h.Create)
		router.GET("events/:uuid/orders", h.ListByEvent)
		router.GET("users/:id/orders", h.ListByUser)
	}
}

// CreateOrderRequest carries what the payment processor reported.
type CreateOrderRequest struct {
	StripeID    string `json:"stripe_id" binding:"required"`
	TotalAmount string `json:"total_amount" binding:"required"`
	EventID     int    `json:"event_id" binding:"required"`
	BuyerID     int    `json:"buyer_id" binding:"required"`
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	order, err := h.service.Create(c, model.CreateOrderParams{
		StripeID:    req.StripeID,
		TotalAmount: req.TotalAmount,
		EventID:     req.EventID,
		BuyerID:     req.BuyerID,
	})
	if err != nil {
		handleError(c, err, "CreateOrder")
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) ListByEvent(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event uuid"})
		return
	}

	event, err := h.eventService.GetByEventID(c, eventID)
	if err != nil {
		handleError(c, err, "ListOrdersByEvent")
		return
	}

	orders, err := h.service.ListByEvent(c, event.ID)
	if err != nil {
		handleError(c, err, "ListOrdersByEvent")
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) ListByUser(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}
	var q PageQuery
	if err := BindQuery(c, &q); err != nil {
		return
	}
	page, err := h.service.ListByUser(c, model.ListOrdersByUserParams{
		UserID: userID,
		Page:   q.Page,
		Limit:  q.Limit,
	})
	if err != nil {
		handleError(c, err, "ListOrdersByUser")
		return
	}
	c.JSON(http.StatusOK, page)
}
