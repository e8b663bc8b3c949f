package handler

import (
	"net/http"
	"time"

	"evently/internal/model"
	"evently/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EventHandler struct {
	service service.EventService
}

func NewEventHandler(service service.EventService) *EventHandler {
	return &EventHandler{service: service}
}

func (h *EventHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("events", h.List)
		router.GET("events/:uuid", h.GetByEventID)
		router.GET("events/:uuid/related", h.ListRelated)
		router.POST("events", h.Create)
		router.PUT("events/:uuid", h.UpdateByEventID)
		router.DELETE("events/:uuid", h.DeleteByEventID)
		router.GET("users/:id/events", h.ListByOrganizer)
	}
}

// EventFormRequest carries the shared create/update form fields. Path is
// the logical page to revalidate after the write.
type EventFormRequest struct {
	Title         string    `json:"title" binding:"required"`
	Description   *string   `json:"description"`
	Location      *string   `json:"location"`
	ImageURL      string    `json:"image_url" binding:"required"`
	StartDateTime time.Time `json:"start_datetime"`
	EndDateTime   time.Time `json:"end_datetime"`
	Price         *string   `json:"price"`
	IsFree        bool      `json:"is_free"`
	URL           *string   `json:"url"`
	CategoryID    int       `json:"category_id" binding:"required"`
	Path          string    `json:"path"`
}

func (r *EventFormRequest) toForm() model.EventForm {
	return model.EventForm{
		Title:         r.Title,
		Description:   r.Description,
		Location:      r.Location,
		ImageURL:      r.ImageURL,
		StartDateTime: r.StartDateTime,
		EndDateTime:   r.EndDateTime,
		Price:         r.Price,
		IsFree:        r.IsFree,
		URL:           r.URL,
		CategoryID:    r.CategoryID,
	}
}

type CreateEventRequest struct {
	EventFormRequest
	OrganizerID int `json:"organizer_id" binding:"required"`
}

type UpdateEventRequest struct {
	EventFormRequest
	UserID int `json:"user_id" binding:"required"`
}

type ListEventsQuery struct {
	Query    string `form:"query"`
	Category string `form:"category"`
	Page     int    `form:"page,default=1"`
	Limit    int    `form:"limit"`
}

type PageQuery struct {
	Page  int `form:"page,default=1"`
	Limit int `form:"limit"`
}

func (h *EventHandler) Create(c *gin.Context) {
	var req CreateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	created, err := h.service.Create(c, req.OrganizerID, req.toForm(), req.Path)
	if err != nil {
		handleError(c, err, "CreateEvent")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *EventHandler) GetByEventID(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event uuid"})
		return
	}
	event, err := h.service.GetByEventID(c, eventID)
	if err != nil {
		handleError(c, err, "GetEventByID")
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) List(c *gin.Context) {
	var q ListEventsQuery
	if err := BindQuery(c, &q); err != nil {
		return
	}
	page, err := h.service.List(c, model.ListEventsParams{
		Query:    q.Query,
		Category: q.Category,
		Page:     q.Page,
		Limit:    q.Limit,
	})
	if err != nil {
		handleError(c, err, "ListEvents")
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *EventHandler) ListByOrganizer(c *gin.Context) {
	var uri struct {
		ID int `uri:"id" binding:"required"`
	}
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}
	var q PageQuery
	if err := BindQuery(c, &q); err != nil {
		return
	}
	page, err := h.service.ListByOrganizer(c, model.ListEventsByOrganizerParams{
		UserID: uri.ID,
		Page:   q.Page,
		Limit:  q.Limit,
	})
	if err != nil {
		handleError(c, err, "ListEventsByOrganizer")
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *EventHandler) ListRelated(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event uuid"})
		return
	}
	var q PageQuery
	if err := BindQuery(c, &q); err != nil {
		return
	}

	event, err := h.service.GetByEventID(c, eventID)
	if err != nil {
		handleError(c, err, "ListRelatedEvents")
		return
	}

	page, err := h.service.ListRelated(c, model.ListRelatedEventsParams{
		CategoryID:     event.CategoryID,
		ExcludeEventID: event.ID,
		Page:           q.Page,
		Limit:          q.Limit,
	})
	if err != nil {
		handleError(c, err, "ListRelatedEvents")
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *EventHandler) UpdateByEventID(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event uuid"})
		return
	}
	var req UpdateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	updated, err := h.service.Update(c, req.UserID, eventID, req.toForm(), req.Path)
	if err != nil {
		handleError(c, err, "UpdateEvent")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *EventHandler) DeleteByEventID(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event uuid"})
		return
	}
	path := c.Query("path")
	if err := h.service.Delete(c, eventID, path); err != nil {
		handleError(c, err, "DeleteEvent")
		return
	}
	c.Status(http.StatusNoContent)
}
