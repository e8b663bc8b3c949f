package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"evently/internal/handler"
	"evently/internal/model"
	"evently/internal/service/mocks"
	apperrors "evently/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupOrderTestRouter(mockService *mocks.OrderServiceMock, mockEventService *mocks.EventServiceMock) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler.NewOrderHandler(mockService, mockEventService).RegisterRoutes(router)
	return router
}

func TestCreateOrder(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewOrderServiceMock()
		router := setupOrderTestRouter(mockService, mocks.NewEventServiceMock())

		params := model.CreateOrderParams{
			StripeID:    "pi_abc123",
			TotalAmount: "25.00",
			EventID:     7,
			BuyerID:     3,
		}
		mockService.On("Create", mock.Anything, params).
			Return(&model.Order{ID: 1, StripeID: "pi_abc123", TotalAmount: "25.00", EventID: 7, BuyerID: 3}, nil).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/orders", gin.H{
			"stripe_id":    "pi_abc123",
			"total_amount": "25.00",
			"event_id":     7,
			"buyer_id":     3,
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - unknown event returns 404", func(t *testing.T) {
		mockService := mocks.NewOrderServiceMock()
		router := setupOrderTestRouter(mockService, mocks.NewEventServiceMock())

		mockService.On("Create", mock.Anything, mock.Anything).
			Return(nil, apperrors.ErrEventNotFound).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/orders", gin.H{
			"stripe_id":    "pi_abc123",
			"total_amount": "25.00",
			"event_id":     999,
			"buyer_id":     3,
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Failed - missing stripe id returns 400", func(t *testing.T) {
		mockService := mocks.NewOrderServiceMock()
		router := setupOrderTestRouter(mockService, mocks.NewEventServiceMock())

		req := createJSONHTTPRequest("POST", "/api/v1/orders", gin.H{
			"total_amount": "25.00",
			"event_id":     7,
			"buyer_id":     3,
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Create")
	})
}

func TestListOrdersByEvent(t *testing.T) {
	t.Run("Success - resolves the event then lists its orders", func(t *testing.T) {
		mockService := mocks.NewOrderServiceMock()
		mockEventService := mocks.NewEventServiceMock()
		router := setupOrderTestRouter(mockService, mockEventService)

		eventID := uuid.New()
		mockEventService.On("GetByEventID", mock.Anything, eventID).
			Return(&model.Event{ID: 7, EventID: eventID}, nil).Once()
		mockService.On("ListByEvent", mock.Anything, 7).
			Return([]*model.Order{{ID: 1, EventID: 7}}, nil).Once()

		req := createJSONHTTPRequest("GET", "/api/v1/events/"+eventID.String()+"/orders", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
		mockEventService.AssertExpectations(t)
	})

	t.Run("Failed - invalid uuid returns 400", func(t *testing.T) {
		mockService := mocks.NewOrderServiceMock()
		router := setupOrderTestRouter(mockService, mocks.NewEventServiceMock())

		req := createJSONHTTPRequest("GET", "/api/v1/events/not-a-uuid/orders", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "ListByEvent")
	})

	t.Run("Failed - unknown event returns 404", func(t *testing.T) {
		mockService := mocks.NewOrderServiceMock()
		mockEventService := mocks.NewEventServiceMock()
		router := setupOrderTestRouter(mockService, mockEventService)

		eventID := uuid.New()
		mockEventService.On("GetByEventID", mock.Anything, eventID).
			Return(nil, apperrors.ErrEventNotFound).Once()

		req := createJSONHTTPRequest("GET", "/api/v1/events/"+eventID.String()+"/orders", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockService.AssertNotCalled(t, "ListByEvent")
	})
}

func TestListOrdersByUser(t *testing.T) {
	t.Run("Success - forwards pagination", func(t *testing.T) {
		mockService := mocks.NewOrderServiceMock()
		router := setupOrderTestRouter(mockService, mocks.NewEventServiceMock())

		mockService.On("ListByUser", mock.Anything, model.ListOrdersByUserParams{UserID: 3, Page: 2, Limit: 5}).
			Return(&model.OrderPage{Data: []*model.Order{}, TotalPages: 4}, nil).Once()

		req := createJSONHTTPRequest("GET", "/api/v1/users/3/orders?page=2&limit=5", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - non-numeric user id returns 400", func(t *testing.T) {
		mockService := mocks.NewOrderServiceMock()
		router := setupOrderTestRouter(mockService, mocks.NewEventServiceMock())

		req := createJSONHTTPRequest("GET", "/api/v1/users/abc/orders", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "ListByUser")
	})
}
