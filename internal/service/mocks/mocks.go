package mocks

import (
	"context"

	"evently/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type CategoryServiceMock struct {
	mock.Mock
}

func NewCategoryServiceMock() *CategoryServiceMock {
	return &CategoryServiceMock{}
}

func (m *CategoryServiceMock) Create(ctx context.Context, name string) (*model.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *CategoryServiceMock) List(ctx context.Context) ([]*model.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Category), args.Error(1)
}

type EventServiceMock struct {
	mock.Mock
}

func NewEventServiceMock() *EventServiceMock {
	return &EventServiceMock{}
}

func (m *EventServiceMock) Create(ctx context.Context, organizerID int, form model.EventForm, path string) (*model.Event, error) {
	args := m.Called(ctx, organizerID, form, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *EventServiceMock) GetByEventID(ctx context.Context, eventID uuid.UUID) (*model.Event, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *EventServiceMock) Delete(ctx context.Context, eventID uuid.UUID, path string) error {
	args := m.Called(ctx, eventID, path)
	return args.Error(0)
}

func (m *EventServiceMock) List(ctx context.Context, params model.ListEventsParams) (*model.EventPage, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.EventPage), args.Error(1)
}

func (m *EventServiceMock) ListByOrganizer(ctx context.Context, params model.ListEventsByOrganizerParams) (*model.EventPage, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.EventPage), args.Error(1)
}

func (m *EventServiceMock) ListRelated(ctx context.Context, params model.ListRelatedEventsParams) (*model.EventPage, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.EventPage), args.Error(1)
}

func (m *EventServiceMock) Update(ctx context.Context, userID int, eventID uuid.UUID, form model.EventForm, path string) (*model.Event, error) {
	args := m.Called(ctx, userID, eventID, form, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

type OrderServiceMock struct {
	mock.Mock
}

func NewOrderServiceMock() *OrderServiceMock {
	return &OrderServiceMock{}
}

func (m *OrderServiceMock) Create(ctx context.Context, params model.CreateOrderParams) (*model.Order, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *OrderServiceMock) ListByEvent(ctx context.Context, eventID int) ([]*model.Order, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Order), args.Error(1)
}

func (m *OrderServiceMock) ListByUser(ctx context.Context, params model.ListOrdersByUserParams) (*model.OrderPage, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderPage), args.Error(1)
}

type UserServiceMock struct {
	mock.Mock
}

func NewUserServiceMock() *UserServiceMock {
	return &UserServiceMock{}
}

func (m *UserServiceMock) Create(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *UserServiceMock) GetByClerkID(ctx context.Context, clerkID string) (*model.User, error) {
	args := m.Called(ctx, clerkID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *UserServiceMock) Update(ctx context.Context, clerkID string, params model.UpdateUserParams) (*model.User, error) {
	args := m.Called(ctx, clerkID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *UserServiceMock) Delete(ctx context.Context, clerkID string) error {
	args := m.Called(ctx, clerkID)
	return args.Error(0)
}
