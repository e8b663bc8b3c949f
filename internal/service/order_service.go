package service

import (
	"context"
	"strings"

	"evently/internal/model"
	"evently/internal/repository"
	apperrors "evently/pkg/app_errors"
)

const defaultOrderPageSize = 3

type OrderService interface {
	// Create records a completed payment. The referenced event and buyer
	// must exist; a duplicate stripe id is a conflict.
	Create(ctx context.Context, params model.CreateOrderParams) (*model.Order, error)
	ListByEvent(ctx context.Context, eventID int) ([]*model.Order, error)
	ListByUser(ctx context.Context, params model.ListOrdersByUserParams) (*model.OrderPage, error)
}

type OrderServiceImpl struct {
	repo      repository.OrderRepository
	eventRepo repository.EventRepository
	userRepo  repository.UserRepository
}

func NewOrderService(
	repo repository.OrderRepository,
	eventRepo repository.EventRepository,
	userRepo repository.UserRepository,
) OrderService {
	return &OrderServiceImpl{
		repo:      repo,
		eventRepo: eventRepo,
		userRepo:  userRepo,
	}
}

func (s *OrderServiceImpl) Create(ctx context.Context, params model.CreateOrderParams) (*model.Order, error) {
	if strings.TrimSpace(params.StripeID) == "" {
		return nil, apperrors.ErrInvalidInput
	}

	_, err := s.eventRepo.FindByID(ctx, params.EventID)
	if err != nil {
		return nil, err
	}
	_, err = s.userRepo.FindByID(ctx, params.BuyerID)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, params)
}

func (s *OrderServiceImpl) ListByEvent(ctx context.Context, eventID int) ([]*model.Order, error) {
	return s.repo.ListByEvent(ctx, eventID)
}

func (s *OrderServiceImpl) ListByUser(ctx context.Context, params model.ListOrdersByUserParams) (*model.OrderPage, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultOrderPageSize
	}

	orders, err := s.repo.ListByUser(ctx, params.UserID, model.Offset(params.Page, limit), limit)
	if err != nil {
		return nil, err
	}

	count, err := s.repo.CountByUser(ctx, params.UserID)
	if err != nil {
		return nil, err
	}

	return &model.OrderPage{
		Data:       orders,
		TotalPages: model.TotalPages(count, limit),
	}, nil
}
