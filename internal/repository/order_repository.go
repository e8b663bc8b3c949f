package repository

import (
	"context"

	"evently/internal/model"
	apperrors "evently/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository interface {
	Create(ctx context.Context, params model.CreateOrderParams) (*model.Order, error)
	FindByID(ctx context.Context, id int) (*model.Order, error)
	// ListByEvent joins the buyer's name onto each order.
	ListByEvent(ctx context.Context, eventID int) ([]*model.Order, error)
	// ListByUser joins the event title onto each order, newest first.
	ListByUser(ctx context.Context, userID, offset, limit int) ([]*model.Order, error)
	CountByUser(ctx context.Context, userID int) (int, error)
}

type OrderRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) OrderRepository {
	return &OrderRepositoryImpl{
		pool: pool,
	}
}

const orderColumns = `id, stripe_id, total_amount, event_id, buyer_id, created_at`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var order model.Order
	err := row.Scan(
		&order.ID,
		&order.StripeID,
		&order.TotalAmount,
		&order.EventID,
		&order.BuyerID,
		&order.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepositoryImpl) Create(ctx context.Context, params model.CreateOrderParams) (*model.Order, error) {
	query := `
		INSERT INTO orders (stripe_id, total_amount, event_id, buyer_id)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + orderColumns + `
	`

	order, err := scanOrder(r.pool.QueryRow(ctx, query,
		params.StripeID, params.TotalAmount, params.EventID, params.BuyerID,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrOrderExists
		}
		return nil, err
	}
	return order, nil
}

func (r *OrderRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1
	`

	order, err := scanOrder(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (r *OrderRepositoryImpl) ListByEvent(ctx context.Context, eventID int) ([]*model.Order, error) {
	query := `
		SELECT o.id, o.stripe_id, o.total_amount, o.event_id, o.buyer_id, o.created_at,
			e.title, u.id, u.first_name, u.last_name
		FROM orders o
		JOIN events e ON e.id = o.event_id
		JOIN users u ON u.id = o.buyer_id
		WHERE o.event_id = $1
		ORDER BY o.created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]*model.Order, 0)
	for rows.Next() {
		var order model.Order
		var title string
		var buyer model.OrganizerSummary
		err := rows.Scan(
			&order.ID,
			&order.StripeID,
			&order.TotalAmount,
			&order.EventID,
			&order.BuyerID,
			&order.CreatedAt,
			&title,
			&buyer.ID,
			&buyer.FirstName,
			&buyer.LastName,
		)
		if err != nil {
			return nil, err
		}
		order.EventTitle = &title
		order.Buyer = &buyer
		orders = append(orders, &order)
	}
	return orders, rows.Err()
}

func (r *OrderRepositoryImpl) ListByUser(ctx context.Context, userID, offset, limit int) ([]*model.Order, error) {
	query := `
		SELECT o.id, o.stripe_id, o.total_amount, o.event_id, o.buyer_id, o.created_at,
			e.title
		FROM orders o
		JOIN events e ON e.id = o.event_id
		WHERE o.buyer_id = $1
		ORDER BY o.created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]*model.Order, 0)
	for rows.Next() {
		var order model.Order
		var title string
		err := rows.Scan(
			&order.ID,
			&order.StripeID,
			&order.TotalAmount,
			&order.EventID,
			&order.BuyerID,
			&order.CreatedAt,
			&title,
		)
		if err != nil {
			return nil, err
		}
		order.EventTitle = &title
		orders = append(orders, &order)
	}
	return orders, rows.Err()
}

func (r *OrderRepositoryImpl) CountByUser(ctx context.Context, userID int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM orders
		WHERE buyer_id = $1
	`

	var count int
	err := r.pool.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
