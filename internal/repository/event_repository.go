package repository

import (
	"context"
	"fmt"
	"strings"

	"evently/internal/model"
	apperrors "evently/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EventRepository interface {
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	// FindByID and FindByEventID return the event with organizer and
	// category summaries joined in.
	FindByID(ctx context.Context, id int) (*model.Event, error)
	FindByEventID(ctx context.Context, eventID uuid.UUID) (*model.Event, error)
	// List applies the conjunctive filter, newest first.
	List(ctx context.Context, filter model.EventFilter, offset, limit int) ([]*model.Event, error)
	Count(ctx context.Context, filter model.EventFilter) (int, error)
	// Update replaces all writable fields with the form, wholesale, and
	// returns the post-update record with summaries joined in.
	Update(ctx context.Context, id int, form model.EventForm) (*model.Event, error)
	// DeleteByEventID reports whether a row was actually deleted.
	DeleteByEventID(ctx context.Context, eventID uuid.UUID) (bool, error)
}

type EventRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &EventRepositoryImpl{
		pool: pool,
	}
}

const eventColumns = `
	e.id, e.event_id, e.title, e.description, e.location, e.image_url,
	e.start_datetime, e.end_datetime, e.price, e.is_free, e.url,
	e.category_id, e.organizer_id, e.created_at
`

const populatedEventColumns = eventColumns + `,
	u.id, u.first_name, u.last_name,
	c.id, c.name
`

const populatedEventFrom = `
	FROM events e
	JOIN users u ON u.id = e.organizer_id
	JOIN categories c ON c.id = e.category_id
`

func scanEvent(row pgx.Row) (*model.Event, error) {
	var event model.Event
	err := row.Scan(
		&event.ID,
		&event.EventID,
		&event.Title,
		&event.Description,
		&event.Location,
		&event.ImageURL,
		&event.StartDateTime,
		&event.EndDateTime,
		&event.Price,
		&event.IsFree,
		&event.URL,
		&event.CategoryID,
		&event.OrganizerID,
		&event.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func scanPopulatedEvent(row pgx.Row) (*model.Event, error) {
	var event model.Event
	var organizer model.OrganizerSummary
	var category model.CategorySummary
	err := row.Scan(
		&event.ID,
		&event.EventID,
		&event.Title,
		&event.Description,
		&event.Location,
		&event.ImageURL,
		&event.StartDateTime,
		&event.EndDateTime,
		&event.Price,
		&event.IsFree,
		&event.URL,
		&event.CategoryID,
		&event.OrganizerID,
		&event.CreatedAt,
		&organizer.ID,
		&organizer.FirstName,
		&organizer.LastName,
		&category.ID,
		&category.Name,
	)
	if err != nil {
		return nil, err
	}
	event.Organizer = &organizer
	event.Category = &category
	return &event, nil
}

// buildFilter renders the filter to a WHERE clause. Zero-valued fields
// contribute no condition.
func buildFilter(filter model.EventFilter) (string, []interface{}) {
	conditions := []string{}
	args := []interface{}{}
	argPos := 1

	if filter.TitleQuery != "" {
		conditions = append(conditions, fmt.Sprintf(`e.title ILIKE $%d ESCAPE '\'`, argPos))
		args = append(args, "%"+escapeLike(filter.TitleQuery)+"%")
		argPos++
	}
	if filter.CategoryID != 0 {
		conditions = append(conditions, fmt.Sprintf("e.category_id = $%d", argPos))
		args = append(args, filter.CategoryID)
		argPos++
	}
	if filter.OrganizerID != 0 {
		conditions = append(conditions, fmt.Sprintf("e.organizer_id = $%d", argPos))
		args = append(args, filter.OrganizerID)
		argPos++
	}
	if filter.ExcludeEventID != 0 {
		conditions = append(conditions, fmt.Sprintf("e.id <> $%d", argPos))
		args = append(args, filter.ExcludeEventID)
		argPos++
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

func (r *EventRepositoryImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	query := `
		INSERT INTO events (
			event_id, title, description, location, image_url,
			start_datetime, end_datetime, price, is_free, url,
			category_id, organizer_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + strings.ReplaceAll(eventColumns, "e.", "") + `
	`

	created, err := scanEvent(r.pool.QueryRow(ctx, query,
		event.EventID, event.Title, event.Description, event.Location,
		event.ImageURL, event.StartDateTime, event.EndDateTime, event.Price,
		event.IsFree, event.URL, event.CategoryID, event.OrganizerID,
	))
	if err != nil {
		return nil, mapEventReferenceError(err)
	}
	return created, nil
}

// mapEventReferenceError resolves a foreign key violation on the events
// table to the sentinel for whichever referenced row is missing.
func mapEventReferenceError(err error) error {
	constraint, ok := foreignKeyConstraint(err)
	if !ok {
		return err
	}
	if strings.Contains(constraint, "organizer") {
		return apperrors.ErrUserNotFound
	}
	return apperrors.ErrCategoryNotFound
}

func (r *EventRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Event, error) {
	query := `SELECT ` + populatedEventColumns + populatedEventFrom + `WHERE e.id = $1`

	event, err := scanPopulatedEvent(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

func (r *EventRepositoryImpl) FindByEventID(ctx context.Context, eventID uuid.UUID) (*model.Event, error) {
	query := `SELECT ` + populatedEventColumns + populatedEventFrom + `WHERE e.event_id = $1`

	event, err := scanPopulatedEvent(r.pool.QueryRow(ctx, query, eventID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

func (r *EventRepositoryImpl) List(ctx context.Context, filter model.EventFilter, offset, limit int) ([]*model.Event, error) {
	where, args := buildFilter(filter)
	args = append(args, limit, offset)

	query := fmt.Sprintf(`
		SELECT %s %s %s
		ORDER BY e.created_at DESC
		LIMIT $%d OFFSET $%d
	`, populatedEventColumns, populatedEventFrom, where, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*model.Event, 0)
	for rows.Next() {
		event, err := scanPopulatedEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

func (r *EventRepositoryImpl) Count(ctx context.Context, filter model.EventFilter) (int, error) {
	where, args := buildFilter(filter)

	query := fmt.Sprintf(`SELECT COUNT(*) FROM events e %s`, where)

	var count int
	err := r.pool.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *EventRepositoryImpl) Update(ctx context.Context, id int, form model.EventForm) (*model.Event, error) {
	query := `
		UPDATE events
		SET title = $1, description = $2, location = $3, image_url = $4,
			start_datetime = $5, end_datetime = $6, price = $7, is_free = $8,
			url = $9, category_id = $10
		WHERE id = $11
		RETURNING id
	`

	var updatedID int
	err := r.pool.QueryRow(ctx, query,
		form.Title, form.Description, form.Location, form.ImageURL,
		form.StartDateTime, form.EndDateTime, form.Price, form.IsFree,
		form.URL, form.CategoryID, id,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, mapEventReferenceError(err)
	}
	return r.FindByID(ctx, updatedID)
}

func (r *EventRepositoryImpl) DeleteByEventID(ctx context.Context, eventID uuid.UUID) (bool, error) {
	query := `
		DELETE FROM events
		WHERE event_id = $1
	`

	result, err := r.pool.Exec(ctx, query, eventID)
	if err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}
