package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"evently/internal/model"
	"evently/internal/repository"
	"evently/internal/revalidate"
	apperrors "evently/pkg/app_errors"
	"evently/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultEventPageSize   = 6
	defaultRelatedPageSize = 3
)

type EventService interface {
	// Create inserts an event for organizerID, who must exist.
	Create(ctx context.Context, organizerID int, form model.EventForm, path string) (*model.Event, error)
	GetByEventID(ctx context.Context, eventID uuid.UUID) (*model.Event, error)
	// Delete is a silent no-op when the event does not exist; the
	// revalidation notification only fires when a row was deleted.
	Delete(ctx context.Context, eventID uuid.UUID, path string) error
	List(ctx context.Context, params model.ListEventsParams) (*model.EventPage, error)
	ListByOrganizer(ctx context.Context, params model.ListEventsByOrganizerParams) (*model.EventPage, error)
	ListRelated(ctx context.Context, params model.ListRelatedEventsParams) (*model.EventPage, error)
	// Update requires userID to be the event's organizer; a missing event
	// and a foreign organizer both come back as ErrUnauthorized.
	Update(ctx context.Context, userID int, eventID uuid.UUID, form model.EventForm, path string) (*model.Event, error)
}

type EventServiceImpl struct {
	repo         repository.EventRepository
	userRepo     repository.UserRepository
	categoryRepo repository.CategoryRepository
	notifier     revalidate.Notifier
}

func NewEventService(
	repo repository.EventRepository,
	userRepo repository.UserRepository,
	categoryRepo repository.CategoryRepository,
	notifier revalidate.Notifier,
) EventService {
	return &EventServiceImpl{
		repo:         repo,
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		notifier:     notifier,
	}
}

func (s *EventServiceImpl) Create(ctx context.Context, organizerID int, form model.EventForm, path string) (*model.Event, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, errs[0].Error())
	}

	// Organizer must exist before anything is written.
	_, err := s.userRepo.FindByID(ctx, organizerID)
	if err != nil {
		return nil, err
	}

	// Unset start/end default to the creation time.
	now := time.Now().UTC()
	if form.StartDateTime.IsZero() {
		form.StartDateTime = now
	}
	if form.EndDateTime.IsZero() {
		form.EndDateTime = now
	}

	event := &model.Event{
		EventID:       uuid.New(),
		Title:         form.Title,
		Description:   form.Description,
		Location:      form.Location,
		ImageURL:      form.ImageURL,
		StartDateTime: form.StartDateTime,
		EndDateTime:   form.EndDateTime,
		Price:         form.Price,
		IsFree:        form.IsFree,
		URL:           form.URL,
		CategoryID:    form.CategoryID,
		OrganizerID:   organizerID,
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return nil, err
	}

	s.revalidate(ctx, path)
	return created, nil
}

func (s *EventServiceImpl) GetByEventID(ctx context.Context, eventID uuid.UUID) (*model.Event, error) {
	return s.repo.FindByEventID(ctx, eventID)
}

func (s *EventServiceImpl) Delete(ctx context.Context, eventID uuid.UUID, path string) error {
	deleted, err := s.repo.DeleteByEventID(ctx, eventID)
	if err != nil {
		return err
	}
	if deleted {
		s.revalidate(ctx, path)
	}
	return nil
}

func (s *EventServiceImpl) List(ctx context.Context, params model.ListEventsParams) (*model.EventPage, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultEventPageSize
	}

	filter := model.EventFilter{TitleQuery: params.Query}

	if params.Category != "" {
		category, err := s.categoryRepo.FindByName(ctx, params.Category)
		if err != nil {
			if errors.Is(err, apperrors.ErrCategoryNotFound) {
				// A category filter nothing matches means an empty result,
				// never the unfiltered set.
				return &model.EventPage{Data: []*model.Event{}, TotalPages: 0}, nil
			}
			return nil, err
		}
		filter.CategoryID = category.ID
	}

	return s.listPage(ctx, filter, params.Page, limit)
}

func (s *EventServiceImpl) ListByOrganizer(ctx context.Context, params model.ListEventsByOrganizerParams) (*model.EventPage, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultEventPageSize
	}

	filter := model.EventFilter{OrganizerID: params.UserID}
	return s.listPage(ctx, filter, params.Page, limit)
}

func (s *EventServiceImpl) ListRelated(ctx context.Context, params model.ListRelatedEventsParams) (*model.EventPage, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultRelatedPageSize
	}

	filter := model.EventFilter{
		CategoryID:     params.CategoryID,
		ExcludeEventID: params.ExcludeEventID,
	}
	return s.listPage(ctx, filter, params.Page, limit)
}

func (s *EventServiceImpl) listPage(ctx context.Context, filter model.EventFilter, page, limit int) (*model.EventPage, error) {
	events, err := s.repo.List(ctx, filter, model.Offset(page, limit), limit)
	if err != nil {
		return nil, err
	}

	count, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &model.EventPage{
		Data:       events,
		TotalPages: model.TotalPages(count, limit),
	}, nil
}

func (s *EventServiceImpl) Update(ctx context.Context, userID int, eventID uuid.UUID, form model.EventForm, path string) (*model.Event, error) {
	existing, err := s.repo.FindByEventID(ctx, eventID)
	if err != nil {
		if errors.Is(err, apperrors.ErrEventNotFound) {
			// Deliberately indistinguishable from the ownership failure.
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}
	if existing.OrganizerID != userID {
		return nil, apperrors.ErrUnauthorized
	}

	if errs := form.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, errs[0].Error())
	}

	updated, err := s.repo.Update(ctx, existing.ID, form)
	if err != nil {
		return nil, err
	}

	s.revalidate(ctx, path)
	return updated, nil
}

// revalidate never fails the write it follows; a lost notification only
// means a stale cached page until the next one.
func (s *EventServiceImpl) revalidate(ctx context.Context, path string) {
	if path == "" {
		return
	}
	if err := s.notifier.Revalidate(ctx, path); err != nil {
		logger.WithComponent("service").Warn("revalidate failed",
			zap.String("path", path), zap.Error(err))
	}
}
