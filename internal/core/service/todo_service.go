package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskhub/todo-api/internal/core/domain"
	"github.com/taskhub/todo-api/internal/core/ports"
)

// TodoService implements per-user todo CRUD plus admin-wide operations.
// Every method refuses a zero identity: a valid token is the entry ticket,
// ownership and role checks happen here on top of it.
type TodoService struct {
	repo   ports.TodoRepository
	logger zerolog.Logger
}

func NewTodoService(repo ports.TodoRepository, logger zerolog.Logger) *TodoService {
	return &TodoService{repo: repo, logger: logger}
}

func (s *TodoService) List(ctx context.Context, identity domain.Identity) ([]domain.Todo, error) {
	if identity.IsZero() {
		return nil, domain.ErrTokenInvalid
	}
	return s.repo.ListByOwner(ctx, identity.UserID)
}

func (s *TodoService) Get(ctx context.Context, identity domain.Identity, id int64) (*domain.Todo, error) {
	if identity.IsZero() {
		return nil, domain.ErrTokenInvalid
	}
	return s.repo.FindOwned(ctx, id, identity.UserID)
}

func (s *TodoService) Create(ctx context.Context, identity domain.Identity, input ports.TodoInput) (*domain.Todo, error) {
	if identity.IsZero() {
		return nil, domain.ErrTokenInvalid
	}

	now := time.Now().UTC()
	todo := &domain.Todo{
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		Complete:    input.Complete,
		OwnerID:     identity.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, todo)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("todo_id", created.ID).Int64("owner_id", created.OwnerID).Msg("todo created")
	return created, nil
}

func (s *TodoService) Update(ctx context.Context, identity domain.Identity, id int64, input ports.TodoInput) error {
	if identity.IsZero() {
		return domain.ErrTokenInvalid
	}

	todo, err := s.repo.FindOwned(ctx, id, identity.UserID)
	if err != nil {
		return err
	}

	todo.Title = input.Title
	todo.Description = input.Description
	todo.Priority = input.Priority
	todo.Complete = input.Complete
	todo.UpdatedAt = time.Now().UTC()

	return s.repo.UpdateOwned(ctx, todo)
}

func (s *TodoService) Delete(ctx context.Context, identity domain.Identity, id int64) error {
	if identity.IsZero() {
		return domain.ErrTokenInvalid
	}
	return s.repo.DeleteOwned(ctx, id, identity.UserID)
}

// ListAll returns every todo regardless of owner. Admin only.
func (s *TodoService) ListAll(ctx context.Context, identity domain.Identity) ([]domain.Todo, error) {
	if identity.IsZero() {
		return nil, domain.ErrTokenInvalid
	}
	if !identity.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return s.repo.ListAll(ctx)
}

// DeleteAny removes a todo regardless of owner. Admin only.
func (s *TodoService) DeleteAny(ctx context.Context, identity domain.Identity, id int64) error {
	if identity.IsZero() {
		return domain.ErrTokenInvalid
	}
	if !identity.IsAdmin() {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("todo_id", id).Str("admin", identity.Username).Msg("todo deleted by admin")
	return nil
}
