package ports

import (
	"context"

	"github.com/taskhub/todo-api/internal/core/domain"
)

// TodoInput carries the writable fields of a todo.
type TodoInput struct {
	Title       string
	Description string
	Priority    int
	Complete    bool
}

// TodoService defines todo use cases. Every operation requires a resolved
// Identity and refuses to run without one.
type TodoService interface {
	List(ctx context.Context, identity domain.Identity) ([]domain.Todo, error)
	Get(ctx context.Context, identity domain.Identity, id int64) (*domain.Todo, error)
	Create(ctx context.Context, identity domain.Identity, input TodoInput) (*domain.Todo, error)
	Update(ctx context.Context, identity domain.Identity, id int64, input TodoInput) error
	Delete(ctx context.Context, identity domain.Identity, id int64) error

	// Admin-only operations; the service checks Identity.Role itself.
	ListAll(ctx context.Context, identity domain.Identity) ([]domain.Todo, error)
	DeleteAny(ctx context.Context, identity domain.Identity, id int64) error
}
