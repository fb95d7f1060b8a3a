package ports

import (
	"context"

	"github.com/taskhub/todo-api/internal/core/domain"
)

// TodoRepository defines the interface for todo persistence. Owner-scoped
// methods filter on owner_id in the query itself so a foreign todo behaves
// exactly like a missing one.
type TodoRepository interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Todo, error)
	FindOwned(ctx context.Context, id, ownerID int64) (*domain.Todo, error)
	Create(ctx context.Context, todo *domain.Todo) (*domain.Todo, error)
	UpdateOwned(ctx context.Context, todo *domain.Todo) error
	DeleteOwned(ctx context.Context, id, ownerID int64) error

	// Admin scope: no owner filter.
	ListAll(ctx context.Context) ([]domain.Todo, error)
	Delete(ctx context.Context, id int64) error
}
