package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/taskhub/todo-api/internal/core/domain"
	"github.com/taskhub/todo-api/internal/core/ports"
)

type stubTodoRepo struct {
	todos  map[int64]*domain.Todo
	nextID int64
}

func newStubTodoRepo() *stubTodoRepo {
	return &stubTodoRepo{todos: make(map[int64]*domain.Todo), nextID: 1}
}

func cloneTodo(t *domain.Todo) *domain.Todo {
	if t == nil {
		return nil
	}
	clone := *t
	return &clone
}

func (r *stubTodoRepo) ListByOwner(_ context.Context, ownerID int64) ([]domain.Todo, error) {
	var out []domain.Todo
	for _, todo := range r.todos {
		if todo.OwnerID == ownerID {
			out = append(out, *todo)
		}
	}
	return out, nil
}

func (r *stubTodoRepo) FindOwned(_ context.Context, id, ownerID int64) (*domain.Todo, error) {
	todo, ok := r.todos[id]
	if !ok || todo.OwnerID != ownerID {
		return nil, domain.ErrTodoNotFound
	}
	return cloneTodo(todo), nil
}

func (r *stubTodoRepo) Create(_ context.Context, todo *domain.Todo) (*domain.Todo, error) {
	copy := cloneTodo(todo)
	copy.ID = r.nextID
	r.nextID++
	r.todos[copy.ID] = cloneTodo(copy)
	return cloneTodo(copy), nil
}

func (r *stubTodoRepo) UpdateOwned(_ context.Context, todo *domain.Todo) error {
	existing, ok := r.todos[todo.ID]
	if !ok || existing.OwnerID != todo.OwnerID {
		return domain.ErrTodoNotFound
	}
	r.todos[todo.ID] = cloneTodo(todo)
	return nil
}

func (r *stubTodoRepo) DeleteOwned(_ context.Context, id, ownerID int64) error {
	todo, ok := r.todos[id]
	if !ok || todo.OwnerID != ownerID {
		return domain.ErrTodoNotFound
	}
	delete(r.todos, id)
	return nil
}

func (r *stubTodoRepo) ListAll(_ context.Context) ([]domain.Todo, error) {
	var out []domain.Todo
	for _, todo := range r.todos {
		out = append(out, *todo)
	}
	return out, nil
}

func (r *stubTodoRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.todos[id]; !ok {
		return domain.ErrTodoNotFound
	}
	delete(r.todos, id)
	return nil
}

var (
	aliceIdentity = domain.Identity{Username: "alice", UserID: 1, Role: domain.RoleUser}
	bobIdentity   = domain.Identity{Username: "bob", UserID: 2, Role: domain.RoleUser}
	adminIdentity = domain.Identity{Username: "root", UserID: 3, Role: domain.RoleAdmin}
)

func seededTodoService(t *testing.T) (*TodoService, *domain.Todo) {
	t.Helper()
	svc := NewTodoService(newStubTodoRepo(), zerolog.Nop())
	todo, err := svc.Create(context.Background(), aliceIdentity, ports.TodoInput{
		Title:       "Learn To Code",
		Description: "Learn To Code Everyday",
		Priority:    5,
		Complete:    false,
	})
	if err != nil {
		t.Fatalf("seed create failed: %v", err)
	}
	return svc, todo
}

func TestTodoService_RefusesZeroIdentity(t *testing.T) {
	svc := NewTodoService(newStubTodoRepo(), zerolog.Nop())

	if _, err := svc.List(context.Background(), domain.Identity{}); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for zero identity, got %v", err)
	}
	if _, err := svc.Create(context.Background(), domain.Identity{}, ports.TodoInput{Title: "x"}); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for zero identity, got %v", err)
	}
}

func TestTodoService_CreateAssignsCaller(t *testing.T) {
	svc, todo := seededTodoService(t)

	if todo.OwnerID != aliceIdentity.UserID {
		t.Fatalf("owner is %d, want %d", todo.OwnerID, aliceIdentity.UserID)
	}

	got, err := svc.Get(context.Background(), aliceIdentity, todo.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Title != "Learn To Code" {
		t.Fatalf("unexpected title: %s", got.Title)
	}
}

func TestTodoService_OwnershipHidesForeignTodos(t *testing.T) {
	svc, todo := seededTodoService(t)

	if _, err := svc.Get(context.Background(), bobIdentity, todo.ID); !errors.Is(err, domain.ErrTodoNotFound) {
		t.Fatalf("foreign todo visible: %v", err)
	}
	if err := svc.Update(context.Background(), bobIdentity, todo.ID, ports.TodoInput{Title: "hijack", Description: "nope", Priority: 1}); !errors.Is(err, domain.ErrTodoNotFound) {
		t.Fatalf("foreign todo updatable: %v", err)
	}
	if err := svc.Delete(context.Background(), bobIdentity, todo.ID); !errors.Is(err, domain.ErrTodoNotFound) {
		t.Fatalf("foreign todo deletable: %v", err)
	}

	todos, err := svc.List(context.Background(), bobIdentity)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(todos) != 0 {
		t.Fatalf("expected empty list for bob, got %d", len(todos))
	}
}

func TestTodoService_UpdateAndDelete(t *testing.T) {
	svc, todo := seededTodoService(t)

	err := svc.Update(context.Background(), aliceIdentity, todo.ID, ports.TodoInput{
		Title:       "Learn To Code",
		Description: "Done",
		Priority:    1,
		Complete:    true,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	got, err := svc.Get(context.Background(), aliceIdentity, todo.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !got.Complete || got.Priority != 1 {
		t.Fatalf("update not applied: %+v", got)
	}

	if err := svc.Delete(context.Background(), aliceIdentity, todo.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.Get(context.Background(), aliceIdentity, todo.ID); !errors.Is(err, domain.ErrTodoNotFound) {
		t.Fatalf("todo still present after delete")
	}
}

func TestTodoService_AdminOperations(t *testing.T) {
	svc, todo := seededTodoService(t)

	// Valid identity with role=user is still not authorization.
	if _, err := svc.ListAll(context.Background(), aliceIdentity); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-admin ListAll, got %v", err)
	}
	if err := svc.DeleteAny(context.Background(), bobIdentity, todo.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-admin DeleteAny, got %v", err)
	}

	all, err := svc.ListAll(context.Background(), adminIdentity)
	if err != nil {
		t.Fatalf("admin list failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 todo, got %d", len(all))
	}

	if err := svc.DeleteAny(context.Background(), adminIdentity, todo.ID); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}
	if err := svc.DeleteAny(context.Background(), adminIdentity, 999); !errors.Is(err, domain.ErrTodoNotFound) {
		t.Fatalf("expected ErrTodoNotFound for missing todo, got %v", err)
	}
}
