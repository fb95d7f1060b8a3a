package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/taskhub/todo-api/internal/api/handler"
	"github.com/taskhub/todo-api/internal/api/middleware"
	"github.com/taskhub/todo-api/internal/core/domain"
	"github.com/taskhub/todo-api/internal/core/ports"
)

type stubTodoService struct {
	listFn      func(ctx context.Context, identity domain.Identity) ([]domain.Todo, error)
	getFn       func(ctx context.Context, identity domain.Identity, id int64) (*domain.Todo, error)
	createFn    func(ctx context.Context, identity domain.Identity, input ports.TodoInput) (*domain.Todo, error)
	updateFn    func(ctx context.Context, identity domain.Identity, id int64, input ports.TodoInput) error
	deleteFn    func(ctx context.Context, identity domain.Identity, id int64) error
	listAllFn   func(ctx context.Context, identity domain.Identity) ([]domain.Todo, error)
	deleteAnyFn func(ctx context.Context, identity domain.Identity, id int64) error
}

func (s *stubTodoService) List(ctx context.Context, identity domain.Identity) ([]domain.Todo, error) {
	return s.listFn(ctx, identity)
}

func (s *stubTodoService) Get(ctx context.Context, identity domain.Identity, id int64) (*domain.Todo, error) {
	return s.getFn(ctx, identity, id)
}

func (s *stubTodoService) Create(ctx context.Context, identity domain.Identity, input ports.TodoInput) (*domain.Todo, error) {
	return s.createFn(ctx, identity, input)
}

func (s *stubTodoService) Update(ctx context.Context, identity domain.Identity, id int64, input ports.TodoInput) error {
	return s.updateFn(ctx, identity, id, input)
}

func (s *stubTodoService) Delete(ctx context.Context, identity domain.Identity, id int64) error {
	return s.deleteFn(ctx, identity, id)
}

func (s *stubTodoService) ListAll(ctx context.Context, identity domain.Identity) ([]domain.Todo, error) {
	return s.listAllFn(ctx, identity)
}

func (s *stubTodoService) DeleteAny(ctx context.Context, identity domain.Identity, id int64) error {
	return s.deleteAnyFn(ctx, identity, id)
}

var testIdentity = domain.Identity{Username: "alice", UserID: 1, Role: domain.RoleUser}

func TestTodoHandler_List_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubTodoService{
		listFn: func(_ context.Context, identity domain.Identity) ([]domain.Todo, error) {
			if identity != testIdentity {
				t.Fatalf("unexpected identity: %+v", identity)
			}
			return []domain.Todo{{ID: 1, Title: "Learn To Code", OwnerID: 1}}, nil
		},
	}
	h := handler.NewTodoHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/todos/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.IdentityKey, testIdentity)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var todos []domain.Todo
	if err := json.Unmarshal(rec.Body.Bytes(), &todos); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(todos) != 1 || todos[0].Title != "Learn To Code" {
		t.Fatalf("unexpected payload: %+v", todos)
	}
}

func TestTodoHandler_List_MissingIdentity(t *testing.T) {
	e := newTestEcho()
	stub := &stubTodoService{
		listFn: func(_ context.Context, _ domain.Identity) ([]domain.Todo, error) {
			t.Fatalf("service should not be called without identity")
			return nil, nil
		},
	}
	h := handler.NewTodoHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/todos/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestTodoHandler_Get_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubTodoService{
		getFn: func(_ context.Context, _ domain.Identity, id int64) (*domain.Todo, error) {
			return nil, domain.ErrTodoNotFound
		},
	}
	h := handler.NewTodoHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/todos/todo/999", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("todo_id")
	c.SetParamValues("999")
	c.Set(middleware.IdentityKey, testIdentity)

	if err := h.Get(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestTodoHandler_Get_InvalidID(t *testing.T) {
	e := newTestEcho()
	stub := &stubTodoService{
		getFn: func(_ context.Context, _ domain.Identity, _ int64) (*domain.Todo, error) {
			t.Fatalf("service should not be called for a bad id")
			return nil, nil
		},
	}
	h := handler.NewTodoHandler(stub)

	for _, raw := range []string{"abc", "0", "-1"} {
		req := httptest.NewRequest(http.MethodGet, "/todos/todo/"+raw, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("todo_id")
		c.SetParamValues(raw)
		c.Set(middleware.IdentityKey, testIdentity)

		if err := h.Get(c); err != nil {
			e.HTTPErrorHandler(err, c)
		}
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("id %q: expected 400, got %d", raw, rec.Code)
		}
	}
}

func TestTodoHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubTodoService{
		createFn: func(_ context.Context, identity domain.Identity, input ports.TodoInput) (*domain.Todo, error) {
			if input.Title != "Learn To Code" || input.Priority != 5 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Todo{ID: 1, Title: input.Title, OwnerID: identity.UserID}, nil
		},
	}
	h := handler.NewTodoHandler(stub)

	body := `{"title":"Learn To Code","description":"Learn To Code Everyday","priority":5,"complete":false}`
	req := httptest.NewRequest(http.MethodPost, "/todos/todo", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.IdentityKey, testIdentity)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestTodoHandler_Create_ValidationFailure(t *testing.T) {
	e := newTestEcho()
	stub := &stubTodoService{
		createFn: func(_ context.Context, _ domain.Identity, _ ports.TodoInput) (*domain.Todo, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := handler.NewTodoHandler(stub)

	// Priority out of range.
	body := `{"title":"Learn","description":"Out of range","priority":6,"complete":false}`
	req := httptest.NewRequest(http.MethodPost, "/todos/todo", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.IdentityKey, testIdentity)

	if err := h.Create(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAdminHandler_Forbidden(t *testing.T) {
	e := newTestEcho()
	stub := &stubTodoService{
		listAllFn: func(_ context.Context, identity domain.Identity) ([]domain.Todo, error) {
			if identity.Role != domain.RoleUser {
				t.Fatalf("unexpected role: %s", identity.Role)
			}
			return nil, domain.ErrForbidden
		},
	}
	h := handler.NewAdminHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/admin/todo", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.IdentityKey, testIdentity)

	if err := h.ListAll(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestAdminHandler_Delete_Success(t *testing.T) {
	e := newTestEcho()
	admin := domain.Identity{Username: "root", UserID: 9, Role: domain.RoleAdmin}
	stub := &stubTodoService{
		deleteAnyFn: func(_ context.Context, identity domain.Identity, id int64) error {
			if identity != admin || id != 7 {
				t.Fatalf("unexpected args: %+v %d", identity, id)
			}
			return nil
		},
	}
	h := handler.NewAdminHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/admin/todo/7", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("todo_id")
	c.SetParamValues("7")
	c.Set(middleware.IdentityKey, admin)

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}
