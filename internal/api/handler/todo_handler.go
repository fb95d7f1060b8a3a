package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/taskhub/todo-api/internal/api/metrics"
	"github.com/taskhub/todo-api/internal/core/ports"
)

// TodoHandler handles todo CRUD for the authenticated caller.
type TodoHandler struct {
	todoService ports.TodoService
}

func NewTodoHandler(todoService ports.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

// todoID parses the :todo_id path parameter. IDs are positive integers;
// anything else is a 400.
func todoID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("todo_id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "todo_id must be a positive integer")
	}
	return id, nil
}

// List returns all todos owned by the caller.
//
// @Summary      List own todos
// @Tags         todos
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Todo
// @Failure      401  {object}  errorResponse
// @Router       /todos/ [get]
func (h *TodoHandler) List(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	todos, err := h.todoService.List(c.Request().Context(), identity)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, todos)
}

// Get returns one of the caller's todos by id.
//
// @Summary      Get a todo
// @Tags         todos
// @Produce      json
// @Security     BearerAuth
// @Param        todo_id  path      int  true  "Todo id"
// @Success      200      {object}  domain.Todo
// @Failure      401      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Router       /todos/todo/{todo_id} [get]
func (h *TodoHandler) Get(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id, err := todoID(c)
	if err != nil {
		return err
	}

	todo, err := h.todoService.Get(c.Request().Context(), identity, id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, todo)
}

// Create adds a new todo owned by the caller.
//
// @Summary      Create a todo
// @Tags         todos
// @Accept       json
// @Security     BearerAuth
// @Param        body  body  todoRequest  true  "Todo fields"
// @Success      201
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /todos/todo [post]
func (h *TodoHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req todoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.todoService.Create(c.Request().Context(), identity, ports.TodoInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Complete:    req.Complete,
	}); err != nil {
		return err
	}

	metrics.TodosCreatedTotal.Inc()
	return c.NoContent(http.StatusCreated)
}

// Update replaces the fields of one of the caller's todos.
//
// @Summary      Update a todo
// @Tags         todos
// @Accept       json
// @Security     BearerAuth
// @Param        todo_id  path  int          true  "Todo id"
// @Param        body     body  todoRequest  true  "Todo fields"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /todos/todo/{todo_id} [put]
func (h *TodoHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id, err := todoID(c)
	if err != nil {
		return err
	}

	var req todoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.todoService.Update(c.Request().Context(), identity, id, ports.TodoInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Complete:    req.Complete,
	}); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// Delete removes one of the caller's todos.
//
// @Summary      Delete a todo
// @Tags         todos
// @Security     BearerAuth
// @Param        todo_id  path  int  true  "Todo id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /todos/todo/{todo_id} [delete]
func (h *TodoHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id, err := todoID(c)
	if err != nil {
		return err
	}

	if err := h.todoService.Delete(c.Request().Context(), identity, id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
