package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskhub/todo-api/internal/core/ports"
)

// AdminHandler exposes administrative operations over all users' todos.
// Routes are guarded by the RBAC middleware; the service re-checks the role
// so the policy holds even if a route is wired without the guard.
type AdminHandler struct {
	todoService ports.TodoService
}

func NewAdminHandler(todoService ports.TodoService) *AdminHandler {
	return &AdminHandler{todoService: todoService}
}

// ListAll returns every todo in the system.
//
// @Summary      List all todos (admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Todo
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/todo [get]
func (h *AdminHandler) ListAll(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	todos, err := h.todoService.ListAll(c.Request().Context(), identity)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, todos)
}

// Delete removes any user's todo by id.
//
// @Summary      Delete any todo (admin)
// @Tags         admin
// @Security     BearerAuth
// @Param        todo_id  path  int  true  "Todo id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/todo/{todo_id} [delete]
func (h *AdminHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id, err := todoID(c)
	if err != nil {
		return err
	}

	if err := h.todoService.DeleteAny(c.Request().Context(), identity, id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
