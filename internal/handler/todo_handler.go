package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/teamnest/teamnest-backend/internal/common"
	"github.com/teamnest/teamnest-backend/internal/domain"
	"github.com/teamnest/teamnest-backend/internal/middleware"
	"github.com/teamnest/teamnest-backend/internal/service"
)

// TodoHandler handles to-do API endpoints
type TodoHandler struct {
	todoService service.TodoService
}

// NewTodoHandler creates a new TodoHandler
func NewTodoHandler(todoService service.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

// Create handles POST /api/v1/todos
func (h *TodoHandler) Create(c *gin.Context) {
	var req domain.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "invalid request body")
		return
	}

	todo, err := h.todoService.Create(middleware.GetUserID(c), &req)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	common.CreatedResponse(c, todo)
}

// List handles GET /api/v1/todos
func (h *TodoHandler) List(c *gin.Context) {
	todos, err := h.todoService.List(middleware.GetUserID(c))
	if err != nil {
		common.RespondError(c, err)
		return
	}
	common.SuccessResponse(c, todos, nil)
}

// Update handles PUT /api/v1/todos/:id
func (h *TodoHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		common.ErrorResponse(c, 400, "invalid todo id")
		return
	}

	var req domain.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "invalid request body")
		return
	}

	todo, err := h.todoService.Update(middleware.GetUserID(c), id, &req)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	common.SuccessResponse(c, todo, nil)
}

// Toggle handles PATCH /api/v1/todos/:id/toggle
func (h *TodoHandler) Toggle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		common.ErrorResponse(c, 400, "invalid todo id")
		return
	}

	todo, err := h.todoService.Toggle(middleware.GetUserID(c), id)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	common.SuccessResponse(c, todo, nil)
}

// Delete handles DELETE /api/v1/todos/:id
func (h *TodoHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		common.ErrorResponse(c, 400, "invalid todo id")
		return
	}

	if err := h.todoService.Delete(middleware.GetUserID(c), id); err != nil {
		common.RespondError(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"deleted": true}, nil)
}
