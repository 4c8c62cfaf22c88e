package user

import (
	"errors"
	"strconv"

	"ressources-relationnelles/api/internal/dto"
	"ressources-relationnelles/api/pkg/response"

	"github.com/gin-gonic/gin"
)

// UserHandler 用户处理器
type UserHandler struct {
	service UserService
}

// NewUserHandler 创建处理器实例
func NewUserHandler(service UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List 用户列表（带角色），仅限管理员
// GET /users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.service.List()
	if err != nil {
		h.handleError(c, err)
		return
	}
	dto.SuccessResponse(c, users)
}

// GetByClerkID 按外部身份查询用户
// GET /users/:clerkId
func (h *UserHandler) GetByClerkID(c *gin.Context) {
	u, err := h.service.GetByClerkID(c.Param("clerkId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	dto.SuccessResponse(c, u)
}

// Create 创建用户
// POST /users
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	u, err := h.service.Create(&req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	dto.CreatedResponse(c, u)
}

// UpdateRole 修改用户角色
// PATCH /users/role/:id
func (h *UserHandler) UpdateRole(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.invalidID(c)
		return
	}

	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	u, err := h.service.UpdateRole(uint(id), req.RoleID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	dto.SuccessResponse(c, u)
}

// SetActivation 启用/停用账号
// PATCH /users/desactivate/:id
func (h *UserHandler) SetActivation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.invalidID(c)
		return
	}

	var req ActivationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	u, err := h.service.SetActivation(uint(id), *req.IsActivated)
	if err != nil {
		h.handleError(c, err)
		return
	}
	dto.SuccessResponse(c, u)
}

// ListRoles 角色列表
// GET /roles
func (h *UserHandler) ListRoles(c *gin.Context) {
	roles, err := h.service.ListRoles()
	if err != nil {
		h.handleError(c, err)
		return
	}
	dto.SuccessResponse(c, roles)
}

func (h *UserHandler) invalidID(c *gin.Context) {
	dto.ErrorResponse(c, response.NewBusinessError(
		response.WithErrorCode(response.InvalidParameter),
		response.WithErrorMessage("ID 无效"),
	))
}

// handleError 统一错误处理
func (h *UserHandler) handleError(c *gin.Context, err error) {
	code := response.Internal
	switch {
	case errors.Is(err, ErrUserNotFound):
		code = response.NotFound
	case errors.Is(err, ErrRoleNotFound):
		code = response.InvalidParameter
	case errors.Is(err, ErrDuplicateUser):
		code = response.Conflict
	}
	dto.ErrorResponse(c, response.NewBusinessError(
		response.WithErrorCode(code),
		response.WithErrorMessage(err.Error()),
		response.WithError(err),
	))
}
