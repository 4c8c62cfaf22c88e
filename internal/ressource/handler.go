package ressource

import (
	"errors"

	"ressources-relationnelles/api/internal/dto"
	"ressources-relationnelles/api/pkg/response"

	"github.com/gin-gonic/gin"
)

// RessourceHandler 资源处理器
type RessourceHandler struct {
	service RessourceService
}

// NewRessourceHandler 创建处理器实例
func NewRessourceHandler(service RessourceService) *RessourceHandler {
	return &RessourceHandler{service: service}
}

// ListAll 后台资源列表
// GET /ressources
func (h *RessourceHandler) ListAll(c *gin.Context) {
	ressources, err := h.service.ListAll()
	if err != nil {
		h.handleError(c, err)
		return
	}
	dto.SuccessResponse(c, ressources)
}

// ListPublic 公开资源列表，无需认证
// GET /ressources/public
func (h *RessourceHandler) ListPublic(c *gin.Context) {
	ressources, err := h.service.ListPublic(nil)
	if err != nil {
		h.handleError(c, err)
		return
	}
	dto.SuccessResponse(c, ressources)
}

// ListAccessible 调用者可见的资源列表
// GET /ressources/accessible?clerkUserId=
func (h *RessourceHandler) ListAccessible(c *gin.Context) {
	clerkUserID := c.Query("clerkUserId")
	if clerkUserID == "" {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("clerkUserId 参数必填"),
		))
		return
	}

	ressources, err := h.service.ListAccessible(clerkUserID, nil)
	if err != nil {
		h.handleError(c, err)
		return
	}
	dto.SuccessResponse(c, ressources)
}

// GetByID 获取单个资源
// GET /ressources/:id
func (h *RessourceHandler) GetByID(c *gin.Context) {
	res, err := h.service.GetByID(c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	dto.SuccessResponse(c, res)
}

// Create 创建资源
// POST /ressources
func (h *RessourceHandler) Create(c *gin.Context) {
	var req CreateRessourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	res, err := h.service.Create(&req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	dto.CreatedResponse(c, res)
}

// Update 部分更新
// PATCH /ressources/:id
func (h *RessourceHandler) Update(c *gin.Context) {
	var req UpdateRessourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	res, err := h.service.Update(c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	dto.SuccessResponse(c, res)
}

// Delete 删除资源
// DELETE /ressources/:id
func (h *RessourceHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	dto.SuccessResponse(c, nil)
}

// Share 授权资源给指定用户
// POST /ressources/:id/share
func (h *RessourceHandler) Share(c *gin.Context) {
	var req ShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	share, err := h.service.Share(c.Param("id"), req.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	dto.CreatedResponse(c, share)
}

// handleError 统一错误处理
func (h *RessourceHandler) handleError(c *gin.Context, err error) {
	code := response.Internal
	switch {
	case errors.Is(err, ErrRessourceNotFound), errors.Is(err, ErrUserNotFound):
		code = response.NotFound
	case errors.Is(err, ErrCategoryNotFound), errors.Is(err, ErrTypeNotFound):
		code = response.InvalidParameter
	case errors.Is(err, ErrAlreadyShared):
		code = response.Conflict
	}
	dto.ErrorResponse(c, response.NewBusinessError(
		response.WithErrorCode(code),
		response.WithErrorMessage(err.Error()),
		response.WithError(err),
	))
}
