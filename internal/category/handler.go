package category

import (
	"errors"
	"strconv"

	"ressources-relationnelles/api/internal/dto"
	"ressources-relationnelles/api/internal/ressource"
	"ressources-relationnelles/api/pkg/response"

	"github.com/gin-gonic/gin"
)

// CategoryHandler 分类处理器
type CategoryHandler struct {
	service CategoryService
}

// NewCategoryHandler 创建处理器实例
func NewCategoryHandler(service CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// List GET /categories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.service.List()
	if err != nil {
		h.handleError(c, err)
		return
	}
	dto.SuccessResponse(c, categories)
}

// GetByID GET /categories/:name（数字ID）
func (h *CategoryHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("name"), 10, 32)
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("ID 无效"),
		))
		return
	}

	category, err := h.service.GetByID(uint(id))
	if err != nil {
		h.handleError(c, err)
		return
	}
	dto.SuccessResponse(c, category)
}

// Create POST /categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	category, err := h.service.Create(&req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	dto.CreatedResponse(c, category)
}

// Update PATCH /categories/:name（数字ID）
func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("name"), 10, 32)
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("ID 无效"),
		))
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	category, err := h.service.Update(uint(id), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	dto.SuccessResponse(c, category)
}

// Delete DELETE /categories/:name（数字ID）
// 分类仍被资源引用时返回 400
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("name"), 10, 32)
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("ID 无效"),
		))
		return
	}

	if err := h.service.Delete(uint(id)); err != nil {
		h.handleError(c, err)
		return
	}
	dto.SuccessResponse(c, nil)
}

// ListPublic GET /categories/:name/public
func (h *CategoryHandler) ListPublic(c *gin.Context) {
	ressources, err := h.service.ListPublicByName(c.Param("name"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	dto.SuccessResponse(c, ressources)
}

// ListAccessible GET /categories/:name/accessible?clerkUserId=
func (h *CategoryHandler) ListAccessible(c *gin.Context) {
	clerkUserID := c.Query("clerkUserId")
	if clerkUserID == "" {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("clerkUserId 参数必填"),
		))
		return
	}

	ressources, err := h.service.ListAccessibleByName(c.Param("name"), clerkUserID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	dto.SuccessResponse(c, ressources)
}

// handleError 统一错误处理
func (h *CategoryHandler) handleError(c *gin.Context, err error) {
	code := response.Internal
	switch {
	case errors.Is(err, ErrCategoryNotFound), errors.Is(err, ressource.ErrUserNotFound):
		code = response.NotFound
	case errors.Is(err, ErrCategoryInUse):
		code = response.InvalidParameter
	case errors.Is(err, ErrDuplicateName):
		code = response.Conflict
	}
	dto.ErrorResponse(c, response.NewBusinessError(
		response.WithErrorCode(code),
		response.WithErrorMessage(err.Error()),
		response.WithError(err),
	))
}
