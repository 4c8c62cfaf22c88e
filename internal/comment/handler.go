package comment

import (
	"errors"
	"net/http"

	"ressources-relationnelles/api/internal/dto"
	"ressources-relationnelles/api/pkg/response"

	"github.com/gin-gonic/gin"
)

// CommentHandler 评论处理器
type CommentHandler struct {
	service CommentService
}

// NewCommentHandler 创建处理器实例
func NewCommentHandler(service CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

// ListByRessource 获取资源的所有评论
// GET /ressources/:id/comments（?tree=true 返回树状结构）
func (h *CommentHandler) ListByRessource(c *gin.Context) {
	ressourceID := c.Param("id")

	var (
		comments []*CommentResponse
		err      error
	)
	if c.Query("tree") == "true" {
		comments, err = h.service.ListByRessourceTree(ressourceID)
	} else {
		comments, err = h.service.ListByRessource(ressourceID)
	}
	if err != nil {
		h.handleError(c, err)
		return
	}
	dto.SuccessResponse(c, comments)
}

// GetByID 获取单条评论
// GET /comments/:id
func (h *CommentHandler) GetByID(c *gin.Context) {
	comment, err := h.service.GetByID(c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	dto.SuccessResponse(c, comment)
}

// Create 创建评论或回复
// POST /ressources/:id/comments
func (h *CommentHandler) Create(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	comment, err := h.service.Create(c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	dto.CreatedResponse(c, comment)
}

// Update 更新评论内容
// PUT /comments/:id
func (h *CommentHandler) Update(c *gin.Context) {
	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	comment, err := h.service.Update(c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	dto.SuccessResponse(c, comment)
}

// Delete 删除评论
// DELETE /comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	dto.SuccessResponse(c, nil)
}

// ToggleLike 点赞切换
// POST /comments/:id/like — 点上返回 201，取消返回 200
func (h *CommentHandler) ToggleLike(c *gin.Context) {
	var req LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	liked, err := h.service.ToggleLike(c.Param("id"), req.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if liked {
		c.JSON(http.StatusCreated, response.SuccessResponse(ToggleLikeResponse{Liked: true}))
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse(ToggleLikeResponse{Liked: false}))
}

// CountLikes 点赞数
// GET /comments/:id/likes/count
func (h *CommentHandler) CountLikes(c *gin.Context) {
	count, err := h.service.CountLikes(c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	dto.SuccessResponse(c, LikeCountResponse{Count: count})
}

// handleError 统一错误处理
func (h *CommentHandler) handleError(c *gin.Context, err error) {
	code := response.Internal
	switch {
	case errors.Is(err, ErrCommentNotFound), errors.Is(err, ErrRessourceNotFound), errors.Is(err, ErrUserNotFound):
		code = response.NotFound
	case errors.Is(err, ErrInvalidParentID):
		code = response.InvalidParameter
	}
	dto.ErrorResponse(c, response.NewBusinessError(
		response.WithErrorCode(code),
		response.WithErrorMessage(err.Error()),
		response.WithError(err),
	))
}
