package comment

import (
	"time"

	commentModel "ressources-relationnelles/api/internal/model/comment"
)

// ========== 请求 DTO ==========

// CreateCommentRequest 创建评论请求
type CreateCommentRequest struct {
	Content  string  `json:"content" binding:"required,min=1,max=5000"` // 评论内容，1-5000字符
	AuthorID uint    `json:"authorId" binding:"required"`
	ParentID *string `json:"parentId"`
}

// UpdateCommentRequest 更新评论请求
type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required,min=1,max=5000"`
}

// LikeRequest 点赞请求
type LikeRequest struct {
	UserID uint `json:"userId" binding:"required"`
}

// ========== 响应 DTO ==========

// AuthorInfo 评论作者信息（简化版）
type AuthorInfo struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// CommentResponse 评论响应
// 扁平返回时 Replies 为空；树状返回时子评论挂在 Replies 下
type CommentResponse struct {
	ID          string      `json:"id"`
	RessourceID string      `json:"ressource_id"`
	ParentID    *string     `json:"parent_id,omitempty"`
	Content     string      `json:"content"`
	AuthorID    uint        `json:"author_id"`
	Author      *AuthorInfo `json:"author,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`

	Replies []*CommentResponse `json:"replies,omitempty"`
}

// ToggleLikeResponse 点赞切换结果
type ToggleLikeResponse struct {
	Liked bool `json:"liked"`
}

// LikeCountResponse 点赞数
type LikeCountResponse struct {
	Count int64 `json:"count"`
}

// ToCommentResponse 将 Model 转换为 Response DTO（不含子评论）
func ToCommentResponse(c *commentModel.Comment) *CommentResponse {
	resp := &CommentResponse{
		ID:          c.ID,
		RessourceID: c.RessourceID,
		ParentID:    c.ParentID,
		Content:     c.Content,
		AuthorID:    c.AuthorID,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	if c.Author != nil {
		resp.Author = &AuthorInfo{
			ID:   c.Author.ID,
			Name: c.Author.Name,
		}
	}
	return resp
}
