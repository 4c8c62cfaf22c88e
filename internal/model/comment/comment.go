// Package comment 评论与点赞模型
package comment

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	ressourceModel "ressources-relationnelles/api/internal/model/ressource"
	userModel "ressources-relationnelles/api/internal/model/user"
)

// Comment 评论表
// ParentID 自引用，NULL 表示顶级评论；父评论必须属于同一资源
type Comment struct {
	ID          string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	AuthorID    uint      `gorm:"not null;index" json:"author_id"`
	RessourceID string    `gorm:"type:varchar(36);not null;index" json:"ressource_id"`
	ParentID    *string   `gorm:"type:varchar(36);index" json:"parent_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// 关联（仅用于预加载）
	Author    *userModel.User           `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Ressource *ressourceModel.Ressource `gorm:"foreignKey:RessourceID;constraint:OnDelete:CASCADE" json:"-"`
	Parent    *Comment                  `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE" json:"-"`
	Replies   []Comment                 `gorm:"foreignKey:ParentID" json:"-"`
}

func (Comment) TableName() string {
	return "comments"
}

// BeforeCreate 生成字符串主键并拒绝空内容
func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.Content == "" {
		return gorm.ErrInvalidData
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// CommentLike 评论点赞表
// (comment_id, user_id) 复合主键：并发点赞竞争由该唯一约束兜底
type CommentLike struct {
	CommentID string    `gorm:"type:varchar(36);primaryKey" json:"comment_id"`
	UserID    uint      `gorm:"primaryKey" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	Comment *Comment        `gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE" json:"-"`
	User    *userModel.User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (CommentLike) TableName() string {
	return "comment_likes"
}
