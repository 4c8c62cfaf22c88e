package comment

import (
	"gorm.io/gorm"

	commentModel "ressources-relationnelles/api/internal/model/comment"
)

// CommentRepository 评论数据访问接口
type CommentRepository interface {
	// Comment 相关
	FindByRessourceID(ressourceID string) ([]commentModel.Comment, error)
	FindByID(commentID string) (*commentModel.Comment, error)
	Create(comment *commentModel.Comment) error
	UpdateContent(commentID string, content string) (*commentModel.Comment, error)
	Delete(commentID string) error

	// Like 相关
	FindLike(commentID string, userID uint) (*commentModel.CommentLike, error)
	CreateLike(like *commentModel.CommentLike) error
	DeleteLike(commentID string, userID uint) (int64, error)
	CountLikes(commentID string) (int64, error)

	// 事务入口
	Transaction(fn func(txRepo CommentRepository) error) error
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository 创建 Repository 实例
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// FindByRessourceID 获取资源下的全部评论（扁平列表，带作者）
func (r *commentRepository) FindByRessourceID(ressourceID string) ([]commentModel.Comment, error) {
	var comments []commentModel.Comment
	err := r.db.Preload("Author").
		Where("ressource_id = ?", ressourceID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) FindByID(commentID string) (*commentModel.Comment, error) {
	var comment commentModel.Comment
	err := r.db.Preload("Author").Where("id = ?", commentID).First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) Create(comment *commentModel.Comment) error {
	return r.db.Create(comment).Error
}

// UpdateContent 只更新 content 和 updated_at
func (r *commentRepository) UpdateContent(commentID string, content string) (*commentModel.Comment, error) {
	result := r.db.Model(&commentModel.Comment{}).
		Where("id = ?", commentID).
		Update("content", content)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(commentID)
}

// Delete 删除评论，子回复与点赞由外键级联清理
func (r *commentRepository) Delete(commentID string) error {
	result := r.db.Where("id = ?", commentID).Delete(&commentModel.Comment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ========== Like 相关操作 ==========

func (r *commentRepository) FindLike(commentID string, userID uint) (*commentModel.CommentLike, error) {
	var like commentModel.CommentLike
	err := r.db.Where("comment_id = ? AND user_id = ?", commentID, userID).
		First(&like).Error
	if err != nil {
		return nil, err
	}
	return &like, nil
}

func (r *commentRepository) CreateLike(like *commentModel.CommentLike) error {
	return r.db.Create(like).Error
}

func (r *commentRepository) DeleteLike(commentID string, userID uint) (int64, error) {
	result := r.db.Where("comment_id = ? AND user_id = ?", commentID, userID).
		Delete(&commentModel.CommentLike{})
	return result.RowsAffected, result.Error
}

func (r *commentRepository) CountLikes(commentID string) (int64, error) {
	var count int64
	err := r.db.Model(&commentModel.CommentLike{}).
		Where("comment_id = ?", commentID).
		Count(&count).Error
	return count, err
}

// Transaction 在一个数据库事务内执行 fn
func (r *commentRepository) Transaction(fn func(txRepo CommentRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&commentRepository{db: tx})
	})
}
