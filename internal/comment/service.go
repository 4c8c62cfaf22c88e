package comment

import (
	"errors"

	"gorm.io/gorm"

	commentModel "ressources-relationnelles/api/internal/model/comment"
)

var (
	ErrCommentNotFound   = errors.New("评论不存在")
	ErrRessourceNotFound = errors.New("资源不存在")
	ErrUserNotFound      = errors.New("用户不存在")
	ErrInvalidParentID   = errors.New("父评论不存在或不属于该资源")
)

// CommentService 评论服务接口
type CommentService interface {
	// 获取资源的所有评论（扁平列表）
	ListByRessource(ressourceID string) ([]*CommentResponse, error)

	// 获取资源的所有评论（树状结构，读取时组装）
	ListByRessourceTree(ressourceID string) ([]*CommentResponse, error)

	GetByID(commentID string) (*CommentResponse, error)

	// 创建评论或回复
	Create(ressourceID string, req *CreateCommentRequest) (*CommentResponse, error)

	Update(commentID string, req *UpdateCommentRequest) (*CommentResponse, error)
	Delete(commentID string) error

	// 点赞切换：已点赞则取消，未点赞则点上
	ToggleLike(commentID string, userID uint) (bool, error)
	CountLikes(commentID string) (int64, error)
}

type commentService struct {
	repo CommentRepository
	db   *gorm.DB
}

// NewCommentService 创建服务实例
func NewCommentService(repo CommentRepository, db *gorm.DB) CommentService {
	return &commentService{repo: repo, db: db}
}

// ListByRessource 扁平列表，父子关系通过 parent_id 字段表达
func (s *commentService) ListByRessource(ressourceID string) ([]*CommentResponse, error) {
	comments, err := s.repo.FindByRessourceID(ressourceID)
	if err != nil {
		return nil, err
	}

	responses := make([]*CommentResponse, 0, len(comments))
	for i := range comments {
		responses = append(responses, ToCommentResponse(&comments[i]))
	}
	return responses, nil
}

// ListByRessourceTree 树状结构
// 评论平铺入库，层级视图在读取时按 id 索引组装
func (s *commentService) ListByRessourceTree(ressourceID string) ([]*CommentResponse, error) {
	comments, err := s.repo.FindByRessourceID(ressourceID)
	if err != nil {
		return nil, err
	}
	return buildCommentTree(comments), nil
}

func (s *commentService) GetByID(commentID string) (*CommentResponse, error) {
	comment, err := s.repo.FindByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return ToCommentResponse(comment), nil
}

// Create 创建评论
// 带 parentId 时校验父评论存在且属于同一资源，跨资源挂载一律拒绝
func (s *commentService) Create(ressourceID string, req *CreateCommentRequest) (*CommentResponse, error) {
	var exists int64
	if err := s.db.Table("ressources").Where("id = ?", ressourceID).Count(&exists).Error; err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, ErrRessourceNotFound
	}

	if req.ParentID != nil {
		parent, err := s.repo.FindByID(*req.ParentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrInvalidParentID
			}
			return nil, err
		}
		if parent.RessourceID != ressourceID {
			return nil, ErrInvalidParentID
		}
	}

	comment := &commentModel.Comment{
		Content:     req.Content,
		AuthorID:    req.AuthorID,
		RessourceID: ressourceID,
		ParentID:    req.ParentID,
	}
	if err := s.repo.Create(comment); err != nil {
		return nil, err
	}

	// 回读一次以带上作者信息
	created, err := s.repo.FindByID(comment.ID)
	if err != nil {
		return ToCommentResponse(comment), nil
	}
	return ToCommentResponse(created), nil
}

func (s *commentService) Update(commentID string, req *UpdateCommentRequest) (*CommentResponse, error) {
	comment, err := s.repo.UpdateContent(commentID, req.Content)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return ToCommentResponse(comment), nil
}

func (s *commentService) Delete(commentID string) error {
	err := s.repo.Delete(commentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrCommentNotFound
	}
	return err
}

// ToggleLike 两态切换：存在则删、不存在则插，整体跑在一个事务里
// 并发下同一 (comment_id, user_id) 的重复插入被复合主键挡下，
// 翻译成 ErrDuplicatedKey 后按"已点赞"处理，不会出现双重点赞
func (s *commentService) ToggleLike(commentID string, userID uint) (bool, error) {
	if _, err := s.repo.FindByID(commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrCommentNotFound
		}
		return false, err
	}

	// 点赞人必须存在，否则插入会撞上外键
	var userCount int64
	if err := s.db.Table("users").Where("id = ?", userID).Count(&userCount).Error; err != nil {
		return false, err
	}
	if userCount == 0 {
		return false, ErrUserNotFound
	}

	var liked bool
	err := s.repo.Transaction(func(txRepo CommentRepository) error {
		_, err := txRepo.FindLike(commentID, userID)
		switch {
		case err == nil:
			// 已点赞 -> 取消
			if _, err := txRepo.DeleteLike(commentID, userID); err != nil {
				return err
			}
			liked = false
			return nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			// 未点赞 -> 点上
			createErr := txRepo.CreateLike(&commentModel.CommentLike{
				CommentID: commentID,
				UserID:    userID,
			})
			if createErr != nil {
				if errors.Is(createErr, gorm.ErrDuplicatedKey) {
					// 并发竞争输家：对方已插入，视为点赞成功
					liked = true
					return nil
				}
				return createErr
			}
			liked = true
			return nil
		default:
			return err
		}
	})
	if err != nil {
		return false, err
	}
	return liked, nil
}

func (s *commentService) CountLikes(commentID string) (int64, error) {
	return s.repo.CountLikes(commentID)
}

// buildCommentTree 从扁平列表构建评论树
// 先建 id -> 节点 索引，再按 parent_id 挂接；父节点缺失的按顶级处理
func buildCommentTree(comments []commentModel.Comment) []*CommentResponse {
	if len(comments) == 0 {
		return []*CommentResponse{}
	}

	commentMap := make(map[string]*CommentResponse, len(comments))
	for i := range comments {
		commentMap[comments[i].ID] = ToCommentResponse(&comments[i])
	}

	roots := make([]*CommentResponse, 0)
	for i := range comments {
		c := &comments[i]
		resp := commentMap[c.ID]
		if c.ParentID != nil {
			if parent, ok := commentMap[*c.ParentID]; ok {
				parent.Replies = append(parent.Replies, resp)
				continue
			}
		}
		roots = append(roots, resp)
	}

	return roots
}
