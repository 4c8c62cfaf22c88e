package ressource

import (
	"errors"

	"gorm.io/gorm"

	ressourceModel "ressources-relationnelles/api/internal/model/ressource"
)

var (
	ErrRessourceNotFound = errors.New("资源不存在")
	ErrUserNotFound      = errors.New("用户不存在")
	ErrCategoryNotFound  = errors.New("分类不存在")
	ErrTypeNotFound      = errors.New("资源类型不存在")
	ErrAlreadyShared     = errors.New("已分享给该用户")
)

// RessourceService 资源服务接口
// 可见性解析：公开 / 本人所有 / 被分享 三类的并集
type RessourceService interface {
	ListAll() ([]ressourceModel.Ressource, error)
	ListPublic(categoryID *uint) ([]ressourceModel.Ressource, error)
	ListAccessible(clerkUserID string, categoryID *uint) ([]ressourceModel.Ressource, error)
	GetByID(id string) (*ressourceModel.Ressource, error)
	Create(req *CreateRessourceRequest) (*ressourceModel.Ressource, error)
	Update(id string, req *UpdateRessourceRequest) (*ressourceModel.Ressource, error)
	Delete(id string) error
	Share(ressourceID string, userID uint) (*ressourceModel.SharedRessource, error)
}

type ressourceService struct {
	repo RessourceRepository
}

// NewRessourceService 创建服务实例
func NewRessourceService(repo RessourceRepository) RessourceService {
	return &ressourceService{repo: repo}
}

func (s *ressourceService) ListAll() ([]ressourceModel.Ressource, error) {
	return s.repo.FindAll()
}

func (s *ressourceService) ListPublic(categoryID *uint) ([]ressourceModel.Ressource, error) {
	return s.repo.FindPublic(categoryID)
}

// ListAccessible 按外部身份解析内部用户后做复合可见性查询
// 未知身份返回 ErrUserNotFound（404），不会退化成空列表
func (s *ressourceService) ListAccessible(clerkUserID string, categoryID *uint) ([]ressourceModel.Ressource, error) {
	u, err := s.repo.FindUserByClerkID(clerkUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.repo.FindAccessible(u.ID, categoryID)
}

func (s *ressourceService) GetByID(id string) (*ressourceModel.Ressource, error) {
	res, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRessourceNotFound
		}
		return nil, err
	}
	return res, nil
}

// Create 插入前校验分类与类型存在（引用完整性在应用层先挡一遍）
func (s *ressourceService) Create(req *CreateRessourceRequest) (*ressourceModel.Ressource, error) {
	ok, err := s.repo.CategoryExists(req.CategoryID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrCategoryNotFound
	}

	ok, err = s.repo.RessourceTypeExists(req.RessourceTypeID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrTypeNotFound
	}

	owner, err := s.repo.FindUserByClerkID(req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	res := &ressourceModel.Ressource{
		Title:           req.Title,
		Description:     req.Description,
		UserID:          &owner.ID,
		CategoryID:      req.CategoryID,
		RessourceTypeID: req.RessourceTypeID,
		IsActive:        isActive,
	}
	if err := s.repo.Create(res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *ressourceService) Update(id string, req *UpdateRessourceRequest) (*ressourceModel.Ressource, error) {
	values := map[string]interface{}{}
	if req.Title != nil {
		values["title"] = *req.Title
	}
	if req.Description != nil {
		values["description"] = *req.Description
	}
	if req.CategoryID != nil {
		ok, err := s.repo.CategoryExists(*req.CategoryID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrCategoryNotFound
		}
		values["category_id"] = *req.CategoryID
	}
	if req.IsActive != nil {
		values["is_active"] = *req.IsActive
	}

	res, err := s.repo.Update(id, values)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRessourceNotFound
		}
		return nil, err
	}
	return res, nil
}

func (s *ressourceService) Delete(id string) error {
	err := s.repo.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRessourceNotFound
	}
	return err
}

// Share 显式授权。重复分享按冲突处理，不做静默幂等
// 复合主键兜底并发下的重复插入
func (s *ressourceService) Share(ressourceID string, userID uint) (*ressourceModel.SharedRessource, error) {
	if _, err := s.repo.FindByID(ressourceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRessourceNotFound
		}
		return nil, err
	}

	// 受让用户也要存在，授权不允许指向幽灵账号
	ok, err := s.repo.UserExists(userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUserNotFound
	}

	if _, err := s.repo.FindShare(userID, ressourceID); err == nil {
		return nil, ErrAlreadyShared
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	share := &ressourceModel.SharedRessource{
		UserID:      userID,
		RessourceID: ressourceID,
	}
	if err := s.repo.CreateShare(share); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyShared
		}
		return nil, err
	}
	return share, nil
}
