package category

import (
	"errors"

	"gorm.io/gorm"

	categoryModel "ressources-relationnelles/api/internal/model/category"
	ressourceModel "ressources-relationnelles/api/internal/model/ressource"
	"ressources-relationnelles/api/internal/ressource"
)

var (
	ErrCategoryNotFound = errors.New("分类不存在")
	ErrDuplicateName    = errors.New("分类名称已存在")
	ErrCategoryInUse    = errors.New("分类已被资源引用，不能删除")
)

// CreateCategoryRequest 创建分类请求
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"max=2000"`
}

// UpdateCategoryRequest 更新分类请求
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// CategoryService 分类服务接口
type CategoryService interface {
	List() ([]categoryModel.Category, error)
	GetByID(id uint) (*categoryModel.Category, error)
	Create(req *CreateCategoryRequest) (*categoryModel.Category, error)
	Update(id uint, req *UpdateCategoryRequest) (*categoryModel.Category, error)
	Delete(id uint) error

	// 按分类名限定的可见性查询，委托给资源服务
	ListPublicByName(name string) ([]ressourceModel.Ressource, error)
	ListAccessibleByName(name string, clerkUserID string) ([]ressourceModel.Ressource, error)
}

type categoryService struct {
	repo         CategoryRepository
	ressourceSvc ressource.RessourceService
}

// NewCategoryService 创建服务实例
func NewCategoryService(repo CategoryRepository, ressourceSvc ressource.RessourceService) CategoryService {
	return &categoryService{
		repo:         repo,
		ressourceSvc: ressourceSvc,
	}
}

func (s *categoryService) List() ([]categoryModel.Category, error) {
	return s.repo.FindAll()
}

func (s *categoryService) GetByID(id uint) (*categoryModel.Category, error) {
	category, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Create(req *CreateCategoryRequest) (*categoryModel.Category, error) {
	category := &categoryModel.Category{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
	}
	if err := s.repo.Create(category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Update(id uint, req *UpdateCategoryRequest) (*categoryModel.Category, error) {
	values := map[string]interface{}{}
	if req.Name != nil {
		values["name"] = *req.Name
	}
	if req.Description != nil {
		values["description"] = *req.Description
	}

	category, err := s.repo.Update(id, values)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrCategoryNotFound
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return category, nil
}

// Delete 引用完整性：仍有资源挂在该分类下时拒绝删除
func (s *categoryService) Delete(id uint) error {
	count, err := s.repo.CountRessources(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}

	err = s.repo.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrCategoryNotFound
	}
	return err
}

func (s *categoryService) ListPublicByName(name string) ([]ressourceModel.Ressource, error) {
	category, err := s.repo.FindByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return s.ressourceSvc.ListPublic(&category.ID)
}

func (s *categoryService) ListAccessibleByName(name string, clerkUserID string) ([]ressourceModel.Ressource, error) {
	category, err := s.repo.FindByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return s.ressourceSvc.ListAccessible(clerkUserID, &category.ID)
}
