package user

import (
	"errors"

	"gorm.io/gorm"

	userModel "ressources-relationnelles/api/internal/model/user"
)

var (
	ErrUserNotFound  = errors.New("用户不存在")
	ErrRoleNotFound  = errors.New("角色不存在")
	ErrDuplicateUser = errors.New("该外部用户ID已注册")
)

// CreateUserRequest 创建用户请求
// 用户在身份提供商首次登录或由管理员录入时创建
type CreateUserRequest struct {
	ClerkUserID string `json:"clerkUserId" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Name        string `json:"name" binding:"max=255"`
	RoleID      uint   `json:"roleId" binding:"required"`
}

// UpdateRoleRequest 修改角色请求
type UpdateRoleRequest struct {
	RoleID uint `json:"roleId" binding:"required"`
}

// ActivationRequest 启停用请求
type ActivationRequest struct {
	IsActivated *bool `json:"isActivated" binding:"required"`
}

// UserService 用户服务接口
type UserService interface {
	List() ([]userModel.User, error)
	GetByClerkID(clerkUserID string) (*userModel.User, error)
	Create(req *CreateUserRequest) (*userModel.User, error)
	UpdateRole(id uint, roleID uint) (*userModel.User, error)
	SetActivation(id uint, activated bool) (*userModel.User, error)
	ListRoles() ([]userModel.Role, error)
}

type userService struct {
	repo UserRepository
}

// NewUserService 创建服务实例
func NewUserService(repo UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) List() ([]userModel.User, error) {
	return s.repo.FindAll()
}

func (s *userService) GetByClerkID(clerkUserID string) (*userModel.User, error) {
	u, err := s.repo.FindByClerkID(clerkUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *userService) Create(req *CreateUserRequest) (*userModel.User, error) {
	ok, err := s.repo.RoleExists(req.RoleID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrRoleNotFound
	}

	u := &userModel.User{
		ClerkUserID: req.ClerkUserID,
		Email:       req.Email,
		Name:        req.Name,
		RoleID:      req.RoleID,
		IsActivated: true,
	}
	if err := s.repo.Create(u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateUser
		}
		return nil, err
	}
	return u, nil
}

func (s *userService) UpdateRole(id uint, roleID uint) (*userModel.User, error) {
	ok, err := s.repo.RoleExists(roleID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrRoleNotFound
	}

	u, err := s.repo.UpdateRole(id, roleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *userService) SetActivation(id uint, activated bool) (*userModel.User, error) {
	u, err := s.repo.SetActivation(id, activated)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *userService) ListRoles() ([]userModel.Role, error) {
	return s.repo.FindAllRoles()
}
