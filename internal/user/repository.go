package user

import (
	"gorm.io/gorm"

	userModel "ressources-relationnelles/api/internal/model/user"
)

// UserRepository 用户数据访问接口
type UserRepository interface {
	FindAll() ([]userModel.User, error)
	FindByID(id uint) (*userModel.User, error)
	FindByClerkID(clerkUserID string) (*userModel.User, error)
	Create(u *userModel.User) error
	UpdateRole(id uint, roleID uint) (*userModel.User, error)
	SetActivation(id uint, activated bool) (*userModel.User, error)

	FindAllRoles() ([]userModel.Role, error)
	RoleExists(id uint) (bool, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建 Repository 实例
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindAll() ([]userModel.User, error) {
	var users []userModel.User
	err := r.db.Preload("Role").Order("id ASC").Find(&users).Error
	return users, err
}

func (r *userRepository) FindByID(id uint) (*userModel.User, error) {
	var u userModel.User
	err := r.db.Preload("Role").First(&u, id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) FindByClerkID(clerkUserID string) (*userModel.User, error) {
	var u userModel.User
	err := r.db.Preload("Role").Where("clerk_user_id = ?", clerkUserID).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) Create(u *userModel.User) error {
	return r.db.Create(u).Error
}

func (r *userRepository) UpdateRole(id uint, roleID uint) (*userModel.User, error) {
	result := r.db.Model(&userModel.User{}).Where("id = ?", id).Update("role_id", roleID)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(id)
}

func (r *userRepository) SetActivation(id uint, activated bool) (*userModel.User, error) {
	result := r.db.Model(&userModel.User{}).Where("id = ?", id).Update("is_activated", activated)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(id)
}

func (r *userRepository) FindAllRoles() ([]userModel.Role, error) {
	var roles []userModel.Role
	err := r.db.Order("id ASC").Find(&roles).Error
	return roles, err
}

func (r *userRepository) RoleExists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&userModel.Role{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
