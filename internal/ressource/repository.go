package ressource

import (
	"gorm.io/gorm"

	ressourceModel "ressources-relationnelles/api/internal/model/ressource"
	userModel "ressources-relationnelles/api/internal/model/user"
)

// RessourceRepository 资源数据访问接口
type RessourceRepository interface {
	// Ressource 相关
	FindAll() ([]ressourceModel.Ressource, error)
	FindPublic(categoryID *uint) ([]ressourceModel.Ressource, error)
	FindAccessible(userID uint, categoryID *uint) ([]ressourceModel.Ressource, error)
	FindByID(id string) (*ressourceModel.Ressource, error)
	Create(r *ressourceModel.Ressource) error
	Update(id string, values map[string]interface{}) (*ressourceModel.Ressource, error)
	Delete(id string) error

	// 分享相关
	FindShare(userID uint, ressourceID string) (*ressourceModel.SharedRessource, error)
	CreateShare(share *ressourceModel.SharedRessource) error

	// 外键校验
	CategoryExists(id uint) (bool, error)
	RessourceTypeExists(id uint) (bool, error)
	UserExists(id uint) (bool, error)
	FindUserByClerkID(clerkUserID string) (*userModel.User, error)
}

type ressourceRepository struct {
	db *gorm.DB
}

// NewRessourceRepository 创建 Repository 实例
func NewRessourceRepository(db *gorm.DB) RessourceRepository {
	return &ressourceRepository{db: db}
}

// FindAll 后台列表：全部资源，带分类和类型
func (r *ressourceRepository) FindAll() ([]ressourceModel.Ressource, error) {
	var ressources []ressourceModel.Ressource
	err := r.db.Preload("Category").Preload("RessourceType").
		Order("created_at DESC").
		Find(&ressources).Error
	return ressources, err
}

// FindPublic 公开资源：类型名不区分大小写等于 "Public"
func (r *ressourceRepository) FindPublic(categoryID *uint) ([]ressourceModel.Ressource, error) {
	var ressources []ressourceModel.Ressource
	query := r.db.
		Joins("JOIN ressource_types rt ON rt.id = ressources.ressource_type_id").
		Where("LOWER(rt.name) = ?", "public")
	if categoryID != nil {
		query = query.Where("ressources.category_id = ?", *categoryID)
	}
	err := query.
		Preload("Category").Preload("RessourceType").Preload("User").
		Order("ressources.created_at DESC").
		Find(&ressources).Error
	return ressources, err
}

// FindAccessible 可见性查询
// 单条复合 OR 查询：公开类型 / 本人所有 / 被分享。一次取出，天然去重
func (r *ressourceRepository) FindAccessible(userID uint, categoryID *uint) ([]ressourceModel.Ressource, error) {
	var ressources []ressourceModel.Ressource
	query := r.db.
		Joins("JOIN ressource_types rt ON rt.id = ressources.ressource_type_id").
		Where(`LOWER(rt.name) = ?
			OR ressources.user_id = ?
			OR EXISTS (
				SELECT 1 FROM shared_ressources sr
				WHERE sr.ressource_id = ressources.id AND sr.user_id = ?
			)`, "public", userID, userID)
	if categoryID != nil {
		query = query.Where("ressources.category_id = ?", *categoryID)
	}
	err := query.
		Preload("Category").Preload("RessourceType").Preload("User").
		Order("ressources.created_at DESC").
		Find(&ressources).Error
	return ressources, err
}

func (r *ressourceRepository) FindByID(id string) (*ressourceModel.Ressource, error) {
	var ressource ressourceModel.Ressource
	err := r.db.Preload("Category").Preload("RessourceType").
		Where("id = ?", id).First(&ressource).Error
	if err != nil {
		return nil, err
	}
	return &ressource, nil
}

func (r *ressourceRepository) Create(res *ressourceModel.Ressource) error {
	return r.db.Create(res).Error
}

// Update 部分更新，只改传入的字段
// 空更新不发 SQL，直接回读，避免把无字段的 PATCH 误判成 404
func (r *ressourceRepository) Update(id string, values map[string]interface{}) (*ressourceModel.Ressource, error) {
	if len(values) == 0 {
		return r.FindByID(id)
	}
	result := r.db.Model(&ressourceModel.Ressource{}).Where("id = ?", id).Updates(values)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(id)
}

// Delete 删除资源，分享记录与评论由外键级联清理
func (r *ressourceRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&ressourceModel.Ressource{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ========== 分享相关操作 ==========

func (r *ressourceRepository) FindShare(userID uint, ressourceID string) (*ressourceModel.SharedRessource, error) {
	var share ressourceModel.SharedRessource
	err := r.db.Where("user_id = ? AND ressource_id = ?", userID, ressourceID).
		First(&share).Error
	if err != nil {
		return nil, err
	}
	return &share, nil
}

func (r *ressourceRepository) CreateShare(share *ressourceModel.SharedRessource) error {
	return r.db.Create(share).Error
}

// ========== 外键校验 ==========

func (r *ressourceRepository) CategoryExists(id uint) (bool, error) {
	var count int64
	err := r.db.Table("categories").Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *ressourceRepository) RessourceTypeExists(id uint) (bool, error) {
	var count int64
	err := r.db.Table("ressource_types").Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *ressourceRepository) UserExists(id uint) (bool, error) {
	var count int64
	err := r.db.Table("users").Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *ressourceRepository) FindUserByClerkID(clerkUserID string) (*userModel.User, error) {
	var u userModel.User
	err := r.db.Where("clerk_user_id = ?", clerkUserID).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}
