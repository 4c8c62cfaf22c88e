package category

import (
	"gorm.io/gorm"

	categoryModel "ressources-relationnelles/api/internal/model/category"
	ressourceModel "ressources-relationnelles/api/internal/model/ressource"
)

// CategoryRepository 分类数据访问接口
type CategoryRepository interface {
	FindAll() ([]categoryModel.Category, error)
	FindByID(id uint) (*categoryModel.Category, error)
	FindByName(name string) (*categoryModel.Category, error)
	Create(category *categoryModel.Category) error
	Update(id uint, values map[string]interface{}) (*categoryModel.Category, error)
	Delete(id uint) error
	CountRessources(categoryID uint) (int64, error)
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository 创建 Repository 实例
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) FindAll() ([]categoryModel.Category, error) {
	var categories []categoryModel.Category
	err := r.db.Order("id ASC").Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) FindByID(id uint) (*categoryModel.Category, error) {
	var category categoryModel.Category
	err := r.db.First(&category, id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindByName(name string) (*categoryModel.Category, error) {
	var category categoryModel.Category
	err := r.db.Where("name = ?", name).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) Create(category *categoryModel.Category) error {
	return r.db.Create(category).Error
}

// Update 空更新不发 SQL，直接回读，避免把无字段的 PATCH 误判成 404
func (r *categoryRepository) Update(id uint, values map[string]interface{}) (*categoryModel.Category, error) {
	if len(values) == 0 {
		return r.FindByID(id)
	}
	result := r.db.Model(&categoryModel.Category{}).Where("id = ?", id).Updates(values)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(id)
}

func (r *categoryRepository) Delete(id uint) error {
	result := r.db.Delete(&categoryModel.Category{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountRessources 统计引用该分类的资源数，用于删除前校验
func (r *categoryRepository) CountRessources(categoryID uint) (int64, error) {
	var count int64
	err := r.db.Model(&ressourceModel.Ressource{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	return count, err
}
