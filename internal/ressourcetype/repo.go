package ressourcetype

import (
	"gorm.io/gorm"

	ressourceModel "ressources-relationnelles/api/internal/model/ressource"
)

type RessourceTypeRepo struct {
	db *gorm.DB
}

func NewRessourceTypeRepo(db *gorm.DB) *RessourceTypeRepo {
	return &RessourceTypeRepo{db: db}
}

func (r *RessourceTypeRepo) FindAll() ([]ressourceModel.RessourceType, error) {
	var types []ressourceModel.RessourceType
	err := r.db.Order("id ASC").Find(&types).Error
	return types, err
}

func (r *RessourceTypeRepo) FindByID(id uint) (*ressourceModel.RessourceType, error) {
	var rt ressourceModel.RessourceType
	err := r.db.First(&rt, id).Error
	if err != nil {
		return nil, err
	}
	return &rt, nil
}

func (r *RessourceTypeRepo) Create(rt *ressourceModel.RessourceType) error {
	return r.db.Create(rt).Error
}

func (r *RessourceTypeRepo) Update(rt *ressourceModel.RessourceType) error {
	return r.db.Save(rt).Error
}

// ToggleActive 类型不做物理删除，"删除"即停用/启用切换
func (r *RessourceTypeRepo) ToggleActive(id uint) (*ressourceModel.RessourceType, error) {
	rt, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	rt.IsActive = !rt.IsActive
	if err := r.db.Save(rt).Error; err != nil {
		return nil, err
	}
	return rt, nil
}
