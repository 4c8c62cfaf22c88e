// Package ressource 资源相关模型
package ressource

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	categoryModel "ressources-relationnelles/api/internal/model/category"
	userModel "ressources-relationnelles/api/internal/model/user"
)

// RessourceType 资源类型表
// 名称驱动可见性规则，"Public" 按不区分大小写匹配
type RessourceType struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"type:varchar(50);not null" json:"name"`
	IsActive bool   `gorm:"not null" json:"is_active"`
}

func (RessourceType) TableName() string {
	return "ressource_types"
}

// Ressource 资源表
// UserID 可空：种子数据归属系统用户之前可能暂无归属
type Ressource struct {
	ID              string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Title           string    `gorm:"type:varchar(255);not null" json:"title"`
	Description     string    `gorm:"type:text" json:"description"`
	UserID          *uint     `gorm:"index" json:"user_id,omitempty"`
	CategoryID      uint      `gorm:"not null;index" json:"category_id"`
	RessourceTypeID uint      `gorm:"not null;index" json:"ressource_type_id"`
	IsActive        bool      `gorm:"not null" json:"is_active"`
	CreatedAt       time.Time `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// 关联（仅用于预加载）
	Category      *categoryModel.Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	RessourceType *RessourceType          `gorm:"foreignKey:RessourceTypeID" json:"ressource_type,omitempty"`
	User          *userModel.User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Ressource) TableName() string {
	return "ressources"
}

// BeforeCreate 生成字符串主键
func (r *Ressource) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// SharedRessource 资源分享表
// (user_id, ressource_id) 复合主键保证同一资源对同一用户只授权一次
type SharedRessource struct {
	UserID      uint      `gorm:"primaryKey" json:"user_id"`
	RessourceID string    `gorm:"type:varchar(36);primaryKey" json:"ressource_id"`
	CreatedAt   time.Time `json:"created_at"`

	Ressource *Ressource      `gorm:"foreignKey:RessourceID;constraint:OnDelete:CASCADE" json:"-"`
	User      *userModel.User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (SharedRessource) TableName() string {
	return "shared_ressources"
}
