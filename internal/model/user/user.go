// Package user 用户与角色模型
package user

import "time"

// Role 角色表
// 固定种子集: Citoyen / Modérateur / Admin / Super-Admin
type Role struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(50);not null;uniqueIndex" json:"name"`
}

func (Role) TableName() string {
	return "roles"
}

// User 用户表
// ClerkUserID 是身份提供商下发的外部主体ID，内部关联一律用自增ID
type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ClerkUserID string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"clerk_user_id"`
	Email       string    `gorm:"type:varchar(255);not null" json:"email"`
	Name        string    `gorm:"type:varchar(255)" json:"name"`
	RoleID      uint      `gorm:"not null;index" json:"role_id"`
	// 创建路径总是显式赋值，不挂列默认值，false 才能如实落库
	IsActivated bool      `gorm:"not null" json:"is_activated"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// 关联（仅用于预加载）
	Role *Role `gorm:"foreignKey:RoleID" json:"role,omitempty"`
}

func (User) TableName() string {
	return "users"
}
