package seed

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"ressources-relationnelles/api/internal/model/category"
	"ressources-relationnelles/api/internal/model/ressource"
	"ressources-relationnelles/api/internal/model/user"
)

// 系统账号的外部标识，默认公共资源都挂在它名下
const systemClerkUserID = "system-default"

var defaultRoles = []string{"Citoyen", "Modérateur", "Admin", "Super-Admin"}

var defaultTypes = []string{"Public", "Privé"}

var defaultCategories = []string{"Divers", "family", "couple", "friends", "work"}

// Run 写入基础数据，可重复执行
// 角色、资源类型、分类、系统账号和每个分类下的默认公共资源
func Run(db *gorm.DB) error {
	if err := seedRoles(db); err != nil {
		return fmt.Errorf("写入角色失败: %w", err)
	}
	if err := seedRessourceTypes(db); err != nil {
		return fmt.Errorf("写入资源类型失败: %w", err)
	}
	if err := seedCategories(db); err != nil {
		return fmt.Errorf("写入分类失败: %w", err)
	}
	systemUser, err := seedSystemUser(db)
	if err != nil {
		return fmt.Errorf("写入系统账号失败: %w", err)
	}
	if err := seedDefaultRessources(db, systemUser); err != nil {
		return fmt.Errorf("写入默认资源失败: %w", err)
	}

	log.Println("基础数据初始化完成")
	return nil
}

func seedRoles(db *gorm.DB) error {
	for _, name := range defaultRoles {
		role := user.Role{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&role).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedRessourceTypes(db *gorm.DB) error {
	for _, name := range defaultTypes {
		rt := ressource.RessourceType{Name: name, IsActive: true}
		if err := db.Where("name = ?", name).FirstOrCreate(&rt).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedCategories(db *gorm.DB) error {
	for _, name := range defaultCategories {
		cat := category.Category{Name: name, IsActive: true}
		if err := db.Where("name = ?", name).FirstOrCreate(&cat).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedSystemUser(db *gorm.DB) (*user.User, error) {
	var adminRole user.Role
	if err := db.Where("name = ?", "Admin").First(&adminRole).Error; err != nil {
		return nil, err
	}

	systemUser := user.User{
		ClerkUserID: systemClerkUserID,
		Email:       "system@ressources-relationnelles.local",
		Name:        "Système",
		RoleID:      adminRole.ID,
		IsActivated: true,
	}
	if err := db.Where("clerk_user_id = ?", systemClerkUserID).FirstOrCreate(&systemUser).Error; err != nil {
		return nil, err
	}
	return &systemUser, nil
}

// seedDefaultRessources 每个分类下保证有一条公开资源
// 固定 ID 形如 default-<分类名>，重跑不会重复插入
func seedDefaultRessources(db *gorm.DB, systemUser *user.User) error {
	var publicType ressource.RessourceType
	if err := db.Where("LOWER(name) = ?", "public").First(&publicType).Error; err != nil {
		return err
	}

	for _, name := range defaultCategories {
		var cat category.Category
		if err := db.Where("name = ?", name).First(&cat).Error; err != nil {
			return err
		}

		res := ressource.Ressource{
			ID:              "default-" + name,
			Title:           "Ressource " + name,
			Description:     "Ressource publique par défaut de la catégorie " + name,
			UserID:          &systemUser.ID,
			CategoryID:      cat.ID,
			RessourceTypeID: publicType.ID,
			IsActive:        true,
		}
		if err := db.Where("id = ?", res.ID).FirstOrCreate(&res).Error; err != nil {
			return err
		}
	}
	return nil
}
