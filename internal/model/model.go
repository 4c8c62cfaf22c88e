package model

import (
	"gorm.io/gorm"

	categoryModel "ressources-relationnelles/api/internal/model/category"
	commentModel "ressources-relationnelles/api/internal/model/comment"
	ressourceModel "ressources-relationnelles/api/internal/model/ressource"
	userModel "ressources-relationnelles/api/internal/model/user"
)

func InitTable(db *gorm.DB) error {
	// 自动迁移数据库表结构
	err := db.AutoMigrate(
		// 用户与角色
		&userModel.Role{},
		&userModel.User{},
		// 分类与资源
		&categoryModel.Category{},
		&ressourceModel.RessourceType{},
		&ressourceModel.Ressource{},
		&ressourceModel.SharedRessource{},
		// 评论与点赞
		&commentModel.Comment{},
		&commentModel.CommentLike{},
	)
	if err != nil {
		return err
	}
	return nil
}
