package category

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"ressources-relationnelles/api/internal/middleware"
	"ressources-relationnelles/api/internal/ressource"
)

// SetupCategoryRoutes 注册分类相关路由
// gin 要求同一位置的路径参数同名，因此 :name 同时承担 数字ID 和 分类名 两种解释
func SetupCategoryRoutes(router *gin.RouterGroup, db *gorm.DB) {
	repo := NewCategoryRepository(db)
	ressourceSvc := ressource.NewRessourceService(ressource.NewRessourceRepository(db))
	service := NewCategoryService(repo, ressourceSvc)
	handler := NewCategoryHandler(service)

	categories := router.Group("/categories")
	{
		categories.GET("", handler.List)
		categories.GET("/:name", handler.GetByID)

		// 按分类限定的可见性查询
		categories.GET("/:name/public", handler.ListPublic)
		categories.GET("/:name/accessible", handler.ListAccessible)
	}

	// 写操作仅限管理类角色
	categoriesAdmin := router.Group("/categories")
	categoriesAdmin.Use(middleware.JWTAuth(), middleware.RequireRole(db, "Admin", "Super-Admin"))
	{
		categoriesAdmin.POST("", handler.Create)
		categoriesAdmin.PATCH("/:name", handler.Update)
		categoriesAdmin.DELETE("/:name", handler.Delete)
	}
}
