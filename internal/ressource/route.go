package ressource

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"ressources-relationnelles/api/internal/middleware"
)

// SetupRessourceRoutes 注册资源相关路由
// 注意顺序：/public 和 /accessible 必须先于 /:id 注册
func SetupRessourceRoutes(router *gin.RouterGroup, db *gorm.DB) {
	repo := NewRessourceRepository(db)
	service := NewRessourceService(repo)
	handler := NewRessourceHandler(service)

	// 全量列表是后台接口，仅限管理类角色
	ressourcesAdmin := router.Group("/ressources")
	ressourcesAdmin.Use(middleware.JWTAuth(), middleware.RequireRole(db, "Admin", "Super-Admin"))
	{
		ressourcesAdmin.GET("", handler.ListAll)
	}

	ressources := router.Group("/ressources")
	{
		ressources.GET("/public", handler.ListPublic)
		ressources.GET("/accessible", handler.ListAccessible)
		ressources.GET("/:id", handler.GetByID)
		ressources.POST("", handler.Create)
		ressources.PATCH("/:id", handler.Update)
		ressources.DELETE("/:id", handler.Delete)
		ressources.POST("/:id/share", handler.Share)
	}
}
