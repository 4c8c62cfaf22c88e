package ressourcetype

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRessourceTypeRoutes 注册资源类型相关路由
func SetupRessourceTypeRoutes(router *gin.RouterGroup, db *gorm.DB) {
	handler := NewRessourceTypeHandler(NewRessourceTypeRepo(db))

	types := router.Group("/ressourceTypes")
	{
		types.GET("", handler.List)
		types.GET("/:id", handler.GetByID)
		types.POST("", handler.Create)
		types.PUT("/:id", handler.Update)
		types.DELETE("/:id", handler.Delete)
	}
}
