package user

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"ressources-relationnelles/api/internal/middleware"
)

// SetupUserRoutes 注册用户和角色相关路由
// 管理类接口走 JWT 认证 + 角色白名单
func SetupUserRoutes(router *gin.RouterGroup, db *gorm.DB) {
	repo := NewUserRepository(db)
	service := NewUserService(repo)
	handler := NewUserHandler(service)

	users := router.Group("/users")
	{
		users.POST("", handler.Create)
		users.GET("/:clerkId", handler.GetByClerkID)
	}

	// 管理接口
	usersAdmin := router.Group("/users")
	usersAdmin.Use(middleware.JWTAuth(), middleware.RequireRole(db, "Admin", "Super-Admin"))
	{
		usersAdmin.GET("", handler.List)
		usersAdmin.PATCH("/role/:id", handler.UpdateRole)
		usersAdmin.PATCH("/desactivate/:id", handler.SetActivation)
	}

	roles := router.Group("/roles")
	roles.Use(middleware.JWTAuth(), middleware.RequireRole(db, "Admin", "Super-Admin"))
	{
		roles.GET("", handler.ListRoles)
	}
}
