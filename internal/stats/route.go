package stats

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"ressources-relationnelles/api/internal/middleware"
	"ressources-relationnelles/api/pkg/database"
)

// SetupStatsRoutes 注册统计相关路由
// 统计数据只对管理类角色开放
func SetupStatsRoutes(router *gin.RouterGroup, db *gorm.DB, redis *database.RedisClient) {
	service := NewStatsService(db, redis)
	handler := NewStatsHandler(service)

	stats := router.Group("/stats")
	stats.Use(middleware.JWTAuth(), middleware.RequireRole(db, "Modérateur", "Admin", "Super-Admin"))
	{
		stats.GET("/ressources-by-category", handler.RessourcesByCategory)
		stats.GET("/ressources-by-date", handler.RessourcesByDate)
		stats.GET("/user-count", handler.CountUsers)
	}
}
