package comment

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupCommentRoutes 注册评论相关路由
func SetupCommentRoutes(router *gin.RouterGroup, db *gorm.DB) {
	repo := NewCommentRepository(db)
	service := NewCommentService(repo, db)
	handler := NewCommentHandler(service)

	// ========== 资源下的评论 ==========
	ressources := router.Group("/ressources")
	{
		ressources.GET("/:id/comments", handler.ListByRessource)
		ressources.POST("/:id/comments", handler.Create)
	}

	// ========== 评论操作 ==========
	comments := router.Group("/comments")
	{
		comments.GET("/:id", handler.GetByID)
		comments.PUT("/:id", handler.Update)
		comments.DELETE("/:id", handler.Delete)
		comments.POST("/:id/like", handler.ToggleLike)
		comments.GET("/:id/likes/count", handler.CountLikes)
	}
}
