package route

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"ressources-relationnelles/api/config"
	"ressources-relationnelles/api/internal/category"
	"ressources-relationnelles/api/internal/comment"
	"ressources-relationnelles/api/internal/database"
	"ressources-relationnelles/api/internal/ressource"
	"ressources-relationnelles/api/internal/ressourcetype"
	"ressources-relationnelles/api/internal/stats"
	"ressources-relationnelles/api/internal/user"
)

func initRoute(r *gin.Engine) {
	db := database.GetDB()
	api := r.Group("")

	ressource.SetupRessourceRoutes(api, db)
	comment.SetupCommentRoutes(api, db)
	category.SetupCategoryRoutes(api, db)
	ressourcetype.SetupRessourceTypeRoutes(api, db)
	user.SetupUserRoutes(api, db)
	stats.SetupStatsRoutes(api, db, database.RedisClient)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// securityHeaders 基本安全响应头
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "no-referrer")
		c.Next()
	}
}

func SetupRouter() *gin.Engine {
	if config.Conf.Server.Mode != "" {
		gin.SetMode(config.Conf.Server.Mode)
	}

	r := gin.Default()

	origins := config.Conf.CORS.Origins
	if len(origins) == 0 {
		origins = []string{"http://localhost:5173"} // 默认值
	}

	// 设置跨域请求
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	r.Use(securityHeaders())

	initRoute(r)

	return r
}
