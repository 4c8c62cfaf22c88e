package middleware

import (
	"fmt"

	"ressources-relationnelles/api/config"
	"ressources-relationnelles/api/internal/dto"
	userModel "ressources-relationnelles/api/internal/model/user"
	"ressources-relationnelles/api/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// Claims JWT 载荷
// Subject 携带身份提供商的外部用户ID（clerkUserId）
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// parseToken 从 cookie 或 Authorization header 中解析 token
func parseToken(c *gin.Context) (*Claims, error) {
	var tokenString string

	// 优先从 cookie 中获取 access_token
	tokenString, err := c.Cookie("access_token")
	if err != nil || tokenString == "" {
		// 如果 cookie 中没有，尝试从 Authorization header 获取
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			return nil, fmt.Errorf("未提供认证令牌")
		}

		// 验证格式: Bearer <token>
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenString = authHeader[7:]
		} else {
			return nil, fmt.Errorf("认证格式错误")
		}
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// 验证签名算法
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.Conf.JWT.Secret), nil
	})

	if err != nil {
		return nil, fmt.Errorf("无效的认证令牌")
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid && claims.Subject != "" {
		return claims, nil
	}

	return nil, fmt.Errorf("认证令牌无效")
}

// JWTAuth JWT 认证中间件（必需认证）
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := parseToken(c)
		if err != nil {
			dto.ErrorResponse(c, response.NewBusinessError(
				response.WithErrorCode(response.Unauthorized),
				response.WithErrorMessage(err.Error()),
			))
			c.Abort()
			return
		}

		// 将外部身份存入上下文
		c.Set("clerk_user_id", claims.Subject)
		c.Set("email", claims.Email)
		c.Next()
	}
}

// OptionalJWTAuth 可选的 JWT 认证中间件（不强制要求认证，但如果有token则解析）
func OptionalJWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := parseToken(c)
		if err == nil && claims != nil {
			c.Set("clerk_user_id", claims.Subject)
			c.Set("email", claims.Email)
		}
		// 无论是否有 token，都继续执行
		c.Next()
	}
}

// RequireRole 角色白名单中间件
// 每个请求都重新从数据库解析"外部身份 -> 用户 -> 角色"，服务端不缓存角色状态
func RequireRole(db *gorm.DB, allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		clerkUserID := c.GetString("clerk_user_id")
		if clerkUserID == "" {
			dto.ErrorResponse(c, response.NewBusinessError(
				response.WithErrorCode(response.Unauthorized),
				response.WithErrorMessage("未提供认证令牌"),
			))
			c.Abort()
			return
		}

		var u userModel.User
		err := db.Preload("Role").Where("clerk_user_id = ?", clerkUserID).First(&u).Error
		if err != nil {
			code := response.Internal
			msg := "查询用户失败"
			if err == gorm.ErrRecordNotFound {
				code = response.NotFound
				msg = "用户不存在"
			}
			dto.ErrorResponse(c, response.NewBusinessError(
				response.WithErrorCode(code),
				response.WithErrorMessage(msg),
				response.WithError(err),
			))
			c.Abort()
			return
		}

		if !u.IsActivated {
			dto.ErrorResponse(c, response.NewBusinessError(
				response.WithErrorCode(response.Forbidden),
				response.WithErrorMessage("账号已停用"),
			))
			c.Abort()
			return
		}

		roleName := ""
		if u.Role != nil {
			roleName = u.Role.Name
		}
		if !roleAllowed(roleName, allowedRoles) {
			dto.ErrorResponse(c, response.NewBusinessError(
				response.WithErrorCode(response.Forbidden),
				response.WithErrorMessage("权限不足"),
			))
			c.Abort()
			return
		}

		c.Set("user_id", u.ID)
		c.Set("user_role", roleName)
		c.Next()
	}
}

func roleAllowed(role string, allowed []string) bool {
	for _, a := range allowed {
		if a == role {
			return true
		}
	}
	return false
}
