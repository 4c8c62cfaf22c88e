package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"ressources-relationnelles/api/config"
	"ressources-relationnelles/api/internal/testutils"
)

const testSecret = "auth-middleware-test-secret"

// setupAuthRouter 一条受 JWTAuth + RequireRole 保护的测试路由
func setupAuthRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	config.Conf = &config.AppConfig{JWT: config.JWTConfig{Secret: testSecret}}

	db := testutils.SetupTestDB(t)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin-only", JWTAuth(), RequireRole(db, "Admin", "Super-Admin"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r, db
}

func signTestToken(t *testing.T, clerkUserID string) string {
	t.Helper()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   clerkUserID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return token
}

// TestRequireRole_Integration 认证与角色白名单的完整分类：
// 未认证 401 / 未知用户 404 / 停用或角色不符 403 / 放行 200
func TestRequireRole_Integration(t *testing.T) {
	r, db := setupAuthRouter(t)

	adminRole := testutils.CreateTestRole(db, testutils.WithRoleName("Admin"))
	citoyenRole := testutils.CreateTestRole(db, testutils.WithRoleName("Citoyen"))

	admin := testutils.CreateTestUser(db, testutils.WithRoleID(adminRole.ID))
	citoyen := testutils.CreateTestUser(db, testutils.WithRoleID(citoyenRole.ID))
	deactivated := testutils.CreateTestUser(db,
		testutils.WithRoleID(adminRole.ID),
		testutils.WithActivation(false))

	tests := []struct {
		name       string
		token      string
		wantStatus int
	}{
		{
			name:       "no token",
			token:      "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "garbage token",
			token:      "not-a-jwt",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unknown user",
			token:      signTestToken(t, "clerk_never_registered"),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "deactivated account",
			token:      signTestToken(t, deactivated.ClerkUserID),
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "role not allowed",
			token:      signTestToken(t, citoyen.ClerkUserID),
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "admin passes",
			token:      signTestToken(t, admin.ClerkUserID),
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d (body: %s)", tt.wantStatus, w.Code, w.Body.String())
			}
		})
	}
}

// TestJWTAuth_CookieFallback cookie 中的 access_token 也能通过认证
func TestJWTAuth_CookieFallback(t *testing.T) {
	r, db := setupAuthRouter(t)

	adminRole := testutils.CreateTestRole(db, testutils.WithRoleName("Admin"))
	admin := testutils.CreateTestUser(db, testutils.WithRoleID(adminRole.ID))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: signTestToken(t, admin.ClerkUserID)})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200 via cookie token, got %d", w.Code)
	}
}
