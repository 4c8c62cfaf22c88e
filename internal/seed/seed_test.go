package seed

import (
	"testing"

	"ressources-relationnelles/api/internal/model/category"
	"ressources-relationnelles/api/internal/model/ressource"
	"ressources-relationnelles/api/internal/model/user"
	"ressources-relationnelles/api/internal/testutils"
)

// TestSeed_Idempotent 种子数据可重复执行，不产生重复行
func TestSeed_Idempotent(t *testing.T) {
	db := testutils.SetupTestDB(t)

	if err := Run(db); err != nil {
		t.Fatalf("first seed run failed: %v", err)
	}
	if err := Run(db); err != nil {
		t.Fatalf("second seed run failed: %v", err)
	}

	var roleCount int64
	if err := db.Model(&user.Role{}).Where("name IN ?", defaultRoles).Count(&roleCount).Error; err != nil {
		t.Fatalf("count roles failed: %v", err)
	}
	if roleCount != int64(len(defaultRoles)) {
		t.Errorf("expected %d roles, got %d", len(defaultRoles), roleCount)
	}

	var typeCount int64
	if err := db.Model(&ressource.RessourceType{}).Where("name IN ?", defaultTypes).Count(&typeCount).Error; err != nil {
		t.Fatalf("count types failed: %v", err)
	}
	if typeCount != int64(len(defaultTypes)) {
		t.Errorf("expected %d ressource types, got %d", len(defaultTypes), typeCount)
	}

	var categoryCount int64
	if err := db.Model(&category.Category{}).Where("name IN ?", defaultCategories).Count(&categoryCount).Error; err != nil {
		t.Fatalf("count categories failed: %v", err)
	}
	if categoryCount != int64(len(defaultCategories)) {
		t.Errorf("expected %d categories, got %d", len(defaultCategories), categoryCount)
	}

	var systemUsers int64
	if err := db.Model(&user.User{}).Where("clerk_user_id = ?", systemClerkUserID).Count(&systemUsers).Error; err != nil {
		t.Fatalf("count system user failed: %v", err)
	}
	if systemUsers != 1 {
		t.Errorf("expected exactly one system user, got %d", systemUsers)
	}

	// 每个默认分类下都有一条固定ID的公开资源
	for _, name := range defaultCategories {
		var count int64
		if err := db.Model(&ressource.Ressource{}).Where("id = ?", "default-"+name).Count(&count).Error; err != nil {
			t.Fatalf("count default ressource failed: %v", err)
		}
		if count != 1 {
			t.Errorf("expected one default ressource for %s, got %d", name, count)
		}
	}
}

// TestSeed_SystemUserIsAdmin 系统账号挂 Admin 角色
func TestSeed_SystemUserIsAdmin(t *testing.T) {
	db := testutils.SetupTestDB(t)

	if err := Run(db); err != nil {
		t.Fatalf("seed run failed: %v", err)
	}

	var systemUser user.User
	if err := db.Preload("Role").Where("clerk_user_id = ?", systemClerkUserID).First(&systemUser).Error; err != nil {
		t.Fatalf("system user not found: %v", err)
	}
	if systemUser.Role == nil || systemUser.Role.Name != "Admin" {
		t.Errorf("expected system user to have Admin role, got %+v", systemUser.Role)
	}
}
