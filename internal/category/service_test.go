package category

import (
	"errors"
	"testing"

	"gorm.io/gorm"

	"ressources-relationnelles/api/internal/ressource"
	"ressources-relationnelles/api/internal/testutils"
)

// setupCategoryService 创建 CategoryService 实例用于测试
func setupCategoryService(t *testing.T) (CategoryService, *gorm.DB) {
	db := testutils.SetupTestDB(t)
	repo := NewCategoryRepository(db)
	ressourceSvc := ressource.NewRessourceService(ressource.NewRessourceRepository(db))
	return NewCategoryService(repo, ressourceSvc), db
}

// TestCreateCategory_Integration 创建分类与重名冲突
func TestCreateCategory_Integration(t *testing.T) {
	service, _ := setupCategoryService(t)

	created, err := service.Create(&CreateCategoryRequest{
		Name:        "santé",
		Description: "Ressources santé et bien-être",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == 0 {
		t.Error("expected generated ID")
	}
	if !created.IsActive {
		t.Error("new category should be active")
	}

	_, err = service.Create(&CreateCategoryRequest{Name: "santé"})
	if !errors.Is(err, ErrDuplicateName) {
		t.Errorf("expected ErrDuplicateName, got %v", err)
	}
}

// TestUpdateCategory_Integration 更新与 404
func TestUpdateCategory_Integration(t *testing.T) {
	service, db := setupCategoryService(t)

	category := testutils.CreateTestCategory(db)

	newName := "catégorie renommée"
	updated, err := service.Update(category.ID, &UpdateCategoryRequest{Name: &newName})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Name != newName {
		t.Errorf("expected name %q, got %q", newName, updated.Name)
	}

	_, err = service.Update(99999, &UpdateCategoryRequest{Name: &newName})
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("expected ErrCategoryNotFound, got %v", err)
	}

	// 空 PATCH 对已存在的分类是无害操作，不是 404
	same, err := service.Update(category.ID, &UpdateCategoryRequest{})
	if err != nil {
		t.Fatalf("empty update on existing category failed: %v", err)
	}
	if same.ID != category.ID || same.Name != newName {
		t.Errorf("empty update should return the row unchanged, got %+v", same)
	}
}

// TestDeleteCategory_Integration 被引用的分类不能删除，清空引用后可删
func TestDeleteCategory_Integration(t *testing.T) {
	service, db := setupCategoryService(t)

	publicType := testutils.CreateTestRessourceType(db, "Public")
	category := testutils.CreateTestCategory(db)
	res := testutils.CreateTestRessource(db, category.ID, publicType.ID)

	err := service.Delete(category.ID)
	if !errors.Is(err, ErrCategoryInUse) {
		t.Fatalf("expected ErrCategoryInUse while referenced, got %v", err)
	}

	// 清掉引用后删除应当成功
	if err := db.Delete(res).Error; err != nil {
		t.Fatalf("failed to remove ressource: %v", err)
	}
	if err := service.Delete(category.ID); err != nil {
		t.Fatalf("Delete failed after references removed: %v", err)
	}

	if _, err := service.GetByID(category.ID); !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("expected ErrCategoryNotFound after delete, got %v", err)
	}

	if err := service.Delete(99999); !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("expected ErrCategoryNotFound for unknown id, got %v", err)
	}
}

// TestListByName_Integration 按分类名的可见性查询
func TestListByName_Integration(t *testing.T) {
	service, db := setupCategoryService(t)

	publicType := testutils.CreateTestRessourceType(db, "Public")
	privateType := testutils.CreateTestRessourceType(db, "Privé")
	category := testutils.CreateTestCategory(db)
	otherCategory := testutils.CreateTestCategory(db)
	viewer := testutils.CreateTestUser(db)

	publicRes := testutils.CreateTestRessource(db, category.ID, publicType.ID)
	ownedRes := testutils.CreateTestRessource(db, category.ID, privateType.ID,
		testutils.WithOwner(viewer.ID))
	testutils.CreateTestRessource(db, otherCategory.ID, publicType.ID)

	publicList, err := service.ListPublicByName(category.Name)
	if err != nil {
		t.Fatalf("ListPublicByName failed: %v", err)
	}
	if len(publicList) != 1 || publicList[0].ID != publicRes.ID {
		t.Errorf("expected only public ressource of the category, got %d entries", len(publicList))
	}

	accessible, err := service.ListAccessibleByName(category.Name, viewer.ClerkUserID)
	if err != nil {
		t.Fatalf("ListAccessibleByName failed: %v", err)
	}
	seen := make(map[string]bool)
	for _, r := range accessible {
		seen[r.ID] = true
	}
	if !seen[publicRes.ID] || !seen[ownedRes.ID] {
		t.Error("accessible list missing public or owned ressource")
	}
	if len(accessible) != 2 {
		t.Errorf("expected 2 accessible ressources, got %d", len(accessible))
	}

	_, err = service.ListPublicByName("unknown-category")
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("expected ErrCategoryNotFound, got %v", err)
	}

	_, err = service.ListAccessibleByName(category.Name, "clerk_unknown")
	if !errors.Is(err, ressource.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
