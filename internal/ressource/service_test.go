package ressource

import (
	"errors"
	"testing"

	"gorm.io/gorm"

	"ressources-relationnelles/api/internal/testutils"
)

// setupRessourceService 创建 RessourceService 实例用于测试
func setupRessourceService(t *testing.T) (RessourceService, *gorm.DB) {
	db := testutils.SetupTestDB(t)
	repo := NewRessourceRepository(db)
	return NewRessourceService(repo), db
}

// TestListAccessible_Integration 集成测试：可见性并集
// 公开资源 + 本人资源 + 被分享资源，一次查询且不重复
func TestListAccessible_Integration(t *testing.T) {
	service, db := setupRessourceService(t)

	publicType := testutils.CreateTestRessourceType(db, "Public")
	privateType := testutils.CreateTestRessourceType(db, "Privé")
	category := testutils.CreateTestCategory(db)

	viewer := testutils.CreateTestUser(db)
	other := testutils.CreateTestUser(db)

	// 公开资源：任何人可见，归属他人
	publicRes := testutils.CreateTestRessource(db, category.ID, publicType.ID,
		testutils.WithOwner(other.ID))
	// 本人私有资源
	ownedRes := testutils.CreateTestRessource(db, category.ID, privateType.ID,
		testutils.WithOwner(viewer.ID))
	// 他人私有资源，分享给 viewer
	sharedRes := testutils.CreateTestRessource(db, category.ID, privateType.ID,
		testutils.WithOwner(other.ID))
	testutils.ShareRessource(db, sharedRes.ID, viewer.ID)
	// 他人私有资源，未分享，应当不可见
	hiddenRes := testutils.CreateTestRessource(db, category.ID, privateType.ID,
		testutils.WithOwner(other.ID))

	results, err := service.ListAccessible(viewer.ClerkUserID, nil)
	if err != nil {
		t.Fatalf("ListAccessible failed: %v", err)
	}

	seen := make(map[string]int)
	for _, res := range results {
		seen[res.ID]++
	}

	for _, id := range []string{publicRes.ID, ownedRes.ID, sharedRes.ID} {
		if seen[id] != 1 {
			t.Errorf("expected ressource %s exactly once, got %d", id, seen[id])
		}
	}
	if seen[hiddenRes.ID] != 0 {
		t.Errorf("hidden ressource %s should not be visible", hiddenRes.ID)
	}
}

// TestListAccessible_NoDuplicate 公开且被分享的资源只出现一次
func TestListAccessible_NoDuplicate(t *testing.T) {
	service, db := setupRessourceService(t)

	publicType := testutils.CreateTestRessourceType(db, "Public")
	category := testutils.CreateTestCategory(db)
	viewer := testutils.CreateTestUser(db)

	// viewer 自己的公开资源，再分享给自己：三个可见性条件同时命中
	res := testutils.CreateTestRessource(db, category.ID, publicType.ID,
		testutils.WithOwner(viewer.ID))
	testutils.ShareRessource(db, res.ID, viewer.ID)

	results, err := service.ListAccessible(viewer.ClerkUserID, nil)
	if err != nil {
		t.Fatalf("ListAccessible failed: %v", err)
	}

	count := 0
	for _, r := range results {
		if r.ID == res.ID {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected ressource exactly once, got %d", count)
	}
}

// TestListAccessible_UnknownUser 未知外部身份返回 404 而不是空列表
func TestListAccessible_UnknownUser(t *testing.T) {
	service, _ := setupRessourceService(t)

	_, err := service.ListAccessible("clerk_does_not_exist", nil)
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

// TestListAccessible_CategoryFilter 分类过滤叠加在可见性之上
func TestListAccessible_CategoryFilter(t *testing.T) {
	service, db := setupRessourceService(t)

	publicType := testutils.CreateTestRessourceType(db, "Public")
	catA := testutils.CreateTestCategory(db)
	catB := testutils.CreateTestCategory(db)
	viewer := testutils.CreateTestUser(db)

	inCat := testutils.CreateTestRessource(db, catA.ID, publicType.ID)
	outCat := testutils.CreateTestRessource(db, catB.ID, publicType.ID)

	results, err := service.ListAccessible(viewer.ClerkUserID, &catA.ID)
	if err != nil {
		t.Fatalf("ListAccessible failed: %v", err)
	}

	for _, r := range results {
		if r.ID == outCat.ID {
			t.Errorf("ressource %s from another category should be filtered out", outCat.ID)
		}
	}
	found := false
	for _, r := range results {
		if r.ID == inCat.ID {
			found = true
		}
	}
	if !found {
		t.Errorf("ressource %s in the filtered category is missing", inCat.ID)
	}
}

// TestListPublic_Integration 公开列表只含 Public 类型，大小写不敏感
func TestListPublic_Integration(t *testing.T) {
	service, db := setupRessourceService(t)

	publicType := testutils.CreateTestRessourceType(db, "public")
	privateType := testutils.CreateTestRessourceType(db, "Privé")
	category := testutils.CreateTestCategory(db)
	owner := testutils.CreateTestUser(db)

	publicRes := testutils.CreateTestRessource(db, category.ID, publicType.ID,
		testutils.WithOwner(owner.ID))
	privateRes := testutils.CreateTestRessource(db, category.ID, privateType.ID,
		testutils.WithOwner(owner.ID))

	results, err := service.ListPublic(nil)
	if err != nil {
		t.Fatalf("ListPublic failed: %v", err)
	}

	foundPublic := false
	for _, r := range results {
		if r.ID == privateRes.ID {
			t.Errorf("private ressource %s should not appear in public list", privateRes.ID)
		}
		if r.ID == publicRes.ID {
			foundPublic = true
		}
	}
	if !foundPublic {
		t.Errorf("public ressource %s is missing", publicRes.ID)
	}
}

// TestCreateRessource_Integration 创建资源及外键校验
func TestCreateRessource_Integration(t *testing.T) {
	service, db := setupRessourceService(t)

	publicType := testutils.CreateTestRessourceType(db, "Public")
	category := testutils.CreateTestCategory(db)
	owner := testutils.CreateTestUser(db)

	tests := []struct {
		name      string
		req       *CreateRessourceRequest
		expectErr error
	}{
		{
			name: "create successfully",
			req: &CreateRessourceRequest{
				Title:           "Guide famille",
				Description:     "description",
				CategoryID:      category.ID,
				RessourceTypeID: publicType.ID,
				UserID:          owner.ClerkUserID,
			},
		},
		{
			name: "unknown category",
			req: &CreateRessourceRequest{
				Title:           "Guide famille",
				CategoryID:      99999,
				RessourceTypeID: publicType.ID,
				UserID:          owner.ClerkUserID,
			},
			expectErr: ErrCategoryNotFound,
		},
		{
			name: "unknown type",
			req: &CreateRessourceRequest{
				Title:           "Guide famille",
				CategoryID:      category.ID,
				RessourceTypeID: 99999,
				UserID:          owner.ClerkUserID,
			},
			expectErr: ErrTypeNotFound,
		},
		{
			name: "unknown owner",
			req: &CreateRessourceRequest{
				Title:           "Guide famille",
				CategoryID:      category.ID,
				RessourceTypeID: publicType.ID,
				UserID:          "clerk_unknown",
			},
			expectErr: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := service.Create(tt.req)
			if tt.expectErr != nil {
				if !errors.Is(err, tt.expectErr) {
					t.Errorf("expected %v, got %v", tt.expectErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Create failed: %v", err)
			}
			if res.ID == "" {
				t.Error("expected generated string ID")
			}
			if res.UserID == nil || *res.UserID != owner.ID {
				t.Error("owner not resolved from external identity")
			}
		})
	}
}

// TestUpdateRessource_Integration 部分更新与 404
func TestUpdateRessource_Integration(t *testing.T) {
	service, db := setupRessourceService(t)

	publicType := testutils.CreateTestRessourceType(db, "Public")
	category := testutils.CreateTestCategory(db)
	res := testutils.CreateTestRessource(db, category.ID, publicType.ID)

	newTitle := "Titre modifié"
	updated, err := service.Update(res.ID, &UpdateRessourceRequest{Title: &newTitle})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Title != newTitle {
		t.Errorf("expected title %q, got %q", newTitle, updated.Title)
	}
	if updated.Description != res.Description {
		t.Errorf("untouched field changed: %q != %q", updated.Description, res.Description)
	}

	_, err = service.Update("missing-id", &UpdateRessourceRequest{Title: &newTitle})
	if !errors.Is(err, ErrRessourceNotFound) {
		t.Errorf("expected ErrRessourceNotFound, got %v", err)
	}

	// 空 PATCH 对已存在的资源是无害操作，不是 404
	same, err := service.Update(res.ID, &UpdateRessourceRequest{})
	if err != nil {
		t.Fatalf("empty update on existing ressource failed: %v", err)
	}
	if same.ID != res.ID || same.Title != newTitle {
		t.Errorf("empty update should return the row unchanged, got %+v", same)
	}

	_, err = service.Update("missing-id", &UpdateRessourceRequest{})
	if !errors.Is(err, ErrRessourceNotFound) {
		t.Errorf("expected ErrRessourceNotFound on empty update of missing id, got %v", err)
	}

	badCategory := uint(99999)
	_, err = service.Update(res.ID, &UpdateRessourceRequest{CategoryID: &badCategory})
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("expected ErrCategoryNotFound, got %v", err)
	}
}

// TestShareRessource_Integration 首次分享成功，重复分享冲突
func TestShareRessource_Integration(t *testing.T) {
	service, db := setupRessourceService(t)

	privateType := testutils.CreateTestRessourceType(db, "Privé")
	category := testutils.CreateTestCategory(db)
	owner := testutils.CreateTestUser(db)
	target := testutils.CreateTestUser(db)

	res := testutils.CreateTestRessource(db, category.ID, privateType.ID,
		testutils.WithOwner(owner.ID))

	share, err := service.Share(res.ID, target.ID)
	if err != nil {
		t.Fatalf("Share failed: %v", err)
	}
	if share.UserID != target.ID || share.RessourceID != res.ID {
		t.Error("share record does not match request")
	}

	_, err = service.Share(res.ID, target.ID)
	if !errors.Is(err, ErrAlreadyShared) {
		t.Errorf("expected ErrAlreadyShared on duplicate, got %v", err)
	}

	_, err = service.Share("missing-id", target.ID)
	if !errors.Is(err, ErrRessourceNotFound) {
		t.Errorf("expected ErrRessourceNotFound, got %v", err)
	}

	// 受让用户不存在时拒绝授权
	_, err = service.Share(res.ID, 99999)
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound for unknown grantee, got %v", err)
	}

	// 分享后对方可见
	results, err := service.ListAccessible(target.ClerkUserID, nil)
	if err != nil {
		t.Fatalf("ListAccessible failed: %v", err)
	}
	found := false
	for _, r := range results {
		if r.ID == res.ID {
			found = true
		}
	}
	if !found {
		t.Error("shared ressource not visible to target user")
	}
}

// TestDeleteRessource_Integration 删除与 404
func TestDeleteRessource_Integration(t *testing.T) {
	service, db := setupRessourceService(t)

	publicType := testutils.CreateTestRessourceType(db, "Public")
	category := testutils.CreateTestCategory(db)
	res := testutils.CreateTestRessource(db, category.ID, publicType.ID)

	if err := service.Delete(res.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	_, err := service.GetByID(res.ID)
	if !errors.Is(err, ErrRessourceNotFound) {
		t.Errorf("expected ErrRessourceNotFound after delete, got %v", err)
	}

	if err := service.Delete(res.ID); !errors.Is(err, ErrRessourceNotFound) {
		t.Errorf("expected ErrRessourceNotFound on second delete, got %v", err)
	}
}
