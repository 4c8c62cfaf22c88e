package comment

import (
	"errors"
	"testing"

	"gorm.io/gorm"

	"ressources-relationnelles/api/internal/testutils"
)

// setupCommentService 创建 CommentService 实例用于测试
func setupCommentService(t *testing.T) (CommentService, *gorm.DB) {
	db := testutils.SetupTestDB(t)
	repo := NewCommentRepository(db)
	return NewCommentService(repo, db), db
}

// TestCreateComment_Integration 集成测试：创建评论与回复
func TestCreateComment_Integration(t *testing.T) {
	service, db := setupCommentService(t)

	publicType := testutils.CreateTestRessourceType(db, "Public")
	category := testutils.CreateTestCategory(db)
	author := testutils.CreateTestUser(db)
	res := testutils.CreateTestRessource(db, category.ID, publicType.ID)
	otherRes := testutils.CreateTestRessource(db, category.ID, publicType.ID)

	parent := testutils.CreateTestComment(db, res.ID, author.ID)
	foreignParent := testutils.CreateTestComment(db, otherRes.ID, author.ID)
	missingParent := "missing-parent-id"

	tests := []struct {
		name        string
		ressourceID string
		req         *CreateCommentRequest
		expectErr   error
	}{
		{
			name:        "create top level comment",
			ressourceID: res.ID,
			req: &CreateCommentRequest{
				Content:  "Très utile, merci",
				AuthorID: author.ID,
			},
		},
		{
			name:        "create reply",
			ressourceID: res.ID,
			req: &CreateCommentRequest{
				Content:  "Je suis d'accord",
				AuthorID: author.ID,
				ParentID: &parent.ID,
			},
		},
		{
			name:        "unknown ressource",
			ressourceID: "missing-ressource",
			req: &CreateCommentRequest{
				Content:  "orphelin",
				AuthorID: author.ID,
			},
			expectErr: ErrRessourceNotFound,
		},
		{
			name:        "parent from another ressource",
			ressourceID: res.ID,
			req: &CreateCommentRequest{
				Content:  "mauvais parent",
				AuthorID: author.ID,
				ParentID: &foreignParent.ID,
			},
			expectErr: ErrInvalidParentID,
		},
		{
			name:        "missing parent",
			ressourceID: res.ID,
			req: &CreateCommentRequest{
				Content:  "parent fantôme",
				AuthorID: author.ID,
				ParentID: &missingParent,
			},
			expectErr: ErrInvalidParentID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created, err := service.Create(tt.ressourceID, tt.req)
			if tt.expectErr != nil {
				if !errors.Is(err, tt.expectErr) {
					t.Errorf("expected %v, got %v", tt.expectErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Create failed: %v", err)
			}
			if created.ID == "" {
				t.Error("expected generated comment ID")
			}
			if created.RessourceID != tt.ressourceID {
				t.Errorf("comment attached to wrong ressource: %s", created.RessourceID)
			}
		})
	}
}

// TestCommentTree_Integration 树状视图在读取时组装
func TestCommentTree_Integration(t *testing.T) {
	service, db := setupCommentService(t)

	publicType := testutils.CreateTestRessourceType(db, "Public")
	category := testutils.CreateTestCategory(db)
	author := testutils.CreateTestUser(db)
	res := testutils.CreateTestRessource(db, category.ID, publicType.ID)

	root1 := testutils.CreateTestComment(db, res.ID, author.ID)
	root2 := testutils.CreateTestComment(db, res.ID, author.ID)
	reply1 := testutils.CreateTestComment(db, res.ID, author.ID, testutils.WithParent(root1.ID))
	reply2 := testutils.CreateTestComment(db, res.ID, author.ID, testutils.WithParent(root1.ID))
	nested := testutils.CreateTestComment(db, res.ID, author.ID, testutils.WithParent(reply1.ID))

	tree, err := service.ListByRessourceTree(res.ID)
	if err != nil {
		t.Fatalf("ListByRessourceTree failed: %v", err)
	}

	if len(tree) != 2 {
		t.Fatalf("expected 2 root comments, got %d", len(tree))
	}

	byID := make(map[string]bool)
	for _, c := range tree {
		byID[c.ID] = true
	}
	if !byID[root1.ID] || !byID[root2.ID] {
		t.Error("root comments missing from tree")
	}

	var node1 = tree[0]
	if node1.ID != root1.ID {
		node1 = tree[1]
	}
	if len(node1.Replies) != 2 {
		t.Fatalf("expected 2 replies under first root, got %d", len(node1.Replies))
	}

	foundNested := false
	for _, reply := range node1.Replies {
		if reply.ID == reply1.ID && len(reply.Replies) == 1 && reply.Replies[0].ID == nested.ID {
			foundNested = true
		}
		if reply.ID == reply2.ID && len(reply.Replies) != 0 {
			t.Error("reply2 should have no children")
		}
	}
	if !foundNested {
		t.Error("nested reply not attached under reply1")
	}

	// 扁平视图数量一致
	flat, err := service.ListByRessource(res.ID)
	if err != nil {
		t.Fatalf("ListByRessource failed: %v", err)
	}
	if len(flat) != 5 {
		t.Errorf("expected 5 comments in flat list, got %d", len(flat))
	}
}

// TestToggleLike_Integration 点赞两态循环：每一步核对计数
func TestToggleLike_Integration(t *testing.T) {
	service, db := setupCommentService(t)

	publicType := testutils.CreateTestRessourceType(db, "Public")
	category := testutils.CreateTestCategory(db)
	author := testutils.CreateTestUser(db)
	liker := testutils.CreateTestUser(db)
	res := testutils.CreateTestRessource(db, category.ID, publicType.ID)
	comment := testutils.CreateTestComment(db, res.ID, author.ID)

	assertCount := func(want int64) {
		t.Helper()
		count, err := service.CountLikes(comment.ID)
		if err != nil {
			t.Fatalf("CountLikes failed: %v", err)
		}
		if count != want {
			t.Fatalf("expected %d likes, got %d", want, count)
		}
	}

	assertCount(0)

	liked, err := service.ToggleLike(comment.ID, liker.ID)
	if err != nil {
		t.Fatalf("ToggleLike failed: %v", err)
	}
	if !liked {
		t.Error("first toggle should like")
	}
	assertCount(1)

	liked, err = service.ToggleLike(comment.ID, liker.ID)
	if err != nil {
		t.Fatalf("ToggleLike failed: %v", err)
	}
	if liked {
		t.Error("second toggle should unlike")
	}
	assertCount(0)

	liked, err = service.ToggleLike(comment.ID, liker.ID)
	if err != nil {
		t.Fatalf("ToggleLike failed: %v", err)
	}
	if !liked {
		t.Error("third toggle should like again")
	}
	assertCount(1)

	// 第二个用户独立计数
	if _, err := service.ToggleLike(comment.ID, author.ID); err != nil {
		t.Fatalf("ToggleLike failed: %v", err)
	}
	assertCount(2)

	_, err = service.ToggleLike("missing-comment", liker.ID)
	if !errors.Is(err, ErrCommentNotFound) {
		t.Errorf("expected ErrCommentNotFound, got %v", err)
	}

	// 点赞人不存在时拒绝，不落脏数据
	_, err = service.ToggleLike(comment.ID, 99999)
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound for unknown liker, got %v", err)
	}
	assertCount(2)
}

// TestUpdateComment_Integration 更新内容与 404
func TestUpdateComment_Integration(t *testing.T) {
	service, db := setupCommentService(t)

	publicType := testutils.CreateTestRessourceType(db, "Public")
	category := testutils.CreateTestCategory(db)
	author := testutils.CreateTestUser(db)
	res := testutils.CreateTestRessource(db, category.ID, publicType.ID)
	comment := testutils.CreateTestComment(db, res.ID, author.ID)

	updated, err := service.Update(comment.ID, &UpdateCommentRequest{Content: "Contenu corrigé"})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Content != "Contenu corrigé" {
		t.Errorf("content not updated: %q", updated.Content)
	}

	_, err = service.Update("missing-comment", &UpdateCommentRequest{Content: "x"})
	if !errors.Is(err, ErrCommentNotFound) {
		t.Errorf("expected ErrCommentNotFound, got %v", err)
	}
}

// TestDeleteComment_Integration 删除评论级联清理回复与点赞
func TestDeleteComment_Integration(t *testing.T) {
	service, db := setupCommentService(t)

	publicType := testutils.CreateTestRessourceType(db, "Public")
	category := testutils.CreateTestCategory(db)
	author := testutils.CreateTestUser(db)
	res := testutils.CreateTestRessource(db, category.ID, publicType.ID)
	comment := testutils.CreateTestComment(db, res.ID, author.ID)
	testutils.CreateTestComment(db, res.ID, author.ID, testutils.WithParent(comment.ID))

	if _, err := service.ToggleLike(comment.ID, author.ID); err != nil {
		t.Fatalf("ToggleLike failed: %v", err)
	}

	if err := service.Delete(comment.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := service.GetByID(comment.ID); !errors.Is(err, ErrCommentNotFound) {
		t.Errorf("expected ErrCommentNotFound after delete, got %v", err)
	}

	remaining, err := service.ListByRessource(res.ID)
	if err != nil {
		t.Fatalf("ListByRessource failed: %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("expected replies cascaded, %d comments remain", len(remaining))
	}

	if err := service.Delete(comment.ID); !errors.Is(err, ErrCommentNotFound) {
		t.Errorf("expected ErrCommentNotFound on second delete, got %v", err)
	}
}
