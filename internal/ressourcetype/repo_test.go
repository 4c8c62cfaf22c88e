package ressourcetype

import (
	"errors"
	"testing"

	"gorm.io/gorm"

	"ressources-relationnelles/api/internal/testutils"
)

// TestToggleActive 删除即停用，再删即恢复
func TestToggleActive(t *testing.T) {
	db := testutils.SetupTestDB(t)
	repo := NewRessourceTypeRepo(db)

	rt := testutils.CreateTestRessourceType(db, "type_toggle_test")
	if !rt.IsActive {
		t.Fatal("new type should start active")
	}

	toggled, err := repo.ToggleActive(rt.ID)
	if err != nil {
		t.Fatalf("ToggleActive failed: %v", err)
	}
	if toggled.IsActive {
		t.Error("first toggle should deactivate")
	}

	toggled, err = repo.ToggleActive(rt.ID)
	if err != nil {
		t.Fatalf("ToggleActive failed: %v", err)
	}
	if !toggled.IsActive {
		t.Error("second toggle should reactivate")
	}

	_, err = repo.ToggleActive(99999)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound, got %v", err)
	}
}
