package testutils

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	categoryModel "ressources-relationnelles/api/internal/model/category"
	commentModel "ressources-relationnelles/api/internal/model/comment"
	ressourceModel "ressources-relationnelles/api/internal/model/ressource"
	userModel "ressources-relationnelles/api/internal/model/user"
)

// CreateTestRole creates a role with a unique name unless overridden
func CreateTestRole(db *gorm.DB, opts ...RoleOption) *userModel.Role {
	role := &userModel.Role{
		Name: fmt.Sprintf("role_%s", uuid.NewString()),
	}

	for _, opt := range opts {
		opt(role)
	}

	if err := db.Where("name = ?", role.Name).FirstOrCreate(role).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test role: %v", err))
	}
	return role
}

// RoleOption configures test role
type RoleOption func(*userModel.Role)

// WithRoleName sets the role name
func WithRoleName(name string) RoleOption {
	return func(r *userModel.Role) {
		r.Name = name
	}
}

// CreateTestUser creates a test user with unique clerk id/email
// A fresh role is created when none is provided
func CreateTestUser(db *gorm.DB, opts ...UserOption) *userModel.User {
	uniqueID := uuid.NewString()
	testUser := &userModel.User{
		ClerkUserID: fmt.Sprintf("clerk_%s", uniqueID),
		Email:       fmt.Sprintf("test_%s@example.com", uniqueID),
		Name:        fmt.Sprintf("Test User %s", uniqueID[:8]),
		IsActivated: true,
	}

	for _, opt := range opts {
		opt(testUser)
	}

	if testUser.RoleID == 0 {
		role := CreateTestRole(db)
		testUser.RoleID = role.ID
	}

	if err := db.Create(testUser).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test user: %v", err))
	}
	return testUser
}

// UserOption configures test user
type UserOption func(*userModel.User)

// WithClerkUserID sets the external identity key
func WithClerkUserID(clerkUserID string) UserOption {
	return func(u *userModel.User) {
		u.ClerkUserID = clerkUserID
	}
}

// WithRoleID sets the role
func WithRoleID(roleID uint) UserOption {
	return func(u *userModel.User) {
		u.RoleID = roleID
	}
}

// WithActivation sets the activation flag
func WithActivation(activated bool) UserOption {
	return func(u *userModel.User) {
		u.IsActivated = activated
	}
}

// CreateTestCategory creates a category with a unique name
func CreateTestCategory(db *gorm.DB, opts ...CategoryOption) *categoryModel.Category {
	category := &categoryModel.Category{
		Name:        fmt.Sprintf("category_%s", uuid.NewString()),
		Description: "Test category",
		IsActive:    true,
	}

	for _, opt := range opts {
		opt(category)
	}

	if err := db.Create(category).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test category: %v", err))
	}
	return category
}

// CategoryOption configures test category
type CategoryOption func(*categoryModel.Category)

// WithCategoryName sets the category name
func WithCategoryName(name string) CategoryOption {
	return func(c *categoryModel.Category) {
		c.Name = name
	}
}

// CreateTestRessourceType creates a ressource type
// Visibility rules match on the name, so pass "Public" when needed
func CreateTestRessourceType(db *gorm.DB, name string) *ressourceModel.RessourceType {
	rt := &ressourceModel.RessourceType{
		Name:     name,
		IsActive: true,
	}
	if err := db.Where("name = ?", name).FirstOrCreate(rt).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test ressource type: %v", err))
	}
	return rt
}

// CreateTestRessource creates a test ressource
func CreateTestRessource(db *gorm.DB, categoryID, typeID uint, opts ...RessourceOption) *ressourceModel.Ressource {
	uniqueID := uuid.NewString()
	res := &ressourceModel.Ressource{
		Title:           fmt.Sprintf("Test Ressource %s", uniqueID[:8]),
		Description:     "Test ressource description",
		CategoryID:      categoryID,
		RessourceTypeID: typeID,
		IsActive:        true,
	}

	for _, opt := range opts {
		opt(res)
	}

	if err := db.Create(res).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test ressource: %v", err))
	}
	return res
}

// RessourceOption configures test ressource
type RessourceOption func(*ressourceModel.Ressource)

// WithOwner sets the owning user
func WithOwner(userID uint) RessourceOption {
	return func(r *ressourceModel.Ressource) {
		r.UserID = &userID
	}
}

// WithRessourceTitle sets the title
func WithRessourceTitle(title string) RessourceOption {
	return func(r *ressourceModel.Ressource) {
		r.Title = title
	}
}

// ShareRessource grants a user access to a ressource
func ShareRessource(db *gorm.DB, ressourceID string, userID uint) {
	share := &ressourceModel.SharedRessource{
		UserID:      userID,
		RessourceID: ressourceID,
	}
	if err := db.Create(share).Error; err != nil {
		panic(fmt.Sprintf("Failed to share test ressource: %v", err))
	}
}

// CreateTestComment creates a comment on a ressource
func CreateTestComment(db *gorm.DB, ressourceID string, authorID uint, opts ...CommentOption) *commentModel.Comment {
	c := &commentModel.Comment{
		Content:     fmt.Sprintf("Test comment %s", uuid.NewString()[:8]),
		AuthorID:    authorID,
		RessourceID: ressourceID,
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := db.Create(c).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test comment: %v", err))
	}
	return c
}

// CommentOption configures test comment
type CommentOption func(*commentModel.Comment)

// WithParent sets the parent comment
func WithParent(parentID string) CommentOption {
	return func(c *commentModel.Comment) {
		c.ParentID = &parentID
	}
}

// WithContent sets the comment body
func WithContent(content string) CommentOption {
	return func(c *commentModel.Comment) {
		c.Content = content
	}
}
