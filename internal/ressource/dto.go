package ressource

// ========== 请求 DTO ==========

// CreateRessourceRequest 创建资源请求
// UserID 是身份提供商下发的外部用户ID
type CreateRessourceRequest struct {
	Title           string `json:"title" binding:"required,min=1,max=255"`
	Description     string `json:"description" binding:"max=10000"`
	CategoryID      uint   `json:"categoryId" binding:"required"`
	RessourceTypeID uint   `json:"ressourceTypeId" binding:"required"`
	UserID          string `json:"userId" binding:"required"`
	IsActive        *bool  `json:"isActive"`
}

// UpdateRessourceRequest 部分更新请求，nil 字段不动
type UpdateRessourceRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	CategoryID  *uint   `json:"categoryId"`
	IsActive    *bool   `json:"isActive"`
}

// ShareRequest 分享请求
type ShareRequest struct {
	UserID uint `json:"userId" binding:"required"`
}
