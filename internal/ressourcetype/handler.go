package ressourcetype

import (
	"errors"
	"strconv"

	"ressources-relationnelles/api/internal/dto"
	ressourceModel "ressources-relationnelles/api/internal/model/ressource"
	"ressources-relationnelles/api/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RessourceTypeHandler struct {
	repo *RessourceTypeRepo
}

func NewRessourceTypeHandler(repo *RessourceTypeRepo) *RessourceTypeHandler {
	return &RessourceTypeHandler{repo: repo}
}

type createTypeRequest struct {
	Name string `json:"name" binding:"required,min=1,max=50"`
}

type updateTypeRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=50"`
	IsActive *bool  `json:"isActive"`
}

// List GET /ressourceTypes
func (h *RessourceTypeHandler) List(c *gin.Context) {
	types, err := h.repo.FindAll()
	if err != nil {
		h.handleError(c, err)
		return
	}
	dto.SuccessResponse(c, types)
}

// GetByID GET /ressourceTypes/:id
func (h *RessourceTypeHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.invalidID(c)
		return
	}

	rt, err := h.repo.FindByID(uint(id))
	if err != nil {
		h.handleError(c, err)
		return
	}
	dto.SuccessResponse(c, rt)
}

// Create POST /ressourceTypes
func (h *RessourceTypeHandler) Create(c *gin.Context) {
	var req createTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	rt := &ressourceModel.RessourceType{Name: req.Name, IsActive: true}
	if err := h.repo.Create(rt); err != nil {
		h.handleError(c, err)
		return
	}
	dto.CreatedResponse(c, rt)
}

// Update PUT /ressourceTypes/:id
func (h *RessourceTypeHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.invalidID(c)
		return
	}

	var req updateTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	rt, err := h.repo.FindByID(uint(id))
	if err != nil {
		h.handleError(c, err)
		return
	}

	rt.Name = req.Name
	if req.IsActive != nil {
		rt.IsActive = *req.IsActive
	}
	if err := h.repo.Update(rt); err != nil {
		h.handleError(c, err)
		return
	}
	dto.SuccessResponse(c, rt)
}

// Delete DELETE /ressourceTypes/:id
// 逻辑删除：切换 is_active
func (h *RessourceTypeHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.invalidID(c)
		return
	}

	rt, err := h.repo.ToggleActive(uint(id))
	if err != nil {
		h.handleError(c, err)
		return
	}
	dto.SuccessResponse(c, rt)
}

func (h *RessourceTypeHandler) invalidID(c *gin.Context) {
	dto.ErrorResponse(c, response.NewBusinessError(
		response.WithErrorCode(response.InvalidParameter),
		response.WithErrorMessage("ID 无效"),
	))
}

func (h *RessourceTypeHandler) handleError(c *gin.Context, err error) {
	code := response.Internal
	msg := "操作失败"
	if errors.Is(err, gorm.ErrRecordNotFound) {
		code = response.NotFound
		msg = "资源类型不存在"
	}
	dto.ErrorResponse(c, response.NewBusinessError(
		response.WithErrorCode(code),
		response.WithErrorMessage(msg),
		response.WithError(err),
	))
}
