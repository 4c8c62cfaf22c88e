package stats

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"ressources-relationnelles/api/internal/dto"
	"ressources-relationnelles/api/pkg/response"
)

// StatsHandler 统计接口处理器
type StatsHandler struct {
	service *StatsService
}

// NewStatsHandler 创建处理器实例
func NewStatsHandler(service *StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// RessourcesByCategory GET /stats/ressources-by-category
func (h *StatsHandler) RessourcesByCategory(c *gin.Context) {
	filter, bizErr := parseFilter(c)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	results, err := h.service.RessourcesByCategory(c.Request.Context(), filter)
	if err != nil {
		dto.ErrorResponse(c, internalError(err))
		return
	}
	dto.SuccessResponse(c, results)
}

// RessourcesByDate GET /stats/ressources-by-date
func (h *StatsHandler) RessourcesByDate(c *gin.Context) {
	filter, bizErr := parseFilter(c)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	results, err := h.service.RessourcesByDate(c.Request.Context(), filter)
	if err != nil {
		dto.ErrorResponse(c, internalError(err))
		return
	}
	dto.SuccessResponse(c, results)
}

// CountUsers GET /stats/user-count
func (h *StatsHandler) CountUsers(c *gin.Context) {
	filter, bizErr := parseFilter(c)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	result, err := h.service.CountUsers(c.Request.Context(), filter)
	if err != nil {
		dto.ErrorResponse(c, internalError(err))
		return
	}
	dto.SuccessResponse(c, result)
}

func invalidParam(msg string) *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.InvalidParameter),
		response.WithErrorMessage(msg),
	)
}

func internalError(err error) *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.Internal),
		response.WithErrorMessage("统计查询失败"),
		response.WithError(err),
	)
}

// parseFilter 解析查询参数，startDate/endDate 必须成对出现
func parseFilter(c *gin.Context) (StatsFilter, *response.BusinessError) {
	var filter StatsFilter

	startRaw := c.Query("startDate")
	endRaw := c.Query("endDate")
	if (startRaw == "") != (endRaw == "") {
		return filter, invalidParam("startDate 和 endDate 必须同时提供")
	}
	if startRaw != "" {
		start, err := time.Parse("2006-01-02", startRaw)
		if err != nil {
			return filter, invalidParam("startDate 格式错误，应为 YYYY-MM-DD")
		}
		end, err := time.Parse("2006-01-02", endRaw)
		if err != nil {
			return filter, invalidParam("endDate 格式错误，应为 YYYY-MM-DD")
		}
		// 结束日期取当天末尾，保证区间含当天数据
		end = end.Add(24*time.Hour - time.Nanosecond)
		filter.StartDate = &start
		filter.EndDate = &end
	}

	if categoryRaw := c.Query("categoryId"); categoryRaw != "" {
		categoryID, err := strconv.ParseUint(categoryRaw, 10, 32)
		if err != nil {
			return filter, invalidParam("categoryId 必须是数字")
		}
		id := uint(categoryID)
		filter.CategoryID = &id
	}

	return filter, nil
}
