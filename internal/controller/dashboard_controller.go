package controller

import (
	"rope_coach_backend/internal/service"
	"rope_coach_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Dashboard *service.DashboardService
}

func NewDashboardController(dashboard *service.DashboardService) *DashboardController {
	return &DashboardController{Dashboard: dashboard}
}

// GetOverview godoc
// @Summary 资产库总览
// @Description 八类资产数量与进行中的周期计划
// @Tags 工作台
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.LibraryOverview} "成功"
// @Router /api/dashboard/overview [get]
func (c *DashboardController) GetOverview(ctx *gin.Context) {
	overview, err := c.Dashboard.GetOverview()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, overview)
}

// GetPlanOutline godoc
// @Summary 训练计划周视图
// @Description 单元ID解析为名称，已删除的单元渲染为占位条目
// @Tags 工作台
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "计划ID"
// @Success 200 {object} util.Response{data=service.PlanOutline} "成功"
// @Failure 404 {object} util.Response "未找到"
// @Router /api/dashboard/plans/{id}/outline [get]
func (c *DashboardController) GetPlanOutline(ctx *gin.Context) {
	outline, err := c.Dashboard.GetPlanOutline(ctx.Param("id"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if outline == nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, outline)
}
