package controller

import (
	"errors"
	"time"

	"rope_coach_backend/internal/model"
	"rope_coach_backend/internal/service"
	"rope_coach_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// CycleController 周期模板维护、排课与课次进度。
type CycleController struct {
	Library *service.LibraryService
	Cycles  *service.CycleService
	Reports *service.ReportService
}

func NewCycleController(library *service.LibraryService, cycles *service.CycleService, reports *service.ReportService) *CycleController {
	return &CycleController{Library: library, Cycles: cycles, Reports: reports}
}

// ListTemplates godoc
// @Summary 周期模板列表
// @Tags 周期训练
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.CycleTemplate} "成功"
// @Router /api/cycle-templates [get]
func (c *CycleController) ListTemplates(ctx *gin.Context) {
	items, err := c.Library.ListCycleTemplates()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, items)
}

// GetTemplate godoc
// @Summary 获取周期模板
// @Tags 周期训练
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "模板ID"
// @Success 200 {object} util.Response{data=model.CycleTemplate} "成功"
// @Failure 404 {object} util.Response "未找到"
// @Router /api/cycle-templates/{id} [get]
func (c *CycleController) GetTemplate(ctx *gin.Context) {
	item, err := c.Library.GetCycleTemplate(ctx.Param("id"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if item == nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, item)
}

// SaveTemplate godoc
// @Summary 保存周期模板
// @Tags 周期训练
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body model.CycleTemplate true "模板内容"
// @Success 200 {object} util.Response{data=model.CycleTemplate} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/cycle-templates [put]
func (c *CycleController) SaveTemplate(ctx *gin.Context) {
	var item model.CycleTemplate
	if err := ctx.ShouldBindJSON(&item); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.Library.SaveCycleTemplate(&item); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, item)
}

// DeleteTemplate godoc
// @Summary 删除周期模板
// @Description 已用该模板排出的班级计划不受影响，计划保存了模板的拷贝字段
// @Tags 周期训练
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "模板ID"
// @Success 200 {object} util.Response "成功"
// @Router /api/cycle-templates/{id} [delete]
func (c *CycleController) DeleteTemplate(ctx *gin.Context) {
	if err := c.Library.DeleteCycleTemplate(ctx.Param("id")); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// AssignPlanRequest 排课请求，startDate 形如 2024-09-02
// swagger:model AssignPlanRequest
type AssignPlanRequest struct {
	ClassID    string `json:"classId" binding:"required"`
	TemplateID string `json:"templateId" binding:"required"`
	StartDate  string `json:"startDate" binding:"required"`
}

// AssignPlan godoc
// @Summary 给班级指派周期模板
// @Description 按模板周计划展开带日期的课次：第w周第k张卡排在 startDate+(w-1)*7+k*2 天
// @Tags 周期训练
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body AssignPlanRequest true "排课参数"
// @Success 201 {object} util.Response{data=model.ClassCyclePlan} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 404 {object} util.Response "周期模板不存在"
// @Router /api/cycle-plans [post]
func (c *CycleController) AssignPlan(ctx *gin.Context) {
	var req AssignPlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		util.BadRequest(ctx, "startDate 格式应为 YYYY-MM-DD")
		return
	}

	plan, err := c.Cycles.AssignPlan(req.ClassID, req.TemplateID, startDate)
	if err != nil {
		if errors.Is(err, util.ErrTemplateNotFound) {
			util.Error(ctx, 404, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, plan)
}

// ListPlans godoc
// @Summary 班级周期计划列表
// @Tags 周期训练
// @Produce json
// @Security ApiKeyAuth
// @Param classId query string false "按班级过滤"
// @Success 200 {object} util.Response{data=[]model.ClassCyclePlan} "成功"
// @Router /api/cycle-plans [get]
func (c *CycleController) ListPlans(ctx *gin.Context) {
	classID := ctx.Query("classId")

	var (
		items []model.ClassCyclePlan
		err   error
	)
	if classID != "" {
		items, err = c.Cycles.ListPlansByClass(classID)
	} else {
		items, err = c.Cycles.ListPlans()
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, items)
}

// GetPlan godoc
// @Summary 获取班级周期计划
// @Tags 周期训练
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "计划ID"
// @Success 200 {object} util.Response{data=model.ClassCyclePlan} "成功"
// @Failure 404 {object} util.Response "未找到"
// @Router /api/cycle-plans/{id} [get]
func (c *CycleController) GetPlan(ctx *gin.Context) {
	item, err := c.Cycles.GetPlan(ctx.Param("id"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if item == nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, item)
}

// DeletePlan godoc
// @Summary 删除班级周期计划
// @Tags 周期训练
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "计划ID"
// @Success 200 {object} util.Response "成功"
// @Router /api/cycle-plans/{id} [delete]
func (c *CycleController) DeletePlan(ctx *gin.Context) {
	if err := c.Cycles.DeletePlan(ctx.Param("id")); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// CompleteSessionRequest 课次打卡，actualDate 缺省为当天
// swagger:model CompleteSessionRequest
type CompleteSessionRequest struct {
	SessionID  string `json:"sessionId" binding:"required"`
	ActualDate string `json:"actualDate"`
}

// CompleteSession godoc
// @Summary 标记课次完成
// @Description sessionId 也接受任务卡ID（取该卡第一节未完成课次）；
// @Description 进度到100%时同步生成本周期的结课报告
// @Tags 周期训练
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "计划ID"
// @Param body body CompleteSessionRequest true "打卡内容"
// @Success 200 {object} util.Response{data=model.ClassCyclePlan} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 404 {object} util.Response "计划不存在"
// @Router /api/cycle-plans/{id}/complete-session [post]
func (c *CycleController) CompleteSession(ctx *gin.Context) {
	var req CompleteSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	actualDate := time.Now()
	if req.ActualDate != "" {
		d, err := time.Parse("2006-01-02", req.ActualDate)
		if err != nil {
			util.BadRequest(ctx, "actualDate 格式应为 YYYY-MM-DD")
			return
		}
		actualDate = d
	}

	plan, err := c.Cycles.MarkSessionCompleted(ctx.Param("id"), req.SessionID, actualDate)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if plan == nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, plan)
}

// ListPlanReports godoc
// @Summary 某周期计划的结课报告
// @Tags 周期训练
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "计划ID"
// @Success 200 {object} util.Response{data=[]model.CycleReport} "成功"
// @Router /api/cycle-plans/{id}/reports [get]
func (c *CycleController) ListPlanReports(ctx *gin.Context) {
	items, err := c.Reports.ListByPlan(ctx.Param("id"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, items)
}

// ListStudentReports godoc
// @Summary 某学员历史结课报告
// @Tags 周期训练
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "学员ID"
// @Success 200 {object} util.Response{data=[]model.CycleReport} "成功"
// @Router /api/students/{id}/reports [get]
func (c *CycleController) ListStudentReports(ctx *gin.Context) {
	items, err := c.Reports.ListByStudent(ctx.Param("id"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, items)
}
