package controller

import (
	"rope_coach_backend/internal/model"
	"rope_coach_backend/internal/service"
	"rope_coach_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// CatalogController 课程体系资产：成长阶段、训练计划、训练单元与素质维度。
// 保存一律是整条覆盖式 upsert，不存在则创建。
type CatalogController struct {
	Library *service.LibraryService
}

func NewCatalogController(library *service.LibraryService) *CatalogController {
	return &CatalogController{Library: library}
}

// ListStages godoc
// @Summary 成长阶段列表
// @Tags 课程体系
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Stage} "成功"
// @Router /api/stages [get]
func (c *CatalogController) ListStages(ctx *gin.Context) {
	items, err := c.Library.ListStages()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, items)
}

// GetStage godoc
// @Summary 获取成长阶段
// @Tags 课程体系
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "阶段ID"
// @Success 200 {object} util.Response{data=model.Stage} "成功"
// @Failure 404 {object} util.Response "未找到"
// @Router /api/stages/{id} [get]
func (c *CatalogController) GetStage(ctx *gin.Context) {
	item, err := c.Library.GetStage(ctx.Param("id"))
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

// SaveStage godoc
// @Summary 保存成长阶段
// @Description 无ID时生成新ID，有ID时整条覆盖
// @Tags 课程体系
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body model.Stage true "阶段内容"
// @Success 200 {object} util.Response{data=model.Stage} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/stages [put]
func (c *CatalogController) SaveStage(ctx *gin.Context) {
	var item model.Stage
	if err := ctx.ShouldBindJSON(&item); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.Library.SaveStage(&item); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, item)
}

// DeleteStage godoc
// @Summary 删除成长阶段
// @Description 不存在的ID静默成功；引用该阶段的计划不受影响
// @Tags 课程体系
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "阶段ID"
// @Success 200 {object} util.Response "成功"
// @Router /api/stages/{id} [delete]
func (c *CatalogController) DeleteStage(ctx *gin.Context) {
	if err := c.Library.DeleteStage(ctx.Param("id")); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// ListPlans godoc
// @Summary 训练计划列表
// @Tags 课程体系
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Plan} "成功"
// @Router /api/plans [get]
func (c *CatalogController) ListPlans(ctx *gin.Context) {
	items, err := c.Library.ListPlans()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, items)
}

// GetPlan godoc
// @Summary 获取训练计划
// @Tags 课程体系
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "计划ID"
// @Success 200 {object} util.Response{data=model.Plan} "成功"
// @Failure 404 {object} util.Response "未找到"
// @Router /api/plans/{id} [get]
func (c *CatalogController) GetPlan(ctx *gin.Context) {
	item, err := c.Library.GetPlan(ctx.Param("id"))
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

// SavePlan godoc
// @Summary 保存训练计划
// @Tags 课程体系
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body model.Plan true "计划内容"
// @Success 200 {object} util.Response{data=model.Plan} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/plans [put]
func (c *CatalogController) SavePlan(ctx *gin.Context) {
	var item model.Plan
	if err := ctx.ShouldBindJSON(&item); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.Library.SavePlan(&item); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, item)
}

// DeletePlan godoc
// @Summary 删除训练计划
// @Tags 课程体系
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "计划ID"
// @Success 200 {object} util.Response "成功"
// @Router /api/plans/{id} [delete]
func (c *CatalogController) DeletePlan(ctx *gin.Context) {
	if err := c.Library.DeletePlan(ctx.Param("id")); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// ListUnits godoc
// @Summary 训练单元列表
// @Tags 课程体系
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Unit} "成功"
// @Router /api/units [get]
func (c *CatalogController) ListUnits(ctx *gin.Context) {
	items, err := c.Library.ListUnits()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, items)
}

// GetUnit godoc
// @Summary 获取训练单元
// @Tags 课程体系
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "单元ID"
// @Success 200 {object} util.Response{data=model.Unit} "成功"
// @Failure 404 {object} util.Response "未找到"
// @Router /api/units/{id} [get]
func (c *CatalogController) GetUnit(ctx *gin.Context) {
	item, err := c.Library.GetUnit(ctx.Param("id"))
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

// SaveUnit godoc
// @Summary 保存训练单元
// @Tags 课程体系
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body model.Unit true "单元内容"
// @Success 200 {object} util.Response{data=model.Unit} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/units [put]
func (c *CatalogController) SaveUnit(ctx *gin.Context) {
	var item model.Unit
	if err := ctx.ShouldBindJSON(&item); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.Library.SaveUnit(&item); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, item)
}

// DeleteUnit godoc
// @Summary 删除训练单元
// @Description 引用该单元的计划周条目不级联清理，展示层降级为占位
// @Tags 课程体系
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "单元ID"
// @Success 200 {object} util.Response "成功"
// @Router /api/units/{id} [delete]
func (c *CatalogController) DeleteUnit(ctx *gin.Context) {
	if err := c.Library.DeleteUnit(ctx.Param("id")); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// ListQualities godoc
// @Summary 素质维度列表
// @Tags 课程体系
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Quality} "成功"
// @Router /api/qualities [get]
func (c *CatalogController) ListQualities(ctx *gin.Context) {
	items, err := c.Library.ListQualities()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, items)
}

// SaveQuality godoc
// @Summary 保存素质维度
// @Tags 课程体系
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body model.Quality true "素质内容"
// @Success 200 {object} util.Response{data=model.Quality} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/qualities [put]
func (c *CatalogController) SaveQuality(ctx *gin.Context) {
	var item model.Quality
	if err := ctx.ShouldBindJSON(&item); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.Library.SaveQuality(&item); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, item)
}

// DeleteQuality godoc
// @Summary 删除素质维度
// @Tags 课程体系
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "素质ID"
// @Success 200 {object} util.Response "成功"
// @Router /api/qualities/{id} [delete]
func (c *CatalogController) DeleteQuality(ctx *gin.Context) {
	if err := c.Library.DeleteQuality(ctx.Param("id")); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
