package controller

import (
	"rope_coach_backend/internal/model"
	"rope_coach_backend/internal/service"
	"rope_coach_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type MissionController struct {
	Library *service.LibraryService
}

func NewMissionController(library *service.LibraryService) *MissionController {
	return &MissionController{Library: library}
}

// ListMissionCards godoc
// @Summary 任务卡列表
// @Tags 任务卡
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.MissionCard} "成功"
// @Router /api/mission-cards [get]
func (c *MissionController) ListMissionCards(ctx *gin.Context) {
	items, err := c.Library.ListMissionCards()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, items)
}

// GetMissionCard godoc
// @Summary 获取任务卡
// @Tags 任务卡
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "任务卡ID"
// @Success 200 {object} util.Response{data=model.MissionCard} "成功"
// @Failure 404 {object} util.Response "未找到"
// @Router /api/mission-cards/{id} [get]
func (c *MissionController) GetMissionCard(ctx *gin.Context) {
	item, err := c.Library.GetMissionCard(ctx.Param("id"))
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

// SaveMissionCard godoc
// @Summary 保存任务卡
// @Tags 任务卡
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body model.MissionCard true "任务卡内容"
// @Success 200 {object} util.Response{data=model.MissionCard} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/mission-cards [put]
func (c *MissionController) SaveMissionCard(ctx *gin.Context) {
	var item model.MissionCard
	if err := ctx.ShouldBindJSON(&item); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.Library.SaveMissionCard(&item); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, item)
}

// DeleteMissionCard godoc
// @Summary 删除任务卡
// @Description 已排进周期模板的任务卡删除后引用悬空，排课展示降级为占位
// @Tags 任务卡
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "任务卡ID"
// @Success 200 {object} util.Response "成功"
// @Router /api/mission-cards/{id} [delete]
func (c *MissionController) DeleteMissionCard(ctx *gin.Context) {
	if err := c.Library.DeleteMissionCard(ctx.Param("id")); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
