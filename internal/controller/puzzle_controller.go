package controller

import (
	"rope_coach_backend/internal/model"
	"rope_coach_backend/internal/service"
	"rope_coach_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// PuzzleController 拼图卡组：独立于课程库事务的对等存储。
type PuzzleController struct {
	Puzzles *service.PuzzleService
}

func NewPuzzleController(puzzles *service.PuzzleService) *PuzzleController {
	return &PuzzleController{Puzzles: puzzles}
}

// ListTemplates godoc
// @Summary 拼图模板列表
// @Tags 拼图
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.PuzzleTemplate} "成功"
// @Router /api/puzzles [get]
func (c *PuzzleController) ListTemplates(ctx *gin.Context) {
	items, err := c.Puzzles.ListTemplates()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, items)
}

// GetTemplate godoc
// @Summary 获取拼图模板
// @Tags 拼图
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "模板ID"
// @Success 200 {object} util.Response{data=model.PuzzleTemplate} "成功"
// @Failure 404 {object} util.Response "未找到"
// @Router /api/puzzles/{id} [get]
func (c *PuzzleController) GetTemplate(ctx *gin.Context) {
	item, err := c.Puzzles.GetTemplate(ctx.Param("id"))
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
// @Summary 保存拼图模板
// @Tags 拼图
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body model.PuzzleTemplate true "模板内容"
// @Success 200 {object} util.Response{data=model.PuzzleTemplate} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/puzzles [put]
func (c *PuzzleController) SaveTemplate(ctx *gin.Context) {
	var item model.PuzzleTemplate
	if err := ctx.ShouldBindJSON(&item); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.Puzzles.SaveTemplate(&item); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, item)
}

// DeleteTemplate godoc
// @Summary 删除拼图模板
// @Tags 拼图
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "模板ID"
// @Success 200 {object} util.Response "成功"
// @Router /api/puzzles/{id} [delete]
func (c *PuzzleController) DeleteTemplate(ctx *gin.Context) {
	if err := c.Puzzles.DeleteTemplate(ctx.Param("id")); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
