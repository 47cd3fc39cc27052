package controller

import (
	"rope_coach_backend/internal/model"
	"rope_coach_backend/internal/service"
	"rope_coach_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ExerciseController 训练动作与趣味游戏，含示范视频上传。
type ExerciseController struct {
	Library *service.LibraryService
	Storage *service.StorageService
}

func NewExerciseController(library *service.LibraryService, storage *service.StorageService) *ExerciseController {
	return &ExerciseController{Library: library, Storage: storage}
}

// ListDrills godoc
// @Summary 训练动作列表
// @Tags 动作库
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Drill} "成功"
// @Router /api/drills [get]
func (c *ExerciseController) ListDrills(ctx *gin.Context) {
	items, err := c.Library.ListDrills()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, items)
}

// GetDrill godoc
// @Summary 获取训练动作
// @Tags 动作库
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "动作ID"
// @Success 200 {object} util.Response{data=model.Drill} "成功"
// @Failure 404 {object} util.Response "未找到"
// @Router /api/drills/{id} [get]
func (c *ExerciseController) GetDrill(ctx *gin.Context) {
	item, err := c.Library.GetDrill(ctx.Param("id"))
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

// SaveDrill godoc
// @Summary 保存训练动作
// @Tags 动作库
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body model.Drill true "动作内容"
// @Success 200 {object} util.Response{data=model.Drill} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/drills [put]
func (c *ExerciseController) SaveDrill(ctx *gin.Context) {
	var item model.Drill
	if err := ctx.ShouldBindJSON(&item); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.Library.SaveDrill(&item); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, item)
}

// DeleteDrill godoc
// @Summary 删除训练动作
// @Tags 动作库
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "动作ID"
// @Success 200 {object} util.Response "成功"
// @Router /api/drills/{id} [delete]
func (c *ExerciseController) DeleteDrill(ctx *gin.Context) {
	if err := c.Library.DeleteDrill(ctx.Param("id")); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// ListGames godoc
// @Summary 趣味游戏列表
// @Tags 动作库
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Game} "成功"
// @Router /api/games [get]
func (c *ExerciseController) ListGames(ctx *gin.Context) {
	items, err := c.Library.ListGames()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, items)
}

// GetGame godoc
// @Summary 获取趣味游戏
// @Tags 动作库
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "游戏ID"
// @Success 200 {object} util.Response{data=model.Game} "成功"
// @Failure 404 {object} util.Response "未找到"
// @Router /api/games/{id} [get]
func (c *ExerciseController) GetGame(ctx *gin.Context) {
	item, err := c.Library.GetGame(ctx.Param("id"))
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

// SaveGame godoc
// @Summary 保存趣味游戏
// @Tags 动作库
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body model.Game true "游戏内容"
// @Success 200 {object} util.Response{data=model.Game} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/games [put]
func (c *ExerciseController) SaveGame(ctx *gin.Context) {
	var item model.Game
	if err := ctx.ShouldBindJSON(&item); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.Library.SaveGame(&item); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, item)
}

// DeleteGame godoc
// @Summary 删除趣味游戏
// @Tags 动作库
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "游戏ID"
// @Success 200 {object} util.Response "成功"
// @Router /api/games/{id} [delete]
func (c *ExerciseController) DeleteGame(ctx *gin.Context) {
	if err := c.Library.DeleteGame(ctx.Param("id")); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// UploadDemoVideo godoc
// @Summary 上传示范视频
// @Description 上传动作/游戏的示范视频，返回访问地址与时长等元数据，
// @Description 由前端把地址写回对应记录的 demoVideoUrl 字段
// @Tags 动作库
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "视频文件"
// @Success 201 {object} util.Response{data=object} "创建成功"
// @Failure 400 {object} util.Response "文件缺失或不是合法视频"
// @Router /api/exercises/demo-video [post]
func (c *ExerciseController) UploadDemoVideo(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "File is required")
		return
	}

	url, info, err := c.Storage.UploadDemoVideo(ctx, file)
	if err != nil {
		util.BadRequest(ctx, "视频处理失败: "+err.Error())
		return
	}

	util.Created(ctx, gin.H{
		"url":      url,
		"duration": info.Duration,
		"width":    info.Width,
		"height":   info.Height,
		"format":   info.Format,
		"size":     info.Size,
	})
}
