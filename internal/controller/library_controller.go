package controller

import (
	"encoding/json"
	"errors"
	"io"

	"rope_coach_backend/internal/model"
	"rope_coach_backend/internal/service"
	"rope_coach_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// LibraryController 整库导出/导入与按类批量替换。
type LibraryController struct {
	Library *service.LibraryService
}

func NewLibraryController(library *service.LibraryService) *LibraryController {
	return &LibraryController{Library: library}
}

// Export godoc
// @Summary 导出课程资产库
// @Description 九类资产打包成一份快照，用于备份或迁移到其他环境
// @Tags 资产库
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.LibrarySnapshot} "成功"
// @Router /api/library/export [get]
func (c *LibraryController) Export(ctx *gin.Context) {
	snap, err := c.Library.ExportLibrary()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, snap)
}

// Import godoc
// @Summary 导入课程资产库
// @Description replace=true 先清空再写入；否则按ID合并，快照缺失的键不触碰对应集合
// @Tags 资产库
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param replace query bool false "是否整库替换" default(false)
// @Param body body model.LibrarySnapshot true "库快照"
// @Success 200 {object} util.Response "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/library/import [post]
func (c *LibraryController) Import(ctx *gin.Context) {
	var snap model.LibrarySnapshot
	if err := ctx.ShouldBindJSON(&snap); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	replace := ctx.Query("replace") == "true"
	if err := c.Library.ImportLibrary(&snap, replace); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// ReplaceAssets godoc
// @Summary 按类批量替换资产
// @Description 请求体必须是该类记录的顶层JSON数组，整类先清空再写入
// @Tags 资产库
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param kind path string true "资产类别" Enums(stages, plans, units, qualities, drills, games, missions, cycles, puzzles)
// @Success 200 {object} util.Response "成功"
// @Failure 400 {object} util.Response "类别未知或请求体不是JSON数组"
// @Router /api/library/assets/{kind} [put]
func (c *LibraryController) ReplaceAssets(ctx *gin.Context) {
	kind := model.AssetKind(ctx.Param("kind"))
	if !model.ValidKind(kind) {
		util.BadRequest(ctx, "未知的资产类别: "+string(kind))
		return
	}

	data, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	// 先验证形状，避免把半截数组写进库里
	var probe []json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		util.BadRequest(ctx, "请求体必须是JSON数组")
		return
	}

	if err := c.Library.ReplaceAssets(kind, data); err != nil {
		if errors.Is(err, util.ErrUnknownAssetKind) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}
