package controller

import (
	"rope_coach_backend/internal/model"
	"rope_coach_backend/internal/service"
	"rope_coach_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ClassController 班级、学员与体测记录。
type ClassController struct {
	Classes *service.ClassService
}

func NewClassController(classes *service.ClassService) *ClassController {
	return &ClassController{Classes: classes}
}

// ListClasses godoc
// @Summary 班级列表
// @Tags 班级管理
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Class} "成功"
// @Router /api/classes [get]
func (c *ClassController) ListClasses(ctx *gin.Context) {
	items, err := c.Classes.ListClasses()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, items)
}

// GetClass godoc
// @Summary 获取班级
// @Tags 班级管理
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "班级ID"
// @Success 200 {object} util.Response{data=model.Class} "成功"
// @Failure 404 {object} util.Response "未找到"
// @Router /api/classes/{id} [get]
func (c *ClassController) GetClass(ctx *gin.Context) {
	item, err := c.Classes.GetClass(ctx.Param("id"))
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

// SaveClass godoc
// @Summary 保存班级
// @Description studentIds 名册允许包含已删除学员，报告生成时自动跳过
// @Tags 班级管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body model.Class true "班级内容"
// @Success 200 {object} util.Response{data=model.Class} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/classes [put]
func (c *ClassController) SaveClass(ctx *gin.Context) {
	var item model.Class
	if err := ctx.ShouldBindJSON(&item); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.Classes.SaveClass(&item); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, item)
}

// DeleteClass godoc
// @Summary 删除班级
// @Tags 班级管理
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "班级ID"
// @Success 200 {object} util.Response "成功"
// @Router /api/classes/{id} [delete]
func (c *ClassController) DeleteClass(ctx *gin.Context) {
	if err := c.Classes.DeleteClass(ctx.Param("id")); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// ListStudents godoc
// @Summary 学员列表
// @Tags 班级管理
// @Produce json
// @Security ApiKeyAuth
// @Param classId query string false "按班级过滤"
// @Success 200 {object} util.Response{data=[]model.Student} "成功"
// @Router /api/students [get]
func (c *ClassController) ListStudents(ctx *gin.Context) {
	items, err := c.Classes.ListStudents(ctx.Query("classId"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, items)
}

// GetStudent godoc
// @Summary 获取学员
// @Tags 班级管理
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "学员ID"
// @Success 200 {object} util.Response{data=model.Student} "成功"
// @Failure 404 {object} util.Response "未找到"
// @Router /api/students/{id} [get]
func (c *ClassController) GetStudent(ctx *gin.Context) {
	item, err := c.Classes.GetStudent(ctx.Param("id"))
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

// SaveStudent godoc
// @Summary 保存学员
// @Tags 班级管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body model.Student true "学员内容"
// @Success 200 {object} util.Response{data=model.Student} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/students [put]
func (c *ClassController) SaveStudent(ctx *gin.Context) {
	var item model.Student
	if err := ctx.ShouldBindJSON(&item); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.Classes.SaveStudent(&item); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, item)
}

// DeleteStudent godoc
// @Summary 删除学员
// @Tags 班级管理
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "学员ID"
// @Success 200 {object} util.Response "成功"
// @Router /api/students/{id} [delete]
func (c *ClassController) DeleteStudent(ctx *gin.Context) {
	if err := c.Classes.DeleteStudent(ctx.Param("id")); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// ListFitnessTests godoc
// @Summary 学员体测记录
// @Description 按测试时间升序返回
// @Tags 班级管理
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "学员ID"
// @Success 200 {object} util.Response{data=[]model.FitnessTest} "成功"
// @Router /api/students/{id}/fitness-tests [get]
func (c *ClassController) ListFitnessTests(ctx *gin.Context) {
	items, err := c.Classes.ListFitnessTests(ctx.Param("id"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, items)
}

// SaveFitnessTest godoc
// @Summary 保存体测记录
// @Description testedAt 缺省取当前时间
// @Tags 班级管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body model.FitnessTest true "体测内容"
// @Success 200 {object} util.Response{data=model.FitnessTest} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/fitness-tests [put]
func (c *ClassController) SaveFitnessTest(ctx *gin.Context) {
	var item model.FitnessTest
	if err := ctx.ShouldBindJSON(&item); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.Classes.SaveFitnessTest(&item); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, item)
}

// DeleteFitnessTest godoc
// @Summary 删除体测记录
// @Tags 班级管理
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "记录ID"
// @Success 200 {object} util.Response "成功"
// @Router /api/fitness-tests/{id} [delete]
func (c *ClassController) DeleteFitnessTest(ctx *gin.Context) {
	if err := c.Classes.DeleteFitnessTest(ctx.Param("id")); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
