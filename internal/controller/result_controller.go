package controller

import (
	"crypto_compass_backend/internal/model"
	"crypto_compass_backend/internal/service"
	"crypto_compass_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ResultController struct {
	ResultService *service.ResultService
}

func NewResultController(s *service.ResultService) *ResultController {
	return &ResultController{ResultService: s}
}

type CompareRequest struct {
	Other *model.Result `json:"other" binding:"required"`
}

// @Summary 获取最近结果
// @Tags 结果
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.CompletedTest}
// @Failure 404 {object} util.Response
// @Router /api/results/last [get]
func (c *ResultController) Last(ctx *gin.Context) {
	sid, ok := sessionID(ctx)
	if !ok {
		return
	}
	out, err := c.ResultService.LastResult(ctx.Request.Context(), sid)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, out)
}

// @Summary 分享结果
// @Description 生成分享文案、链接与话题标签
// @Tags 结果
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=compass.ShareSummary}
// @Router /api/results/share [get]
func (c *ResultController) Share(ctx *gin.Context) {
	sid, ok := sessionID(ctx)
	if !ok {
		return
	}
	out, err := c.ResultService.Share(ctx.Request.Context(), sid)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, out)
}

// @Summary 对比结果
// @Description 将最近结果与另一份结果比较
// @Tags 结果
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CompareRequest true "另一份结果"
// @Success 200 {object} util.Response{data=compass.Comparison}
// @Router /api/results/compare [post]
func (c *ResultController) Compare(ctx *gin.Context) {
	sid, ok := sessionID(ctx)
	if !ok {
		return
	}
	var req CompareRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	out, err := c.ResultService.Compare(ctx.Request.Context(), sid, req.Other)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, out)
}

// @Summary 结果统计
// @Description 汇总最近保存的结果
// @Tags 结果
// @Produce json
// @Security BearerAuth
// @Param limit query int false "统计条数" default(100)
// @Success 200 {object} util.Response{data=service.StatisticsReport}
// @Router /api/results/statistics [get]
func (c *ResultController) Statistics(ctx *gin.Context) {
	def := c.ResultService.Config.StatisticsLimit
	if def <= 0 {
		def = util.DefaultStatisticsLimit
	}
	limit := util.ParseLimit(ctx.Query("limit"), def, util.MaxStatisticsLimit)
	out, err := c.ResultService.Statistics(ctx.Request.Context(), limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, out)
}
