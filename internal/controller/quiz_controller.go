package controller

import (
	"crypto_compass_backend/internal/service"
	"crypto_compass_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(s *service.QuizService) *QuizController {
	return &QuizController{QuizService: s}
}

type AnswerRequest struct {
	QuestionID string `json:"questionId" binding:"required"`
	Value      int    `json:"value"`
}

type NavigateRequest struct {
	Action string `json:"action" binding:"required,oneof=next previous goto"`
	Index  int    `json:"index"`
}

// @Summary 开始测试
// @Description 抽取新的题目集并清空之前的作答
// @Tags 测试
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.QuizState}
// @Router /api/quiz/start [post]
func (c *QuizController) Start(ctx *gin.Context) {
	sid, ok := sessionID(ctx)
	if !ok {
		return
	}
	st, err := c.QuizService.Start(ctx.Request.Context(), sid)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, st)
}

// @Summary 获取测试状态
// @Description 返回当前测试，必要时从保存的进度恢复
// @Tags 测试
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.QuizState}
// @Failure 404 {object} util.Response
// @Router /api/quiz/state [get]
func (c *QuizController) State(ctx *gin.Context) {
	sid, ok := sessionID(ctx)
	if !ok {
		return
	}
	st, err := c.QuizService.State(ctx.Request.Context(), sid)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, st)
}

// @Summary 提交答案
// @Description 记录某道题的 1-5 分作答
// @Tags 测试
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body AnswerRequest true "作答"
// @Success 200 {object} util.Response{data=service.QuizState}
// @Failure 400 {object} util.Response
// @Router /api/quiz/answers [post]
func (c *QuizController) Answer(ctx *gin.Context) {
	sid, ok := sessionID(ctx)
	if !ok {
		return
	}
	var req AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	st, err := c.QuizService.Answer(ctx.Request.Context(), sid, req.QuestionID, req.Value)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, st)
}

// @Summary 切换题目
// @Tags 测试
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body NavigateRequest true "导航"
// @Success 200 {object} util.Response{data=service.QuizState}
// @Router /api/quiz/navigate [post]
func (c *QuizController) Navigate(ctx *gin.Context) {
	sid, ok := sessionID(ctx)
	if !ok {
		return
	}
	var req NavigateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	st, err := c.QuizService.Navigate(ctx.Request.Context(), sid, req.Action, req.Index)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, st)
}

// @Summary 完成测试
// @Description 所有题目作答后计算结果、原型与罗盘坐标
// @Tags 测试
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.CompletedTest}
// @Failure 400 {object} util.Response
// @Router /api/quiz/complete [post]
func (c *QuizController) Complete(ctx *gin.Context) {
	sid, ok := sessionID(ctx)
	if !ok {
		return
	}
	out, err := c.QuizService.Complete(ctx.Request.Context(), sid)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, out)
}

// @Summary 重置测试
// @Description 删除当前测试、保存的进度和最近结果
// @Tags 测试
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/quiz [delete]
func (c *QuizController) Reset(ctx *gin.Context) {
	sid, ok := sessionID(ctx)
	if !ok {
		return
	}
	c.QuizService.Reset(ctx.Request.Context(), sid)
	util.Success(ctx, nil)
}
