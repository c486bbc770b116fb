package controller

import (
	"crypto_compass_backend/internal/service"
	"crypto_compass_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SessionController struct {
	SessionService *service.SessionService
}

func NewSessionController(s *service.SessionService) *SessionController {
	return &SessionController{SessionService: s}
}

// @Summary 创建匿名会话
// @Description 为测试者签发会话令牌，后续接口通过 Bearer 令牌识别会话
// @Tags 会话
// @Produce json
// @Success 201 {object} util.Response{data=service.SessionToken}
// @Router /api/sessions [post]
func (c *SessionController) Create(ctx *gin.Context) {
	token, err := c.SessionService.Create()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, token)
}
