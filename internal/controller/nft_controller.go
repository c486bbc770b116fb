package controller

import (
	"errors"
	"net/http"

	"crypto_compass_backend/internal/service"
	"crypto_compass_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type NFTController struct {
	MintService *service.MintService
}

func NewNFTController(s *service.MintService) *NFTController {
	return &NFTController{MintService: s}
}

type MintRequest struct {
	WalletAddress string `json:"walletAddress" binding:"required"`
}

// @Summary 铸造结果 NFT
// @Description 将最近结果生成 SVG 并提交铸造，失败时返回 502 与本次尝试记录
// @Tags NFT
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body MintRequest true "钱包地址"
// @Success 200 {object} util.Response{data=service.MintOutcome}
// @Failure 502 {object} util.Response{data=service.MintOutcome}
// @Failure 503 {object} util.Response
// @Router /api/nft/mint [post]
func (c *NFTController) Mint(ctx *gin.Context) {
	sid, ok := sessionID(ctx)
	if !ok {
		return
	}
	var req MintRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	out, err := c.MintService.Mint(ctx.Request.Context(), sid, req.WalletAddress)
	if err != nil {
		if errors.Is(err, util.ErrMintFailed) && out != nil {
			ctx.JSON(http.StatusBadGateway, util.Response{
				Code:    http.StatusBadGateway,
				Message: out.Tx.Error,
				Data:    out,
			})
			return
		}
		respondError(ctx, err)
		return
	}
	util.Success(ctx, out)
}

// @Summary NFT 元数据
// @Description 预览最近结果对应的 NFT 元数据
// @Tags NFT
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.NFTMetadata}
// @Router /api/nft/metadata [get]
func (c *NFTController) Metadata(ctx *gin.Context) {
	sid, ok := sessionID(ctx)
	if !ok {
		return
	}
	m, err := c.MintService.Metadata(ctx.Request.Context(), sid)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, m)
}

// @Summary 铸造记录
// @Tags NFT
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.MintRecord}
// @Router /api/nft/mints [get]
func (c *NFTController) Mints(ctx *gin.Context) {
	sid, ok := sessionID(ctx)
	if !ok {
		return
	}
	recs, err := c.MintService.ListMints(sid)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{
		"mints":   recs,
		"enabled": c.MintService.Enabled(),
	})
}
