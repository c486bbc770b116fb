package controller

import (
	"crypto_compass_backend/internal/compass"
	"crypto_compass_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// CatalogController serves the static archetype catalog and question bank.
type CatalogController struct{}

func NewCatalogController() *CatalogController {
	return &CatalogController{}
}

// @Summary 原型列表
// @Tags 目录
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Archetype}
// @Router /api/archetypes [get]
func (c *CatalogController) Archetypes(ctx *gin.Context) {
	util.Success(ctx, compass.Archetypes())
}

// @Summary 原型详情
// @Tags 目录
// @Produce json
// @Param id path string true "原型ID"
// @Success 200 {object} util.Response{data=model.Archetype}
// @Failure 404 {object} util.Response
// @Router /api/archetypes/{id} [get]
func (c *CatalogController) Archetype(ctx *gin.Context) {
	a, ok := compass.ArchetypeByID(ctx.Param("id"))
	if !ok {
		respondError(ctx, util.ErrArchetypeNotFound)
		return
	}
	util.Success(ctx, a)
}

// @Summary 题库
// @Description 返回两个维度的全部题目
// @Tags 目录
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/questions/bank [get]
func (c *CatalogController) QuestionBank(ctx *gin.Context) {
	bank := compass.Bank()
	util.Success(ctx, gin.H{
		"questions": bank,
		"total":     len(bank),
	})
}
