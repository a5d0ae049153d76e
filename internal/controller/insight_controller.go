package controller

import (
	"learnlens_backend/internal/service"
	"learnlens_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type InsightController struct {
	InsightService *service.InsightService
}

func NewInsightController(insightService *service.InsightService) *InsightController {
	return &InsightController{InsightService: insightService}
}

// @Summary 生成并返回学习洞察
// @Description 在滚动月窗口上运行坚持度/专注度/时段三项检查，命中的洞察追加落库
// @Tags 洞察
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/insights [get]
func (c *InsightController) Generate(ctx *gin.Context) {
	insights, err := c.InsightService.GenerateInsights()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, insights)
}

// @Summary 获取最近落库的洞察
// @Tags 洞察
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "条数" default(20)
// @Success 200 {object} util.Response
// @Router /api/insights/recent [get]
func (c *InsightController) Recent(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	insights, err := c.InsightService.RecentInsights(limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, insights)
}

// @Summary 获取个性化建议
// @Description 路径中未覆盖的子主题（next_topic）与强项分类（strength）
// @Tags 洞察
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/recommendations [get]
func (c *InsightController) Recommendations(ctx *gin.Context) {
	recommendations, err := c.InsightService.GetRecommendations()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, recommendations)
}
