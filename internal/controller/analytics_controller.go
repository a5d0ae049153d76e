package controller

import (
	"learnlens_backend/internal/service"
	"learnlens_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	AnalyticsService    *service.AnalyticsService
	LearningPathService *service.LearningPathService
}

func NewAnalyticsController(analyticsService *service.AnalyticsService, pathService *service.LearningPathService) *AnalyticsController {
	return &AnalyticsController{
		AnalyticsService:    analyticsService,
		LearningPathService: pathService,
	}
}

// @Summary 获取学习分析汇总
// @Description 按时间窗汇总学习会话（today/week/month/all，默认 week）
// @Tags 分析
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param range query string false "时间窗" default(week)
// @Success 200 {object} util.Response
// @Router /api/analytics [get]
func (c *AnalyticsController) GetAnalytics(ctx *gin.Context) {
	timeRange := ctx.DefaultQuery("range", service.RangeWeek)

	summary, err := c.AnalyticsService.GetLearningAnalytics(timeRange)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, summary)
}

// @Summary 获取连续学习天数
// @Description 从今天（UTC）起逐日回走，遇到缺口即停
// @Tags 分析
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/analytics/streak [get]
func (c *AnalyticsController) GetStreak(ctx *gin.Context) {
	streak, err := c.AnalyticsService.GetStreak()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"streak": streak})
}

// @Summary 获取最近的学习路径
// @Tags 分析
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "条数" default(10)
// @Success 200 {object} util.Response
// @Router /api/analytics/paths [get]
func (c *AnalyticsController) GetPaths(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))

	paths, err := c.LearningPathService.RecentPaths(limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, paths)
}
