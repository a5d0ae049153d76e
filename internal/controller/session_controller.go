package controller

import (
	"learnlens_backend/internal/service"
	"learnlens_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SessionController struct {
	LearningService *service.LearningService
}

func NewSessionController(learningService *service.LearningService) *SessionController {
	return &SessionController{LearningService: learningService}
}

type recordSessionRequest struct {
	URL                 string  `json:"url" binding:"required"`
	Title               string  `json:"title"`
	TimeSpentSeconds    int     `json:"timeSpentSeconds"`
	ActiveTimeSeconds   int     `json:"activeTimeSeconds"`
	ScrollDepthFraction float64 `json:"scrollDepthFraction"`
	RevisitCount        int     `json:"revisitCount"`
	SessionID           string  `json:"sessionId"`
}

// @Summary 上报页面活动事件
// @Description 扩展上报一次页面访问；非学习资源会被静默忽略（recorded=false）
// @Tags 会话
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param event body recordSessionRequest true "页面活动事件"
// @Success 200 {object} util.Response
// @Router /api/sessions [post]
func (c *SessionController) Record(ctx *gin.Context) {
	var req recordSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.LearningService.RecordSession(service.RecordSessionInput{
		URL:         req.URL,
		Title:       req.Title,
		TimeSpent:   req.TimeSpentSeconds,
		ActiveTime:  req.ActiveTimeSeconds,
		ScrollDepth: req.ScrollDepthFraction,
		Revisits:    req.RevisitCount,
		SessionID:   req.SessionID,
	})
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	if result == nil {
		util.Success(ctx, gin.H{"recorded": false})
		return
	}

	util.Success(ctx, gin.H{"recorded": true, "session": result})
}
