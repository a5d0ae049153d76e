package controller

import (
	"errors"
	"learnlens_backend/internal/service"
	"learnlens_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

type registerRequest struct {
	Name string `json:"name"`
}

type loginRequest struct {
	DeviceID string `json:"deviceId" binding:"required"`
	Key      string `json:"key" binding:"required"`
}

// @Summary 注册扩展实例
// @Description 下发 deviceId、key（仅此一次可见）和访问令牌
// @Tags 认证
// @Accept json
// @Produce json
// @Param device body registerRequest true "设备信息"
// @Success 201 {object} util.Response
// @Router /api/devices/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req registerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	credentials, err := c.AuthService.Register(req.Name)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, credentials)
}

// @Summary 设备登录
// @Description 用 deviceId + key 换取新的访问令牌
// @Tags 认证
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "设备凭据"
// @Success 200 {object} util.Response
// @Router /api/devices/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req loginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, err := c.AuthService.Login(req.DeviceID, req.Key)
	if err != nil {
		if errors.Is(err, util.ErrDeviceNotFound) || errors.Is(err, util.ErrInvalidDeviceKey) {
			util.Error(ctx, http.StatusUnauthorized, "invalid device credentials")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"token": token})
}
