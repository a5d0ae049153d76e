package middleware

import (
	"learnlens_backend/internal/config"
	"learnlens_backend/internal/util"
	"strings"

	"github.com/gin-gonic/gin"
)

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			tokenString = c.Query("token")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("device", claims)
		c.Next()
	}
}

type DeviceActivityRepo interface {
	UpdateLastSeen(deviceID string) error
}

// ActivityMiddleware 异步更新设备最近活跃时间，不阻塞主流程
func ActivityMiddleware(repo DeviceActivityRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := util.GetDeviceFromContext(c)
		if claims != nil {
			go repo.UpdateLastSeen(claims.DeviceID)
		}
		c.Next()
	}
}
