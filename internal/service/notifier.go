package service

import (
	"learnlens_backend/pkg/logger"

	"go.uber.org/zap"
)

// Notifier 宿主通知原语的抽象：只投递标题和正文两个字符串，
// 平台相关的通知格式由宿主自己决定。
type Notifier interface {
	Notify(title, body string) error
}

// LogNotifier 默认实现，把通知写进结构化日志
type LogNotifier struct{}

func (LogNotifier) Notify(title, body string) error {
	logger.Log.Info("insight notification",
		zap.String("title", title),
		zap.String("body", body),
	)
	return nil
}
