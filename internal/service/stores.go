package service

import (
	"learnlens_backend/internal/model"
)

// 持久化协作方接口。具体实现在 repository 包，
// 接口化是为了让服务层可以在无数据库的情况下测试。

type SessionStore interface {
	Create(session *model.LearningSession) error
	FindSince(lowerBound int64) ([]model.LearningSession, error)
	DistinctDates() ([]string, error)
	SumActiveTimeByCategory(category string) (int64, error)
	CategoryEngagement(since int64, minScore float64, limit int) ([]model.CategoryEngagement, error)
}

type PathStore interface {
	FindByName(name string) (*model.LearningPath, error)
	Create(path *model.LearningPath) error
	Update(path *model.LearningPath) error
	FindRecent(limit int) ([]model.LearningPath, error)
}

type InsightStore interface {
	Append(insight *model.LearningInsight) error
	FindRecent(limit int) ([]model.LearningInsight, error)
}
