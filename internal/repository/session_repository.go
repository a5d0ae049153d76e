package repository

import (
	"learnlens_backend/internal/model"

	"gorm.io/gorm"
)

type SessionRepository struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

// Create 写入一条学习会话记录
func (r *SessionRepository) Create(session *model.LearningSession) error {
	return r.DB.Create(session).Error
}

// FindSince 取出时间戳不早于 lowerBound（毫秒）的会话，按时间倒序
func (r *SessionRepository) FindSince(lowerBound int64) ([]model.LearningSession, error) {
	var sessions []model.LearningSession
	err := r.DB.Where("timestamp >= ?", lowerBound).
		Order("timestamp DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// DistinctDates 取出全部去重后的日期键，按日期倒序
func (r *SessionRepository) DistinctDates() ([]string, error) {
	var dates []string
	err := r.DB.Model(&model.LearningSession{}).
		Distinct("date_key").
		Order("date_key DESC").
		Pluck("date_key", &dates).Error
	if err != nil {
		return nil, err
	}
	return dates, nil
}

// SumActiveTimeByCategory 统计某分类下全部会话的活跃时长总和（秒）
func (r *SessionRepository) SumActiveTimeByCategory(category string) (int64, error) {
	var total int64
	err := r.DB.Model(&model.LearningSession{}).
		Where("category = ?", category).
		Select("COALESCE(SUM(active_time), 0)").
		Row().Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}

// CategoryEngagement 按分类统计平均参与度，过滤掉均分不高于 minScore 的分类
func (r *SessionRepository) CategoryEngagement(since int64, minScore float64, limit int) ([]model.CategoryEngagement, error) {
	var rows []model.CategoryEngagement
	err := r.DB.Model(&model.LearningSession{}).
		Select("category, AVG(engagement_score) as avg_score").
		Where("timestamp >= ?", since).
		Group("category").
		Having("avg_score > ?", minScore).
		Order("avg_score DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
