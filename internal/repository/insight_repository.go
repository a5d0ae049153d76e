package repository

import (
	"learnlens_backend/internal/model"

	"gorm.io/gorm"
)

type InsightRepository struct {
	DB *gorm.DB
}

func NewInsightRepository(db *gorm.DB) *InsightRepository {
	return &InsightRepository{DB: db}
}

// Append 追加一条洞察记录
func (r *InsightRepository) Append(insight *model.LearningInsight) error {
	return r.DB.Create(insight).Error
}

// FindRecent 按生成时间倒序取最近的洞察
func (r *InsightRepository) FindRecent(limit int) ([]model.LearningInsight, error) {
	var insights []model.LearningInsight
	err := r.DB.Order("generated_at DESC").Limit(limit).Find(&insights).Error
	if err != nil {
		return nil, err
	}
	return insights, nil
}
