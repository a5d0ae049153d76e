package repository

import (
	"errors"
	"learnlens_backend/internal/model"

	"gorm.io/gorm"
)

type LearningPathRepository struct {
	DB *gorm.DB
}

func NewLearningPathRepository(db *gorm.DB) *LearningPathRepository {
	return &LearningPathRepository{DB: db}
}

// FindByName 按分类名查找路径，不存在时返回 (nil, nil)
func (r *LearningPathRepository) FindByName(name string) (*model.LearningPath, error) {
	var path model.LearningPath
	err := r.DB.Where("name = ?", name).First(&path).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &path, nil
}

func (r *LearningPathRepository) Create(path *model.LearningPath) error {
	return r.DB.Create(path).Error
}

func (r *LearningPathRepository) Update(path *model.LearningPath) error {
	return r.DB.Save(path).Error
}

// FindRecent 按最近活跃时间取最近的若干条路径
func (r *LearningPathRepository) FindRecent(limit int) ([]model.LearningPath, error) {
	var paths []model.LearningPath
	err := r.DB.Order("last_activity DESC").Limit(limit).Find(&paths).Error
	if err != nil {
		return nil, err
	}
	return paths, nil
}
