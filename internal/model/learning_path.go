package model

import (
	"time"
)

// LearningPath 每个分类一条，记录累计学习时长与已覆盖的子主题
// swagger:model LearningPath
type LearningPath struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"size:128;uniqueIndex;not null" json:"name"`
	Topics       []string  `gorm:"type:json;serializer:json" json:"topics"`
	StartDate    time.Time `json:"startDate"`
	LastActivity time.Time `gorm:"index" json:"lastActivity"`
	TotalTime    int64     `gorm:"default:0" json:"totalTimeSeconds"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (LearningPath) TableName() string {
	return "learning_paths"
}

// HasTopic topics 按集合语义处理，只增不减
func (p *LearningPath) HasTopic(topic string) bool {
	for _, t := range p.Topics {
		if t == topic {
			return true
		}
	}
	return false
}
