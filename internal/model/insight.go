package model

import (
	"time"
)

// 洞察类型
const (
	InsightConsistency = "consistency"
	InsightFocus       = "focus"
	InsightTiming      = "timing"
	InsightStrength    = "strength"
)

// LearningInsight 洞察日志，追加写入，本引擎不做去重
// swagger:model LearningInsight
type LearningInsight struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Type        string    `gorm:"size:32;index" json:"type"`
	Title       string    `gorm:"size:255" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Relevance   float64   `gorm:"default:0" json:"relevanceScore"`
	GeneratedAt time.Time `gorm:"index" json:"generatedAt"`
}

func (LearningInsight) TableName() string {
	return "learning_insights"
}

// Insight 单次生成的洞察（落库前的临时结构）
type Insight struct {
	Type        string  `json:"type"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Relevance   float64 `json:"relevanceScore"`
}

// Recommendation 个性化建议，不落库
type Recommendation struct {
	Type        string   `json:"type"`
	Category    string   `json:"category"`
	Title       string   `json:"title"`
	Suggestions []string `json:"suggestions,omitempty"`
	Score       int      `json:"score,omitempty"`
	Reason      string   `json:"reason"`
}
