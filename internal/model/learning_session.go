package model

import (
	"time"
)

// 学习类型，由 URL 判定
const (
	TypeReading       = "Reading"
	TypeVideo         = "Video"
	TypePractice      = "Practice"
	TypeCourse        = "Course"
	TypeDocumentation = "Documentation"
)

// 参与度等级标签，由参与度分数推导
const (
	LevelBrowsing     = "Browsing"
	LevelLightReading = "Light Reading"
	LevelModerate     = "Moderate Engagement"
	LevelActiveStudy  = "Active Study"
	LevelDeepLearning = "Deep Learning"
)

// LearningSession 一条学习会话记录（每次符合条件的页面访问产生一条，写入后不再修改）
// swagger:model LearningSession
type LearningSession struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	SessionID       string    `gorm:"size:64;index" json:"sessionId"`
	URL             string    `gorm:"size:2048;not null" json:"url"`
	Title           string    `gorm:"size:512" json:"title"`
	Domain          string    `gorm:"size:255;index" json:"domain"`
	Category        string    `gorm:"size:128;index" json:"category"`
	Subcategory     *string   `gorm:"size:128" json:"subcategory"`
	LearningType    string    `gorm:"size:32" json:"learningType"`
	TimeSpent       int       `gorm:"default:0" json:"timeSpentSeconds"`
	ActiveTime      int       `gorm:"default:0" json:"activeTimeSeconds"`
	ScrollDepth     float64   `gorm:"default:0" json:"scrollDepth"`
	RevisitCount    int       `gorm:"default:1" json:"revisitCount"`
	EngagementScore int       `gorm:"default:0" json:"engagementScore"`
	EngagementLevel string    `gorm:"size:32" json:"engagementLevel"`
	Timestamp       int64     `gorm:"index;not null" json:"timestampMillis"`
	DateKey         string    `gorm:"size:10;index" json:"dateKey"`
	CreatedAt       time.Time `json:"createdAt"`
}

func (LearningSession) TableName() string {
	return "learning_sessions"
}

// SessionResult 记录成功后的返回结果
type SessionResult struct {
	Category        string  `json:"category"`
	Subcategory     *string `json:"subcategory"`
	EngagementScore int     `json:"engagementScore"`
	EngagementLevel string  `json:"engagementLevel"`
}
