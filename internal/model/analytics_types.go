package model

// SummaryTotals 汇总指标
type SummaryTotals struct {
	TotalSessions int    `json:"totalSessions"`
	TotalTime     int64  `json:"totalTimeSeconds"`
	AvgEngagement int    `json:"avgEngagement"`
	TimeRange     string `json:"timeRange"`
}

// CategoryStat 单个分类的统计
type CategoryStat struct {
	Name     string  `json:"name"`
	Time     int64   `json:"timeSeconds"`
	Sessions int     `json:"sessions"`
	AvgScore float64 `json:"avgScore"`
}

// DailyStat 单日统计
type DailyStat struct {
	Date       string `json:"date"`
	Time       int64  `json:"timeSeconds"`
	Sessions   int    `json:"sessions"`
	Categories int    `json:"categories"`
}

// AnalyticsSummary 时间窗内的学习分析汇总
// swagger:model AnalyticsSummary
type AnalyticsSummary struct {
	Summary        SummaryTotals     `json:"summary"`
	TopCategories  []CategoryStat    `json:"topCategories"`
	LearningPaths  []LearningPath    `json:"learningPaths"`
	DailyBreakdown []DailyStat       `json:"dailyBreakdown"`
	RecentSessions []LearningSession `json:"recentSessions"`
}

// CategoryEngagement 分类维度的平均参与度（strength 建议用）
type CategoryEngagement struct {
	Category string  `json:"category"`
	AvgScore float64 `json:"avgScore"`
}
