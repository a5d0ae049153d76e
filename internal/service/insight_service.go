package service

import (
	"fmt"
	"learnlens_backend/internal/config"
	"learnlens_backend/internal/model"
	"learnlens_backend/internal/util"
	"learnlens_backend/pkg/logger"
	"learnlens_backend/pkg/monitoring"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	consistencyWindowDays = 7
	strengthMinScore      = 70
	strengthLimit         = 3
	nextTopicPathLimit    = 3
	nextTopicSuggestions  = 3
)

// InsightService 在滚动月窗口上推导学习洞察与个性化建议。
type InsightService struct {
	analytics  *AnalyticsService
	sessions   SessionStore
	insights   InsightStore
	classifier *ClassifierService
	notifier   Notifier
	cfg        config.InsightsConfig
}

func NewInsightService(
	analytics *AnalyticsService,
	sessions SessionStore,
	insights InsightStore,
	classifier *ClassifierService,
	notifier Notifier,
	cfg config.InsightsConfig,
) *InsightService {
	return &InsightService{
		analytics:  analytics,
		sessions:   sessions,
		insights:   insights,
		classifier: classifier,
		notifier:   notifier,
		cfg:        cfg,
	}
}

// GenerateInsights 运行三个互不排斥的检查（坚持度、专注度、时段），
// 每条命中的洞察都追加写入洞察日志；本引擎不做跨次去重。
func (s *InsightService) GenerateInsights() ([]model.Insight, error) {
	analytics, err := s.analytics.GetLearningAnalytics(RangeMonth)
	if err != nil {
		return nil, err
	}

	insights := []model.Insight{}

	if insight := s.consistencyInsight(analytics); insight != nil {
		insights = append(insights, *insight)
	}
	if insight := s.focusInsight(analytics); insight != nil {
		insights = append(insights, *insight)
	}

	timing, err := s.timingInsight()
	if err != nil {
		return nil, err
	}
	if timing != nil {
		insights = append(insights, *timing)
	}

	now := time.Now().UTC()
	for _, insight := range insights {
		record := &model.LearningInsight{
			Type:        insight.Type,
			Title:       insight.Title,
			Description: insight.Description,
			Relevance:   insight.Relevance,
			GeneratedAt: now,
		}
		if err := s.insights.Append(record); err != nil {
			return nil, err
		}
		monitoring.InsightsGenerated.WithLabelValues(insight.Type).Inc()
		s.notify(insight)
	}

	return insights, nil
}

// consistencyInsight 至少 7 个活跃日，且最近 7 日均值不低于配置阈值
func (s *InsightService) consistencyInsight(analytics *model.AnalyticsSummary) *model.Insight {
	daily := analytics.DailyBreakdown
	if len(daily) < consistencyWindowDays {
		return nil
	}

	var recentTotal int64
	for _, day := range daily[:consistencyWindowDays] {
		recentTotal += day.Time
	}
	avgDaily := float64(recentTotal) / consistencyWindowDays

	if avgDaily < float64(s.cfg.MinDailySeconds) {
		return nil
	}

	return &model.Insight{
		Type:        model.InsightConsistency,
		Title:       "Great Learning Consistency!",
		Description: fmt.Sprintf("You've averaged %d minutes of learning per day this week.", int(avgDaily/60+0.5)),
		Relevance:   0.9,
	}
}

// focusInsight 头部分类占总活跃时长的比例超过配置阈值
func (s *InsightService) focusInsight(analytics *model.AnalyticsSummary) *model.Insight {
	if len(analytics.TopCategories) == 0 || analytics.Summary.TotalTime == 0 {
		return nil
	}

	top := analytics.TopCategories[0]
	share := float64(top.Time) / float64(analytics.Summary.TotalTime) * 100

	if share <= s.cfg.FocusSharePercent {
		return nil
	}

	return &model.Insight{
		Type:        model.InsightFocus,
		Title:       fmt.Sprintf("Deep Focus on %s", top.Name),
		Description: fmt.Sprintf("%d%% of your learning time is in %s. Consider exploring related topics!", int(share+0.5), top.Name),
		Relevance:   0.85,
	}
}

// timingInsight 按 0-23 小时桶累加活跃时长，取首个最大桶
func (s *InsightService) timingInsight() (*model.Insight, error) {
	sessions, err := s.sessions.FindSince(util.UnixMillis(time.Now().Add(-30 * 24 * time.Hour)))
	if err != nil {
		return nil, err
	}

	var hourly [24]int64
	for i := range sessions {
		hour := time.UnixMilli(sessions[i].Timestamp).UTC().Hour()
		hourly[hour] += int64(sessions[i].ActiveTime)
	}

	peakHour := 0
	for h := 1; h < 24; h++ {
		if hourly[h] > hourly[peakHour] {
			peakHour = h
		}
	}
	if hourly[peakHour] == 0 {
		return nil, nil
	}

	period := "evening"
	if peakHour < 12 {
		period = "morning"
	} else if peakHour < 17 {
		period = "afternoon"
	}

	return &model.Insight{
		Type:        model.InsightTiming,
		Title:       fmt.Sprintf("You're a %s learner", period),
		Description: fmt.Sprintf("Your peak learning time is around %d:00. Most productive sessions happen in the %s.", peakHour, period),
		Relevance:   0.75,
	}, nil
}

func (s *InsightService) notify(insight model.Insight) {
	if !s.cfg.Notify || s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(insight.Title, insight.Description); err != nil {
		logger.Log.Warn("insight notification failed", zap.Error(err))
	}
}

// RecentInsights 已落库的洞察日志
func (s *InsightService) RecentInsights(limit int) ([]model.LearningInsight, error) {
	return s.insights.FindRecent(limit)
}

// GetRecommendations 个性化建议：
// 活跃路径中尚未覆盖的子主题（next_topic），以及 30 天均分超过 70 的强项分类（strength）。
func (s *InsightService) GetRecommendations() ([]model.Recommendation, error) {
	analytics, err := s.analytics.GetLearningAnalytics(RangeMonth)
	if err != nil {
		return nil, err
	}

	recommendations := []model.Recommendation{}

	paths := analytics.LearningPaths
	if len(paths) > nextTopicPathLimit {
		paths = paths[:nextTopicPathLimit]
	}
	for i := range paths {
		path := &paths[i]
		domain := s.classifier.DomainByName(path.Name)
		if domain == nil || len(path.Topics) == 0 {
			continue
		}

		uncovered := []string{}
		for _, subcat := range domain.Subcategories {
			if !path.HasTopic(subcat) {
				uncovered = append(uncovered, subcat)
			}
		}
		if len(uncovered) == 0 {
			continue
		}
		if len(uncovered) > nextTopicSuggestions {
			uncovered = uncovered[:nextTopicSuggestions]
		}

		recommendations = append(recommendations, model.Recommendation{
			Type:        "next_topic",
			Category:    path.Name,
			Title:       fmt.Sprintf("Continue your %s journey", path.Name),
			Suggestions: uncovered,
			Reason:      fmt.Sprintf("You've covered: %s", strings.Join(path.Topics, ", ")),
		})
	}

	strengths, err := s.sessions.CategoryEngagement(
		util.UnixMillis(time.Now().Add(-30*24*time.Hour)),
		strengthMinScore,
		strengthLimit,
	)
	if err != nil {
		return nil, err
	}
	for _, strength := range strengths {
		score := int(strength.AvgScore + 0.5)
		recommendations = append(recommendations, model.Recommendation{
			Type:     model.InsightStrength,
			Category: strength.Category,
			Title:    fmt.Sprintf("You excel at %s", strength.Category),
			Score:    score,
			Reason:   fmt.Sprintf("Your engagement score is %d/100", score),
		})
	}

	return recommendations, nil
}
