package service

import (
	"context"
	"encoding/json"
	"learnlens_backend/internal/model"
	"learnlens_backend/internal/util"
	"learnlens_backend/pkg/logger"
	"sort"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// 时间窗取值
const (
	RangeToday = "today"
	RangeWeek  = "week"
	RangeMonth = "month"
	RangeAll   = "all"
)

const (
	topCategoryLimit   = 5
	recentPathLimit    = 10
	recentSessionLimit = 20
	dailyBreakdownDays = 30
)

// AnalyticsService 时间窗内的会话聚合与连续学习天数。
// 汇总结果在 Redis 中做短 TTL 缓存，记录新会话时失效。
type AnalyticsService struct {
	sessions SessionStore
	paths    PathStore
	rdb      *redis.Client
	cacheTTL time.Duration
}

func NewAnalyticsService(sessions SessionStore, paths PathStore, rdb *redis.Client, cacheTTL time.Duration) *AnalyticsService {
	return &AnalyticsService{
		sessions: sessions,
		paths:    paths,
		rdb:      rdb,
		cacheTTL: cacheTTL,
	}
}

// GetLearningAnalytics 汇总 timeRange 内的学习数据。
// 未知的 timeRange 按 week 处理；空数据集返回全零结构，不报错。
func (s *AnalyticsService) GetLearningAnalytics(timeRange string) (*model.AnalyticsSummary, error) {
	if cached := s.fromCache(timeRange); cached != nil {
		return cached, nil
	}

	sessions, err := s.sessions.FindSince(lowerBoundFor(timeRange, time.Now()))
	if err != nil {
		return nil, err
	}

	paths, err := s.paths.FindRecent(recentPathLimit)
	if err != nil {
		return nil, err
	}

	summary := buildSummary(sessions, paths, timeRange)
	s.toCache(timeRange, summary)
	return summary, nil
}

// GetStreak 连续学习天数：从今天（UTC）起逐日回走，遇到第一个缺口即停
func (s *AnalyticsService) GetStreak() (int, error) {
	dates, err := s.sessions.DistinctDates()
	if err != nil {
		return 0, err
	}
	return streakFromDates(dates, time.Now().UTC()), nil
}

// InvalidateCache 清除全部时间窗的汇总缓存
func (s *AnalyticsService) InvalidateCache() {
	if s.rdb == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	for _, r := range []string{RangeToday, RangeWeek, RangeMonth, RangeAll} {
		if err := s.rdb.Del(ctx, cacheKey(r)).Err(); err != nil {
			logger.Log.Warn("analytics cache invalidation failed", zap.String("range", r), zap.Error(err))
		}
	}
}

func cacheKey(timeRange string) string {
	return "analytics:summary:" + timeRange
}

func (s *AnalyticsService) fromCache(timeRange string) *model.AnalyticsSummary {
	if s.rdb == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	raw, err := s.rdb.Get(ctx, cacheKey(timeRange)).Bytes()
	if err != nil {
		return nil
	}
	var summary model.AnalyticsSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil
	}
	return &summary
}

func (s *AnalyticsService) toCache(timeRange string, summary *model.AnalyticsSummary) {
	if s.rdb == nil {
		return
	}
	raw, err := json.Marshal(summary)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.rdb.Set(ctx, cacheKey(timeRange), raw, s.cacheTTL).Err(); err != nil {
		logger.Log.Warn("analytics cache write failed", zap.Error(err))
	}
}

// lowerBoundFor 时间窗到毫秒时间戳下界的映射
func lowerBoundFor(timeRange string, now time.Time) int64 {
	switch timeRange {
	case RangeToday:
		return util.UnixMillis(util.StartOfDayUTC(now))
	case RangeMonth:
		return util.UnixMillis(now.Add(-30 * 24 * time.Hour))
	case RangeAll:
		return 0
	default: // week
		return util.UnixMillis(now.Add(-7 * 24 * time.Hour))
	}
}

// buildSummary 对已取出的会话集做纯内存聚合
func buildSummary(sessions []model.LearningSession, paths []model.LearningPath, timeRange string) *model.AnalyticsSummary {
	var totalTime int64
	var totalScore int
	for i := range sessions {
		totalTime += int64(sessions[i].ActiveTime)
		totalScore += sessions[i].EngagementScore
	}

	avgEngagement := 0
	if len(sessions) > 0 {
		avgEngagement = int(float64(totalScore)/float64(len(sessions)) + 0.5)
	}

	summary := &model.AnalyticsSummary{
		Summary: model.SummaryTotals{
			TotalSessions: len(sessions),
			TotalTime:     totalTime,
			AvgEngagement: avgEngagement,
			TimeRange:     timeRange,
		},
		TopCategories:  topCategories(sessions),
		LearningPaths:  paths,
		DailyBreakdown: dailyBreakdown(sessions),
		RecentSessions: sessions,
	}

	if len(summary.RecentSessions) > recentSessionLimit {
		summary.RecentSessions = summary.RecentSessions[:recentSessionLimit]
	}

	return summary
}

func topCategories(sessions []model.LearningSession) []model.CategoryStat {
	type acc struct {
		stat  model.CategoryStat
		score int
	}
	byCategory := make(map[string]*acc)
	order := []string{}

	for i := range sessions {
		s := &sessions[i]
		a, ok := byCategory[s.Category]
		if !ok {
			a = &acc{stat: model.CategoryStat{Name: s.Category}}
			byCategory[s.Category] = a
			order = append(order, s.Category)
		}
		a.stat.Sessions++
		a.stat.Time += int64(s.ActiveTime)
		a.score += s.EngagementScore
	}

	stats := make([]model.CategoryStat, 0, len(order))
	for _, name := range order {
		a := byCategory[name]
		a.stat.AvgScore = float64(a.score) / float64(a.stat.Sessions)
		stats = append(stats, a.stat)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Time > stats[j].Time
	})

	if len(stats) > topCategoryLimit {
		stats = stats[:topCategoryLimit]
	}
	return stats
}

func dailyBreakdown(sessions []model.LearningSession) []model.DailyStat {
	type acc struct {
		stat       model.DailyStat
		categories map[string]bool
	}
	byDate := make(map[string]*acc)

	for i := range sessions {
		s := &sessions[i]
		a, ok := byDate[s.DateKey]
		if !ok {
			a = &acc{stat: model.DailyStat{Date: s.DateKey}, categories: make(map[string]bool)}
			byDate[s.DateKey] = a
		}
		a.stat.Time += int64(s.ActiveTime)
		a.stat.Sessions++
		a.categories[s.Category] = true
	}

	stats := make([]model.DailyStat, 0, len(byDate))
	for _, a := range byDate {
		a.stat.Categories = len(a.categories)
		stats = append(stats, a.stat)
	}

	// 最近的日期在前
	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Date > stats[j].Date
	})

	if len(stats) > dailyBreakdownDays {
		stats = stats[:dailyBreakdownDays]
	}
	return stats
}

// streakFromDates 从 today 起逐日回走去重后的日期键（倒序），
// 连续命中即累加，第一个缺口处停止。今天无记录则立即返回 0。
func streakFromDates(dates []string, today time.Time) int {
	streak := 0
	current := util.StartOfDayUTC(today)

	for _, date := range dates {
		if date == util.DateKey(current) {
			streak++
			current = current.AddDate(0, 0, -1)
		} else {
			break
		}
	}

	return streak
}
