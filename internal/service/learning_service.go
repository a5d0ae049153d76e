package service

import (
	"learnlens_backend/internal/model"
	"learnlens_backend/internal/util"
	"learnlens_backend/pkg/logger"
	"learnlens_backend/pkg/monitoring"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// RecordSessionInput 宿主（浏览器扩展）上报的一次页面活动事件
type RecordSessionInput struct {
	URL         string
	Title       string
	TimeSpent   int
	ActiveTime  int // 0 表示未上报，回落到 TimeSpent
	ScrollDepth float64
	Revisits    int // 小于 1 时按 1 处理
	SessionID   string
}

// LearningService 会话记录器：探测 → 分类 → 打分 → 落库 → 更新路径。
// 记录完成后触发已注册的钩子（异步执行，失败只记日志）。
type LearningService struct {
	classifier *ClassifierService
	scorer     *EngagementScorer
	sessions   SessionStore
	pathSvc    *LearningPathService
	afterHooks []func()
}

func NewLearningService(
	classifier *ClassifierService,
	scorer *EngagementScorer,
	sessions SessionStore,
	pathSvc *LearningPathService,
) *LearningService {
	return &LearningService{
		classifier: classifier,
		scorer:     scorer,
		sessions:   sessions,
		pathSvc:    pathSvc,
	}
}

// OnRecord 注册记录完成后的钩子（例如洞察生成、缓存失效）。
// 钩子在单独的 goroutine 中执行，永远不会让 RecordSession 失败或变慢。
func (s *LearningService) OnRecord(fn func()) {
	s.afterHooks = append(s.afterHooks, fn)
}

// RecordSession 记录一次学习会话。
// 非学习资源返回 (nil, nil)，没有任何副作用；这是正常流程而非错误。
func (s *LearningService) RecordSession(input RecordSessionInput) (*model.SessionResult, error) {
	if !s.classifier.IsLearningResource(input.URL, input.Title) {
		return nil, nil
	}

	categorization := s.classifier.Categorize(input.URL, input.Title, "")

	activeTime := input.ActiveTime
	if activeTime <= 0 {
		activeTime = input.TimeSpent
	}
	revisits := input.Revisits
	if revisits < 1 {
		revisits = 1
	}

	score := s.scorer.Score(activeTime, input.ScrollDepth, revisits, categorization.LearningType)
	level := LevelFor(score)

	now := time.Now().UTC()
	sessionID := input.SessionID
	if sessionID == "" {
		sessionID = model.GenerateUUID()
	}

	session := &model.LearningSession{
		SessionID:       sessionID,
		URL:             input.URL,
		Title:           input.Title,
		Domain:          hostOf(input.URL),
		Category:        categorization.Category,
		Subcategory:     categorization.Subcategory,
		LearningType:    categorization.LearningType,
		TimeSpent:       input.TimeSpent,
		ActiveTime:      activeTime,
		ScrollDepth:     input.ScrollDepth,
		RevisitCount:    revisits,
		EngagementScore: score,
		EngagementLevel: level,
		Timestamp:       util.UnixMillis(now),
		DateKey:         util.DateKey(now),
	}

	if err := s.sessions.Create(session); err != nil {
		return nil, err
	}

	if err := s.pathSvc.UpdatePath(categorization.Category, categorization.Subcategory); err != nil {
		return nil, err
	}

	monitoring.SessionsRecorded.WithLabelValues(categorization.Category).Inc()

	for _, hook := range s.afterHooks {
		go s.runHook(hook)
	}

	return &model.SessionResult{
		Category:        categorization.Category,
		Subcategory:     categorization.Subcategory,
		EngagementScore: score,
		EngagementLevel: level,
	}, nil
}

func (s *LearningService) runHook(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Log.Error("post-record hook panicked", zap.Any("panic", r))
		}
	}()
	fn()
}

// hostOf URL 解析失败时返回空串，保持记录流程不被坏输入打断
func hostOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
