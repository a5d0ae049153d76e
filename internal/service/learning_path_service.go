package service

import (
	"learnlens_backend/internal/model"
	"time"
)

// LearningPathService 学习路径跟踪：按分类惰性创建，每次会话更新。
type LearningPathService struct {
	paths    PathStore
	sessions SessionStore
}

func NewLearningPathService(paths PathStore, sessions SessionStore) *LearningPathService {
	return &LearningPathService{paths: paths, sessions: sessions}
}

// UpdatePath 更新或创建分类对应的学习路径。
// 累计时长每次全量重算（SUM 该分类的全部会话），不做增量累加，
// 以保证外部清理会话后总时长仍然正确，重复调用也是幂等的。
func (s *LearningPathService) UpdatePath(category string, subcategory *string) error {
	if category == "" {
		return nil
	}

	now := time.Now().UTC()

	path, err := s.paths.FindByName(category)
	if err != nil {
		return err
	}

	if path == nil {
		topics := []string{}
		if subcategory != nil {
			topics = append(topics, *subcategory)
		}
		return s.paths.Create(&model.LearningPath{
			Name:         category,
			Topics:       topics,
			StartDate:    now,
			LastActivity: now,
		})
	}

	if subcategory != nil && !path.HasTopic(*subcategory) {
		path.Topics = append(path.Topics, *subcategory)
	}

	total, err := s.sessions.SumActiveTimeByCategory(category)
	if err != nil {
		return err
	}

	path.TotalTime = total
	path.LastActivity = now
	return s.paths.Update(path)
}

// RecentPaths 最近活跃的学习路径
func (s *LearningPathService) RecentPaths(limit int) ([]model.LearningPath, error) {
	return s.paths.FindRecent(limit)
}
